package predictionController

import (
	"log"
	"palpite/database"
	"palpite/middleware"
	"palpite/models"
	"palpite/utils"
	predictionValidator "palpite/validators/prediction"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PremiumTeaser replaces gated analysis text in locked views.
const PremiumTeaser = "Conteúdo premium. Desbloqueie para ver a análise completa."

// PredictionView is what the API exposes for a prediction. For premium
// predictions the analysis fields and exact probabilities only survive
// redaction when the viewer's pair is unlocked.
type PredictionView struct {
	ID             uint                    `json:"id"`
	MatchName      string                  `json:"matchName"`
	League         string                  `json:"league"`
	MatchDate      time.Time               `json:"matchDate"`
	HomeTeam       string                  `json:"homeTeam"`
	AwayTeam       string                  `json:"awayTeam"`
	WinProbability *models.WinProbability  `json:"winProbability,omitempty"`
	ExpertAnalysis string                  `json:"expertAnalysis"`
	AIAnalysis     string                  `json:"aiAnalysis"`
	Status         models.PredictionStatus `json:"status"`
	PredictionType string                  `json:"predictionType"`
	IsPremium      bool                    `json:"isPremium"`
	Price          float64                 `json:"price"`
	UserID         uint                    `json:"userId"`
	CreatedAt      time.Time               `json:"createdAt"`
	UnlockState    utils.UnlockState       `json:"unlockState"`
}

// BuildPredictionView applies content gating for the given unlock state.
func BuildPredictionView(p *models.Prediction, state utils.UnlockState) PredictionView {
	view := PredictionView{
		ID:             p.ID,
		MatchName:      p.MatchName,
		League:         p.League,
		MatchDate:      p.MatchDate,
		HomeTeam:       p.HomeTeam,
		AwayTeam:       p.AwayTeam,
		Status:         p.Status,
		PredictionType: p.PredictionType,
		IsPremium:      p.IsPremium,
		Price:          p.Price,
		UserID:         p.UserID,
		CreatedAt:      p.CreatedAt,
		UnlockState:    state,
	}

	if state.IsFullContentVisible() {
		probability := p.WinProbability.Data()
		view.WinProbability = &probability
		view.ExpertAnalysis = p.ExpertAnalysis
		view.AIAnalysis = p.AIAnalysis
		return view
	}

	// Locked or awaiting payment: withhold probabilities, tease analyses
	if p.ExpertAnalysis != "" {
		view.ExpertAnalysis = PremiumTeaser
	}
	if p.AIAnalysis != "" {
		view.AIAnalysis = PremiumTeaser
	}
	return view
}

// ListPredictions returns all predictions ordered by match date, each one
// gated against the viewer (anonymous viewers get userId 0).
func ListPredictions(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	db := database.Database.Db

	var predictions []models.Prediction
	if err := db.Where("is_deleted = false").Order("match_date asc").Find(&predictions).Error; err != nil {
		log.Printf("Error fetching predictions: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch predictions!", nil)
	}

	views := make([]PredictionView, 0, len(predictions))
	for i := range predictions {
		state, _, err := utils.ResolveUnlockState(db, userId, &predictions[i])
		if err != nil {
			log.Printf("Error resolving unlock state: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch predictions!", nil)
		}
		views = append(views, BuildPredictionView(&predictions[i], state))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Predictions fetched!", views)
}

// GetPrediction returns the gated detail view of one prediction.
func GetPrediction(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)
	predictionId, err := c.ParamsInt("id")
	if err != nil || predictionId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid prediction id!", nil)
	}

	db := database.Database.Db

	var prediction models.Prediction
	if err := db.Where("id = ? AND is_deleted = false", predictionId).First(&prediction).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Prediction not found!", nil)
		}
		log.Printf("Error fetching prediction: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch prediction!", nil)
	}

	state, _, err := utils.ResolveUnlockState(db, userId, &prediction)
	if err != nil {
		log.Printf("Error resolving unlock state: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch prediction!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Prediction fetched!", BuildPredictionView(&prediction, state))
}

// CreatePrediction inserts a new prediction owned by the signed-in admin.
func CreatePrediction(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	draft, ok := c.Locals("validatedPrediction").(*predictionValidator.PredictionDraft)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	status := models.PredictionStatus(draft.Status)
	if status == "" {
		status = models.PredictionStatusPending
	}

	prediction := models.Prediction{
		MatchName:      draft.MatchName,
		League:         draft.League,
		MatchDate:      draft.MatchDate,
		HomeTeam:       draft.HomeTeam,
		AwayTeam:       draft.AwayTeam,
		WinProbability: datatypes.NewJSONType(draft.WinProbability),
		ExpertAnalysis: draft.ExpertAnalysis,
		AIAnalysis:     draft.AIAnalysis,
		Status:         status,
		PredictionType: draft.PredictionType,
		IsPremium:      draft.IsPremium,
		Price:          draft.Price,
		UserID:         userId,
	}

	if err := database.Database.Db.Create(&prediction).Error; err != nil {
		log.Printf("Error saving prediction: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create prediction!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Prediction created!", prediction)
}

// UpdatePrediction merges the optional draft fields into an existing record.
func UpdatePrediction(c *fiber.Ctx) error {
	predictionId, err := c.ParamsInt("id")
	if err != nil || predictionId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid prediction id!", nil)
	}

	draft, ok := c.Locals("validatedPredictionUpdate").(*predictionValidator.PredictionUpdateDraft)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var prediction models.Prediction
	if err := db.Where("id = ? AND is_deleted = false", predictionId).First(&prediction).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Prediction not found!", nil)
		}
		log.Printf("Error fetching prediction: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update prediction!", nil)
	}

	if draft.MatchName != nil {
		prediction.MatchName = *draft.MatchName
	}
	if draft.League != nil {
		prediction.League = *draft.League
	}
	if draft.MatchDate != nil {
		prediction.MatchDate = *draft.MatchDate
	}
	if draft.HomeTeam != nil {
		prediction.HomeTeam = *draft.HomeTeam
	}
	if draft.AwayTeam != nil {
		prediction.AwayTeam = *draft.AwayTeam
	}
	if draft.WinProbability != nil {
		prediction.WinProbability = datatypes.NewJSONType(*draft.WinProbability)
	}
	if draft.ExpertAnalysis != nil {
		prediction.ExpertAnalysis = *draft.ExpertAnalysis
	}
	if draft.AIAnalysis != nil {
		prediction.AIAnalysis = *draft.AIAnalysis
	}
	if draft.Status != nil {
		prediction.Status = models.PredictionStatus(*draft.Status)
	}
	if draft.PredictionType != nil {
		prediction.PredictionType = *draft.PredictionType
	}
	if draft.IsPremium != nil {
		prediction.IsPremium = *draft.IsPremium
	}
	if draft.Price != nil {
		prediction.Price = *draft.Price
	}

	if err := db.Save(&prediction).Error; err != nil {
		log.Printf("Error updating prediction: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update prediction!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Prediction updated!", prediction)
}

// DeletePrediction soft-deletes a prediction. Deleting a missing id is a 404.
func DeletePrediction(c *fiber.Ctx) error {
	predictionId, err := c.ParamsInt("id")
	if err != nil || predictionId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid prediction id!", nil)
	}

	db := database.Database.Db

	var prediction models.Prediction
	if err := db.Where("id = ? AND is_deleted = false", predictionId).First(&prediction).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Prediction not found!", nil)
		}
		log.Printf("Error fetching prediction: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete prediction!", nil)
	}

	prediction.IsDeleted = true
	if err := db.Save(&prediction).Error; err != nil {
		log.Printf("Error deleting prediction: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete prediction!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Prediction deleted!", nil)
}
