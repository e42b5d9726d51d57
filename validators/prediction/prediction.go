package predictionValidator

import (
	"fmt"
	"palpite/middleware"
	"palpite/models"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

// newValidator builds a validator that reports errors under the field's
// json name (e.g. aiAnalysis), not the Go name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// PredictionDraft is the typed payload for creating a prediction. Every
// field the form can send has a named slot here; nothing is merged as an
// untyped partial.
type PredictionDraft struct {
	MatchName      string                `json:"matchName" validate:"required"`
	League         string                `json:"league" validate:"required"`
	MatchDate      time.Time             `json:"matchDate" validate:"required"`
	HomeTeam       string                `json:"homeTeam" validate:"required"`
	AwayTeam       string                `json:"awayTeam" validate:"required"`
	WinProbability models.WinProbability `json:"winProbability"`
	ExpertAnalysis string                `json:"expertAnalysis"`
	AIAnalysis     string                `json:"aiAnalysis"`
	Status         string                `json:"status" validate:"omitempty,oneof=pending won lost void"`
	PredictionType string                `json:"predictionType"`
	IsPremium      bool                  `json:"isPremium"`
	Price          float64               `json:"price" validate:"gte=0"`
}

// PredictionUpdateDraft carries the optional fields of a partial update.
// Nil means "leave unchanged".
type PredictionUpdateDraft struct {
	MatchName      *string                `json:"matchName" validate:"omitempty,min=1"`
	League         *string                `json:"league" validate:"omitempty,min=1"`
	MatchDate      *time.Time             `json:"matchDate"`
	HomeTeam       *string                `json:"homeTeam" validate:"omitempty,min=1"`
	AwayTeam       *string                `json:"awayTeam" validate:"omitempty,min=1"`
	WinProbability *models.WinProbability `json:"winProbability"`
	ExpertAnalysis *string                `json:"expertAnalysis"`
	AIAnalysis     *string                `json:"aiAnalysis"`
	Status         *string                `json:"status" validate:"omitempty,oneof=pending won lost void"`
	PredictionType *string                `json:"predictionType"`
	IsPremium      *bool                  `json:"isPremium"`
	Price          *float64               `json:"price" validate:"omitempty,gte=0"`
}

// validationMessages converts validator errors into the field->message map
// used by middleware.ValidationErrorResponse.
func validationMessages(err error) map[string]string {
	errors := make(map[string]string)
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = "Invalid request data!"
		return errors
	}
	for _, e := range vErrs {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errors[field] = fmt.Sprintf("%s is required!", field)
		case "oneof":
			errors[field] = fmt.Sprintf("%s must be one of: %s!", field, e.Param())
		case "gte":
			errors[field] = fmt.Sprintf("%s must be at least %s!", field, e.Param())
		case "min":
			errors[field] = fmt.Sprintf("%s must not be empty!", field)
		default:
			errors[field] = fmt.Sprintf("%s is invalid!", field)
		}
	}
	return errors
}

// Create validator middleware
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		draft := new(PredictionDraft)
		if err := c.BodyParser(draft); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(draft); err != nil {
			return middleware.ValidationErrorResponse(c, validationMessages(err))
		}

		c.Locals("validatedPrediction", draft)
		return c.Next()
	}
}

// Update validator middleware
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		draft := new(PredictionUpdateDraft)
		if err := c.BodyParser(draft); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(draft); err != nil {
			return middleware.ValidationErrorResponse(c, validationMessages(err))
		}

		c.Locals("validatedPredictionUpdate", draft)
		return c.Next()
	}
}
