package paymentController

import (
	"log"
	"palpite/database"
	"palpite/middleware"
	"palpite/models"
	"palpite/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateCheckout starts (or resumes) the unlock flow for a premium
// prediction. The route sits behind JWTMiddleware, so an anonymous caller
// is rejected with 401 before any store mutation happens.
func CreateCheckout(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedCheckout").(*struct {
		PredictionID uint `json:"predictionId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var prediction models.Prediction
	if err := db.Where("id = ? AND is_deleted = false", reqData.PredictionID).First(&prediction).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Prediction not found!", nil)
		}
		log.Printf("Error fetching prediction: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start checkout!", nil)
	}

	state, existing, err := utils.ResolveUnlockState(db, userId, &prediction)
	if err != nil {
		log.Printf("Error resolving unlock state: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start checkout!", nil)
	}

	switch state {
	case utils.UnlockStateOpen, utils.UnlockStateUnlocked:
		// Already fully visible, nothing to buy
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Prediction already unlocked!", fiber.Map{
			"unlockState": state,
			"purchase":    existing,
		})
	case utils.UnlockStateAwaitingPayment:
		// Reuse the open pending purchase instead of stacking duplicates
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending payment found!", fiber.Map{
			"unlockState": state,
			"purchase":    existing,
		})
	}

	purchase := models.Purchase{
		UserID:       userId,
		PredictionID: prediction.ID,
		Amount:       prediction.Price,
		Status:       models.PurchaseStatusPending,
		PixCode:      utils.GeneratePixCode(prediction.Price),
	}

	if err := db.Create(&purchase).Error; err != nil {
		log.Printf("Error creating purchase: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start checkout!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Checkout created!", fiber.Map{
		"unlockState": utils.UnlockStateAwaitingPayment,
		"purchase":    purchase,
	})
}

// ConfirmPayment simulates the payment provider callback. It transitions
// the viewer's pending purchase to completed and is idempotent: confirming
// an already completed purchase changes nothing.
func ConfirmPayment(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	purchaseId, err := c.ParamsInt("id")
	if err != nil || purchaseId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid purchase id!", nil)
	}

	db := database.Database.Db

	var purchase models.Purchase
	if err := db.Where("id = ? AND user_id = ? AND is_deleted = false", purchaseId, userId).First(&purchase).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Purchase not found!", nil)
		}
		log.Printf("Error fetching purchase: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to confirm payment!", nil)
	}

	if purchase.Status == models.PurchaseStatusCompleted {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment already confirmed!", fiber.Map{
			"unlockState": utils.UnlockStateUnlocked,
			"purchase":    purchase,
		})
	}
	if purchase.Status == models.PurchaseStatusCancelled {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Purchase was cancelled. Start a new checkout!", nil)
	}

	purchase.Status = models.PurchaseStatusCompleted
	if err := db.Save(&purchase).Error; err != nil {
		log.Printf("Error confirming payment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to confirm payment!", nil)
	}

	// Receipt email, fire-and-forget
	go func(purchase models.Purchase) {
		db := database.Database.Db

		var user models.User
		if err := db.Where("id = ?", purchase.UserID).First(&user).Error; err != nil {
			log.Printf("Error fetching user for receipt: %v", err)
			return
		}
		var prediction models.Prediction
		if err := db.Where("id = ?", purchase.PredictionID).First(&prediction).Error; err != nil {
			log.Printf("Error fetching prediction for receipt: %v", err)
			return
		}
		if err := utils.SendPurchaseReceipt(user.Email, user.FullName, prediction.MatchName, purchase.Amount); err != nil {
			log.Printf("Error sending purchase receipt: %v", err)
		}
	}(purchase)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment confirmed!", fiber.Map{
		"unlockState": utils.UnlockStateUnlocked,
		"purchase":    purchase,
	})
}

// CancelPurchase cancels a pending purchase. Completed purchases never
// transition back.
func CancelPurchase(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	purchaseId, err := c.ParamsInt("id")
	if err != nil || purchaseId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid purchase id!", nil)
	}

	db := database.Database.Db

	var purchase models.Purchase
	if err := db.Where("id = ? AND user_id = ? AND is_deleted = false", purchaseId, userId).First(&purchase).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Purchase not found!", nil)
		}
		log.Printf("Error fetching purchase: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to cancel purchase!", nil)
	}

	if purchase.Status == models.PurchaseStatusCompleted {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Completed purchases cannot be cancelled!", nil)
	}

	purchase.Status = models.PurchaseStatusCancelled
	if err := db.Save(&purchase).Error; err != nil {
		log.Printf("Error cancelling purchase: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to cancel purchase!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchase cancelled!", purchase)
}

// GetPurchaseStatus reports the unlock state for one prediction and viewer.
func GetPurchaseStatus(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	predictionId, err := c.ParamsInt("predictionId")
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
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check purchase status!", nil)
	}

	state, _, err := utils.ResolveUnlockState(db, userId, &prediction)
	if err != nil {
		log.Printf("Error resolving unlock state: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check purchase status!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchase status fetched!", fiber.Map{
		"unlockState": state,
		"unlocked":    state.IsFullContentVisible(),
	})
}

// ListMyPurchases returns the viewer's purchase history, newest first.
func ListMyPurchases(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var purchases []models.Purchase
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = false", userId).
		Order("created_at desc").
		Find(&purchases).Error; err != nil {
		log.Printf("Error fetching purchases: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch purchases!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchases fetched!", purchases)
}
