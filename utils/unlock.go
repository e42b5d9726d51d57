package utils

import (
	"palpite/models"

	"gorm.io/gorm"
)

// UnlockState is the visibility state of one (viewer, prediction) pair.
type UnlockState string

const (
	UnlockStateOpen            UnlockState = "open"             // non-premium, always fully visible
	UnlockStateLocked          UnlockState = "locked"           // premium, no purchase yet
	UnlockStateAwaitingPayment UnlockState = "awaiting_payment" // pending purchase exists
	UnlockStateUnlocked        UnlockState = "unlocked"         // completed purchase exists
)

// IsFullContentVisible reports whether the full analysis and exact
// probabilities may be shown for this state.
func (s UnlockState) IsFullContentVisible() bool {
	return s == UnlockStateOpen || s == UnlockStateUnlocked
}

// ResolveUnlockState derives the unlock state for a viewer and prediction
// from the purchases table. A completed purchase always wins over a pending
// one. userID 0 means an anonymous viewer.
func ResolveUnlockState(db *gorm.DB, userID uint, prediction *models.Prediction) (UnlockState, *models.Purchase, error) {
	if !prediction.IsPremium {
		return UnlockStateOpen, nil, nil
	}
	if userID == 0 {
		return UnlockStateLocked, nil, nil
	}

	var purchase models.Purchase
	err := db.Where("user_id = ? AND prediction_id = ? AND status = ? AND is_deleted = false",
		userID, prediction.ID, models.PurchaseStatusCompleted).
		First(&purchase).Error
	if err == nil {
		return UnlockStateUnlocked, &purchase, nil
	}
	if err != gorm.ErrRecordNotFound {
		return UnlockStateLocked, nil, err
	}

	err = db.Where("user_id = ? AND prediction_id = ? AND status = ? AND is_deleted = false",
		userID, prediction.ID, models.PurchaseStatusPending).
		Order("created_at desc").
		First(&purchase).Error
	if err == nil {
		return UnlockStateAwaitingPayment, &purchase, nil
	}
	if err != gorm.ErrRecordNotFound {
		return UnlockStateLocked, nil, err
	}

	return UnlockStateLocked, nil, nil
}
