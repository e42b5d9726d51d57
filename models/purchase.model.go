package models

import (
	"gorm.io/gorm"
)

// PurchaseStatus defines the lifecycle status of a purchase
type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "pending"
	PurchaseStatusCompleted PurchaseStatus = "completed"
	PurchaseStatusCancelled PurchaseStatus = "cancelled"
)

// Purchase is one viewer paying to unlock one premium prediction.
// A completed purchase never transitions back to pending or cancelled.
type Purchase struct {
	gorm.Model
	UserID       uint           `gorm:"not null;index" json:"userId"`
	PredictionID uint           `gorm:"not null;index" json:"predictionId"`
	Amount       float64        `gorm:"not null" json:"amount"`
	Status       PurchaseStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PixCode      string         `gorm:"type:text" json:"pixCode"` // opaque payment reference
	IsDeleted    bool           `gorm:"default:false" json:"isDeleted"`

	// Relations - omit in JSON by default
	User       User       `gorm:"foreignKey:UserID" json:"-"`
	Prediction Prediction `gorm:"foreignKey:PredictionID" json:"-"`
}

func (Purchase) TableName() string {
	return "purchases"
}
