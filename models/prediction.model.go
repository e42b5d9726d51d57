package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PredictionStatus defines the result status of a prediction
type PredictionStatus string

const (
	PredictionStatusPending PredictionStatus = "pending"
	PredictionStatusWon     PredictionStatus = "won"
	PredictionStatusLost    PredictionStatus = "lost"
	PredictionStatusVoid    PredictionStatus = "void"
)

// WinProbability holds the 1X2 percentages for a match. They are not
// forced to sum to 100.
type WinProbability struct {
	Home int `json:"home"`
	Draw int `json:"draw"`
	Away int `json:"away"`
}

// Prediction is a match tip published by an admin. Premium predictions
// keep their analysis fields gated behind a completed Purchase.
type Prediction struct {
	gorm.Model
	MatchName      string                             `gorm:"not null" json:"matchName"`
	League         string                             `gorm:"not null" json:"league"`
	MatchDate      time.Time                          `gorm:"not null;index" json:"matchDate"`
	HomeTeam       string                             `gorm:"not null" json:"homeTeam"`
	AwayTeam       string                             `gorm:"not null" json:"awayTeam"`
	WinProbability datatypes.JSONType[WinProbability] `json:"winProbability"`
	ExpertAnalysis string                             `gorm:"type:text" json:"expertAnalysis"`
	AIAnalysis     string                             `gorm:"type:text" json:"aiAnalysis"`
	Status         PredictionStatus                   `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PredictionType string                             `gorm:"default:''" json:"predictionType"`
	IsPremium      bool                               `gorm:"default:false" json:"isPremium"`
	Price          float64                            `gorm:"default:0" json:"price"`
	UserID         uint                               `gorm:"not null;index" json:"userId"`
	IsDeleted      bool                               `gorm:"default:false" json:"isDeleted"`

	// Relations - omit in JSON by default
	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Prediction) TableName() string {
	return "predictions"
}
