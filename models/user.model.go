package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username  string    `gorm:"unique" json:"username"`
	FullName  string    `gorm:"default:''" json:"fullName"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	AvatarURL string    `gorm:"default:''" json:"avatarUrl"`
	Website   string    `gorm:"default:''" json:"website"`
	IsAdmin   bool      `gorm:"default:false" json:"isAdmin"`
	LastLogin time.Time `gorm:"default:NULL" json:"lastLogin"`
	IsDeleted bool      `gorm:"default:false" json:"isDeleted"`
}
