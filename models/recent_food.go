package models

import (
	"time"

	"gorm.io/gorm"
)

// RecentFood tracks how often and how recently a user picked a food.
type RecentFood struct {
	gorm.Model
	UserID     uint   `gorm:"index:idx_user_food,unique;not null"`
	FoodID     string `gorm:"type:varchar(255);index:idx_user_food,unique;not null"`
	UseCount   int    `gorm:"not null;default:1"`
	LastUsedAt time.Time
}
