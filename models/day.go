package models

import "gorm.io/gorm"

// UserDay is one calendar date of one user's food log. Created lazily on
// first access; items hang off it and are always replaced wholesale.
type UserDay struct {
	gorm.Model
	PublicID string `gorm:"type:varchar(36);uniqueIndex;not null"` // uuid exposed to clients
	UserID   uint   `gorm:"index:idx_user_day,unique;not null"`
	DayDate  string `gorm:"type:varchar(10);index:idx_user_day,unique;not null"` // YYYY-MM-DD
	Items    []UserDayItem
}

type UserDayItem struct {
	gorm.Model
	UserDayID uint    `gorm:"index;not null"`
	FoodID    string  `gorm:"type:varchar(255);not null"`
	Qty       float64 `gorm:"not null"`
	Meal      string  `gorm:"type:varchar(16);not null"` // breakfast|lunch|dinner
}
