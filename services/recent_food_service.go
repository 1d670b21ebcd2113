package services

import (
	"errors"
	"time"

	"github.com/grandonbarcia/health-tracker/models"

	"gorm.io/gorm"
)

// RecentFoodService tracks which foods a user picks, so the UI can offer
// them again without a search.
type RecentFoodService struct {
	db *gorm.DB
}

func NewRecentFoodService(db *gorm.DB) *RecentFoodService {
	return &RecentFoodService{db: db}
}

// Track bumps the use counter for (user, food), creating the row on first
// use.
func (s *RecentFoodService) Track(userID uint, foodID string) error {
	var recent models.RecentFood
	err := s.db.Where("user_id = ? AND food_id = ?", userID, foodID).First(&recent).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		recent = models.RecentFood{
			UserID:     userID,
			FoodID:     foodID,
			UseCount:   1,
			LastUsedAt: time.Now(),
		}
		return s.db.Create(&recent).Error
	}
	if err != nil {
		return err
	}

	recent.UseCount++
	recent.LastUsedAt = time.Now()
	return s.db.Save(&recent).Error
}

type RecentFoodEntry struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Calories   float64   `json:"calories"`
	Protein    float64   `json:"protein"`
	UseCount   int       `json:"use_count"`
	LastUsedAt time.Time `json:"last_used_at"`
}

// List returns the user's most recently used foods, joined with the catalog
// for display fields. Foods that left the catalog are skipped.
func (s *RecentFoodService) List(userID uint, limit int, foods *FoodService) ([]RecentFoodEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	var recents []models.RecentFood
	err := s.db.
		Where("user_id = ?", userID).
		Order("last_used_at DESC").
		Limit(limit).
		Find(&recents).Error
	if err != nil {
		return nil, err
	}

	entries := make([]RecentFoodEntry, 0, len(recents))
	for _, r := range recents {
		food := foods.Lookup(r.FoodID)
		if food == nil {
			continue
		}
		entries = append(entries, RecentFoodEntry{
			ID:         food.FoodID,
			Name:       food.Name,
			Calories:   food.Calories,
			Protein:    food.Protein,
			UseCount:   r.UseCount,
			LastUsedAt: r.LastUsedAt,
		})
	}
	return entries, nil
}
