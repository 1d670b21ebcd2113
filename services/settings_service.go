package services

import (
	"errors"

	"github.com/grandonbarcia/health-tracker/models"

	"gorm.io/gorm"
)

// Default daily targets, used until a user saves their own.
const (
	DefaultDailyCalories = 2000
	DefaultDailyProtein  = 150
	DefaultDailyCarbs    = 250
	DefaultDailyFat      = 67
	DefaultDailyFiber    = 25
	DefaultDailySodium   = 2300
)

type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

func defaultSettings(userID uint) models.UserSettings {
	return models.UserSettings{
		UserID:        userID,
		DailyCalories: DefaultDailyCalories,
		DailyProtein:  DefaultDailyProtein,
		DailyCarbs:    DefaultDailyCarbs,
		DailyFat:      DefaultDailyFat,
		DailyFiber:    DefaultDailyFiber,
		DailySodium:   DefaultDailySodium,
		WeightGoal:    "maintain",
		ActivityLevel: "moderate",
	}
}

// GetOrCreate returns the user's settings, creating the defaults on first
// read.
func (s *SettingsService) GetOrCreate(userID uint) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := s.db.Where("user_id = ?", userID).First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = defaultSettings(userID)
	if err := s.db.Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

type SettingsUpdate struct {
	DailyCalories *float64 `json:"daily_calories"`
	DailyProtein  *float64 `json:"daily_protein"`
	DailyCarbs    *float64 `json:"daily_carbs"`
	DailyFat      *float64 `json:"daily_fat"`
	DailyFiber    *float64 `json:"daily_fiber"`
	DailySodium   *float64 `json:"daily_sodium"`
	WeightGoal    *string  `json:"weight_goal"`
	ActivityLevel *string  `json:"activity_level"`
}

// Update applies the provided fields only, leaving the rest untouched.
func (s *SettingsService) Update(userID uint, update SettingsUpdate) (*models.UserSettings, error) {
	settings, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if update.DailyCalories != nil {
		settings.DailyCalories = *update.DailyCalories
	}
	if update.DailyProtein != nil {
		settings.DailyProtein = *update.DailyProtein
	}
	if update.DailyCarbs != nil {
		settings.DailyCarbs = *update.DailyCarbs
	}
	if update.DailyFat != nil {
		settings.DailyFat = *update.DailyFat
	}
	if update.DailyFiber != nil {
		settings.DailyFiber = *update.DailyFiber
	}
	if update.DailySodium != nil {
		settings.DailySodium = *update.DailySodium
	}
	if update.WeightGoal != nil {
		settings.WeightGoal = *update.WeightGoal
	}
	if update.ActivityLevel != nil {
		settings.ActivityLevel = *update.ActivityLevel
	}

	if err := s.db.Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// GoalsFor returns the user's nutrient targets, falling back to the
// defaults when settings cannot be read. Recommendation paths must always
// have goals to score against.
func (s *SettingsService) GoalsFor(userID uint) map[string]float64 {
	settings, err := s.GetOrCreate(userID)
	if err != nil {
		fallback := defaultSettings(userID)
		return fallback.Goals()
	}
	return settings.Goals()
}
