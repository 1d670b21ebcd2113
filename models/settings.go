package models

import "gorm.io/gorm"

// UserSettings holds each user's daily nutrient targets.
type UserSettings struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null"`

	DailyCalories float64 `json:"daily_calories"`
	DailyProtein  float64 `json:"daily_protein"`
	DailyCarbs    float64 `json:"daily_carbs"`
	DailyFat      float64 `json:"daily_fat"`
	DailyFiber    float64 `json:"daily_fiber"`
	DailySodium   float64 `json:"daily_sodium"`

	WeightGoal    string `json:"weight_goal"`    // lose|maintain|gain
	ActivityLevel string `json:"activity_level"` // sedentary|light|moderate|active
}

// Goals returns the targets keyed by nutrient name, skipping unset ones.
func (s *UserSettings) Goals() map[string]float64 {
	goals := map[string]float64{
		"calories": s.DailyCalories,
		"protein":  s.DailyProtein,
		"carbs":    s.DailyCarbs,
		"fat":      s.DailyFat,
		"fiber":    s.DailyFiber,
		"sodium":   s.DailySodium,
	}
	for k, v := range goals {
		if v <= 0 {
			delete(goals, k)
		}
	}
	return goals
}
