package models

import "gorm.io/gorm"

// Food is one catalog entry: the nutrient profile of a single serving.
// Amounts are per serving; absent values stay at zero.
type Food struct {
	gorm.Model
	FoodID  string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name    string `gorm:"not null"`
	Serving string

	Calories    float64
	Protein     float64
	Carbs       float64
	Fat         float64
	Fiber       float64
	Sugar       float64
	Sodium      float64
	Calcium     float64
	Iron        float64
	Potassium   float64
	VitaminC    float64
	VitaminA    float64
	VitaminD    float64
	Cholesterol float64
}

// Nutrients returns the profile in map form, keyed by the canonical
// nutrient names used by goals, gaps and the recommendation scorer.
func (f *Food) Nutrients() map[string]float64 {
	return map[string]float64{
		"calories":    f.Calories,
		"protein":     f.Protein,
		"carbs":       f.Carbs,
		"fat":         f.Fat,
		"fiber":       f.Fiber,
		"sugar":       f.Sugar,
		"sodium":      f.Sodium,
		"calcium":     f.Calcium,
		"iron":        f.Iron,
		"potassium":   f.Potassium,
		"vitaminC":    f.VitaminC,
		"vitaminA":    f.VitaminA,
		"vitaminD":    f.VitaminD,
		"cholesterol": f.Cholesterol,
	}
}
