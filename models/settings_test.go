package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoalsSkipsUnsetTargets(t *testing.T) {
	s := UserSettings{
		DailyCalories: 2000,
		DailyProtein:  150,
		DailySodium:   -5, // misconfigured, treated as unset
	}

	goals := s.Goals()
	assert.Equal(t, map[string]float64{
		"calories": 2000,
		"protein":  150,
	}, goals)
}

func TestFoodNutrientsKeyedByCanonicalNames(t *testing.T) {
	f := Food{Calories: 100, Protein: 5, VitaminC: 12}

	n := f.Nutrients()
	assert.Equal(t, 100.0, n["calories"])
	assert.Equal(t, 5.0, n["protein"])
	assert.Equal(t, 12.0, n["vitaminC"])
	assert.Zero(t, n["fiber"])
}
