package services

import (
	"math"

	"github.com/grandonbarcia/health-tracker/models"
)

// ItemWithQty is one logged food: a catalog id plus a serving multiplier.
type ItemWithQty struct {
	FoodID string  `json:"food_id"`
	Qty    float64 `json:"qty"`
}

// DayMeals is one date's log, grouped into the three fixed meal buckets.
type DayMeals struct {
	Breakfast []ItemWithQty `json:"breakfast"`
	Lunch     []ItemWithQty `json:"lunch"`
	Dinner    []ItemWithQty `json:"dinner"`
}

func EmptyDayMeals() DayMeals {
	return DayMeals{
		Breakfast: []ItemWithQty{},
		Lunch:     []ItemWithQty{},
		Dinner:    []ItemWithQty{},
	}
}

// AllItems flattens the three buckets in breakfast, lunch, dinner order.
func (m DayMeals) AllItems() []ItemWithQty {
	items := make([]ItemWithQty, 0, len(m.Breakfast)+len(m.Lunch)+len(m.Dinner))
	items = append(items, m.Breakfast...)
	items = append(items, m.Lunch...)
	items = append(items, m.Dinner...)
	return items
}

func (m DayMeals) ItemCount() int {
	return len(m.Breakfast) + len(m.Lunch) + len(m.Dinner)
}

// Equal compares the per-bucket (food_id, qty) sequences. Order within a
// bucket counts; nothing else does. This is the comparison the sync
// reconciler uses to decide whether local and server logs diverged.
func (m DayMeals) Equal(other DayMeals) bool {
	return bucketEqual(m.Breakfast, other.Breakfast) &&
		bucketEqual(m.Lunch, other.Lunch) &&
		bucketEqual(m.Dinner, other.Dinner)
}

func bucketEqual(a, b []ItemWithQty) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].FoodID != b[i].FoodID || a[i].Qty != b[i].Qty {
			return false
		}
	}
	return true
}

// ProfileLookup resolves a food id to its nutrient profile, or nil when the
// id is unknown. Unknown foods contribute nothing to an aggregate.
type ProfileLookup func(foodID string) *models.Food

// CombineProfilesWithQty folds a list of logged items into nutrient totals.
// Each item contributes profile × qty; an unresolvable item, a negative or
// non-finite qty, or a malformed profile field contributes zero rather than
// poisoning the whole aggregate.
func CombineProfilesWithQty(items []ItemWithQty, lookup ProfileLookup) map[string]float64 {
	totals := map[string]float64{}
	for _, nutrient := range NutrientNames {
		totals[nutrient] = 0
	}

	for _, item := range items {
		food := lookup(item.FoodID)
		if food == nil {
			continue
		}
		qty := item.Qty
		if !isFiniteNonNegative(qty) {
			continue
		}
		for nutrient, amount := range food.Nutrients() {
			if !isFiniteNonNegative(amount) {
				continue
			}
			totals[nutrient] += amount * qty
		}
	}
	return totals
}

// CombineDayMeals aggregates a full day: all three buckets flattened.
func CombineDayMeals(meals DayMeals, lookup ProfileLookup) map[string]float64 {
	return CombineProfilesWithQty(meals.AllItems(), lookup)
}

func isFiniteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1) && !math.IsNaN(v)
}

// NutrientNames is the canonical field set of a nutrient profile.
var NutrientNames = []string{
	"calories", "protein", "carbs", "fat", "fiber", "sugar", "sodium",
	"calcium", "iron", "potassium", "vitaminC", "vitaminA", "vitaminD",
	"cholesterol",
}
