package services

import (
	"math"
	"testing"

	"github.com/grandonbarcia/health-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLookup(foods map[string]*models.Food) ProfileLookup {
	return func(foodID string) *models.Food {
		return foods[foodID]
	}
}

var testFoods = map[string]*models.Food{
	"egg": {
		FoodID: "egg", Name: "Egg",
		Calories: 78, Protein: 6.3, Carbs: 0.6, Fat: 5.3, Cholesterol: 187,
	},
	"oatmeal": {
		FoodID: "oatmeal", Name: "Oatmeal",
		Calories: 166, Protein: 5.9, Carbs: 28, Fat: 3.6, Fiber: 4,
	},
	"broccoli": {
		FoodID: "broccoli", Name: "Broccoli",
		Calories: 31, Protein: 2.5, Carbs: 6, Fiber: 2.4, VitaminC: 81,
	},
}

func TestCombineProfilesWithQty(t *testing.T) {
	lookup := testLookup(testFoods)

	totals := CombineProfilesWithQty([]ItemWithQty{
		{FoodID: "egg", Qty: 2},
		{FoodID: "oatmeal", Qty: 1},
	}, lookup)

	assert.InDelta(t, 2*78+166, totals["calories"], 1e-9)
	assert.InDelta(t, 2*6.3+5.9, totals["protein"], 1e-9)
	assert.InDelta(t, 4, totals["fiber"], 1e-9)
	assert.InDelta(t, 2*187, totals["cholesterol"], 1e-9)
}

func TestCombineAdditivity(t *testing.T) {
	lookup := testLookup(testFoods)

	a := []ItemWithQty{{FoodID: "egg", Qty: 2}, {FoodID: "broccoli", Qty: 1.5}}
	b := []ItemWithQty{{FoodID: "oatmeal", Qty: 3}}

	separate := CombineProfilesWithQty(a, lookup)
	for k, v := range CombineProfilesWithQty(b, lookup) {
		separate[k] += v
	}
	combined := CombineProfilesWithQty(append(append([]ItemWithQty{}, a...), b...), lookup)

	for _, nutrient := range NutrientNames {
		assert.InDelta(t, separate[nutrient], combined[nutrient], 1e-9, nutrient)
	}
}

func TestCombineQuantityLinearity(t *testing.T) {
	lookup := testLookup(testFoods)

	for _, k := range []float64{0, 0.5, 1, 3, 10} {
		unit := CombineProfilesWithQty([]ItemWithQty{{FoodID: "broccoli", Qty: 1}}, lookup)
		scaled := CombineProfilesWithQty([]ItemWithQty{{FoodID: "broccoli", Qty: k}}, lookup)
		for _, nutrient := range NutrientNames {
			assert.InDelta(t, k*unit[nutrient], scaled[nutrient], 1e-9, nutrient)
		}
	}
}

func TestCombineUnknownFoodContributesNothing(t *testing.T) {
	lookup := testLookup(testFoods)

	totals := CombineProfilesWithQty([]ItemWithQty{{FoodID: "does-not-exist", Qty: 5}}, lookup)
	for _, nutrient := range NutrientNames {
		assert.Zero(t, totals[nutrient], nutrient)
	}

	// One bad reference must not abort the rest of the aggregate.
	totals = CombineProfilesWithQty([]ItemWithQty{
		{FoodID: "does-not-exist", Qty: 5},
		{FoodID: "egg", Qty: 1},
	}, lookup)
	assert.InDelta(t, 78, totals["calories"], 1e-9)
}

func TestCombineClampsMalformedInput(t *testing.T) {
	lookup := testLookup(map[string]*models.Food{
		"bad": {FoodID: "bad", Calories: math.NaN(), Protein: math.Inf(1), Carbs: -5, Fat: 2},
		"egg": testFoods["egg"],
	})

	tests := []struct {
		name  string
		items []ItemWithQty
	}{
		{name: "negative qty", items: []ItemWithQty{{FoodID: "egg", Qty: -1}}},
		{name: "NaN qty", items: []ItemWithQty{{FoodID: "egg", Qty: math.NaN()}}},
		{name: "Inf qty", items: []ItemWithQty{{FoodID: "egg", Qty: math.Inf(1)}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			totals := CombineProfilesWithQty(tc.items, lookup)
			for _, nutrient := range NutrientNames {
				assert.Zero(t, totals[nutrient], nutrient)
			}
		})
	}

	// Malformed profile fields are skipped per field; healthy fields survive.
	totals := CombineProfilesWithQty([]ItemWithQty{{FoodID: "bad", Qty: 2}}, lookup)
	assert.Zero(t, totals["calories"])
	assert.Zero(t, totals["protein"])
	assert.Zero(t, totals["carbs"])
	assert.InDelta(t, 4, totals["fat"], 1e-9)
	require.False(t, math.IsNaN(totals["calories"]))
}

func TestCombineDayMealsFlattensBuckets(t *testing.T) {
	lookup := testLookup(testFoods)

	meals := DayMeals{
		Breakfast: []ItemWithQty{{FoodID: "oatmeal", Qty: 1}},
		Lunch:     []ItemWithQty{{FoodID: "broccoli", Qty: 2}},
		Dinner:    []ItemWithQty{{FoodID: "egg", Qty: 3}},
	}

	byDay := CombineDayMeals(meals, lookup)
	flat := CombineProfilesWithQty(meals.AllItems(), lookup)
	assert.Equal(t, flat, byDay)
	assert.InDelta(t, 166+2*31+3*78, byDay["calories"], 1e-9)
}

func TestDayMealsEqualIsPerBucket(t *testing.T) {
	local := DayMeals{
		Breakfast: []ItemWithQty{{FoodID: "egg", Qty: 2}},
		Lunch:     []ItemWithQty{},
		Dinner:    []ItemWithQty{},
	}
	server := DayMeals{
		Breakfast: []ItemWithQty{},
		Lunch:     []ItemWithQty{},
		Dinner:    []ItemWithQty{{FoodID: "egg", Qty: 2}},
	}

	// Same aggregate totals, different buckets: structurally different.
	assert.False(t, local.Equal(server))
	assert.True(t, local.Equal(local))

	differentQty := DayMeals{
		Breakfast: []ItemWithQty{{FoodID: "egg", Qty: 3}},
	}
	assert.False(t, local.Equal(differentQty))

	empty := EmptyDayMeals()
	assert.True(t, empty.Equal(DayMeals{}))
}
