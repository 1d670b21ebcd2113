package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogOf(foods ...CatalogFood) []CatalogFood { return foods }

func TestRecommendCaloriePenalty(t *testing.T) {
	// remaining calories 1000; 2200 kcal blows the 1.5x budget, 1000 does not.
	current := map[string]float64{"calories": 1000, "protein": 40}
	goals := map[string]float64{"calories": 2000, "protein": 150}
	gaps := AnalyzeNutrientGaps(current, goals)

	heavyProfile := map[string]float64{"calories": 2200, "protein": 30}
	lightProfile := map[string]float64{"calories": 1000, "protein": 30}

	heavyScore := scoreFoodForGaps(heavyProfile, gaps, 1000, true)
	lightScore := scoreFoodForGaps(lightProfile, gaps, 1000, true)
	assert.Less(t, heavyScore, lightScore)

	// The penalty drags the heavy food to the floor, so only the light one
	// survives the score filter.
	heavy := CatalogFood{FoodID: "heavy", Name: "Heavy", Profile: heavyProfile}
	light := CatalogFood{FoodID: "light", Name: "Light", Profile: lightProfile}
	recs := RecommendFoods(current, goals, catalogOf(heavy, light), 10)
	require.Len(t, recs, 1)
	assert.Equal(t, "light", recs[0].FoodID)
}

func TestRecommendNoCalorieGoalMeansNoPenalty(t *testing.T) {
	current := map[string]float64{"protein": 40}
	goals := map[string]float64{"protein": 150}

	heavy := CatalogFood{FoodID: "heavy", Name: "Heavy", Profile: map[string]float64{"calories": 5000, "protein": 30}}
	light := CatalogFood{FoodID: "light", Name: "Light", Profile: map[string]float64{"calories": 100, "protein": 30}}

	recs := RecommendFoods(current, goals, catalogOf(heavy, light), 10)
	require.Len(t, recs, 2)

	// Same gap contribution; only the density bonus separates them.
	assert.Equal(t, "light", recs[0].FoodID)
	assert.Greater(t, recs[0].Score, 0.0)
	assert.Greater(t, recs[1].Score, 0.0)
}

func TestRecommendExcludesFoodsWithNoGapOverlap(t *testing.T) {
	current := map[string]float64{"protein": 40}
	goals := map[string]float64{"protein": 150}

	// High protein density but zero absolute protein cannot exist, so use a
	// food whose gap-relevant fields are all zero: only the density bonus
	// could score it, and without a reason it must never surface.
	noOverlap := CatalogFood{FoodID: "water", Name: "Water", Profile: map[string]float64{"calories": 0}}
	protein := CatalogFood{FoodID: "chicken", Name: "Chicken", Profile: map[string]float64{"calories": 165, "protein": 31}}

	recs := RecommendFoods(current, goals, catalogOf(noOverlap, protein), 10)
	require.Len(t, recs, 1)
	assert.Equal(t, "chicken", recs[0].FoodID)
}

func TestRecommendReasonsRequireTenPercentOfRemaining(t *testing.T) {
	current := map[string]float64{"protein": 50}
	goals := map[string]float64{"protein": 150} // remaining 100, threshold 10

	under := CatalogFood{FoodID: "under", Name: "Under", Profile: map[string]float64{"calories": 50, "protein": 9}}
	over := CatalogFood{FoodID: "over", Name: "Over", Profile: map[string]float64{"calories": 50, "protein": 10}}

	recs := RecommendFoods(current, goals, catalogOf(under, over), 10)
	require.Len(t, recs, 1)
	require.Equal(t, "over", recs[0].FoodID)

	require.Len(t, recs[0].Reasons, 1)
	reason := recs[0].Reasons[0]
	assert.Equal(t, "protein", reason.Nutrient)
	assert.InDelta(t, 50, reason.Current, 1e-9)
	assert.InDelta(t, 150, reason.Goal, 1e-9)
	assert.InDelta(t, 100, reason.Remaining, 1e-9)

	require.Len(t, recs[0].Highlights, 1)
	assert.Equal(t, "protein", recs[0].Highlights[0].Nutrient)
	assert.InDelta(t, 10, recs[0].Highlights[0].Amount, 1e-9)
	assert.Equal(t, "g", recs[0].Highlights[0].Unit)
}

func TestRecommendReasonsCappedAtThreeInPriorityOrder(t *testing.T) {
	current := map[string]float64{}
	goals := map[string]float64{
		"protein":  100, // high, remaining 100
		"fiber":    25,  // high, remaining 25
		"carbs":    200, // high, remaining 200
		"fat":      60,  // high, remaining 60
		"calories": 500, // high, remaining 500
	}

	all := CatalogFood{FoodID: "all", Name: "All", Profile: map[string]float64{
		"calories": 400, "protein": 30, "fiber": 10, "carbs": 50, "fat": 20,
	}}

	recs := RecommendFoods(current, goals, catalogOf(all), 10)
	require.Len(t, recs, 1)
	require.Len(t, recs[0].Reasons, 3)
	require.Len(t, recs[0].Highlights, 3)

	// All high priority, so remaining descending: calories, carbs, protein.
	assert.Equal(t, "calories", recs[0].Reasons[0].Nutrient)
	assert.Equal(t, "carbs", recs[0].Reasons[1].Nutrient)
	assert.Equal(t, "protein", recs[0].Reasons[2].Nutrient)
}

func TestRecommendStableOrderForEqualScores(t *testing.T) {
	current := map[string]float64{}
	goals := map[string]float64{"protein": 100}

	twin := func(id string) CatalogFood {
		return CatalogFood{FoodID: id, Name: id, Profile: map[string]float64{"calories": 100, "protein": 20}}
	}

	recs := RecommendFoods(current, goals, catalogOf(twin("alpha"), twin("beta"), twin("gamma")), 10)
	require.Len(t, recs, 3)
	assert.Equal(t, "alpha", recs[0].FoodID)
	assert.Equal(t, "beta", recs[1].FoodID)
	assert.Equal(t, "gamma", recs[2].FoodID)
}

func TestRecommendHonorsLimit(t *testing.T) {
	current := map[string]float64{}
	goals := map[string]float64{"protein": 100}

	var catalog []CatalogFood
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		catalog = append(catalog, CatalogFood{
			FoodID: id, Name: id,
			Profile: map[string]float64{"calories": 100, "protein": 20},
		})
	}

	recs := RecommendFoods(current, goals, catalog, 2)
	assert.Len(t, recs, 2)
}

func TestRecommendServingInDisplayName(t *testing.T) {
	current := map[string]float64{}
	goals := map[string]float64{"protein": 100}

	food := CatalogFood{FoodID: "yogurt", Name: "Greek Yogurt", Serving: "1 cup",
		Profile: map[string]float64{"calories": 100, "protein": 17}}

	recs := RecommendFoods(current, goals, catalogOf(food), 1)
	require.Len(t, recs, 1)
	assert.Equal(t, "Greek Yogurt (1 cup)", recs[0].FoodName)
}

func TestGenerateRecommendationMessages(t *testing.T) {
	gaps := AnalyzeNutrientGaps(
		map[string]float64{"calories": 1000, "protein": 40},
		map[string]float64{"calories": 2000, "protein": 150},
	)

	messages := GenerateRecommendationMessages(gaps)
	require.Len(t, messages, 2)

	// Protein (high) ranks above calories (medium) despite less remaining.
	assert.Contains(t, messages[0], "need 110 more g protein")
	assert.Contains(t, messages[1], "Consider adding 1000 more calories")
}

func TestGenerateMessagesSkipsLowPriorityAndMetGoals(t *testing.T) {
	gaps := AnalyzeNutrientGaps(
		map[string]float64{"protein": 90, "fiber": 30},
		map[string]float64{"protein": 100, "fiber": 25},
	)

	// fiber met, protein at 90% (low priority): nothing to say.
	assert.Empty(t, GenerateRecommendationMessages(gaps))
}

func TestGenerateMessagesCappedAtThree(t *testing.T) {
	gaps := AnalyzeNutrientGaps(
		map[string]float64{},
		map[string]float64{"calories": 2000, "protein": 150, "carbs": 250, "fat": 67, "fiber": 25},
	)

	messages := GenerateRecommendationMessages(gaps)
	require.Len(t, messages, 3)
	for _, m := range messages {
		assert.True(t, strings.HasPrefix(m, "You need "), m)
	}
}

func TestHasSignificantGaps(t *testing.T) {
	almostDone := AnalyzeNutrientGaps(
		map[string]float64{"protein": 95},
		map[string]float64{"protein": 100},
	)
	assert.False(t, HasSignificantGaps(almostDone))

	wideOpen := AnalyzeNutrientGaps(
		map[string]float64{"protein": 10},
		map[string]float64{"protein": 100},
	)
	assert.True(t, HasSignificantGaps(wideOpen))
}
