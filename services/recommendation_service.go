package services

import (
	"fmt"
	"sort"

	"github.com/grandonbarcia/health-tracker/models"
)

// CatalogFood is one scoring candidate: a food id, display fields and its
// per-serving profile. The catalog is passed in explicitly so the scorer
// stays pure and candidate order (the tie-break for equal scores) is the
// caller's choice.
type CatalogFood struct {
	FoodID  string
	Name    string
	Serving string
	Profile map[string]float64
}

func NewCatalogFood(f *models.Food) CatalogFood {
	return CatalogFood{
		FoodID:  f.FoodID,
		Name:    f.Name,
		Serving: f.Serving,
		Profile: f.Nutrients(),
	}
}

type RecommendationReason struct {
	Nutrient   string  `json:"nutrient"`
	Current    float64 `json:"current"`
	Goal       float64 `json:"goal"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

type NutritionHighlight struct {
	Nutrient string  `json:"nutrient"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
}

type FoodRecommendation struct {
	FoodID     string                 `json:"food_id"`
	FoodName   string                 `json:"food_name"`
	Score      float64                `json:"score"`
	Reasons    []RecommendationReason `json:"reasons"`
	Highlights []NutritionHighlight   `json:"nutrition_highlights"`
}

const caloriePenalty = 50

// Scoring weights per nutrient. Protein and fiber count for more because
// they are the gaps users most often under-fill; sodium counts for less
// since excess sodium is undesirable rather than a filling target.
var nutrientWeights = map[string]float64{
	"calories": 1.0,
	"protein":  1.5,
	"carbs":    1.0,
	"fat":      1.0,
	"fiber":    1.2,
	"sodium":   0.5,
}

var highlightUnits = map[string]string{
	"calories":    "kcal",
	"protein":     "g",
	"carbs":       "g",
	"fat":         "g",
	"fiber":       "g",
	"sugar":       "g",
	"sodium":      "mg",
	"calcium":     "mg",
	"iron":        "mg",
	"potassium":   "mg",
	"vitaminC":    "mg",
	"cholesterol": "mg",
}

var messageUnits = map[string]string{
	"calories": "calories",
	"protein":  "g protein",
	"carbs":    "g carbs",
	"fat":      "g fat",
	"fiber":    "g fiber",
	"sodium":   "mg sodium",
}

// scoreFoodForGaps scores one candidate against the open gaps. hasCalorieBudget
// tells whether a calories goal exists at all; without one no calorie penalty
// applies.
func scoreFoodForGaps(profile map[string]float64, gaps map[string]NutrientGap, remainingCalories float64, hasCalorieBudget bool) float64 {
	score := 0.0

	if hasCalorieBudget && profile["calories"] > remainingCalories*1.5 {
		score -= caloriePenalty
	}

	for nutrient, gap := range gaps {
		if gap.Remaining <= 0 {
			continue
		}
		amount := profile[nutrient]
		weight, ok := nutrientWeights[nutrient]
		if !ok {
			weight = 1.0
		}

		contribution := amount
		if contribution > gap.Remaining {
			contribution = gap.Remaining
		}
		fillRatio := contribution / gap.Remaining

		multiplier := 1.0
		switch gap.Priority {
		case PriorityHigh:
			multiplier = 2.0
		case PriorityMedium:
			multiplier = 1.5
		}

		score += fillRatio * weight * multiplier * 10
	}

	// Nutrient-density bonus. Calories of zero count as one so that
	// zero-calorie, high-nutrient foods get a modest reward instead of a
	// division blow-up.
	calories := profile["calories"]
	if calories == 0 {
		calories = 1
	}
	score += profile["protein"] / calories * 20
	score += profile["fiber"] / calories * 15

	if score < 0 {
		return 0
	}
	return score
}

// sortedOpenGaps returns the nutrients with remaining > 0, ordered by
// priority rank then remaining, both descending. Nutrient name breaks the
// final tie so the order is deterministic.
func sortedOpenGaps(gaps map[string]NutrientGap) []string {
	var open []string
	for nutrient, gap := range gaps {
		if gap.Remaining > 0 {
			open = append(open, nutrient)
		}
	}
	sort.Slice(open, func(i, j int) bool {
		a, b := gaps[open[i]], gaps[open[j]]
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() > b.Priority.Rank()
		}
		if a.Remaining != b.Remaining {
			return a.Remaining > b.Remaining
		}
		return open[i] < open[j]
	})
	return open
}

// RecommendFoods ranks catalog foods by how well they close the open gaps
// between current intake and goals, and returns at most limit of them.
// A food must address at least one open gap (supply ≥10% of its remaining
// amount) to be surfaced at all, no matter how well it scores otherwise.
func RecommendFoods(current, goals map[string]float64, catalog []CatalogFood, limit int) []FoodRecommendation {
	gaps := AnalyzeNutrientGaps(current, goals)

	calGap, hasCalorieBudget := gaps["calories"]
	remainingCalories := calGap.Remaining

	scored := make([]FoodRecommendation, 0, len(catalog))
	for _, food := range catalog {
		score := scoreFoodForGaps(food.Profile, gaps, remainingCalories, hasCalorieBudget)

		var reasons []RecommendationReason
		var highlights []NutritionHighlight
		for _, nutrient := range sortedOpenGaps(gaps) {
			gap := gaps[nutrient]
			amount := food.Profile[nutrient]
			if amount < gap.Remaining*0.1 {
				continue
			}
			reasons = append(reasons, RecommendationReason{
				Nutrient:   nutrient,
				Current:    gap.Current,
				Goal:       gap.Goal,
				Remaining:  gap.Remaining,
				Percentage: gap.Percentage,
			})
			highlights = append(highlights, NutritionHighlight{
				Nutrient: nutrient,
				Amount:   amount,
				Unit:     highlightUnits[nutrient],
			})
			if len(reasons) == 3 {
				break
			}
		}

		if score <= 0 || len(reasons) == 0 {
			continue
		}

		name := food.Name
		if name == "" {
			name = food.FoodID
		}
		if food.Serving != "" {
			name = fmt.Sprintf("%s (%s)", name, food.Serving)
		}

		scored = append(scored, FoodRecommendation{
			FoodID:     food.FoodID,
			FoodName:   name,
			Score:      score,
			Reasons:    reasons,
			Highlights: highlights,
		})
	}

	// Stable: equal scores keep catalog order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// GenerateRecommendationMessages renders the top three open gaps as short
// human-readable prompts. Low-priority gaps never generate a message.
func GenerateRecommendationMessages(gaps map[string]NutrientGap) []string {
	messages := []string{}

	open := sortedOpenGaps(gaps)
	if len(open) > 3 {
		open = open[:3]
	}

	for _, nutrient := range open {
		gap := gaps[nutrient]
		unit, ok := messageUnits[nutrient]
		if !ok {
			unit = nutrient
		}
		remaining := int(gap.Remaining + 0.5)

		switch gap.Priority {
		case PriorityHigh:
			messages = append(messages, fmt.Sprintf("You need %d more %s to reach your goal", remaining, unit))
		case PriorityMedium:
			messages = append(messages, fmt.Sprintf("Consider adding %d more %s", remaining, unit))
		}
	}
	return messages
}

// HasSignificantGaps reports whether any goal still has meaningful room:
// something remaining and intake under 90% of target.
func HasSignificantGaps(gaps map[string]NutrientGap) bool {
	for _, gap := range gaps {
		if gap.Remaining > 0 && gap.Percentage < 90 {
			return true
		}
	}
	return false
}
