package services

// GapPriority classifies how urgently a nutrient goal still needs filling.
type GapPriority string

const (
	PriorityHigh   GapPriority = "high"
	PriorityMedium GapPriority = "medium"
	PriorityLow    GapPriority = "low"
)

func (p GapPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

// NutrientGap is the shortfall of one nutrient against its daily goal.
type NutrientGap struct {
	Current    float64     `json:"current"`
	Goal       float64     `json:"goal"`
	Remaining  float64     `json:"remaining"`
	Percentage float64     `json:"percentage"`
	Priority   GapPriority `json:"priority"`
}

// AnalyzeNutrientGaps compares aggregated intake against goals. The goals
// map defines which nutrients are analyzed; a goal with no matching total
// counts from zero. A zero or negative goal is treated as "no gap": both
// percentage and remaining are forced to zero.
func AnalyzeNutrientGaps(current, goals map[string]float64) map[string]NutrientGap {
	gaps := make(map[string]NutrientGap, len(goals))

	for nutrient, goal := range goals {
		consumed := current[nutrient]

		var remaining, percentage float64
		if goal > 0 {
			if goal > consumed {
				remaining = goal - consumed
			}
			percentage = consumed / goal * 100
		}

		priority := PriorityLow
		if percentage < 50 {
			priority = PriorityHigh
		} else if percentage < 80 {
			priority = PriorityMedium
		}

		gaps[nutrient] = NutrientGap{
			Current:    consumed,
			Goal:       goal,
			Remaining:  remaining,
			Percentage: percentage,
			Priority:   priority,
		}
	}
	return gaps
}
