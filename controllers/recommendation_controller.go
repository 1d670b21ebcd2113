package controllers

import (
	"net/http"
	"strconv"

	"github.com/grandonbarcia/health-tracker/services"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	Days     *services.DayService
	Foods    *services.FoodService
	Settings *services.SettingsService
}

func NewRecommendationController(days *services.DayService, foods *services.FoodService, settings *services.SettingsService) *RecommendationController {
	return &RecommendationController{Days: days, Foods: foods, Settings: settings}
}

// Get scores the catalog against the date's remaining nutrient gaps and
// returns ranked suggestions with messages. This path never hard-fails:
// unreadable days or catalogs degrade to empty intake or no candidates.
func (r *RecommendationController) Get(c *gin.Context) {
	date := c.Query("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required, expected YYYY-MM-DD"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))
	if limit <= 0 {
		limit = 6
	}

	uid := userID(c)

	meals := services.EmptyDayMeals()
	if day, err := r.Days.GetOrCreateDay(uid, date); err == nil {
		if m, err := r.Days.DayMeals(day.ID); err == nil {
			meals = m
		}
	}

	current := services.CombineDayMeals(meals, r.Foods.Lookup)
	goals := r.Settings.GoalsFor(uid)
	gaps := services.AnalyzeNutrientGaps(current, goals)

	recommendations := services.RecommendFoods(current, goals, r.Foods.Catalog(), limit)
	messages := services.GenerateRecommendationMessages(gaps)

	c.JSON(http.StatusOK, gin.H{
		"recommendations":    recommendations,
		"messages":           messages,
		"gaps":               gaps,
		"hasSignificantGaps": services.HasSignificantGaps(gaps),
		"currentNutrition":   current,
		"userGoals":          goals,
	})
}
