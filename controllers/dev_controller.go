package controllers

import (
	"net/http"

	"github.com/grandonbarcia/health-tracker/models"
	"github.com/grandonbarcia/health-tracker/services"

	"github.com/gin-gonic/gin"
)

type DevController struct {
	Foods *services.FoodService
}

func NewDevController(foods *services.FoodService) *DevController {
	return &DevController{Foods: foods}
}

// starterFoods is a small catalog for local development so search and
// recommendations work before any real data is loaded.
var starterFoods = []models.Food{
	{FoodID: "chicken breast", Name: "Chicken Breast", Serving: "100g", Calories: 165, Protein: 31, Fat: 3.6, Potassium: 256, Cholesterol: 85},
	{FoodID: "salmon", Name: "Salmon", Serving: "100g", Calories: 208, Protein: 20, Fat: 13, Potassium: 363, VitaminD: 11, Cholesterol: 55},
	{FoodID: "egg", Name: "Egg", Serving: "1 large", Calories: 78, Protein: 6.3, Carbs: 0.6, Fat: 5.3, VitaminD: 1.1, Cholesterol: 187},
	{FoodID: "brown rice", Name: "Brown Rice", Serving: "1 cup cooked", Calories: 216, Protein: 5, Carbs: 45, Fat: 1.8, Fiber: 3.5},
	{FoodID: "oatmeal", Name: "Oatmeal", Serving: "1 cup cooked", Calories: 166, Protein: 5.9, Carbs: 28, Fat: 3.6, Fiber: 4},
	{FoodID: "broccoli", Name: "Broccoli", Serving: "1 cup", Calories: 31, Protein: 2.5, Carbs: 6, Fiber: 2.4, VitaminC: 81, Potassium: 288},
	{FoodID: "spinach", Name: "Spinach", Serving: "1 cup raw", Calories: 7, Protein: 0.9, Carbs: 1.1, Fiber: 0.7, Iron: 0.8, VitaminA: 141},
	{FoodID: "lentils", Name: "Lentils", Serving: "1 cup cooked", Calories: 230, Protein: 18, Carbs: 40, Fiber: 15.6, Iron: 6.6, Potassium: 731},
	{FoodID: "greek yogurt", Name: "Greek Yogurt", Serving: "1 cup", Calories: 100, Protein: 17, Carbs: 6, Sugar: 4, Calcium: 187},
	{FoodID: "almonds", Name: "Almonds", Serving: "28g", Calories: 164, Protein: 6, Carbs: 6, Fat: 14, Fiber: 3.5, Calcium: 76},
	{FoodID: "banana", Name: "Banana", Serving: "1 medium", Calories: 105, Protein: 1.3, Carbs: 27, Sugar: 14, Fiber: 3.1, Potassium: 422},
	{FoodID: "apple", Name: "Apple", Serving: "1 medium", Calories: 95, Carbs: 25, Sugar: 19, Fiber: 4.4, VitaminC: 8.4},
	{FoodID: "whole wheat bread", Name: "Whole Wheat Bread", Serving: "1 slice", Calories: 81, Protein: 4, Carbs: 13.8, Fiber: 1.9, Sodium: 144},
	{FoodID: "cheddar cheese", Name: "Cheddar Cheese", Serving: "28g", Calories: 113, Protein: 6.4, Fat: 9.3, Sodium: 180, Calcium: 200, Cholesterol: 28},
}

func (d *DevController) SeedFoods(c *gin.Context) {
	seeded := 0
	for i := range starterFoods {
		food := starterFoods[i]
		if err := d.Foods.Upsert(&food); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "seeded": seeded})
			return
		}
		seeded++
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "seeded": seeded})
}
