package controllers

import (
	"net/http"
	"strconv"

	"github.com/grandonbarcia/health-tracker/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{Foods: foods}
}

func (f *FoodController) Search(c *gin.Context) {
	q := c.Query("q")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "8"))

	results, err := f.Foods.Search(q, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}

func (f *FoodController) GetByID(c *gin.Context) {
	food := f.Foods.Lookup(c.Param("id"))
	if food == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":        food.FoodID,
		"name":      food.Name,
		"serving":   food.Serving,
		"nutrients": food.Nutrients(),
	})
}
