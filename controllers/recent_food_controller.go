package controllers

import (
	"net/http"
	"strconv"

	"github.com/grandonbarcia/health-tracker/services"

	"github.com/gin-gonic/gin"
)

type RecentFoodController struct {
	Recents *services.RecentFoodService
	Foods   *services.FoodService
}

func NewRecentFoodController(recents *services.RecentFoodService, foods *services.FoodService) *RecentFoodController {
	return &RecentFoodController{Recents: recents, Foods: foods}
}

func (r *RecentFoodController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	entries, err := r.Recents.List(userID(c), limit, r.Foods)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (r *RecentFoodController) Track(c *gin.Context) {
	var body struct {
		FoodID string `json:"food_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := r.Recents.Track(userID(c), body.FoodID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
