package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/grandonbarcia/health-tracker/services"

	"github.com/gin-gonic/gin"
)

type DayController struct {
	Days  *services.DayService
	Foods *services.FoodService
	Hub   *services.RealtimeHub
}

func NewDayController(days *services.DayService, foods *services.FoodService, hub *services.RealtimeHub) *DayController {
	return &DayController{Days: days, Foods: foods, Hub: hub}
}

func userID(c *gin.Context) uint {
	v, _ := c.Get("userID")
	id, _ := v.(uint)
	return id
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// LoadDay returns the date's meals plus their aggregated nutrient totals.
// Missing days come back empty rather than as errors.
func (d *DayController) LoadDay(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	day, err := d.Days.GetOrCreateDay(userID(c), date)
	if err != nil {
		// Fail-soft read: the UI still gets a day to render.
		c.JSON(http.StatusOK, gin.H{
			"meals":       services.EmptyDayMeals(),
			"totals":      services.CombineDayMeals(services.EmptyDayMeals(), d.Foods.Lookup),
			"unavailable": true,
		})
		return
	}

	meals, err := d.Days.DayMeals(day.ID)
	if err != nil {
		meals = services.EmptyDayMeals()
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     day.PublicID,
		"date":   day.DayDate,
		"meals":  meals,
		"totals": services.CombineDayMeals(meals, d.Foods.Lookup),
	})
}

// SaveDay replaces the whole day. The body is either the three-bucket shape
// or a legacy flat item array, which lands in dinner.
func (d *DayController) SaveDay(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	var body struct {
		Items json.RawMessage `json:"items"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meals := services.EmptyDayMeals()
	if len(body.Items) > 0 {
		var legacy []services.ItemWithQty
		if err := json.Unmarshal(body.Items, &legacy); err == nil {
			meals.Dinner = legacy
		} else if err := json.Unmarshal(body.Items, &meals); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "items must be meal buckets or an item array"})
			return
		}
	}

	uid := userID(c)
	day, err := d.Days.GetOrCreateDay(uid, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := d.Days.ReplaceItems(day.ID, meals); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	d.Hub.BroadcastDayUpdated(uid, date)

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (d *DayController) ListDays(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	days, err := d.Days.ListDays(userID(c), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

// ListDaysWithMeals powers the calendar view: every logged date with its
// buckets.
func (d *DayController) ListDaysWithMeals(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	all, err := d.Days.AllDaysWithMeals(userID(c), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, all)
}
