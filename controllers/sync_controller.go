package controllers

import (
	"net/http"

	"github.com/grandonbarcia/health-tracker/services"

	"github.com/gin-gonic/gin"
)

type SyncController struct {
	Sync *services.SyncService
	Hub  *services.RealtimeHub
}

func NewSyncController(sync *services.SyncService, hub *services.RealtimeHub) *SyncController {
	return &SyncController{Sync: sync, Hub: hub}
}

type openDayInput struct {
	Date  string             `json:"date" binding:"required"`
	Local *services.DayMeals `json:"local"`
}

// OpenDay runs the sign-in reconciliation for one date. The response is
// either clean (adopt the returned meals) or a conflict carrying both
// versions, which the client must settle through Resolve.
func (s *SyncController) OpenDay(c *gin.Context) {
	var input openDayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validDate(input.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	result, err := s.Sync.OpenDay(c.Request.Context(), userID(c), input.Date, input.Local)
	if err != nil {
		// Context cancelled: the client navigated away, the result is stale.
		c.Status(http.StatusRequestTimeout)
		return
	}
	c.JSON(http.StatusOK, result)
}

type resolveInput struct {
	Date   string              `json:"date" binding:"required"`
	Choice services.Resolution `json:"choice" binding:"required"`
	Local  services.DayMeals   `json:"local"`
}

func (s *SyncController) Resolve(c *gin.Context) {
	var input resolveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validDate(input.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	uid := userID(c)
	meals, err := s.Sync.Resolve(c.Request.Context(), uid, input.Date, input.Choice, input.Local)
	if err != nil {
		if err == services.ErrUnknownResolution {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if input.Choice == services.ResolutionImportLocal {
		s.Hub.BroadcastDayUpdated(uid, input.Date)
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}
