package controllers

import (
	"net/http"

	"github.com/grandonbarcia/health-tracker/config"
	"github.com/grandonbarcia/health-tracker/models"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, userID(c)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":       user.Email,
		"full_name":   user.FullName,
		"mfa_enabled": user.MFAEnabled,
	})
}

func UpdateProfile(c *gin.Context) {
	var body struct {
		FullName   *string `json:"full_name"`
		MFAEnabled *bool   `json:"mfa_enabled"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID(c)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	if body.FullName != nil {
		user.FullName = *body.FullName
	}
	if body.MFAEnabled != nil {
		user.MFAEnabled = *body.MFAEnabled
	}

	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}
