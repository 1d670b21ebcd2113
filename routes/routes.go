package routes

import (
	"github.com/grandonbarcia/health-tracker/config"
	"github.com/grandonbarcia/health-tracker/controllers"
	"github.com/grandonbarcia/health-tracker/middlewares"
	"github.com/grandonbarcia/health-tracker/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	foodSvc := services.NewFoodService(config.DB)
	daySvc := services.NewDayService(config.DB)
	settingsSvc := services.NewSettingsService(config.DB)
	recentSvc := services.NewRecentFoodService(config.DB)
	hub := services.NewRealtimeHub()
	syncSvc := services.NewSyncService(daySvc)

	authCtrl := controllers.NewAuthController(syncSvc)
	foodCtrl := controllers.NewFoodController(foodSvc)
	dayCtrl := controllers.NewDayController(daySvc, foodSvc, hub)
	recCtrl := controllers.NewRecommendationController(daySvc, foodSvc, settingsSvc)
	settingsCtrl := controllers.NewSettingsController(settingsSvc)
	recentCtrl := controllers.NewRecentFoodController(recentSvc, foodSvc)
	syncCtrl := controllers.NewSyncController(syncSvc, hub)
	rtCtrl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
		auth.POST("/verify-mfa", authCtrl.VerifyMFA)
		auth.POST("/forgot-password", authCtrl.ForgotPassword)
		auth.POST("/reset-password", authCtrl.ResetPassword)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)

		api.GET("/foods/search", foodCtrl.Search)
		api.GET("/foods/:id", foodCtrl.GetByID)

		api.GET("/days", dayCtrl.ListDays)
		api.GET("/calendar", dayCtrl.ListDaysWithMeals)
		api.GET("/days/:date", dayCtrl.LoadDay)
		api.PUT("/days/:date", dayCtrl.SaveDay)

		api.GET("/recommendations", recCtrl.Get)

		api.GET("/settings", settingsCtrl.Get)
		api.PUT("/settings", settingsCtrl.Update)

		api.GET("/recent-foods", recentCtrl.List)
		api.POST("/recent-foods", recentCtrl.Track)

		api.POST("/sync/day", syncCtrl.OpenDay)
		api.POST("/sync/resolve", syncCtrl.Resolve)

		api.GET("/ws", rtCtrl.Connect)
	}

	if config.Cfg.DevRoutes {
		dev := controllers.NewDevController(foodSvc)
		r.POST("/dev/seed-foods", dev.SeedFoods)
	}

	return r
}
