package routes

import (
	"log/slog"

	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	db := config.DB

	llm := services.NewLLMClient()
	rek, err := services.NewRekognitionService()
	if err != nil {
		slog.Warn("rekognition unavailable, photo analysis runs without label hints", "error", err)
		rek = nil
	}
	vision := services.NewVisionService(llm, rek)

	foodSvc := services.NewFoodService(db)
	workoutSvc := services.NewWorkoutService(db)
	goalSvc := services.NewGoalService(db)
	historySvc := services.NewHistoryService(db)
	coachSvc := services.NewCoachService(db, llm)

	rt := services.NewRealtimeHub()
	push, err := services.NewPushService(db)
	if err != nil {
		slog.Warn("push notifications unavailable", "error", err)
		push = nil
	}
	services.InitAlertDeps(db, rt, push)

	foodCtl := controllers.NewFoodController(foodSvc, vision)
	workoutCtl := controllers.NewWorkoutController(workoutSvc)
	goalCtl := controllers.NewGoalController(goalSvc)
	historyCtl := controllers.NewHistoryController(historySvc)
	chatCtl := controllers.NewChatController(coachSvc)
	rtCtl := controllers.NewRealtimeController(rt)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/refresh", controllers.Refresh)
		auth.POST("/logout", controllers.Logout)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected routes
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)
		api.POST("/user/notifications/toggle", controllers.ToggleNotifications)

		api.POST("/food", foodCtl.Log)
		api.GET("/food", foodCtl.List)
		api.DELETE("/food/:id", foodCtl.Delete)
		api.POST("/food/analyze", foodCtl.AnalyzePhoto)

		api.POST("/workouts", workoutCtl.Log)
		api.GET("/workouts", workoutCtl.List)
		api.DELETE("/workouts/:id", workoutCtl.Delete)

		api.GET("/history", historyCtl.Get)

		api.GET("/goal", goalCtl.Get)
		api.PUT("/goal", goalCtl.Update)

		api.POST("/chat", chatCtl.Send)
		api.GET("/chat", chatCtl.History)
		api.DELETE("/chat", chatCtl.Clear)

		api.POST("/upload", controllers.UploadImage)

		api.GET("/ws/alerts", rtCtl.AlertsWS)
	}

	if push != nil {
		deviceCtl := controllers.NewDeviceController(push)
		api.POST("/user/devices", deviceCtl.Register)
	}

	return r
}
