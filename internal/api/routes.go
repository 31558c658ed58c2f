package api

import (
	"net/http"

	"fitlife/fitness-api/internal/config"
	"fitlife/fitness-api/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	cfg config.Config,
	authService service.AuthService,
	profileService service.ProfileService,
	taskService service.TaskService,
	postureService service.PostureService,
	planService service.PlanService,
	progressService service.ProgressService,
) {
	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(profileService)
	taskHandler := NewTaskHandler(taskService)
	postureHandler := NewPostureHandler(postureService)
	planHandler := NewPlanHandler(planService)
	progressHandler := NewProgressHandler(progressService)
	catalogHandler := NewCatalogHandler()

	authMiddleware := AuthMiddleware(cfg.JWT.Secret)
	// One shared limiter across all AI-backed routes so a user cannot
	// split their quota over multiple endpoints.
	aiRateLimit := RateLimitMiddleware(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		apiV1.GET("/catalog/options", catalogHandler.Options)
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr})
		})

		profileGroup := protected.Group("/profile")
		{
			profileGroup.GET("", profileHandler.GetProfile)
			profileGroup.PATCH("", profileHandler.UpdateProfile)
			profileGroup.POST("/avatar/upload-url", profileHandler.AvatarUploadURL)
			profileGroup.PUT("/avatar", profileHandler.SetAvatar)
		}

		taskGroup := protected.Group("/tasks")
		{
			taskGroup.GET("/today", taskHandler.TodayTasks)
			taskGroup.PATCH("/:taskId", taskHandler.ToggleTask)
			taskGroup.GET("/streak", taskHandler.Streak)
		}

		postureGroup := protected.Group("/posture")
		{
			postureGroup.GET("/questions", postureHandler.Questions)
			postureGroup.POST("/questionnaire", postureHandler.SubmitQuestionnaire)
			postureGroup.POST("/analyze", aiRateLimit, postureHandler.AnalyzeSnapshot)
			postureGroup.GET("/history", postureHandler.History)
			postureGroup.POST("/exercises", postureHandler.Exercises)
			postureGroup.GET("/tips", postureHandler.Tips)
		}

		planGroup := protected.Group("/plans")
		{
			planGroup.POST("/generate", aiRateLimit, planHandler.Generate)
			planGroup.POST("/workout/complete", planHandler.CompleteExercise)
			planGroup.POST("/meals/complete", planHandler.CompleteMeal)
		}

		progressGroup := protected.Group("/progress")
		{
			progressGroup.POST("/weight", progressHandler.LogWeight)
			progressGroup.GET("/weight", progressHandler.WeightHistory)
			progressGroup.GET("/workouts", progressHandler.WorkoutHistory)
			progressGroup.GET("/meals", progressHandler.MealHistory)
		}
	}
}
