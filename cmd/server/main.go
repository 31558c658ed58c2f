package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitlife/fitness-api/internal/ai"
	"fitlife/fitness-api/internal/api"
	"fitlife/fitness-api/internal/config"
	"fitlife/fitness-api/internal/email"
	"fitlife/fitness-api/internal/repository/mongo"
	"fitlife/fitness-api/internal/service"
	"fitlife/fitness-api/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

// @title FitLife Pro API
// @version 1.0
// @description API for profiles, daily tasks, posture assessments, AI-generated plans, and progress tracking.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log.Println("Starting FitLife Pro Server...")

	// --- Configuration ---
	// A local .env is optional; real deployments inject the environment.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env file.")
	}
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() { // Run index creation concurrently/in background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureProfileIndexes(ctx, appDB.Collection("profiles"))
		mongo.EnsureTaskIndexes(ctx, appDB.Collection("daily_tasks"))
		mongo.EnsurePostureAssessmentIndexes(ctx, appDB.Collection("posture_assessments"))
		mongo.EnsureWeightLogIndexes(ctx, appDB.Collection("weight_logs"))
		mongo.EnsureWorkoutLogIndexes(ctx, appDB.Collection("workout_logs"))
		mongo.EnsureMealLogIndexes(ctx, appDB.Collection("meal_logs"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	log.Println("Initializing file storage service...")
	var fileStorage storage.FileStorage
	if cfg.S3.BucketName != "" {
		fileStorage, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
		}
	} else {
		log.Println("WARN: S3 bucket not configured; snapshots and avatars disabled.")
	}

	// --- Initialize AI Gateway Client ---
	log.Println("Initializing AI gateway client...")
	aiClient := ai.NewClient(cfg.AI)

	// --- Initialize Mailer ---
	var mailer email.Mailer
	if cfg.Email.APIKey != "" {
		mailer, err = email.NewResendMailer(cfg.Email)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize mailer: %v", err)
		}
	} else {
		log.Println("WARN: Resend API key not configured; transactional email disabled.")
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	userRepo := mongo.NewMongoUserRepository(appDB)
	profileRepo := mongo.NewMongoProfileRepository(appDB)
	taskRepo := mongo.NewMongoTaskRepository(appDB)
	assessmentRepo := mongo.NewMongoAssessmentRepository(appDB)
	weightRepo := mongo.NewMongoWeightLogRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutLogRepository(appDB)
	mealRepo := mongo.NewMongoMealLogRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(userRepo, profileRepo, mailer, cfg.JWT.Secret, cfg.JWT.Expiration)
	profileService := service.NewProfileService(profileRepo, weightRepo, fileStorage)
	taskService := service.NewTaskService(taskRepo, profileRepo)
	postureService := service.NewPostureService(assessmentRepo, profileRepo, aiClient, fileStorage)
	planService := service.NewPlanService(aiClient, profileRepo, taskService, workoutRepo, mealRepo)
	progressService := service.NewProgressService(weightRepo, workoutRepo, mealRepo, profileRepo)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg, authService, profileService, taskService, postureService, planService, progressService)

	// --- CORS ---
	// Auth rides in the Authorization header, not cookies, so
	// credentialed CORS is unnecessary.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(router)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      corsHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 90 * time.Second, // AI calls can be slow
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
