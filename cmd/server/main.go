package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/nurlan-dev/Pomodoro_Tracker/internal/config"
	"github.com/nurlan-dev/Pomodoro_Tracker/internal/database"
	"github.com/nurlan-dev/Pomodoro_Tracker/internal/handlers"
	"github.com/nurlan-dev/Pomodoro_Tracker/internal/jobs"
	"github.com/nurlan-dev/Pomodoro_Tracker/internal/repository"
	cronjobs "github.com/nurlan-dev/Pomodoro_Tracker/internal/scheduler"
	"github.com/nurlan-dev/Pomodoro_Tracker/internal/services"
	"github.com/nurlan-dev/Pomodoro_Tracker/pkg/logger"
	"github.com/nurlan-dev/Pomodoro_Tracker/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	// Connect to MongoDB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	// --- Repositories ---
	userRepo := repository.NewUserRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	goalRepo := repository.NewGoalRepository(db)

	// --- Services ---
	userService := services.NewUserService(userRepo)
	settingsService := services.NewSettingsService(settingsRepo)
	achievementService := services.NewAchievementService(achievementRepo, sessionRepo)
	sessionService := services.NewSessionService(sessionRepo, taskRepo, achievementService)
	taskService := services.NewTaskService(taskRepo)
	statsService := services.NewStatsService(sessionRepo, settingsRepo)
	goalService := services.NewGoalService(goalRepo)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService, cfg)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	taskHandler := handlers.NewTaskHandler(taskService)
	achievementHandler := handlers.NewAchievementHandler(achievementService)
	statsHandler := handlers.NewStatsHandler(statsService, goalService)
	timerHandler := handlers.NewTimerHandler(sessionService, settingsService, cfg.JWTSecret)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()

	// Public user routes
	router.HandleFunc("/users/register", userHandler.RegisterUserHandler).Methods("POST")
	router.HandleFunc("/users/login", userHandler.LoginUserHandler).Methods("POST")

	// Protected user routes
	protectedUserRoutes := router.PathPrefix("/users").Subrouter()
	protectedUserRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedUserRoutes.Use(middleware.UpdateLastActiveMiddleware(userService))
	protectedUserRoutes.HandleFunc("/{id}", userHandler.GetUserHandler).Methods("GET")

	// Settings routes
	settingsRoutes := router.PathPrefix("/settings").Subrouter()
	settingsRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	settingsRoutes.HandleFunc("", settingsHandler.GetSettingsHandler).Methods("GET")
	settingsRoutes.HandleFunc("", settingsHandler.UpdateSettingsHandler).Methods("PUT")
	settingsRoutes.HandleFunc("/export", settingsHandler.ExportSettingsHandler).Methods("GET")
	settingsRoutes.HandleFunc("/import", settingsHandler.ImportSettingsHandler).Methods("POST")

	// Session routes
	sessionRoutes := router.PathPrefix("/sessions").Subrouter()
	sessionRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	sessionRoutes.HandleFunc("", sessionHandler.CompleteSessionHandler).Methods("POST")
	sessionRoutes.HandleFunc("", sessionHandler.GetSessionsHandler).Methods("GET")

	// Task routes
	taskRoutes := router.PathPrefix("/tasks").Subrouter()
	taskRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	taskRoutes.HandleFunc("", taskHandler.CreateTaskHandler).Methods("POST")
	taskRoutes.HandleFunc("", taskHandler.GetTasksHandler).Methods("GET")
	taskRoutes.HandleFunc("/{id}", taskHandler.GetTaskHandler).Methods("GET")
	taskRoutes.HandleFunc("/{id}", taskHandler.UpdateTaskHandler).Methods("PATCH")
	taskRoutes.HandleFunc("/{id}", taskHandler.DeleteTaskHandler).Methods("DELETE")

	// Achievement routes
	achievementRoutes := router.PathPrefix("/achievements").Subrouter()
	achievementRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	achievementRoutes.HandleFunc("", achievementHandler.GetAchievementsHandler).Methods("GET")

	// Stats routes
	statsRoutes := router.PathPrefix("/stats").Subrouter()
	statsRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	statsRoutes.HandleFunc("/today", statsHandler.GetTodayStatsHandler).Methods("GET")
	statsRoutes.HandleFunc("/weekly", statsHandler.GetWeeklyStatsHandler).Methods("GET")
	statsRoutes.HandleFunc("/goals", statsHandler.GetGoalsHandler).Methods("GET")

	// Timer WebSocket (authenticates via ?token= before upgrading)
	router.HandleFunc("/ws/timer", timerHandler.TimerWebSocketHandler)

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	// Background goal rollup
	rollup := jobs.NewGoalRollup(userRepo, sessionRepo, settingsService, goalService)
	cronjobs.StartRollupCronJobs(rollup)

	// Start the HTTP server
	port := cfg.Port
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // adjust to frontend origin
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)

	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
