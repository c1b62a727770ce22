package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/abdelrahmanemad10/GYM/internal/backup"
	"github.com/abdelrahmanemad10/GYM/internal/config"
	"github.com/abdelrahmanemad10/GYM/internal/handler"
	"github.com/abdelrahmanemad10/GYM/internal/integrations/openai"
	"github.com/abdelrahmanemad10/GYM/internal/middleware"
	"github.com/abdelrahmanemad10/GYM/internal/repository"
	"github.com/abdelrahmanemad10/GYM/internal/service"
	"github.com/abdelrahmanemad10/GYM/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := repository.Connect(cfg.DBType, cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Diet plan generation is optional; without an API key the
	// endpoints report it as not configured
	var diet service.DietGenerator
	if cfg.OpenAIKey != "" {
		client, err := openai.NewClient(cfg, logger)
		if err != nil {
			logger.Fatalf("Failed to init OpenAI client: %v", err)
		}
		diet = client
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, logger, cfg, diet)
	h := handler.NewHandler(svc)

	// Periodic whole-store backups
	backupRunner := backup.NewRunner(repo, logger, cfg.BackupDir, cfg.HMACSecret)
	if err := backupRunner.Start(cfg.BackupSpec); err != nil {
		logger.Fatalf("Failed to start backup runner: %v", err)
	}
	defer backupRunner.Stop()

	// Weekly progress summary emails
	sender := email.NewSender(cfg, logger)
	if sender.Enabled() {
		summaryCron := cron.New()
		if _, err := summaryCron.AddFunc(cfg.SummarySpec, func() {
			sendSummaries(repo, svc, sender, logger)
		}); err != nil {
			logger.Fatalf("Failed to schedule summary emails: %v", err)
		}
		summaryCron.Start()
		defer summaryCron.Stop()
	}

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	r.HandleFunc("/workout-plan", h.WorkoutPlan).Methods("GET")
	r.HandleFunc("/workout-plan/{day}", h.WorkoutDay).Methods("GET")
	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/progress", h.LogSet).Methods("POST")
	authRouter.HandleFunc("/progress/batch", h.LogBatch).Methods("POST")
	authRouter.HandleFunc("/progress", h.History).Methods("GET")
	authRouter.HandleFunc("/progress/export/xlsx", h.ExportHistoryXLSX).Methods("GET")
	authRouter.HandleFunc("/progress/export/xml", h.ExportHistoryXML).Methods("GET")
	authRouter.HandleFunc("/diet-plan", h.DietPlan).Methods("POST")
	authRouter.HandleFunc("/diet-plan/pdf", h.DietPlanPDF).Methods("GET")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}

// sendSummaries mails each user with an email address their recent progress
func sendSummaries(repo *repository.Repository, svc *service.Service, sender *email.Sender, logger *logrus.Logger) {
	users, err := repo.ListUsers()
	if err != nil {
		logger.Errorf("Failed to list users for summaries: %v", err)
		return
	}
	for _, user := range users {
		if user.Email == "" {
			continue
		}
		entries, err := svc.History(user.ID)
		if err != nil {
			logger.Errorf("Failed to load history for user %d: %v", user.ID, err)
			continue
		}
		if err := sender.SendProgressSummary(user.Email, user.Username, entries); err != nil {
			logger.Errorf("Failed to send summary to user %d: %v", user.ID, err)
		}
	}
}
