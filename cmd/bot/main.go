package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brandpulse/reputation-bot/internal/analysis"
	"github.com/brandpulse/reputation-bot/internal/classify"
	"github.com/brandpulse/reputation-bot/internal/config"
	"github.com/brandpulse/reputation-bot/internal/models"
	"github.com/brandpulse/reputation-bot/internal/monitoring"
	"github.com/brandpulse/reputation-bot/internal/notifications"
	"github.com/brandpulse/reputation-bot/internal/scheduler"
	"github.com/brandpulse/reputation-bot/internal/storage"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up logging
	logrus.SetLevel(logrus.InfoLevel)
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})

	logrus.Infof("Starting reputation bot for %s", cfg.ProductName)

	// Initialize Azure storage
	storageClient, err := storage.NewAzureStorage(cfg.StorageAccount, cfg.StorageContainer)
	if err != nil {
		logrus.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize notification services
	notificationService := notifications.NewService(cfg)

	// Initialize classification pipeline
	var strategy classify.SentimentStrategy
	if cfg.EnableSentimentStrategy {
		strategy = classify.NewGeminiStrategy(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiRequestsPerMin)
		logrus.Info("Gemini sentiment strategy enabled")
	}
	scorer := classify.NewScorer(strategy, time.Duration(cfg.StrategyTimeoutSeconds)*time.Second)
	classifier := classify.NewClassifier(scorer, cfg.ClassifyWorkers)
	analyzer := analysis.NewAnalyzer(logrus.StandardLogger())

	// Initialize the pipeline service
	monitoringService := monitoring.NewService(cfg, storageClient, notificationService, classifier, analyzer)

	// Initialize scheduler
	schedulerService := scheduler.NewService(cfg, monitoringService)

	// Start scheduler
	if err := schedulerService.Start(); err != nil {
		logrus.Fatalf("Failed to start scheduler: %v", err)
	}
	defer schedulerService.Stop()

	// Set up HTTP server for health checks and manual triggers
	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", healthCheckHandler).Methods("GET")

	// Metrics endpoint
	router.HandleFunc("/metrics", metricsHandler(monitoringService)).Methods("GET")

	// Manual trigger endpoint (for testing)
	router.HandleFunc("/trigger", triggerHandler(monitoringService)).Methods("POST")

	// On-demand analysis of a posted batch
	router.HandleFunc("/analyze", analyzeHandler(monitoringService)).Methods("POST")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server in a goroutine
	go func() {
		logrus.Infof("HTTP server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","timestamp":"` + time.Now().Format(time.RFC3339) + `"}`))
}

func metricsHandler(monitoringService *monitoring.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics := monitoringService.GetMetrics()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(metrics))
	}
}

func triggerHandler(monitoringService *monitoring.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		go func() {
			if err := monitoringService.RunAnalysis(); err != nil {
				logrus.Errorf("Manual analysis trigger failed: %v", err)
			}
		}()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message":"Analysis triggered successfully"}`))
	}
}

func analyzeHandler(monitoringService *monitoring.Service) http.HandlerFunc {
	type analyzeRequest struct {
		Mentions []models.RawMention `json:"mentions"`
		Serp     []models.SERPResult `json:"serp_results,omitempty"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, fmt.Sprintf(`{"error":%q}`, err.Error()), http.StatusBadRequest)
			return
		}

		snapshot := monitoringService.AnalyzeBatch(r.Context(), req.Mentions, req.Serp)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logrus.Errorf("Failed to encode analysis response: %v", err)
		}
	}
}
