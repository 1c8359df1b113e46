package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/mux"

	"github.com/segyhp/finance-planner/internal/config"
	"github.com/segyhp/finance-planner/internal/handler"
	"github.com/segyhp/finance-planner/internal/repository"
	"github.com/segyhp/finance-planner/internal/service"
	"github.com/segyhp/finance-planner/pkg/response"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.SetFlags(cfg.LogFlags())

	// Initialize database
	db, err := repository.OpenDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	sealer, err := repository.NewSealer(cfg.Storage.ScenarioPassphrase)
	if err != nil {
		log.Fatalf("Failed to initialize scenario encryption: %v", err)
	}
	if !cfg.EncryptionEnabled() {
		log.Println("SCENARIO_PASSPHRASE not set, scenarios are stored unencrypted")
	}

	// Initialize cache
	cache, redisClient := repository.OpenCache(context.Background(), cfg.Redis)
	if redisClient != nil {
		defer redisClient.Close()
	}

	scenarioRepo := repository.NewScenarioRepository(db, sealer)

	plannerService := service.NewPlannerService(scenarioRepo, cache, cfg)
	plannerHandler := handler.NewPlannerHandler(plannerService)
	healthHandler := handler.NewHealthHandler(map[string]handler.Pinger{
		"database": db,
		"cache":    handler.PingerFunc(cache.Ping),
	}, cfg.GetHealthTimeout())

	// Setup routes
	router := setupRoutes(cfg, plannerHandler, healthHandler)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.GetReadTimeout(),
		WriteTimeout: cfg.GetWriteTimeout(),
	}

	go func() {
		log.Printf("Server starting on %s (%s, %s)", server.Addr, cfg.Server.Env, cfg.Database.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// setupRoutes wraps the router itself so CORS preflights are answered before route matching
func setupRoutes(cfg *config.Config, plannerHandler *handler.PlannerHandler, healthHandler *handler.HealthHandler) http.Handler {
	router := mux.NewRouter()

	// Health check
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")

	// API routes
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/debts/payoff", plannerHandler.PlanDebtPayoff).Methods("POST")
	api.HandleFunc("/debts/compare", plannerHandler.CompareDebtStrategies).Methods("POST")
	api.HandleFunc("/investments/projection", plannerHandler.ProjectInvestment).Methods("POST")
	api.HandleFunc("/savings/goal", plannerHandler.PlanSavingsGoal).Methods("POST")
	api.HandleFunc("/net-worth", plannerHandler.SummarizeNetWorth).Methods("POST")
	api.HandleFunc("/budgets/review", plannerHandler.ReviewBudget).Methods("POST")

	api.HandleFunc("/scenarios", plannerHandler.SaveScenario).Methods("POST")
	api.HandleFunc("/scenarios", plannerHandler.ListScenarios).Methods("GET")
	api.HandleFunc("/scenarios/{scenarioId}", plannerHandler.GetScenario).Methods("GET")
	api.HandleFunc("/scenarios/{scenarioId}", plannerHandler.DeleteScenario).Methods("DELETE")

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins(cfg.Server.CORSOrigins),
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", handler.UserIDHeader},
		MaxAge:         300,
	})

	return middleware.RequestID(middleware.Recoverer(response.LoggingMiddleware(corsHandler(router))))
}

func allowedOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
