// Condition Tracker API
//
// REST API for daily wellbeing records, readiness gating, and
// comparative advice.
//
//	@title			Condition Tracker API
//	@version		1.0
//	@description	Track daily mood, sleep, steps, and stress; derive causal features, readiness status, and behavioral advice.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			records
//	@tag.description	Daily record endpoints
//
//	@tag.name			condition
//	@tag.description	Derived condition endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/midori-health/condition-tracker/internal/api"
	"github.com/midori-health/condition-tracker/internal/api/handler"
	"github.com/midori-health/condition-tracker/internal/config"
	"github.com/midori-health/condition-tracker/internal/domain"
	"github.com/midori-health/condition-tracker/internal/llm"
	"github.com/midori-health/condition-tracker/internal/repository"
	"github.com/midori-health/condition-tracker/internal/scheduler"
	"github.com/midori-health/condition-tracker/internal/seed"
	"github.com/midori-health/condition-tracker/internal/service"
	"github.com/midori-health/condition-tracker/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when no collector is configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "condition-tracker-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer shutdownTracer(ctx)

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.DailyRecord{}, &domain.Prediction{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db, cfg.SeedRand, cfg.SeedDays); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	recordRepo := repository.NewDailyRecordRepository(db)
	predictionRepo := repository.NewPredictionRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	recordService := service.NewRecordService(recordRepo, userRepo)
	conditionService := service.NewConditionService(recordRepo, userRepo, predictionRepo)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAISummaryModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, summary endpoint will be unavailable")
	}

	summaryService := service.NewSummaryService(conditionService, openaiClient)

	// Start the nightly snapshot batch
	batch, err := scheduler.New(recordRepo, predictionRepo, scheduler.Config{Timezone: cfg.SchedulerTimezone})
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	if err := batch.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer batch.Stop()

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	recordHandler := handler.NewRecordHandler(recordService)
	conditionHandler := handler.NewConditionHandler(conditionService, summaryService)

	// Setup router
	router := api.NewRouter(userHandler, recordHandler, conditionHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
