package main

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"atsapi/internal/config"
	"atsapi/internal/database"
	"atsapi/internal/database/migration"
	"atsapi/internal/docstore"
	handlers "atsapi/internal/http/handler"
	"atsapi/internal/http/middleware"
	"atsapi/internal/otel"
	"atsapi/internal/service"
	"atsapi/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// The API stays up without a database: reads degrade to empty results and
	// writes fail with a store error, same as the rest of the degraded paths.
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logWarn("database_unavailable", err)
		db = nil
	} else {
		defer db.Close()
		if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Resume storage is optional; without it the resume endpoints report 503.
	var objStore storage.Storage
	if cfg.MinIO.Endpoint != "" {
		objStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			logWarn("object_storage_unavailable", err)
			objStore = nil
		}
	}

	store := docstore.NewPostgres(db)
	svcs := handlers.Services{
		Jobs:       service.NewJobService(store),
		Candidates: service.NewCandidateService(store, objStore),
		Interviews: service.NewInterviewService(store),
		Offers:     service.NewOfferService(store),
		Onboarding: service.NewOnboardingService(store),
		Messages:   service.NewMessageService(store),
		Metrics:    service.NewMetricsService(store),
		Seeder:     service.NewSeeder(store),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(cors.New())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, db, store, svcs)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func logWarn(msg string, err error) {
	entry := map[string]any{
		"ts":    time.Now().UTC().Format(time.RFC3339Nano),
		"level": "warn",
		"msg":   msg,
		"error": err.Error(),
	}
	if b, err := json.Marshal(entry); err == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}
