// API server entry point for the LegalAid-Assistant platform.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/turtacn/LegalAid-Assistant/internal/application/assistant"
	appfeedback "github.com/turtacn/LegalAid-Assistant/internal/application/feedback"
	"github.com/turtacn/LegalAid-Assistant/internal/config"
	"github.com/turtacn/LegalAid-Assistant/internal/domain/dialog"
	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/database/postgres"
	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/database/postgres/repositories"
	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/database/redis"
	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/messaging/kafka"
	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/storage/minio"
	httpserver "github.com/turtacn/LegalAid-Assistant/internal/interfaces/http"
	"github.com/turtacn/LegalAid-Assistant/internal/interfaces/http/handlers"
	"github.com/turtacn/LegalAid-Assistant/internal/interfaces/http/middleware"
)

const defaultConfigPath = "configs/config.yaml"

var version = "dev"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	port := flag.Int("port", 0, "HTTP server port (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}

	logger, err := logging.NewLogger(logging.Config{
		Level:            cfg.Log.Level,
		Format:           cfg.Log.Format,
		OutputPaths:      cfg.Log.OutputPaths,
		ErrorOutputPaths: cfg.Log.ErrorOutputPaths,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	logger.Info("starting legalaid api server",
		logging.String("version", version),
		logging.Int("port", cfg.Server.Port))

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited with error", logging.Err(err))
	}
}

// loadConfig reads configPath, falling back to environment-only loading when
// no config file exists.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(os.Stderr, "no config file at %s, using environment and defaults\n", path)
		return config.LoadFromEnv()
	}
	return config.Load(path)
}

func run(cfg *config.Config, logger logging.Logger) error {
	collector := prometheus.NewCollector(logger.Named("metrics"))
	metrics := prometheus.NewAppMetrics(collector)

	var checkers []handlers.HealthChecker

	// Session store: memory by default, redis for multi-replica deployments.
	var sessions dialog.SessionStore = dialog.NewMemoryStore()
	if cfg.Sessions.Backend == "redis" {
		client, err := redis.NewClient(cfg.Redis, logger.Named("redis"))
		if err != nil {
			return err
		}
		defer client.Close()
		sessions = redis.NewSessionStore(client, logger.Named("sessions"), cfg.Redis.KeyPrefix, cfg.Sessions.TTL)
		checkers = append(checkers, handlers.CheckerFunc{Component: "redis", Fn: client.HealthCheck})
	}

	// Analytics events are best effort and default to a no-op publisher.
	var events kafka.Publisher = kafka.NopPublisher{}
	if cfg.Kafka.Enabled {
		producer, err := kafka.NewProducer(cfg.Kafka, logger.Named("kafka"))
		if err != nil {
			return err
		}
		defer producer.Close()
		events = producer
	}

	// Document archive.
	var documents minio.DocumentStore = minio.NopStore{}
	if cfg.MinIO.Enabled {
		store, err := minio.NewStore(cfg.MinIO, logger.Named("minio"))
		if err != nil {
			return err
		}
		documents = store
	}

	assistantSvc := assistant.NewService(sessions, logger.Named("assistant"),
		assistant.WithMetrics(metrics),
		assistant.WithEvents(events),
		assistant.WithDocumentStore(documents),
		assistant.WithMaxDocumentSize(cfg.Documents.MaxSizeBytes),
	)

	var feedbackHandler *handlers.FeedbackHandler
	if cfg.Feedback.Enabled {
		conn, err := postgres.NewConnection(cfg.Postgres, logger.Named("postgres"))
		if err != nil {
			return err
		}
		defer conn.Close()

		if cfg.Postgres.MigrationPath != "" {
			if err := conn.Migrate(cfg.Postgres.MigrationPath); err != nil {
				return err
			}
		}

		repo := repositories.NewFeedbackRepo(conn.DB(), logger.Named("feedback"))
		feedbackSvc := appfeedback.NewService(repo, logger.Named("feedback"),
			appfeedback.WithMetrics(metrics),
			appfeedback.WithEvents(events),
		)
		feedbackHandler = handlers.NewFeedbackHandler(feedbackSvc, logger.Named("http"))
		checkers = append(checkers, handlers.CheckerFunc{Component: "postgres", Fn: conn.HealthCheck})
	}

	corsCfg := middleware.DefaultCORSConfig()
	rateCfg := middleware.DefaultRateLimitConfig()

	router := httpserver.NewRouter(httpserver.RouterConfig{
		AssistantHandler: handlers.NewAssistantHandler(assistantSvc, logger.Named("http")),
		FeedbackHandler:  feedbackHandler,
		HealthHandler:    handlers.NewHealthHandler(version, checkers...),
		Metrics:          metrics,
		MetricsHandler:   collector.Handler(),
		CORS:             &corsCfg,
		RateLimit:        &rateCfg,
		Logger:           logger.Named("http"),
	})

	server := httpserver.NewServer(cfg.Server, router, logger.Named("http"))

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("received shutdown signal", logging.String("signal", sig.String()))
	}

	return server.Stop(context.Background())
}
