// CLI entry point for the LegalAid-Assistant platform.
package main

import (
	"fmt"
	"os"

	"github.com/turtacn/LegalAid-Assistant/internal/application/assistant"
	appfeedback "github.com/turtacn/LegalAid-Assistant/internal/application/feedback"
	"github.com/turtacn/LegalAid-Assistant/internal/config"
	"github.com/turtacn/LegalAid-Assistant/internal/domain/dialog"
	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/database/postgres"
	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/database/postgres/repositories"
	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/LegalAid-Assistant/internal/interfaces/cli"
)

const defaultConfigPath = "configs/config.yaml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// CLI logging goes to stderr so command output stays pipeable.
	logger, err := logging.NewLogger(logging.Config{
		Level:            "warn",
		Format:           "console",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	})
	if err != nil {
		return err
	}

	deps := cli.Dependencies{
		Assistant: assistant.NewService(dialog.NewMemoryStore(), logger),
		Logger:    logger,
	}

	// The feedback commands need the database; everything else runs without
	// any infrastructure.
	if cfg.Feedback.Enabled {
		conn, err := postgres.NewConnection(cfg.Postgres, logger)
		if err != nil {
			logger.Warn("feedback database unavailable", logging.Err(err))
		} else {
			defer conn.Close()
			repo := repositories.NewFeedbackRepo(conn.DB(), logger)
			deps.Feedback = appfeedback.NewService(repo, logger)
		}
	}

	return cli.NewRootCommand(deps).Execute()
}

func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(defaultConfigPath); err != nil {
		return config.LoadFromEnv()
	}
	return config.Load(defaultConfigPath)
}
