package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/tick/internal/config"
	"github.com/phrazzld/tick/internal/platform/logger"
	"github.com/phrazzld/tick/internal/service"
	"github.com/phrazzld/tick/internal/store"
)

// application holds the server's wired dependencies.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	taskService service.TaskService
}

// initializeApp loads configuration and sets up application components.
// Returns the assembled application and any initialization error.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"storage_file", cfg.Storage.File)

	fileStore, err := store.NewFileStore(cfg.Storage.File, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create file store: %w", err)
	}

	taskService, err := service.NewTaskService(fileStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	return &application{
		config:      cfg,
		logger:      log,
		taskService: taskService,
	}, nil
}
