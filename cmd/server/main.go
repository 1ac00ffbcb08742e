package main

import (
	"log"

	"taskboard/internal/config"
	"taskboard/internal/logging"
	"taskboard/internal/server"

	"go.uber.org/zap"
)

// @title           Taskboard API
// @version         1.0
// @description     API for managing Kanban boards, lists and cards.

// @host      localhost:5000
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		log.Fatalf("logger initialization failed: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	s, err := server.Init(cfg, logger)
	if err != nil {
		logger.Fatal("server initialization failed", zap.Error(err))
	}

	if err := s.Run(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
