package main

import (
	"fmt"
	"log"

	"mdt-registry/internal/config"
	"mdt-registry/internal/database"
	"mdt-registry/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	database.Init(cfg.DBDSN, logger)

	r := server.NewRouter(logger)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
