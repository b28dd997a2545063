package main

import (
	"context"
	"log"
	"net/http"

	"go.uber.org/zap"

	"betroom-backend/internal/config"
	"betroom-backend/internal/httpapi"
	"betroom-backend/internal/hub"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	h := hub.NewHub(ctx, cfg.StartingStake, logger)

	// Build the router *with* the hub injected
	handler := httpapi.SetupRoutes(h)

	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
