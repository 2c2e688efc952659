// main.go
package main

import (
	"context"
	"log"

	"cinebook/cmd"
	"cinebook/internal/data/store"
	"cinebook/internal/wire"
	"cinebook/pkg/database"
	"cinebook/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Open the local store
	kv, err := database.InitStore(config.Store)
	if err != nil {
		logger.Fatal("Failed to open store", zap.Error(err))
	}
	defer kv.Close()

	logger.Info("Store opened successfully", zap.String("path", config.Store.Path))

	// Initialize all stores and seed the catalog on first run
	st := store.NewStore(kv, logger)
	if err := st.Seed(context.Background()); err != nil {
		logger.Fatal("Failed to seed catalog", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(st, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port, logger)
}
