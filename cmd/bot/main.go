package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/healthdesk/carebot/internal/bot"
	"github.com/healthdesk/carebot/internal/generator"
	"github.com/healthdesk/carebot/internal/router"
	"github.com/healthdesk/carebot/internal/storage"
	"github.com/healthdesk/carebot/pkg/config"
)

func main() {
	// Load .env for local development; in production the variables are
	// already in the environment.
	_ = godotenv.Load()

	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", "config.yaml"))
	}

	// Initialize storage
	var store storage.Storage
	if cfg.Database.UseInMemory {
		logger.Info("Using in-memory storage")
		store = storage.NewMemoryStorage()
	} else {
		logger.Info("Using PostgreSQL storage")
		store, err = storage.NewPostgresStorage(storage.DatabaseConfig{
			Host:        cfg.Database.Host,
			Port:        cfg.Database.Port,
			User:        cfg.Database.User,
			Password:    cfg.Database.Password,
			DBName:      cfg.Database.DBName,
			SSLMode:     cfg.Database.SSLMode,
			UseInMemory: cfg.Database.UseInMemory,
		})
		if err != nil {
			logger.Fatal("Failed to initialize storage", zap.Error(err))
		}
	}
	defer store.Close()

	// Initialize the response generator
	gen := generator.NewOpenAIGenerator(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.BaseURL,
		cfg.OpenAI.Model,
		cfg.OpenAI.MaxTokens,
		cfg.OpenAI.Temperature,
		logger,
	)

	// Build the query router; an invalid rule table is fatal before any
	// request is served.
	r, err := router.New(router.DefaultConfig(), gen, logger)
	if err != nil {
		logger.Fatal("Failed to build router", zap.Error(err))
	}

	// Initialize bot
	b, err := bot.New(cfg.Telegram.Token, r, store, cfg.History.Limit, logger)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	// Start the bot
	if err := b.Start(); err != nil {
		logger.Fatal("Bot error", zap.Error(err))
	}
}
