package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"invoice-assistant/config"
	_ "invoice-assistant/docs" // Swagger docs
	"invoice-assistant/internal/httpserver"
	"invoice-assistant/internal/invoice/repository"
	"invoice-assistant/internal/invoice/repository/cache"
	"invoice-assistant/internal/invoice/repository/memory"
	"invoice-assistant/internal/invoice/repository/postgre"
	"invoice-assistant/internal/invoice/usecase"
	"invoice-assistant/pkg/llmprovider"
	"invoice-assistant/pkg/log"
	"invoice-assistant/pkg/postgres"
)

// @title       Invoice Assistant API
// @description Bilingual (French/English) invoice Q&A for the dashboard chatbot widget.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Invoice Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage driver: %s", cfg.Storage.Driver)

	// 3. Invoice repository
	var (
		invoiceRepo repository.Repository
		readyCheck  func(ctx context.Context) error
	)

	switch cfg.Storage.Driver {
	case "postgres":
		db, dbErr := postgres.Connect(ctx, postgres.Config{
			DSN:             cfg.Postgres.DSN,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		})
		if dbErr != nil {
			logger.Error(ctx, "Failed to connect to PostgreSQL: ", dbErr)
			return
		}
		defer db.Close()

		invoiceRepo = postgre.New(db, logger)
		readyCheck = db.PingContext
		logger.Info(ctx, "✅ PostgreSQL invoice repository initialized")
	default:
		memRepo, memErr := memory.New(ctx, logger, memory.Options{
			SeedPath: cfg.Memory.SeedPath,
			Watch:    cfg.Memory.Watch,
		})
		if memErr != nil {
			logger.Error(ctx, "Failed to load invoice seed: ", memErr)
			return
		}
		defer memRepo.Close()

		invoiceRepo = memRepo
		logger.Infof(ctx, "✅ Memory invoice repository initialized from %s", cfg.Memory.SeedPath)
	}

	invoiceRepo = cache.New(invoiceRepo, cache.Options{
		Size: cfg.Cache.Size,
		TTL:  cfg.Cache.TTL,
	})

	// 4. Generative service (optional: answers fall back to templates without it)
	var generator usecase.Generator
	provider, err := llmprovider.InitializePrimary(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "No LLM provider available, template answers only: %v", err)
	} else {
		generator = llmprovider.NewManager(provider, logger)
		logger.Infof(ctx, "✅ LLM provider %s (%s), timeout %s", provider.Name(), provider.Model(), cfg.LLM.Timeout)
	}

	// 5. Invoice UseCase
	invoiceUC := usecase.New(logger, invoiceRepo, generator, usecase.Options{
		GenerationTimeout: cfg.LLM.Timeout,
		Currency:          cfg.Chatbot.Currency,
		MinMessageLength:  cfg.Chatbot.MinMessageLength,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		InvoiceUseCase:  invoiceUC,
		RateLimitPerMin: cfg.Chatbot.RateLimitPerMin,
		ReadyCheck:      readyCheck,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
