package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/houndmaster/houndmaster/internal/adapter"
	"github.com/houndmaster/houndmaster/internal/analysis"
	"github.com/houndmaster/houndmaster/internal/api/server"
	"github.com/houndmaster/houndmaster/internal/config"
	"github.com/houndmaster/houndmaster/internal/listing"
	"github.com/houndmaster/houndmaster/internal/logger"
	"github.com/houndmaster/houndmaster/internal/providers/ethereum"
	"github.com/houndmaster/houndmaster/internal/providers/explorer"
	"github.com/houndmaster/houndmaster/internal/providers/gemini"
	"github.com/houndmaster/houndmaster/internal/providers/marketplace"
	"github.com/houndmaster/houndmaster/internal/ratelimit"
	"github.com/houndmaster/houndmaster/internal/scraper"
	"github.com/houndmaster/houndmaster/internal/store"
	"github.com/houndmaster/houndmaster/internal/verification"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Houndmaster API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	httpClient := adapter.NewHTTPClient(30 * time.Second)
	browser := adapter.NewChromeBrowser(scraper.AdServingDomains, scraper.BlockedExtensions)
	defer func() {
		if err := browser.Close(); err != nil {
			logger.Warn("Failed to close browser", zap.Error(err))
		}
	}()

	// Shared rate limiter pacing all external API calls
	limiter, err := ratelimit.NewLimiter(cfg.RateLimiter, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limiter", zap.Error(err))
	}
	defer limiter.Close()

	// Provider clients
	marketplaceClient := marketplace.NewClient(httpClient, limiter, cfg.Marketplace.BaseURL, jsonAdapter)
	explorerClient := explorer.NewClient(httpClient, limiter, cfg.Explorer, jsonAdapter)
	geminiClient := gemini.NewClient(httpClient, limiter, cfg.Gemini, jsonAdapter)
	onchainClient := ethereum.NewClient(adapter.NewEthClientDialer(), cfg.RPC, jsonAdapter)
	defer onchainClient.Close()

	// Services
	listingFetcher := listing.NewFetcher(marketplaceClient, clock, cfg.Marketplace)
	verificationSvc := verification.NewService(dataStore, explorerClient, clock, 10)
	siteScraper := scraper.NewScraper(browser, httpClient, cfg.Scraper)
	contractAnalyzer := analysis.NewContractAnalyzer(verificationSvc, geminiClient, onchainClient, jsonAdapter)
	websiteAnalyzer := analysis.NewWebsiteAnalyzer(dataStore, siteScraper, geminiClient, clock, jsonAdapter, cfg.Analysis)
	coordinator := analysis.NewCoordinator(contractAnalyzer, websiteAnalyzer, cfg.Analysis)

	// Create and start server
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}
	srv := server.New(serverConfig, listingFetcher, verificationSvc, coordinator)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Shutdown with its own timeout since the run context is already canceled
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
