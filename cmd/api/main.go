package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"shopease-api/internal/cache"
	"shopease-api/internal/client"
	"shopease-api/internal/config"
	"shopease-api/internal/logging"
	"shopease-api/internal/metrics"
	"shopease-api/internal/repository"
	"shopease-api/internal/server"
	"shopease-api/internal/service"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.Log.Level, cfg.Log.Format)
	m := metrics.Registry(cfg.Metrics.Namespace)

	db := client.InitMysqlClient(cfg.DatabaseURL)

	var dashboardCache *cache.Redis
	if cfg.Redis.Addr != "" {
		dashboardCache = cache.New(cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := dashboardCache.Ping(pingCtx); err != nil {
			logger.Warn("redis unreachable, dashboard cache disabled", "error", err)
			dashboardCache = nil
		}
		cancel()
	}

	storeRepo := repository.NewStoreRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	otpRepo := repository.NewOTPRepository(db)
	scanRepo := repository.NewScanRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	salesDataRepo := repository.NewSalesDataRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	svcs := server.Services{
		Auth:     service.NewAuthService(storeRepo, cfg.JWT.Secret, cfg.JWT.ExpiryHours),
		Customer: service.NewCustomerService(db, customerRepo, otpRepo, logger, m),
		Store:    service.NewStoreService(storeRepo),
		Section:  service.NewSectionService(sectionRepo),
		Offer:    service.NewOfferService(offerRepo, sectionRepo, m),
		Analytics: service.NewAnalyticsService(
			storeRepo, sectionRepo, scanRepo, salesDataRepo, analyticsRepo,
			dashboardCache, logger, m,
		),
		Export:   service.NewExportService(scanRepo, sectionRepo, salesDataRepo),
		Sale:     service.NewSaleService(db, saleRepo),
		Feedback: service.NewFeedbackService(storeRepo, feedbackRepo),
		QR:       service.NewQRService(storeRepo, sectionRepo, cfg.FrontendURL, m),
	}

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(cfg, logger, m, svcs)

	logger.Info("starting HTTP server", "addr", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	logger.Info("signal received, starting graceful shutdown")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
		os.Exit(1)
	}
}
