package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ybotev/staffdesk/internal/directory/assets"
	"github.com/ybotev/staffdesk/internal/directory/config"
	"github.com/ybotev/staffdesk/internal/directory/controller"
	"github.com/ybotev/staffdesk/internal/directory/db"
	"github.com/ybotev/staffdesk/internal/directory/events"
	"github.com/ybotev/staffdesk/internal/directory/handlers"
	"go.uber.org/zap"
)

func main() {
	logger := initLogger()
	defer func(logger *zap.Logger) {
		err := logger.Sync()
		if err != nil {
			logger.Error("failed to sync logger", zap.Error(err))
		}
	}(logger)

	cfg, err := config.Load(configPath())
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	repo, err := db.NewRepository(&db.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	})
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer repo.Close()

	producer, err := events.NewProducer(cfg.KafkaBrokers, logger, cfg.Topic)
	if err != nil {
		logger.Fatal("failed to initialize Kafka producer", zap.Error(err))
	}
	defer producer.Close()

	store, diskRoot, err := initAssetStore(cfg)
	if err != nil {
		logger.Fatal("failed to initialize asset store", zap.Error(err))
	}

	tokenTTL := time.Duration(cfg.TokenTTL) * time.Hour
	profileSvc := controller.NewProfileService(repo, store, producer, logger)
	employeeSvc := controller.NewEmployeeService(repo, store, producer, logger)
	authSvc := controller.NewAuthService(repo, cfg.JWTSecret, tokenTTL, logger)

	server := handlers.NewServer(cfg.HTTPPort, cfg.CORSOrigins, logger)
	if diskRoot != "" {
		server.ServeUploads("/uploads", diskRoot)
	}

	handler := handlers.NewHandler(profileSvc, employeeSvc, authSvc, logger)
	handler.Register(server.Engine(), cfg.JWTSecret, repo)

	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	waitForShutdown(server, logger)
}

// initLogger initializes a Zap production logger.
func initLogger() *zap.Logger {
	logger, _ := zap.NewProduction()
	return logger
}

func configPath() string {
	if path := os.Getenv("STAFFDESK_CONFIG"); path != "" {
		return path
	}
	return filepath.Join("internal", "directory", "config", "config.yaml")
}

// initAssetStore selects the storage driver. The returned root is
// non-empty only for the disk store, which the HTTP server must serve.
func initAssetStore(cfg *config.Config) (assets.Store, string, error) {
	switch cfg.StorageDriver {
	case "cdn":
		if cfg.CDNBaseURL == "" {
			return nil, "", fmt.Errorf("CDN_BASE_URL is required for the cdn storage driver")
		}
		return assets.NewCDNStore(cfg.CDNBaseURL, cfg.CDNAPIKey), "", nil
	case "", "disk":
		store, err := assets.NewDiskStore(cfg.UploadsDir, cfg.UploadsBaseURL)
		if err != nil {
			return nil, "", err
		}
		return store, store.Root(), nil
	default:
		return nil, "", fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// waitForShutdown blocks until an interrupt or SIGTERM is received, then
// shuts down the server.
func waitForShutdown(server *handlers.Server, logger *zap.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	server.Stop()
	logger.Info("Server stopped properly")
}
