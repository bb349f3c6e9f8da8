package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/nmellal/gestock/config"
	"github.com/nmellal/gestock/pkg/cache"
	"github.com/nmellal/gestock/pkg/database/postgres"
	"github.com/nmellal/gestock/pkg/logger"

	commerceH "github.com/nmellal/gestock/internal/commerce/handler"
	commerceRepoPkg "github.com/nmellal/gestock/internal/commerce/repository"
	commerceUCPkg "github.com/nmellal/gestock/internal/commerce/usecase"

	catH "github.com/nmellal/gestock/internal/category/handler"
	catRepoPkg "github.com/nmellal/gestock/internal/category/repository"
	catUCPkg "github.com/nmellal/gestock/internal/category/usecase"

	prodH "github.com/nmellal/gestock/internal/product/handler"
	prodRepoPkg "github.com/nmellal/gestock/internal/product/repository"
	prodUCPkg "github.com/nmellal/gestock/internal/product/usecase"

	stockH "github.com/nmellal/gestock/internal/stock/handler"
	stockRepoPkg "github.com/nmellal/gestock/internal/stock/repository"
	stockUCPkg "github.com/nmellal/gestock/internal/stock/usecase"

	gestockHTTP "github.com/nmellal/gestock/internal/http"
	"github.com/nmellal/gestock/internal/upload"
	uploadH "github.com/nmellal/gestock/internal/upload/handler"
)

func main() {
	// 1. Load configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Redis
	var listCache cache.Client
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Redis, product list caching disabled", zap.Error(err))
	} else {
		defer redisClient.Close()
		listCache = redisClient
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	// 5. Initialize upload storage
	storage, err := upload.NewDiskStorage(cfg.Upload.Dir, cfg.Upload.PublicPath)
	if err != nil {
		appLogger.Fatal("Could not initialize upload storage", zap.Error(err))
	}

	// 6. Initialize repositories
	commerceRepo := commerceRepoPkg.NewPGRepository(db)
	catRepo := catRepoPkg.NewPGRepository(db)
	prodRepo := prodRepoPkg.NewPGRepository(db)
	stockRepo := stockRepoPkg.NewPGRepository(db)

	// 7. Initialize usecases
	commerceUC := commerceUCPkg.NewCommerceUseCase(commerceRepo, appLogger)
	catUC := catUCPkg.NewCategoryUseCase(catRepo, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, listCache, appLogger)
	stockUC := stockUCPkg.NewStockUseCase(stockRepo, listCache, appLogger)

	// 8. Initialize handlers
	commerceHandler := commerceH.NewCommerceHandler(commerceUC, appLogger)
	catHandler := catH.NewCategoryHandler(catUC, appLogger)
	prodHandler := prodH.NewProductHandler(prodUC, appLogger)
	stockHandler := stockH.NewStockHandler(stockUC, appLogger)
	uploadHandler := uploadH.NewUploadHandler(storage, appLogger)

	// 9. Start HTTP server
	router := gestockHTTP.NewRouter(
		commerceUC,
		commerceHandler,
		catHandler,
		prodHandler,
		stockHandler,
		uploadHandler,
		storage.Dir(),
		appLogger,
	)

	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
