package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/hjumpers/backend/internal/application/catalog"
	checkoutapp "github.com/hjumpers/backend/internal/application/checkout"
	partnerapp "github.com/hjumpers/backend/internal/application/partner"
	settingsapp "github.com/hjumpers/backend/internal/application/settings"
	tradeapp "github.com/hjumpers/backend/internal/application/trade"
	"github.com/hjumpers/backend/internal/infrastructure/backup"
	"github.com/hjumpers/backend/internal/infrastructure/config"
	"github.com/hjumpers/backend/internal/infrastructure/logger"
	"github.com/hjumpers/backend/internal/infrastructure/persistence"
	"github.com/hjumpers/backend/internal/interfaces/http/handler"
	"github.com/hjumpers/backend/internal/interfaces/http/middleware"
	"github.com/hjumpers/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting storefront backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("store", cfg.Store.Path),
	)

	// Document store and application services
	store := persistence.NewFileStore(cfg.Store.Path, log)
	productService := catalogapp.NewProductService(store, log)
	orderService := tradeapp.NewOrderService(store, log)
	customerService := partnerapp.NewCustomerService(store, log)
	settingsService := settingsapp.NewService(store, log)
	checkoutService := checkoutapp.NewService(orderService, store, checkoutapp.Config{
		BusinessName:   cfg.WhatsApp.BusinessName,
		WhatsAppNumber: cfg.WhatsApp.Number,
	}, log)

	// Scheduled document snapshots
	if cfg.Backup.Enabled {
		snapshots := backup.NewScheduler(cfg.Store.Path, backup.Config{
			Dir:      cfg.Backup.Dir,
			Schedule: cfg.Backup.Schedule,
			Keep:     cfg.Backup.Keep,
		}, log)
		if err := snapshots.Start(); err != nil {
			log.Fatal("Failed to start backup scheduler", zap.Error(err))
		}
		defer snapshots.Stop()
	}

	// HTTP engine and middleware
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
		middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.HTTP.CORSAllowOrigins,
			AllowMethods: cfg.HTTP.CORSAllowMethods,
			AllowHeaders: cfg.HTTP.CORSAllowHeaders,
			MaxAge:       12 * time.Hour,
		}),
	)

	systemHandler := handler.NewSystemHandler(cfg.App.Name, cfg.App.Env)
	engine.GET("/health", systemHandler.Health)

	router.NewRouter(engine).
		Register(handler.NewProductHandler(productService)).
		Register(handler.NewOrderHandler(orderService)).
		Register(handler.NewCustomerHandler(customerService)).
		Register(handler.NewSettingsHandler(settingsService)).
		Register(handler.NewCheckoutHandler(checkoutService, productService)).
		Setup()

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
