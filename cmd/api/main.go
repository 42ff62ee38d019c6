// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/farm-storefront/internal/config"
	"github.com/your-org/farm-storefront/internal/domain/cart"
	"github.com/your-org/farm-storefront/internal/domain/catalog"
	"github.com/your-org/farm-storefront/internal/domain/delivery"
	"github.com/your-org/farm-storefront/internal/domain/enquiry"
	"github.com/your-org/farm-storefront/internal/infrastructure/database/postgres"
	"github.com/your-org/farm-storefront/internal/infrastructure/database/redis"
	"github.com/your-org/farm-storefront/internal/interfaces/http"
	"github.com/your-org/farm-storefront/internal/interfaces/http/routes"
	"github.com/your-org/farm-storefront/internal/pkg/email"
	"github.com/your-org/farm-storefront/internal/pkg/logger"
	"github.com/your-org/farm-storefront/internal/pkg/session"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logr := logger.New(cfg)
	logr.Infof("starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Connect to database
	db, err := postgres.NewConnection(cfg, logr)
	if err != nil {
		logr.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()

	// Connect to Redis
	redisClient, err := redis.NewConnection(cfg, logr)
	if err != nil {
		logr.WithError(err).Fatal("failed to connect to Redis")
	}
	defer redisClient.Close()

	if err := db.Health(); err != nil {
		logr.WithError(err).Fatal("database health check failed")
	}

	// Run database migrations
	migration := postgres.NewMigration(db.GetDB(), logr)

	if err := migration.RunAutoMigrations(); err != nil {
		logr.WithError(err).Fatal("database migration failed")
	}

	if err := migration.CreateIndexes(); err != nil {
		logr.WithError(err).Warn("index creation failed")
	}

	if cfg.Database.SeedCatalog {
		if err := migration.SeedInitialData(); err != nil {
			logr.WithError(err).Warn("data seeding failed")
		}
	}

	// Domain services
	catalogRepo := catalog.NewCachedRepository(
		catalog.NewRepository(db.GetDB()), redisClient.Client(), cfg.Catalog.CacheTTL, logr)
	if err := catalogRepo.Invalidate(context.Background()); err != nil {
		logr.WithError(err).Warn("failed to reset catalog cache")
	}
	catalogService := catalog.NewService(catalogRepo, logr)

	cartStore := cart.NewStore(cfg.Cart.SessionTTL, cart.NewSessionManager(cfg.Cart.CurrencySign), logr)
	cartService := cart.NewService(cartStore, catalogService, cfg.Cart.CurrencySign, logr)

	deliveryService := delivery.NewService(delivery.NewRepository(db.GetDB()), cfg.Delivery.Pincodes, logr)
	if err := deliveryService.Load(context.Background()); err != nil {
		logr.WithError(err).Warn("pincode whitelist not loaded, will retry on first lookup")
	}

	var notifier enquiry.Notifier
	if cfg.Email.Provider != "none" {
		notifier = email.NewService(cfg, logr)
	}
	enquiryService := enquiry.NewService(enquiry.NewRepository(db.GetDB()), catalogService, notifier, logr)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go cartStore.Run(ctx, cfg.Cart.SweepInterval)

	deps := &routes.Dependencies{
		Sessions:      session.NewManager(cfg),
		SessionHeader: cfg.Session.Header,
		Catalog:       catalogService,
		Cart:          cartService,
		Delivery:      deliveryService,
		Enquiry:       enquiryService,
	}

	server := http.NewServer(cfg, logr, deps, redisClient.Client(), map[string]http.HealthChecker{
		"database": db,
		"redis":    redisClient,
	})

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logr.WithError(err).Fatal("failed to start HTTP server")
		}
	}()

	logr.Info("all systems operational")

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logr.Info("shutting down gracefully")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		logr.WithError(err).Error("failed to shutdown HTTP server gracefully")
	}

	logr.Info("server shutdown completed")
}
