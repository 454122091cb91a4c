package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/product-catalog/pkg/app"
	"github.com/ghuser/product-catalog/pkg/cache"
	"github.com/ghuser/product-catalog/pkg/config"
	"github.com/ghuser/product-catalog/pkg/database"
	"github.com/ghuser/product-catalog/pkg/events"
	"github.com/ghuser/product-catalog/pkg/logger"
	"github.com/ghuser/product-catalog/pkg/telemetry"
	stockEvents "github.com/ghuser/product-catalog/services/inventory/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Cfg:      cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	errCh, err := a.EventBus.Subscribe(ctx, stockEvents.TopicStockChanged, handleStockChanged(a))
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", stockEvents.TopicStockChanged,
				"error", err,
			)
		}
	}()

	a.Logger.Info("event subscribers registered", "topics", []string{stockEvents.TopicStockChanged})
	return nil
}

// handleStockChanged returns a handler for stock.changed events.
// Handlers must be idempotent: EventBus retries up to 3x on failure, and
// Arm/Clear are both no-ops when the alert is already in the target state.
// The handler drops the product's cached read model and maintains the
// low-stock alert flag against the configured threshold.
func handleStockChanged(a *app.Application) func(context.Context, *message.Message) error {
	productCache := cache.NewProductCache(a.Redis)
	alerts := cache.NewLowStockAlerts(a.Redis)
	threshold := a.Cfg.LowStockThreshold

	return func(ctx context.Context, msg *message.Message) error {
		var evt stockEvents.StockChangedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		// The cached product view embeds stock; invalidation is best-effort
		// since the entry also expires via TTL.
		if err := productCache.Delete(ctx, evt.ProductID); err != nil {
			a.Logger.WarnContext(ctx, "cache invalidation failed for stock.changed",
				"product_id", evt.ProductID, "error", err)
		}

		if evt.NewStock < threshold {
			armed, err := alerts.Arm(ctx, evt.ProductID, evt.NewStock)
			if err != nil {
				return err
			}
			if armed {
				a.Logger.WarnContext(ctx, "product stock below threshold",
					"product_id", evt.ProductID,
					"stock", evt.NewStock,
					"threshold", threshold,
					"change", evt.ChangeAmount,
					"type", evt.Type,
				)
			}
			return nil
		}

		if err := alerts.Clear(ctx, evt.ProductID); err != nil {
			return err
		}
		return nil
	}
}
