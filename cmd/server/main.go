package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"codedrip/internal/cart"
	cartmetrics "codedrip/internal/cart/metrics"
	"codedrip/internal/cart/store/local"
	"codedrip/internal/cart/store/remote"
	"codedrip/internal/cart/store/resource"
	"codedrip/internal/catalog"
	httpapi "codedrip/internal/http"
	"codedrip/internal/identity"
	"codedrip/internal/order"
	ordermetrics "codedrip/internal/order/metrics"
	"codedrip/internal/platform/config"
	"codedrip/internal/platform/httpserver"
	"codedrip/internal/platform/logger"
	"codedrip/internal/platform/metrics"
	platformredis "codedrip/internal/platform/redis"
	"codedrip/internal/subscriber"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx := context.Background()

	var db *sql.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Error("postgres open failed", "error", err)
			os.Exit(1)
		}
		if err := db.PingContext(ctx); err != nil {
			log.Error("postgres ping failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connect failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Catalog.
	catalogStore := catalog.NewInMemoryStore(catalog.SeedProducts())
	catalogService := catalog.NewService(catalogStore, log)
	catalogHandler := catalog.NewHandler(catalogService, log)

	// Identity.
	tokens := identity.NewTokenService(cfg.SessionSigningKey, cfg.SessionTTL)
	users := identity.NewInMemoryUserStore()
	identityService := identity.NewService(users, tokens, log)
	authHandler := identity.NewHandler(identityService, log)

	// Cart. The remote mirror prefers Redis; the per-device local mirror is
	// always file backed.
	var remoteStore cart.RemoteStore
	if redisClient != nil {
		remoteStore = remote.NewRedis(redisClient.Client)
	} else {
		log.Warn("redis not configured, using in-memory remote cart store")
		remoteStore = remote.NewInMemory()
	}
	cartMetrics := cartmetrics.New()
	sessions := cart.NewSessionManager(func(deviceID string) cart.LocalStore {
		return local.NewFileStore(cfg.CartDataDir, deviceID)
	}, remoteStore, log, cartMetrics)
	cartHandler := cart.NewHandler(resource.NewInMemory(), remoteStore, log)
	sessionHandler := cart.NewSessionHandler(sessions, catalogService, log)

	// Orders. Postgres is the archive when configured.
	orderOpts := []order.Option{order.WithMetrics(ordermetrics.New())}
	if db != nil {
		archive := order.NewPostgres(db)
		if err := archive.Migrate(ctx); err != nil {
			log.Error("order migration failed", "error", err)
			os.Exit(1)
		}
		orderOpts = append(orderOpts, order.WithArchive(archive))
	}
	orderService := order.NewService(order.NewInMemoryStore(), log, orderOpts...)
	orderHandler := order.NewHandler(orderService, log)
	checkoutHandler := order.NewCheckoutHandler(sessions, catalogService, orderService, log)

	// Subscribers.
	var subscriberStore subscriber.Store
	if db != nil {
		pg := subscriber.NewPostgresStore(db)
		if err := pg.Migrate(ctx); err != nil {
			log.Error("subscriber migration failed", "error", err)
			os.Exit(1)
		}
		subscriberStore = pg
	} else {
		subscriberStore = subscriber.NewInMemoryStore()
	}
	subscriberHandler := subscriber.NewHandler(subscriber.NewService(subscriberStore, log), log)

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:      log,
		HTTPMetrics: metrics.New(),
		AdminToken:  cfg.AdminToken,
		Identity:    identityService,
		Catalog:     catalogHandler,
		Cart:        cartHandler,
		Session:     sessionHandler,
		Checkout:    checkoutHandler,
		Orders:      orderHandler,
		Auth:        authHandler,
		Subscriber:  subscriberHandler,
		HealthCheck: func(ctx context.Context) error {
			if db != nil {
				if err := db.PingContext(ctx); err != nil {
					return err
				}
			}
			if redisClient != nil {
				return redisClient.Health(ctx)
			}
			return nil
		},
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting codedrip", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
