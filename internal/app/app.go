package app

import (
	"context"
	"time"

	"go-leave/internal/config"
	"go-leave/internal/database"
	"go-leave/internal/middleware"
	"go-leave/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const migrateTimeout = 30 * time.Second

// App holds the router and the process-wide handles it was built with.
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

// Close releases the database pool and the redis client.
func (a *App) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// BuildApp connects the infrastructure, applies the schema and registers
// every route. Redis is optional: without redis.addr the statistics cache
// and idempotency keys are disabled.
func BuildApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	db, err := connection.ConnectGORMWithRetry(cfg.DSN(), cfg.Database.MaxRetries)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()
	if err := database.Migrate(ctx, db); err != nil {
		return nil, err
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
		if err != nil {
			return nil, err
		}
	} else {
		logger.Warn("redis.addr not set, statistics cache and idempotency keys disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router := NewRouter(logger, registry)
	if err := registerModules(router, cfg, db, rdb, registry, logger); err != nil {
		return nil, err
	}

	return &App{Router: router, DB: db, Redis: rdb}, nil
}

// NewRouter returns a gin engine with the cross-cutting middleware installed.
// Recovery is registered first so that it covers every route.
func NewRouter(logger *zap.Logger, reg prometheus.Registerer) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.NewMetrics(reg, "leave").Handler(),
	)
	return router
}
