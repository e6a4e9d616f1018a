package app

import (
	"context"
	"net/http"
	"time"

	"go-leave/internal/auth"
	"go-leave/internal/config"
	"go-leave/internal/dashboard"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/middleware"
	"go-leave/internal/rbac"
	"go-leave/internal/rbac/infra"
	"go-leave/internal/request"
	"go-leave/internal/token"
	"go-leave/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	idempotencyTTL = 24 * time.Hour
	healthTimeout  = 2 * time.Second
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *gorm.DB,
	rdb *redis.Client,
	registry *prometheus.Registry,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	userRepo := user.NewRepository(db)
	requestRepo := request.NewRepository(db)
	dashboardRepo := dashboard.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Auth Core ---
	tokens, err := token.NewService(cfg.JWT.Secret, cfg.JWT.TTL)
	if err != nil {
		return err
	}
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer, rbac.DefaultPolicies(), logger)
	if err != nil {
		return err
	}
	authenticator := middleware.NewAuthenticator(tokens, rbacService, cfg.Auth.InvalidTokenStatus)

	// --- Services ---
	authService := auth.NewService(userRepo, tokens, auth.NewBcryptHasher(bcrypt.DefaultCost), rdb, logger)
	userService := user.NewService(userRepo, rdb, logger)
	requestService := request.NewService(db, requestRepo, outboxRepo, rdb, logger)
	dashboardService := dashboard.NewService(dashboardRepo, rdb, cfg.Dashboard.CacheTTL, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	userHandler := user.NewHandler(userService, logger)
	requestHandler := request.NewHandler(requestService, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)

	var idempotency gin.HandlerFunc
	if rdb != nil {
		idempotency = middleware.Idempotency(rdb, idempotencyTTL)
	}

	// --- Routes Registration ---
	auth.RegisterRoutes(router, authHandler)
	user.RegisterRoutes(router, userHandler, authenticator)
	request.RegisterRoutes(router, requestHandler, authenticator, idempotency)
	dashboard.RegisterRoutes(router, dashboardHandler, authenticator, cfg.Dashboard.Guard)

	router.GET("/healthz", healthHandler(db))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return nil
}

// healthHandler answers 503 while the database does not respond to a ping.
func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
			defer cancel()
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
