package main

import (
	"go-leave/internal/app"
	"go-leave/internal/bootstrap"
	"go-leave/internal/config"
	"go-leave/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := bootstrap.NewLogger(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	apperror.Init()

	// build dependency + routes
	application, err := app.BuildApp(cfg, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer application.Close()

	if err := bootstrap.StartHTTPServer(
		application.Router,
		bootstrap.ServerConfig{
			Port:               cfg.Server.Port,
			ReadTimeout:        cfg.Server.ReadTimeout,
			WriteTimeout:       cfg.Server.WriteTimeout,
			IdleTimeout:        cfg.Server.IdleTimeout,
			CorsAllowedOrigins: cfg.Server.CorsAllowedOrigins,
		},
	); err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}
