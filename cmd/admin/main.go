package main

import (
	"os"

	"go-leave/internal/bootstrap"
	"go-leave/internal/config"
	"go-leave/internal/shared/connection"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:           "leave-admin",
	Short:         "Operational commands for the leave service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

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

	rootCmd.AddCommand(
		newMigrateCmd(cfg, connection.ConnectGORMWithRetry),
		newCreateAdminCmd(cfg, connection.ConnectGORMWithRetry),
	)
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
