package main

import (
	"fmt"

	"go-leave/internal/auth"
	"go-leave/internal/config"
	"go-leave/internal/database"
	"go-leave/internal/user"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// connectFunc opens the database; connection.ConnectGORMWithRetry outside tests.
type connectFunc func(dsn string, maxRetries int) (*gorm.DB, error)

func newMigrateCmd(cfg *config.Config, connect connectFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := connect(cfg.DSN(), cfg.Database.MaxRetries)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}
			return database.Migrate(cmd.Context(), db)
		},
	}
}

func newCreateAdminCmd(cfg *config.Config, connect connectFunc) *cobra.Command {
	var (
		userID   string
		password string
		name     string
		email    string
	)

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		Example: `
# Create the first administrator
leave-admin create-admin --user-id=root --password=changeme --name="Root"
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if userID == "" {
				return fmt.Errorf("--user-id is required")
			}
			if password == "" {
				return fmt.Errorf("--password is required")
			}

			db, err := connect(cfg.DSN(), cfg.Database.MaxRetries)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			hash, err := auth.NewBcryptHasher(bcrypt.DefaultCost).Hash(password)
			if err != nil {
				return err
			}

			u := &user.User{UserID: userID, Password: hash, IsAdmin: true}
			if name != "" {
				u.Name = &name
			}
			if email != "" {
				u.Email = &email
			}
			if err := user.NewRepository(db).Create(cmd.Context(), u); err != nil {
				return fmt.Errorf("create admin %q: %w", userID, err)
			}

			zap.L().Info("admin created", zap.String("user_id", u.UserID))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "identifier the admin signs in with")
	cmd.Flags().StringVar(&password, "password", "", "initial password")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}
