package database

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed schema.sql
var schemaSQL string

// Statements splits the embedded schema into single statements. The schema
// holds no function bodies, so a semicolon always ends a statement.
func Statements() []string {
	parts := strings.Split(schemaSQL, ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			stmts = append(stmts, p)
		}
	}
	return stmts
}

// Migrate applies the schema. Every statement is IF NOT EXISTS, so it is
// safe to run on every start.
func Migrate(ctx context.Context, db *gorm.DB) error {
	log := zap.L().Named("database.migrate")
	stmts := Statements()

	for i, stmt := range stmts {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("schema statement %d/%d: %w", i+1, len(stmts), err)
		}
	}

	log.Info("schema applied", zap.Int("statements", len(stmts)))
	return nil
}
