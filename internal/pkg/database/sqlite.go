package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/digiration/digiration/internal/pkg/models"
)

// SQLiteClient wraps the single relational store. It is constructed by
// the process entry point and injected into each repository; there is no
// process-wide handle.
type SQLiteClient struct {
	db *sqlx.DB
}

// NewSQLiteClient opens the database file, applies pragmas and ensures
// the schema exists.
func NewSQLiteClient(config models.DatabaseConfig) (*SQLiteClient, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)",
		config.Path,
		config.BusyTimeout,
	)

	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if config.MaxConns > 0 {
		db.SetMaxOpenConns(config.MaxConns)
	}
	db.SetConnMaxLifetime(1 * time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &SQLiteClient{db: db}, nil
}

// GetDB returns the underlying sqlx handle
func (c *SQLiteClient) GetDB() *sqlx.DB {
	return c.db
}

// Ping verifies the connection is alive
func (c *SQLiteClient) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Close closes the database
func (c *SQLiteClient) Close() error {
	return c.db.Close()
}
