// Package pgtest starts a migrated PostgreSQL container for integration suites.
package pgtest

import (
	"context"
	"io"
	"log/slog"
	"time"

	"meddelivery/internal/adapters/out/postgres/migrations"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database is a running container with the schema applied.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
	DSN       string
}

func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	database := &Database{Container: container}

	database.DSN, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = database.Terminate(ctx)
		return nil, err
	}

	if err = migrations.Up(database.DSN, slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		_ = database.Terminate(ctx)
		return nil, err
	}

	database.DB, err = gorm.Open(gormpostgres.Open(database.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = database.Terminate(ctx)
		return nil, err
	}

	return database, nil
}

// Truncate empties every table.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE outbox, order_items, orders, medicines, pharmacies, drivers CASCADE").Error
}

func (d *Database) Terminate(ctx context.Context) error {
	if d.DB != nil {
		if sqlDB, err := d.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return d.Container.Terminate(ctx)
}
