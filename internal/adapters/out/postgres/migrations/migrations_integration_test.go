package migrations_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"meddelivery/internal/adapters/out/postgres/migrations"
	"meddelivery/internal/adapters/out/postgres/pgtest"

	"github.com/stretchr/testify/suite"
)

type MigrationsIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
}

func (s *MigrationsIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	s.Require().NoError(err)
	s.database = database
}

func (s *MigrationsIntegrationTestSuite) TearDownSuite() {
	if s.database != nil {
		s.Require().NoError(s.database.Terminate(context.Background()))
	}
}

func (s *MigrationsIntegrationTestSuite) tables() []string {
	var tables []string
	err := s.database.DB.Raw(`
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = 'public' AND table_name <> 'schema_migrations'
		ORDER BY table_name
	`).Scan(&tables).Error
	s.Require().NoError(err)
	return tables
}

func (s *MigrationsIntegrationTestSuite) TestUpIsIdempotent() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.Require().NoError(migrations.Up(s.database.DSN, logger))

	s.Equal([]string{"drivers", "medicines", "order_items", "orders", "outbox", "pharmacies"}, s.tables())
}

func (s *MigrationsIntegrationTestSuite) TestDownThenUp() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.Require().NoError(migrations.Down(s.database.DSN))
	s.Empty(s.tables())

	s.Require().NoError(migrations.Up(s.database.DSN, logger))
	s.Len(s.tables(), 6)
}

func TestMigrationsIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MigrationsIntegrationTestSuite))
}
