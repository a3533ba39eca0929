package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"bookmarks/internal/errors"
	"bookmarks/internal/infra/persistence/migrations"

	"github.com/pressly/goose/v3"
)

// Seams for the goose package-level API.
var (
	gooseUpContext     = goose.UpContext
	gooseDownContext   = goose.DownContext
	gooseStatusContext = goose.StatusContext
)

// Migrator applies the embedded goose migrations to a database.
type Migrator struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewMigrator binds the embedded migrations to db.
func NewMigrator(db *sql.DB, logger *slog.Logger) *Migrator {
	return &Migrator{db: db, logger: logger}
}

// Up applies every pending migration.
func (m *Migrator) Up(ctx context.Context) error {
	if err := m.prepare(); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}
	m.logger.Info("Database migrations applied")

	return nil
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context) error {
	if err := m.prepare(); err != nil {
		return err
	}
	if err := gooseDownContext(ctx, m.db, "."); err != nil {
		return errors.Wrap(err, "failed to roll back migration")
	}
	m.logger.Info("Database migration rolled back")

	return nil
}

// Status prints the applied state of every migration.
func (m *Migrator) Status(ctx context.Context) error {
	if err := m.prepare(); err != nil {
		return err
	}

	return errors.Wrap(gooseStatusContext(ctx, m.db, "."), "failed to read migration status")
}

func (m *Migrator) prepare() error {
	goose.SetBaseFS(migrations.FS)

	return errors.Wrap(goose.SetDialect("postgres"), "failed to set goose dialect")
}
