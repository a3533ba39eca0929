package postgres

import (
	"context"
	"database/sql"
	"testing"

	"bookmarks/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gooseFunc = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error

func stubGoose(t *testing.T, target *gooseFunc, stub gooseFunc) {
	t.Helper()

	orig := *target
	*target = stub
	t.Cleanup(func() { *target = orig })
}

func TestMigrator_Commands(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	var calls []string
	record := func(name string) gooseFunc {
		return func(_ context.Context, db *sql.DB, dir string, _ ...goose.OptionsFunc) error {
			assert.Same(t, sqlDB, db)
			assert.Equal(t, ".", dir)
			calls = append(calls, name)

			return nil
		}
	}
	stubGoose(t, &gooseUpContext, record("up"))
	stubGoose(t, &gooseDownContext, record("down"))
	stubGoose(t, &gooseStatusContext, record("status"))

	m := NewMigrator(sqlDB, discardLogger())
	require.NoError(t, m.Up(context.Background()))
	require.NoError(t, m.Down(context.Background()))
	require.NoError(t, m.Status(context.Background()))

	assert.Equal(t, []string{"up", "down", "status"}, calls)
}

func TestMigrator_UpError(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	stubGoose(t, &gooseUpContext, func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return errors.New("boom")
	})

	err = NewMigrator(sqlDB, discardLogger()).Up(context.Background())
	assert.ErrorContains(t, err, "failed to apply migrations: boom")
}
