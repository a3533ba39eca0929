package postgres

import (
	"context"
	"testing"

	"bookmarks/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadinessChecker_Ready(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	checker := NewReadinessChecker(openGorm(t, sqlDB))

	mock.ExpectPing()
	assert.NoError(t, checker.Ready(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	err = checker.Ready(context.Background())
	assert.ErrorContains(t, err, "failed to ping PostgreSQL")

	assert.NoError(t, mock.ExpectationsWereMet())
}
