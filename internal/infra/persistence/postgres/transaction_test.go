package postgres

import (
	"context"
	"testing"
	"time"

	"bookmarks/internal/domain/entity"
	"bookmarks/internal/domain/repository"
	"bookmarks/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_Commit(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "bookmarks" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(bookmarkColumns).AddRow(3, 1, "Go", "", "https://go.dev", time.Now(), time.Now()))
	mock.ExpectExec(`DELETE FROM "bookmarks"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tm.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		bookmarks := factory.BookmarkRepo()
		if _, err := bookmarks.FindByID(context.Background(), 3); err != nil {
			return err
		}

		return bookmarks.Delete(context.Background(), 3)
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)
	errDenied := errors.New("denied")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := tm.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		return errDenied
	})

	assert.ErrorIs(t, err, errDenied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollbackFailureKeepsOriginalError(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)
	errDenied := errors.New("denied")

	mock.ExpectBegin()
	mock.ExpectRollback().WillReturnError(errors.New("connection lost"))

	err := tm.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		return errDenied
	})

	assert.ErrorIs(t, err, errDenied)
	assert.Contains(t, err.Error(), "connection lost")
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = tm.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_BeginFailure(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	called := false
	err := tm.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		called = true

		return nil
	})

	assert.ErrorContains(t, err, "failed to begin transaction")
	assert.False(t, called)
}

func TestTransactionManager_CommitFailure(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	err := tm.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		return factory.UserRepo().Update(context.Background(), &entity.User{ID: 1, Email: "a@x.com"})
	})

	assert.ErrorContains(t, err, "failed to commit transaction")
}
