package postgres

import (
	"context"
	"testing"
	"time"

	domainerrors "bookmarks/internal/domain/errors"
	"bookmarks/internal/domain/entity"
	"bookmarks/internal/domain/repository"
	"bookmarks/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "email", "password_hash", "first_name", "last_name", "created_at", "updated_at"}

func TestUserRepository_FindCredentialByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT .* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash"}).
			AddRow(1, "a@x.com", "$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$a2V5"))

	credential, err := repo.FindCredentialByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, &entity.Credential{
		UserID:       1,
		Email:        "a@x.com",
		PasswordHash: "$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$a2V5",
	}, credential)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindCredentialByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT .* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash"}))

	credential, err := repo.FindCredentialByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.Nil(t, credential)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindCredentialByEmail_DatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT .* FROM "users"`).WillReturnError(errors.New("connection refused"))

	_, err := repo.FindCredentialByEmail(context.Background(), "a@x.com")
	require.Error(t, err)

	var dbErr *domainerrors.DatabaseExecuteError
	require.True(t, errors.As(err, &dbErr))
	assert.Equal(t, "INTERNAL_ERROR", dbErr.ErrorCode())
	assert.NotErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	createdAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "a@x.com", "hash", "Ada", "Lovelace", createdAt, createdAt))

	user, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, &entity.User{
		ID:        1,
		Email:     "a@x.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	user, err := repo.Create(context.Background(), "a@x.com", "hash")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"})

	user, err := repo.Create(context.Background(), "a@x.com", "hash")
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
	assert.Nil(t, user)
}

func TestUserRepository_Create_DatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).WillReturnError(errors.New("disk full"))

	_, err := repo.Create(context.Background(), "a@x.com", "hash")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrDuplicateEmail)
	assert.Contains(t, err.Error(), "disk full")
}

func TestUserRepository_Update(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "updated",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE "users" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "missing user",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE "users" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: repository.ErrUserNotFound,
		},
		{
			name: "email taken",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE "users" SET`).WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			wantErr: repository.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserRepository(db)
			tt.setup(mock)

			user := &entity.User{ID: 1, Email: "new@x.com", FirstName: "Ada"}
			err := repo.Update(context.Background(), user)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.False(t, user.UpdatedAt.IsZero())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
