package errors

import (
	"context"
	"net/http"
	"testing"

	"bookmarks/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrNotFound.WithDetails("bookmark 7")

	assert.True(t, errors.Is(detailed, ErrNotFound))
	assert.True(t, errors.Is(errors.Wrap(detailed, "load"), ErrNotFound))
	assert.False(t, errors.Is(detailed, ErrForbidden))
	assert.Equal(t, "bookmark 7", detailed.Details())
	assert.Equal(t, http.StatusNotFound, detailed.HTTPCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	err := NewDatabaseExecuteError(context.DeadlineExceeded, "failed to find user by id")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "INTERNAL_ERROR", err.ErrorCode())
	assert.Equal(t, "Internal server error", err.Message())
	assert.Equal(t, "failed to find user by id", err.Details())
	assert.Contains(t, err.Error(), "database execution failed")
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
