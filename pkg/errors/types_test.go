package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		code     ErrorCode
		httpCode int
	}{
		{"not found", NotFound("podcast", uint(1)), ErrCodeNotFound, http.StatusNotFound},
		{"conflict", Conflict("favorites", "already in list"), ErrCodeConflict, http.StatusConflict},
		{"forbidden", Forbidden("podcast", uint(1)), ErrCodeForbidden, http.StatusForbidden},
		{"unauthorized", Unauthorized("missing token"), ErrCodeUnauthorized, http.StatusUnauthorized},
		{"validation", ValidationError("category", "does not exist"), ErrCodeValidation, http.StatusBadRequest},
		{"database", DatabaseError("query", fmt.Errorf("boom")), ErrCodeDatabaseQuery, http.StatusInternalServerError},
		{"transaction", TransactionError("commit", fmt.Errorf("boom")), ErrCodeTransaction, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpCode, tt.err.GetHTTPCode())
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestWrappedClassification(t *testing.T) {
	base := NotFound("episode", uint(7))
	wrapped := fmt.Errorf("loading episode: %w", base)

	assert.True(t, Is(wrapped, ErrCodeNotFound))
	assert.False(t, Is(wrapped, ErrCodeConflict))
	assert.Equal(t, ErrCodeNotFound, GetCode(wrapped))
	assert.Equal(t, http.StatusNotFound, GetHTTPCode(wrapped))

	plain := stderrors.New("plain")
	assert.Equal(t, ErrCodeInternal, GetCode(plain))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPCode(plain))
}

func TestUnwrapCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := TransactionError("commit", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, "commit", err.Details["operation"])
}
