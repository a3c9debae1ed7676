package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("user: %w", ErrNotFound), http.StatusNotFound},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", ErrForbidden, http.StatusForbidden},
		{"bad request", ErrBadRequest, http.StatusBadRequest},
		{"invalid input", ErrInvalidInput, http.StatusBadRequest},
		{"conflict", ErrConflict, http.StatusConflict},
		{"rate limit", ErrRateLimitExceeded, http.StatusTooManyRequests},
		{"app error code wins", New(http.StatusServiceUnavailable, "pool empty", ErrNotFound), http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatus(tt.err))
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	err := New(http.StatusBadRequest, "bad", ErrInvalidInput)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, ErrInvalidInput.Error(), err.Error())

	bare := New(http.StatusBadRequest, "only message", nil)
	assert.Equal(t, "only message", bare.Error())
}
