package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"unauthenticated", ErrUnauthenticated, http.StatusUnauthorized},
		{"wrapped not found", fmt.Errorf("%w: group 7", ErrNotFound), http.StatusNotFound},
		{"forbidden", fmt.Errorf("%w: owner only", ErrForbidden), http.StatusForbidden},
		{"invalid input", fmt.Errorf("%w: title is required", ErrInvalidInput), http.StatusBadRequest},
		{"conflict", ErrConflict, http.StatusConflict},
		{"internal", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestIsBusiness(t *testing.T) {
	assert.True(t, IsBusiness(fmt.Errorf("%w: x", ErrNotFound)))
	assert.False(t, IsBusiness(errors.New("disk full")))
}
