package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anoixa/group-gallery/internal/errs"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"not found", fmt.Errorf("album %w", errs.ErrNotFound), http.StatusNotFound, "album not found"},
		{"forbidden", fmt.Errorf("%w: nope", errs.ErrForbidden), http.StatusForbidden, "forbidden: nope"},
		{"invalid", fmt.Errorf("%w: title is required", errs.ErrInvalidInput), http.StatusBadRequest, "invalid input: title is required"},
		{"unauthenticated", errs.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
		{"conflict", errs.ErrConflict, http.StatusConflict, "conflict"},
		{"internal", errors.New("connection reset by peer"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			RespondServiceError(c, tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			var resp Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "error", resp.Status)
			assert.Equal(t, tt.wantMsg, resp.Msg)
		})
	}
}

func TestRespondErrorAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondErrorAbort(c, http.StatusTooManyRequests, "Too many requests")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestParseIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, tt := range []struct {
		value string
		want  uint
		ok    bool
	}{
		{"42", 42, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
	} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: tt.value}}

		got, ok := ParseIDParam(c, "id")
		assert.Equal(t, tt.ok, ok, tt.value)
		assert.Equal(t, tt.want, got, tt.value)
		if !ok {
			assert.Equal(t, http.StatusBadRequest, w.Code)
		}
	}
}
