package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/anoixa/group-gallery/database/dbtest"
	"github.com/anoixa/group-gallery/database/repo/accounts"
	"github.com/anoixa/group-gallery/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLoginRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	db := dbtest.Open(t)
	jwtSvc, err := auth.NewJWTService("0123456789abcdef0123456789abcdef", time.Hour)
	require.NoError(t, err)

	h := NewLoginHandler(auth.NewLoginService(accounts.NewRepository(db), jwtSvc))
	router := gin.New()
	router.POST("/register", h.RegisterHandlerFunc)
	router.POST("/login", h.LoginHandlerFunc)
	return router
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	router := setupLoginRouter(t)

	w := postJSON(router, "/register", map[string]string{
		"email": "bob@example.com", "name": "Bob", "password": "hunter2hunter2",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "hunter2")
	assert.NotContains(t, w.Body.String(), "argon2")

	w = postJSON(router, "/register", map[string]string{
		"email": "BOB@example.com", "name": "Bob", "password": "hunter2hunter2",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = postJSON(router, "/login", map[string]string{"email": "bob@example.com", "password": "hunter2hunter2"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			AccessToken string `json:"access_token"`
			UserID      uint   `json:"user_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.True(t, strings.HasPrefix(resp.Data.AccessToken, "Bearer "))
	assert.NotZero(t, resp.Data.UserID)
}

func TestLogin_Errors(t *testing.T) {
	router := setupLoginRouter(t)
	postJSON(router, "/register", map[string]string{
		"email": "carol@example.com", "name": "Carol", "password": "password-123",
	})

	tests := []struct {
		name     string
		body     interface{}
		wantCode int
	}{
		{"missing fields", map[string]string{"email": "carol@example.com"}, http.StatusBadRequest},
		{"wrong password", map[string]string{"email": "carol@example.com", "password": "nope-nope"}, http.StatusUnauthorized},
		{"unknown user", map[string]string{"email": "dave@example.com", "password": "password-123"}, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, postJSON(router, "/login", tt.body).Code)
		})
	}

	w := postJSON(router, "/register", map[string]string{"email": "x@example.com", "name": "X", "password": "short"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
