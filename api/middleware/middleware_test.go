package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/anoixa/group-gallery/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	jwtSvc, err := auth.NewJWTService("0123456789abcdef0123456789abcdef", time.Hour)
	require.NoError(t, err)
	token, _, err := jwtSvc.GenerateAccessToken(7, "a@example.com")
	require.NoError(t, err)

	router := gin.New()
	router.GET("/", JWTAuth(jwtSvc), func(c *gin.Context) {
		id, ok := GetUserID(c)
		require.True(t, ok)
		c.String(http.StatusOK, "%d", id)
	})

	w := serve(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "7", w.Body.String())

	for name, header := range map[string]string{
		"missing":      "",
		"wrong scheme": "ApiKey " + token,
		"no token":     "Bearer ",
		"bad token":    "Bearer abc.def.ghi",
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, http.StatusUnauthorized, serve(router, header).Code)
		})
	}
}

func TestGetUserID_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := GetUserID(c)
	assert.False(t, ok)
}

func TestIPRateLimiter(t *testing.T) {
	rl := NewIPRateLimiter(1, 2, time.Minute)
	defer rl.StopCleanup()

	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(router, "").Code)
	assert.Equal(t, http.StatusOK, serve(router, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(router, "").Code)

	rl.StopCleanup()
}

func TestIPRateLimiter_Disabled(t *testing.T) {
	rl := NewIPRateLimiter(0, 0, time.Minute)
	defer rl.StopCleanup()

	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, serve(router, "").Code)
	}
}

func TestConcurrencyLimiter(t *testing.T) {
	cl := NewConcurrencyLimiter(1)
	entered := make(chan struct{})
	release := make(chan struct{})

	router := gin.New()
	router.Use(cl.Middleware())
	router.GET("/", func(c *gin.Context) {
		entered <- struct{}{}
		<-release
		c.Status(http.StatusOK)
	})
	router.GET("/fast", func(c *gin.Context) { c.Status(http.StatusOK) })

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		serve(router, "")
	}()
	<-entered

	req := httptest.NewRequest(http.MethodGet, "/fast", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	close(release)
	wg.Wait()

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fast", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetrics(t *testing.T) {
	ResetMetrics()
	router := gin.New()
	router.Use(Metrics())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	serve(router, "")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	m := GetMetrics()
	assert.Equal(t, int64(2), m["request_count"])
	assert.Equal(t, int64(1), m["status_2xx"])
	assert.Equal(t, int64(1), m["status_4xx"])
	assert.Equal(t, int64(0), m["inflight"])
}
