package core

import (
	"net/http"
	"time"

	"github.com/anoixa/group-gallery/api/middleware"
	"github.com/anoixa/group-gallery/config"
	"github.com/anoixa/group-gallery/internal/app"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// base64 编码膨胀约 4/3，再留出 JSON 字段的余量
const uploadBodyOverhead = 1 << 20

// NewRouter 创建 gin 引擎并注册全部中间件与路由，返回的 cleanup 用于停止后台任务
func NewRouter(container *app.Container) (*gin.Engine, func()) {
	cfg := container.GetConfig()

	// 仅在开发版本时启用 gin 日志
	if !config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	if config.IsDevelopment() {
		router.Use(gin.Logger())
	}
	router.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:     []string{cfg.BaseURL()},
		AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	_ = router.SetTrustedProxies(nil)

	// 请求体上限：base64 后的最大上传体积
	maxBody := int64(cfg.UploadMaxSizeMB)<<20*4/3 + uploadBodyOverhead
	router.Use(func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBody)
		}
		c.Next()
	})

	router.Use(middleware.NewConcurrencyLimiter(cfg.ServerMaxInflight).Middleware())
	router.Use(middleware.Metrics())

	authRateLimiter := middleware.NewIPRateLimiter(cfg.RateLimitAuthRPS, cfg.RateLimitAuthBurst, cfg.RateLimitExpireTime)
	apiRateLimiter := middleware.NewIPRateLimiter(cfg.RateLimitApiRPS, cfg.RateLimitApiBurst, cfg.RateLimitExpireTime)
	fileRateLimiter := middleware.NewIPRateLimiter(cfg.RateLimitFileRPS, cfg.RateLimitFileBurst, cfg.RateLimitExpireTime)
	cleanup := func() {
		authRateLimiter.StopCleanup()
		apiRateLimiter.StopCleanup()
		fileRateLimiter.StopCleanup()
	}

	// 解码上传内容占用内存，限制同时处理的上传数
	uploadSlots := cfg.ServerMaxInflight / 4
	if uploadSlots < 1 {
		uploadSlots = 1
	}

	RegisterRoutes(router, &RouterDependencies{
		Container:        container,
		AuthRateLimiter:  authRateLimiter,
		APIRateLimiter:   apiRateLimiter,
		FileRateLimiter:  fileRateLimiter,
		UploadLimiter:    middleware.NewConcurrencyLimiter(uploadSlots),
		UploadWaitWindow: 10 * time.Second,
	})

	return router, cleanup
}

// StartServer 创建 http.Server
func StartServer(container *app.Container) (*http.Server, func()) {
	cfg := container.GetConfig()
	router, cleanup := NewRouter(container)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	return srv, cleanup
}
