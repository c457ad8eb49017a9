package core

import (
	"net/http"
	"time"

	"github.com/anoixa/group-gallery/internal/app"
	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// HealthHandler 健康检查处理器
type HealthHandler struct {
	container *app.Container
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(container *app.Container) *HealthHandler {
	return &HealthHandler{container: container}
}

// Handle GET /health，任一组件异常时返回 503
func (h *HealthHandler) Handle(c *gin.Context) {
	checks := h.container.HealthChecks(c.Request.Context())

	status, httpStatus := "ok", http.StatusOK
	for _, result := range checks {
		if result != "ok" && result != "disabled" {
			status, httpStatus = "degraded", http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(httpStatus, gin.H{
		"status":    status,
		"uptime":    time.Since(startTime).Round(time.Second).String(),
		"timestamp": time.Now().Unix(),
		"checks":    checks,
	})
}
