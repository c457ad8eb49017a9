package middleware

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	requestCount    atomic.Int64
	requestDuration atomic.Int64 // in milliseconds
	inflight        atomic.Int64
	status2xx       atomic.Int64
	status4xx       atomic.Int64
	status5xx       atomic.Int64
)

// Metrics 基础监控指标中间件
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		inflight.Add(1)
		c.Writer.Header().Set("X-Request-Count", strconv.FormatInt(requestCount.Load(), 10))

		c.Next()

		inflight.Add(-1)
		requestDuration.Add(time.Since(startTime).Milliseconds())
		requestCount.Add(1)

		switch status := c.Writer.Status(); {
		case status >= 500:
			status5xx.Add(1)
		case status >= 400:
			status4xx.Add(1)
		default:
			status2xx.Add(1)
		}
	}
}

// GetMetrics 获取当前指标
func GetMetrics() map[string]interface{} {
	count := requestCount.Load()
	duration := requestDuration.Load()
	avg := 0.0
	if count > 0 {
		avg = float64(duration) / float64(count)
	}
	return map[string]interface{}{
		"request_count":       count,
		"request_duration_ms": duration,
		"avg_duration_ms":     avg,
		"inflight":            inflight.Load(),
		"status_2xx":          status2xx.Load(),
		"status_4xx":          status4xx.Load(),
		"status_5xx":          status5xx.Load(),
	}
}

// ResetMetrics 重置指标，用于测试
func ResetMetrics() {
	requestCount.Store(0)
	requestDuration.Store(0)
	inflight.Store(0)
	status2xx.Store(0)
	status4xx.Store(0)
	status5xx.Store(0)
}
