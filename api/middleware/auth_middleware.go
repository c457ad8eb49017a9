package middleware

import (
	"net/http"
	"strings"

	"github.com/anoixa/group-gallery/api/common"
	"github.com/anoixa/group-gallery/internal/auth"
	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "user_id"
	ContextEmailKey  = "email"
)

// JWTAuth 校验 Bearer 访问令牌，并把用户信息写入上下文
func JWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			common.RespondErrorAbort(c, http.StatusUnauthorized, "No Authorization request header")
			return
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			common.RespondErrorAbort(c, http.StatusUnauthorized, "Unsupported authentication scheme")
			return
		}

		claims, err := jwtService.ExtractClaims(strings.TrimSpace(token))
		if err != nil {
			common.RespondErrorAbort(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextEmailKey, claims.Email)
		c.Next()
	}
}

// GetUserID 从上下文读取已认证的用户 ID
func GetUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}
