package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"briskr-go/internal/apperrors"
)

// AdminKeyHeader 管理密钥请求头
const AdminKeyHeader = "X-Admin-Key"

// AdminKeyQuery 管理密钥查询参数（浏览器场景）
const AdminKeyQuery = "key"

// AdminAuthMiddleware 管理密钥鉴权中间件。
// 密钥来自 X-Admin-Key 头或 ?key= 参数，常数时间比较，校验失败一律 401，
// 不区分"密钥错误"与"资源不存在"。
func AdminAuthMiddleware(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CheckAdminKey(c, adminKey) {
			zap.L().Warn("Admin key verification failed",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			_ = c.Error(apperrors.UnauthorizedError())
			c.Abort()
			return
		}
		c.Next()
	}
}

// CheckAdminKey 校验请求携带的管理密钥（头优先，其次查询参数）
func CheckAdminKey(c *gin.Context, adminKey string) bool {
	if adminKey == "" {
		// 未配置密钥时拒绝所有管理请求（启动时已校验，这里兜底）
		return false
	}

	supplied := c.GetHeader(AdminKeyHeader)
	if supplied == "" {
		supplied = c.Query(AdminKeyQuery)
	}
	if supplied == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(supplied), []byte(adminKey)) == 1
}
