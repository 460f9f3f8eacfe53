package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"briskr-go/internal/apperrors"
	"briskr-go/internal/i18n"
	"briskr-go/response"
)

// GlobalErrorMiddleware 全局错误中间件：
// 将 handler 挂到 Context 上的 AppError 统一翻译为 JSON 响应，消息走 i18n
func GlobalErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// 如果有错误发生
		if len(c.Errors) > 0 {
			for _, err := range c.Errors {
				var appErr *apperrors.AppError
				if errors.As(err.Err, &appErr) {
					localized := *appErr
					localized.Message = i18n.Localize(c.Request.Context(), appErr.Message)
					c.AbortWithStatusJSON(localized.Code, response.ErrorFromAppError(&localized))
					return
				}
			}

			// 默认处理未定义的错误
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				response.Error(i18n.Localize(c.Request.Context(), "error.system")))
			return
		}
	}
}
