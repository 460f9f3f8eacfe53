package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testAdminKey = "secret-key-for-tests"

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GlobalErrorMiddleware())
	admin := r.Group("/api", AdminAuthMiddleware(testAdminKey))
	admin.GET("/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAdminAuthMiddleware(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name           string
		header         string
		query          string
		expectedStatus int
	}{
		{"valid header", testAdminKey, "", http.StatusOK},
		{"valid query", "", testAdminKey, http.StatusOK},
		{"missing key", "", "", http.StatusUnauthorized},
		{"wrong header", "wrong", "", http.StatusUnauthorized},
		{"wrong query", "", "wrong", http.StatusUnauthorized},
		{"header wins over query", testAdminKey, "wrong", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := "/api/stats"
			if tt.query != "" {
				path += "?key=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, path, nil)
			if tt.header != "" {
				req.Header.Set(AdminKeyHeader, tt.header)
			}

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusUnauthorized {
				// 错误走统一 JSON 信封
				assert.Contains(t, rr.Body.String(), `"success":false`)
			}
		})
	}
}

func TestAdminAuthMiddlewareEmptyConfiguredKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GlobalErrorMiddleware())
	// 未配置密钥时必须拒绝所有请求，而不是放行
	r.GET("/api/stats", AdminAuthMiddleware(""), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.Header.Set(AdminKeyHeader, "")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
