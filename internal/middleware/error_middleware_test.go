package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"briskr-go/internal/apperrors"
)

func TestGlobalErrorMiddlewareAppError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GlobalErrorMiddleware())
	r.GET("/conflict", func(c *gin.Context) {
		_ = c.Error(apperrors.ConflictError("error.shortcode_taken"))
	})
	r.GET("/plain", func(c *gin.Context) {
		_ = c.Error(assertableError{})
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/conflict", nil))
	assert.Equal(t, http.StatusConflict, rr.Code)
	// 无 Localizer 时消息回退为 key 本身
	assert.Contains(t, rr.Body.String(), "error.shortcode_taken")

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/plain", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

type assertableError struct{}

func (assertableError) Error() string { return "boom" }
