package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(Templates())
	r.GET("/health", HealthHandler)
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Status(http.StatusNotFound)
			return
		}
		RedirectHandler(c)
	})
	return r
}

func TestTemplatesParse(t *testing.T) {
	tmpl := Templates()
	require.NotNil(t, tmpl)
	assert.NotNil(t, tmpl.Lookup("home.tmpl"))
	assert.NotNil(t, tmpl.Lookup("notfound.tmpl"))
}

func TestHealthHandler(t *testing.T) {
	r := newTestRouter()

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

// 保留路径与非法短码在进存储层之前就返回 404
func TestRedirectReservedAndInvalidCodes(t *testing.T) {
	r := newTestRouter()

	for _, path := range []string{
		"/favicon.ico",
		"/robots.txt",
		"/this-code-is-way-too-long-to-be-valid",
		"/bad%20code",
	} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code, "path %s", path)
	}
}

func TestRedirectNonGetRejected(t *testing.T) {
	r := newTestRouter()

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/abc", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
