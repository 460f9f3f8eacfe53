package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"briskr-go/internal/apperrors"
	"briskr-go/internal/dto"
	"briskr-go/internal/middleware"
	"briskr-go/internal/model"
	"briskr-go/internal/service"
	"briskr-go/pkg/logging"
	"briskr-go/response"
)

func baseURL() string {
	base := viper.GetString("server.base_url")
	if base == "" {
		base = "http://localhost:8080"
	}
	return base
}

// CreateShortLinkHandler 创建短链（管理密钥已由中间件校验）
func CreateShortLinkHandler(c *gin.Context) {
	var req dto.CreateShortLinkRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		// 记录请求上下文（方法、路径）
		zap.L().Warn("Request body binding failed",
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		_ = c.Error(apperrors.InvalidRequestErrorDefault())
		return
	}

	link, err := service.CreateShortLink(c.Request.Context(), req)
	if err != nil {
		// 记录关键业务参数和错误上下文
		zap.L().Warn("Short link creation failed",
			zap.Error(err),
			zap.String("short_code", req.Code),
		)
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response.OK(dto.NewShortLinkResponse(link, baseURL()), "ok"))
}

// StatsHandler 管理端统计：总数 + 最近记录
func StatsHandler(c *gin.Context) {
	total, links, err := service.GetStats(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	recent := make([]dto.ShortLinkResponse, 0, len(links))
	for i := range links {
		recent = append(recent, dto.NewShortLinkResponse(&links[i], baseURL()))
	}

	c.JSON(http.StatusOK, response.OK(dto.StatsResponse{
		Total:  total,
		Recent: recent,
	}, "ok"))
}

// RedirectHandler 短码跳转（公开路径）。
// 302 + 禁止缓存，保证每次访问都计入点击；未知短码返回纯 404 页面。
func RedirectHandler(c *gin.Context) {
	code := c.Request.URL.Path[1:] // /abc → abc

	longURL, err := service.ResolveAndCount(c.Request.Context(), code)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code != http.StatusNotFound {
			// 存储异常走 5xx，不能当作未知短码处理
			c.Status(appErr.Code)
			return
		}
		c.HTML(http.StatusNotFound, "notfound.tmpl", gin.H{})
		return
	}

	// 禁止中间缓存，否则后续访问不再回源计数
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Redirect(http.StatusFound, longURL)
}

// HomeHandler 首页：携带有效管理密钥时渲染管理面板，否则渲染公开落地页
func HomeHandler(c *gin.Context) {
	adminKey := viper.GetString("admin.key")
	if !middleware.CheckAdminKey(c, adminKey) {
		c.HTML(http.StatusOK, "home.tmpl", gin.H{
			"Admin": false,
		})
		return
	}

	totals, err := service.GetTotalsSnapshot()
	if err != nil {
		// 快照失败不阻塞面板渲染
		logging.Logger.Warn("Failed to load totals snapshot", zap.Error(err))
		totals = &service.TotalsSnapshot{}
	}

	_, links, err := service.GetStats(c.Request.Context())
	if err != nil {
		logging.Logger.Warn("Failed to load recent links", zap.Error(err))
		links = []model.ShortLink{}
	}

	recent := make([]dto.ShortLinkResponse, 0, len(links))
	for i := range links {
		recent = append(recent, dto.NewShortLinkResponse(&links[i], baseURL()))
	}

	c.HTML(http.StatusOK, "home.tmpl", gin.H{
		"Admin":       true,
		"Key":         c.Query(middleware.AdminKeyQuery),
		"TotalLinks":  totals.TotalLinks,
		"TotalClicks": totals.TotalClicks,
		"Recent":      recent,
	})
}

// HealthHandler 健康检查
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
