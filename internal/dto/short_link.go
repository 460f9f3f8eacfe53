package dto

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"briskr-go/internal/model"
	"briskr-go/pkg/utils"
)

// CreateShortLinkRequest 用于创建短链的请求参数
type CreateShortLinkRequest struct {
	URL       string `json:"url" binding:"required,max=2048"`
	Code      string `json:"code" binding:"omitempty,shortcode"` // 自定义短码，可选
	CreatedBy string `json:"createdBy" binding:"omitempty,max=64"`
}

// ShortLinkResponse 创建/查询短链的响应体
type ShortLinkResponse struct {
	ShortURL    string     `json:"shortUrl"`
	ShortCode   string     `json:"shortCode"`
	LongURL     string     `json:"longUrl"`
	CreatedAt   time.Time  `json:"createdAt"`
	ClickCount  int64      `json:"clickCount"`
	LastClicked *time.Time `json:"lastClicked"`
	CreatedBy   string     `json:"createdBy"`
}

// StatsResponse 管理端统计响应（最近 100 条 + 总数）
type StatsResponse struct {
	Total  int64               `json:"total"`
	Recent []ShortLinkResponse `json:"recent"`
}

// NewShortLinkResponse 由模型构造响应体
func NewShortLinkResponse(link *model.ShortLink, baseURL string) ShortLinkResponse {
	return ShortLinkResponse{
		ShortURL:    strings.TrimSuffix(baseURL, "/") + "/" + link.ShortCode,
		ShortCode:   link.ShortCode,
		LongURL:     link.LongURL,
		CreatedAt:   link.CreatedAt,
		ClickCount:  link.ClickCount,
		LastClicked: link.LastClicked,
		CreatedBy:   link.CreatedBy,
	}
}

// RegisterCustomValidators 在 gin 的 validator 引擎上注册 shortcode 标签
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("shortcode", func(fl validator.FieldLevel) bool {
			code := utils.NormalizeShortCode(fl.Field().String())
			return utils.ValidateShortCode(code) == nil
		})
	}
}

// Validate 自定义验证逻辑（绑定之后、入库之前调用，入参为规范化后的值）
func (r *CreateShortLinkRequest) Validate() error {
	// 1. 校验规范化后的目标 URL
	if err := utils.ValidateLongURL(r.URL); err != nil {
		return gin.Error{
			Err:  err,
			Type: gin.ErrorTypeBind,
		}
	}

	// 2. 自定义短码为可选项，存在时校验
	if r.Code != "" {
		if err := utils.ValidateShortCode(r.Code); err != nil {
			return gin.Error{
				Err:  err,
				Type: gin.ErrorTypeBind,
			}
		}
	}

	return nil
}
