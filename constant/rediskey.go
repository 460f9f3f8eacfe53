package constant

import "fmt"

// 常量定义
const (
	BasePrefix = "briskr:"
)

// Redis 键模板
const (
	ShortCode = BasePrefix + "code:%s" // briskr:code:<shortcode> → 短链记录 JSON（空串表示负缓存）
	Totals    = BasePrefix + "totals"  // briskr:totals → 总量快照 JSON
)

// 缓存过期时间（秒）
const (
	ShortCodeTTL = 3600
	NegativeTTL  = 300
	TotalsTTL    = 1800
)

// GetShortCodeKey 生成 shortCode key
func GetShortCodeKey(shortcode string) string {
	return fmt.Sprintf(ShortCode, shortcode)
}

// GetTotalsKey 生成总量快照 key
func GetTotalsKey() string {
	return Totals
}
