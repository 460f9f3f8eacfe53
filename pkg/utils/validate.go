package utils

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

// 保留路径，不允许作为短码使用（与根路径下的固定资源冲突）
var reservedCodes = map[string]struct{}{
	"favicon.ico": {},
	"robots.txt":  {},
	"health":      {},
	"api":         {},
}

var shortCodePattern = regexp.MustCompile(`^[a-z0-9_-]{1,20}$`)

// NormalizeShortCode 统一转为小写（短码大小写不敏感）
func NormalizeShortCode(shortCode string) string {
	return strings.ToLower(strings.TrimSpace(shortCode))
}

// ValidateShortCode 校验 ShortCode 是否合法（需先 NormalizeShortCode）
func ValidateShortCode(shortCode string) error {
	if shortCode == "" {
		return fmt.Errorf("error.shortcode_required")
	}

	if ContainsWhitespace(shortCode) {
		return fmt.Errorf("error.shortcode_cannot_contain_spaces")
	}

	if !shortCodePattern.MatchString(shortCode) {
		return fmt.Errorf("error.shortcode_invalid")
	}

	if IsReservedCode(shortCode) {
		return fmt.Errorf("error.shortcode_reserved")
	}

	return nil
}

// IsReservedCode 判断短码是否为保留路径
func IsReservedCode(shortCode string) bool {
	_, ok := reservedCodes[shortCode]
	return ok
}

// NormalizeLongURL 目标 URL 缺少协议时补全 https://
func NormalizeLongURL(longURL string) string {
	longURL = strings.TrimSpace(longURL)
	if longURL == "" {
		return longURL
	}
	if !strings.HasPrefix(longURL, "http://") && !strings.HasPrefix(longURL, "https://") {
		longURL = "https://" + longURL
	}
	return longURL
}

// ValidateLongURL 校验目标 URL 的合法性
func ValidateLongURL(longURL string) error {
	// 1. 检查目标 URL 是否为空
	if longURL == "" {
		return fmt.Errorf("error.long_url_required")
	}

	// 2. URL 格式校验
	if _, err := url.ParseRequestURI(longURL); err != nil {
		return fmt.Errorf("error.long_url_invalid")
	}

	// 3. URL 长度限制
	if len(longURL) > 2048 {
		return fmt.Errorf("error.long_url_max_length")
	}
	return nil
}

func ContainsWhitespace(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) {
			return true
		}
	}
	return false
}
