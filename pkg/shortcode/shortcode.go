// Package shortcode 生成随机短码。
// 字母表仅用小写字母和数字，URL 更简洁；长度从 MinLength 起步，
// 码空间不足时由调用方逐步加长重试。
package shortcode

import (
	"crypto/rand"
	"fmt"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

const (
	// MinLength 初始短码长度
	MinLength = 2
	// MaxLength 最大短码长度
	MaxLength = 6
	// AttemptsPerLength 每个长度下的最大尝试次数
	AttemptsPerLength = 10
)

// Generate 生成指定长度的随机短码
func Generate(length int) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("shortcode: invalid length %d", length)
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("shortcode: %w", err)
	}

	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf), nil
}
