package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeShortCode(t *testing.T) {
	assert.Equal(t, "abc", NormalizeShortCode("ABC"))
	assert.Equal(t, "a1-b_2", NormalizeShortCode("  A1-b_2  "))
	assert.Equal(t, "", NormalizeShortCode("   "))
}

func TestValidateShortCode(t *testing.T) {
	tests := []struct {
		name      string
		shortCode string
		wantErr   bool
	}{
		{"valid short", "ab", false},
		{"valid with dash and underscore", "my-code_1", false},
		{"valid max length", strings.Repeat("a", 20), false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 21), true},
		{"uppercase rejected", "ABC", true},
		{"whitespace", "a b", true},
		{"slash rejected", "a/b", true},
		{"unicode rejected", "코드", true},
		{"reserved health", "health", true},
		{"reserved api", "api", true},
		{"reserved favicon", "favicon.ico", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateShortCode(tt.shortCode)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsReservedCode(t *testing.T) {
	assert.True(t, IsReservedCode("robots.txt"))
	assert.True(t, IsReservedCode("health"))
	assert.False(t, IsReservedCode("abc"))
}

func TestNormalizeLongURL(t *testing.T) {
	assert.Equal(t, "https://example.com", NormalizeLongURL("example.com"))
	assert.Equal(t, "https://example.com", NormalizeLongURL("  https://example.com "))
	assert.Equal(t, "http://example.com", NormalizeLongURL("http://example.com"))
	assert.Equal(t, "", NormalizeLongURL(""))
}

func TestValidateLongURL(t *testing.T) {
	assert.NoError(t, ValidateLongURL("https://example.com/x?a=1"))
	assert.Error(t, ValidateLongURL(""))
	assert.Error(t, ValidateLongURL("not a url"))
	assert.Error(t, ValidateLongURL("https://example.com/"+strings.Repeat("a", 2048)))
}
