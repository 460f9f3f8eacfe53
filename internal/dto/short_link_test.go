package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"briskr-go/internal/model"
)

func TestCreateShortLinkRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateShortLinkRequest
		wantErr bool
	}{
		{"url only", CreateShortLinkRequest{URL: "https://example.com/x"}, false},
		{"url and code", CreateShortLinkRequest{URL: "https://example.com", Code: "test"}, false},
		{"empty url", CreateShortLinkRequest{URL: ""}, true},
		{"bad url", CreateShortLinkRequest{URL: "not a url"}, true},
		{"bad code", CreateShortLinkRequest{URL: "https://example.com", Code: "Bad Code"}, true},
		{"reserved code", CreateShortLinkRequest{URL: "https://example.com", Code: "api"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewShortLinkResponse(t *testing.T) {
	clicked := time.Now()
	link := &model.ShortLink{
		ShortCode:   "test",
		LongURL:     "https://example.com/x",
		ClickCount:  3,
		LastClicked: &clicked,
		CreatedBy:   "anonymous",
	}

	resp := NewShortLinkResponse(link, "https://bris.kr/")
	assert.Equal(t, "https://bris.kr/test", resp.ShortURL)
	assert.Equal(t, "test", resp.ShortCode)
	assert.Equal(t, int64(3), resp.ClickCount)
	assert.Equal(t, "anonymous", resp.CreatedBy)
}
