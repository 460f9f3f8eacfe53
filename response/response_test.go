package response

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"briskr-go/internal/apperrors"
)

func TestOK(t *testing.T) {
	resp := OK(map[string]string{"shortCode": "ab"}, "ok")
	assert.True(t, resp.Success)
	assert.Equal(t, "ok", resp.Message)
	assert.Equal(t, "ab", resp.Data["shortCode"])
	assert.NotZero(t, resp.Timestamp)
}

func TestErrorFromAppError(t *testing.T) {
	resp := ErrorFromAppError(apperrors.WithCode(http.StatusConflict, "error.shortcode_taken"))
	assert.False(t, resp.Success)
	assert.Equal(t, "error.shortcode_taken", resp.Message)
	assert.Nil(t, resp.Data)
}
