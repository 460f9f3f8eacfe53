package constant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetShortCodeKey(t *testing.T) {
	assert.Equal(t, "briskr:code:ab1", GetShortCodeKey("ab1"))
}

func TestGetTotalsKey(t *testing.T) {
	assert.Equal(t, "briskr:totals", GetTotalsKey())
}
