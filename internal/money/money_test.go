package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	got := Format(decimal.RequireFromString("149.97"))
	assert.Contains(t, got, "149.97")
	assert.Equal(t, "$", got[:1])

	assert.Contains(t, Format(decimal.RequireFromString("0.1")), "0.10")
	assert.Equal(t, "-$", Format(decimal.RequireFromString("-5"))[:2])
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "29.99", Plain(decimal.RequireFromString("29.99")))
	assert.Equal(t, "5.00", Plain(decimal.NewFromInt(5)))
}
