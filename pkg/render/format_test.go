package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1", "1.00"},
		{"1.5", "1.50"},
		{"1.25", "1.25"},
		{"1.255", "1.255"},
		{"0", "0.00"},
		{"100", "100.00"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatPrice(tc.in))
		})
	}
}

func TestFormatPricePassesThroughUnparseable(t *testing.T) {
	assert.Equal(t, "abc", FormatPrice("abc"))
	assert.Equal(t, "", FormatPrice(""))
	assert.Equal(t, "1.2.3", FormatPrice("1.2.3"))
}

func TestFormatPriceValue(t *testing.T) {
	assert.Equal(t, "1.25", FormatPriceValue(1.25))
	assert.Equal(t, "1.255", FormatPriceValue(1.255))
	assert.Equal(t, "1.50", FormatPriceValue(1.5))
	assert.Equal(t, "0.00", FormatPriceValue(0))
	assert.Equal(t, "199.99", FormatPriceValue(199.99))
}
