package decimal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupIndian(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Under a thousand keeps no separators", "999", "999.00"},
		{"Thousands group as three digits", "1234.5", "1,234.50"},
		{"One lakh", "100000", "1,00,000.00"},
		{"Ten lakh", "1000000", "10,00,000.00"},
		{"One crore twenty lakh", "12000000", "1,20,00,000.00"},
		{"Ten crore", "100000000", "10,00,00,000.00"},
		{"Negative amounts keep the sign outside", "-1234567.89", "-12,34,567.89"},
		{"Zero", "0", "0.00"},
		{"Paise round to two places", "1500.456", "1,500.46"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, GroupIndian(d))
		})
	}
}

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "₹1,20,00,000.00", FormatINR(decimal.NewFromInt(12000000)))
	assert.Equal(t, "₹50,00,000.00", FormatINR(Lakhs(50)))
}

func TestLakhsCrores(t *testing.T) {
	assert.True(t, Lakhs(1).Equal(decimal.NewFromInt(100000)))
	assert.True(t, Lakhs(50).Equal(decimal.NewFromInt(5000000)))
	assert.True(t, Crores(1).Equal(decimal.NewFromInt(10000000)))
	assert.True(t, Crores(10).Equal(decimal.NewFromInt(100000000)))
	assert.True(t, Crores(1).Equal(Lakhs(100)))
}
