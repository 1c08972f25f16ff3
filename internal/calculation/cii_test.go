package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCIIForYear(t *testing.T) {
	tests := []struct {
		name     string
		fyStart  int
		expected int64
	}{
		{"Base year", 2001, 100},
		{"FY 2005-06", 2005, 117},
		{"FY 2014-15", 2014, 240},
		{"FY 2024-25", 2024, 363},
		{"Latest tabulated year", 2025, 376},
		{"Future years clamp to the latest entry", 2030, 376},
		{"Pre-base years clamp to the base", 1995, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, CIIForYear(tt.fyStart).Equal(decimal.NewFromInt(tt.expected)),
				"CIIForYear(%d) = %s, want %d", tt.fyStart, CIIForYear(tt.fyStart), tt.expected)
		})
	}
}

func TestCIIResolvesFiscalYear(t *testing.T) {
	// January 2015 falls in FY 2014-15, not FY 2015-16.
	jan := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, CII(jan).Equal(decimal.NewFromInt(240)))

	apr := time.Date(2015, 4, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, CII(apr).Equal(decimal.NewFromInt(254)))
}

func TestCIIMonotonic(t *testing.T) {
	prev := decimal.Zero
	for year := ciiBaseYear; year <= ciiLatestYear; year++ {
		cur := CIIForYear(year)
		assert.True(t, cur.GreaterThan(prev), "CII for %d should exceed %d's", year, year-1)
		prev = cur
	}
}
