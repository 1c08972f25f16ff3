package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestFinancialYear(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		expected string
	}{
		{"January belongs to the previous fiscal year", "2015-01-01", "2014-15"},
		{"March 31 is the last day of the fiscal year", "2015-03-31", "2014-15"},
		{"April 1 starts a new fiscal year", "2015-04-01", "2015-16"},
		{"December stays in the same fiscal year", "2015-12-15", "2015-16"},
		{"Century rollover formats correctly", "2000-05-01", "2000-01"},
		{"2001 fiscal year", "2001-04-01", "2001-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FinancialYear(date(tt.date)))
		})
	}
}

func TestFinancialYearStart(t *testing.T) {
	assert.Equal(t, 2014, FinancialYearStart(date("2015-01-01")))
	assert.Equal(t, 2015, FinancialYearStart(date("2015-04-01")))
}

func TestComputeHoldingPeriod(t *testing.T) {
	tests := []struct {
		name       string
		purchase   string
		sale       string
		months     int
		years      int
		isLongTerm bool
	}{
		{
			name:     "Exactly two years is long term",
			purchase: "2020-01-01",
			sale:     "2022-01-01", // 731 days through leap year 2020
			months:   24, years: 2, isLongTerm: true,
		},
		{
			name:     "One day short of the threshold",
			purchase: "2020-01-01",
			sale:     "2021-12-31", // 730 days
			months:   23, years: 1, isLongTerm: false,
		},
		{
			name:     "Ten year hold",
			purchase: "2015-01-01",
			sale:     "2025-01-01",
			months:   120, years: 10, isLongTerm: true,
		},
		{
			name:     "Short flip",
			purchase: "2024-01-01",
			sale:     "2024-07-01",
			months:   5, years: 0, isLongTerm: false,
		},
		{
			name:     "Sale before purchase clamps to zero",
			purchase: "2024-01-01",
			sale:     "2023-01-01",
			months:   0, years: 0, isLongTerm: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hp := ComputeHoldingPeriod(date(tt.purchase), date(tt.sale))
			assert.Equal(t, tt.months, hp.Months)
			assert.Equal(t, tt.years, hp.Years)
			assert.Equal(t, tt.isLongTerm, hp.IsLongTerm)
		})
	}
}

func TestYearsBetween(t *testing.T) {
	years := YearsBetween(date("2015-01-01"), date("2025-01-01"))
	assert.InDelta(t, 10.0, years, 0.01)
}

func TestAddHelpers(t *testing.T) {
	assert.Equal(t, date("2025-07-01"), AddMonths(date("2025-01-01"), 6))
	assert.Equal(t, date("2027-01-01"), AddYears(date("2025-01-01"), 2))
}
