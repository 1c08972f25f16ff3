package dateutil

import (
	"fmt"
	"math"
	"time"
)

// AvgDaysPerMonth is the average Gregorian month length used to convert a
// whole-day span into elapsed months.
const AvgDaysPerMonth = 30.44

// LongTermThresholdMonths is the statutory holding period above which a
// transfer of immovable property is a long-term capital asset.
const LongTermThresholdMonths = 24

// HoldingPeriod describes the elapsed time between purchase and sale of an
// asset and its resulting tax classification.
type HoldingPeriod struct {
	Months     int  `json:"months"`
	Years      int  `json:"years"`
	IsLongTerm bool `json:"is_long_term"`
}

// FinancialYearStart returns the calendar year in which the Indian fiscal
// year (April 1 - March 31) containing t begins. A date in Jan-Mar of
// calendar year Y belongs to the fiscal year starting in Y-1.
func FinancialYearStart(t time.Time) int {
	if t.Month() < time.April {
		return t.Year() - 1
	}
	return t.Year()
}

// FinancialYear formats the fiscal year containing t as "2014-15".
func FinancialYear(t time.Time) string {
	start := FinancialYearStart(t)
	return fmt.Sprintf("%d-%02d", start, (start+1)%100)
}

// ComputeHoldingPeriod classifies the span between purchase and sale.
// Elapsed months are the whole-day difference divided by the average month
// length, floored. A sale before the purchase clamps to zero; input
// ordering is validated at the configuration boundary, not here.
func ComputeHoldingPeriod(purchase, sale time.Time) HoldingPeriod {
	days := sale.Sub(purchase).Hours() / 24
	months := int(math.Floor(days / AvgDaysPerMonth))
	if months < 0 {
		months = 0
	}
	return HoldingPeriod{
		Months:     months,
		Years:      months / 12,
		IsLongTerm: months >= LongTermThresholdMonths,
	}
}

// YearsBetween returns the fractional number of years between two dates.
func YearsBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours() / 24 / 365.25
}

// AddMonths adds a specified number of months to a date
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

// AddYears adds a specified number of years to a date
func AddYears(date time.Time, years int) time.Time {
	return date.AddDate(years, 0, 0)
}
