// Package decimal provides rupee formatting and denomination helpers on
// top of shopspring decimals.
package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Lakhs returns n lakh rupees (1 lakh = 1,00,000).
func Lakhs(n int64) decimal.Decimal {
	return decimal.NewFromInt(n).Mul(decimal.NewFromInt(100000))
}

// Crores returns n crore rupees (1 crore = 1,00,00,000).
func Crores(n int64) decimal.Decimal {
	return decimal.NewFromInt(n).Mul(decimal.NewFromInt(10000000))
}

// FormatINR renders an amount with the rupee sign and Indian digit
// grouping, e.g. ₹1,20,00,000.00.
func FormatINR(d decimal.Decimal) string {
	return "₹" + GroupIndian(d)
}

// GroupIndian renders a decimal with lakh/crore comma grouping: the last
// three integer digits form one group, every two digits before that form
// the next groups.
func GroupIndian(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	if len(intPart) > 3 {
		head := intPart[:len(intPart)-3]
		tail := intPart[len(intPart)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		intPart = strings.Join(append(groups, tail), ",")
	}

	out := intPart + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
