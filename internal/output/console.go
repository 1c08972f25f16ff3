package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cgcalc/capitalgains-calculator/internal/domain"
	moneyfmt "github.com/cgcalc/capitalgains-calculator/pkg/decimal"
)

// ConsoleFormatter renders the analysis as a plain-text report.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string      { return "console" }
func (ConsoleFormatter) Extension() string { return "txt" }

func inr(d decimal.Decimal) string {
	return "Rs " + moneyfmt.GroupIndian(d)
}

func pct(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

func (ConsoleFormatter) Format(a *domain.Analysis) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "CAPITAL GAINS ANALYSIS\n")
	fmt.Fprintf(&b, "======================\n\n")

	p := a.Property
	fmt.Fprintf(&b, "Property: %s, purchased %s for %s, sold %s for %s\n",
		p.PropertyType,
		p.PurchaseDate.Format("2006-01-02"), inr(p.PurchasePrice),
		p.SaleDate.Format("2006-01-02"), inr(p.SalePrice))

	g := a.Gains
	term := "Short-term"
	if g.HoldingPeriod.IsLongTerm {
		term = "Long-term"
	}
	fmt.Fprintf(&b, "Holding period: %d months (%d years), %s\n\n",
		g.HoldingPeriod.Months, g.HoldingPeriod.Years, term)

	fmt.Fprintf(&b, "Net sale consideration: %s (transfer expenses %s)\n",
		inr(g.NetSaleConsideration), inr(g.TransferExpenses))

	if g.CanChooseRegime && g.OldRegime != nil && g.NewRegime != nil {
		fmt.Fprintf(&b, "\nREGIME COMPARISON\n")
		fmt.Fprintf(&b, "  Old (20%% with indexation, CII %s -> %s):\n", g.PurchaseCII, g.SaleCII)
		fmt.Fprintf(&b, "    Indexed cost %s, gain %s, tax %s\n",
			inr(g.OldRegime.CostBasis), inr(g.OldRegime.CapitalGain), inr(g.OldRegime.Tax))
		fmt.Fprintf(&b, "  New (12.5%% flat):\n")
		fmt.Fprintf(&b, "    Gain %s, tax %s\n", inr(g.NewRegime.CapitalGain), inr(g.NewRegime.Tax))
		fmt.Fprintf(&b, "  Recommended: %s regime\n", g.RecommendedRegime)
	}

	fmt.Fprintf(&b, "\nACTIVE RESULT (%s regime)\n", g.ActiveRegime())
	fmt.Fprintf(&b, "  Capital gain: %s\n", inr(g.CapitalGain))
	fmt.Fprintf(&b, "  Total tax:    %s\n", inr(g.TotalTax))
	fmt.Fprintf(&b, "  Net proceeds: %s\n", inr(g.NetProceeds))

	if len(a.Strategies) > 0 {
		fmt.Fprintf(&b, "\nEXEMPTION STRATEGIES\n")
		if a.SalaryBracketUsed {
			fmt.Fprintf(&b, "(returns taxed at salary-linked marginal brackets)\n")
		}
		for _, s := range a.Strategies {
			fmt.Fprintf(&b, "\nSection %s: %s\n", s.Section, s.Title)
			fmt.Fprintf(&b, "  Max exemption: %s  Tax saved: %s\n", inr(s.MaxExemption), inr(s.TaxSaved))
			fmt.Fprintf(&b, "  Invest %s by %s, locked for %d years\n",
				inr(s.InvestmentRequired), s.Deadline.Format("2006-01-02"), s.LockInYears)
			if s.Bond != nil {
				fmt.Fprintf(&b, "  Bonds at %s simple: interest %s, tax %s, net maturity %s\n",
					pct(s.Bond.InterestRate), inr(s.Bond.TotalInterest),
					inr(s.Bond.TaxOnInterest), inr(s.Bond.NetMaturityValue))
			}
			if s.Property != nil {
				fmt.Fprintf(&b, "  Property at %s p.a.: value %s, rental %s, net cash in hand %s\n",
					pct(s.Property.AppreciationRate), inr(s.Property.FutureValue),
					inr(s.Property.RentalIncome), inr(s.Property.NetCashInHand))
			}
			if s.PayTaxNow != nil {
				fmt.Fprintf(&b, "  Pay tax now, FD at %s: net cash in hand %s\n",
					pct(s.PayTaxNow.Rate), inr(s.PayTaxNow.NetCashInHand))
			}
			for _, note := range s.Notes {
				fmt.Fprintf(&b, "  * %s\n", note)
			}
		}
	}

	if a.Allocation != nil {
		al := a.Allocation
		fmt.Fprintf(&b, "\nREINVESTMENT ALLOCATION of %s\n", inr(al.NetProceeds))
		fmt.Fprintf(&b, "  Personal use: %s (immediate)\n", inr(al.PersonalUseAmount))
		if al.Bonds != nil {
			fmt.Fprintf(&b, "  54EC bonds:   %s -> %s after %d years\n",
				inr(al.BondsAmount), inr(al.Bonds.NetMaturityValue), al.Bonds.LockInYears)
		} else {
			fmt.Fprintf(&b, "  54EC bonds:   %s\n", inr(al.BondsAmount))
		}
		if al.RealEstate != nil {
			fmt.Fprintf(&b, "  Real estate:  %s -> %s after %d years\n",
				inr(al.RealEstateAmount), inr(al.RealEstate.NetCashInHand), al.RealEstate.LockInYears)
		} else {
			fmt.Fprintf(&b, "  Real estate:  %s\n", inr(al.RealEstateAmount))
		}
		fmt.Fprintf(&b, "  Unallocated:  %s\n", inr(al.Unallocated))
		fmt.Fprintf(&b, "  Total projected value: %s\n", inr(al.TotalProjectedValue))
		fmt.Fprintf(&b, "  (buckets mature on different timelines: immediate / 5y / 3y)\n")
	}

	return []byte(b.String()), nil
}
