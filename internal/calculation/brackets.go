package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/cgcalc/capitalgains-calculator/internal/domain"
)

// TaxSlab represents one progressive income tax slab.
type TaxSlab struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// SlabSlice is the portion of an income delta falling inside one slab,
// returned for transparency rather than just the total.
type SlabSlice struct {
	From   decimal.Decimal `json:"from"`
	To     decimal.Decimal `json:"to"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
	Tax    decimal.Decimal `json:"tax"`
}

// SlabTaxResult is the outcome of taxing an income delta on top of a base
// income. Tax includes cess; BaseTax does not.
type SlabTaxResult struct {
	BaseTax       decimal.Decimal `json:"base_tax"`
	Cess          decimal.Decimal `json:"cess"`
	Tax           decimal.Decimal `json:"tax"`
	EffectiveRate decimal.Decimal `json:"effective_rate"`
	Breakdown     []SlabSlice     `json:"breakdown"`
}

// slabCeiling bounds the open-ended top slab. Well above any plausible
// single-transaction figure in rupees.
var slabCeiling = decimal.NewFromInt(999999999999)

// SlabCalculator computes tax on additional income honoring progressive
// slab boundaries for one regime.
type SlabCalculator struct {
	Regime   domain.TaxRegime
	Slabs    []TaxSlab
	CessRate decimal.Decimal
}

// NewSlabCalculator creates a slab calculator for FY 2024-25 slabs of the
// given regime with the standard 4% health and education cess.
func NewSlabCalculator(regime domain.TaxRegime) *SlabCalculator {
	var slabs []TaxSlab
	if regime == domain.RegimeOld {
		slabs = []TaxSlab{
			{decimal.Zero, decimal.NewFromInt(250000), decimal.Zero},
			{decimal.NewFromInt(250000), decimal.NewFromInt(500000), decimal.NewFromFloat(0.05)},
			{decimal.NewFromInt(500000), decimal.NewFromInt(1000000), decimal.NewFromFloat(0.20)},
			{decimal.NewFromInt(1000000), slabCeiling, decimal.NewFromFloat(0.30)},
		}
	} else {
		slabs = []TaxSlab{
			{decimal.Zero, decimal.NewFromInt(300000), decimal.Zero},
			{decimal.NewFromInt(300000), decimal.NewFromInt(700000), decimal.NewFromFloat(0.05)},
			{decimal.NewFromInt(700000), decimal.NewFromInt(1000000), decimal.NewFromFloat(0.10)},
			{decimal.NewFromInt(1000000), decimal.NewFromInt(1200000), decimal.NewFromFloat(0.15)},
			{decimal.NewFromInt(1200000), decimal.NewFromInt(1500000), decimal.NewFromFloat(0.20)},
			{decimal.NewFromInt(1500000), slabCeiling, decimal.NewFromFloat(0.30)},
		}
	}
	return &SlabCalculator{Regime: regime, Slabs: slabs, CessRate: CessRate}
}

// TaxOnAdditionalIncome taxes additional income stacked on top of a base
// taxable income. Each slice of the delta is taxed at the rate of the
// slab it lands in above the base, so a delta straddling a boundary is
// split across rates rather than taxed flat at the top marginal rate.
func (sc *SlabCalculator) TaxOnAdditionalIncome(base, additional decimal.Decimal) SlabTaxResult {
	if additional.LessThanOrEqual(decimal.Zero) {
		return SlabTaxResult{}
	}
	if base.IsNegative() {
		base = decimal.Zero
	}
	total := base.Add(additional)

	var baseTax decimal.Decimal
	var breakdown []SlabSlice
	for _, slab := range sc.Slabs {
		from := decimal.Max(slab.Min, base)
		to := decimal.Min(slab.Max, total)
		if to.LessThanOrEqual(from) {
			continue
		}
		amount := to.Sub(from)
		tax := amount.Mul(slab.Rate)
		baseTax = baseTax.Add(tax)
		breakdown = append(breakdown, SlabSlice{
			From:   from,
			To:     to,
			Rate:   slab.Rate,
			Amount: amount,
			Tax:    tax,
		})
	}

	cess := baseTax.Mul(sc.CessRate)
	withCess := baseTax.Add(cess)
	return SlabTaxResult{
		BaseTax:       baseTax,
		Cess:          cess,
		Tax:           withCess,
		EffectiveRate: withCess.Div(additional),
		Breakdown:     breakdown,
	}
}
