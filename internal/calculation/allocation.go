package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/cgcalc/capitalgains-calculator/internal/domain"
)

// CalculateAllocation apportions after-tax net proceeds across the
// enabled buckets and projects each to its lock-in horizon. The
// real-estate bucket is never set directly: whenever enabled it absorbs
// the remainder left after personal use and bonds, so
// personal + bonds + realEstate + unallocated always equals the proceeds
// exactly.
func (e *Engine) CalculateAllocation(netProceeds decimal.Decimal, alloc *domain.ReinvestmentAllocation, st *domain.ProjectionState) *domain.AllocationResult {
	if netProceeds.IsNegative() {
		netProceeds = decimal.Zero
	}

	var personalUse decimal.Decimal
	if alloc.PersonalUse.Enabled {
		personalUse = clamp(alloc.PersonalUse.Amount, decimal.Zero, netProceeds)
	}
	remaining := netProceeds.Sub(personalUse)

	var bonds decimal.Decimal
	if alloc.Bonds.Enabled {
		bonds = clamp(alloc.Bonds.Amount, decimal.Zero, decimal.Min(Section54ECBondCap, remaining))
	}
	remaining = remaining.Sub(bonds)

	var realEstate decimal.Decimal
	if alloc.RealEstate.Enabled {
		realEstate = remaining
	}
	unallocated := netProceeds.Sub(personalUse).Sub(bonds).Sub(realEstate)

	result := &domain.AllocationResult{
		NetProceeds:       netProceeds,
		PersonalUseAmount: personalUse,
		BondsAmount:       bonds,
		RealEstateAmount:  realEstate,
		Unallocated:       unallocated,
	}

	// Personal use carries no growth and no lock-in; it contributes at
	// face value. Each invested bucket contributes its net terminal
	// value despite the differing horizons, a simplification the caller
	// is expected to label with timeframes.
	total := personalUse.Add(unallocated)
	if bonds.IsPositive() {
		result.Bonds = e.projectBonds(st, bonds)
		total = total.Add(result.Bonds.NetMaturityValue)
	}
	if realEstate.IsPositive() {
		result.RealEstate = e.projectProperty(st, realEstate)
		total = total.Add(result.RealEstate.NetCashInHand)
	}
	result.TotalProjectedValue = total

	e.Logger.Debugf("allocation: personal %s, bonds %s, real estate %s, unallocated %s",
		personalUse.StringFixed(2), bonds.StringFixed(2),
		realEstate.StringFixed(2), unallocated.StringFixed(2))
	return result
}

func clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}
