package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/cgcalc/capitalgains-calculator/internal/domain"
	"github.com/cgcalc/capitalgains-calculator/pkg/dateutil"
)

// CalculateCapitalGains derives the full dual-regime capital gains result
// for one property transaction. The computation is pure: identical inputs
// always produce identical results.
func (e *Engine) CalculateCapitalGains(p *domain.PropertyDetails) *domain.CapitalGainsResult {
	hp := dateutil.ComputeHoldingPeriod(p.PurchaseDate, p.SaleDate)
	purchaseCII := CII(p.PurchaseDate)
	saleCII := CII(p.SaleDate)

	totalPurchaseCost := p.TotalPurchaseCost()
	transferExpenses := p.TransferExpenses()
	netSaleConsideration := p.NetSaleConsideration()

	result := &domain.CapitalGainsResult{
		HoldingPeriod:        hp,
		PurchaseCII:          purchaseCII,
		SaleCII:              saleCII,
		TotalPurchaseCost:    totalPurchaseCost,
		TransferExpenses:     transferExpenses,
		NetSaleConsideration: netSaleConsideration,
	}

	if !hp.IsLongTerm {
		// Short-term: no indexation, no regime choice; flat top-slab rate
		// approximates the taxpayer's slab.
		gain := netSaleConsideration.Sub(totalPurchaseCost).Sub(p.ImprovementCost)
		tax := decimal.Max(gain, decimal.Zero).Mul(STCGFlatRate).Mul(onePlusCess)
		result.RecommendedRegime = domain.RegimeNew
		result.UseNewRegime = true
		result.CapitalGain = gain
		result.TotalTax = tax
		result.NetProceeds = p.SalePrice.Sub(transferExpenses).Sub(tax)
		e.Logger.Debugf("short-term gain %s, tax %s", gain.StringFixed(2), tax.StringFixed(2))
		return result
	}

	result.MustUseNewRegime = !p.PurchaseDate.Before(NewRegimeCutoff)
	result.CanChooseRegime = !result.MustUseNewRegime

	// Old regime: index acquisition and improvement costs from their own
	// fiscal years to the sale year.
	indexedPurchaseCost := totalPurchaseCost.Mul(saleCII).Div(purchaseCII)
	var indexedImprovementCost decimal.Decimal
	if p.ImprovementCost.IsPositive() {
		improvementDate := p.ImprovementDate
		if improvementDate.IsZero() {
			improvementDate = p.PurchaseDate
		}
		indexedImprovementCost = p.ImprovementCost.Mul(saleCII).Div(CII(improvementDate))
	}
	gainOld := netSaleConsideration.Sub(indexedPurchaseCost).Sub(indexedImprovementCost)
	taxOld := decimal.Max(gainOld, decimal.Zero).Mul(OldRegimeLTCGRate).Mul(onePlusCess)

	// New regime: unindexed cost at the flat 12.5% rate.
	gainNew := netSaleConsideration.Sub(totalPurchaseCost).Sub(p.ImprovementCost)
	taxNew := decimal.Max(gainNew, decimal.Zero).Mul(NewRegimeLTCGRate).Mul(onePlusCess)

	result.OldRegime = &domain.RegimeResult{
		Regime:      domain.RegimeOld,
		CostBasis:   indexedPurchaseCost.Add(indexedImprovementCost),
		CapitalGain: gainOld,
		TaxRate:     OldRegimeLTCGRate,
		Tax:         taxOld,
		NetProceeds: p.SalePrice.Sub(transferExpenses).Sub(taxOld),
	}
	result.NewRegime = &domain.RegimeResult{
		Regime:      domain.RegimeNew,
		CostBasis:   totalPurchaseCost.Add(p.ImprovementCost),
		CapitalGain: gainNew,
		TaxRate:     NewRegimeLTCGRate,
		Tax:         taxNew,
		NetProceeds: p.SalePrice.Sub(transferExpenses).Sub(taxNew),
	}

	// Recommend the cheaper regime; ties keep the old regime.
	if taxOld.LessThanOrEqual(taxNew) {
		result.RecommendedRegime = domain.RegimeOld
	} else {
		result.RecommendedRegime = domain.RegimeNew
	}
	result.UseNewRegime = result.MustUseNewRegime ||
		(result.CanChooseRegime && result.RecommendedRegime == domain.RegimeNew)

	active := result.OldRegime
	if result.UseNewRegime {
		active = result.NewRegime
	}
	result.CapitalGain = active.CapitalGain
	result.TotalTax = active.Tax
	result.NetProceeds = active.NetProceeds

	// Indexation is simply unavailable for post-cutoff purchases; don't
	// surface a regime the taxpayer cannot elect.
	if result.MustUseNewRegime {
		result.OldRegime = nil
		result.RecommendedRegime = domain.RegimeNew
	}

	e.Logger.Debugf("LTCG old tax %s vs new tax %s, recommending %s regime",
		taxOld.StringFixed(2), taxNew.StringFixed(2), result.RecommendedRegime)
	return result
}
