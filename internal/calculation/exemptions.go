package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/cgcalc/capitalgains-calculator/internal/domain"
	"github.com/cgcalc/capitalgains-calculator/pkg/dateutil"
)

var section54Notes = []string{
	"Exemption applies only when the new asset is ONE residential house in India.",
	"The new property must be purchased within 2 years (or constructed within 3 years) of the sale.",
	"Selling the new property within 3 years revokes the exemption.",
	"Unutilized amounts must be parked in a Capital Gains Account Scheme before the tax filing deadline.",
}

var section54ECNotes = []string{
	"Investment must be made in notified NHAI/REC/PFC/IRFC bonds within 6 months of the sale.",
	"Bond investment is capped at ₹50 lakh per fiscal year.",
	"Bonds are locked in for 5 years; pledging them revokes the exemption.",
	"Bond interest is taxable as ordinary income each year.",
}

var section54FNotes = []string{
	"Available only when the asset sold is NOT a residential house.",
	"The ENTIRE net sale consideration must be reinvested for full exemption; partial reinvestment is exempted proportionally.",
	"The taxpayer must not own more than one other residential house on the date of sale.",
	"Selling the new property within 3 years revokes the exemption.",
}

// ordinaryIncomeTax taxes an additional slice of ordinary income (rent,
// bond or FD interest). With an active salary bridge, the slice is
// stacked on the bridged taxable income and taxed across true marginal
// brackets; otherwise the manual flat slab plus cess applies.
func (e *Engine) ordinaryIncomeTax(st *domain.ProjectionState, amount decimal.Decimal) decimal.Decimal {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if st.UseSalaryBracket && e.Salary != nil {
		if sd, ok := e.Salary.Salary(); ok {
			calc := NewSlabCalculator(sd.Regime)
			return calc.TaxOnAdditionalIncome(sd.TaxableIncome, amount).Tax
		}
	}
	return amount.Mul(st.TaxSlabRate).Mul(onePlusCess)
}

// salaryBracketActive reports whether tax-on-returns figures will come
// from the salary bridge rather than a manual slab.
func (e *Engine) salaryBracketActive(st *domain.ProjectionState) (domain.SalaryData, bool) {
	if !st.UseSalaryBracket || e.Salary == nil {
		return domain.SalaryData{}, false
	}
	return e.Salary.Salary()
}

// projectProperty builds the reinvestment outcome for a replacement
// property: compound appreciation over the lock-in plus optional rental
// income. Appreciation on a future sale is taxed at the new-regime LTCG
// rate; rental income is ordinary income.
func (e *Engine) projectProperty(st *domain.ProjectionState, principal decimal.Decimal) *domain.PropertyProjection {
	growth := decimal.NewFromInt(1).Add(st.AppreciationRate).
		Pow(decimal.NewFromInt(PropertyLockInYears))
	futureValue := principal.Mul(growth)
	appreciation := futureValue.Sub(principal)

	var rentalMonths int
	var rentalIncome decimal.Decimal
	if st.EnableRental {
		rentalMonths = PropertyLockInYears*12 - st.RentStartMonth
		if rentalMonths < 0 {
			rentalMonths = 0
		}
		rentalIncome = st.MonthlyRent.Mul(decimal.NewFromInt(int64(rentalMonths)))
	}

	taxOnRental := e.ordinaryIncomeTax(st, rentalIncome)
	taxOnAppreciation := decimal.Max(appreciation, decimal.Zero).
		Mul(NewRegimeLTCGRate).Mul(onePlusCess)

	totalReturns := appreciation.Add(rentalIncome)
	return &domain.PropertyProjection{
		Principal:         principal,
		AppreciationRate:  st.AppreciationRate,
		LockInYears:       PropertyLockInYears,
		FutureValue:       futureValue,
		Appreciation:      appreciation,
		RentalMonths:      rentalMonths,
		RentalIncome:      rentalIncome,
		TotalReturns:      totalReturns,
		TaxOnRental:       taxOnRental,
		TaxOnAppreciation: taxOnAppreciation,
		NetCashInHand:     principal.Add(totalReturns).Sub(taxOnRental).Sub(taxOnAppreciation),
	}
}

// simpleBondInterest returns 54EC coupon interest: simple, not compounded.
func simpleBondInterest(amount decimal.Decimal, years int) decimal.Decimal {
	return amount.Mul(BondInterestRate).Mul(decimal.NewFromInt(int64(years)))
}

// projectBonds builds the 54EC bond outcome for an investment amount.
func (e *Engine) projectBonds(st *domain.ProjectionState, amount decimal.Decimal) *domain.BondProjection {
	interest := simpleBondInterest(amount, BondLockInYears)
	taxOnInterest := e.ordinaryIncomeTax(st, interest)
	return &domain.BondProjection{
		InvestmentAmount: amount,
		InterestRate:     BondInterestRate,
		LockInYears:      BondLockInYears,
		TotalInterest:    interest,
		TaxOnInterest:    taxOnInterest,
		NetMaturityValue: amount.Add(interest).Sub(taxOnInterest),
	}
}

// payTaxNowBaseline models the do-nothing alternative: pay the tax the
// exemption would have saved and park the remainder in a fixed deposit
// for the same horizon, with FD interest taxed as ordinary income.
func (e *Engine) payTaxNowBaseline(st *domain.ProjectionState, exemption, taxSaved decimal.Decimal) *domain.FDComparison {
	principal := decimal.Max(exemption.Sub(taxSaved), decimal.Zero)
	growth := decimal.NewFromInt(1).Add(FDRate).Pow(decimal.NewFromInt(PropertyLockInYears))
	interest := principal.Mul(growth).Sub(principal)
	taxOnInterest := e.ordinaryIncomeTax(st, interest)
	return &domain.FDComparison{
		Principal:     principal,
		Rate:          FDRate,
		Years:         PropertyLockInYears,
		Interest:      interest,
		TaxOnInterest: taxOnInterest,
		NetCashInHand: principal.Add(interest).Sub(taxOnInterest),
	}
}

// activeLTCGRate is the base rate the active regime taxes the gain at.
func activeLTCGRate(gains *domain.CapitalGainsResult) decimal.Decimal {
	if gains.UseNewRegime {
		return NewRegimeLTCGRate
	}
	return OldRegimeLTCGRate
}

// CalculateExemptions evaluates Sections 54, 54EC and 54F for the given
// transaction. Exemptions apply only to positive long-term gains; any
// other case yields an empty slice.
func (e *Engine) CalculateExemptions(p *domain.PropertyDetails, gains *domain.CapitalGainsResult, st *domain.ProjectionState) []domain.ExemptionStrategy {
	if !gains.HoldingPeriod.IsLongTerm || !gains.CapitalGain.IsPositive() {
		return nil
	}

	gain := gains.CapitalGain
	rate := activeLTCGRate(gains)
	var strategies []domain.ExemptionStrategy

	// Section 54: reinvest the gain in another residential house.
	if p.PropertyType == domain.PropertyResidential {
		exemption := decimal.Min(gain, Section54ExemptionCap)
		taxSaved := exemption.Mul(rate).Mul(onePlusCess)
		strategies = append(strategies, domain.ExemptionStrategy{
			Section:            "54",
			Title:              "Reinvest gain in a residential property",
			MaxExemption:       exemption,
			InvestmentRequired: exemption,
			TaxSaved:           taxSaved,
			Deadline:           dateutil.AddYears(p.SaleDate, 2),
			LockInYears:        PropertyLockInYears,
			Property:           e.projectProperty(st, exemption),
			PayTaxNow:          e.payTaxNowBaseline(st, exemption, taxSaved),
			Notes:              section54Notes,
		})
	}

	// Section 54EC: capital gains bonds, available to every LTCG.
	{
		amount := decimal.Min(gain, Section54ECBondCap)
		strategies = append(strategies, domain.ExemptionStrategy{
			Section:            "54EC",
			Title:              "Invest gain in capital gains bonds",
			MaxExemption:       amount,
			InvestmentRequired: amount,
			TaxSaved:           amount.Mul(rate).Mul(onePlusCess),
			Deadline:           dateutil.AddMonths(p.SaleDate, 6),
			LockInYears:        BondLockInYears,
			Bond:               e.projectBonds(st, amount),
			Notes:              section54ECNotes,
		})
	}

	// Section 54F: non-residential sales reinvested into a residential
	// house; the entire net consideration must go in, and the exemption
	// is proportional to how much of it the gain represents.
	if p.PropertyType != domain.PropertyResidential && gains.NetSaleConsideration.IsPositive() {
		ratio := decimal.Min(decimal.NewFromInt(1), gain.Div(gains.NetSaleConsideration))
		exemption := decimal.Min(gain.Mul(ratio), Section54ExemptionCap)
		taxSaved := exemption.Mul(rate).Mul(onePlusCess)
		strategies = append(strategies, domain.ExemptionStrategy{
			Section:            "54F",
			Title:              "Reinvest entire sale proceeds in a residential property",
			MaxExemption:       exemption,
			InvestmentRequired: gains.NetSaleConsideration,
			TaxSaved:           taxSaved,
			Deadline:           dateutil.AddYears(p.SaleDate, 2),
			LockInYears:        PropertyLockInYears,
			Property:           e.projectProperty(st, gains.NetSaleConsideration),
			PayTaxNow:          e.payTaxNowBaseline(st, gains.NetSaleConsideration, taxSaved),
			Notes:              section54FNotes,
		})
	}

	return strategies
}
