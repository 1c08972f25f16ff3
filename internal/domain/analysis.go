package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cgcalc/capitalgains-calculator/pkg/dateutil"
)

// RegimeResult holds one tax regime's view of the same transaction. The
// cost basis is CII-indexed under the old regime and raw under the new.
type RegimeResult struct {
	Regime      TaxRegime       `json:"regime"`
	CostBasis   decimal.Decimal `json:"cost_basis"`
	CapitalGain decimal.Decimal `json:"capital_gain"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Tax         decimal.Decimal `json:"tax"`
	NetProceeds decimal.Decimal `json:"net_proceeds"`
}

// CapitalGainsResult is the derived outcome of the capital gains engine,
// recomputed in full on every input change.
type CapitalGainsResult struct {
	HoldingPeriod        dateutil.HoldingPeriod `json:"holding_period"`
	PurchaseCII          decimal.Decimal        `json:"purchase_cii"`
	SaleCII              decimal.Decimal        `json:"sale_cii"`
	TotalPurchaseCost    decimal.Decimal        `json:"total_purchase_cost"`
	TransferExpenses     decimal.Decimal        `json:"transfer_expenses"`
	NetSaleConsideration decimal.Decimal        `json:"net_sale_consideration"`

	MustUseNewRegime  bool      `json:"must_use_new_regime"`
	CanChooseRegime   bool      `json:"can_choose_regime"`
	RecommendedRegime TaxRegime `json:"recommended_regime"`
	UseNewRegime      bool      `json:"use_new_regime"`

	// Both candidate outcomes are exposed whenever a choice exists so the
	// caller can override the recommendation.
	OldRegime *RegimeResult `json:"old_regime,omitempty"`
	NewRegime *RegimeResult `json:"new_regime,omitempty"`

	// Active (selected or recommended) values.
	CapitalGain decimal.Decimal `json:"capital_gain"`
	TotalTax    decimal.Decimal `json:"total_tax"`
	NetProceeds decimal.Decimal `json:"net_proceeds"`
}

// ActiveRegime returns the regime whose values populate the active fields.
func (r *CapitalGainsResult) ActiveRegime() TaxRegime {
	if !r.HoldingPeriod.IsLongTerm {
		return RegimeNew
	}
	if r.UseNewRegime {
		return RegimeNew
	}
	return RegimeOld
}

// BondProjection describes the outcome of a Section 54EC bond investment.
// Bond interest is simple, not compounded, and taxed as ordinary income.
type BondProjection struct {
	InvestmentAmount decimal.Decimal `json:"investment_amount"`
	InterestRate     decimal.Decimal `json:"interest_rate"`
	LockInYears      int             `json:"lock_in_years"`
	TotalInterest    decimal.Decimal `json:"total_interest"`
	TaxOnInterest    decimal.Decimal `json:"tax_on_interest"`
	NetMaturityValue decimal.Decimal `json:"net_maturity_value"`
}

// PropertyProjection describes the outcome of reinvesting in a new
// property: compound appreciation plus optional rental income, each with
// its own tax treatment.
type PropertyProjection struct {
	Principal         decimal.Decimal `json:"principal"`
	AppreciationRate  decimal.Decimal `json:"appreciation_rate"`
	LockInYears       int             `json:"lock_in_years"`
	FutureValue       decimal.Decimal `json:"future_value"`
	Appreciation      decimal.Decimal `json:"appreciation"`
	RentalMonths      int             `json:"rental_months"`
	RentalIncome      decimal.Decimal `json:"rental_income"`
	TotalReturns      decimal.Decimal `json:"total_returns"`
	TaxOnRental       decimal.Decimal `json:"tax_on_rental"`
	TaxOnAppreciation decimal.Decimal `json:"tax_on_appreciation"`
	NetCashInHand     decimal.Decimal `json:"net_cash_in_hand"`
}

// FDComparison is the "pay tax now, park the rest in a fixed deposit"
// baseline shown against a reinvestment strategy as opportunity cost.
type FDComparison struct {
	Principal     decimal.Decimal `json:"principal"`
	Rate          decimal.Decimal `json:"rate"`
	Years         int             `json:"years"`
	Interest      decimal.Decimal `json:"interest"`
	TaxOnInterest decimal.Decimal `json:"tax_on_interest"`
	NetCashInHand decimal.Decimal `json:"net_cash_in_hand"`
}

// ExemptionStrategy models one reinvestment path under Sections 54, 54EC
// or 54F, with its projected outcome.
type ExemptionStrategy struct {
	Section            string          `json:"section"`
	Title              string          `json:"title"`
	MaxExemption       decimal.Decimal `json:"max_exemption"`
	InvestmentRequired decimal.Decimal `json:"investment_required"`
	TaxSaved           decimal.Decimal `json:"tax_saved"`
	Deadline           time.Time       `json:"deadline"`
	LockInYears        int             `json:"lock_in_years"`

	Bond      *BondProjection     `json:"bond_details,omitempty"`
	Property  *PropertyProjection `json:"property_projection,omitempty"`
	PayTaxNow *FDComparison       `json:"pay_tax_now,omitempty"`

	Notes []string `json:"notes"`
}

// AllocationResult is the reinvestment allocator's consolidated view of
// where the net proceeds go and what they project to.
type AllocationResult struct {
	NetProceeds decimal.Decimal `json:"net_proceeds"`

	PersonalUseAmount decimal.Decimal `json:"personal_use_amount"`
	BondsAmount       decimal.Decimal `json:"bonds_amount"`
	RealEstateAmount  decimal.Decimal `json:"real_estate_amount"`
	Unallocated       decimal.Decimal `json:"unallocated"`

	Bonds      *BondProjection     `json:"bonds,omitempty"`
	RealEstate *PropertyProjection `json:"real_estate,omitempty"`

	TotalProjectedValue decimal.Decimal `json:"total_projected_value"`
}

// Analysis bundles everything the planner computed for one property
// snapshot; formatters and exporters consume it as plain data.
type Analysis struct {
	Property   PropertyDetails     `json:"property"`
	Projection ProjectionState     `json:"projection"`
	Gains      *CapitalGainsResult `json:"gains"`
	Strategies []ExemptionStrategy `json:"strategies"`
	Allocation *AllocationResult   `json:"allocation,omitempty"`

	// SalaryBracketUsed records whether tax-on-returns figures came from
	// the salary bridge's marginal brackets rather than a flat slab.
	SalaryBracketUsed bool        `json:"salary_bracket_used"`
	Salary            *SalaryData `json:"salary,omitempty"`
}
