package domain

import (
	"github.com/shopspring/decimal"
)

// ProjectionState holds the user-tunable assumptions behind exemption
// projections. Zero values are filled with defaults by the engine; the
// appreciation rate in particular defaults to the sold property's
// realized CAGR once that is computable.
type ProjectionState struct {
	AppreciationRate decimal.Decimal `yaml:"appreciation_rate,omitempty" json:"appreciation_rate,omitempty"`
	EnableRental     bool            `yaml:"enable_rental,omitempty" json:"enable_rental,omitempty"`
	MonthlyRent      decimal.Decimal `yaml:"monthly_rent,omitempty" json:"monthly_rent,omitempty"`
	RentStartMonth   int             `yaml:"rent_start_month,omitempty" json:"rent_start_month,omitempty"`
	TaxSlabRate      decimal.Decimal `yaml:"tax_slab_rate,omitempty" json:"tax_slab_rate,omitempty"`
	UseSalaryBracket bool            `yaml:"use_salary_bracket,omitempty" json:"use_salary_bracket,omitempty"`
}

// AllocationBucket is one toggle-able reinvestment destination.
type AllocationBucket struct {
	Enabled bool            `yaml:"enabled" json:"enabled"`
	Amount  decimal.Decimal `yaml:"amount,omitempty" json:"amount,omitempty"`
}

// ReinvestmentAllocation splits after-tax net proceeds across personal
// use, 54EC bonds and real estate. The real-estate bucket carries no
// amount of its own: it is derived as the remainder whenever enabled.
type ReinvestmentAllocation struct {
	PersonalUse AllocationBucket `yaml:"personal_use" json:"personal_use"`
	Bonds       AllocationBucket `yaml:"bonds" json:"bonds"`
	RealEstate  struct {
		Enabled bool `yaml:"enabled" json:"enabled"`
	} `yaml:"real_estate" json:"real_estate"`
}

// SalaryData is the already-derived bridge record sourced from the salary
// calculator's persisted state. When available it replaces the manual
// flat slab with true marginal-bracket computation.
type SalaryData struct {
	TaxableIncome decimal.Decimal `json:"taxable_income"`
	Regime        TaxRegime       `json:"regime"`
}
