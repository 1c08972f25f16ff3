package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	inr "github.com/cgcalc/capitalgains-calculator/pkg/decimal"
)

// Statutory rates and caps for FY 2024-25. Held as package-level values
// the way bracket tables are: updated when the Finance Act changes them,
// not per run.
var (
	// CessRate is the health and education cess applied on computed tax.
	CessRate    = decimal.NewFromFloat(0.04)
	onePlusCess = decimal.NewFromFloat(1.04)

	// Long-term capital gains rates on immovable property.
	OldRegimeLTCGRate = decimal.NewFromFloat(0.20)  // with indexation
	NewRegimeLTCGRate = decimal.NewFromFloat(0.125) // without indexation

	// STCGFlatRate approximates short-term slab taxation at the top slab.
	STCGFlatRate = decimal.NewFromFloat(0.30)

	// Section54ExemptionCap is the 10 crore ceiling on a Section 54/54F
	// exemption introduced by Finance Act 2023.
	Section54ExemptionCap = inr.Crores(10)

	// Section54ECBondCap is the 50 lakh per-fiscal-year ceiling on 54EC
	// bond investment.
	Section54ECBondCap = inr.Lakhs(50)

	// BondInterestRate is the coupon on NHAI/REC capital gains bonds,
	// paid as simple interest.
	BondInterestRate = decimal.NewFromFloat(0.0525)

	// FDRate is the fixed-deposit rate used for the pay-tax-now baseline.
	FDRate = decimal.NewFromFloat(0.08)

	// DefaultSlabRate is the manual flat slab assumed when neither a user
	// selection nor the salary bridge supplies one.
	DefaultSlabRate = decimal.NewFromFloat(0.30)

	// DefaultAppreciationRate backstops projections when the sold
	// property's realized CAGR is undefined.
	DefaultAppreciationRate = decimal.NewFromFloat(0.06)
)

const (
	// BondLockInYears is the 54EC bond holding requirement.
	BondLockInYears = 5

	// PropertyLockInYears is the Section 54/54F holding requirement on
	// the replacement property.
	PropertyLockInYears = 3
)

// NewRegimeCutoff is the acquisition date on or after which indexation is
// unavailable and the 12.5% regime is mandatory.
var NewRegimeCutoff = time.Date(2024, time.July, 23, 0, 0, 0, 0, time.UTC)
