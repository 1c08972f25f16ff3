package store

import (
	"github.com/shopspring/decimal"

	"github.com/cgcalc/capitalgains-calculator/internal/domain"
)

// salaryKey is the key the salary breakdown calculator persists under.
const salaryKey = "calc_salary"

// pfRate and pfBasicShare derive the provident fund deduction from CTC:
// 12% of basic pay, with basic assumed at 40% of CTC.
var (
	pfRate       = decimal.NewFromFloat(0.12)
	pfBasicShare = decimal.NewFromFloat(0.40)

	standardDeductionNew = decimal.NewFromInt(75000)
	standardDeductionOld = decimal.NewFromInt(50000)
)

// salaryRecord is the raw persisted shape of the salary calculator.
type salaryRecord struct {
	CTC          decimal.Decimal `json:"ctc"`
	TaxRegime    string          `json:"taxRegime"`
	UserModified bool            `json:"userModified"`
}

// SalaryBridge reads the salary calculator's persisted state and derives
// the {taxableIncome, regime} record the engine consumes. The source is
// another calculator's independently mutating state: the bridge re-reads
// it on every call and reports unavailable when the record is absent or
// still holds unmodified defaults.
type SalaryBridge struct {
	store *Store
}

// NewSalaryBridge creates a bridge over the given store.
func NewSalaryBridge(s *Store) *SalaryBridge {
	return &SalaryBridge{store: s}
}

// Salary implements calculation.SalaryProvider.
func (b *SalaryBridge) Salary() (domain.SalaryData, bool) {
	var rec salaryRecord
	ok, err := b.store.Get(salaryKey, &rec)
	if err != nil || !ok || !rec.UserModified || !rec.CTC.IsPositive() {
		return domain.SalaryData{}, false
	}

	regime := domain.RegimeNew
	standardDeduction := standardDeductionNew
	if rec.TaxRegime == string(domain.RegimeOld) {
		regime = domain.RegimeOld
		standardDeduction = standardDeductionOld
	}

	pf := rec.CTC.Mul(pfRate).Mul(pfBasicShare)
	taxable := decimal.Max(rec.CTC.Sub(pf).Sub(standardDeduction), decimal.Zero)
	return domain.SalaryData{TaxableIncome: taxable, Regime: regime}, true
}
