package calculation

import (
	"fmt"

	"github.com/cgcalc/capitalgains-calculator/internal/domain"
)

// SalaryProvider supplies the salary calculator's derived taxable income
// and regime. Implementations report false when the source record is
// absent or still holds unmodified defaults; the engine then falls back
// to the manual flat slab. The provider is re-invoked on every analysis,
// leaving the refresh policy with the caller.
type SalaryProvider interface {
	Salary() (domain.SalaryData, bool)
}

// Engine orchestrates the capital gains, exemption and allocation
// computations for one input snapshot. It holds no mutable state between
// calls.
type Engine struct {
	Salary SalaryProvider
	Logger Logger
}

// NewEngine creates an engine with no salary bridge and a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger. A nil logger restores the no-op.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// SetSalaryProvider installs the external salary data bridge.
func (e *Engine) SetSalaryProvider(p SalaryProvider) {
	e.Salary = p
}

// normalizeProjection fills projection defaults: the manual slab falls
// back to the top rate and the appreciation rate to the sold property's
// realized CAGR.
func (e *Engine) normalizeProjection(p *domain.PropertyDetails, st domain.ProjectionState) domain.ProjectionState {
	if st.TaxSlabRate.IsZero() || st.TaxSlabRate.IsNegative() {
		st.TaxSlabRate = DefaultSlabRate
	}
	if st.RentStartMonth < 0 {
		st.RentStartMonth = 0
	}
	if st.AppreciationRate.IsZero() {
		if cagr, ok := p.RealizedCAGR(); ok && cagr.IsPositive() {
			st.AppreciationRate = cagr
			e.Logger.Debugf("defaulting appreciation rate to realized CAGR %s", cagr.StringFixed(4))
		} else {
			st.AppreciationRate = DefaultAppreciationRate
		}
	}
	return st
}

// Analyze runs the full pipeline for one property snapshot: capital
// gains always, exemption strategies when the gain is long-term and
// positive, and the reinvestment allocation when one is supplied.
func (e *Engine) Analyze(cfg *domain.Configuration) (*domain.Analysis, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil configuration")
	}
	p := cfg.Property
	if p.PurchaseDate.IsZero() || p.SaleDate.IsZero() {
		return nil, fmt.Errorf("property purchase and sale dates are required")
	}

	st := e.normalizeProjection(&p, cfg.Projection)
	gains := e.CalculateCapitalGains(&p)
	strategies := e.CalculateExemptions(&p, gains, &st)

	analysis := &domain.Analysis{
		Property:   p,
		Projection: st,
		Gains:      gains,
		Strategies: strategies,
	}

	if sd, ok := e.salaryBracketActive(&st); ok {
		analysis.SalaryBracketUsed = true
		analysis.Salary = &sd
	}

	if cfg.Allocation != nil {
		analysis.Allocation = e.CalculateAllocation(gains.NetProceeds, cfg.Allocation, &st)
	}

	return analysis, nil
}
