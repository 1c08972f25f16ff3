package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/cgcalc/capitalgains-calculator/internal/domain"
)

// CSVFormatter renders the analysis as flat section/field/value rows,
// suitable for spreadsheet import.
type CSVFormatter struct{}

func (CSVFormatter) Name() string      { return "csv" }
func (CSVFormatter) Extension() string { return "csv" }

func (CSVFormatter) Format(a *domain.Analysis) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	write := func(section, field, value string) {
		_ = w.Write([]string{section, field, value})
	}

	write("section", "field", "value")

	p := a.Property
	write("property", "type", string(p.PropertyType))
	write("property", "purchase_date", p.PurchaseDate.Format("2006-01-02"))
	write("property", "purchase_price", p.PurchasePrice.StringFixed(2))
	write("property", "stamp_duty", p.StampDuty.StringFixed(2))
	write("property", "sale_date", p.SaleDate.Format("2006-01-02"))
	write("property", "sale_price", p.SalePrice.StringFixed(2))

	g := a.Gains
	write("gains", "holding_months", strconv.Itoa(g.HoldingPeriod.Months))
	write("gains", "is_long_term", strconv.FormatBool(g.HoldingPeriod.IsLongTerm))
	write("gains", "purchase_cii", g.PurchaseCII.String())
	write("gains", "sale_cii", g.SaleCII.String())
	write("gains", "net_sale_consideration", g.NetSaleConsideration.StringFixed(2))
	write("gains", "can_choose_regime", strconv.FormatBool(g.CanChooseRegime))
	write("gains", "recommended_regime", string(g.RecommendedRegime))
	write("gains", "active_regime", string(g.ActiveRegime()))
	if g.OldRegime != nil {
		write("gains", "old_regime_gain", g.OldRegime.CapitalGain.StringFixed(2))
		write("gains", "old_regime_tax", g.OldRegime.Tax.StringFixed(2))
	}
	if g.NewRegime != nil {
		write("gains", "new_regime_gain", g.NewRegime.CapitalGain.StringFixed(2))
		write("gains", "new_regime_tax", g.NewRegime.Tax.StringFixed(2))
	}
	write("gains", "capital_gain", g.CapitalGain.StringFixed(2))
	write("gains", "total_tax", g.TotalTax.StringFixed(2))
	write("gains", "net_proceeds", g.NetProceeds.StringFixed(2))

	for _, s := range a.Strategies {
		section := fmt.Sprintf("section_%s", s.Section)
		write(section, "max_exemption", s.MaxExemption.StringFixed(2))
		write(section, "investment_required", s.InvestmentRequired.StringFixed(2))
		write(section, "tax_saved", s.TaxSaved.StringFixed(2))
		write(section, "deadline", s.Deadline.Format("2006-01-02"))
		write(section, "lock_in_years", strconv.Itoa(s.LockInYears))
		if s.Bond != nil {
			write(section, "bond_interest", s.Bond.TotalInterest.StringFixed(2))
			write(section, "bond_net_maturity", s.Bond.NetMaturityValue.StringFixed(2))
		}
		if s.Property != nil {
			write(section, "projected_value", s.Property.FutureValue.StringFixed(2))
			write(section, "rental_income", s.Property.RentalIncome.StringFixed(2))
			write(section, "net_cash_in_hand", s.Property.NetCashInHand.StringFixed(2))
		}
		if s.PayTaxNow != nil {
			write(section, "pay_tax_now_net", s.PayTaxNow.NetCashInHand.StringFixed(2))
		}
	}

	if al := a.Allocation; al != nil {
		write("allocation", "net_proceeds", al.NetProceeds.StringFixed(2))
		write("allocation", "personal_use", al.PersonalUseAmount.StringFixed(2))
		write("allocation", "bonds", al.BondsAmount.StringFixed(2))
		write("allocation", "real_estate", al.RealEstateAmount.StringFixed(2))
		write("allocation", "unallocated", al.Unallocated.StringFixed(2))
		write("allocation", "total_projected_value", al.TotalProjectedValue.StringFixed(2))
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
