package output

import (
	"bytes"
	"html/template"

	"github.com/shopspring/decimal"

	"github.com/cgcalc/capitalgains-calculator/internal/domain"
	moneyfmt "github.com/cgcalc/capitalgains-calculator/pkg/decimal"
)

// HTMLFormatter renders the analysis as a standalone HTML report.
type HTMLFormatter struct{}

func (HTMLFormatter) Name() string      { return "html" }
func (HTMLFormatter) Extension() string { return "html" }

var htmlFuncs = template.FuncMap{
	"inr": moneyfmt.FormatINR,
	"pct": func(d decimal.Decimal) string {
		return d.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
	},
	"date": func(t interface{ Format(string) string }) string { return t.Format("2006-01-02") },
}

var htmlTemplate = template.Must(template.New("report").Funcs(htmlFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Capital Gains Analysis</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
h1 { border-bottom: 2px solid #444; padding-bottom: 4px; }
table { border-collapse: collapse; margin: 1em 0; }
th, td { border: 1px solid #ccc; padding: 6px 12px; text-align: left; }
th { background: #f0f0f0; }
.recommended { background: #e6f4e6; }
.notes { font-size: 0.9em; color: #555; }
</style>
</head>
<body>
<h1>Capital Gains Analysis</h1>

<h2>Property</h2>
<table>
<tr><th>Type</th><td>{{.Property.PropertyType}}</td></tr>
<tr><th>Purchased</th><td>{{date .Property.PurchaseDate}} for {{inr .Property.PurchasePrice}}</td></tr>
<tr><th>Sold</th><td>{{date .Property.SaleDate}} for {{inr .Property.SalePrice}}</td></tr>
<tr><th>Holding period</th><td>{{.Gains.HoldingPeriod.Months}} months ({{if .Gains.HoldingPeriod.IsLongTerm}}long-term{{else}}short-term{{end}})</td></tr>
</table>

{{if and .Gains.CanChooseRegime .Gains.OldRegime .Gains.NewRegime}}
<h2>Regime comparison</h2>
<table>
<tr><th>Regime</th><th>Cost basis</th><th>Capital gain</th><th>Tax</th><th>Net proceeds</th></tr>
<tr{{if eq .Gains.RecommendedRegime "old"}} class="recommended"{{end}}>
<td>Old (20% with indexation)</td><td>{{inr .Gains.OldRegime.CostBasis}}</td><td>{{inr .Gains.OldRegime.CapitalGain}}</td><td>{{inr .Gains.OldRegime.Tax}}</td><td>{{inr .Gains.OldRegime.NetProceeds}}</td></tr>
<tr{{if eq .Gains.RecommendedRegime "new"}} class="recommended"{{end}}>
<td>New (12.5% flat)</td><td>{{inr .Gains.NewRegime.CostBasis}}</td><td>{{inr .Gains.NewRegime.CapitalGain}}</td><td>{{inr .Gains.NewRegime.Tax}}</td><td>{{inr .Gains.NewRegime.NetProceeds}}</td></tr>
</table>
{{end}}

<h2>Result ({{.Gains.ActiveRegime}} regime)</h2>
<table>
<tr><th>Capital gain</th><td>{{inr .Gains.CapitalGain}}</td></tr>
<tr><th>Total tax</th><td>{{inr .Gains.TotalTax}}</td></tr>
<tr><th>Net proceeds</th><td>{{inr .Gains.NetProceeds}}</td></tr>
</table>

{{if .Strategies}}
<h2>Exemption strategies</h2>
{{range .Strategies}}
<h3>Section {{.Section}}: {{.Title}}</h3>
<table>
<tr><th>Max exemption</th><td>{{inr .MaxExemption}}</td></tr>
<tr><th>Investment required</th><td>{{inr .InvestmentRequired}}</td></tr>
<tr><th>Tax saved</th><td>{{inr .TaxSaved}}</td></tr>
<tr><th>Deadline</th><td>{{date .Deadline}}</td></tr>
<tr><th>Lock-in</th><td>{{.LockInYears}} years</td></tr>
{{if .Bond}}
<tr><th>Bond interest ({{pct .Bond.InterestRate}} simple)</th><td>{{inr .Bond.TotalInterest}}</td></tr>
<tr><th>Net maturity value</th><td>{{inr .Bond.NetMaturityValue}}</td></tr>
{{end}}
{{if .Property}}
<tr><th>Projected value ({{pct .Property.AppreciationRate}} p.a.)</th><td>{{inr .Property.FutureValue}}</td></tr>
<tr><th>Rental income</th><td>{{inr .Property.RentalIncome}}</td></tr>
<tr><th>Net cash in hand</th><td>{{inr .Property.NetCashInHand}}</td></tr>
{{end}}
{{if .PayTaxNow}}
<tr><th>Pay tax now (FD {{pct .PayTaxNow.Rate}})</th><td>{{inr .PayTaxNow.NetCashInHand}}</td></tr>
{{end}}
</table>
<ul class="notes">
{{range .Notes}}<li>{{.}}</li>{{end}}
</ul>
{{end}}
{{end}}

{{if .Allocation}}
<h2>Reinvestment allocation</h2>
<table>
<tr><th>Bucket</th><th>Amount</th><th>Projected</th><th>Timeframe</th></tr>
<tr><td>Personal use</td><td>{{inr .Allocation.PersonalUseAmount}}</td><td>{{inr .Allocation.PersonalUseAmount}}</td><td>immediate</td></tr>
<tr><td>54EC bonds</td><td>{{inr .Allocation.BondsAmount}}</td><td>{{if .Allocation.Bonds}}{{inr .Allocation.Bonds.NetMaturityValue}}{{else}}—{{end}}</td><td>5 years</td></tr>
<tr><td>Real estate</td><td>{{inr .Allocation.RealEstateAmount}}</td><td>{{if .Allocation.RealEstate}}{{inr .Allocation.RealEstate.NetCashInHand}}{{else}}—{{end}}</td><td>3 years</td></tr>
<tr><td>Unallocated</td><td>{{inr .Allocation.Unallocated}}</td><td>{{inr .Allocation.Unallocated}}</td><td>immediate</td></tr>
<tr><th>Total projected</th><th colspan="3">{{inr .Allocation.TotalProjectedValue}}</th></tr>
</table>
{{end}}

</body>
</html>
`))

func (HTMLFormatter) Format(a *domain.Analysis) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, a); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
