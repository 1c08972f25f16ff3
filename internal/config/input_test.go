package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgcalc/capitalgains-calculator/internal/domain"
)

const sampleYAML = `
property:
  property_type: residential
  purchase_date: 2015-01-01
  purchase_price: 5000000
  stamp_duty: 300000
  sale_date: 2025-01-01
  sale_price: 12000000
  brokerage: 120000
  legal_fees: 30000
projection:
  appreciation_rate: 0.10
  enable_rental: true
  monthly_rent: 25000
  rent_start_month: 6
  tax_slab_rate: 0.30
allocation:
  personal_use:
    enabled: true
    amount: 1000000
  bonds:
    enabled: true
    amount: 5000000
  real_estate:
    enabled: true
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	parser := NewInputParser()
	cfg, err := parser.LoadFromFile(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	p := cfg.Property
	assert.Equal(t, domain.PropertyResidential, p.PropertyType)
	assert.Equal(t, 2015, p.PurchaseDate.Year())
	assert.True(t, p.PurchasePrice.Equal(decimal.NewFromInt(5000000)))
	assert.True(t, p.StampDuty.Equal(decimal.NewFromInt(300000)))
	assert.True(t, p.SalePrice.Equal(decimal.NewFromInt(12000000)))

	assert.True(t, cfg.Projection.EnableRental)
	assert.Equal(t, 6, cfg.Projection.RentStartMonth)
	assert.True(t, cfg.Projection.TaxSlabRate.Equal(decimal.NewFromFloat(0.30)))

	require.NotNil(t, cfg.Allocation)
	assert.True(t, cfg.Allocation.Bonds.Enabled)
	assert.True(t, cfg.Allocation.Bonds.Amount.Equal(decimal.NewFromInt(5000000)))
	assert.True(t, cfg.Allocation.RealEstate.Enabled)
}

func TestLoadFromFileMissing(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFileMalformedYAML(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(writeConfig(t, "property: [not: closed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateConfiguration(t *testing.T) {
	base := func() *domain.Configuration {
		parser := NewInputParser()
		return parser.CreateExampleConfiguration()
	}

	tests := []struct {
		name    string
		mutate  func(*domain.Configuration)
		wantErr string
	}{
		{
			name:   "Example configuration is valid",
			mutate: func(*domain.Configuration) {},
		},
		{
			name:    "Unknown property type",
			mutate:  func(c *domain.Configuration) { c.Property.PropertyType = "farmhouse" },
			wantErr: "property type",
		},
		{
			name:    "Missing purchase date",
			mutate:  func(c *domain.Configuration) { c.Property.PurchaseDate = time.Time{} },
			wantErr: "purchase date is required",
		},
		{
			name: "Sale before purchase",
			mutate: func(c *domain.Configuration) {
				c.Property.SaleDate = c.Property.PurchaseDate.AddDate(-1, 0, 0)
			},
			wantErr: "must be after purchase date",
		},
		{
			name:    "Zero purchase price",
			mutate:  func(c *domain.Configuration) { c.Property.PurchasePrice = decimal.Zero },
			wantErr: "purchase price must be positive",
		},
		{
			name:    "Negative stamp duty",
			mutate:  func(c *domain.Configuration) { c.Property.StampDuty = decimal.NewFromInt(-1) },
			wantErr: "stamp duty cannot be negative",
		},
		{
			name: "Improvement dated before the purchase",
			mutate: func(c *domain.Configuration) {
				c.Property.ImprovementCost = decimal.NewFromInt(100000)
				c.Property.ImprovementDate = c.Property.PurchaseDate.AddDate(-2, 0, 0)
			},
			wantErr: "improvement date",
		},
		{
			name: "Transfer expenses swallowing the sale price",
			mutate: func(c *domain.Configuration) {
				c.Property.Brokerage = c.Property.SalePrice
			},
			wantErr: "transfer expenses",
		},
		{
			name: "Implausible appreciation rate",
			mutate: func(c *domain.Configuration) {
				c.Projection.AppreciationRate = decimal.NewFromInt(2)
			},
			wantErr: "appreciation rate",
		},
		{
			name:    "Rent start month beyond the horizon",
			mutate:  func(c *domain.Configuration) { c.Projection.RentStartMonth = 48 },
			wantErr: "rent start month",
		},
		{
			name: "Slab rate above 50%",
			mutate: func(c *domain.Configuration) {
				c.Projection.TaxSlabRate = decimal.NewFromFloat(0.60)
			},
			wantErr: "tax slab rate",
		},
		{
			name: "Negative bond allocation",
			mutate: func(c *domain.Configuration) {
				c.Allocation.Bonds.Amount = decimal.NewFromInt(-1)
			},
			wantErr: "bond amount cannot be negative",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := parser.ValidateConfiguration(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWriteExampleConfigurationRoundTrip(t *testing.T) {
	parser := NewInputParser()
	path := filepath.Join(t.TempDir(), "example.yaml")
	require.NoError(t, parser.WriteExampleConfiguration(path))

	cfg, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	example := parser.CreateExampleConfiguration()
	assert.Equal(t, example.Property.PropertyType, cfg.Property.PropertyType)
	assert.True(t, cfg.Property.PurchasePrice.Equal(example.Property.PurchasePrice))
	assert.True(t, cfg.Property.SalePrice.Equal(example.Property.SalePrice))
	assert.Equal(t, example.Projection.RentStartMonth, cfg.Projection.RentStartMonth)
	require.NotNil(t, cfg.Allocation)
	assert.True(t, cfg.Allocation.PersonalUse.Amount.Equal(example.Allocation.PersonalUse.Amount))
}
