package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/cgcalc/capitalgains-calculator/internal/domain"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration. The
// calculation core clamps rather than errors, so garbage inputs are
// rejected here at the boundary.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateProperty(&config.Property); err != nil {
		return fmt.Errorf("property validation failed: %w", err)
	}
	if err := ip.validateProjection(&config.Projection); err != nil {
		return fmt.Errorf("projection validation failed: %w", err)
	}
	if config.Allocation != nil {
		if err := ip.validateAllocation(config.Allocation); err != nil {
			return fmt.Errorf("allocation validation failed: %w", err)
		}
	}
	return nil
}

// validateProperty validates the property transaction record
func (ip *InputParser) validateProperty(p *domain.PropertyDetails) error {
	if !p.PropertyType.Valid() {
		return fmt.Errorf("property type must be 'residential', 'commercial' or 'land', got %q", p.PropertyType)
	}
	if p.PurchaseDate.IsZero() {
		return fmt.Errorf("purchase date is required")
	}
	if p.SaleDate.IsZero() {
		return fmt.Errorf("sale date is required")
	}
	if !p.SaleDate.After(p.PurchaseDate) {
		return fmt.Errorf("sale date (%s) must be after purchase date (%s)",
			p.SaleDate.Format("2006-01-02"), p.PurchaseDate.Format("2006-01-02"))
	}
	if p.PurchasePrice.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("purchase price must be positive")
	}
	if p.SalePrice.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("sale price must be positive")
	}
	if p.StampDuty.IsNegative() {
		return fmt.Errorf("stamp duty cannot be negative")
	}
	if p.ImprovementCost.IsNegative() {
		return fmt.Errorf("improvement cost cannot be negative")
	}
	if p.ImprovementCost.IsPositive() && !p.ImprovementDate.IsZero() {
		if p.ImprovementDate.Before(p.PurchaseDate) || p.ImprovementDate.After(p.SaleDate) {
			return fmt.Errorf("improvement date must fall between purchase and sale dates")
		}
	}
	if p.Brokerage.IsNegative() {
		return fmt.Errorf("brokerage cannot be negative")
	}
	if p.LegalFees.IsNegative() {
		return fmt.Errorf("legal fees cannot be negative")
	}
	if p.TransferExpenses().GreaterThanOrEqual(p.SalePrice) {
		return fmt.Errorf("transfer expenses cannot exceed the sale price")
	}
	return nil
}

// validateProjection validates the tunable projection assumptions
func (ip *InputParser) validateProjection(st *domain.ProjectionState) error {
	if st.AppreciationRate.LessThan(decimal.NewFromFloat(-1.0)) {
		return fmt.Errorf("appreciation rate cannot be less than -100%%")
	}
	if st.AppreciationRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("appreciation rate above 100%% annually is not plausible")
	}
	if st.MonthlyRent.IsNegative() {
		return fmt.Errorf("monthly rent cannot be negative")
	}
	if st.RentStartMonth < 0 || st.RentStartMonth > 36 {
		return fmt.Errorf("rent start month must be between 0 and 36")
	}
	if st.TaxSlabRate.IsNegative() || st.TaxSlabRate.GreaterThan(decimal.NewFromFloat(0.5)) {
		return fmt.Errorf("tax slab rate must be between 0 and 50%%")
	}
	return nil
}

// validateAllocation validates the reinvestment allocation request
func (ip *InputParser) validateAllocation(a *domain.ReinvestmentAllocation) error {
	if a.PersonalUse.Enabled && a.PersonalUse.Amount.IsNegative() {
		return fmt.Errorf("personal use amount cannot be negative")
	}
	if a.Bonds.Enabled && a.Bonds.Amount.IsNegative() {
		return fmt.Errorf("bond amount cannot be negative")
	}
	return nil
}

// CreateExampleConfiguration builds a demonstration configuration:
// a residential flat bought in early 2015 and sold ten years later.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	purchaseDate, _ := time.Parse("2006-01-02", "2015-01-01")
	saleDate, _ := time.Parse("2006-01-02", "2025-01-01")

	cfg := &domain.Configuration{
		Property: domain.PropertyDetails{
			PropertyType:  domain.PropertyResidential,
			PurchaseDate:  purchaseDate,
			PurchasePrice: decimal.NewFromInt(5000000),
			StampDuty:     decimal.NewFromInt(300000),
			SaleDate:      saleDate,
			SalePrice:     decimal.NewFromInt(12000000),
			Brokerage:     decimal.NewFromInt(120000),
			LegalFees:     decimal.NewFromInt(30000),
		},
		Projection: domain.ProjectionState{
			EnableRental:   true,
			MonthlyRent:    decimal.NewFromInt(25000),
			RentStartMonth: 6,
			TaxSlabRate:    decimal.NewFromFloat(0.30),
		},
	}

	alloc := &domain.ReinvestmentAllocation{}
	alloc.PersonalUse.Enabled = true
	alloc.PersonalUse.Amount = decimal.NewFromInt(1000000)
	alloc.Bonds.Enabled = true
	alloc.Bonds.Amount = decimal.NewFromInt(5000000)
	alloc.RealEstate.Enabled = true
	cfg.Allocation = alloc

	return cfg
}

// WriteExampleConfiguration marshals the demonstration configuration to
// a YAML file.
func (ip *InputParser) WriteExampleConfiguration(filename string) error {
	data, err := yaml.Marshal(ip.CreateExampleConfiguration())
	if err != nil {
		return fmt.Errorf("failed to marshal example configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
