package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// PropertyType identifies the category of immovable property sold.
type PropertyType string

const (
	PropertyResidential PropertyType = "residential"
	PropertyCommercial  PropertyType = "commercial"
	PropertyLand        PropertyType = "land"
)

// Valid reports whether the property type is one of the known categories.
func (pt PropertyType) Valid() bool {
	switch pt {
	case PropertyResidential, PropertyCommercial, PropertyLand:
		return true
	}
	return false
}

// TaxRegime selects between the pre-2024 indexation regime and the flat
// 12.5% regime introduced by Finance (No. 2) Act 2024.
type TaxRegime string

const (
	RegimeOld TaxRegime = "old"
	RegimeNew TaxRegime = "new"
)

// PropertyDetails holds the user-entered facts about a single property
// transaction. It is immutable input to all downstream computation.
type PropertyDetails struct {
	PropertyType    PropertyType    `yaml:"property_type" json:"property_type"`
	PurchaseDate    time.Time       `yaml:"purchase_date" json:"purchase_date"`
	PurchasePrice   decimal.Decimal `yaml:"purchase_price" json:"purchase_price"`
	StampDuty       decimal.Decimal `yaml:"stamp_duty" json:"stamp_duty"`
	ImprovementCost decimal.Decimal `yaml:"improvement_cost,omitempty" json:"improvement_cost,omitempty"`
	ImprovementDate time.Time       `yaml:"improvement_date,omitempty" json:"improvement_date,omitempty"`
	SaleDate        time.Time       `yaml:"sale_date" json:"sale_date"`
	SalePrice       decimal.Decimal `yaml:"sale_price" json:"sale_price"`
	Brokerage       decimal.Decimal `yaml:"brokerage,omitempty" json:"brokerage,omitempty"`
	LegalFees       decimal.Decimal `yaml:"legal_fees,omitempty" json:"legal_fees,omitempty"`
}

// TotalPurchaseCost is the acquisition cost including stamp duty.
func (p *PropertyDetails) TotalPurchaseCost() decimal.Decimal {
	return p.PurchasePrice.Add(p.StampDuty)
}

// TransferExpenses is the cost of effecting the sale (brokerage + legal).
func (p *PropertyDetails) TransferExpenses() decimal.Decimal {
	return p.Brokerage.Add(p.LegalFees)
}

// NetSaleConsideration is the sale price net of transfer expenses.
func (p *PropertyDetails) NetSaleConsideration() decimal.Decimal {
	return p.SalePrice.Sub(p.TransferExpenses())
}

// RealizedCAGR returns the compound annual growth rate actually achieved
// between purchase and sale, or false when the span or prices make the
// rate undefined.
func (p *PropertyDetails) RealizedCAGR() (decimal.Decimal, bool) {
	years := p.SaleDate.Sub(p.PurchaseDate).Hours() / 24 / 365.25
	if years <= 0 || !p.PurchasePrice.IsPositive() || !p.SalePrice.IsPositive() {
		return decimal.Zero, false
	}
	ratio := p.SalePrice.Div(p.PurchasePrice).InexactFloat64()
	return decimal.NewFromFloat(math.Pow(ratio, 1/years) - 1), true
}
