package models

import "github.com/shopspring/decimal"

// RawCatalog is the catalog document exactly as decoded from its source.
// Pointer fields distinguish a missing value from a zero one; the cleaner
// validates it and turns it into a Catalog.
type RawCatalog struct {
	Items []RawProduct `json:"items" yaml:"items" validate:"required,dive"`
}

// RawProduct mirrors one entry of the catalog's items list.
type RawProduct struct {
	Title     *string          `json:"title" yaml:"title" validate:"required,min=1"`
	Brand     *string          `json:"brand" yaml:"brand" validate:"required,min=1"`
	FullPrice *decimal.Decimal `json:"full-price" yaml:"full-price" validate:"required"`
	Stock     *int             `json:"stock" yaml:"stock" validate:"required,gte=0"`
	Purchases []RawPurchase    `json:"purchases" yaml:"purchases" validate:"required,dive"`
}

// RawPurchase mirrors one entry of a product's purchases list.
type RawPurchase struct {
	Price *decimal.Decimal `json:"price" yaml:"price" validate:"required"`
	Date  string           `json:"date,omitempty" yaml:"date,omitempty"`
}

// Catalog is the validated set of products under report, in source order.
// It is read-only for the lifetime of a run.
type Catalog struct {
	Products []Product
}

// Product is a single toy with its list price, stock level and purchase history.
type Product struct {
	Title     string
	Brand     string
	FullPrice decimal.Decimal
	Stock     int
	Purchases []Purchase
}

// Purchase is one recorded sale of a Product.
type Purchase struct {
	Price decimal.Decimal
	Date  string
}

// PurchaseTotal returns the sum of every purchase price of the product.
func (p Product) PurchaseTotal() decimal.Decimal {
	total := decimal.Zero
	for _, pu := range p.Purchases {
		total = total.Add(pu.Price)
	}
	return total
}
