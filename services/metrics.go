package services

import (
	"github.com/shopspring/decimal"

	"toy-sales-report/models"
)

var hundred = decimal.NewFromInt(100)

// ComputeProductMetrics derives the sales figures of one product.
//
// Zero purchases and a zero list price are not errors. With no purchases the
// average price is 0, the discount equals the list price and the discount
// percentage is 0; with a zero list price the discount percentage is 0. A
// negative discount (sold above list price) is kept as is.
func ComputeProductMetrics(p models.Product) models.ProductMetrics {
	m := models.ProductMetrics{
		Title:           p.Title,
		FullPrice:       p.FullPrice,
		UnitsSold:       len(p.Purchases),
		TotalSales:      p.PurchaseTotal(),
		AveragePrice:    decimal.Zero,
		DiscountPercent: decimal.Zero,
	}

	if m.UnitsSold > 0 {
		m.AveragePrice = m.TotalSales.Div(decimal.NewFromInt(int64(m.UnitsSold)))
	}
	m.DiscountAmount = p.FullPrice.Sub(m.AveragePrice)

	if m.UnitsSold > 0 && !p.FullPrice.IsZero() {
		m.DiscountPercent = m.DiscountAmount.Div(p.FullPrice).Mul(hundred)
	}
	return m
}

// ComputeBrandAggregates folds the products into per-brand totals in a single
// pass. Brands keep the order in which they first appear.
func ComputeBrandAggregates(products []models.Product) *models.BrandAggregates {
	aggs := models.NewBrandAggregates()
	for _, p := range products {
		agg := aggs.Ensure(p.Brand)
		agg.ToyCount++
		agg.StockTotal += p.Stock
		agg.CumulativePrice = agg.CumulativePrice.Add(p.FullPrice)
		agg.TotalRevenue = agg.TotalRevenue.Add(p.PurchaseTotal())
	}
	return aggs
}
