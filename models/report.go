package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductMetrics holds the sales figures derived from one Product.
type ProductMetrics struct {
	Title           string
	FullPrice       decimal.Decimal
	UnitsSold       int
	TotalSales      decimal.Decimal
	AveragePrice    decimal.Decimal
	DiscountAmount  decimal.Decimal
	DiscountPercent decimal.Decimal
}

// BrandAggregate is the rollup of every product sharing a brand name.
type BrandAggregate struct {
	Name            string
	ToyCount        int
	StockTotal      int
	CumulativePrice decimal.Decimal
	TotalRevenue    decimal.Decimal
}

// AveragePrice is the mean list price of the brand's products.
func (b *BrandAggregate) AveragePrice() decimal.Decimal {
	if b.ToyCount == 0 {
		return decimal.Zero
	}
	return b.CumulativePrice.Div(decimal.NewFromInt(int64(b.ToyCount)))
}

// BrandAggregates keeps brands in order of first appearance in the catalog.
type BrandAggregates struct {
	order  []string
	byName map[string]*BrandAggregate
}

// NewBrandAggregates returns an empty collection.
func NewBrandAggregates() *BrandAggregates {
	return &BrandAggregates{byName: make(map[string]*BrandAggregate)}
}

// Ensure returns the aggregate for name, inserting a zeroed one at the end
// of the order if the brand has not been seen yet.
func (a *BrandAggregates) Ensure(name string) *BrandAggregate {
	if agg, ok := a.byName[name]; ok {
		return agg
	}
	agg := &BrandAggregate{
		Name:            name,
		CumulativePrice: decimal.Zero,
		TotalRevenue:    decimal.Zero,
	}
	a.byName[name] = agg
	a.order = append(a.order, name)
	return agg
}

// Get looks up a brand by name.
func (a *BrandAggregates) Get(name string) (*BrandAggregate, bool) {
	agg, ok := a.byName[name]
	return agg, ok
}

// Names returns the brand names in display order.
func (a *BrandAggregates) Names() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// All returns the aggregates in display order.
func (a *BrandAggregates) All() []*BrandAggregate {
	out := make([]*BrandAggregate, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, a.byName[name])
	}
	return out
}

// Len returns the number of distinct brands.
func (a *BrandAggregates) Len() int {
	return len(a.order)
}

// Report holds the computed figures for one run, used by sinks that need
// structured data rather than the rendered text.
type Report struct {
	GeneratedAt time.Time
	Products    []ProductMetrics
	Brands      *BrandAggregates
}
