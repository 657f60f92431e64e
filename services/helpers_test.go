package services

import (
	"github.com/shopspring/decimal"

	"toy-sales-report/models"
	"toy-sales-report/utils"
)

func newTestLogger() *utils.Logger { return utils.NewNopLogger() }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func product(title, brand, price string, stock int, purchases ...string) models.Product {
	p := models.Product{
		Title:     title,
		Brand:     brand,
		FullPrice: dec(price),
		Stock:     stock,
		Purchases: []models.Purchase{},
	}
	for _, pu := range purchases {
		p.Purchases = append(p.Purchases, models.Purchase{Price: dec(pu)})
	}
	return p
}

// sampleCatalog is two products of the same brand plus one of another.
func sampleCatalog() *models.Catalog {
	return &models.Catalog{Products: []models.Product{
		product("Product A", "Acme", "10.00", 5, "8.00", "9.00"),
		product("Product B", "Acme", "20.00", 7, "15.00"),
		product("Yo-Yo", "spinco", "4.00", 2),
	}}
}
