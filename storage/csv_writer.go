package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"toy-sales-report/models"
	"toy-sales-report/utils"
)

var csvHeader = []string{
	"section", "name", "list_price", "units_sold", "total_sales", "average_price",
	"discount", "discount_percent", "toy_count", "stock_total", "total_revenue",
}

// CSVWriter writes the report figures as CSV: one row per product followed
// by one row per brand. Columns that do not apply to a section are empty.
type CSVWriter struct {
	path string
}

// NewCSVWriter returns a CSVWriter for path.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

func (c *CSVWriter) Write(_ context.Context, report *models.Report, _ string) error {
	if err := ensureDir(c.path); err != nil {
		return err
	}

	f, err := os.Create(c.path)
	if err != nil {
		return fmt.Errorf("csv: create file %q: %w", c.path, err)
	}

	if err := writeCSV(csv.NewWriter(f), report); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeCSV(w *csv.Writer, report *models.Report) error {
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	money := utils.DefaultNumberFormat()
	for _, m := range report.Products {
		row := []string{
			"product",
			m.Title,
			utils.FormatNumber(m.FullPrice, money),
			strconv.Itoa(m.UnitsSold),
			utils.FormatNumber(m.TotalSales, money),
			utils.FormatNumber(m.AveragePrice, money),
			utils.FormatNumber(m.DiscountAmount, money),
			utils.FormatNumber(m.DiscountPercent, money),
			"", "", "",
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	if report.Brands != nil {
		for _, b := range report.Brands.All() {
			row := []string{
				"brand",
				b.Name,
				"", "", "",
				utils.FormatNumber(b.AveragePrice(), money),
				"", "",
				strconv.Itoa(b.ToyCount),
				strconv.Itoa(b.StockTotal),
				utils.FormatNumber(b.TotalRevenue, money),
			}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("csv: write row: %w", err)
			}
		}
	}

	w.Flush()
	return w.Error()
}
