package services

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"toy-sales-report/models"
	"toy-sales-report/utils"
)

const headerRuleWidth = 75

// ReportService assembles the sales report from a catalog.
type ReportService struct {
	logger     *utils.Logger
	dateLayout string
}

// NewReportService creates a ReportService. An empty dateLayout uses
// utils.DefaultDateLayout.
func NewReportService(logger *utils.Logger, dateLayout string) *ReportService {
	if dateLayout == "" {
		dateLayout = utils.DefaultDateLayout
	}
	return &ReportService{logger: logger, dateLayout: dateLayout}
}

// Summarize computes product metrics and brand aggregates for the catalog.
func (s *ReportService) Summarize(catalog *models.Catalog, now time.Time) *models.Report {
	report := &models.Report{GeneratedAt: now}
	if catalog == nil {
		report.Brands = models.NewBrandAggregates()
		return report
	}

	report.Products = make([]models.ProductMetrics, 0, len(catalog.Products))
	for _, p := range catalog.Products {
		m := ComputeProductMetrics(p)
		if m.UnitsSold == 0 {
			s.logger.Warn("[report] %q has no purchases, averages reported as zero", p.Title)
		}
		if p.FullPrice.IsZero() {
			s.logger.Warn("[report] %q has a zero list price, discount percentage reported as zero", p.Title)
		}
		report.Products = append(report.Products, m)
	}
	report.Brands = ComputeBrandAggregates(catalog.Products)

	s.logger.Info("[report] Summarized %d products across %d brands",
		len(report.Products), report.Brands.Len())
	return report
}

// Build returns the complete report text for the catalog as of now. The
// same catalog and date always produce the same text.
func (s *ReportService) Build(catalog *models.Catalog, now time.Time) string {
	return s.Render(s.Summarize(catalog, now))
}

// Render lays out a summarized report as plain text.
func (s *ReportService) Render(r *models.Report) string {
	var b strings.Builder
	line := func(parts ...string) {
		for _, p := range parts {
			b.WriteString(p)
		}
		b.WriteByte('\n')
	}
	sep := utils.DefaultSeparator()

	line(salesReportBanner)
	line(utils.RepeatChar("=", headerRuleWidth))
	line("Date: ", utils.FormatDate(r.GeneratedAt, s.dateLayout))

	line(productsBanner)
	for _, m := range r.Products {
		line(m.Title)
		line(sep)
		line("Retail Price: ", utils.FormatNumber(m.FullPrice, utils.Money()))
		line("Total Purchases: ", strconv.Itoa(m.UnitsSold))
		line("Total Sales: ", utils.FormatNumber(m.TotalSales, utils.Money()))
		line("Average Price: ", utils.FormatNumber(m.AveragePrice, utils.Money()))
		line("Average Discount: ", utils.FormatNumber(m.DiscountAmount, utils.Money()))
		line("Average Discount Percentage: ", utils.FormatNumber(m.DiscountPercent, utils.Percent()))
		line(sep)
		line()
	}

	line(brandsBanner)
	if r.Brands != nil {
		upper := cases.Upper(language.Und)
		for _, brand := range r.Brands.All() {
			line(upper.String(brand.Name))
			line(sep)
			// Prints the stock total, not the number of distinct products.
			line("Number of Products: ", strconv.Itoa(brand.StockTotal))
			line("Average price: ", utils.FormatNumber(brand.AveragePrice(), utils.Money()))
			line("Total revenue: ", utils.FormatNumber(brand.TotalRevenue, utils.Money()))
			line(sep)
			line()
		}
	}

	return b.String()
}
