package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"toy-sales-report/models"
	"toy-sales-report/utils"
)

// CatalogSource is the interface any catalog backend must satisfy.
type CatalogSource interface {
	Load(ctx context.Context) (*models.RawCatalog, error)
	Close() error
}

// ReportWriter persists one finished report. Text is the rendered plain-text
// report; sinks that need structured figures read them from report.
type ReportWriter interface {
	Write(ctx context.Context, report *models.Report, text string) error
}

// Report formats accepted by NewReportWriter.
const (
	FormatText = "txt"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
)

// WriterOptions carries the settings only some sinks need.
type WriterOptions struct {
	ChromeBin  string
	PDFTimeout time.Duration
	Logger     *utils.Logger
}

// NewReportWriter returns the sink for format.
func NewReportWriter(format, path string, opts WriterOptions) (ReportWriter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText, "":
		return NewTextWriter(path), nil
	case FormatCSV:
		return NewCSVWriter(path), nil
	case FormatPDF:
		return NewPDFWriter(path, opts.ChromeBin, opts.PDFTimeout, opts.Logger), nil
	default:
		return nil, fmt.Errorf("report: %w %q", models.ErrUnknownFormat, format)
	}
}
