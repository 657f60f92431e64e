package storage

import (
	"context"
	"fmt"
	"html"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"toy-sales-report/models"
	"toy-sales-report/utils"
)

// PDFWriter prints the rendered report to PDF with headless Chrome. The text
// is kept monospaced so the banners and separators line up as in report.txt.
type PDFWriter struct {
	path      string
	chromeBin string
	timeout   time.Duration
	logger    *utils.Logger
}

// NewPDFWriter returns a PDFWriter. An empty chromeBin is looked up on PATH
// and in the usual install locations.
func NewPDFWriter(path, chromeBin string, timeout time.Duration, logger *utils.Logger) *PDFWriter {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &PDFWriter{path: path, chromeBin: chromeBin, timeout: timeout, logger: logger}
}

func (w *PDFWriter) Write(ctx context.Context, _ *models.Report, text string) error {
	if err := ensureDir(w.path); err != nil {
		return err
	}

	pdf, err := w.render(ctx, reportHTML(text))
	if err != nil {
		return err
	}

	if err := os.WriteFile(w.path, pdf, 0644); err != nil {
		return fmt.Errorf("pdf: write %q: %w", w.path, err)
	}
	w.logger.Info("[pdf] Wrote %d bytes to %s", len(pdf), w.path)
	return nil
}

func (w *PDFWriter) render(ctx context.Context, doc string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.NoSandbox,
	)
	if bin := w.resolveChrome(); bin != "" {
		opts = append(opts, chromedp.ExecPath(bin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(format string, args ...any) {
			w.logger.Debug("[pdf] "+format, args...)
		}),
	)
	defer cancelBrowser()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, doc).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(false).
				WithPaperWidth(8.27).   // A4, inches
				WithPaperHeight(11.69). // A4, inches
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("pdf: rendering timed out after %v: %w", w.timeout, err)
		}
		return nil, fmt.Errorf("pdf: render: %w", err)
	}
	if len(pdf) == 0 {
		return nil, fmt.Errorf("pdf: render produced an empty document")
	}
	return pdf, nil
}

func (w *PDFWriter) resolveChrome() string {
	if w.chromeBin != "" {
		return w.chromeBin
	}
	return findChromeBinary()
}

// reportHTML wraps the plain-text report in a printable HTML document.
func reportHTML(text string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head><meta charset=\"UTF-8\">")
	b.WriteString("<title>Sales Report</title>")
	b.WriteString("<style>pre{font-family:monospace;font-size:8pt;line-height:1.2;}</style>")
	b.WriteString("</head><body><pre>")
	b.WriteString(html.EscapeString(text))
	b.WriteString("</pre></body></html>")
	return b.String()
}

func findChromeBinary() string {
	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
