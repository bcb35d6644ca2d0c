// Package docinfo inspects PDF documents for diagnostics: page counts, page
// dimensions and a short text preview. It backs the CLI's info command and is
// useful when deciding which pages of a drawing set to exclude.
package docinfo

import (
	"fmt"
	"os"
	"strings"

	"github.com/flanksource/commons/logger"
	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdftypes "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/samber/lo"
)

const previewLimit = 200

// PageInfo describes one page of a document.
type PageInfo struct {
	Number int // 1-based
	Width  float64
	Height float64
}

// Landscape reports whether the page is wider than it is tall.
func (p PageInfo) Landscape() bool {
	return p.Width > p.Height
}

// Info summarizes a PDF document.
type Info struct {
	Path      string
	PageCount int
	Pages     []PageInfo
	Preview   string // text from the first page, truncated; empty if none
}

// Inspect reads page structure and a first-page text preview from the
// document at path.
func Inspect(path string) (*Info, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("inspecting %s: %w", path, err)
	}

	count, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("measuring %s: %w", path, err)
	}

	info := &Info{
		Path:      path,
		PageCount: count,
		Pages: lo.Map(dims, func(d pdftypes.Dim, i int) PageInfo {
			return PageInfo{Number: i + 1, Width: d.Width, Height: d.Height}
		}),
	}
	info.Preview = firstPageText(path)
	return info, nil
}

// firstPageText extracts a truncated plain-text preview of the first page.
// Extraction is best effort: scanned or vector-only drawings have no text,
// and a failure here never fails the inspection.
func firstPageText(path string) string {
	f, reader, err := pdf.Open(path)
	if err != nil {
		logger.Debugf("text preview unavailable for %s: %v", path, err)
		return ""
	}
	defer f.Close()

	if reader.NumPage() < 1 {
		return ""
	}
	page := reader.Page(1)
	if page.V.IsNull() {
		return ""
	}

	content, err := page.GetPlainText(nil)
	if err != nil {
		logger.Debugf("text preview unavailable for %s: %v", path, err)
		return ""
	}

	content = strings.Join(strings.Fields(content), " ")
	return lo.Ellipsis(content, previewLimit)
}
