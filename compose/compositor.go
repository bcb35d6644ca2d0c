// Package compose implements the sheet-composition engine: every page of a
// customer drawing is scaled into the safe zone of a fixed-size output sheet
// and a title-block template is overlaid on top.
package compose

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/flanksource/commons/logger"
	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Compositor composes drawing pages onto fixed-size sheets. It is safe to
// reuse across jobs but not from multiple goroutines at once; jobs are
// expected to run sequentially.
type Compositor struct {
	geometry Geometry
}

// New returns a Compositor for the given geometry.
func New(geometry Geometry) (*Compositor, error) {
	if err := geometry.Validate(); err != nil {
		return nil, err
	}
	return &Compositor{geometry: geometry}, nil
}

// NewDefault returns a Compositor using the standard A3 landscape geometry.
func NewDefault() *Compositor {
	return &Compositor{geometry: DefaultGeometry()}
}

// Geometry returns the sheet geometry the compositor was built with.
func (c *Compositor) Geometry() Geometry {
	return c.geometry
}

// Compose runs one composition job. Pages listed in job.Exclude are skipped;
// the remaining pages are written to job.OutputPath in source order, each on
// a fresh sheet. When every page is excluded no file is written and the
// returned Result has PagesWritten == 0.
func (c *Compositor) Compose(job Job) (Result, error) {
	for _, path := range []string{job.InputPath, job.TemplatePath} {
		if _, err := os.Stat(path); err != nil {
			return Result{}, &NotFoundError{Path: path}
		}
	}

	pageCount, err := api.PageCountFile(job.InputPath)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", job.InputPath, err)
	}

	working := make([]int, 0, pageCount)
	for i := 0; i < pageCount; i++ {
		if job.Exclude.Contains(i) {
			logger.Debugf("skipping page %d of %s (excluded)", i+1, job.InputPath)
			continue
		}
		working = append(working, i)
	}

	logger.Infof("processing %d/%d page(s) from %s", len(working), pageCount, job.InputPath)

	if len(working) == 0 {
		logger.Warnf("all pages excluded for %s, no output generated", job.InputPath)
		return Result{PagesSkipped: pageCount}, nil
	}

	if err := c.compose(job, working); err != nil {
		return Result{}, err
	}
	return Result{
		PagesWritten: len(working),
		PagesSkipped: pageCount - len(working),
		OutputPath:   job.OutputPath,
	}, nil
}

// ComposeOne composes a single source page onto one sheet.
func (c *Compositor) ComposeOne(inputPath, templatePath, outputPath string, pageIndex int) error {
	for _, path := range []string{inputPath, templatePath} {
		if _, err := os.Stat(path); err != nil {
			return &NotFoundError{Path: path}
		}
	}

	pageCount, err := api.PageCountFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}
	if pageIndex < 0 || pageIndex >= pageCount {
		return &PageIndexError{Index: pageIndex, PageCount: pageCount}
	}

	job := Job{InputPath: inputPath, TemplatePath: templatePath, OutputPath: outputPath}
	return c.compose(job, []int{pageIndex})
}

// compose builds the output document for the given working set of zero-based
// source page indices. The working set is never empty here.
func (c *Compositor) compose(job Job, working []int) error {
	tmpDir, err := os.MkdirTemp("", "sheetpress-*")
	if err != nil {
		return fmt.Errorf("creating work dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	// Rewrite the source through pdfcpu before importing. This normalizes
	// content streams and cross-reference data so placement is not affected
	// by whatever transform state the original pages carry.
	cleaned := filepath.Join(tmpDir, "source.pdf")
	if err := api.OptimizeFile(job.InputPath, cleaned, importConfiguration()); err != nil {
		return fmt.Errorf("cleaning %s: %w", job.InputPath, err)
	}

	dims, err := api.PageDimsFile(cleaned)
	if err != nil {
		return fmt.Errorf("measuring %s: %w", job.InputPath, err)
	}

	templatePages, err := api.PageCountFile(job.TemplatePath)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", job.TemplatePath, err)
	}

	sheet := c.geometry.Sheet()
	safe := c.geometry.SafeZone()
	logger.Debugf("sheet %.0f x %.0f pts, safe zone %s", sheet.W, sheet.H, safe)

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: sheet.W, Ht: sheet.H},
	})
	importer := gofpdi.NewImporter()

	// The template's first page is reused on every sheet, so import it once.
	var templateID int
	var templateRect Rect
	if templatePages > 0 {
		templateDims, err := api.PageDimsFile(job.TemplatePath)
		if err != nil {
			return fmt.Errorf("measuring template %s: %w", job.TemplatePath, err)
		}
		templateID = importer.ImportPage(doc, job.TemplatePath, 1, "/MediaBox")
		templateRect = Rect{W: templateDims[0].Width, H: templateDims[0].Height}.FitInto(sheet)
	}

	for _, pageIndex := range working {
		doc.AddPage()

		sourceID := importer.ImportPage(doc, cleaned, pageIndex+1, "/MediaBox")
		placed := Rect{W: dims[pageIndex].Width, H: dims[pageIndex].Height}.FitInto(safe)
		importer.UseImportedTemplate(doc, sourceID, placed.X, placed.Y, placed.W, placed.H)

		// Template goes on top so its transparent regions reveal the drawing
		// underneath the frame.
		if templatePages > 0 {
			importer.UseImportedTemplate(doc, templateID, templateRect.X, templateRect.Y, templateRect.W, templateRect.H)
		}

		logger.Debugf("placed page %d of %s at %s", pageIndex+1, job.InputPath, placed)
	}

	if doc.Err() {
		return fmt.Errorf("composing %s: %v", job.InputPath, doc.Error())
	}

	if dir := filepath.Dir(job.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir %s: %w", dir, err)
		}
	}
	if err := doc.OutputFileAndClose(job.OutputPath); err != nil {
		return fmt.Errorf("writing %s: %w", job.OutputPath, err)
	}

	logger.Infof("saved %s (%d pages)", job.OutputPath, len(working))
	return nil
}

// importConfiguration returns the pdfcpu configuration used when rewriting
// source documents. Cross-reference and object streams are disabled because
// the page importer only understands classic xref tables.
func importConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.WriteXRefStream = false
	conf.WriteObjectStream = false
	return conf
}
