// Package titleblock generates starter title-block template PDFs. A template
// is a single sheet-sized page with a framed border and a header band; the
// drawing window is left unpainted so composed content shows through when the
// template is overlaid.
package titleblock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/flanksource/commons/logger"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/sheetpress/sheetpress/compose"
)

// frame metrics in millimetres on an A3 landscape page
const (
	pageMargin   = 5
	labelHeight  = 5
	fieldHeight  = 9
	windowHeight = 255
)

// Generate writes a default title-block template to outputPath, rendering
// the metadata fields into the header band. Directories are created as
// needed.
func Generate(outputPath string, meta compose.Metadata) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A3).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(pageMargin).
		WithRightMargin(pageMargin).
		WithTopMargin(pageMargin).
		WithBottomMargin(pageMargin).
		Build()

	m := maroto.New(cfg)

	framed := &props.Cell{BorderType: border.Full}

	m.AddRows(
		row.New(labelHeight).Add(
			labelCol(3, "PROJECT"),
			labelCol(3, "CLIENT"),
			labelCol(3, "DATE"),
			labelCol(3, "DRAWN BY"),
		),
		row.New(fieldHeight).Add(
			fieldCol(3, meta.Project),
			fieldCol(3, meta.Client),
			fieldCol(3, meta.Date),
			fieldCol(3, meta.DrawnBy),
		),
		// Drawing window: bordered, otherwise unpainted so the underlying
		// drawing shows through after compositing.
		row.New(windowHeight).Add(col.New(12).WithStyle(framed)),
	)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating title-block template: %w", err)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir %s: %w", dir, err)
		}
	}
	if err := doc.Save(outputPath); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	logger.Infof("wrote title-block template to %s", outputPath)
	return nil
}

func labelCol(size int, label string) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Size:  6,
		Style: fontstyle.Bold,
		Align: align.Left,
		Top:   1,
		Left:  1,
	})).WithStyle(&props.Cell{BorderType: border.Full})
}

func fieldCol(size int, value string) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size:  10,
		Align: align.Left,
		Top:   2,
		Left:  1,
	})).WithStyle(&props.Cell{BorderType: border.Full})
}
