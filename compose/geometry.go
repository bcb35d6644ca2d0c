package compose

import (
	"fmt"
	"math"
)

// MMToPoints converts millimetres to PDF points (1 pt = 1/72 inch).
const MMToPoints = 2.834645

// A3 landscape sheet dimensions in points (420mm x 297mm).
const (
	SheetWidthPts  = 1191
	SheetHeightPts = 842
)

// Rect is an axis-aligned rectangle in point coordinates. The origin is the
// top-left corner of the page, matching the coordinate system of the output
// document writer.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%.1f, %.1f, %.1f, %.1f)", r.X, r.Y, r.Right(), r.Bottom())
}

// FitInto scales r to the largest size that fits entirely inside target while
// preserving aspect ratio, and centres the result ("contain" fit). At least
// one dimension of the returned rect equals the corresponding target
// dimension. All placement math stays in float64; no rounding is applied.
func (r Rect) FitInto(target Rect) Rect {
	if r.W <= 0 || r.H <= 0 {
		return Rect{X: target.X, Y: target.Y}
	}
	scale := math.Min(target.W/r.W, target.H/r.H)
	w := r.W * scale
	h := r.H * scale
	return Rect{
		X: target.X + (target.W-w)/2,
		Y: target.Y + (target.H-h)/2,
		W: w,
		H: h,
	}
}

// Geometry describes the output sheet and the margins reserved around the
// drawing area. The sheet is expressed in points, the margins in physical
// millimetres. Construct one with DefaultGeometry and override fields as
// needed; a Geometry never changes once a Compositor is built from it.
type Geometry struct {
	SheetWidth  float64 // points
	SheetHeight float64 // points

	MarginTopMM    float64
	MarginBottomMM float64
	MarginLeftMM   float64
	MarginRightMM  float64
}

// DefaultGeometry returns the standard A3 landscape sheet with the margins
// reserved for the title-block frame: 40mm top, 30mm bottom, 20mm left and
// right.
func DefaultGeometry() Geometry {
	return Geometry{
		SheetWidth:     SheetWidthPts,
		SheetHeight:    SheetHeightPts,
		MarginTopMM:    40,
		MarginBottomMM: 30,
		MarginLeftMM:   20,
		MarginRightMM:  20,
	}
}

// Sheet returns the full output page rectangle.
func (g Geometry) Sheet() Rect {
	return Rect{W: g.SheetWidth, H: g.SheetHeight}
}

// SafeZone returns the rectangle drawings are scaled into: the sheet minus
// the four margins.
func (g Geometry) SafeZone() Rect {
	left := g.MarginLeftMM * MMToPoints
	top := g.MarginTopMM * MMToPoints
	return Rect{
		X: left,
		Y: top,
		W: g.SheetWidth - left - g.MarginRightMM*MMToPoints,
		H: g.SheetHeight - top - g.MarginBottomMM*MMToPoints,
	}
}

// Validate checks that the margins leave a usable drawing area.
func (g Geometry) Validate() error {
	if g.SheetWidth <= 0 || g.SheetHeight <= 0 {
		return fmt.Errorf("invalid sheet size %.1f x %.1f", g.SheetWidth, g.SheetHeight)
	}
	safe := g.SafeZone()
	if safe.W <= 0 || safe.H <= 0 {
		return fmt.Errorf("margins leave no drawing area on a %.1f x %.1f sheet", g.SheetWidth, g.SheetHeight)
	}
	return nil
}
