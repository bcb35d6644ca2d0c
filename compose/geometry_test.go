package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGeometrySafeZone(t *testing.T) {
	g := DefaultGeometry()
	require.NoError(t, g.Validate())

	safe := g.SafeZone()
	assert.Greater(t, safe.X, 0.0)
	assert.Greater(t, safe.Y, 0.0)
	assert.Less(t, safe.X, safe.Right())
	assert.Less(t, safe.Y, safe.Bottom())
	assert.Less(t, safe.Right(), g.SheetWidth)
	assert.Less(t, safe.Bottom(), g.SheetHeight)

	assert.InDelta(t, 20*MMToPoints, safe.X, 0.001)
	assert.InDelta(t, 40*MMToPoints, safe.Y, 0.001)
	assert.InDelta(t, SheetWidthPts-20*MMToPoints, safe.Right(), 0.001)
	assert.InDelta(t, SheetHeightPts-30*MMToPoints, safe.Bottom(), 0.001)
}

func TestGeometryValidate(t *testing.T) {
	g := DefaultGeometry()
	g.MarginLeftMM = 300
	g.MarginRightMM = 300
	assert.Error(t, g.Validate())

	g = DefaultGeometry()
	g.SheetHeight = 0
	assert.Error(t, g.Validate())
}

func TestFitIntoWideSource(t *testing.T) {
	target := Rect{X: 10, Y: 20, W: 100, H: 100}
	placed := Rect{W: 200, H: 100}.FitInto(target)

	// Wider than the target aspect ratio: width pinned, height reduced.
	assert.InDelta(t, target.W, placed.W, 0.001)
	assert.Less(t, placed.H, target.H)
	assert.InDelta(t, 50.0, placed.H, 0.001)

	// Centred vertically.
	assert.InDelta(t, target.X, placed.X, 0.001)
	assert.InDelta(t, target.Y+25, placed.Y, 0.001)
}

func TestFitIntoTallSource(t *testing.T) {
	target := Rect{X: 0, Y: 0, W: 100, H: 100}
	placed := Rect{W: 50, H: 200}.FitInto(target)

	assert.InDelta(t, target.H, placed.H, 0.001)
	assert.Less(t, placed.W, target.W)
	assert.InDelta(t, 25.0, placed.W, 0.001)
	assert.InDelta(t, 37.5, placed.X, 0.001)
	assert.InDelta(t, 0.0, placed.Y, 0.001)
}

func TestFitIntoSameAspect(t *testing.T) {
	target := Rect{X: 5, Y: 5, W: 80, H: 40}
	placed := Rect{W: 160, H: 80}.FitInto(target)
	assert.InDelta(t, target.X, placed.X, 0.001)
	assert.InDelta(t, target.Y, placed.Y, 0.001)
	assert.InDelta(t, target.W, placed.W, 0.001)
	assert.InDelta(t, target.H, placed.H, 0.001)
}

func TestFitIntoDegenerateSource(t *testing.T) {
	target := Rect{X: 10, Y: 10, W: 100, H: 100}
	placed := Rect{}.FitInto(target)
	assert.Equal(t, Rect{X: 10, Y: 10}, placed)
}

func TestFitIntoStaysInsideSafeZone(t *testing.T) {
	safe := DefaultGeometry().SafeZone()
	for _, src := range []Rect{
		{W: 595, H: 842},  // A4 portrait
		{W: 842, H: 595},  // A4 landscape
		{W: 2000, H: 50},  // extreme panorama
		{W: 10, H: 3000},  // extreme column
	} {
		placed := src.FitInto(safe)
		assert.GreaterOrEqual(t, placed.X, safe.X-0.001)
		assert.GreaterOrEqual(t, placed.Y, safe.Y-0.001)
		assert.LessOrEqual(t, placed.Right(), safe.Right()+0.001)
		assert.LessOrEqual(t, placed.Bottom(), safe.Bottom()+0.001)
	}
}
