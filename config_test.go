package sheetpress

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetpress/sheetpress/compose"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, compose.DefaultGeometry(), cfg.Geometry.Geometry())
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
output_dir: /tmp/sheets
template: templates/a3.pdf
geometry:
  margin_top_mm: 50
metadata:
  project: Warehouse Extension
  drawn_by: AB
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/sheets", cfg.OutputDir)
	assert.Equal(t, "templates/a3.pdf", cfg.Template)
	assert.Equal(t, "Warehouse Extension", cfg.Metadata.Project)
	assert.Equal(t, "AB", cfg.Metadata.DrawnBy)

	g := cfg.Geometry.Geometry()
	assert.Equal(t, 50.0, g.MarginTopMM)
	// Unset fields keep the defaults.
	assert.Equal(t, 30.0, g.MarginBottomMM)
	assert.Equal(t, float64(compose.SheetWidthPts), g.SheetWidth)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: [nope"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestConfigSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.OutputDir = "out"
	cfg.Metadata.Client = "ACME"
	cfg.Geometry.MarginLeftMM = 25

	require.NoError(t, cfg.Save(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
