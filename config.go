// Package sheetpress batch-transforms customer engineering drawings into
// standardized sheet layouts: each drawing page is scaled into the safe zone
// of a fixed-size sheet and a title-block template is overlaid on top.
//
// The root package holds the on-disk configuration; the composition engine
// lives in the compose package and batch orchestration in the batch package.
package sheetpress

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sheetpress/sheetpress/compose"
)

// GeometryConfig is the user-facing sheet geometry. Zero values fall back to
// the built-in A3 landscape defaults so a config file only needs to mention
// the fields it overrides.
type GeometryConfig struct {
	SheetWidthPts  float64 `yaml:"sheet_width_pts"`
	SheetHeightPts float64 `yaml:"sheet_height_pts"`
	MarginTopMM    float64 `yaml:"margin_top_mm"`
	MarginBottomMM float64 `yaml:"margin_bottom_mm"`
	MarginLeftMM   float64 `yaml:"margin_left_mm"`
	MarginRightMM  float64 `yaml:"margin_right_mm"`
}

// Geometry resolves the config against the built-in defaults.
func (g GeometryConfig) Geometry() compose.Geometry {
	out := compose.DefaultGeometry()
	if g.SheetWidthPts > 0 {
		out.SheetWidth = g.SheetWidthPts
	}
	if g.SheetHeightPts > 0 {
		out.SheetHeight = g.SheetHeightPts
	}
	if g.MarginTopMM > 0 {
		out.MarginTopMM = g.MarginTopMM
	}
	if g.MarginBottomMM > 0 {
		out.MarginBottomMM = g.MarginBottomMM
	}
	if g.MarginLeftMM > 0 {
		out.MarginLeftMM = g.MarginLeftMM
	}
	if g.MarginRightMM > 0 {
		out.MarginRightMM = g.MarginRightMM
	}
	return out
}

// Config is the on-disk configuration file.
type Config struct {
	OutputDir string           `yaml:"output_dir"`
	Template  string           `yaml:"template"`
	Geometry  GeometryConfig   `yaml:"geometry"`
	Metadata  compose.Metadata `yaml:"metadata"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		OutputDir: "processed",
	}
}

// LoadConfig reads the configuration at path. A missing file is not an
// error; defaults are returned so first runs work without any setup.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating directories as needed.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config dir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
