package server

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ChicagoSwoles/PDF-Intelligence/charts"
)

// Config holds the service configuration.
type Config struct {
	Addr           string      `yaml:"addr"`
	UploadDir      string      `yaml:"upload_dir"`
	MaxUploadBytes int64       `yaml:"max_upload_bytes"`
	OCREnabled     bool        `yaml:"ocr_enabled"`
	OCRLanguage    string      `yaml:"ocr_language"`
	Charts         ChartConfig `yaml:"charts"`
}

// ChartConfig exposes the chart heuristic thresholds for tuning without a
// rebuild. Zero values fall back to the stock thresholds.
type ChartConfig struct {
	MaxPalette   int     `yaml:"max_palette"`
	EdgeRatioMin float64 `yaml:"edge_ratio_min"`
	EdgeRatioMax float64 `yaml:"edge_ratio_max"`
	BarRatio     float64 `yaml:"bar_ratio"`
	LineRatio    float64 `yaml:"line_ratio"`
}

func (c *Config) defaults() {
	if c.Addr == "" {
		c.Addr = ":5000"
	}
	if c.UploadDir == "" {
		c.UploadDir = "./uploads"
	}
	if c.MaxUploadBytes <= 0 {
		c.MaxUploadBytes = 100 * 1024 * 1024
	}
	if c.OCRLanguage == "" {
		c.OCRLanguage = "eng"
	}
}

// Classifier converts the configured thresholds into a classifier,
// defaulting any unset value.
func (c ChartConfig) Classifier() charts.Classifier {
	cl := charts.Default()
	if c.MaxPalette > 0 {
		cl.MaxPalette = c.MaxPalette
	}
	if c.EdgeRatioMin > 0 {
		cl.EdgeRatioMin = c.EdgeRatioMin
	}
	if c.EdgeRatioMax > 0 {
		cl.EdgeRatioMax = c.EdgeRatioMax
	}
	if c.BarRatio > 0 {
		cl.BarRatio = c.BarRatio
	}
	if c.LineRatio > 0 {
		cl.LineRatio = c.LineRatio
	}
	return cl
}

// LoadConfigFile reads a YAML config file and applies defaults.
func LoadConfigFile(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.defaults()
	return cfg, nil
}
