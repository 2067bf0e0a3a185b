package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/osuushi/delaunay"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultScale = 50
	// Decimal digits in WKT output
	defaultPrecision = 9
)

// Settings that can come from a YAML file. Flags override them.
type config struct {
	Workers      int     `yaml:"workers"`
	MaxDoublings int     `yaml:"max_doublings"`
	Scale        float64 `yaml:"scale"`
	Precision    int     `yaml:"precision"`
}

func defaultConfig() config {
	return config{
		Scale:     defaultScale,
		Precision: defaultPrecision,
	}
}

// Load a config file on top of the defaults. An empty path just gives the
// defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	if cfg.Scale <= 0 {
		return cfg, errors.Errorf("scale must be positive, got %v", cfg.Scale)
	}
	if cfg.Precision < 0 {
		return cfg, errors.Errorf("precision must not be negative, got %d", cfg.Precision)
	}
	return cfg, nil
}

func (c config) options(logger *log.Logger) delaunay.Options {
	return delaunay.Options{
		Logger:       logger,
		Workers:      c.Workers,
		MaxDoublings: c.MaxDoublings,
	}
}
