package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/matgraph/internal/sampler"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	MaterialsPath string // hcl files with materials and bxdf manifests
	ModulesPath   string // optional extra directory of bxdf manifests

	// Material restricts the run to one material. Empty means all.
	Material string
	Mode     string
	// Samples is the grid resolution per axis. Zero only validates.
	Samples     int
	WorkerCount int

	LogFormat    string
	LogLevel     string
	OTLPEndpoint string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.MaterialsPath == "" {
		return nil, errors.New("MaterialsPath is a required configuration field and cannot be empty")
	}
	if _, err := sampler.ParseMode(cfg.Mode); err != nil {
		return nil, err
	}
	if cfg.Samples < 0 {
		return nil, fmt.Errorf("samples must not be negative, got %d", cfg.Samples)
	}
	if cfg.WorkerCount < 0 {
		return nil, fmt.Errorf("workers must not be negative, got %d", cfg.WorkerCount)
	}

	return &cfg, nil
}

// paths returns every location the loader should read.
func (c *Config) paths() []string {
	paths := []string{c.MaterialsPath}
	if c.ModulesPath != "" {
		paths = append(paths, c.ModulesPath)
	}
	return paths
}
