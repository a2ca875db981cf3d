package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/stepliteral/internal/render"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	StepPath string // .hcl file or directory
	StepName string // render only this rule when set
	Target   string
	Prefix   string

	LogFormat   string
	LogLevel    string
	WorkerCount int
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.StepPath == "" {
		return nil, errors.New("StepPath is a required configuration field and cannot be empty")
	}
	if _, err := render.ParseTarget(cfg.Target); err != nil {
		return nil, err
	}
	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("WorkerCount must be at least 1, got %d", cfg.WorkerCount)
	}
	return &cfg, nil
}
