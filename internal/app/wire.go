package app

import (
	"go.uber.org/zap"

	handlersvc "sampledata/internal/services/handler"
	metricssvc "sampledata/internal/services/metrics"
	processorsvc "sampledata/internal/services/processor"
)

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*App, error) {
	procCfg, err := LoadProcessorConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	// Ensure a logger is available for the handler service
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return New(
		processorsvc.New(procCfg),
		handlersvc.New(log),
		metricssvc.New(),
	), nil
}
