package app

import "sampledata/internal/domain"

type App struct {
	Processor domain.ProcessorService
	Handler   domain.HandlerService
	Metrics   domain.MetricsService
}

func New(proc domain.ProcessorService, hdl domain.HandlerService, met domain.MetricsService) *App {
	return &App{
		Processor: proc,
		Handler:   hdl,
		Metrics:   met,
	}
}
