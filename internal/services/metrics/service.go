package metrics

import "sampledata/internal/domain"

// Service computes summary metrics over numeric values.
type Service struct{}

// New returns a metrics service.
func New() *Service { return &Service{} }

// Calculate returns the count, sum and mean of values. An empty slice yields
// all zeroes rather than dividing by zero.
func (s *Service) Calculate(values []float64) domain.Metrics {
	m := domain.Metrics{Count: len(values)}
	if len(values) == 0 {
		return m
	}
	for _, v := range values {
		m.Sum += v
	}
	m.Avg = m.Sum / float64(len(values))
	return m
}

// Compile-time assertion that Service implements domain.MetricsService.
var _ domain.MetricsService = (*Service)(nil)
