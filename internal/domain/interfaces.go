package domain

// ProcessorService loads, transforms and validates sample records.
type ProcessorService interface {
	LoadData(filename string) int
	Process(items []string) []string
	Validate(data any, schema map[string]any) bool
}

// HandlerService answers requests and wraps errors into responses.
type HandlerService interface {
	HandleRequest(req Request) Response
	HandleError(err error) Response
}

// MetricsService computes summary metrics over numeric values.
type MetricsService interface {
	Calculate(values []float64) Metrics
}
