package processor

import (
	"strings"

	"sampledata/internal/domain"
)

// Service transforms and validates sample records.
//
// The config mapping is stored as-is and never consulted by the placeholder
// behaviours. Records live in memory only.
type Service struct {
	config map[string]any
	data   []string
}

// New returns a processor with the given config mapping. A nil config is
// replaced with an empty map.
func New(config map[string]any) *Service {
	if config == nil {
		config = map[string]any{}
	}
	return &Service{config: config}
}

// LoadData resets the internal record storage and reports how many records
// are held. The placeholder loader never reads filename, so the count is
// always zero.
func (s *Service) LoadData(filename string) int {
	s.data = nil
	return len(s.data)
}

// Process drops empty items and returns the rest trimmed and lowercased.
//
// Filtering happens before trimming: an item of only whitespace survives the
// filter and comes out as an empty string.
func (s *Service) Process(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item == "" {
			continue
		}
		out = append(out, strings.ToLower(strings.TrimSpace(item)))
	}
	return out
}

// Validate reports whether data is a string-keyed mapping and schema is
// non-empty.
func (s *Service) Validate(data any, schema map[string]any) bool {
	_, ok := data.(map[string]any)
	return ok && len(schema) > 0
}

// Compile-time assertion that Service implements domain.ProcessorService.
var _ domain.ProcessorService = (*Service)(nil)
