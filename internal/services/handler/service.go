package handler

import (
	"go.uber.org/zap"

	"sampledata/internal/domain"
)

// Service handles requests and error conditions.
type Service struct {
	log *zap.Logger
}

// New returns a handler that logs through log. A nil logger is replaced with
// a no-op logger.
func New(log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{log: log}
}

// HandleRequest acknowledges req. The response is always {status: ok,
// data: null}; the payload is never inspected.
func (s *Service) HandleRequest(req domain.Request) domain.Response {
	s.log.Debug("handling request", zap.String("id", req.ID))
	return domain.Response{Status: domain.StatusOK}
}

// HandleError wraps the error text in a failure response.
func (s *Service) HandleError(err error) domain.Response {
	s.log.Debug("handling error", zap.Error(err))
	return domain.Response{Status: domain.StatusError, Message: err.Error()}
}

// Compile-time assertion that Service implements domain.HandlerService.
var _ domain.HandlerService = (*Service)(nil)
