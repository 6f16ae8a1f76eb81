package domain

// Response status values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Request is a request handed to the handler service. Payload is opaque;
// the handler never inspects it.
type Request struct {
	ID      string `json:"id"`
	Payload any    `json:"payload,omitempty"`
}

// Response is the handler's reply.
type Response struct {
	Status  string `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// Metrics summarises a slice of numeric values.
type Metrics struct {
	Count int     `json:"count"`
	Sum   float64 `json:"sum"`
	Avg   float64 `json:"avg"`
}
