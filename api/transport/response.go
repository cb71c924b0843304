package transport

// Response status discriminator. Every payload the API emits carries
// exactly one of these in the envelope's status field.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the wire shape of every quest API response. Data holds the
// resource payload on success, Error the human-readable message on
// failure, and Meta rides alongside either (pagination, aggregation,
// suggestion lists on not-found, validation details on bad input).
type Envelope struct {
	Status string      `json:"status"`
	Code   string      `json:"code,omitempty"`
	Data   interface{} `json:"data,omitempty"`
	Error  interface{} `json:"error,omitempty"`
	Meta   interface{} `json:"meta,omitempty"`
}

// NewSuccess wraps data and optional meta in a success envelope.
func NewSuccess(data interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: StatusSuccess,
		Data:   data,
		Meta:   meta,
	}
}

// NewError wraps a machine-readable code, an error payload and optional
// meta in an error envelope.
func NewError(code string, err interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: StatusError,
		Code:   code,
		Error:  err,
		Meta:   meta,
	}
}
