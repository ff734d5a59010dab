package response

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Envelope is the body of every response.
type Envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func Success(data any) Envelope {
	return Envelope{Status: StatusSuccess, Data: data}
}

// Fail is a client error
func Fail(message string) Envelope {
	return Envelope{Status: StatusFail, Message: message}
}

// Error is a server error; message must not leak internals.
func Error(message string) Envelope {
	return Envelope{Status: StatusError, Message: message}
}
