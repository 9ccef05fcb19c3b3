package response

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Envelope wraps every JSON body the API returns.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func Success(data any) Envelope {
	return Envelope{Status: StatusSuccess, Data: data}
}

// Fail reports a client error.
func Fail(message string) Envelope {
	return Envelope{Status: StatusFail, Message: message}
}

// Error reports a server failure.
func Error(message string) Envelope {
	return Envelope{Status: StatusError, Message: message}
}
