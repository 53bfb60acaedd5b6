package errors

// HTTPError is an error carrying the HTTP status that should be returned to the client.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// WithMessage returns a copy of e carrying msg, keeping the status code.
func (e *HTTPError) WithMessage(msg string) *HTTPError {
	return &HTTPError{Code: e.Code, Message: msg}
}
