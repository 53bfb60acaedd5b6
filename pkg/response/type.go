package response

// Resp is the JSON envelope every endpoint answers with.
type Resp struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Errors  any    `json:"errors,omitempty"`
	Meta    any    `json:"meta,omitempty"`
}

const (
	msgUnauthorized = "Unauthorized"
	msgInternal     = "Something went wrong"
)
