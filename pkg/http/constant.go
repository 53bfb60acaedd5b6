package http

import "time"

const (
	DefaultTimeout   = 10 * time.Second
	DefaultRetries   = 2
	DefaultRetryWait = 500 * time.Millisecond
	// DefaultUserAgent is sent when ClientConfig.UserAgent is empty. vPIC asks
	// automated callers to identify themselves.
	DefaultUserAgent = "dealer-report-srv/1.0"
)

// DefaultConfig returns default ClientConfig.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
		UserAgent: DefaultUserAgent,
	}
}
