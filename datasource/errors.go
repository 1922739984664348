package datasource

import "fmt"

// APIError represents a non-2xx response from the weather provider. The
// well-known codes carry fixed messages so the UI can show them verbatim.
type APIError struct {
	StatusCode int
}

func (e *APIError) Error() string {
	switch e.StatusCode {
	case 401:
		return "Invalid API key"
	case 404:
		return "City not found"
	case 429:
		return "API rate limit exceeded"
	default:
		return fmt.Sprintf("Error: %d", e.StatusCode)
	}
}

// NetworkError wraps a transport-level failure during a provider call.
type NetworkError struct {
	Operation string
	Err       error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Operation, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// EmptyPayloadError marks a 2xx response whose body carried no usable data.
type EmptyPayloadError struct {
	What string // "weather" or "forecast"
}

func (e *EmptyPayloadError) Error() string {
	return "No " + e.What + " data found"
}

// ValidationError rejects bad caller input before any request is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
