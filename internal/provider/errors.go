package provider

import (
	"errors"
	"fmt"
	"net/http"
)

// Provider errors.
var (
	ErrMalformedPayload = errors.New("malformed provider payload")
	ErrEmptyForecast    = errors.New("provider returned no forecast entries")
)

// Error is a failure reported by the provider itself through a non-success status.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// IsProviderError reports whether err carries a provider-reported failure.
func IsProviderError(err error) (*Error, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// errorPayload is the OpenWeatherMap error body. cod is a number or a string
// depending on the endpoint.
type errorPayload struct {
	Cod     interface{} `json:"cod"`
	Message string      `json:"message"`
}

func (p errorPayload) toError(status int) *Error {
	msg := p.Message
	if msg == "" {
		msg = http.StatusText(status)
	}
	if msg == "" {
		msg = fmt.Sprintf("provider returned status %d", status)
	}

	return &Error{StatusCode: status, Message: msg}
}
