package backend

import (
	"errors"
	"fmt"
)

// APIError is the single failure kind for backend calls. Status is 0 when the
// request never produced an HTTP response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

type errorBody struct {
	Error string `json:"error"`
}

func newStatusError(status int, message string) *APIError {
	if message == "" {
		message = fmt.Sprintf("HTTP %d", status)
	}
	return &APIError{Status: status, Message: message}
}

func newTransportError(err error) *APIError {
	return &APIError{Status: 0, Message: err.Error()}
}

// AsAPIError returns the APIError in err's chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
