package mailmodo

import (
	"errors"
	"fmt"
)

// ErrUnexpected marks failures that happened outside the HTTP exchange
// itself, like a request that could not be encoded or a response that was
// not valid JSON.
var ErrUnexpected = errors.New("unexpected error talking to the Mailmodo API")

// APIError is a non-2xx response from the Mailmodo API.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("mailmodo: http %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("mailmodo: http %d", e.StatusCode)
}

// transportFailed reports whether err came from the HTTP exchange (a
// network failure or a non-2xx status) rather than from local processing.
// Capabilities that degrade to fallback values swallow transport failures
// and surface everything else.
func transportFailed(err error) bool {
	if err == nil || errors.Is(err, ErrUnexpected) {
		return false
	}
	return true
}

// remoteMessage extracts the remote error message from err, or returns
// fallback when there is none.
func remoteMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// isStatus reports whether err is an *APIError with the given status code.
func isStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}
