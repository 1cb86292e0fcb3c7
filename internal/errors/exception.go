package errors

import (
	"errors"
	"net/http"
)

// Exception is an error that knows which HTTP status it maps to.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// StatusCode resolves err to an HTTP status, falling back to 500 for
// anything that is not an Exception (persistence faults and the like).
func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
