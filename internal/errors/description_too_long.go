package errors

import "net/http"

var ErrDescriptionTooLong = &Exception{
	Message:    "description must be at most 1000 characters",
	StatusCode: http.StatusBadRequest,
}
