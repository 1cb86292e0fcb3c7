package errors

import "net/http"

var ErrTitleTooLong = &Exception{
	Message:    "title must be at most 200 characters",
	StatusCode: http.StatusBadRequest,
}
