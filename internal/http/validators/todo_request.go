package validators

import (
	"strings"

	dto "todo-service.com/todo-service/internal/data_models"
	errs "todo-service.com/todo-service/internal/errors"
)

// ValidateTodoRequest rejects a missing or whitespace-only title
// before the service is invoked. Applies to create and update alike;
// no other field is checked at this boundary.
func ValidateTodoRequest(r *dto.TodoRequestData) error {
	if strings.TrimSpace(r.Title) == "" {
		return errs.ErrTitleRequired
	}
	return nil
}
