package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "todo-service.com/todo-service/internal/data_models"
	errs "todo-service.com/todo-service/internal/errors"
	"todo-service.com/todo-service/internal/http/validators"
	"todo-service.com/todo-service/internal/services"
)

type Handler struct {
	todoService *services.TodoService
}

func NewHandler(todoService *services.TodoService) *Handler {
	return &Handler{
		todoService: todoService,
	}
}

func (h *Handler) ListTodos(c echo.Context) error {
	todos, err := h.todoService.ListTodos(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, todos)
}

func (h *Handler) GetTodo(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return httpError(errs.ErrTodoNotFound)
	}

	todo, err := h.todoService.GetTodo(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, todo)
}

func (h *Handler) CreateTodo(c echo.Context) error {
	var req dto.TodoRequestData
	if err := c.Bind(&req); err != nil {
		return httpError(errs.ErrInvalidJSON)
	}
	if err := validators.ValidateTodoRequest(&req); err != nil {
		return httpError(err)
	}

	ctx := c.Request().Context()

	todo, err := h.todoService.CreateTodo(ctx, req.Title, req.Description, req.IsCompleted)
	if err != nil {
		return httpError(err)
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/todos/%d", todo.ID))
	return c.JSON(http.StatusCreated, todo)
}

func (h *Handler) UpdateTodo(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return httpError(errs.ErrTodoNotFound)
	}

	var req dto.TodoRequestData
	if err := c.Bind(&req); err != nil {
		return httpError(errs.ErrInvalidJSON)
	}
	if err := validators.ValidateTodoRequest(&req); err != nil {
		return httpError(err)
	}

	todo, err := h.todoService.UpdateTodo(c.Request().Context(), id, req.Title, req.Description, req.IsCompleted)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, todo)
}

func (h *Handler) DeleteTodo(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return httpError(errs.ErrTodoNotFound)
	}

	if err := h.todoService.DeleteTodo(c.Request().Context(), id); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// httpError maps service errors to HTTP responses. Persistence
// faults surface as a generic 500 rather than leaking driver detail.
func httpError(err error) error {
	code := errs.StatusCode(err)
	if code == http.StatusInternalServerError {
		return echo.NewHTTPError(code, "internal server error")
	}
	return echo.NewHTTPError(code, err.Error())
}

// parseID treats non-numeric and non-positive ids the same way: they
// can never match a stored row, so the caller reports not found.
func parseID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}
