package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "todo-service.com/todo-service/internal/models"
	repository "todo-service.com/todo-service/internal/repositories"
	"todo-service.com/todo-service/internal/services"
)

type todoResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	IsCompleted bool    `json:"isCompleted"`
	CreatedAt   string  `json:"createdAt"`
	CompletedAt *string `json:"completedAt"`
}

func setupServer(t *testing.T) *echo.Echo {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.TodoItem{}))

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	e := echo.New()
	handler := NewHandler(services.NewTodoService(repository.NewTodoRepository(db)))
	Register(e, handler)
	return e
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestTodoLifecycle(t *testing.T) {
	e := setupServer(t)

	// create
	rec := doRequest(e, http.MethodPost, "/todos", `{"title":"Buy milk"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created todoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, "Buy milk", created.Title)
	assert.False(t, created.IsCompleted)
	assert.Nil(t, created.CompletedAt)
	assert.Equal(t, fmt.Sprintf("/todos/%d", created.ID), rec.Header().Get(echo.HeaderLocation))

	// complete it
	rec = doRequest(e, http.MethodPut, fmt.Sprintf("/todos/%d", created.ID),
		`{"title":"Buy milk","isCompleted":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated todoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.True(t, updated.IsCompleted)
	require.NotNil(t, updated.CompletedAt)

	// delete, then the id is gone
	rec = doRequest(e, http.MethodDelete, fmt.Sprintf("/todos/%d", created.ID), "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = doRequest(e, http.MethodGet, fmt.Sprintf("/todos/%d", created.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(e, http.MethodDelete, fmt.Sprintf("/todos/%d", created.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateTodo_TitleValidation(t *testing.T) {
	e := setupServer(t)

	for name, body := range map[string]string{
		"empty":      `{"title":""}`,
		"whitespace": `{"title":"   "}`,
		"missing":    `{"description":"no title"}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := doRequest(e, http.MethodPost, "/todos", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	// nothing reached persistence
	rec := doRequest(e, http.MethodGet, "/todos", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCreateTodo_InvalidJSON(t *testing.T) {
	e := setupServer(t)

	rec := doRequest(e, http.MethodPost, "/todos", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateTodo_OversizedTitle(t *testing.T) {
	e := setupServer(t)

	body := fmt.Sprintf(`{"title":%q}`, strings.Repeat("a", services.MaxTitleLength+1))
	rec := doRequest(e, http.MethodPost, "/todos", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListTodos_EmptyReturnsArray(t *testing.T) {
	e := setupServer(t)

	rec := doRequest(e, http.MethodGet, "/todos", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListTodos_ReturnsCreatedItems(t *testing.T) {
	e := setupServer(t)

	for _, title := range []string{"A", "B", "C"} {
		rec := doRequest(e, http.MethodPost, "/todos", fmt.Sprintf(`{"title":%q}`, title))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doRequest(e, http.MethodGet, "/todos", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var todos []todoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todos))
	assert.Len(t, todos, 3)
}

func TestGetTodo_NotFoundVariants(t *testing.T) {
	e := setupServer(t)

	for _, path := range []string{"/todos/0", "/todos/-1", "/todos/999", "/todos/abc"} {
		rec := doRequest(e, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, "path %s", path)
	}
}

func TestUpdateTodo_Failures(t *testing.T) {
	e := setupServer(t)

	// unknown id with a valid payload
	rec := doRequest(e, http.MethodPut, "/todos/999", `{"title":"Buy milk"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// whitespace title on an existing row
	rec = doRequest(e, http.MethodPost, "/todos", `{"title":"Buy milk"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(e, http.MethodPut, "/todos/1", `{"title":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// the row is untouched by the rejected update
	rec = doRequest(e, http.MethodGet, "/todos/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var todo todoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todo))
	assert.Equal(t, "Buy milk", todo.Title)
}

func TestUpdateTodo_ReopeningClearsCompletedAt(t *testing.T) {
	e := setupServer(t)

	rec := doRequest(e, http.MethodPost, "/todos", `{"title":"Buy milk"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(e, http.MethodPut, "/todos/1", `{"title":"Buy milk","isCompleted":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodPut, "/todos/1", `{"title":"Buy milk","isCompleted":false}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var todo todoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todo))
	assert.False(t, todo.IsCompleted)
	assert.Nil(t, todo.CompletedAt)
}
