package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ticklist/todo-api/internal/api/metrics"
	"github.com/ticklist/todo-api/internal/core/domain"
	"github.com/ticklist/todo-api/internal/core/ports"
)

// TodoHandler handles the protected todo routes. The caller identity comes
// from the Auth middleware; every operation is scoped to it.
type TodoHandler struct {
	service ports.TodoService
}

func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// List returns the caller's todos, most recent first.
//
// @Summary      List todos
// @Tags         todos
// @Produce      json
// @Security     TokenAuth
// @Success      200  {array}   domain.Todo
// @Failure      401  {object}  errorResponse
// @Router       /api/todos [get]
func (h *TodoHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	todos, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if todos == nil {
		todos = []*domain.Todo{}
	}

	return c.JSON(http.StatusOK, todos)
}

// Create adds a new todo owned by the caller.
//
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      createTodoRequest  true  "Todo text"
// @Success      200   {object}  domain.Todo
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/todos [post]
func (h *TodoHandler) Create(c echo.Context) error {
	var req createTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	todo, err := h.service.Create(c.Request().Context(), userID, req.Text)
	if err != nil {
		return err
	}

	metrics.TodosCreatedTotal.Inc()
	return c.JSON(http.StatusOK, todo)
}

// Update mutates the text and/or completed flag of the caller's todo.
//
// @Summary      Update a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      string             true  "Todo id"
// @Param        body  body      updateTodoRequest  true  "Fields to update"
// @Success      200   {object}  domain.Todo
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/todos/{id} [put]
func (h *TodoHandler) Update(c echo.Context) error {
	var req updateTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	todo, err := h.service.Update(c.Request().Context(), userID, c.Param("id"), ports.UpdateTodoInput{
		Text:      req.Text,
		Completed: req.Completed,
	})
	if err != nil {
		return err
	}

	if req.Completed != nil && *req.Completed {
		metrics.TodosCompletedTotal.Inc()
	}
	return c.JSON(http.StatusOK, todo)
}

// Delete permanently removes the caller's todo.
//
// @Summary      Delete a todo
// @Tags         todos
// @Produce      json
// @Security     TokenAuth
// @Param        id  path  string  true  "Todo id"
// @Success      200  {object}  deleteTodoResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/todos/{id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	metrics.TodosDeletedTotal.Inc()
	return c.JSON(http.StatusOK, deleteTodoResponse{Msg: "todo removed"})
}
