package ports

import (
	"context"

	"github.com/ticklist/todo-api/internal/core/domain"
)

// UpdateTodoInput carries the optional fields of an update. Nil pointers
// mean the field was not supplied; at least one must be set.
type UpdateTodoInput struct {
	Text      *string
	Completed *bool
}

// TodoService defines the owner-scoped use-case operations for todos.
// Every call requires the resolved identity of the caller.
type TodoService interface {
	List(ctx context.Context, userID string) ([]*domain.Todo, error)
	Create(ctx context.Context, userID, text string) (*domain.Todo, error)
	Update(ctx context.Context, userID, todoID string, input UpdateTodoInput) (*domain.Todo, error)
	Delete(ctx context.Context, userID, todoID string) error
}
