package ports

import (
	"context"
	"time"

	"github.com/ticklist/todo-api/internal/core/domain"
)

// TodoUpdate carries the mutable fields of a todo. Nil means "leave
// untouched"; the repository only writes the fields that are set.
type TodoUpdate struct {
	Text      *string
	Completed *bool
	UpdatedAt time.Time
}

// TodoRepository defines persistence operations for todos.
type TodoRepository interface {
	Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	// FindByID retrieves a todo regardless of owner. Ownership is the
	// service layer's concern so that not-found and not-owned stay
	// distinguishable.
	FindByID(ctx context.Context, id string) (*domain.Todo, error)
	// ListByOwner returns the owner's todos ordered by creation time
	// descending. An empty slice is a valid result.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Todo, error)
	Update(ctx context.Context, id string, update TodoUpdate) (*domain.Todo, error)
	Delete(ctx context.Context, id string) error
}
