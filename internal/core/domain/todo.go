package domain

import (
	"errors"
	"time"
)

var ErrTodoNotFound = errors.New("todo not found")
var ErrForbidden = errors.New("access forbidden")
var ErrEmptyText = errors.New("text is required")
var ErrNoUpdateFields = errors.New("at least one of text or completed must be provided")

// Todo is a single task item. OwnerID is fixed at creation; only the owner
// may read, mutate, or delete the item.
type Todo struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
