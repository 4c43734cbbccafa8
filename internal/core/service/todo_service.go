package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ticklist/todo-api/internal/core/domain"
	"github.com/ticklist/todo-api/internal/core/ports"
)

// TodoService implements owner-scoped CRUD over todo items. Ownership is
// checked against the store before any mutation; a valid token naming the
// wrong owner yields ErrForbidden, a missing item ErrTodoNotFound.
type TodoService struct {
	repo   ports.TodoRepository
	logger zerolog.Logger
}

func NewTodoService(repo ports.TodoRepository, logger zerolog.Logger) *TodoService {
	return &TodoService{repo: repo, logger: logger}
}

// List returns the caller's todos, most recent first.
func (s *TodoService) List(ctx context.Context, userID string) ([]*domain.Todo, error) {
	return s.repo.ListByOwner(ctx, userID)
}

// Create stores a new todo owned by the caller. Any client-supplied owner is
// ignored: the owner is always the authenticated identity.
func (s *TodoService) Create(ctx context.Context, userID, text string) (*domain.Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyText
	}

	now := time.Now().UTC()
	todo := &domain.Todo{
		OwnerID:   userID,
		Text:      text,
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, todo)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to create todo")
		return nil, err
	}

	return created, nil
}

// Update mutates the caller's todo. At least one of text/completed must be
// supplied; unsupplied fields are left untouched. Concurrent updates to the
// same item are last-write-wins.
func (s *TodoService) Update(ctx context.Context, userID, todoID string, input ports.UpdateTodoInput) (*domain.Todo, error) {
	if input.Text == nil && input.Completed == nil {
		return nil, domain.ErrNoUpdateFields
	}
	if input.Text != nil {
		trimmed := strings.TrimSpace(*input.Text)
		if trimmed == "" {
			return nil, domain.ErrEmptyText
		}
		input.Text = &trimmed
	}

	if err := s.authorize(ctx, userID, todoID); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, todoID, ports.TodoUpdate{
		Text:      input.Text,
		Completed: input.Completed,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete permanently removes the caller's todo.
func (s *TodoService) Delete(ctx context.Context, userID, todoID string) error {
	if err := s.authorize(ctx, userID, todoID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, todoID); err != nil {
		return err
	}

	s.logger.Info().Str("todo_id", todoID).Str("user_id", userID).Msg("todo deleted")
	return nil
}

// authorize fetches the todo and checks the caller owns it. Runs before any
// mutation so a forbidden request never partially applies.
func (s *TodoService) authorize(ctx context.Context, userID, todoID string) error {
	todo, err := s.repo.FindByID(ctx, todoID)
	if err != nil {
		return err
	}
	if todo.OwnerID != userID {
		return domain.ErrForbidden
	}
	return nil
}
