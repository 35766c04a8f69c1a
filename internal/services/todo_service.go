package services

import (
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"daykeep/internal/models"
)

// TodoServiceProvider defines the interface for todo management. Every
// operation is scoped to the acting user.
type TodoServiceProvider interface {
	Create(userID, description string) (models.Todo, error)
	List(userID string) ([]models.Todo, error)
	Update(userID string, todoID int64, description *string, completed *bool) (models.Todo, error)
	Delete(userID string, todoID int64) (models.Todo, error)
	PurgeOlderThan(cutoff time.Time) (int64, error)
}

// TodoService provides business logic for per-user todo lists.
type TodoService struct {
	db *sqlx.DB
}

// NewTodoService creates a new TodoService.
func NewTodoService(db *sqlx.DB) *TodoService {
	return &TodoService{db: db}
}

// Create inserts a new incomplete todo and returns the stored row.
func (s *TodoService) Create(userID, description string) (models.Todo, error) {
	query, args, err := sq.Insert("todos").
		Columns("user_id", "description").
		Values(userID, description).
		ToSql()
	if err != nil {
		return models.Todo{}, err
	}

	res, err := s.db.Exec(query, args...)
	if err != nil {
		return models.Todo{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Todo{}, err
	}

	return s.get(userID, id)
}

// List returns the user's todos ordered by identifier ascending, which is
// stable insertion order.
func (s *TodoService) List(userID string) ([]models.Todo, error) {
	todos := []models.Todo{}
	err := s.db.Select(&todos,
		"SELECT todo_id, user_id, description, completed, created_at FROM todos WHERE user_id = ? ORDER BY todo_id",
		userID)
	if err != nil {
		return nil, err
	}
	return todos, nil
}

// Update patches the description and/or completion flag of a todo owned by
// the user. A todo that does not exist and one owned by someone else both
// come back as ErrNotFound.
func (s *TodoService) Update(userID string, todoID int64, description *string, completed *bool) (models.Todo, error) {
	if description == nil && completed == nil {
		return models.Todo{}, ErrEmptyUpdate
	}

	b := sq.Update("todos")
	if description != nil {
		b = b.Set("description", *description)
	}
	if completed != nil {
		b = b.Set("completed", *completed)
	}
	query, args, err := b.Where(sq.Eq{"todo_id": todoID, "user_id": userID}).ToSql()
	if err != nil {
		return models.Todo{}, err
	}

	res, err := s.db.Exec(query, args...)
	if err != nil {
		return models.Todo{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Todo{}, err
	}
	if affected == 0 {
		return models.Todo{}, ErrNotFound
	}

	return s.get(userID, todoID)
}

// Delete removes a todo owned by the user and returns the deleted row.
func (s *TodoService) Delete(userID string, todoID int64) (models.Todo, error) {
	todo, err := s.get(userID, todoID)
	if err != nil {
		return models.Todo{}, err
	}

	query, args, err := sq.Delete("todos").
		Where(sq.Eq{"todo_id": todoID, "user_id": userID}).
		ToSql()
	if err != nil {
		return models.Todo{}, err
	}
	if _, err := s.db.Exec(query, args...); err != nil {
		return models.Todo{}, err
	}
	return todo, nil
}

// PurgeOlderThan deletes every todo, across all users, created before the
// cutoff, and returns the number of rows removed. Completion state is
// irrelevant; the deletion is irreversible.
func (s *TodoService) PurgeOlderThan(cutoff time.Time) (int64, error) {
	// created_at rows carry CURRENT_TIMESTAMP's UTC format; compare in kind.
	res, err := s.db.Exec("DELETE FROM todos WHERE created_at < ?",
		cutoff.UTC().Format("2006-01-02 15:04:05"))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *TodoService) get(userID string, todoID int64) (models.Todo, error) {
	var todo models.Todo
	err := s.db.Get(&todo,
		"SELECT todo_id, user_id, description, completed, created_at FROM todos WHERE todo_id = ? AND user_id = ?",
		todoID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Todo{}, ErrNotFound
	}
	if err != nil {
		return models.Todo{}, err
	}
	return todo, nil
}
