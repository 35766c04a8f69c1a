package models

import "time"

// Todo is a single item on a user's list. Identifiers are assigned in
// insertion order, so sorting by TodoID yields a stable list.
type Todo struct {
	TodoID      int64     `db:"todo_id" json:"todo_id"`
	UserID      string    `db:"user_id" json:"-"`
	Description string    `db:"description" json:"description"`
	Completed   bool      `db:"completed" json:"completed"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
