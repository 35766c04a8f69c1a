// Package todolist holds the pure state transitions behind the todo
// list screen. The server response is the source of truth; these
// transitions keep the local copy in step without a refetch.
package todolist

import "daykeep/internal/models"

// Action mutates a todo list snapshot.
type Action interface {
	apply(todos []models.Todo) []models.Todo
}

// SetTodos replaces the whole list, preserving server order.
type SetTodos struct {
	Todos []models.Todo
}

func (a SetTodos) apply([]models.Todo) []models.Todo {
	out := make([]models.Todo, len(a.Todos))
	copy(out, a.Todos)
	return out
}

// AddTodo appends a newly created todo.
type AddTodo struct {
	Todo models.Todo
}

func (a AddTodo) apply(todos []models.Todo) []models.Todo {
	return append(todos, a.Todo)
}

// DeleteTodo removes the todo with the given id, if present.
type DeleteTodo struct {
	TodoID int64
}

func (a DeleteTodo) apply(todos []models.Todo) []models.Todo {
	out := make([]models.Todo, 0, len(todos))
	for _, t := range todos {
		if t.TodoID != a.TodoID {
			out = append(out, t)
		}
	}
	return out
}

// ToggleTodoCompleted flips the completed flag of one todo in place.
type ToggleTodoCompleted struct {
	TodoID int64
}

func (a ToggleTodoCompleted) apply(todos []models.Todo) []models.Todo {
	out := make([]models.Todo, len(todos))
	copy(out, todos)
	for i := range out {
		if out[i].TodoID == a.TodoID {
			out[i].Completed = !out[i].Completed
		}
	}
	return out
}

// UpdateTodo swaps in the server's updated copy of a todo, keeping
// its position in the list.
type UpdateTodo struct {
	Todo models.Todo
}

func (a UpdateTodo) apply(todos []models.Todo) []models.Todo {
	out := make([]models.Todo, len(todos))
	copy(out, todos)
	for i := range out {
		if out[i].TodoID == a.Todo.TodoID {
			out[i] = a.Todo
		}
	}
	return out
}

// Reduce applies an action and returns the next list. The input slice
// is never mutated.
func Reduce(todos []models.Todo, action Action) []models.Todo {
	return action.apply(todos)
}

// AllCompleted reports whether every todo is done. An empty list does
// not count as completed.
func AllCompleted(todos []models.Todo) bool {
	if len(todos) == 0 {
		return false
	}
	for _, t := range todos {
		if !t.Completed {
			return false
		}
	}
	return true
}

// Celebrate reports whether the list just transitioned into the
// all-done state. It fires once per transition, not while the list
// stays completed.
func Celebrate(prev, next []models.Todo) bool {
	return AllCompleted(next) && !AllCompleted(prev)
}
