// Package ui is the terminal client. It drives the HTTP API through
// apiclient and renders the todo list, calendar and pomodoro screens.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"daykeep/internal/apiclient"
	"daykeep/internal/calendar"
	"daykeep/internal/models"
	"daykeep/internal/pomodoro"
	"daykeep/internal/todolist"
)

// Screen selects the top-level view.
type Screen int

const (
	LoginScreen Screen = iota
	AppScreen
)

// Tab selects the pane shown on the app screen.
type Tab int

const (
	TodosTab Tab = iota
	CalendarTab
	PomodoroTab
	tabCount
)

const requestTimeout = 10 * time.Second

// Model is the whole application state.
type Model struct {
	client *apiclient.Client
	keys   KeyMap

	screen Screen
	tab    Tab

	width, height int
	status        string
	errMsg        string

	// Login / signup form
	signup        bool
	usernameInput textinput.Model
	emailInput    textinput.Model
	passwordInput textinput.Model
	activeField   int

	// Todo pane
	todos      []models.Todo
	todoCursor int
	addingTodo bool
	todoInput  textinput.Model
	celebrate  bool

	// Calendar pane
	cal            *calendar.ViewModel
	eventCursor    int
	eventNameInput textinput.Model
	eventTimeInput textinput.Model
	emojiInput     textinput.Model
	eventField     int

	// Pomodoro pane
	timer *pomodoro.Timer
}

// NewModel builds the initial state for a client with no session.
func NewModel(client *apiclient.Client) Model {
	username := textinput.New()
	username.Placeholder = "Username"
	username.Width = 32

	email := textinput.New()
	email.Placeholder = "Email"
	email.Width = 32
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.Width = 32
	password.EchoMode = textinput.EchoPassword

	todoInput := textinput.New()
	todoInput.Placeholder = "What needs doing?"
	todoInput.Width = 48

	eventName := textinput.New()
	eventName.Placeholder = "Event name"
	eventName.Width = 32

	eventTime := textinput.New()
	eventTime.Placeholder = "Time (HH:MM, optional)"
	eventTime.Width = 32

	emoji := textinput.New()
	emoji.Placeholder = "Emoji (optional)"
	emoji.Width = 32

	return Model{
		client:         client,
		keys:           DefaultKeyMap(),
		screen:         LoginScreen,
		usernameInput:  username,
		emailInput:     email,
		passwordInput:  password,
		todoInput:      todoInput,
		cal:            calendar.New(),
		eventNameInput: eventName,
		eventTimeInput: eventTime,
		emojiInput:     emoji,
		timer:          pomodoro.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Messages produced by the network commands.

type authDoneMsg struct{ err error }

type todosLoadedMsg struct {
	todos []models.Todo
	err   error
}

type eventsLoadedMsg struct {
	events []models.Event
	err    error
}

type todoSavedMsg struct {
	todo models.Todo
	err  error
}

type todoDeletedMsg struct {
	todoID int64
	err    error
}

type eventSavedMsg struct {
	event models.Event
	err   error
}

type eventDeletedMsg struct {
	eventID int64
	err     error
}

type pomodoroTickMsg time.Time

func (m Model) loginCmd() tea.Cmd {
	email, password := m.emailInput.Value(), m.passwordInput.Value()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return authDoneMsg{err: m.client.Login(ctx, email, password)}
	}
}

func (m Model) signupCmd() tea.Cmd {
	username, email, password := m.usernameInput.Value(), m.emailInput.Value(), m.passwordInput.Value()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return authDoneMsg{err: m.client.Signup(ctx, username, email, password)}
	}
}

func (m Model) fetchTodosCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		todos, err := m.client.ListTodos(ctx)
		return todosLoadedMsg{todos: todos, err: err}
	}
}

func (m Model) fetchEventsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		events, err := m.client.ListEvents(ctx)
		return eventsLoadedMsg{events: events, err: err}
	}
}

func (m Model) addTodoCmd(description string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		todo, err := m.client.CreateTodo(ctx, description)
		return todoSavedMsg{todo: todo, err: err}
	}
}

func (m Model) toggleTodoCmd(todo models.Todo) tea.Cmd {
	completed := !todo.Completed
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		updated, err := m.client.UpdateTodo(ctx, todo.TodoID, nil, &completed)
		return todoSavedMsg{todo: updated, err: err}
	}
}

func (m Model) deleteTodoCmd(todoID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		_, err := m.client.DeleteTodo(ctx, todoID)
		return todoDeletedMsg{todoID: todoID, err: err}
	}
}

func (m Model) addEventCmd(name, date, eventTime, emoji string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		event, err := m.client.CreateEvent(ctx, name, date, eventTime, emoji)
		return eventSavedMsg{event: event, err: err}
	}
}

func (m Model) deleteEventCmd(eventID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return eventDeletedMsg{eventID: eventID, err: m.client.DeleteEvent(ctx, eventID)}
	}
}

// pomodoroTickCmd schedules the next one-second tick. It is only issued
// while the timer is running so a paused timer generates no messages.
func pomodoroTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return pomodoroTickMsg(t)
	})
}

func (m *Model) applyTodos(todos []models.Todo) {
	next := todolist.Reduce(m.todos, todolist.SetTodos{Todos: todos})
	m.celebrate = todolist.Celebrate(m.todos, next)
	m.todos = next
	m.clampTodoCursor()
}

func (m *Model) reduceTodos(action todolist.Action) {
	next := todolist.Reduce(m.todos, action)
	m.celebrate = todolist.Celebrate(m.todos, next)
	m.todos = next
	m.clampTodoCursor()
}

func (m *Model) clampTodoCursor() {
	if m.todoCursor >= len(m.todos) {
		m.todoCursor = len(m.todos) - 1
	}
	if m.todoCursor < 0 {
		m.todoCursor = 0
	}
}
