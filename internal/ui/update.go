package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"daykeep/internal/apiclient"
	"daykeep/internal/calendar"
	"daykeep/internal/todolist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case authDoneMsg:
		if msg.err != nil {
			m.errMsg = apiMessage(msg.err)
			return m, nil
		}
		m.screen = AppScreen
		m.tab = TodosTab
		m.errMsg = ""
		m.status = ""
		m.passwordInput.SetValue("")
		return m, tea.Batch(m.fetchTodosCmd(), m.fetchEventsCmd())

	case todosLoadedMsg:
		if msg.err != nil {
			m.errMsg = apiMessage(msg.err)
			return m, nil
		}
		m.applyTodos(msg.todos)
		return m, nil

	case eventsLoadedMsg:
		if msg.err != nil {
			m.errMsg = apiMessage(msg.err)
			return m, nil
		}
		m.cal.SetEvents(msg.events)
		m.eventCursor = 0
		if count, ok := m.cal.TodayNotification(); ok {
			m.status = fmt.Sprintf("You have %d event(s) today!", count)
		}
		return m, nil

	case todoSavedMsg:
		if msg.err != nil {
			m.errMsg = apiMessage(msg.err)
			return m, nil
		}
		if m.hasTodo(msg.todo.TodoID) {
			m.reduceTodos(todolist.UpdateTodo{Todo: msg.todo})
		} else {
			m.reduceTodos(todolist.AddTodo{Todo: msg.todo})
		}
		return m, nil

	case todoDeletedMsg:
		if msg.err != nil {
			m.errMsg = apiMessage(msg.err)
			return m, nil
		}
		m.reduceTodos(todolist.DeleteTodo{TodoID: msg.todoID})
		return m, nil

	case eventSavedMsg:
		if msg.err != nil {
			m.errMsg = apiMessage(msg.err)
			return m, nil
		}
		m.cal.CloseModal()
		return m, m.fetchEventsCmd()

	case eventDeletedMsg:
		if msg.err != nil {
			m.errMsg = apiMessage(msg.err)
			return m, nil
		}
		return m, m.fetchEventsCmd()

	case pomodoroTickMsg:
		if !m.timer.Running() {
			return m, nil
		}
		if m.timer.Tick() {
			m.status = "Pomodoro finished, take a break"
			return m, nil
		}
		return m, pomodoroTickCmd()

	case tea.KeyMsg:
		if m.screen == LoginScreen {
			return m.updateLogin(msg)
		}
		return m.updateApp(msg)
	}

	return m, nil
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.keys.SwitchAuth):
		m.signup = !m.signup
		m.activeField = 0
		m.errMsg = ""
		return m.focusLoginField(), nil

	case msg.String() == "tab", msg.String() == "down":
		m.activeField = (m.activeField + 1) % m.loginFieldCount()
		return m.focusLoginField(), nil

	case msg.String() == "shift+tab", msg.String() == "up":
		m.activeField = (m.activeField + m.loginFieldCount() - 1) % m.loginFieldCount()
		return m.focusLoginField(), nil

	case key.Matches(msg, m.keys.Select):
		m.errMsg = ""
		if m.signup {
			return m, m.signupCmd()
		}
		return m, m.loginCmd()
	}

	var cmd tea.Cmd
	switch m.loginFieldAt(m.activeField) {
	case &m.usernameInput:
		m.usernameInput, cmd = m.usernameInput.Update(msg)
	case &m.emailInput:
		m.emailInput, cmd = m.emailInput.Update(msg)
	case &m.passwordInput:
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

func (m Model) loginFieldCount() int {
	if m.signup {
		return 3
	}
	return 2
}

// loginFieldAt maps a field index to its input. Signup shows username
// first; login has only email and password.
func (m *Model) loginFieldAt(i int) *textinput.Model {
	fields := []*textinput.Model{&m.emailInput, &m.passwordInput}
	if m.signup {
		fields = []*textinput.Model{&m.usernameInput, &m.emailInput, &m.passwordInput}
	}
	if i < 0 || i >= len(fields) {
		return nil
	}
	return fields[i]
}

func (m Model) focusLoginField() Model {
	for i := 0; i < 3; i++ {
		if f := m.loginFieldAt(i); f != nil {
			f.Blur()
		}
	}
	if f := m.loginFieldAt(m.activeField); f != nil {
		f.Focus()
	}
	return m
}

func (m Model) updateApp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text entry modes swallow everything except esc and enter.
	if m.addingTodo {
		return m.updateTodoEntry(msg)
	}
	if m.cal.Modal() == calendar.ModalAddForm {
		return m.updateEventEntry(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Logout):
		m.client.ClearSession()
		m.screen = LoginScreen
		m.todos = nil
		m.cal = calendar.New()
		m.status = ""
		m.errMsg = ""
		m.activeField = 0
		return m.focusLoginField(), nil

	case key.Matches(msg, m.keys.NextTab):
		m.tab = (m.tab + 1) % tabCount
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.tab = (m.tab + tabCount - 1) % tabCount
		return m, nil
	}

	switch m.tab {
	case TodosTab:
		return m.updateTodos(msg)
	case CalendarTab:
		return m.updateCalendar(msg)
	case PomodoroTab:
		return m.updatePomodoro(msg)
	}
	return m, nil
}

func (m Model) updateTodos(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.todoCursor > 0 {
			m.todoCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.todoCursor < len(m.todos)-1 {
			m.todoCursor++
		}
	case key.Matches(msg, m.keys.Add):
		m.addingTodo = true
		m.todoInput.SetValue("")
		m.todoInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Toggle):
		if len(m.todos) > 0 {
			return m, m.toggleTodoCmd(m.todos[m.todoCursor])
		}
	case key.Matches(msg, m.keys.Delete):
		if len(m.todos) > 0 {
			return m, m.deleteTodoCmd(m.todos[m.todoCursor].TodoID)
		}
	}
	return m, nil
}

func (m Model) updateTodoEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.addingTodo = false
		m.todoInput.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Select):
		description := m.todoInput.Value()
		m.addingTodo = false
		m.todoInput.Blur()
		if description == "" {
			return m, nil
		}
		return m, m.addTodoCmd(description)
	}
	var cmd tea.Cmd
	m.todoInput, cmd = m.todoInput.Update(msg)
	return m, cmd
}

func (m Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.cal.Modal() == calendar.ModalViewList {
		return m.updateEventList(msg)
	}

	day := m.cal.Selected.Day
	if m.cal.Selected.Month != m.cal.Month || m.cal.Selected.Year != m.cal.Year {
		day = 1
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.cal.SelectDay(day - 1)
	case key.Matches(msg, m.keys.Right):
		m.cal.SelectDay(day + 1)
	case key.Matches(msg, m.keys.Up):
		m.cal.SelectDay(day - 7)
	case key.Matches(msg, m.keys.Down):
		m.cal.SelectDay(day + 7)
	case key.Matches(msg, m.keys.PrevMonth):
		m.cal.PrevMonth()
	case key.Matches(msg, m.keys.NextMonth):
		m.cal.NextMonth()
	case key.Matches(msg, m.keys.Today):
		m.cal.GoToToday()
	case key.Matches(msg, m.keys.Add):
		m.cal.SelectDay(day)
		m.openEventForm()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Select):
		m.cal.SelectDay(day)
		m.cal.OpenViewList(m.cal.Selected)
		m.eventCursor = 0
	}
	return m, nil
}

func (m *Model) openEventForm() {
	m.cal.OpenAddForm()
	m.eventField = 0
	m.eventNameInput.SetValue("")
	m.eventTimeInput.SetValue("")
	m.emojiInput.SetValue("")
	m.eventNameInput.Focus()
	m.eventTimeInput.Blur()
	m.emojiInput.Blur()
}

func (m Model) updateEventEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := []*textinput.Model{&m.eventNameInput, &m.eventTimeInput, &m.emojiInput}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.cal.CloseModal()
		return m, nil
	case msg.String() == "tab", msg.String() == "down":
		m.eventField = (m.eventField + 1) % len(fields)
	case msg.String() == "shift+tab", msg.String() == "up":
		m.eventField = (m.eventField + len(fields) - 1) % len(fields)
	case key.Matches(msg, m.keys.Select):
		name := m.eventNameInput.Value()
		if name == "" {
			return m, nil
		}
		date := m.cal.Selected.EventDate()
		return m, m.addEventCmd(name, date, m.eventTimeInput.Value(), m.emojiInput.Value())
	default:
		var cmd tea.Cmd
		switch m.eventField {
		case 0:
			m.eventNameInput, cmd = m.eventNameInput.Update(msg)
		case 1:
			m.eventTimeInput, cmd = m.eventTimeInput.Update(msg)
		case 2:
			m.emojiInput, cmd = m.emojiInput.Update(msg)
		}
		return m, cmd
	}

	for i, f := range fields {
		if i == m.eventField {
			f.Focus()
		} else {
			f.Blur()
		}
	}
	return m, nil
}

func (m Model) updateEventList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	events := m.cal.SelectedEvents()
	switch {
	case key.Matches(msg, m.keys.Back):
		m.cal.CloseModal()
	case key.Matches(msg, m.keys.Up):
		if m.eventCursor > 0 {
			m.eventCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.eventCursor < len(events)-1 {
			m.eventCursor++
		}
	case key.Matches(msg, m.keys.Delete):
		if len(events) > 0 {
			return m, m.deleteEventCmd(events[m.eventCursor].EventID)
		}
	case key.Matches(msg, m.keys.Add):
		m.cal.AddFromViewList()
		m.openEventForm()
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) updatePomodoro(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.StartPause):
		if m.timer.Running() {
			m.timer.Pause()
			return m, nil
		}
		m.timer.Start()
		if m.timer.Running() {
			return m, pomodoroTickCmd()
		}
	case key.Matches(msg, m.keys.Reset):
		m.timer.Reset()
		m.status = ""
	}
	return m, nil
}

func (m Model) hasTodo(todoID int64) bool {
	for _, t := range m.todos {
		if t.TodoID == todoID {
			return true
		}
	}
	return false
}

// apiMessage keeps server-provided messages and hides transport noise.
func apiMessage(err error) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Could not reach the server"
}
