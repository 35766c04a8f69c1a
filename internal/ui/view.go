package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"daykeep/internal/calendar"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62"))

	todayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

func (m Model) View() string {
	if m.screen == LoginScreen {
		return m.viewLogin()
	}
	return m.viewApp()
}

func (m Model) viewLogin() string {
	var sb strings.Builder

	heading := " daykeep - log in "
	if m.signup {
		heading = " daykeep - sign up "
	}
	sb.WriteString(titleStyle.Render(heading))
	sb.WriteString("\n\n")

	if m.signup {
		sb.WriteString(m.usernameInput.View())
		sb.WriteString("\n")
	}
	sb.WriteString(m.emailInput.View())
	sb.WriteString("\n")
	sb.WriteString(m.passwordInput.View())
	sb.WriteString("\n\n")

	if m.errMsg != "" {
		sb.WriteString(errorStyle.Render(m.errMsg))
		sb.WriteString("\n\n")
	}

	sb.WriteString(dimStyle.Render("enter submit · ctrl+s switch login/signup · ctrl+c quit"))
	return boxStyle.Render(sb.String())
}

func (m Model) viewApp() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(" daykeep "))
	sb.WriteString("  ")
	for i, name := range []string{"Todos", "Calendar", "Pomodoro"} {
		style := tabStyle
		if Tab(i) == m.tab {
			style = activeTabStyle
		}
		sb.WriteString(style.Render(name))
	}
	sb.WriteString("\n\n")

	switch m.tab {
	case TodosTab:
		sb.WriteString(m.viewTodos())
	case CalendarTab:
		sb.WriteString(m.viewCalendar())
	case PomodoroTab:
		sb.WriteString(m.viewPomodoro())
	}

	if m.errMsg != "" {
		sb.WriteString("\n")
		sb.WriteString(errorStyle.Render(m.errMsg))
	}
	if m.status != "" {
		sb.WriteString("\n")
		sb.WriteString(statusStyle.Render(m.status))
	}

	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(m.helpLine()))
	return sb.String()
}

func (m Model) viewTodos() string {
	var sb strings.Builder

	if len(m.todos) == 0 && !m.addingTodo {
		sb.WriteString(dimStyle.Render("No todos yet. Press a to add one."))
		sb.WriteString("\n")
	}

	for i, todo := range m.todos {
		check := "[ ]"
		if todo.Completed {
			check = "[x]"
		}
		line := fmt.Sprintf("%s %s", check, todo.Description)
		if i == m.todoCursor {
			line = selectedStyle.Render(line)
		} else if todo.Completed {
			line = dimStyle.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if m.celebrate {
		sb.WriteString("\n")
		sb.WriteString(statusStyle.Render("🎉 All done! Great job."))
		sb.WriteString("\n")
	}

	if m.addingTodo {
		sb.WriteString("\n")
		sb.WriteString(m.todoInput.View())
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m Model) viewCalendar() string {
	switch m.cal.Modal() {
	case calendar.ModalAddForm:
		return m.viewEventForm()
	case calendar.ModalViewList:
		return m.viewEventList()
	}

	var sb strings.Builder

	sb.WriteString(lipgloss.NewStyle().Bold(true).
		Render(fmt.Sprintf("%s %d", calendar.MonthNames[m.cal.Month], m.cal.Year)))
	sb.WriteString("\n\n")

	days := m.cal.DaysInMonth()
	for day := 1; day <= days; day++ {
		key := calendar.DateKey{Day: day, Month: m.cal.Month, Year: m.cal.Year}
		cell := fmt.Sprintf("%2d", day)
		switch {
		case key == m.cal.Selected:
			cell = selectedStyle.Render(cell)
		case m.cal.IsToday(key):
			cell = todayStyle.Render(cell)
		}
		if len(m.cal.Events(key)) > 0 {
			cell += "•"
		} else {
			cell += " "
		}
		sb.WriteString(cell)
		sb.WriteString(" ")
		if day%7 == 0 {
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n\n")

	visible, hidden := m.cal.DaySummary(m.selectedDayInView())
	for _, event := range visible {
		sb.WriteString(fmt.Sprintf("%s %s", event.Emoji, event.EventName))
		if event.EventTime != "" {
			sb.WriteString(dimStyle.Render(" at " + event.EventTime))
		}
		sb.WriteString("\n")
	}
	if hidden > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("%d more", hidden)))
		sb.WriteString("\n")
	}

	return sb.String()
}

// selectedDayInView returns the selected day when it falls in the
// displayed month, and 0 otherwise so no summary is shown.
func (m Model) selectedDayInView() int {
	if m.cal.Selected.Month == m.cal.Month && m.cal.Selected.Year == m.cal.Year {
		return m.cal.Selected.Day
	}
	return 0
}

func (m Model) viewEventForm() string {
	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Bold(true).
		Render("New event on " + m.cal.Selected.EventDate()))
	sb.WriteString("\n\n")
	sb.WriteString(m.eventNameInput.View())
	sb.WriteString("\n")
	sb.WriteString(m.eventTimeInput.View())
	sb.WriteString("\n")
	sb.WriteString(m.emojiInput.View())
	sb.WriteString("\n")
	return boxStyle.Render(sb.String())
}

func (m Model) viewEventList() string {
	var sb strings.Builder

	date, ok := m.cal.ModalDate()
	if !ok {
		date = m.cal.Selected
	}
	sb.WriteString(lipgloss.NewStyle().Bold(true).
		Render("Events on " + date.EventDate()))
	sb.WriteString("\n\n")

	events := m.cal.SelectedEvents()
	if len(events) == 0 {
		sb.WriteString(dimStyle.Render("Nothing planned."))
		sb.WriteString("\n")
	}
	for i, event := range events {
		line := fmt.Sprintf("%s %s", event.Emoji, event.EventName)
		if event.EventTime != "" {
			line += " at " + event.EventTime
		}
		if i == m.eventCursor {
			line = selectedStyle.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return boxStyle.Render(sb.String())
}

func (m Model) viewPomodoro() string {
	var sb strings.Builder

	clock := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		Render(m.timer.Clock())
	sb.WriteString(boxStyle.Render("  " + clock + "  "))
	sb.WriteString("\n\n")

	state := "paused"
	if m.timer.Running() {
		state = "running"
	}
	sb.WriteString(dimStyle.Render("Session is " + state))
	sb.WriteString("\n")

	return sb.String()
}

func (m Model) helpLine() string {
	switch {
	case m.addingTodo, m.cal.Modal() == calendar.ModalAddForm:
		return "enter save · esc cancel"
	case m.cal.Modal() == calendar.ModalViewList:
		return "a add · d delete · esc close"
	}
	switch m.tab {
	case TodosTab:
		return "a add · space toggle · d delete · tab switch tab · ctrl+o log out · q quit"
	case CalendarTab:
		return "arrows move · enter day events · a add · [/] month · t today · tab switch tab · q quit"
	default:
		return "s start/pause · r reset · tab switch tab · q quit"
	}
}
