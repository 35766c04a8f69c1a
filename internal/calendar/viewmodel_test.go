package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daykeep/internal/models"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var march5 = time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)

func TestViewModel_DefaultsToToday(t *testing.T) {
	t.Parallel()

	vm := NewAt(fixedClock(march5))

	assert.Equal(t, 2024, vm.Year)
	assert.Equal(t, 2, vm.Month)
	assert.Equal(t, DateKey{Day: 5, Month: 2, Year: 2024}, vm.Selected)
	assert.True(t, vm.SelectedIsToday())
	assert.Equal(t, 31, vm.DaysInMonth())
}

func TestViewModel_NavigationIndependentOfSelection(t *testing.T) {
	t.Parallel()

	vm := NewAt(fixedClock(march5))

	vm.SetMonth(1) // Feb
	assert.Equal(t, 29, vm.DaysInMonth(), "2024 is a leap year")
	assert.Equal(t, DateKey{Day: 5, Month: 2, Year: 2024}, vm.Selected,
		"changing the displayed month must not move the selection")

	vm.NextYear()
	assert.Equal(t, 28, vm.DaysInMonth())

	vm.SelectDay(14)
	assert.Equal(t, DateKey{Day: 14, Month: 1, Year: 2025}, vm.Selected)
	assert.False(t, vm.SelectedIsToday())

	vm.GoToToday()
	assert.Equal(t, DateKey{Day: 5, Month: 2, Year: 2024}, vm.Selected)
	assert.Equal(t, 2024, vm.Year)
	assert.Equal(t, 2, vm.Month)
}

func TestViewModel_MonthWraparound(t *testing.T) {
	t.Parallel()

	vm := NewAt(fixedClock(march5))
	vm.SetMonth(11)
	vm.NextMonth()
	assert.Equal(t, 0, vm.Month)
	assert.Equal(t, 2025, vm.Year)

	vm.PrevMonth()
	assert.Equal(t, 11, vm.Month)
	assert.Equal(t, 2024, vm.Year)
}

func TestViewModel_SelectDayOutOfRange(t *testing.T) {
	t.Parallel()

	vm := NewAt(fixedClock(march5))
	before := vm.Selected

	vm.SelectDay(0)
	vm.SelectDay(32)
	assert.Equal(t, before, vm.Selected)
}

func TestViewModel_DaySummary(t *testing.T) {
	t.Parallel()

	vm := NewAt(fixedClock(march5))
	vm.SetEvents([]models.Event{
		{EventID: 1, EventName: "a", EventDate: "2024-03-05"},
		{EventID: 2, EventName: "b", EventDate: "2024-03-05"},
		{EventID: 3, EventName: "c", EventDate: "2024-03-05"},
		{EventID: 4, EventName: "d", EventDate: "2024-03-06"},
	})

	visible, hidden := vm.DaySummary(5)
	require.Len(t, visible, 2)
	assert.Equal(t, "a", visible[0].EventName)
	assert.Equal(t, "b", visible[1].EventName)
	assert.Equal(t, 1, hidden)

	visible, hidden = vm.DaySummary(6)
	assert.Len(t, visible, 1)
	assert.Zero(t, hidden)

	visible, hidden = vm.DaySummary(7)
	assert.Empty(t, visible)
	assert.Zero(t, hidden)

	// The display limit is configurable.
	vm.SummaryLimit = 1
	visible, hidden = vm.DaySummary(5)
	assert.Len(t, visible, 1)
	assert.Equal(t, 2, hidden)
}

func TestViewModel_TodayNotificationOncePerLoad(t *testing.T) {
	t.Parallel()

	vm := NewAt(fixedClock(march5))

	// Before any load, nothing fires.
	_, ok := vm.TodayNotification()
	assert.False(t, ok)

	vm.SetEvents([]models.Event{
		{EventID: 1, EventName: "Dentist", EventDate: "2024-03-05"},
		{EventID: 2, EventName: "Gym", EventDate: "2024-03-05"},
	})

	count, ok := vm.TodayNotification()
	assert.True(t, ok)
	assert.Equal(t, 2, count)

	// Subsequent renders stay silent.
	_, ok = vm.TodayNotification()
	assert.False(t, ok)

	// A fresh load re-arms it.
	vm.SetEvents([]models.Event{{EventID: 1, EventName: "Dentist", EventDate: "2024-03-05"}})
	count, ok = vm.TodayNotification()
	assert.True(t, ok)
	assert.Equal(t, 1, count)
}

func TestViewModel_TodayNotificationEmptyDay(t *testing.T) {
	t.Parallel()

	vm := NewAt(fixedClock(march5))
	vm.SetEvents([]models.Event{{EventID: 1, EventName: "x", EventDate: "2024-04-01"}})

	_, ok := vm.TodayNotification()
	assert.False(t, ok)
}

func TestViewModel_ModalStateMachine(t *testing.T) {
	t.Parallel()

	vm := NewAt(fixedClock(march5))
	assert.Equal(t, ModalClosed, vm.Modal())

	// Closed -> AddForm -> Closed on save/cancel.
	vm.OpenAddForm()
	assert.Equal(t, ModalAddForm, vm.Modal())
	_, hasDate := vm.ModalDate()
	assert.False(t, hasDate)

	vm.CloseModal()
	assert.Equal(t, ModalClosed, vm.Modal())

	// Closed -> ViewList -> AddForm (same date) -> Closed.
	key := DateKey{Day: 6, Month: 2, Year: 2024}
	vm.OpenViewList(key)
	assert.Equal(t, ModalViewList, vm.Modal())
	got, hasDate := vm.ModalDate()
	require.True(t, hasDate)
	assert.Equal(t, key, got)

	vm.AddFromViewList()
	assert.Equal(t, ModalAddForm, vm.Modal())
	assert.Equal(t, key, vm.Selected, "add form targets the list's date")
	_, hasDate = vm.ModalDate()
	assert.False(t, hasDate, "closing the list clears the date discriminator")

	vm.CloseModal()
	assert.Equal(t, ModalClosed, vm.Modal())
	_, hasDate = vm.ModalDate()
	assert.False(t, hasDate)
}

func TestViewModel_SelectDayClosesModal(t *testing.T) {
	t.Parallel()

	vm := NewAt(fixedClock(march5))
	vm.OpenViewList(DateKey{Day: 6, Month: 2, Year: 2024})

	vm.SelectDay(10)
	assert.Equal(t, ModalClosed, vm.Modal())
	_, hasDate := vm.ModalDate()
	assert.False(t, hasDate)
}
