package calendar

import (
	"time"

	"daykeep/internal/models"
)

// ModalState enumerates the event modal's states. At most one of the add
// form and the per-date list is visible at a time.
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalAddForm
	ModalViewList
)

// DefaultSummaryLimit is how many events a day cell shows before collapsing
// the rest into a "+k more" indicator.
const DefaultSummaryLimit = 2

// MonthNames are the grid labels, indexed by zero-based month.
var MonthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// ViewModel drives the calendar: the displayed month/year (navigation), the
// selected day (selection, independent of navigation), the day buckets
// derived from the server's event list, and the modal state machine.
type ViewModel struct {
	now func() time.Time

	// Navigation state: the month grid currently displayed.
	Year  int
	Month int // zero-based

	// Selection state: the chosen day, defaulting to today.
	Selected DateKey

	SummaryLimit int

	buckets  map[DateKey][]models.Event
	loaded   bool
	notified bool

	modal     ModalState
	modalDate *DateKey
}

// New creates a view model positioned on the real current date.
func New() *ViewModel {
	return NewAt(time.Now)
}

// NewAt creates a view model with an injectable clock.
func NewAt(now func() time.Time) *ViewModel {
	today := Today(now())
	return &ViewModel{
		now:          now,
		Year:         today.Year,
		Month:        today.Month,
		Selected:     today,
		SummaryLimit: DefaultSummaryLimit,
		buckets:      map[DateKey][]models.Event{},
	}
}

// DaysInMonth is recomputed from navigation state whenever it is read, so
// month and year changes can never leave a stale day count.
func (vm *ViewModel) DaysInMonth() int {
	return DaysInMonth(vm.Year, vm.Month)
}

// SetMonth switches the displayed month without touching the selection.
func (vm *ViewModel) SetMonth(monthIndex int) {
	if monthIndex >= 0 && monthIndex < 12 {
		vm.Month = monthIndex
	}
}

func (vm *ViewModel) NextMonth() {
	if vm.Month == 11 {
		vm.Month = 0
		vm.Year++
		return
	}
	vm.Month++
}

func (vm *ViewModel) PrevMonth() {
	if vm.Month == 0 {
		vm.Month = 11
		vm.Year--
		return
	}
	vm.Month--
}

func (vm *ViewModel) NextYear() { vm.Year++ }
func (vm *ViewModel) PrevYear() { vm.Year-- }

// SelectDay picks a day on the displayed month grid. The modal does not
// open automatically; it also clears any event-list discriminator left from
// a previous date.
func (vm *ViewModel) SelectDay(day int) {
	if day < 1 || day > vm.DaysInMonth() {
		return
	}
	vm.Selected = DateKey{Day: day, Month: vm.Month, Year: vm.Year}
	vm.CloseModal()
}

// GoToToday resets both navigation and selection to the real current date.
func (vm *ViewModel) GoToToday() {
	today := Today(vm.now())
	vm.Year = today.Year
	vm.Month = today.Month
	vm.Selected = today
}

// IsToday compares a key against the real current date at render time.
func (vm *ViewModel) IsToday(k DateKey) bool {
	return k == Today(vm.now())
}

// SelectedIsToday reports whether the selection sits on today, which drives
// the TODAY badge and the back-to-today affordance.
func (vm *ViewModel) SelectedIsToday() bool {
	return vm.IsToday(vm.Selected)
}

// SetEvents rebuilds the day buckets wholesale from a fresh server list and
// re-arms the today notification for this load.
func (vm *ViewModel) SetEvents(events []models.Event) {
	vm.buckets = BucketEvents(events)
	vm.loaded = true
	vm.notified = false
}

// Events returns the bucket for a day, in server order.
func (vm *ViewModel) Events(k DateKey) []models.Event {
	return vm.buckets[k]
}

// SelectedEvents returns the bucket for the selected day.
func (vm *ViewModel) SelectedEvents() []models.Event {
	return vm.buckets[vm.Selected]
}

// DaySummary returns the first SummaryLimit events of a day on the
// displayed grid plus how many were truncated.
func (vm *ViewModel) DaySummary(day int) (visible []models.Event, hidden int) {
	list := vm.buckets[DateKey{Day: day, Month: vm.Month, Year: vm.Year}]
	if len(list) <= vm.SummaryLimit {
		return list, 0
	}
	return list[:vm.SummaryLimit], len(list) - vm.SummaryLimit
}

// TodayNotification reports how many events fall on today. It fires at most
// once per SetEvents load, never once per render.
func (vm *ViewModel) TodayNotification() (int, bool) {
	if !vm.loaded || vm.notified {
		return 0, false
	}
	vm.notified = true
	count := len(vm.buckets[Today(vm.now())])
	return count, count > 0
}

// Modal returns the current modal state.
func (vm *ViewModel) Modal() ModalState {
	return vm.modal
}

// ModalDate returns the date whose event list the modal is showing.
func (vm *ViewModel) ModalDate() (DateKey, bool) {
	if vm.modalDate == nil {
		return DateKey{}, false
	}
	return *vm.modalDate, true
}

// OpenAddForm shows the add-event form for the selected date.
func (vm *ViewModel) OpenAddForm() {
	vm.modal = ModalAddForm
	vm.modalDate = nil
}

// OpenViewList shows the existing events of a specific date.
func (vm *ViewModel) OpenViewList(k DateKey) {
	key := k
	vm.modal = ModalViewList
	vm.modalDate = &key
}

// AddFromViewList moves from the per-date list to the add form for that
// same date.
func (vm *ViewModel) AddFromViewList() {
	if vm.modal != ModalViewList {
		return
	}
	if vm.modalDate != nil {
		vm.Selected = *vm.modalDate
		vm.Year = vm.modalDate.Year
		vm.Month = vm.modalDate.Month
	}
	vm.modal = ModalAddForm
	vm.modalDate = nil
}

// CloseModal closes whichever modal is open and always clears the
// selected-event-date discriminator.
func (vm *ViewModel) CloseModal() {
	vm.modal = ModalClosed
	vm.modalDate = nil
}
