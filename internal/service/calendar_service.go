package service

import (
	"sort"
	"time"

	"github.com/tazhate/familyhub/internal/domain"
	"github.com/tazhate/familyhub/internal/storage"
)

// View identifies the calendar granularity a presentation is showing
type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
	ViewDay   View = "day"
)

// Hour range of the week and day grids: 07:00 through 21:00 inclusive
const (
	DefaultDayStartHour = 7
	DefaultDayEndHour   = 21
)

// MonthCell is one day cell of the month grid. Events holds at most
// MonthCellCap entries; Overflow counts the rest ("+N more").
type MonthCell struct {
	Date     time.Time
	InMonth  bool // false for leading/trailing days of adjacent months
	Today    bool
	Events   []domain.Event
	Overflow int
}

// MonthCellCap limits events shown per month-grid day
const MonthCellCap = 3

// HourSlot is one (day, hour) cell of the week or day grid
type HourSlot struct {
	Day    time.Time
	Hour   int
	Events []domain.Event
}

// WeekDay is one column of the week grid
type WeekDay struct {
	Date  time.Time
	Today bool
	Slots []HourSlot
}

// CalendarService derives month/week/day groupings from the event
// collection and a reference date. It never mutates the store.
//
// Events within a bucket are sorted by Start ascending; the original feed
// order would be insertion order, but time order is what a grid wants.
type CalendarService struct {
	storage   *storage.Storage
	weekStart time.Weekday
	startHour int
	endHour   int
	expand    bool // materialize recurring occurrences in query results
	timezone  *time.Location
}

// CalendarOption configures a CalendarService
type CalendarOption func(*CalendarService)

// WithWeekStart sets the first day of the week (default Sunday)
func WithWeekStart(d time.Weekday) CalendarOption {
	return func(s *CalendarService) { s.weekStart = d }
}

// WithHourRange sets the inclusive hour range of week/day grids
func WithHourRange(start, end int) CalendarOption {
	return func(s *CalendarService) {
		if start >= 0 && end >= start && end <= 23 {
			s.startHour, s.endHour = start, end
		}
	}
}

// WithRecurrence enables bounded expansion of recurring events into the
// queried window. The store keeps a single row per event either way.
func WithRecurrence() CalendarOption {
	return func(s *CalendarService) { s.expand = true }
}

// WithTimezone sets the location used for day boundaries (default Local)
func WithTimezone(loc *time.Location) CalendarOption {
	return func(s *CalendarService) {
		if loc != nil {
			s.timezone = loc
		}
	}
}

// NewCalendarService creates a calendar query service over the store
func NewCalendarService(s *storage.Storage, opts ...CalendarOption) *CalendarService {
	svc := &CalendarService{
		storage:   s,
		weekStart: time.Sunday,
		startHour: DefaultDayStartHour,
		endHour:   DefaultDayEndHour,
		timezone:  time.Local,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// MonthGrid returns the day cells for the month containing ref: whole weeks
// from the week of the 1st through the week of the last day, so the result
// length is always a multiple of 7.
func (s *CalendarService) MonthGrid(ref time.Time) []MonthCell {
	ref = ref.In(s.timezone)
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, s.timezone)
	monthEnd := monthStart.AddDate(0, 1, -1)
	gridStart := s.startOfWeek(monthStart)
	gridEnd := s.startOfWeek(monthEnd).AddDate(0, 0, 6)

	events := s.eventsInRange(gridStart, gridEnd.AddDate(0, 0, 1))
	today := time.Now().In(s.timezone)

	var cells []MonthCell
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		dayEvents := eventsOnDay(events, day)
		cell := MonthCell{
			Date:    day,
			InMonth: day.Month() == ref.Month(),
			Today:   sameDay(day, today),
		}
		if len(dayEvents) > MonthCellCap {
			cell.Events = dayEvents[:MonthCellCap]
			cell.Overflow = len(dayEvents) - MonthCellCap
		} else {
			cell.Events = dayEvents
		}
		cells = append(cells, cell)
	}
	return cells
}

// WeekGrid returns the 7 days of the week containing ref, each crossed with
// the configured hour slots
func (s *CalendarService) WeekGrid(ref time.Time) []WeekDay {
	weekStart := s.startOfWeek(ref.In(s.timezone))
	events := s.eventsInRange(weekStart, weekStart.AddDate(0, 0, 7))
	today := time.Now().In(s.timezone)

	days := make([]WeekDay, 7)
	for i := range days {
		day := weekStart.AddDate(0, 0, i)
		days[i] = WeekDay{
			Date:  day,
			Today: sameDay(day, today),
			Slots: s.daySlots(events, day),
		}
	}
	return days
}

// DayGrid returns the hour slots for the single day containing ref
func (s *CalendarService) DayGrid(ref time.Time) []HourSlot {
	day := startOfDay(ref.In(s.timezone))
	events := s.eventsInRange(day, day.AddDate(0, 0, 1))
	return s.daySlots(events, day)
}

// SelectDay is the month-view drill-down: it moves the reference cursor to
// the chosen day and switches to day granularity.
func (s *CalendarService) SelectDay(day time.Time) View {
	s.storage.SetSelectedDate(day)
	return ViewDay
}

// SlotTime returns the timestamp a week/day grid cell stands for. Clicking
// a slot means "create an event here", not a further drill-down.
func (s *CalendarService) SlotTime(day time.Time, hour int) time.Time {
	day = day.In(s.timezone)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, s.timezone)
}

func (s *CalendarService) daySlots(events []domain.Event, day time.Time) []HourSlot {
	slots := make([]HourSlot, 0, s.endHour-s.startHour+1)
	for hour := s.startHour; hour <= s.endHour; hour++ {
		slot := HourSlot{Day: day, Hour: hour}
		for _, e := range events {
			start := e.Start.In(s.timezone)
			if sameDay(start, day) && start.Hour() == hour {
				slot.Events = append(slot.Events, e)
			}
		}
		sortByStart(slot.Events)
		slots = append(slots, slot)
	}
	return slots
}

// eventsInRange snapshots the event collection, optionally expanding
// recurring events into [from, to)
func (s *CalendarService) eventsInRange(from, to time.Time) []domain.Event {
	events := s.storage.Events()
	if !s.expand {
		return events
	}
	return expandRecurring(events, from, to, s.timezone)
}

func (s *CalendarService) startOfWeek(t time.Time) time.Time {
	t = startOfDay(t)
	diff := (int(t.Weekday()) - int(s.weekStart) + 7) % 7
	return t.AddDate(0, 0, -diff)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func eventsOnDay(events []domain.Event, day time.Time) []domain.Event {
	var out []domain.Event
	for _, e := range events {
		if sameDay(e.Start.In(day.Location()), day) {
			out = append(out, e)
		}
	}
	sortByStart(out)
	return out
}

func sortByStart(events []domain.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})
}
