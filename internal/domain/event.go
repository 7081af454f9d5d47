package domain

import "time"

// Recurrence tags an event or task as repeating. The stored record is still
// a single occurrence; expansion happens only in calendar queries.
type Recurrence string

const (
	RecurNone    Recurrence = ""
	RecurDaily   Recurrence = "daily"
	RecurWeekly  Recurrence = "weekly"
	RecurMonthly Recurrence = "monthly"
)

// Event represents a single calendar entry
type Event struct {
	ID          string
	Title       string
	Start       time.Time
	End         time.Time // expected >= Start, not enforced
	AllDay      bool
	ProfileID   string // may dangle; renders with ColorDefault
	Location    string
	Description string
	Recurring   Recurrence
}

// IsRecurring returns true if the event carries a recurrence tag
func (e *Event) IsRecurring() bool {
	return e.Recurring != RecurNone
}

// OnDay returns true if the event starts on the given calendar date,
// ignoring time of day
func (e *Event) OnDay(day time.Time) bool {
	return e.Start.Year() == day.Year() && e.Start.YearDay() == day.YearDay()
}

// FormatTime returns formatted time for display
func (e *Event) FormatTime() string {
	if e.AllDay {
		return "all day"
	}
	if e.End.IsZero() {
		return e.Start.Format("15:04")
	}
	return e.Start.Format("15:04") + "-" + e.End.Format("15:04")
}

// IsToday returns true if the event starts today
func (e *Event) IsToday() bool {
	return e.OnDay(time.Now())
}
