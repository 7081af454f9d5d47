package domain

import "time"

// Task represents a chore assigned to a family member
type Task struct {
	ID          string
	Title       string
	Description string
	DueDate     *time.Time // nil if no deadline
	Completed   bool
	AssignedTo  string // Profile ID
	CreatedBy   string // Profile ID
	Points      int    // reward points, 0 if none
	Recurring   Recurrence
}

// IsOverdue returns true if the task has a due date in the past and is
// not done yet
func (t *Task) IsOverdue() bool {
	if t.DueDate == nil || t.Completed {
		return false
	}
	return t.DueDate.Before(time.Now())
}

// StatusGlyph returns a checkbox glyph for list rendering
func (t *Task) StatusGlyph() string {
	if t.Completed {
		return "✅"
	}
	return "⬜"
}
