package storage

import (
	"time"

	"github.com/tazhate/familyhub/internal/domain"
)

// Patch types for partial updates. A nil field means "leave as is"; a set
// field overwrites. Optional values that can be emptied out (due date) get
// an explicit clear flag so omission and clearing stay distinguishable.

type EventPatch struct {
	Title       *string
	Start       *time.Time
	End         *time.Time
	AllDay      *bool
	ProfileID   *string
	Location    *string
	Description *string
	Recurring   *domain.Recurrence
}

func (p EventPatch) apply(e *domain.Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Start != nil {
		e.Start = *p.Start
	}
	if p.End != nil {
		e.End = *p.End
	}
	if p.AllDay != nil {
		e.AllDay = *p.AllDay
	}
	if p.ProfileID != nil {
		e.ProfileID = *p.ProfileID
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Recurring != nil {
		e.Recurring = *p.Recurring
	}
}

type TaskPatch struct {
	Title        *string
	Description  *string
	DueDate      *time.Time
	ClearDueDate bool
	Completed    *bool
	AssignedTo   *string
	Points       *int
	Recurring    *domain.Recurrence
}

func (p TaskPatch) apply(t *domain.Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.ClearDueDate {
		t.DueDate = nil
	} else if p.DueDate != nil {
		due := *p.DueDate
		t.DueDate = &due
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.AssignedTo != nil {
		t.AssignedTo = *p.AssignedTo
	}
	if p.Points != nil {
		t.Points = *p.Points
	}
	if p.Recurring != nil {
		t.Recurring = *p.Recurring
	}
}

type MealPatch struct {
	Name       *string
	Slot       *domain.MealSlot
	AssignedTo *string
	Date       *time.Time
	Notes      *string
}

func (p MealPatch) apply(m *domain.Meal) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Slot != nil {
		m.Slot = *p.Slot
	}
	if p.AssignedTo != nil {
		m.AssignedTo = *p.AssignedTo
	}
	if p.Date != nil {
		m.Date = *p.Date
	}
	if p.Notes != nil {
		m.Notes = *p.Notes
	}
}
