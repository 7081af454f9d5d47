// Package ics renders the family event collection as an iCalendar feed.
// The feed is export-only: nothing in the store reads it back.
package ics

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tazhate/familyhub/internal/domain"
)

const productID = "-//FamilyHub//Calendar//EN"

// Calendar converts events into a VCALENDAR with one VEVENT per entry
func Calendar(events []domain.Event) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	for _, e := range events {
		cal.Children = append(cal.Children, eventComponent(e))
	}
	return cal
}

// Encode writes the feed for the given events to w
func Encode(w io.Writer, events []domain.Event) error {
	if err := ical.NewEncoder(w).Encode(Calendar(events)); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}
	return nil
}

func eventComponent(e domain.Event) *ical.Component {
	vevent := ical.NewEvent()
	vevent.Props.SetText(ical.PropUID, e.ID)
	vevent.Props.SetText(ical.PropSummary, e.Title)
	vevent.Props.SetDateTime(ical.PropDateTimeStamp, time.Now().UTC())

	if e.Description != "" {
		vevent.Props.SetText(ical.PropDescription, e.Description)
	}
	if e.Location != "" {
		vevent.Props.SetText(ical.PropLocation, e.Location)
	}

	// All-day events use DATE values; timed events are written in UTC
	if e.AllDay {
		vevent.Props.SetDate(ical.PropDateTimeStart, e.Start)
		if !e.End.IsZero() {
			vevent.Props.SetDate(ical.PropDateTimeEnd, e.End)
		}
	} else {
		vevent.Props.SetDateTime(ical.PropDateTimeStart, e.Start.UTC())
		if !e.End.IsZero() {
			vevent.Props.SetDateTime(ical.PropDateTimeEnd, e.End.UTC())
		}
	}

	if rule := recurrenceRule(e.Recurring); rule != "" {
		prop := ical.NewProp(ical.PropRecurrenceRule)
		prop.SetValueType(ical.ValueRecurrence)
		prop.Value = rule
		vevent.Props.Set(prop)
	}

	return vevent.Component
}

func recurrenceRule(r domain.Recurrence) string {
	switch r {
	case domain.RecurDaily:
		return "FREQ=DAILY"
	case domain.RecurWeekly:
		return "FREQ=WEEKLY"
	case domain.RecurMonthly:
		return "FREQ=MONTHLY"
	default:
		return ""
	}
}
