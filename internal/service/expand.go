package service

import (
	"time"

	"github.com/tazhate/familyhub/internal/domain"
	"github.com/teambition/rrule-go"
)

// maxOccurrencesPerEvent caps expansion so a daily event queried over a huge
// window cannot blow up the result
const maxOccurrencesPerEvent = 370

// expandRecurring materializes occurrences of recurring events inside
// [from, to). Non-recurring events pass through untouched, and the stored
// collection is never modified: occurrences are copies with shifted times.
func expandRecurring(events []domain.Event, from, to time.Time, loc *time.Location) []domain.Event {
	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if !e.IsRecurring() {
			out = append(out, e)
			continue
		}

		freq, ok := recurrenceFreq(e.Recurring)
		if !ok {
			out = append(out, e)
			continue
		}

		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:    freq,
			Dtstart: e.Start,
		})
		if err != nil {
			out = append(out, e)
			continue
		}

		duration := e.End.Sub(e.Start)
		starts := rule.Between(from, to, true)
		if len(starts) > maxOccurrencesPerEvent {
			starts = starts[:maxOccurrencesPerEvent]
		}
		for _, start := range starts {
			occ := e
			occ.Start = start.In(loc)
			if !e.End.IsZero() {
				occ.End = occ.Start.Add(duration)
			}
			out = append(out, occ)
		}
	}
	return out
}

func recurrenceFreq(r domain.Recurrence) (rrule.Frequency, bool) {
	switch r {
	case domain.RecurDaily:
		return rrule.DAILY, true
	case domain.RecurWeekly:
		return rrule.WEEKLY, true
	case domain.RecurMonthly:
		return rrule.MONTHLY, true
	default:
		return 0, false
	}
}
