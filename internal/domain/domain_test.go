package domain

import (
	"testing"
	"time"
)

func TestEventOnDay(t *testing.T) {
	e := Event{Start: time.Date(2024, 3, 5, 15, 0, 0, 0, time.UTC)}

	if !e.OnDay(time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC)) {
		t.Error("time of day must not matter")
	}
	if e.OnDay(time.Date(2024, 3, 6, 15, 0, 0, 0, time.UTC)) {
		t.Error("different date must not match")
	}
	if e.OnDay(time.Date(2023, 3, 5, 15, 0, 0, 0, time.UTC)) {
		t.Error("same year-day of another year must not match")
	}
}

func TestEventFormatTime(t *testing.T) {
	start := time.Date(2024, 3, 5, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{"timed with end", Event{Start: start, End: start.Add(90 * time.Minute)}, "15:00-16:30"},
		{"timed without end", Event{Start: start}, "15:00"},
		{"all day", Event{Start: start, AllDay: true}, "all day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.FormatTime(); got != tt.want {
				t.Errorf("FormatTime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPollVoteHelpers(t *testing.T) {
	poll := Poll{
		Options: []PollOption{
			{ID: "a", Votes: []string{"p1", "p2"}},
			{ID: "b", Votes: []string{"p3"}},
		},
	}

	if got := poll.TotalVotes(); got != 3 {
		t.Errorf("TotalVotes = %d, want 3", got)
	}
	if got := poll.VotedOption("p3"); got != "b" {
		t.Errorf("VotedOption(p3) = %q, want b", got)
	}
	if poll.HasVoted("p4") {
		t.Error("p4 has not voted")
	}
}

func TestPollIsExpired(t *testing.T) {
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	if (&Poll{}).IsExpired(now) {
		t.Error("poll without expiry never expires")
	}
	if !(&Poll{ExpiresAt: &past}).IsExpired(now) {
		t.Error("past expiry should report expired")
	}
	if (&Poll{ExpiresAt: &future}).IsExpired(now) {
		t.Error("future expiry should not report expired")
	}
}

func TestTaskIsOverdue(t *testing.T) {
	past := time.Now().Add(-time.Hour)

	if !(&Task{DueDate: &past}).IsOverdue() {
		t.Error("open task past due date is overdue")
	}
	if (&Task{DueDate: &past, Completed: true}).IsOverdue() {
		t.Error("completed task is never overdue")
	}
	if (&Task{}).IsOverdue() {
		t.Error("task without due date is never overdue")
	}
}
