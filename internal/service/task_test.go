package service

import (
	"strings"
	"testing"

	"github.com/tazhate/familyhub/internal/domain"
	"github.com/tazhate/familyhub/internal/storage"
)

func newTaskFixture(t *testing.T) (*storage.Storage, *TaskService, domain.Profile, domain.Profile) {
	t.Helper()

	store := storage.New()
	sarah := store.AddProfile(domain.Profile{Name: "Sarah", Role: domain.RoleChild})
	jack := store.AddProfile(domain.Profile{Name: "Jack", Role: domain.RoleChild})

	store.AddTask(domain.Task{Title: "Homework", AssignedTo: sarah.ID, Points: 10})
	store.AddTask(domain.Task{Title: "Clean bedroom", AssignedTo: sarah.ID, Completed: true, Points: 15})
	store.AddTask(domain.Task{Title: "Feed the cat", AssignedTo: sarah.ID, Completed: true})
	store.AddTask(domain.Task{Title: "Take out the trash", AssignedTo: jack.ID, Points: 5})

	return store, NewTaskService(store), sarah, jack
}

func TestPerProfileRollups(t *testing.T) {
	_, svc, sarah, jack := newTaskFixture(t)

	tests := []struct {
		name      string
		profileID string
		completed int
		pending   int
		points    int
	}{
		{"sarah", sarah.ID, 2, 1, 15},
		{"jack", jack.ID, 0, 1, 0},
		{"unknown profile", "missing", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.CompletedCount(tt.profileID); got != tt.completed {
				t.Errorf("CompletedCount = %d, want %d", got, tt.completed)
			}
			if got := svc.PendingCount(tt.profileID); got != tt.pending {
				t.Errorf("PendingCount = %d, want %d", got, tt.pending)
			}
			if got := svc.TotalPoints(tt.profileID); got != tt.points {
				t.Errorf("TotalPoints = %d, want %d", got, tt.points)
			}
		})
	}
}

func TestRollupsRecomputed(t *testing.T) {
	store, svc, _, jack := newTaskFixture(t)

	before := svc.TotalPoints(jack.ID)
	for _, task := range store.Tasks() {
		if task.AssignedTo == jack.ID {
			store.ToggleTaskCompletion(task.ID)
		}
	}
	after := svc.TotalPoints(jack.ID)

	if before != 0 || after != 5 {
		t.Errorf("points before/after completion = %d/%d, want 0/5", before, after)
	}
}

func TestSummaries(t *testing.T) {
	_, svc, sarah, jack := newTaskFixture(t)

	sums := svc.Summaries()
	if len(sums) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(sums))
	}
	if sums[0].Profile.ID != sarah.ID || sums[1].Profile.ID != jack.ID {
		t.Error("summaries out of profile order")
	}
	if sums[0].Completed != 2 || sums[0].Pending != 1 || sums[0].Points != 15 {
		t.Errorf("sarah summary = %+v", sums[0])
	}
}

func TestFormatTaskList(t *testing.T) {
	store, svc, _, _ := newTaskFixture(t)

	out := svc.FormatTaskList(store.Tasks())
	if !strings.Contains(out, "Homework") || !strings.Contains(out, "(10 pts)") {
		t.Errorf("unexpected list output:\n%s", out)
	}

	if got := svc.FormatTaskList(nil); got != "No tasks" {
		t.Errorf("empty list = %q", got)
	}
}
