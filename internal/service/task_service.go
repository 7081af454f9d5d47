package service

import (
	"fmt"
	"strings"

	"github.com/tazhate/familyhub/internal/domain"
	"github.com/tazhate/familyhub/internal/storage"
)

// ProfileTaskSummary is the per-member rollup shown on the family overview
type ProfileTaskSummary struct {
	Profile   domain.Profile
	Completed int
	Pending   int
	Points    int // sum over completed assigned tasks
}

// TaskService derives per-profile chore rollups from the task collection.
// Values are recomputed on every call, never cached.
type TaskService struct {
	storage *storage.Storage
}

func NewTaskService(s *storage.Storage) *TaskService {
	return &TaskService{storage: s}
}

// CompletedCount returns how many of the profile's assigned tasks are done
func (s *TaskService) CompletedCount(profileID string) int {
	count := 0
	for _, t := range s.storage.Tasks() {
		if t.AssignedTo == profileID && t.Completed {
			count++
		}
	}
	return count
}

// PendingCount returns how many of the profile's assigned tasks are open
func (s *TaskService) PendingCount(profileID string) int {
	count := 0
	for _, t := range s.storage.Tasks() {
		if t.AssignedTo == profileID && !t.Completed {
			count++
		}
	}
	return count
}

// TotalPoints sums the points of the profile's completed tasks
func (s *TaskService) TotalPoints(profileID string) int {
	points := 0
	for _, t := range s.storage.Tasks() {
		if t.AssignedTo == profileID && t.Completed {
			points += t.Points
		}
	}
	return points
}

// Summaries returns one rollup per family member, in profile order
func (s *TaskService) Summaries() []ProfileTaskSummary {
	profiles := s.storage.Profiles()
	tasks := s.storage.Tasks()

	out := make([]ProfileTaskSummary, len(profiles))
	for i, p := range profiles {
		sum := ProfileTaskSummary{Profile: p}
		for _, t := range tasks {
			if t.AssignedTo != p.ID {
				continue
			}
			if t.Completed {
				sum.Completed++
				sum.Points += t.Points
			} else {
				sum.Pending++
			}
		}
		out[i] = sum
	}
	return out
}

// FormatTaskList renders a plain-text chore list for log output or simple
// text surfaces
func (s *TaskService) FormatTaskList(tasks []domain.Task) string {
	if len(tasks) == 0 {
		return "No tasks"
	}

	var sb strings.Builder
	for _, t := range tasks {
		sb.WriteString(fmt.Sprintf("%s %s", t.StatusGlyph(), t.Title))
		if t.Points > 0 {
			sb.WriteString(fmt.Sprintf(" (%d pts)", t.Points))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
