package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tazhate/familyhub/internal/domain"
)

// Storage is the single source of truth for all family collections plus the
// session cursors (active profile, selected date). All mutations go through
// it; the query services only ever see snapshot copies.
//
// Every operation takes the mutex, so the vote-exclusivity and id-uniqueness
// invariants hold under concurrent callers.
type Storage struct {
	mu sync.RWMutex

	profiles []domain.Profile
	events   []domain.Event
	tasks    []domain.Task
	messages []domain.Message
	polls    []domain.Poll
	meals    []domain.Meal

	activeProfile *domain.Profile
	selectedDate  time.Time

	now   func() time.Time
	newID func() string
}

func New() *Storage {
	return &Storage{
		selectedDate: time.Now(),
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// Cursors

// SetActiveProfile sets the session's acting-user cursor. The profile is not
// checked against the current member list; a stale value simply never
// resolves at query sites.
func (s *Storage) SetActiveProfile(p domain.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeProfile = &p
}

// ActiveProfile returns the acting-user cursor, ok=false if none is set
func (s *Storage) ActiveProfile() (domain.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.activeProfile == nil {
		return domain.Profile{}, false
	}
	return *s.activeProfile, true
}

// SetSelectedDate sets the calendar reference date
func (s *Storage) SetSelectedDate(d time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedDate = d
}

// SelectedDate returns the calendar reference date
func (s *Storage) SelectedDate() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedDate
}

// Profiles

// AddProfile assigns a fresh id and appends the profile
func (s *Storage) AddProfile(p domain.Profile) domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.newID()
	s.profiles = append(s.profiles, p)
	return p
}

// Profiles returns a snapshot of all family members
func (s *Storage) Profiles() []domain.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Profile, len(s.profiles))
	copy(out, s.profiles)
	return out
}

// ProfileByID resolves a profile reference. ok=false is the dangling-key
// case: callers fall back to default display values rather than failing.
func (s *Storage) ProfileByID(id string) (domain.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.profiles {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Profile{}, false
}

// Events

// AddEvent assigns a fresh id and appends the event
func (s *Storage) AddEvent(e domain.Event) domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.newID()
	s.events = append(s.events, e)
	return e
}

// UpdateEvent applies the patch to the event with the given id. Nil patch
// fields leave the stored value untouched. ok=false if the id is unknown.
func (s *Storage) UpdateEvent(id string, patch EventPatch) (domain.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID == id {
			patch.apply(&s.events[i])
			return s.events[i], true
		}
	}
	return domain.Event{}, false
}

// DeleteEvent removes the event by id, reporting whether it existed
func (s *Storage) DeleteEvent(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return true
		}
	}
	return false
}

// Events returns a snapshot of all events in insertion order
func (s *Storage) Events() []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Tasks

// AddTask assigns a fresh id and appends the task
func (s *Storage) AddTask(t domain.Task) domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.newID()
	s.tasks = append(s.tasks, t)
	return t
}

// UpdateTask applies the patch to the task with the given id
func (s *Storage) UpdateTask(id string, patch TaskPatch) (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			patch.apply(&s.tasks[i])
			return s.tasks[i], true
		}
	}
	return domain.Task{}, false
}

// DeleteTask removes the task by id, reporting whether it existed
func (s *Storage) DeleteTask(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// ToggleTaskCompletion flips the completed flag. Applying it twice restores
// the original value. ok=false if the id is unknown.
func (s *Storage) ToggleTaskCompletion(id string) (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			return s.tasks[i], true
		}
	}
	return domain.Task{}, false
}

// Tasks returns a snapshot of all tasks in insertion order
func (s *Storage) Tasks() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Messages

// AddMessage assigns id and timestamp and prepends the message, so the feed
// reads most-recent-first without a sort key
func (s *Storage) AddMessage(m domain.Message) domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.newID()
	m.Timestamp = s.now()
	s.messages = append([]domain.Message{m}, s.messages...)
	return m
}

// DeleteMessage removes the message by id, reporting whether it existed
func (s *Storage) DeleteMessage(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return true
		}
	}
	return false
}

// Messages returns a snapshot of the feed, most recent first
func (s *Storage) Messages() []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Polls

// AddPoll assigns the poll id, fills in blank option ids, stamps CreatedAt
// and forces IsActive regardless of caller input, then prepends to the list
func (s *Storage) AddPoll(p domain.Poll) domain.Poll {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.newID()
	p.CreatedAt = s.now()
	p.IsActive = true
	opts := make([]domain.PollOption, len(p.Options))
	for i, opt := range p.Options {
		if opt.ID == "" {
			opt.ID = s.newID()
		}
		opt.Votes = append([]string(nil), opt.Votes...)
		opts[i] = opt
	}
	p.Options = opts
	s.polls = append([]domain.Poll{p}, s.polls...)
	return clonePoll(p)
}

// VotePoll records a single-choice vote: the profile is removed from every
// option of the poll, then appended to the target option. Re-voting moves
// the vote; voting on an unknown option id just retracts it. Inactive or
// unknown polls are a no-op.
func (s *Storage) VotePoll(pollID, optionID, profileID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.polls {
		if s.polls[i].ID != pollID {
			continue
		}
		if !s.polls[i].IsActive {
			return false
		}
		for j := range s.polls[i].Options {
			opt := &s.polls[i].Options[j]
			opt.Votes = removeVote(opt.Votes, profileID)
			if opt.ID == optionID {
				opt.Votes = append(opt.Votes, profileID)
			}
		}
		return true
	}
	return false
}

// ClosePoll sets IsActive to false. Closing an already closed poll changes
// nothing.
func (s *Storage) ClosePoll(pollID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.polls {
		if s.polls[i].ID == pollID {
			s.polls[i].IsActive = false
			return true
		}
	}
	return false
}

// Polls returns a deep snapshot of all polls, most recent first
func (s *Storage) Polls() []domain.Poll {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Poll, len(s.polls))
	for i, p := range s.polls {
		out[i] = clonePoll(p)
	}
	return out
}

// PollByID returns a deep copy of one poll
func (s *Storage) PollByID(id string) (domain.Poll, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.polls {
		if p.ID == id {
			return clonePoll(p), true
		}
	}
	return domain.Poll{}, false
}

// Meals

// AddMeal assigns a fresh id and appends the planned meal
func (s *Storage) AddMeal(m domain.Meal) domain.Meal {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.newID()
	s.meals = append(s.meals, m)
	return m
}

// UpdateMeal applies the patch to the meal with the given id
func (s *Storage) UpdateMeal(id string, patch MealPatch) (domain.Meal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.meals {
		if s.meals[i].ID == id {
			patch.apply(&s.meals[i])
			return s.meals[i], true
		}
	}
	return domain.Meal{}, false
}

// DeleteMeal removes the meal by id, reporting whether it existed
func (s *Storage) DeleteMeal(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.meals {
		if s.meals[i].ID == id {
			s.meals = append(s.meals[:i], s.meals[i+1:]...)
			return true
		}
	}
	return false
}

// Meals returns a snapshot of all planned meals in insertion order
func (s *Storage) Meals() []domain.Meal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Meal, len(s.meals))
	copy(out, s.meals)
	return out
}

// MealsForDay returns the meals planned for the given calendar date
func (s *Storage) MealsForDay(day time.Time) []domain.Meal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Meal
	for _, m := range s.meals {
		if m.OnDay(day) {
			out = append(out, m)
		}
	}
	return out
}

func removeVote(votes []string, profileID string) []string {
	out := votes[:0]
	for _, v := range votes {
		if v != profileID {
			out = append(out, v)
		}
	}
	return out
}

func clonePoll(p domain.Poll) domain.Poll {
	opts := make([]domain.PollOption, len(p.Options))
	for i, opt := range p.Options {
		opt.Votes = append([]string(nil), opt.Votes...)
		opts[i] = opt
	}
	p.Options = opts
	return p
}
