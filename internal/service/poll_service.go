package service

import (
	"log"
	"math"
	"time"

	"github.com/tazhate/familyhub/internal/domain"
	"github.com/tazhate/familyhub/internal/storage"
)

// OptionResult is the aggregate for one poll option
type OptionResult struct {
	Option  domain.PollOption
	Count   int
	Percent int // rounded; 0 when the poll has no votes at all
}

// PollService exposes read-only poll aggregates plus the expiry sweep.
// Voting and closing themselves are store operations.
type PollService struct {
	storage *storage.Storage
}

func NewPollService(s *storage.Storage) *PollService {
	return &PollService{storage: s}
}

// Results returns per-option counts and rounded percentages for a poll.
// A poll with zero votes yields 0% for every option.
func (s *PollService) Results(pollID string) ([]OptionResult, bool) {
	poll, ok := s.storage.PollByID(pollID)
	if !ok {
		return nil, false
	}

	total := poll.TotalVotes()
	results := make([]OptionResult, len(poll.Options))
	for i, opt := range poll.Options {
		r := OptionResult{Option: opt, Count: len(opt.Votes)}
		if total > 0 {
			r.Percent = int(math.Round(float64(len(opt.Votes)) / float64(total) * 100))
		}
		results[i] = r
	}
	return results, true
}

// TotalVotes returns the vote count across all options of a poll
func (s *PollService) TotalVotes(pollID string) int {
	poll, ok := s.storage.PollByID(pollID)
	if !ok {
		return 0
	}
	return poll.TotalVotes()
}

// ActiveProfileVoted returns true if the session's acting profile holds a
// vote on the poll. False when no profile is active.
func (s *PollService) ActiveProfileVoted(pollID string) bool {
	profile, ok := s.storage.ActiveProfile()
	if !ok {
		return false
	}
	poll, ok := s.storage.PollByID(pollID)
	if !ok {
		return false
	}
	return poll.HasVoted(profile.ID)
}

// CloseExpired closes every active poll whose expiry has passed and returns
// how many were closed. Run periodically by the scheduler.
func (s *PollService) CloseExpired(now time.Time) int {
	closed := 0
	for _, poll := range s.storage.Polls() {
		if poll.IsActive && poll.IsExpired(now) {
			if s.storage.ClosePoll(poll.ID) {
				closed++
			}
		}
	}
	if closed > 0 {
		log.Printf("Closed %d expired poll(s)", closed)
	}
	return closed
}
