package domain

import "time"

// PollOption is a single answer with the set of profiles that chose it
type PollOption struct {
	ID    string
	Text  string
	Votes []string // Profile IDs, each distinct
}

// Poll represents a single-choice family vote posted to the feed
type Poll struct {
	ID        string
	Question  string
	Options   []PollOption
	CreatedBy string // Profile ID
	CreatedAt time.Time
	ExpiresAt *time.Time // nil for open-ended polls
	IsActive  bool       // one-way transition to false via close
}

// TotalVotes returns the vote count summed over all options
func (p *Poll) TotalVotes() int {
	total := 0
	for _, opt := range p.Options {
		total += len(opt.Votes)
	}
	return total
}

// VotedOption returns the id of the option the profile voted for,
// or "" if it has not voted on this poll
func (p *Poll) VotedOption(profileID string) string {
	for _, opt := range p.Options {
		for _, v := range opt.Votes {
			if v == profileID {
				return opt.ID
			}
		}
	}
	return ""
}

// HasVoted returns true if the profile holds a vote on any option
func (p *Poll) HasVoted(profileID string) bool {
	return p.VotedOption(profileID) != ""
}

// IsExpired returns true if the poll has an expiry in the past
func (p *Poll) IsExpired(now time.Time) bool {
	return p.ExpiresAt != nil && p.ExpiresAt.Before(now)
}
