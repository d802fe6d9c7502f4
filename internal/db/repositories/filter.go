package repositories

import (
	"time"

	"thumbs_up/internal/db/models"

	"github.com/go-pg/pg/v10"
)

// VoteFilter selects vote rows. Zero-valued fields do not restrict the match.
type VoteFilter struct {
	Voter         *models.Reference
	Voteable      *models.Reference
	Direction     models.Direction
	Value         *int
	TweetedOnly   bool
	CreatedAfter  time.Time
	CreatedBefore time.Time
}

func ByVoter(voter models.Entity) VoteFilter {
	return VoteFilter{}.WithVoter(voter)
}

func ByVoteable(voteable models.Entity) VoteFilter {
	return VoteFilter{}.WithVoteable(voteable)
}

func ByPair(voter, voteable models.Entity) VoteFilter {
	return VoteFilter{}.WithVoter(voter).WithVoteable(voteable)
}

func (f VoteFilter) WithVoter(voter models.Entity) VoteFilter {
	ref := models.RefOf(voter)
	f.Voter = &ref
	return f
}

func (f VoteFilter) WithVoteable(voteable models.Entity) VoteFilter {
	ref := models.RefOf(voteable)
	f.Voteable = &ref
	return f
}

func (f VoteFilter) WithDirection(direction models.Direction) VoteFilter {
	f.Direction = direction
	return f
}

func (f VoteFilter) WithValue(value int) VoteFilter {
	f.Value = &value
	return f
}

func (f VoteFilter) Tweeted() VoteFilter {
	f.TweetedOnly = true
	return f
}

func (f VoteFilter) Between(after, before time.Time) VoteFilter {
	f.CreatedAfter, f.CreatedBefore = after, before
	return f
}

// Matches evaluates the filter against a single row.
func (f VoteFilter) Matches(vote *models.Vote) bool {
	if f.Voter != nil && (vote.VoterID != f.Voter.ID || vote.VoterType != f.Voter.Kind) {
		return false
	}
	if f.Voteable != nil && (vote.VoteableID != f.Voteable.ID || vote.VoteableType != f.Voteable.Kind) {
		return false
	}
	if f.Direction != "" && vote.Vote != f.Direction.IsUp() {
		return false
	}
	if f.Value != nil && vote.Value != *f.Value {
		return false
	}
	if f.TweetedOnly && vote.Tweeted == 0 {
		return false
	}
	if !f.CreatedAfter.IsZero() && !vote.CreatedAt.After(f.CreatedAfter) {
		return false
	}
	if !f.CreatedBefore.IsZero() && !vote.CreatedAt.Before(f.CreatedBefore) {
		return false
	}
	return true
}

// apply adds the filter to q; table is the SQL name or alias of the votes relation.
func (f VoteFilter) apply(q *pg.Query, table string) *pg.Query {
	if f.Voter != nil {
		q = q.Where(table+".voter_id = ?", f.Voter.ID).
			Where(table+".voter_type = ?", f.Voter.Kind)
	}
	if f.Voteable != nil {
		q = q.Where(table+".voteable_id = ?", f.Voteable.ID).
			Where(table+".voteable_type = ?", f.Voteable.Kind)
	}
	if f.Direction != "" {
		q = q.Where(table+".vote = ?", f.Direction.IsUp())
	}
	if f.Value != nil {
		q = q.Where(table+".value = ?", *f.Value)
	}
	if f.TweetedOnly {
		q = q.Where(table + ".tweeted <> 0")
	}
	if !f.CreatedAfter.IsZero() {
		q = q.Where(table+".created_at > ?", f.CreatedAfter)
	}
	if !f.CreatedBefore.IsZero() {
		q = q.Where(table+".created_at < ?", f.CreatedBefore)
	}
	return q
}
