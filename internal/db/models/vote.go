package models

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDirection = errors.New("direction must be up or down")

type (
	Direction  string
	Importance string
)

func (d Direction) String() string {
	return string(d)
}

func (i Importance) String() string {
	return string(i)
}

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"

	ImportanceHigh    Importance = "high"
	ImportanceMedium  Importance = "medium"
	ImportanceLow     Importance = "low"
	ImportanceAgainst Importance = "against"
	ImportanceSkip    Importance = "skip"
)

const (
	WeightHigh    = 100
	WeightMedium  = 10
	WeightLow     = 1
	WeightAgainst = -1
	WeightSkip    = 0
)

func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

func (d Direction) Validate() error {
	switch d {
	case DirectionUp, DirectionDown:
		return nil
	}
	return fmt.Errorf("%w, got %q", ErrInvalidDirection, string(d))
}

// IsUp reports the value stored in the boolean vote column.
func (d Direction) IsUp() bool {
	return d == DirectionUp
}

// Weight maps importance onto the stored value. Anything unknown counts as a skip.
func (i Importance) Weight() int {
	switch i {
	case ImportanceHigh:
		return WeightHigh
	case ImportanceMedium:
		return WeightMedium
	case ImportanceLow:
		return WeightLow
	case ImportanceAgainst:
		return WeightAgainst
	default:
		return WeightSkip
	}
}

type Vote struct {
	ID           int64     `json:"id" pg:",pk"`
	Vote         bool      `json:"vote" pg:",use_zero"`
	Value        int       `json:"value" pg:",use_zero"`
	Tweeted      int       `json:"tweeted" pg:",use_zero"`
	VoteableID   int64     `json:"voteable_id" pg:",notnull"`
	VoteableType string    `json:"voteable_type" pg:",notnull"`
	VoterID      int64     `json:"voter_id"`
	VoterType    string    `json:"voter_type"`
	CreatedAt    time.Time `json:"created_at" pg:"default:now()"`
	UpdatedAt    time.Time `json:"updated_at" pg:"default:now()"`
}

func NewVote(voter, voteable Entity, direction Direction, weight int) *Vote {
	vote := &Vote{
		Vote:  direction.IsUp(),
		Value: weight,
	}
	vote.SetVoteable(voteable)
	vote.SetVoter(voter)
	return vote
}

func (v *Vote) Direction() Direction {
	if v.Vote {
		return DirectionUp
	}
	return DirectionDown
}

func (v *Vote) SetVoter(voter Entity) {
	if voter == nil {
		v.VoterID, v.VoterType = 0, ""
		return
	}
	v.VoterID, v.VoterType = voter.EntityID(), voter.EntityKind()
}

func (v *Vote) SetVoteable(voteable Entity) {
	if voteable == nil {
		v.VoteableID, v.VoteableType = 0, ""
		return
	}
	v.VoteableID, v.VoteableType = voteable.EntityID(), voteable.EntityKind()
}

// Voter is absent for anonymous or system votes.
func (v *Vote) Voter() (Reference, bool) {
	if v.VoterType == "" {
		return Reference{}, false
	}
	return Reference{Kind: v.VoterType, ID: v.VoterID}, true
}

func (v *Vote) Voteable() Reference {
	return Reference{Kind: v.VoteableType, ID: v.VoteableID}
}

func (v *Vote) HasVoteable() bool {
	return v.VoteableType != "" && v.VoteableID != 0
}

func (v *Vote) IsSkip() bool {
	return v.Value == WeightSkip
}
