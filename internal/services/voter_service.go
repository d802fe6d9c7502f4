package services

import (
	"context"
	"errors"
	"fmt"

	"thumbs_up/internal/db/models"
	"thumbs_up/internal/db/repositories"

	"go.uber.org/zap"
)

var ErrMissingVoter = errors.New("vote requires a voter")

type CountFilter string

const (
	CountAll  CountFilter = "all"
	CountUp   CountFilter = "up"
	CountDown CountFilter = "down"
)

type voterService struct {
	votes  repositories.VoteRepository
	mode   CountingMode
	logger *zap.SugaredLogger
}

// VoterService holds the operations of an entity that casts votes.
type VoterService interface {
	Vote(ctx context.Context, voter, voteable models.Entity, direction models.Direction, importance models.Importance) (*models.Vote, error)
	VoteFor(ctx context.Context, voter, voteable models.Entity, importance models.Importance) (*models.Vote, error)
	VoteAgainst(ctx context.Context, voter, voteable models.Entity) (*models.Vote, error)
	VoteExclusivelyFor(ctx context.Context, voter, voteable models.Entity, importance models.Importance) (*models.Vote, error)
	VoteExclusivelyAgainst(ctx context.Context, voter, voteable models.Entity) (*models.Vote, error)
	UnvoteFor(ctx context.Context, voter, voteable models.Entity) error
	ClearVotes(ctx context.Context, voter, voteable models.Entity) error

	VotedOn(ctx context.Context, voter, voteable models.Entity) (bool, error)
	VotedFor(ctx context.Context, voter, voteable models.Entity) (bool, error)
	VotedAgainst(ctx context.Context, voter, voteable models.Entity) (bool, error)
	VotedWhichWay(ctx context.Context, voter, voteable models.Entity, direction models.Direction) (bool, error)
	VotedValue(ctx context.Context, voter, voteable models.Entity, weight int) (bool, error)
	VotedSkip(ctx context.Context, voter, voteable models.Entity) (bool, error)
	VotedLow(ctx context.Context, voter, voteable models.Entity) (bool, error)
	VotedMedium(ctx context.Context, voter, voteable models.Entity) (bool, error)
	VotedHigh(ctx context.Context, voter, voteable models.Entity) (bool, error)
	VoteCount(ctx context.Context, voter models.Entity, filter CountFilter) (int, error)

	TweetFor(ctx context.Context, voter, voteable models.Entity) (*models.Vote, error)
	Tweeted(ctx context.Context, voter, voteable models.Entity) (int, bool, error)

	DeleteVotes(ctx context.Context, voter models.Entity) (int, error)
}

func NewVoterService(votes repositories.VoteRepository, mode CountingMode, logger *zap.SugaredLogger) VoterService {
	return &voterService{
		votes:  votes,
		mode:   mode,
		logger: logger,
	}
}

// Vote inserts a new vote. With unique voting enabled a second vote on the
// same voteable fails with repositories.ErrDuplicateVote.
func (s *voterService) Vote(
	ctx context.Context,
	voter, voteable models.Entity,
	direction models.Direction,
	importance models.Importance,
) (*models.Vote, error) {
	return s.vote(ctx, voter, voteable, direction, importance, false)
}

func (s *voterService) VoteFor(ctx context.Context, voter, voteable models.Entity, importance models.Importance) (*models.Vote, error) {
	return s.vote(ctx, voter, voteable, models.DirectionUp, importance, false)
}

// VoteAgainst always records the against weight.
func (s *voterService) VoteAgainst(ctx context.Context, voter, voteable models.Entity) (*models.Vote, error) {
	return s.vote(ctx, voter, voteable, models.DirectionDown, models.ImportanceAgainst, false)
}

func (s *voterService) VoteExclusivelyFor(ctx context.Context, voter, voteable models.Entity, importance models.Importance) (*models.Vote, error) {
	return s.vote(ctx, voter, voteable, models.DirectionUp, importance, true)
}

func (s *voterService) VoteExclusivelyAgainst(ctx context.Context, voter, voteable models.Entity) (*models.Vote, error) {
	return s.vote(ctx, voter, voteable, models.DirectionDown, models.ImportanceAgainst, true)
}

func (s *voterService) vote(
	ctx context.Context,
	voter, voteable models.Entity,
	direction models.Direction,
	importance models.Importance,
	exclusive bool,
) (*models.Vote, error) {
	if err := direction.Validate(); err != nil {
		return nil, err
	}
	if voteable == nil {
		return nil, repositories.ErrMissingVoteable
	}
	if voter == nil {
		return nil, ErrMissingVoter
	}

	request := models.NewVote(voter, voteable, direction, importance.Weight())

	var (
		vote *models.Vote
		err  error
	)
	if exclusive {
		vote, err = s.votes.Replace(ctx, request)
	} else {
		vote, err = s.votes.Create(ctx, request)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Debugw("vote cast",
		"voter", models.RefOf(voter).String(),
		"voteable", models.RefOf(voteable).String(),
		"direction", direction,
		"value", vote.Value,
		"exclusive", exclusive,
	)

	return vote, nil
}

// UnvoteFor removes every vote of voter on voteable. Removing nothing is not an error.
func (s *voterService) UnvoteFor(ctx context.Context, voter, voteable models.Entity) error {
	deleted, err := s.votes.Delete(ctx, repositories.ByPair(voter, voteable))
	if err != nil {
		return err
	}

	s.logger.Debugw("votes cleared",
		"voter", models.RefOf(voter).String(),
		"voteable", models.RefOf(voteable).String(),
		"deleted", deleted,
	)

	return nil
}

func (s *voterService) ClearVotes(ctx context.Context, voter, voteable models.Entity) error {
	return s.UnvoteFor(ctx, voter, voteable)
}

func (s *voterService) VotedOn(ctx context.Context, voter, voteable models.Entity) (bool, error) {
	return s.exists(ctx, repositories.ByPair(voter, voteable))
}

func (s *voterService) VotedFor(ctx context.Context, voter, voteable models.Entity) (bool, error) {
	return s.votedDirection(ctx, voter, voteable, models.DirectionUp)
}

func (s *voterService) VotedAgainst(ctx context.Context, voter, voteable models.Entity) (bool, error) {
	return s.votedDirection(ctx, voter, voteable, models.DirectionDown)
}

func (s *voterService) votedDirection(ctx context.Context, voter, voteable models.Entity, direction models.Direction) (bool, error) {
	if s.mode.skipAware() {
		skipped, err := s.VotedSkip(ctx, voter, voteable)
		if err != nil || skipped {
			return false, err
		}
	}
	return s.VotedWhichWay(ctx, voter, voteable, direction)
}

func (s *voterService) VotedWhichWay(ctx context.Context, voter, voteable models.Entity, direction models.Direction) (bool, error) {
	if err := direction.Validate(); err != nil {
		return false, err
	}
	return s.exists(ctx, repositories.ByPair(voter, voteable).WithDirection(direction))
}

func (s *voterService) VotedValue(ctx context.Context, voter, voteable models.Entity, weight int) (bool, error) {
	return s.exists(ctx, repositories.ByPair(voter, voteable).WithValue(weight))
}

func (s *voterService) VotedSkip(ctx context.Context, voter, voteable models.Entity) (bool, error) {
	return s.VotedValue(ctx, voter, voteable, models.WeightSkip)
}

func (s *voterService) VotedLow(ctx context.Context, voter, voteable models.Entity) (bool, error) {
	return s.votedForWithWeight(ctx, voter, voteable, models.WeightLow)
}

func (s *voterService) VotedMedium(ctx context.Context, voter, voteable models.Entity) (bool, error) {
	return s.votedForWithWeight(ctx, voter, voteable, models.WeightMedium)
}

func (s *voterService) VotedHigh(ctx context.Context, voter, voteable models.Entity) (bool, error) {
	return s.votedForWithWeight(ctx, voter, voteable, models.WeightHigh)
}

func (s *voterService) votedForWithWeight(ctx context.Context, voter, voteable models.Entity, weight int) (bool, error) {
	votedFor, err := s.VotedFor(ctx, voter, voteable)
	if err != nil || !votedFor {
		return false, err
	}
	return s.VotedValue(ctx, voter, voteable, weight)
}

func (s *voterService) VoteCount(ctx context.Context, voter models.Entity, filter CountFilter) (int, error) {
	f := repositories.ByVoter(voter)

	switch filter {
	case CountAll, "":
	case CountUp:
		f = f.WithDirection(models.DirectionUp)
	case CountDown:
		f = f.WithDirection(models.DirectionDown)
	default:
		return 0, fmt.Errorf("%w, got count filter %q", models.ErrInvalidDirection, string(filter))
	}

	return s.votes.Count(ctx, f)
}

// TweetFor records one more announcement of voter's vote on voteable. When
// there is no vote yet a skip vote is cast first to carry the counter.
func (s *voterService) TweetFor(ctx context.Context, voter, voteable models.Entity) (*models.Vote, error) {
	pair := repositories.ByPair(voter, voteable)

	voted, err := s.exists(ctx, pair)
	if err != nil {
		return nil, err
	}

	if !voted {
		if _, err = s.VoteExclusivelyFor(ctx, voter, voteable, models.ImportanceSkip); err != nil {
			return nil, err
		}
	}

	vote, err := s.votes.GetOne(ctx, pair)
	if err != nil {
		return nil, err
	}

	return s.votes.IncrementTweeted(ctx, vote.ID)
}

// Tweeted returns the announcement count of voter's vote on voteable; ok is
// false when there is no such vote.
func (s *voterService) Tweeted(ctx context.Context, voter, voteable models.Entity) (int, bool, error) {
	vote, err := s.votes.GetOne(ctx, repositories.ByPair(voter, voteable))
	if errors.Is(err, repositories.ErrVoteNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return vote.Tweeted, true, nil
}

// DeleteVotes removes the votes cast by voter. Call it when the voter itself is deleted.
func (s *voterService) DeleteVotes(ctx context.Context, voter models.Entity) (int, error) {
	deleted, err := s.votes.Delete(ctx, repositories.ByVoter(voter))
	if err != nil {
		return 0, err
	}

	s.logger.Infow("voter votes deleted", "voter", models.RefOf(voter).String(), "deleted", deleted)
	return deleted, nil
}

func (s *voterService) exists(ctx context.Context, filter repositories.VoteFilter) (bool, error) {
	count, err := s.votes.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
