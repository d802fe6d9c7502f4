package services

import (
	"context"

	"thumbs_up/internal/db/models"
	"thumbs_up/internal/db/repositories"
	"thumbs_up/internal/registry"

	"go.uber.org/zap"
)

// plusminusTallier is implemented by entities loaded through a plusminus tally.
type plusminusTallier interface {
	PlusminusTally() int
}

type voteableService struct {
	votes    repositories.VoteRepository
	registry *registry.Registry
	mode     CountingMode
	logger   *zap.SugaredLogger
}

// VoteableService holds the scoring operations of an entity that receives votes.
type VoteableService interface {
	VotesFor(ctx context.Context, voteable models.Entity) (int, error)
	VotesAgainst(ctx context.Context, voteable models.Entity) (int, error)
	VotesCount(ctx context.Context, voteable models.Entity) (int, error)
	VotesSkipped(ctx context.Context, voteable models.Entity) (int, error)
	VotesHigh(ctx context.Context, voteable models.Entity) (int, error)
	VotesMedium(ctx context.Context, voteable models.Entity) (int, error)
	VotesLow(ctx context.Context, voteable models.Entity) (int, error)
	TweetsFor(ctx context.Context, voteable models.Entity) (int, error)

	PercentFor(ctx context.Context, voteable models.Entity) (int, error)
	PercentAgainst(ctx context.Context, voteable models.Entity) (int, error)
	PercentHigh(ctx context.Context, voteable models.Entity) (int, error)
	Plusminus(ctx context.Context, voteable models.Entity) (int, error)
	CIPlusminus(ctx context.Context, voteable models.Entity, confidence float64) (float64, error)

	VotersWhoVoted(ctx context.Context, voteable models.Entity) ([]models.Entity, error)
	VotedBy(ctx context.Context, voteable, voter models.Entity) (bool, error)
	TweetedBy(ctx context.Context, voteable, voter models.Entity) (int, error)
	Karma(ctx context.Context, owned []models.Entity) (int, error)

	Tally(kind string) (*repositories.TallyQuery, error)
	PlusminusTally(kind string, separateUpDown bool) (*repositories.TallyQuery, error)
	RunTally(ctx context.Context, query *repositories.TallyQuery) ([]repositories.TallyRow, error)

	DeleteVotes(ctx context.Context, voteable models.Entity) (int, error)
}

func NewVoteableService(
	votes repositories.VoteRepository,
	registry *registry.Registry,
	mode CountingMode,
	logger *zap.SugaredLogger,
) VoteableService {
	return &voteableService{
		votes:    votes,
		registry: registry,
		mode:     mode,
		logger:   logger,
	}
}

func (s *voteableService) VotesFor(ctx context.Context, voteable models.Entity) (int, error) {
	return s.directional(ctx, voteable, models.DirectionUp)
}

func (s *voteableService) VotesAgainst(ctx context.Context, voteable models.Entity) (int, error) {
	return s.directional(ctx, voteable, models.DirectionDown)
}

func (s *voteableService) directional(ctx context.Context, voteable models.Entity, direction models.Direction) (int, error) {
	filter := repositories.ByVoteable(voteable).WithDirection(direction)

	count, err := s.votes.Count(ctx, filter)
	if err != nil || !s.mode.skipAware() {
		return count, err
	}

	skipped, err := s.votes.Count(ctx, filter.WithValue(models.WeightSkip))
	if err != nil {
		return 0, err
	}

	return count - skipped, nil
}

func (s *voteableService) VotesCount(ctx context.Context, voteable models.Entity) (int, error) {
	votesFor, votesAgainst, err := s.forAndAgainst(ctx, voteable)
	if err != nil {
		return 0, err
	}
	return votesFor + votesAgainst, nil
}

func (s *voteableService) VotesSkipped(ctx context.Context, voteable models.Entity) (int, error) {
	return s.votes.Count(ctx, repositories.ByVoteable(voteable).WithValue(models.WeightSkip))
}

func (s *voteableService) VotesHigh(ctx context.Context, voteable models.Entity) (int, error) {
	return s.weighted(ctx, voteable, models.WeightHigh)
}

func (s *voteableService) VotesMedium(ctx context.Context, voteable models.Entity) (int, error) {
	return s.weighted(ctx, voteable, models.WeightMedium)
}

func (s *voteableService) VotesLow(ctx context.Context, voteable models.Entity) (int, error) {
	return s.weighted(ctx, voteable, models.WeightLow)
}

func (s *voteableService) weighted(ctx context.Context, voteable models.Entity, weight int) (int, error) {
	return s.votes.Count(ctx, repositories.ByVoteable(voteable).
		WithDirection(models.DirectionUp).
		WithValue(weight))
}

// TweetsFor counts the votes on voteable that were announced at least once.
func (s *voteableService) TweetsFor(ctx context.Context, voteable models.Entity) (int, error) {
	return s.votes.Count(ctx, repositories.ByVoteable(voteable).Tweeted())
}

func (s *voteableService) PercentFor(ctx context.Context, voteable models.Entity) (int, error) {
	votesFor, votesAgainst, err := s.forAndAgainst(ctx, voteable)
	if err != nil {
		return 0, err
	}
	return percent(votesFor, votesFor+votesAgainst), nil
}

func (s *voteableService) PercentAgainst(ctx context.Context, voteable models.Entity) (int, error) {
	votesFor, votesAgainst, err := s.forAndAgainst(ctx, voteable)
	if err != nil {
		return 0, err
	}
	return percent(votesAgainst, votesFor+votesAgainst), nil
}

func (s *voteableService) PercentHigh(ctx context.Context, voteable models.Entity) (int, error) {
	high, err := s.VotesHigh(ctx, voteable)
	if err != nil {
		return 0, err
	}

	total, err := s.VotesCount(ctx, voteable)
	if err != nil {
		return 0, err
	}

	return percent(high, total), nil
}

// Plusminus is votes_for minus votes_against. A voteable that came out of
// a plusminus tally already carries the value and is not recounted.
func (s *voteableService) Plusminus(ctx context.Context, voteable models.Entity) (int, error) {
	if tallied, ok := voteable.(plusminusTallier); ok {
		return tallied.PlusminusTally(), nil
	}

	votesFor, votesAgainst, err := s.forAndAgainst(ctx, voteable)
	if err != nil {
		return 0, err
	}
	return votesFor - votesAgainst, nil
}

// CIPlusminus is the Wilson score lower bound of the share of votes for
// voteable. It is 0 when nobody voted.
func (s *voteableService) CIPlusminus(ctx context.Context, voteable models.Entity, confidence float64) (float64, error) {
	votesFor, votesAgainst, err := s.forAndAgainst(ctx, voteable)
	if err != nil {
		return 0, err
	}
	return WilsonLowerBound(votesFor, votesFor+votesAgainst, confidence)
}

func (s *voteableService) VotersWhoVoted(ctx context.Context, voteable models.Entity) ([]models.Entity, error) {
	votes, err := s.votes.GetMany(ctx, repositories.ByVoteable(voteable))
	if err != nil {
		return nil, err
	}

	refs := make([]models.Reference, 0, len(votes))
	for _, vote := range votes {
		if voter, ok := vote.Voter(); ok {
			refs = append(refs, voter)
		}
	}

	return s.registry.Resolve(ctx, refs)
}

func (s *voteableService) VotedBy(ctx context.Context, voteable, voter models.Entity) (bool, error) {
	count, err := s.votes.Count(ctx, repositories.ByPair(voter, voteable))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// TweetedBy returns how often voter announced their vote on voteable, 0 without a vote.
func (s *voteableService) TweetedBy(ctx context.Context, voteable, voter models.Entity) (int, error) {
	votes, err := s.votes.GetMany(ctx, repositories.ByPair(voter, voteable))
	if err != nil || len(votes) == 0 {
		return 0, err
	}
	return votes[0].Tweeted, nil
}

// Karma sums votes_for over the voteables an owner created.
func (s *voteableService) Karma(ctx context.Context, owned []models.Entity) (int, error) {
	karma := 0
	for _, voteable := range owned {
		votesFor, err := s.VotesFor(ctx, voteable)
		if err != nil {
			return 0, err
		}
		karma += votesFor
	}
	return karma, nil
}

// Tally counts the votes of every entity of kind, including the ones nobody
// voted on, ordered by vote_count descending.
func (s *voteableService) Tally(kind string) (*repositories.TallyQuery, error) {
	k, err := s.registry.Lookup(kind)
	if err != nil {
		return nil, err
	}

	query := repositories.NewTallyQuery(k.Name, k.Table)
	query.SkipAware = s.mode.skipAware()
	return query, nil
}

// PlusminusTally is Tally ordered by plusminus_tally descending. With
// separateUpDown the up and down columns are filled in as well.
func (s *voteableService) PlusminusTally(kind string, separateUpDown bool) (*repositories.TallyQuery, error) {
	query, err := s.Tally(kind)
	if err != nil {
		return nil, err
	}

	query.Reorder(repositories.TallyColumnPlusminus, true)
	if separateUpDown {
		query.WithUpDown()
	}
	return query, nil
}

func (s *voteableService) RunTally(ctx context.Context, query *repositories.TallyQuery) ([]repositories.TallyRow, error) {
	rows, err := s.votes.Tally(ctx, query)
	if err != nil {
		return nil, err
	}

	s.logger.Debugw("tally computed", "kind", query.Kind, "rows", len(rows))
	return rows, nil
}

// DeleteVotes removes the votes cast on voteable. Call it when the voteable itself is deleted.
func (s *voteableService) DeleteVotes(ctx context.Context, voteable models.Entity) (int, error) {
	deleted, err := s.votes.Delete(ctx, repositories.ByVoteable(voteable))
	if err != nil {
		return 0, err
	}

	s.logger.Infow("voteable votes deleted", "voteable", models.RefOf(voteable).String(), "deleted", deleted)
	return deleted, nil
}

func (s *voteableService) forAndAgainst(ctx context.Context, voteable models.Entity) (int, int, error) {
	votesFor, err := s.VotesFor(ctx, voteable)
	if err != nil {
		return 0, 0, err
	}

	votesAgainst, err := s.VotesAgainst(ctx, voteable)
	if err != nil {
		return 0, 0, err
	}

	return votesFor, votesAgainst, nil
}
