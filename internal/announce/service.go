package announce

import (
	"context"
	"fmt"
	"strings"
	"time"

	"thumbs_up/internal"
	"thumbs_up/internal/db/models"
	"thumbs_up/internal/db/repositories"
	"thumbs_up/internal/registry"
	"thumbs_up/internal/services"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type service struct {
	announcer Announcer
	voters    services.VoterService
	voteables services.VoteableService
	registry  *registry.Registry
	logger    *zap.SugaredLogger
}

// Service publishes votes and tallies and keeps the tweeted counters in step.
type Service interface {
	AnnounceVote(ctx context.Context, voter, voteable models.Entity) (*models.Vote, error)
	AnnounceDigest(ctx context.Context, kind string, from, to time.Time, size int) (int, error)
}

func NewService(
	announcer Announcer,
	voters services.VoterService,
	voteables services.VoteableService,
	registry *registry.Registry,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		announcer: announcer,
		voters:    voters,
		voteables: voteables,
		registry:  registry,
		logger:    logger,
	}
}

// AnnounceVote publishes voter's stance on voteable and then counts the
// announcement on the vote row. Nothing is counted if publishing fails.
func (s *service) AnnounceVote(ctx context.Context, voter, voteable models.Entity) (*models.Vote, error) {
	stance, err := s.stance(ctx, voter, voteable)
	if err != nil {
		return nil, err
	}

	labels, err := s.labels(ctx, []models.Reference{models.RefOf(voter), models.RefOf(voteable)})
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf("%s %s %s", labels[models.RefOf(voter)], stance, labels[models.RefOf(voteable)])
	if err := s.announcer.Announce(ctx, text); err != nil {
		s.logger.Errorw("failed to announce vote", "voter", models.RefOf(voter).String(), "error", err)
		return nil, err
	}

	vote, err := s.voters.TweetFor(ctx, voter, voteable)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("vote announced", "vote_id", vote.ID, "tweeted", vote.Tweeted)
	return vote, nil
}

func (s *service) stance(ctx context.Context, voter, voteable models.Entity) (string, error) {
	votedFor, err := s.voters.VotedFor(ctx, voter, voteable)
	if err != nil {
		return "", err
	}
	if votedFor {
		return "voted for", nil
	}

	votedAgainst, err := s.voters.VotedAgainst(ctx, voter, voteable)
	if err != nil {
		return "", err
	}
	if votedAgainst {
		return "voted against", nil
	}

	return "is following", nil
}

// AnnounceDigest publishes the best scored entities of kind that got votes
// between from and to. It returns how many entries were published.
func (s *service) AnnounceDigest(ctx context.Context, kind string, from, to time.Time, size int) (int, error) {
	query, err := s.voteables.PlusminusTally(kind, true)
	if err != nil {
		return 0, err
	}

	query.CreatedAfter(from).CreatedBefore(to).HavingVoteCountAbove(0).Limit(size)

	rows, err := s.voteables.RunTally(ctx, query)
	if err != nil {
		return 0, err
	}

	if len(rows) == 0 {
		s.logger.Infow("nothing to announce", "kind", kind)
		return 0, nil
	}

	refs := make([]models.Reference, 0, len(rows))
	for _, row := range rows {
		refs = append(refs, models.RefOf(row))
	}

	labels, err := s.labels(ctx, refs)
	if err != nil {
		return 0, err
	}

	if err := s.announcer.Announce(ctx, FormatDigest(kind, from, to, rows, labels)); err != nil {
		s.logger.Errorw("failed to announce digest", "kind", kind, "error", err)
		return 0, err
	}

	return len(rows), nil
}

// FormatDigest renders tally rows as a numbered leaderboard.
func FormatDigest(kind string, from, to time.Time, rows []repositories.TallyRow, labels map[models.Reference]string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s, %s\n", cases.Title(language.English).String(kind), internal.FormatPeriod(from, to))

	for i, row := range rows {
		label, ok := labels[models.RefOf(row)]
		if !ok {
			label = models.RefOf(row).String()
		}
		fmt.Fprintf(&b, "%d. %s %+d (%d up, %d down, %d votes)\n", i+1, label, row.Plusminus, row.Up, row.Down, row.VoteCount)
	}

	return strings.TrimRight(b.String(), "\n")
}

// labels names entities by their String method, falling back to kind#id.
func (s *service) labels(ctx context.Context, refs []models.Reference) (map[models.Reference]string, error) {
	entities, err := s.registry.Resolve(ctx, refs)
	if err != nil {
		return nil, err
	}

	labels := make(map[models.Reference]string, len(refs))
	for _, ref := range refs {
		labels[ref] = ref.String()
	}
	for _, entity := range entities {
		if named, ok := entity.(fmt.Stringer); ok {
			labels[models.RefOf(entity)] = named.String()
		}
	}
	return labels, nil
}
