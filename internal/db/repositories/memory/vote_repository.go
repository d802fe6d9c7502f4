package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"thumbs_up/internal/db/models"
	"thumbs_up/internal/db/repositories"
)

type pairKey struct {
	voter    models.Reference
	voteable models.Reference
}

// Store keeps votes in process memory with the same semantics as the
// Postgres repository, including the optional one-vote-per-pair index.
type Store struct {
	mu sync.RWMutex

	uniqueVoting bool
	nextID       int64
	votes        map[int64]*models.Vote
	// entities lists the rows of each voteable table for outer-join tallies.
	entities map[string]map[int64]struct{}

	now func() time.Time
}

var _ repositories.VoteRepository = (*Store)(nil)

func NewStore(uniqueVoting bool) *Store {
	return &Store{
		uniqueVoting: uniqueVoting,
		votes:        make(map[int64]*models.Vote),
		entities:     make(map[string]map[int64]struct{}),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// AddEntities makes ids visible to tallies over table.
func (s *Store) AddEntities(table string, ids ...int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, ok := s.entities[table]
	if !ok {
		rows = make(map[int64]struct{})
		s.entities[table] = rows
	}
	for _, id := range ids {
		rows[id] = struct{}{}
	}
}

func (s *Store) RemoveEntity(table string, id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entities[table], id)
}

// SetCreatedAt backdates or postdates a vote, for tests of time-windowed tallies.
func (s *Store) SetCreatedAt(voteID int64, createdAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vote, ok := s.votes[voteID]
	if !ok {
		return fmt.Errorf("%w: id %d", repositories.ErrVoteNotFound, voteID)
	}
	vote.CreatedAt = createdAt
	return nil
}

func (s *Store) Create(_ context.Context, request *models.Vote) (*models.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insert(request)
}

func (s *Store) Replace(_ context.Context, request *models.Vote) (*models.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !request.HasVoteable() {
		return nil, repositories.ErrMissingVoteable
	}

	if voter, ok := request.Voter(); ok {
		filter := repositories.ByPair(voter, request.Voteable())
		for id, vote := range s.votes {
			if !filter.Matches(vote) {
				continue
			}
			if vote.Tweeted > request.Tweeted {
				request.Tweeted = vote.Tweeted
			}
			delete(s.votes, id)
		}
	}

	return s.insert(request)
}

func (s *Store) Delete(_ context.Context, filter repositories.VoteFilter) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := 0
	for id, vote := range s.votes {
		if filter.Matches(vote) {
			delete(s.votes, id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *Store) DeleteVotesOf(_ context.Context, entity models.Entity) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ref := models.RefOf(entity)
	deleted := 0
	for id, vote := range s.votes {
		voter, _ := vote.Voter()
		if voter == ref || vote.Voteable() == ref {
			delete(s.votes, id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *Store) Count(_ context.Context, filter repositories.VoteFilter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, vote := range s.votes {
		if filter.Matches(vote) {
			count++
		}
	}
	return count, nil
}

func (s *Store) GetOne(ctx context.Context, filter repositories.VoteFilter) (*models.Vote, error) {
	votes, err := s.GetMany(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(votes) == 0 {
		return nil, repositories.ErrVoteNotFound
	}
	return votes[0], nil
}

func (s *Store) GetMany(_ context.Context, filter repositories.VoteFilter) ([]*models.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	votes := make([]*models.Vote, 0)
	for _, vote := range s.votes {
		if filter.Matches(vote) {
			copied := *vote
			votes = append(votes, &copied)
		}
	}
	sort.Slice(votes, func(i, j int) bool { return votes[i].ID < votes[j].ID })
	return votes, nil
}

func (s *Store) IncrementTweeted(_ context.Context, voteID int64) (*models.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vote, ok := s.votes[voteID]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", repositories.ErrVoteNotFound, voteID)
	}
	vote.Tweeted++
	vote.UpdatedAt = s.now()

	copied := *vote
	return &copied, nil
}

func (s *Store) Tally(_ context.Context, query *repositories.TallyQuery) ([]repositories.TallyRow, error) {
	if query.Table == "" {
		return nil, errors.New("tally query requires a voteable table")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	joined := make(map[int64][]*models.Vote, len(s.entities[query.Table]))
	for id := range s.entities[query.Table] {
		joined[id] = nil
	}
	for _, vote := range s.votes {
		if vote.VoteableType != query.Kind {
			continue
		}
		if _, ok := joined[vote.VoteableID]; ok {
			joined[vote.VoteableID] = append(joined[vote.VoteableID], vote)
		}
	}

	rows := make([]repositories.TallyRow, 0, len(joined))
	for id, votes := range joined {
		row, ok := tallyGroup(query, id, votes)
		if !ok {
			continue
		}
		if query.VoteCountAbove != nil && row.VoteCount <= *query.VoteCountAbove {
			continue
		}
		rows = append(rows, row)
	}

	repositories.SortTallyRows(rows, query)
	return repositories.Page(rows, query), nil
}

// tallyGroup folds the joined rows of one entity. An entity without votes
// joins a single all-NULL row, which survives only an empty filter.
func tallyGroup(query *repositories.TallyQuery, id int64, votes []*models.Vote) (repositories.TallyRow, bool) {
	row := repositories.TallyRow{Kind: query.Kind, VoteableID: id}

	if len(votes) == 0 {
		return row, query.Filter == (repositories.VoteFilter{})
	}

	matched := false
	for _, vote := range votes {
		if !query.Filter.Matches(vote) {
			continue
		}
		matched = true
		row.VoteCount++

		if query.SkipAware && vote.IsSkip() {
			continue
		}
		if vote.Vote {
			row.Plusminus++
			if query.SeparateUpDown {
				row.Up++
			}
		} else {
			row.Plusminus--
			if query.SeparateUpDown {
				row.Down++
			}
		}
	}
	return row, matched
}

func (s *Store) insert(request *models.Vote) (*models.Vote, error) {
	if !request.HasVoteable() {
		return nil, repositories.ErrMissingVoteable
	}

	if s.uniqueVoting {
		if voter, ok := request.Voter(); ok {
			key := pairKey{voter: voter, voteable: request.Voteable()}
			for _, vote := range s.votes {
				existing, _ := vote.Voter()
				if (pairKey{voter: existing, voteable: vote.Voteable()}) == key {
					return nil, fmt.Errorf("%w: %s on %s", repositories.ErrDuplicateVote, voter, key.voteable)
				}
			}
		}
	}

	now := s.now()
	s.nextID++

	vote := *request
	vote.ID = s.nextID
	if vote.CreatedAt.IsZero() {
		vote.CreatedAt = now
	}
	if vote.UpdatedAt.IsZero() {
		vote.UpdatedAt = now
	}
	s.votes[vote.ID] = &vote

	request.ID = vote.ID
	copied := vote
	return &copied, nil
}
