package memory

import (
	"context"
	"sync"
	"testing"

	"thumbs_up/internal/db/models"
	"thumbs_up/internal/db/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_AssignsIDAndTimestamps(t *testing.T) {
	store := NewStore(true)

	vote, err := store.Create(context.Background(), models.NewVote(models.Ref("User", 1), models.Ref("Item", 1), models.DirectionUp, models.WeightHigh))
	require.NoError(t, err)

	assert.Equal(t, int64(1), vote.ID)
	assert.False(t, vote.CreatedAt.IsZero())
	assert.Equal(t, vote.CreatedAt, vote.UpdatedAt)
}

func TestCreate_MissingVoteable(t *testing.T) {
	store := NewStore(true)

	_, err := store.Create(context.Background(), models.NewVote(models.Ref("User", 1), nil, models.DirectionUp, models.WeightHigh))
	assert.ErrorIs(t, err, repositories.ErrMissingVoteable)
}

func TestCreate_AnonymousVotesAreNotUnique(t *testing.T) {
	store := NewStore(true)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := store.Create(ctx, models.NewVote(nil, models.Ref("Item", 1), models.DirectionUp, models.WeightHigh))
		require.NoError(t, err)
	}

	count, err := store.Count(ctx, repositories.ByVoteable(models.Ref("Item", 1)))
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCreate_ConcurrentDuplicates(t *testing.T) {
	store := NewStore(true)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Create(ctx, models.NewVote(models.Ref("User", 1), models.Ref("Item", 1), models.DirectionUp, models.WeightLow))
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
}

func TestGetOne_NotFound(t *testing.T) {
	_, err := NewStore(true).GetOne(context.Background(), repositories.ByVoteable(models.Ref("Item", 1)))
	assert.ErrorIs(t, err, repositories.ErrVoteNotFound)
}

func TestGetMany_ReturnsCopies(t *testing.T) {
	store := NewStore(true)
	ctx := context.Background()

	_, err := store.Create(ctx, models.NewVote(models.Ref("User", 1), models.Ref("Item", 1), models.DirectionUp, models.WeightLow))
	require.NoError(t, err)

	votes, err := store.GetMany(ctx, repositories.VoteFilter{})
	require.NoError(t, err)
	require.Len(t, votes, 1)
	votes[0].Value = models.WeightHigh

	high, err := store.Count(ctx, repositories.VoteFilter{}.WithValue(models.WeightHigh))
	require.NoError(t, err)
	assert.Equal(t, 0, high)
}

func TestIncrementTweeted_UnknownVote(t *testing.T) {
	_, err := NewStore(true).IncrementTweeted(context.Background(), 42)
	assert.ErrorIs(t, err, repositories.ErrVoteNotFound)
}

func TestDeleteVotesOf_BothSides(t *testing.T) {
	store := NewStore(false)
	ctx := context.Background()
	group := models.Ref("Group", 1)

	_, err := store.Create(ctx, models.NewVote(group, models.Ref("Item", 1), models.DirectionUp, models.WeightLow))
	require.NoError(t, err)
	_, err = store.Create(ctx, models.NewVote(models.Ref("User", 1), group, models.DirectionUp, models.WeightLow))
	require.NoError(t, err)
	_, err = store.Create(ctx, models.NewVote(models.Ref("User", 1), models.Ref("Item", 1), models.DirectionUp, models.WeightLow))
	require.NoError(t, err)

	deleted, err := store.DeleteVotesOf(ctx, group)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
}

func TestTally_IgnoresOtherKindsWithSameID(t *testing.T) {
	store := NewStore(true)
	ctx := context.Background()
	store.AddEntities("items", 1)

	_, err := store.Create(ctx, models.NewVote(models.Ref("User", 1), models.Ref("Item", 1), models.DirectionUp, models.WeightLow))
	require.NoError(t, err)
	_, err = store.Create(ctx, models.NewVote(models.Ref("User", 1), models.Ref("Post", 1), models.DirectionDown, models.WeightAgainst))
	require.NoError(t, err)

	rows, err := store.Tally(ctx, repositories.NewTallyQuery("Item", "items"))
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].VoteCount)
	assert.Equal(t, 1, rows[0].Plusminus)
}

func TestTally_RemovedEntity(t *testing.T) {
	store := NewStore(true)
	store.AddEntities("items", 1, 2)
	store.RemoveEntity("items", 2)

	rows, err := store.Tally(context.Background(), repositories.NewTallyQuery("Item", "items"))
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0].VoteableID)
}

func TestTally_RequiresTable(t *testing.T) {
	_, err := NewStore(true).Tally(context.Background(), repositories.NewTallyQuery("Item", ""))
	assert.Error(t, err)
}
