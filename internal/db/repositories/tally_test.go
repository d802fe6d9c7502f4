package repositories

import (
	"testing"
	"time"

	"thumbs_up/internal/db/models"

	"github.com/stretchr/testify/assert"
)

func TestNewTallyQuery_DefaultOrder(t *testing.T) {
	q := NewTallyQuery("Item", "items")

	assert.Equal(t, []TallyOrder{
		{Column: TallyColumnVoteCount, Descending: true},
		{Column: TallyColumnVoteableID},
	}, q.ordering())
}

func TestTallyQuery_ReorderIgnoresUnknownColumns(t *testing.T) {
	q := NewTallyQuery("Item", "items").Reorder(TallyColumn("name; DROP TABLE votes"), true)

	assert.Equal(t, []TallyOrder{{Column: TallyColumnVoteableID}}, q.ordering())
}

func TestTallyQuery_ExplicitVoteableIDOrder(t *testing.T) {
	q := NewTallyQuery("Item", "items").Reorder(TallyColumnVoteableID, true)

	assert.Equal(t, []TallyOrder{{Column: TallyColumnVoteableID, Descending: true}}, q.ordering())
}

func TestTallyQuery_CloneIsIndependent(t *testing.T) {
	q := NewTallyQuery("Item", "items").HavingVoteCountAbove(1)
	clone := q.Clone().ThenBy(TallyColumnUp, true).HavingVoteCountAbove(5)

	assert.Len(t, q.Order, 1)
	assert.Equal(t, 1, *q.VoteCountAbove)
	assert.Len(t, clone.Order, 2)
	assert.Equal(t, 5, *clone.VoteCountAbove)
}

func TestTallyQuery_Filters(t *testing.T) {
	after := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	before := after.AddDate(0, 1, 0)

	q := NewTallyQuery("Item", "items").
		CreatedAfter(after).
		CreatedBefore(before).
		VotedBy(models.Ref("User", 3)).
		WithDirection(models.DirectionDown)

	assert.Equal(t, VoteFilter{}.
		WithVoter(models.Ref("User", 3)).
		WithDirection(models.DirectionDown).
		Between(after, before), q.Filter)
}

func TestSortTallyRows_TieBreakByID(t *testing.T) {
	rows := []TallyRow{
		{VoteableID: 3, Plusminus: 1},
		{VoteableID: 1, Plusminus: 1},
		{VoteableID: 2, Plusminus: 4},
	}

	SortTallyRows(rows, NewTallyQuery("Item", "items").Reorder(TallyColumnPlusminus, true))

	assert.Equal(t, []int64{2, 1, 3}, []int64{rows[0].VoteableID, rows[1].VoteableID, rows[2].VoteableID})
}

func TestPage(t *testing.T) {
	rows := []TallyRow{{VoteableID: 1}, {VoteableID: 2}, {VoteableID: 3}}

	assert.Len(t, Page(rows, NewTallyQuery("Item", "items").Limit(2)), 2)
	assert.Equal(t, []TallyRow{{VoteableID: 3}}, Page(rows, NewTallyQuery("Item", "items").Offset(2)))
	assert.Empty(t, Page(rows, NewTallyQuery("Item", "items").Offset(5)))
}

func TestVoteFilterMatches(t *testing.T) {
	now := time.Now()
	vote := &models.Vote{
		Vote:         true,
		Value:        models.WeightLow,
		VoteableID:   1,
		VoteableType: "Item",
		VoterID:      2,
		VoterType:    "User",
		CreatedAt:    now,
	}

	assert.True(t, ByPair(models.Ref("User", 2), models.Ref("Item", 1)).Matches(vote))
	assert.False(t, ByVoter(models.Ref("Admin", 2)).Matches(vote))
	assert.False(t, ByVoteable(models.Ref("Item", 1)).WithDirection(models.DirectionDown).Matches(vote))
	assert.False(t, VoteFilter{}.WithValue(models.WeightSkip).Matches(vote))
	assert.False(t, VoteFilter{}.Tweeted().Matches(vote))
	assert.True(t, VoteFilter{}.Between(now.Add(-time.Minute), now.Add(time.Minute)).Matches(vote))
	assert.False(t, VoteFilter{}.Between(now, time.Time{}).Matches(vote))
}
