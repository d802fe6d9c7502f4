package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportanceWeight_Known(t *testing.T) {
	assert.Equal(t, 100, ImportanceHigh.Weight())
	assert.Equal(t, 10, ImportanceMedium.Weight())
	assert.Equal(t, 1, ImportanceLow.Weight())
	assert.Equal(t, -1, ImportanceAgainst.Weight())
	assert.Equal(t, 0, ImportanceSkip.Weight())
}

func TestImportanceWeight_UnknownIsSkip(t *testing.T) {
	assert.Equal(t, WeightSkip, Importance("urgent").Weight())
	assert.Equal(t, WeightSkip, Importance("").Weight())
}

func TestParseDirection_Valid(t *testing.T) {
	up, err := ParseDirection("up")
	require.NoError(t, err)
	assert.Equal(t, DirectionUp, up)

	down, err := ParseDirection("down")
	require.NoError(t, err)
	assert.Equal(t, DirectionDown, down)
}

func TestParseDirection_Invalid(t *testing.T) {
	_, err := ParseDirection("sideways")
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestNewVote_FillsReferences(t *testing.T) {
	vote := NewVote(Ref("User", 7), Ref("Item", 3), DirectionDown, WeightAgainst)

	assert.False(t, vote.Vote)
	assert.Equal(t, -1, vote.Value)
	assert.Equal(t, DirectionDown, vote.Direction())
	assert.Equal(t, Ref("Item", 3), vote.Voteable())
	assert.True(t, vote.HasVoteable())

	voter, ok := vote.Voter()
	assert.True(t, ok)
	assert.Equal(t, Ref("User", 7), voter)
}

func TestNewVote_WithoutVoter(t *testing.T) {
	vote := NewVote(nil, Ref("Item", 3), DirectionUp, WeightHigh)

	_, ok := vote.Voter()
	assert.False(t, ok)
	assert.True(t, vote.Vote)
}

func TestNewVote_WithoutVoteable(t *testing.T) {
	vote := NewVote(Ref("User", 7), nil, DirectionUp, WeightHigh)

	assert.False(t, vote.HasVoteable())
}

func TestVoteIsSkip(t *testing.T) {
	assert.True(t, (&Vote{Value: WeightSkip}).IsSkip())
	assert.False(t, (&Vote{Value: WeightLow}).IsSkip())
}

func TestReferenceString(t *testing.T) {
	assert.Equal(t, "Item#3", Ref("Item", 3).String())
}

func TestLabeledString(t *testing.T) {
	assert.Equal(t, "Fancy item", Labeled{Reference: Ref("Item", 3), Label: "Fancy item"}.String())
	assert.Equal(t, "Item#3", Labeled{Reference: Ref("Item", 3)}.String())
}
