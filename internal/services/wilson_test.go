package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWilsonLowerBound_TwoOfThree(t *testing.T) {
	bound, err := WilsonLowerBound(2, 3, DefaultConfidence)
	require.NoError(t, err)
	assert.InDelta(t, 0.2077, bound, 0.001)
}

func TestWilsonLowerBound_TwoOfTwo(t *testing.T) {
	bound, err := WilsonLowerBound(2, 2, DefaultConfidence)
	require.NoError(t, err)
	assert.InDelta(t, 0.3424, bound, 0.001)
}

func TestWilsonLowerBound_NoVotes(t *testing.T) {
	bound, err := WilsonLowerBound(0, 0, DefaultConfidence)
	require.NoError(t, err)
	assert.Equal(t, 0.0, bound)
}

func TestWilsonLowerBound_HigherConfidenceIsLower(t *testing.T) {
	at95, err := WilsonLowerBound(8, 10, 0.95)
	require.NoError(t, err)
	at99, err := WilsonLowerBound(8, 10, 0.99)
	require.NoError(t, err)

	assert.Less(t, at99, at95)
	assert.Greater(t, at95, 0.0)
	assert.Less(t, at95, 0.8)
}

func TestWilsonLowerBound_InvalidConfidence(t *testing.T) {
	for _, confidence := range []float64{0, 1, -0.5, 1.5} {
		_, err := WilsonLowerBound(1, 2, confidence)
		assert.ErrorIs(t, err, ErrInvalidConfidence, "confidence %v", confidence)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 67, percent(2, 3))
	assert.Equal(t, 33, percent(1, 3))
	assert.Equal(t, 100, percent(5, 5))
	assert.Equal(t, 0, percent(0, 0))
}

func TestParseCountingMode(t *testing.T) {
	mode, err := ParseCountingMode("")
	require.NoError(t, err)
	assert.Equal(t, CountingSkipAware, mode)

	mode, err = ParseCountingMode("plain")
	require.NoError(t, err)
	assert.Equal(t, CountingPlain, mode)

	_, err = ParseCountingMode("weighted")
	assert.Error(t, err)
}
