package services

import (
	"fmt"
	"math"
)

// CountingMode decides how skip votes (value 0) are counted.
type CountingMode string

const (
	// CountingSkipAware leaves skip votes out of votes_for, votes_against
	// and plusminus. A skip vote is not reported as voted_for either.
	CountingSkipAware CountingMode = "skip_aware"
	// CountingPlain counts every row by its direction only.
	CountingPlain CountingMode = "plain"
)

func (m CountingMode) String() string {
	return string(m)
}

func ParseCountingMode(s string) (CountingMode, error) {
	switch mode := CountingMode(s); mode {
	case CountingSkipAware, CountingPlain:
		return mode, nil
	case "":
		return CountingSkipAware, nil
	default:
		return "", fmt.Errorf("unknown counting mode %q", s)
	}
}

func (m CountingMode) skipAware() bool {
	return m != CountingPlain
}

// percentEpsilon keeps the division defined when there are no votes.
const percentEpsilon = 0.0001

func percent(part, total int) int {
	return int(math.Round(float64(part) * 100 / (float64(total) + percentEpsilon)))
}
