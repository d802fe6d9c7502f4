package services

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const DefaultConfidence = 0.95

var ErrInvalidConfidence = errors.New("confidence must be between 0 and 1")

// WilsonLowerBound is the lower bound of the Wilson score interval for
// positive successes out of total trials at the given two-tailed confidence.
// See http://evanmiller.org/how-not-to-sort-by-average-rating.html
func WilsonLowerBound(positive, total int, confidence float64) (float64, error) {
	if confidence <= 0 || confidence >= 1 || math.IsNaN(confidence) {
		return 0, fmt.Errorf("%w, got %v", ErrInvalidConfidence, confidence)
	}
	if total <= 0 {
		return 0, nil
	}

	n := float64(total)
	z := distuv.UnitNormal.Quantile(1 - (1-confidence)/2)
	phat := float64(positive) / n

	return (phat + z*z/(2*n) - z*math.Sqrt((phat*(1-phat)+z*z/(4*n))/n)) / (1 + z*z/n), nil
}
