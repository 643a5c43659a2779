package kernel

import "foodrun/internal/pkg/errs"

// Score is a value object for a single rating score on the five-point scale
// customers use to rate food quality, delivery speed and driver service.
//
// Valid scores are the integers 1 through 5 inclusive. The zero value is
// invalid and must be constructed via NewScore.
type Score struct {
	value int
}

// Score bounds of the five-point rating scale.
const (
	MinScore = 1
	MaxScore = 5
)

// NewScore creates a Score from an integer, rejecting values outside [1,5].
func NewScore(value int) (Score, error) {
	if value < MinScore || value > MaxScore {
		return Score{}, newScoreOutOfRangeError(value)
	}

	return Score{value: value}, nil
}

// Validate checks that the Score holds a value on the five-point scale.
// The zero value fails validation.
func (s Score) Validate() error {
	if s.value < MinScore || s.value > MaxScore {
		return newScoreOutOfRangeError(s.value)
	}

	return nil
}

// Int returns the numeric value of the score.
func (s Score) Int() int {
	return s.value
}

func newScoreOutOfRangeError(value int) error {
	return errs.NewValueIsOutOfRangeError("score", value, MinScore, MaxScore)
}
