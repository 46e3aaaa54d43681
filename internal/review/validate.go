package review

import (
	"errors"
	"strings"
)

var (
	ErrEmptyText        = errors.New("review text is empty")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
)

// ValidationError reports which input a submission was rejected for.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

// Normalized is an accepted submission.
type Normalized struct {
	Text   string
	Rating int
}

// Validate accepts a submission iff the trimmed text is non-empty and rating
// is in [1,5]. The returned text is trimmed; the rating is unchanged.
func Validate(text string, rating int) (Normalized, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Normalized{}, &ValidationError{Field: "text", Err: ErrEmptyText}
	}
	if rating < MinRating || rating > MaxRating {
		return Normalized{}, &ValidationError{Field: "rating", Err: ErrRatingOutOfRange}
	}
	return Normalized{Text: trimmed, Rating: rating}, nil
}
