package entity

import (
	"fmt"
	"unicode/utf8"
)

const (
	// MinTitleLength is the minimum title length in Unicode code points.
	MinTitleLength = 1
	// MaxTitleLength is the maximum title length in Unicode code points.
	MaxTitleLength = 200
)

// ValidateTitle checks that title is between MinTitleLength and MaxTitleLength
// code points long. The raw length is checked; whitespace is not trimmed.
func ValidateTitle(title string) error {
	n := utf8.RuneCountInString(title)
	if n < MinTitleLength {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("must be at least %d character", MinTitleLength),
		}
	}
	if n > MaxTitleLength {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("must be at most %d characters", MaxTitleLength),
		}
	}
	return nil
}

// Validate validates the patch fields that are present.
func (p TodoPatch) Validate() error {
	if p.Title != nil {
		return ValidateTitle(*p.Title)
	}
	return nil
}
