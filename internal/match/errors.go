package match

import (
	"errors"
	"fmt"
)

// ErrIncomparableExperience signals that an experience-years comparison was
// attempted against a value that should have been defaulted during
// normalization but was not. It indicates malformed upstream data, not a
// genuine mismatch, and callers are expected to report it distinctly from a
// Fail verdict.
var ErrIncomparableExperience = errors.New("experience data missing or invalid")

// IncomparableExperienceError carries the detail of which value could not be
// compared. It matches ErrIncomparableExperience via errors.Is.
type IncomparableExperienceError struct {
	Reason string
}

func (e *IncomparableExperienceError) Error() string {
	if e.Reason == "" {
		return ErrIncomparableExperience.Error()
	}
	return fmt.Sprintf("%s: %s", ErrIncomparableExperience, e.Reason)
}

func (e *IncomparableExperienceError) Unwrap() error {
	return ErrIncomparableExperience
}

func newIncomparableError(format string, args ...any) error {
	return &IncomparableExperienceError{Reason: fmt.Sprintf(format, args...)}
}
