// ABOUTME: Input bounds for a workout submission.
// ABOUTME: Shared by the CLI and MCP server before anything reaches storage.
package models

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MaxSets   = 12
	MaxReps   = 100
	MaxWeight = 1000.0
)

// ErrEmptyExercise is returned when a submission has no exercise name.
var ErrEmptyExercise = errors.New("please enter an exercise name")

// ValidateSubmission checks a submission the way the logging form does:
// a non-blank exercise and 1..MaxSets sets within rep and weight bounds.
func ValidateSubmission(exercise string, sets []SetInput) error {
	if strings.TrimSpace(exercise) == "" {
		return ErrEmptyExercise
	}
	if len(sets) == 0 {
		return errors.New("at least one set is required")
	}
	if len(sets) > MaxSets {
		return fmt.Errorf("too many sets: %d (max %d)", len(sets), MaxSets)
	}
	for _, s := range sets {
		if s.Reps < 0 || s.Reps > MaxReps {
			return fmt.Errorf("set %d: reps must be between 0 and %d", s.SetNum, MaxReps)
		}
		if s.Weight < 0 || s.Weight > MaxWeight {
			return fmt.Errorf("set %d: weight must be between 0 and %g", s.SetNum, MaxWeight)
		}
	}
	return nil
}

// NumberSets fills in missing set numbers with the 1-based position.
func NumberSets(sets []SetInput) []SetInput {
	out := make([]SetInput, len(sets))
	for i, s := range sets {
		if s.SetNum <= 0 {
			s.SetNum = i + 1
		}
		out[i] = s
	}
	return out
}
