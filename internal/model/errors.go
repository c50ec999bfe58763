package model

import (
	"fmt"
	"strings"
)

// RosterError indicates an invalid roster (empty, duplicate names,
// missing fields). Fatal: the pipeline aborts before extraction.
type RosterError struct {
	Msg string
}

func (e *RosterError) Error() string {
	return fmt.Sprintf("roster: %s", e.Msg)
}

// TranscriptionError indicates an upstream speech-to-text failure:
// unreachable service, invalid audio, or an empty result.
type TranscriptionError struct {
	Msg string
	Err error
}

func (e *TranscriptionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transcription: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("transcription: %s", e.Msg)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}

// CircularDependencyError reports a dependency cycle by task number.
// Cycle holds the closed path, first and last element equal.
type CircularDependencyError struct {
	Cycle []int
}

func (e *CircularDependencyError) Error() string {
	parts := make([]string, 0, len(e.Cycle))
	for _, n := range e.Cycle {
		parts = append(parts, fmt.Sprintf("Task #%d", n))
	}
	return fmt.Sprintf("circular dependency detected: %s", strings.Join(parts, " -> "))
}
