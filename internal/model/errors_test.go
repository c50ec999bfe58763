package model

import (
	"errors"
	"fmt"
	"testing"
)

func TestCircularDependencyErrorMessage(t *testing.T) {
	err := &CircularDependencyError{Cycle: []int{1, 3, 1}}
	want := "circular dependency detected: Task #1 -> Task #3 -> Task #1"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestCircularDependencyErrorSelfReference(t *testing.T) {
	err := &CircularDependencyError{Cycle: []int{2, 2}}
	want := "circular dependency detected: Task #2 -> Task #2"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestTranscriptionErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := &TranscriptionError{Msg: "service unreachable", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("expected wrapped cause to be reachable via errors.Is")
	}
	if err.Error() != "transcription: service unreachable: connection refused" {
		t.Errorf("unexpected message: %q", err.Error())
	}

	bare := &TranscriptionError{Msg: "empty result"}
	if bare.Error() != "transcription: empty result" {
		t.Errorf("unexpected message: %q", bare.Error())
	}
}

func TestRosterErrorMessage(t *testing.T) {
	err := &RosterError{Msg: "at least one member is required"}
	if err.Error() != "roster: at least one member is required" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
