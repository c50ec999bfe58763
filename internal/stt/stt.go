// Package stt adapts external speech-to-text services behind a narrow
// interface. The pipeline never inspects audio bytes itself; it only
// sees the transcript text or a TranscriptionError.
package stt

import (
	"context"

	"github.com/msageha/taskscribe/internal/model"
)

// Transcriber converts an audio file into transcript text. The caller
// bounds the call with its context; adapters do not retry internally.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Mock is a canned Transcriber for tests.
type Mock struct {
	Transcript string
	Err        error
}

func (m *Mock) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if m.Transcript == "" {
		return "", &model.TranscriptionError{Msg: "empty transcript"}
	}
	return m.Transcript, nil
}
