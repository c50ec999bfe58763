package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/msageha/taskscribe/internal/logger"
)

func TestIsAudioFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"meeting.mp3", true},
		{"meeting.WAV", true},
		{"standup.m4a", true},
		{"notes.txt", false},
		{"notes.md", false},
		{"archive.zip", false},
	}
	for _, tt := range tests {
		if got := IsAudioFile(tt.path); got != tt.want {
			t.Errorf("IsAudioFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestNewRejectsMissingDir(t *testing.T) {
	handler := func(ctx context.Context, path string) error { return nil }
	_, err := New(filepath.Join(t.TempDir(), "missing"), handler, logger.Nop(), 2, time.Millisecond)
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestWatcherDispatchesNewFiles(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	var handled []string
	handler := func(ctx context.Context, path string) error {
		mu.Lock()
		handled = append(handled, filepath.Base(path))
		mu.Unlock()
		return nil
	}

	w, err := New(dir, handler, logger.Nop(), 2, time.Millisecond)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	// Give the watch loop a moment to arm before dropping files.
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "meeting.txt"), []byte("We need to fix the login bug."), 0o644); err != nil {
		t.Fatalf("write transcript: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ignore.zip"), []byte("zip"), 0o644); err != nil {
		t.Fatalf("write zip: %v", err)
	}

	deadline := time.After(3 * time.Second)
	for {
		mu.Lock()
		n := len(handled)
		mu.Unlock()
		if n >= 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("handler was not invoked within timeout")
		case <-time.After(20 * time.Millisecond):
		}
	}

	cancel()
	if err := <-done; err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	for _, name := range handled {
		if name == "ignore.zip" {
			t.Error("unsupported file was dispatched")
		}
	}
}
