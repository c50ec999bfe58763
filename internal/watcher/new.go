package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/msageha/taskscribe/internal/logger"
)

// New creates a Watcher over inputDir with concurrency control.
// Files are handed to the handler after debounce has elapsed, so that
// partially written drops are not picked up mid-copy.
func New(inputDir string, handler EventHandler, log logger.Logger, maxConcurrent int, debounce time.Duration) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(inputDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	return &implWatcher{
		inputDir:      inputDir,
		handler:       handler,
		logger:        log,
		watcher:       fsw,
		maxConcurrent: maxConcurrent,
		debounce:      debounce,
		semaphore:     make(chan struct{}, maxConcurrent),
	}, nil
}
