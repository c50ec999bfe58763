package lock

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestTryLockWritesPID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watch.lock")
	fl := New(path)

	if err := fl.TryLock(); err != nil {
		t.Fatalf("TryLock: %v", err)
	}
	defer fl.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read lock file: %v", err)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		t.Fatalf("lock file does not hold a PID: %q", data)
	}
	if pid != os.Getpid() {
		t.Errorf("expected PID %d, got %d", os.Getpid(), pid)
	}
}

func TestUnlockRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watch.lock")
	fl := New(path)

	if err := fl.TryLock(); err != nil {
		t.Fatalf("TryLock: %v", err)
	}
	if err := fl.Unlock(); err != nil {
		t.Fatalf("Unlock: %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected lock file removed after unlock")
	}
}

func TestUnlockWithoutLockIsNoop(t *testing.T) {
	fl := New(filepath.Join(t.TempDir(), "watch.lock"))
	if err := fl.Unlock(); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
}

func TestRelockAfterUnlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watch.lock")
	fl := New(path)

	if err := fl.TryLock(); err != nil {
		t.Fatalf("first TryLock: %v", err)
	}
	if err := fl.Unlock(); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if err := fl.TryLock(); err != nil {
		t.Fatalf("second TryLock: %v", err)
	}
	fl.Unlock()
}
