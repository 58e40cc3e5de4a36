package session_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"compositor/internal/session"
)

func TestAcquirePIDFileWritesPID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run", "compositor.pid")

	pid, err := session.AcquirePIDFile(path)
	if err != nil {
		t.Fatalf("AcquirePIDFile returned error: %v", err)
	}
	t.Cleanup(func() { _ = pid.Release() })

	got, err := session.ReadPID(path)
	if err != nil {
		t.Fatalf("ReadPID returned error: %v", err)
	}
	if got != os.Getpid() {
		t.Fatalf("pid = %d, want %d", got, os.Getpid())
	}
}

func TestAcquirePIDFileRejectsSecondHolder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "compositor.pid")

	first, err := session.AcquirePIDFile(path)
	if err != nil {
		t.Fatalf("first AcquirePIDFile returned error: %v", err)
	}
	defer first.Release()

	_, err = session.AcquirePIDFile(path)
	if !errors.Is(err, session.ErrAlreadyRunning) {
		t.Fatalf("second AcquirePIDFile error = %v, want ErrAlreadyRunning", err)
	}
	if want := fmt.Sprintf("(pid %d)", os.Getpid()); !strings.Contains(err.Error(), want) {
		t.Fatalf("error %q should name the holder %s", err, want)
	}
}

func TestReleaseRemovesFileAndAllowsReacquire(t *testing.T) {
	path := filepath.Join(t.TempDir(), "compositor.pid")

	pid, err := session.AcquirePIDFile(path)
	if err != nil {
		t.Fatalf("AcquirePIDFile returned error: %v", err)
	}
	if err := pid.Release(); err != nil {
		t.Fatalf("Release returned error: %v", err)
	}
	if err := pid.Release(); err != nil {
		t.Fatalf("second Release returned error: %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pid file still present: %v", err)
	}

	again, err := session.AcquirePIDFile(path)
	if err != nil {
		t.Fatalf("reacquire returned error: %v", err)
	}
	_ = again.Release()
}

func TestAcquirePIDFileEmptyPath(t *testing.T) {
	if _, err := session.AcquirePIDFile("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
	var nilPID *session.PIDFile
	if err := nilPID.Release(); err != nil {
		t.Fatalf("nil Release returned error: %v", err)
	}
}
