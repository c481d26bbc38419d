package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRotatingWriter_NoRotationWhenDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jalon.log")

	rw, err := NewRotatingWriter(path, RotationConfig{MaxSizeMB: 0})
	if err != nil {
		t.Fatalf("NewRotatingWriter: %v", err)
	}
	defer func() { _ = rw.Close() }()

	// Write well past one "megabyte" worth of small writes; with rotation
	// disabled everything lands in the same file.
	line := strings.Repeat("x", 1024) + "\n"
	for n := 0; n < 10; n++ {
		if _, err := rw.Write([]byte(line)); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}

	if _, err := os.Stat(path + ".1"); !os.IsNotExist(err) {
		t.Error("no backup file should exist when rotation is disabled")
	}
}

func TestRotatingWriter_RotatesAtThreshold(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jalon.log")

	rw, err := NewRotatingWriter(path, RotationConfig{MaxSizeMB: 1, MaxBackups: 2})
	if err != nil {
		t.Fatalf("NewRotatingWriter: %v", err)
	}
	defer func() { _ = rw.Close() }()

	chunk := make([]byte, 512*1024)
	for i := range chunk {
		chunk[i] = 'a'
	}

	// Three half-MB writes: the third write crosses the 1 MB threshold and
	// triggers a rotation.
	for n := 0; n < 3; n++ {
		if _, err := rw.Write(chunk); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}

	if _, err := os.Stat(path + ".1"); err != nil {
		t.Errorf("expected backup file after rotation: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat current log: %v", err)
	}
	if info.Size() > 1024*1024 {
		t.Errorf("current log size = %d, want under the 1 MB threshold", info.Size())
	}
}

func TestRotatingWriter_KeepsAtMostMaxBackups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jalon.log")

	rw, err := NewRotatingWriter(path, RotationConfig{MaxSizeMB: 1, MaxBackups: 1})
	if err != nil {
		t.Fatalf("NewRotatingWriter: %v", err)
	}
	defer func() { _ = rw.Close() }()

	chunk := make([]byte, 700*1024)
	for n := 0; n < 6; n++ {
		if _, err := rw.Write(chunk); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}

	if _, err := os.Stat(path + ".1"); err != nil {
		t.Errorf("backup .1 should exist: %v", err)
	}
	if _, err := os.Stat(path + ".2"); !os.IsNotExist(err) {
		t.Error("backup .2 should not exist with MaxBackups=1")
	}
}

func TestRotatingWriter_WriteAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jalon.log")

	rw, err := NewRotatingWriter(path, RotationConfig{})
	if err != nil {
		t.Fatalf("NewRotatingWriter: %v", err)
	}
	if err := rw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := rw.Write([]byte("late")); err == nil {
		t.Error("Write after Close should fail")
	}
}
