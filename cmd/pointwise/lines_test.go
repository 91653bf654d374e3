package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestLoadMatcher(t *testing.T) {
	dir := t.TempDir()
	ref := filepath.Join(dir, "bounds.ref")
	if err := os.WriteFile(ref, []byte("1\n3\n3\n"), 0666); err != nil {
		t.Fatal(err)
	}
	t.Run("ok", func(t *testing.T) {
		m, err := loadMatcher(ref, "le")
		if err != nil {
			t.Fatal(err)
		}
		if m.Len() != 3 {
			t.Errorf("expected length %d", m.Len())
		}
	})
	t.Run("no reference", func(t *testing.T) {
		if _, err := loadMatcher("", "le"); err == nil {
			t.Error("no error")
		}
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := loadMatcher(filepath.Join(dir, "none.ref"), "le")
		if !os.IsNotExist(errors.Cause(err)) {
			t.Errorf("unexpected error %v", err)
		}
	})
	t.Run("unknown predicate", func(t *testing.T) {
		if _, err := loadMatcher(ref, "approx"); err == nil {
			t.Error("no error")
		}
	})
}
