// ABOUTME: Tests for the token store
// ABOUTME: Verifies get/set/clear round-trips against a temp directory

package credstore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGet_Empty(t *testing.T) {
	s := New(t.TempDir())

	token, ok := s.Get()
	if ok {
		t.Errorf("expected no token, got %q", token)
	}
}

func TestSetGet_RoundTrip(t *testing.T) {
	s := New(t.TempDir())

	if err := s.Set("abc.def.ghi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, ok := s.Get()
	if !ok {
		t.Fatal("expected stored token")
	}
	if token != "abc.def.ghi" {
		t.Errorf("expected abc.def.ghi, got %q", token)
	}
}

func TestSet_CreatesConfigDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "campus")
	s := New(dir)

	if err := s.Set("tok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("expected config dir to exist: %v", err)
	}
}

func TestClear(t *testing.T) {
	s := New(t.TempDir())

	if err := s.Set("tok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.Get(); ok {
		t.Error("expected token to be gone after clear")
	}
}

func TestClear_AbsentToken(t *testing.T) {
	s := New(t.TempDir())

	if err := s.Clear(); err != nil {
		t.Errorf("clearing an absent token should not fail: %v", err)
	}
}

func TestGet_BlankFile(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	if err := os.WriteFile(filepath.Join(dir, "token"), []byte("  \n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Get(); ok {
		t.Error("expected blank token file to read as absent")
	}
}
