package save

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenMissingFileStartsAtZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()
	if got := s.Gold(); got != 0 {
		t.Errorf("gold = %d, want 0", got)
	}
}

func TestAddPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "save.json")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.Add(3)
	s.Add(2)
	if got := s.Gold(); got != 5 {
		t.Fatalf("gold before close = %d, want 5", got)
	}
	s.Close() // flushes the queued write

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	if got := s2.Gold(); got != 5 {
		t.Errorf("gold after reopen = %d, want 5", got)
	}
}

func TestCorruptFileStartsAtZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()
	if got := s.Gold(); got != 0 {
		t.Errorf("gold = %d, want 0", got)
	}
}
