// Package save persists the currency counter across runs. Writes happen on
// a dedicated goroutine so the frame loop never waits on disk.
package save

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

type fileData struct {
	Gold int `json:"gold"`
}

// Store is the durable gold counter. Add updates the in-memory value and
// queues an asynchronous write of the latest total; older queued totals are
// dropped, so disk sees the newest value without backpressure.
type Store struct {
	path string

	mu   sync.Mutex
	gold int

	ch   chan int
	done chan struct{}

	logOnce sync.Once
}

// DefaultPath returns the save file location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "hollowglade-arcade", "save.json"), nil
}

// Open loads the counter from path, treating a missing file as zero.
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		ch:   make(chan int, 1),
		done: make(chan struct{}),
	}
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		var d fileData
		if jerr := json.Unmarshal(raw, &d); jerr != nil {
			log.Printf("save: corrupt %s, starting from zero: %v", path, jerr)
		} else {
			s.gold = d.Gold
		}
	case os.IsNotExist(err):
		// first launch
	default:
		return nil, err
	}
	go s.writer()
	return s, nil
}

// Gold returns the current counter.
func (s *Store) Gold() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gold
}

// Add bumps the counter and schedules a write. Never blocks.
func (s *Store) Add(n int) {
	s.mu.Lock()
	s.gold += n
	v := s.gold
	s.mu.Unlock()

	for {
		select {
		case s.ch <- v:
			return
		default:
			select {
			case <-s.ch: // drop the stale total
			default:
			}
		}
	}
}

// Close flushes pending writes and stops the writer.
func (s *Store) Close() {
	close(s.ch)
	<-s.done
}

func (s *Store) writer() {
	defer close(s.done)
	for v := range s.ch {
		s.write(v)
	}
}

func (s *Store) write(v int) {
	raw, err := json.Marshal(fileData{Gold: v})
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.logWriteError(err)
		return
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		s.logWriteError(err)
	}
}

// Best-effort persistence: a failing disk is reported once, not fatal.
func (s *Store) logWriteError(err error) {
	s.logOnce.Do(func() {
		log.Printf("save: cannot write %s: %v", s.path, err)
	})
}
