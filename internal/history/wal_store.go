// Package history persists solved problems in an append-only journal so a
// calculation session can be replayed or audited later.
package history

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vadiminshakov/gowal"
)

const (
	DefaultDir   = "./wal/solutions"
	segmentLimit = 100
	maxSegments  = 10

	solutionKeyPrefix = "solution_"
)

// Entry is one solved problem. For decay problems Principal holds r0,
// FinalValue holds rt and Rate holds the negated decay constant, so every
// entry carries the same four-tuple.
type Entry struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Kind       string    `json:"kind"`
	SolvedFor  string    `json:"solved_for"`
	Principal  float64   `json:"principal"`
	Rate       float64   `json:"rate"`
	Time       float64   `json:"time"`
	FinalValue float64   `json:"final_value"`
	SolvedAt   time.Time `json:"solved_at"`
}

// WALStore persists solution entries in a WAL.
type WALStore struct {
	wal *gowal.Wal
	mu  sync.RWMutex
}

// NewWALStore initializes a WAL-backed solution journal.
func NewWALStore(dir string) (*WALStore, error) {
	if dir == "" {
		dir = DefaultDir
	}

	cfg := gowal.Config{
		Dir:              dir,
		Prefix:           "solution_",
		SegmentThreshold: segmentLimit,
		MaxSegments:      maxSegments,
		IsInSyncDiskMode: true,
	}

	wal, err := gowal.NewWAL(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "init solution WAL")
	}

	return &WALStore{wal: wal}, nil
}

// Save appends the entry to the journal, assigning an id and timestamp when
// they are not already set.
func (s *WALStore) Save(entry Entry) error {
	if s == nil || s.wal == nil {
		return errors.New("solution journal is not initialized")
	}
	if entry.Kind == "" {
		return fmt.Errorf("solution entry kind is required")
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.SolvedAt.IsZero() {
		entry.SolvedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(err, "marshal solution entry")
	}

	key := fmt.Sprintf("%s%s", solutionKeyPrefix, entry.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	nextIndex := s.wal.CurrentIndex() + 1
	return s.wal.Write(nextIndex, key, payload)
}

// EntriesAfter returns all solution entries written after the provided WAL
// index.
func (s *WALStore) EntriesAfter(index uint64) ([]Entry, error) {
	if s == nil || s.wal == nil {
		return nil, errors.New("solution journal is not initialized")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	current := s.wal.CurrentIndex()
	if current <= index {
		return nil, nil
	}

	entries := make([]Entry, 0, current-index)
	for idx := index + 1; idx <= current; idx++ {
		key, payload, err := s.wal.Get(idx)
		if err != nil {
			continue
		}

		if !strings.HasPrefix(key, solutionKeyPrefix) {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(payload, &entry); err != nil {
			return nil, errors.Wrap(err, "decode solution entry")
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// CurrentIndex returns the latest WAL index stored.
func (s *WALStore) CurrentIndex() uint64 {
	if s == nil || s.wal == nil {
		return 0
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.wal.CurrentIndex()
}

// Close closes the underlying WAL.
func (s *WALStore) Close() error {
	if s == nil || s.wal == nil {
		return nil
	}
	return s.wal.Close()
}
