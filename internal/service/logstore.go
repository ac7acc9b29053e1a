package service

import (
	"strings"
	"sync"

	"github.com/logscope/backend/internal/model"
)

// LogStore keeps the most recently analyzed records in memory for the
// dashboard's recent/search views. Process-local only; nothing is persisted.
type LogStore struct {
	mu      sync.Mutex
	entries []model.LogRecord
	maxSize int
}

func NewLogStore(maxSize int) *LogStore {
	if maxSize <= 0 {
		maxSize = 500
	}
	return &LogStore{
		entries: make([]model.LogRecord, 0, maxSize),
		maxSize: maxSize,
	}
}

// Append adds records, evicting the oldest entries once the buffer is full.
func (s *LogStore) Append(records []model.LogRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range records {
		if len(s.entries) >= s.maxSize {
			s.entries = s.entries[1:]
		}
		s.entries = append(s.entries, record)
	}
}

func (s *LogStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Recent returns up to limit records, newest first, optionally filtered by level.
// The second return value is the total number of records matching the filter.
func (s *LogStore) Recent(limit int, level string) ([]model.LogRecord, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.entries
	if level != "" {
		want := model.LogLevel(strings.ToUpper(level))
		if want == "WARNING" {
			want = model.LevelWarn
		}
		filtered = make([]model.LogRecord, 0, len(s.entries))
		for _, e := range s.entries {
			if e.Level == want {
				filtered = append(filtered, e)
			}
		}
	}

	return newestFirst(filtered, limit), len(filtered)
}

// Search returns up to limit records whose message contains the query,
// case-insensitive, newest first. The second return value is the match count.
func (s *LogStore) Search(query string, limit int) ([]model.LogRecord, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(query)
	matches := make([]model.LogRecord, 0)
	for _, e := range s.entries {
		if strings.Contains(strings.ToLower(e.Message), needle) ||
			strings.Contains(strings.ToLower(e.Raw), needle) {
			matches = append(matches, e)
		}
	}

	return newestFirst(matches, limit), len(matches)
}

func newestFirst(entries []model.LogRecord, limit int) []model.LogRecord {
	if limit <= 0 || limit > len(entries) {
		limit = len(entries)
	}
	out := make([]model.LogRecord, 0, limit)
	for i := len(entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, entries[i])
	}
	return out
}
