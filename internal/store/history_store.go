package store

import (
	"path/filepath"
	"sync"

	"cipherbox/internal/domain"
)

// HistoryFilename is the plain history file name under the home directory.
const HistoryFilename = "history.txt"

// HistoryFileStore persists the history as a plain text file.
type HistoryFileStore struct {
	path string
	mu   sync.Mutex
}

// NewHistoryFileStore returns a HistoryFileStore writing to path.
func NewHistoryFileStore(path string) *HistoryFileStore {
	return &HistoryFileStore{path: path}
}

// NewHistoryFileStoreIn returns a HistoryFileStore rooted at dir.
func NewHistoryFileStoreIn(dir string) *HistoryFileStore {
	return NewHistoryFileStore(filepath.Join(dir, HistoryFilename))
}

// Path returns the backing file path.
func (s *HistoryFileStore) Path() string { return s.path }

// LoadHistory reads all records in file order.
func (s *HistoryFileStore) LoadHistory() ([]domain.HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path)
	if err != nil {
		return nil, err
	}
	return decodeHistory(b), nil
}

// SaveHistory replaces the file with records.
func (s *HistoryFileStore) SaveHistory(records []domain.HistoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeFile(s.path, encodeHistory(records), 0o600)
}

// Compile-time assertion that HistoryFileStore implements domain.HistoryStore.
var _ domain.HistoryStore = (*HistoryFileStore)(nil)
