package store

import (
	"errors"
	"path/filepath"
	"sync"

	"cipherbox/internal/domain"
	"cipherbox/internal/util/memzero"
)

// SealedHistoryFilename is the sealed history file name under the home directory.
const SealedHistoryFilename = "history.txt.enc"

// ErrEmptyPassphrase is returned when a sealed store is used without a passphrase.
var ErrEmptyPassphrase = errors.New("sealed history requires a passphrase")

// SealedHistoryFileStore keeps the two-line history text encrypted at rest.
type SealedHistoryFileStore struct {
	path       string
	passphrase string
	mu         sync.Mutex

	kdf kdfParams // tests lower N to keep runs fast
}

// NewSealedHistoryFileStore returns a SealedHistoryFileStore writing to path.
func NewSealedHistoryFileStore(path, passphrase string) *SealedHistoryFileStore {
	return &SealedHistoryFileStore{path: path, passphrase: passphrase, kdf: defaultKDFParams()}
}

// NewSealedHistoryFileStoreIn returns a SealedHistoryFileStore rooted at dir.
func NewSealedHistoryFileStoreIn(dir, passphrase string) *SealedHistoryFileStore {
	return NewSealedHistoryFileStore(filepath.Join(dir, SealedHistoryFilename), passphrase)
}

// WithScryptParams overrides the key derivation cost for new seals.
func (s *SealedHistoryFileStore) WithScryptParams(n, r, p int) *SealedHistoryFileStore {
	s.kdf = kdfParams{N: n, R: r, P: p}
	return s
}

// Path returns the backing file path.
func (s *SealedHistoryFileStore) Path() string { return s.path }

// LoadHistory decrypts and parses the history file.
func (s *SealedHistoryFileStore) LoadHistory() ([]domain.HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	b, err := readFile(s.path)
	if err != nil {
		return nil, err
	}
	if b == nil { // file didn't exist
		return nil, nil
	}
	raw, err := openHistory(s.passphrase, b)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(raw)
	return decodeHistory(raw), nil
}

// SaveHistory seals records and replaces the file.
func (s *SealedHistoryFileStore) SaveHistory(records []domain.HistoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.passphrase == "" {
		return ErrEmptyPassphrase
	}
	raw := encodeHistory(records)
	defer memzero.Zero(raw)
	ct, err := sealHistory(s.passphrase, raw, s.kdf)
	if err != nil {
		return err
	}
	return writeFile(s.path, ct, 0o600)
}

// Compile-time assertion that SealedHistoryFileStore implements domain.HistoryStore.
var _ domain.HistoryStore = (*SealedHistoryFileStore)(nil)
