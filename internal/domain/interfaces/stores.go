package interfaces

import domaintypes "cipherbox/internal/domain/types"

// HistoryStore persists the conversion history as a whole.
type HistoryStore interface {
	LoadHistory() ([]domaintypes.HistoryRecord, error)
	SaveHistory(records []domaintypes.HistoryRecord) error
}
