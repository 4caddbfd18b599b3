package interfaces

import domaintypes "cipherbox/internal/domain/types"

// ConversionService selects a converter variant and runs it.
type ConversionService interface {
	Converter(kind domaintypes.Kind, key int) (Converter, error)
	Encode(kind domaintypes.Kind, key int, input string) (domaintypes.Conversion, error)
	Decode(kind domaintypes.Kind, key int, input string) (domaintypes.Conversion, error)
}

// HistoryService owns the in-memory history for a session.
type HistoryService interface {
	Load() error
	Add(input, output, converterName string) domaintypes.HistoryRecord
	Records() []domaintypes.HistoryRecord
	Clear()
	Flush() error
}
