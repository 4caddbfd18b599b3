package types

// HistoryRecord is one persisted conversion. Output carries the converter
// label, e.g. "Binary: 01000001 ".
type HistoryRecord struct {
	Input  string
	Output string
}

// NewHistoryRecord labels output with the converter name.
func NewHistoryRecord(input, output, converterName string) HistoryRecord {
	return HistoryRecord{Input: input, Output: converterName + ": " + output}
}
