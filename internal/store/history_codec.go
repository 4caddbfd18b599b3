package store

import (
	"bytes"
	"strings"

	"cipherbox/internal/domain"
)

// encodeHistory renders records as alternating input/output lines.
func encodeHistory(records []domain.HistoryRecord) []byte {
	var buf bytes.Buffer
	for _, r := range records {
		buf.WriteString(r.Input)
		buf.WriteByte('\n')
		buf.WriteString(r.Output)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// decodeHistory pairs lines back into records. An unpaired final line is
// dropped. A file whose every line ends in CRLF has the CRs removed; otherwise
// a trailing CR belongs to the record text.
func decodeHistory(data []byte) []domain.HistoryRecord {
	if len(data) == 0 {
		return nil
	}
	lines := strings.Split(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if isCRLF(lines) {
		for i, l := range lines {
			lines[i] = strings.TrimSuffix(l, "\r")
		}
	}
	records := make([]domain.HistoryRecord, 0, len(lines)/2)
	for i := 0; i+1 < len(lines); i += 2 {
		records = append(records, domain.HistoryRecord{Input: lines[i], Output: lines[i+1]})
	}
	return records
}

func isCRLF(lines []string) bool {
	for _, l := range lines {
		if !strings.HasSuffix(l, "\r") {
			return false
		}
	}
	return len(lines) > 0
}
