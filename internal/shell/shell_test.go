package shell_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cipherbox/internal/adder"
	"cipherbox/internal/domain"
	"cipherbox/internal/services/convert"
	"cipherbox/internal/services/history"
	"cipherbox/internal/shell"
)

type memStore struct {
	records []domain.HistoryRecord
	saves   int
}

func (m *memStore) LoadHistory() ([]domain.HistoryRecord, error) { return m.records, nil }

func (m *memStore) SaveHistory(r []domain.HistoryRecord) error {
	m.records = append([]domain.HistoryRecord(nil), r...)
	m.saves++
	return nil
}

// runShell feeds script to a fresh shell and returns its output and store.
func runShell(t *testing.T, script string) (string, *memStore) {
	t.Helper()
	ms := &memStore{}
	hist := history.New(ms, nil)
	require.NoError(t, hist.Load())

	var out bytes.Buffer
	sh := shell.New(
		strings.NewReader(script),
		&out,
		convert.New(convert.Options{}, nil),
		hist,
		adder.New(),
		shell.NewAnimation(2, 0, ""),
		nil,
	)
	require.NoError(t, sh.Run(context.Background()))
	return out.String(), ms
}

func TestShell_MorseRecorded(t *testing.T) {
	out, ms := runShell(t, "SOS\n1\ny\nexit\n")

	assert.Contains(t, out, "Choose conversion type:")
	assert.Contains(t, out, "Output: ... --- ... \n")
	require.Len(t, ms.records, 1)
	assert.Equal(t, domain.HistoryRecord{Input: "SOS", Output: "Morse Code: ... --- ... "}, ms.records[0])
}

func TestShell_NotRecordedUnlessLowercaseY(t *testing.T) {
	_, ms := runShell(t, "SOS\n1\nY\nexit\n")
	assert.Empty(t, ms.records)
	assert.Equal(t, 0, ms.saves)
}

func TestShell_BinaryAddition(t *testing.T) {
	out, ms := runShell(t, "A\n2\nn\ny\n1\nexit\n")

	assert.Contains(t, out, "Output: 01000001 \n")
	assert.Contains(t, out, "Output after binary addition: 01000010\n")
	assert.Empty(t, ms.records)
}

func TestShell_BinaryAdditionRejectsMultiToken(t *testing.T) {
	out, _ := runShell(t, "AB\n2\nn\ny\n1\nexit\n")
	assert.Contains(t, out, "Error: operand 1")
	assert.NotContains(t, out, "Output after binary addition")
}

func TestShell_CaesarWithKey(t *testing.T) {
	out, ms := runShell(t, "abc xyz\n3\n3\ny\nexit\n")

	assert.Contains(t, out, "Enter key:")
	assert.Contains(t, out, "Output: DEF ABC\n")
	require.Len(t, ms.records, 1)
	assert.Equal(t, "Caesar Cipher: DEF ABC", ms.records[0].Output)
}

func TestShell_InvalidChoiceAndKey(t *testing.T) {
	out, ms := runShell(t, "hello\n9\nhello\nx\nhello\n3\nfoo\nexit\n")
	assert.Equal(t, 2, strings.Count(out, "Invalid choice"))
	assert.Contains(t, out, "Invalid key")
	assert.Empty(t, ms.records)
}

func TestShell_EOFFlushesHistory(t *testing.T) {
	_, ms := runShell(t, "SOS\n1\ny\n")
	require.Len(t, ms.records, 1)
	assert.Equal(t, 1, ms.saves)
}

func TestShell_DrawsBorderEachRound(t *testing.T) {
	out, _ := runShell(t, "a\n1\nn\nb\n1\nn\nexit\n")
	border := strings.Repeat(shell.BorderSegment, 2)
	assert.Equal(t, 2, strings.Count(out, "\n"+border+"\n\n\n"))
}

func TestShell_CancelledContext(t *testing.T) {
	ms := &memStore{}
	hist := history.New(ms, nil)
	hist.Add("x", "y", "Binary")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	sh := shell.New(strings.NewReader("SOS\n1\ny\n"), &out,
		convert.New(convert.Options{}, nil), hist, adder.New(), nil, nil)
	err := sh.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, ms.saves)
}
