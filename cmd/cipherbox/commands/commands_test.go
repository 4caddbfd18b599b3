package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cipherbox/internal/adder"
	"cipherbox/internal/domain"
)

// run executes the CLI against a temp home with animation disabled.
func run(t *testing.T, home, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CIPHERBOX_NO_ANIMATION", "1")
	t.Setenv("CIPHERBOX_PASSPHRASE", "")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	err := execute(root, append([]string{"--home", home}, args...))
	return out.String(), err
}

func TestEncodeDecode(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "", "encode", "--with", "morse", "SOS")
	require.NoError(t, err)
	assert.Equal(t, "... --- ... \n", out)

	out, err = run(t, home, "", "decode", "-w", "morse", "...", "---", "...")
	require.NoError(t, err)
	assert.Equal(t, "SOS\n", out)

	out, err = run(t, home, "", "encode", "-w", "2", "Hi")
	require.NoError(t, err)
	assert.Equal(t, "01001000 01101001 \n", out)

	out, err = run(t, home, "01001000 01101001\n", "decode", "-w", "binary")
	require.NoError(t, err)
	assert.Equal(t, "Hi\n", out)
}

func TestDecodeMorseArgsStartingWithDash(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "", "decode", "-w", "morse", "-.-")
	require.NoError(t, err)
	assert.Equal(t, "K\n", out)

	out, err = run(t, home, "", "decode", "-w", "morse", "---", "--", "..")
	require.NoError(t, err)
	assert.Equal(t, "OMI\n", out)

	out, err = run(t, home, "", "decode", "--strict", "-w", "morse", "-", "--", "-")
	require.NoError(t, err)
	assert.Equal(t, "TMT\n", out)

	// A leading M needs an explicit separator.
	out, err = run(t, home, "", "decode", "-w", "morse", "--", "--", "---")
	require.NoError(t, err)
	assert.Equal(t, "MO\n", out)

	// Flags after the text are part of the text.
	out, err = run(t, home, "", "encode", "-w", "caesar", "-k", "1", "abc", "-v")
	require.NoError(t, err)
	assert.Equal(t, "BCD -W\n", out)
}

func TestEncodeDecodeRoundTripThroughArgs(t *testing.T) {
	home := t.TempDir()

	encoded, err := run(t, home, "", "encode", "-w", "morse", "TOKYO 2024")
	require.NoError(t, err)

	args := append([]string{"decode", "-w", "morse"}, strings.Fields(encoded)...)
	out, err := run(t, home, "", args...)
	require.NoError(t, err)
	assert.Equal(t, "TOKYO2024\n", out)
}

func TestGuardMorseArgs(t *testing.T) {
	root := newRootCmd()
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"morse text", []string{"decode", "-w", "morse", "-.-"}, []string{"decode", "-w", "morse", "--", "-.-"}},
		{"explicit separator", []string{"decode", "--", "-.-"}, []string{"decode", "--", "-.-"}},
		{"flag value kept", []string{"decode", "-p", "-.-", "..."}, []string{"decode", "-p", "-.-", "--", "..."}},
		{"no morse", []string{"encode", "--key=-1", "abc"}, []string{"encode", "--key=-1", "abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, guardMorseArgs(root, tt.in))
		})
	}
}

func TestCaesarKeyDefaultsFromConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("CIPHERBOX_CAESAR_KEY", "")

	out, err := run(t, home, "", "encode", "-w", "caesar", "abc")
	require.NoError(t, err)
	assert.Equal(t, "DEF\n", out)

	out, err = run(t, home, "", "encode", "-w", "caesar", "--key=-1", "abc")
	require.NoError(t, err)
	assert.Equal(t, "ZAB\n", out)

	out, err = run(t, home, "", "decode", "-w", "caesar", "-k", "25", "ZAB")
	require.NoError(t, err)
	assert.Equal(t, "ABC\n", out)
}

func TestDecodeStrict(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "", "decode", "-w", "morse", "...", "xx")
	require.NoError(t, err)
	assert.Equal(t, "S\n", out)

	_, err = run(t, home, "", "decode", "--strict", "-w", "morse", "...", "xx")
	assert.ErrorIs(t, err, domain.ErrUnrecognizedToken)
}

func TestAdd(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "", "add", "00000011", "00000010")
	require.NoError(t, err)
	assert.Equal(t, "00000101\n", out)

	out, err = run(t, home, "", "add", "11111111", "00000001")
	require.NoError(t, err)
	assert.Equal(t, "00000000\n", out)

	_, err = run(t, home, "", "add", "12345", "0")
	assert.ErrorIs(t, err, adder.ErrInvalidOperand)
}

func TestRecordAndHistory(t *testing.T) {
	home := t.TempDir()

	_, err := run(t, home, "", "encode", "--record", "-w", "morse", "SOS")
	require.NoError(t, err)
	_, err = run(t, home, "", "encode", "--record", "-w", "binary", "A")
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(home, "history.txt"))
	require.NoError(t, err)
	assert.Equal(t, "SOS\nMorse Code: ... --- ... \nA\nBinary: 01000001 \n", string(b))

	out, err := run(t, home, "", "history")
	require.NoError(t, err)
	assert.Equal(t, "1. SOS\n   Morse Code: ... --- ... \n2. A\n   Binary: 01000001 \n", out)

	out, err = run(t, home, "", "history", "clear")
	require.NoError(t, err)
	assert.Equal(t, "History cleared\n", out)

	out, err = run(t, home, "", "history")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestShellSession(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "SOS\n1\ny\nexit\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Output: ... --- ... ")

	out, err = run(t, home, "A\n2\ny\nn\nexit\n", "shell")
	require.NoError(t, err)
	assert.Contains(t, out, "Output: 01000001 ")

	out, err = run(t, home, "", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "1. SOS\n")
	assert.Contains(t, out, "2. A\n")
}

func TestUnknownConverter(t *testing.T) {
	_, err := run(t, t.TempDir(), "", "encode", "-w", "rot13", "abc")
	assert.Error(t, err)
}
