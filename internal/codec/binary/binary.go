package binary

import (
	"strconv"
	"strings"

	"cipherbox/internal/domain"
)

// Name is the label used in history records.
const Name = "Binary"

// Converter encodes bytes as space-separated 8-bit binary tokens.
type Converter struct{}

// New returns a binary Converter.
func New() *Converter { return &Converter{} }

// Name returns "Binary", the label used in history records.
func (c *Converter) Name() string { return Name }

// Encode renders each byte of input as 8 binary digits plus a trailing space.
func (c *Converter) Encode(input string) string {
	var b strings.Builder
	b.Grow(len(input) * 9)
	for i := 0; i < len(input); i++ {
		b.WriteString(Byte(input[i]))
		b.WriteByte(' ')
	}
	return b.String()
}

// Decode parses whitespace-separated binary tokens back into bytes.
func (c *Converter) Decode(input string) (string, error) {
	tokens := strings.Fields(input)
	out := make([]byte, 0, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseUint(tok, 2, 8)
		if err != nil {
			return "", &domain.DecodeError{
				Converter: Name,
				Kind:      domain.InvalidToken,
				Token:     tok,
				Index:     i,
			}
		}
		out = append(out, byte(v))
	}
	return string(out), nil
}

// Byte formats v as 8 zero-padded binary digits.
func Byte(v byte) string {
	s := strconv.FormatUint(uint64(v), 2)
	return strings.Repeat("0", 8-len(s)) + s
}

var _ domain.Converter = (*Converter)(nil)
