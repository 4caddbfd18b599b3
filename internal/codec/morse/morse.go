package morse

import (
	"strings"

	"cipherbox/internal/domain"
)

// Name is the label used in history records.
const Name = "Morse Code"

// Converter encodes and decodes Morse code.
type Converter struct {
	// Strict makes Decode fail on tokens that are not in Table.
	Strict bool
}

// New returns a lenient Converter.
func New() *Converter { return &Converter{} }

// NewStrict returns a Converter that rejects unknown tokens.
func NewStrict() *Converter { return &Converter{Strict: true} }

// Name returns "Morse Code", the label used in history records.
func (c *Converter) Name() string { return Name }

// Encode maps letters and digits to codes, each followed by a space.
func (c *Converter) Encode(input string) string {
	var b strings.Builder
	for i := 0; i < len(input); i++ {
		ch := input[i]
		switch {
		case ch >= 'a' && ch <= 'z':
			b.WriteString(Table[ch-'a'])
		case ch >= 'A' && ch <= 'Z':
			b.WriteString(Table[ch-'A'])
		case ch >= '0' && ch <= '9':
			b.WriteString(Table[digitOffset+int(ch-'0')])
		default:
			continue
		}
		b.WriteByte(' ')
	}
	return b.String()
}

// Decode maps whitespace-separated codes back to uppercase letters and digits.
func (c *Converter) Decode(input string) (string, error) {
	tokens := strings.Fields(input)
	out := make([]byte, 0, len(tokens))
	for i, tok := range tokens {
		idx := lookup(tok)
		if idx < 0 {
			if c.Strict {
				return "", &domain.DecodeError{
					Converter: Name,
					Kind:      domain.UnrecognizedToken,
					Token:     tok,
					Index:     i,
				}
			}
			continue
		}
		out = append(out, symbol(idx))
	}
	return string(out), nil
}

var _ domain.Converter = (*Converter)(nil)
