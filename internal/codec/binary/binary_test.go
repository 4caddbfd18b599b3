package binary_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cipherbox/internal/codec/binary"
	"cipherbox/internal/domain"
)

func TestEncode_Letter(t *testing.T) {
	assert.Equal(t, "01000001 ", binary.New().Encode("A"))
	assert.Equal(t, "01001000 01101001 ", binary.New().Encode("Hi"))
	assert.Equal(t, "", binary.New().Encode(""))
}

func TestRoundTrip_AllBytes(t *testing.T) {
	c := binary.New()
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	in := string(all)

	got, err := c.Decode(c.Encode(in))
	require.NoError(t, err)
	require.Equal(t, in, got)
}

func TestRoundTrip_Text(t *testing.T) {
	c := binary.New()
	for _, in := range []string{"", " ", "hello, world", "tab\tnew\nline", "héllo"} {
		got, err := c.Decode(c.Encode(in))
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, in, got)
	}
}

func TestDecode_ToleratesWhitespaceAndLeadingZeros(t *testing.T) {
	got, err := binary.New().Decode("  01000001\n\t1000010   000001000011")
	require.NoError(t, err)
	assert.Equal(t, "ABC", got)
}

func TestDecode_InvalidTokens(t *testing.T) {
	cases := map[string]struct {
		in    string
		token string
		index int
	}{
		"non-binary digit": {in: "01000001 0100002", token: "0100002", index: 1},
		"nine bits":        {in: "100000000", token: "100000000", index: 0},
		"letters":          {in: "abc", token: "abc", index: 0},
		"sign":             {in: "+0101", token: "+0101", index: 0},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := binary.New().Decode(tc.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidToken))

			var de *domain.DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tc.token, de.Token)
			assert.Equal(t, tc.index, de.Index)
			assert.Equal(t, binary.Name, de.Converter)
		})
	}
}

func TestByte(t *testing.T) {
	assert.Equal(t, "00000000", binary.Byte(0))
	assert.Equal(t, "00000101", binary.Byte(5))
	assert.Equal(t, "11111111", binary.Byte(255))
}
