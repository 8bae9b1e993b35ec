package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlainCodec(t *testing.T) {
	codec := NewPlainCodec()

	stored, err := codec.Encode("password123")
	require.NoError(t, err)
	require.Equal(t, "password123", stored)

	require.NoError(t, codec.Verify(stored, "password123"))
	require.Error(t, codec.Verify(stored, "password124"))
	require.Error(t, codec.Verify(stored, ""))
}

func TestBcryptCodec(t *testing.T) {
	codec := NewBcryptCodec(4) // min cost keeps the test fast

	stored, err := codec.Encode("password123")
	require.NoError(t, err)
	require.NotEqual(t, "password123", stored)

	require.NoError(t, codec.Verify(stored, "password123"))
	require.Error(t, codec.Verify(stored, "wrong"))
}

func TestBcryptCodec_LongPassword(t *testing.T) {
	codec := NewBcryptCodec(4)

	// bcrypt truncates input at 72 bytes; the SHA256 pre-digest must make
	// differences beyond that limit still matter.
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'a'
	}
	other := append([]byte{}, long...)
	other[99] = 'b'

	stored, err := codec.Encode(string(long))
	require.NoError(t, err)
	require.NoError(t, codec.Verify(stored, string(long)))
	require.Error(t, codec.Verify(stored, string(other)))
}
