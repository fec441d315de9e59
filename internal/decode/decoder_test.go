package decode

import (
	"encoding/base64"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_ValidInputs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"html", "PGgxPkhlbGxvPC9oMT4=", "<h1>Hello</h1>"},
		{"padded", "aGVsbG8=", "hello"},
		{"unpadded", "aGVsbG8", "hello"},
		{"double padding", "aGk=", "hi"},
		{"double padding stripped", "YQ==", "a"},
		{"surrounding whitespace", "  aGVsbG8=\n", "hello"},
		{"inner whitespace", "aGVs\nbG8=\r\n", "hello"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			payload, err := Decode(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.expected, payload.Text())
		})
	}
}

func TestDecode_KeepsTrimmedRaw(t *testing.T) {
	payload, err := Decode("  aGVsbG8=\t")
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8=", payload.Raw)
}

func TestDecode_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := Decode(input)
		assert.ErrorIs(t, err, ErrEmptyInput, "input %q", input)
	}
}

func TestDecode_InvalidInputs(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason string
	}{
		{"bang", "abc!", ReasonBadCharacter},
		{"dangling character", "abcde", ReasonBadLength},
		{"too much padding", "a===", ReasonBadCharacter},
		{"padding in the middle", "ab=c", ReasonBadCharacter},
		{"url alphabet", "ab-_", ReasonBadCharacter},
		{"non ascii", "aGVsbGé", ReasonBadCharacter},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			payload, err := Decode(test.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidBase64))
			assert.Nil(t, payload.Data)

			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, test.reason, decodeErr.Reason)
		})
	}
}

func TestDecodeError_Message(t *testing.T) {
	err := &DecodeError{Offset: 3, Reason: ReasonBadCharacter}
	assert.Equal(t, "invalid base64 input: character outside the base64 alphabet at offset 3", err.Error())

	err = &DecodeError{Offset: -1, Reason: ReasonBadLength}
	assert.Equal(t, "invalid base64 input: length leaves a dangling character", err.Error())
}

func TestDecodeString_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		data := make([]byte, rng.Intn(64)+1)
		rng.Read(data)

		encoded := base64.StdEncoding.EncodeToString(data)
		decoded, err := DecodeString(encoded)
		require.NoError(t, err, "input %q", encoded)
		assert.Equal(t, data, decoded)
		assert.Equal(t, encoded, base64.StdEncoding.EncodeToString(decoded))

		// Same bytes without padding
		raw := base64.RawStdEncoding.EncodeToString(data)
		decoded, err = DecodeString(raw)
		require.NoError(t, err, "input %q", raw)
		assert.Equal(t, data, decoded)
	}
}
