package decode

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/ytget/unbase64/internal/model"
)

// Decoding constants
const (
	PaddingChar = '='
	QuantumSize = 4
)

// Reasons reported in DecodeError
const (
	ReasonBadLength    = "length leaves a dangling character"
	ReasonBadCharacter = "character outside the base64 alphabet"
	ReasonCorrupt      = "corrupt input"
)

// Decode trims raw, validates it and returns the decoded payload.
// Decoding is a single synchronous attempt with no retry.
func Decode(raw string) (model.Payload, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return model.Payload{}, ErrEmptyInput
	}

	data, err := DecodeString(trimmed)
	if err != nil {
		return model.Payload{}, err
	}

	return model.Payload{Raw: trimmed, Data: data}, nil
}

// DecodeString decodes s with the forgiving-base64 algorithm
func DecodeString(s string) ([]byte, error) {
	clean := stripASCIIWhitespace(s)

	if len(clean)%QuantumSize == 0 {
		if strings.HasSuffix(clean, "==") {
			clean = clean[:len(clean)-2]
		} else if strings.HasSuffix(clean, "=") {
			clean = clean[:len(clean)-1]
		}
	}

	if len(clean)%QuantumSize == 1 {
		return nil, &DecodeError{Offset: -1, Reason: ReasonBadLength}
	}

	for i := 0; i < len(clean); i++ {
		if !isAlphabet(clean[i]) {
			return nil, &DecodeError{Offset: i, Reason: ReasonBadCharacter}
		}
	}

	data, err := base64.RawStdEncoding.DecodeString(clean)
	if err != nil {
		var corrupt base64.CorruptInputError
		if errors.As(err, &corrupt) {
			return nil, &DecodeError{Offset: int(corrupt), Reason: ReasonCorrupt}
		}
		return nil, &DecodeError{Offset: -1, Reason: err.Error()}
	}

	return data, nil
}

// stripASCIIWhitespace removes tab, LF, FF, CR and space
func stripASCIIWhitespace(s string) string {
	if !strings.ContainsAny(s, "\t\n\f\r ") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\t', '\n', '\f', '\r', ' ':
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isAlphabet(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '+' || c == '/':
		return true
	}
	return false
}
