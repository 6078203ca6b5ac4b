package codec

import (
	"fmt"
	"unicode/utf8"
)

// MaxLengthPrefixed is the largest payload a single-byte length prefix can
// describe.
const MaxLengthPrefixed = 255

// ASCII encodes s as US-ASCII, rejecting any byte outside 0x00-0x7F.
func ASCII(field, s string) ([]byte, error) {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf {
			return nil, &EncodeError{Field: field, Msg: fmt.Sprintf("non-ASCII byte 0x%02x at offset %d", c, i)}
		}
		b[i] = c
	}
	return b, nil
}

// UTF8 encodes s as UTF-8. Strings holding invalid UTF-8 are rejected rather
// than passed through.
func UTF8(field, s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, &EncodeError{Field: field, Msg: "invalid UTF-8"}
	}
	return []byte(s), nil
}

// Copy returns a copy of b that shares no memory with it.
func Copy(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// CheckLengthPrefixed fails when b cannot be described by a single-byte
// length prefix.
func CheckLengthPrefixed(field string, b []byte) error {
	if len(b) > MaxLengthPrefixed {
		return &EncodeError{Field: field, Msg: fmt.Sprintf("length %d exceeds %d bytes", len(b), MaxLengthPrefixed)}
	}
	return nil
}
