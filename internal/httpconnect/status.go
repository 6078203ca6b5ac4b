package httpconnect

import (
	"fmt"
	"strings"

	"github.com/die-net/socketbroker/internal/codec"
)

const (
	fieldVersion = "http protocol version"
	fieldStatus  = "http status code"
	fieldReason  = "http reason phrase"

	versionLen    = len("HTTP/1.0")
	statusCodeLen = 3

	// maxReasonLen bounds how much of an untrusted status line is buffered.
	maxReasonLen = 8 << 10
)

// DecodeStatusLine reads "HTTP/1.x SP DDD SP reason CRLF" from r.
//
// The version token is read as exactly len("HTTP/1.0") bytes and must be
// HTTP/1.0 or HTTP/1.1. The reason phrase runs to the next LF; CR bytes in it
// are dropped.
func DecodeStatusLine(r *codec.Reader) (StatusLine, error) {
	version, err := decodeVersion(r)
	if err != nil {
		return StatusLine{}, err
	}
	if err := expectSpace(r, fieldStatus); err != nil {
		return StatusLine{}, err
	}
	code, err := decodeStatusCode(r)
	if err != nil {
		return StatusLine{}, err
	}
	if err := expectSpace(r, fieldReason); err != nil {
		return StatusLine{}, err
	}
	reason, err := decodeReason(r)
	if err != nil {
		return StatusLine{}, err
	}
	return StatusLine{Version: version, Code: code, Reason: reason}, nil
}

func decodeVersion(r *codec.Reader) (Version, error) {
	tok, err := r.Bytes(fieldVersion, versionLen)
	if err != nil {
		return 0, err
	}
	switch string(tok) {
	case "HTTP/1.0":
		return Version10, nil
	case "HTTP/1.1":
		return Version11, nil
	default:
		return 0, &codec.DecodeError{Field: fieldVersion, Msg: fmt.Sprintf("unsupported version %q", tok)}
	}
}

func decodeStatusCode(r *codec.Reader) (int, error) {
	digits, err := r.Bytes(fieldStatus, statusCodeLen)
	if err != nil {
		return 0, err
	}
	code := 0
	for _, d := range digits {
		if d < '0' || d > '9' {
			return 0, &codec.DecodeError{Field: fieldStatus, Msg: fmt.Sprintf("non-numeric status code %q", digits)}
		}
		code = code*10 + int(d-'0')
	}
	return code, nil
}

func decodeReason(r *codec.Reader) (string, error) {
	var b strings.Builder
	for {
		c, err := r.Byte(fieldReason)
		if err != nil {
			return "", err
		}
		switch c {
		case '\n':
			return b.String(), nil
		case '\r':
			continue
		}
		if b.Len() >= maxReasonLen {
			return "", &codec.DecodeError{Field: fieldReason, Msg: fmt.Sprintf("longer than %d bytes", maxReasonLen)}
		}
		b.WriteByte(c)
	}
}

func expectSpace(r *codec.Reader, field string) error {
	c, err := r.Byte(field)
	if err != nil {
		return err
	}
	if c != ' ' {
		return &codec.DecodeError{Field: field, Msg: fmt.Sprintf("unexpected separator 0x%02x", c)}
	}
	return nil
}
