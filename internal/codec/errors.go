package codec

import "fmt"

// DecodeError reports malformed, truncated, or unrecognized wire data.
type DecodeError struct {
	// Field names the wire field being decoded.
	Field string
	Msg   string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode %s: %s: %v", e.Field, e.Msg, e.Err)
	}
	return fmt.Sprintf("decode %s: %s", e.Field, e.Msg)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError reports a value that the wire format cannot carry.
type EncodeError struct {
	Field string
	Msg   string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %s", e.Field, e.Msg)
}

func decodeErrorf(field string, err error, format string, args ...any) *DecodeError {
	return &DecodeError{Field: field, Msg: fmt.Sprintf(format, args...), Err: err}
}
