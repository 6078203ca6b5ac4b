package codec

import (
	"errors"
	"fmt"
	"io"
)

// Reader pulls bytes from a stream one field at a time. It never reads ahead,
// so the stream is positioned exactly after the last decoded field.
type Reader struct {
	r   io.Reader
	buf [1]byte
}

// NewReader returns a Reader pulling from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadByte implements io.ByteReader. Errors are returned unchanged.
func (r *Reader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(r.r, r.buf[:]); err != nil {
		return 0, err
	}
	return r.buf[0], nil
}

// Byte reads one byte of field. End of stream is reported as a DecodeError.
func (r *Reader) Byte(field string) (byte, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, readError(field, err)
	}
	return b, nil
}

// Bytes reads exactly n bytes of field.
func (r *Reader) Bytes(field string, n int) ([]byte, error) {
	b := make([]byte, n)
	if n == 0 {
		return b, nil
	}
	if _, err := io.ReadFull(r.r, b); err != nil {
		return nil, readError(field, err)
	}
	return b, nil
}

// Uint16 reads a big-endian 16-bit field.
func (r *Reader) Uint16(field string) (uint16, error) {
	b, err := r.Bytes(field, 2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

func readError(field string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return decodeErrorf(field, err, "premature end of stream")
	}
	return fmt.Errorf("read %s: %w", field, err)
}
