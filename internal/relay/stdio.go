package relay

import (
	"errors"
	"io"
)

// StdioConn joins a reader and a writer, typically a process's stdin and
// stdout, into one stream.
type StdioConn struct {
	io.Reader
	io.Writer
}

// CloseWrite closes the writer if it can be closed.
func (s StdioConn) CloseWrite() error {
	if c, ok := s.Writer.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Close closes both halves where they can be closed.
func (s StdioConn) Close() error {
	var errs []error
	if c, ok := s.Reader.(io.Closer); ok {
		errs = append(errs, c.Close())
	}
	errs = append(errs, s.CloseWrite())
	return errors.Join(errs...)
}
