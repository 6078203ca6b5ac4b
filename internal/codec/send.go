package codec

import (
	"fmt"
	"io"
)

type flusher interface {
	Flush() error
}

// Send writes msg to w as one unit and flushes w if it buffers.
func Send(w io.Writer, name string, msg []byte) error {
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if f, ok := w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush %s: %w", name, err)
		}
	}
	return nil
}
