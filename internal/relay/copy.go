package relay

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"

	"golang.org/x/sync/errgroup"
)

type closeWriter interface {
	CloseWrite() error
}

// CopyBidirectional copies left to right and right to left until both
// directions reach EOF, either copy fails, or ctx is cancelled. When one
// direction finishes cleanly its destination is half-closed if it supports
// CloseWrite; otherwise both ends are closed. Both ends are always closed on
// return.
func CopyBidirectional(ctx context.Context, left, right io.ReadWriteCloser) error {
	g, gctx := errgroup.WithContext(ctx)

	var closeOnce sync.Once
	closeBoth := func() {
		closeOnce.Do(func() {
			_ = left.Close()
			_ = right.Close()
		})
	}
	defer closeBoth()

	done := make(chan struct{})

	oneWay := func(dst io.WriteCloser, src io.Reader) error {
		_, err := io.Copy(dst, src)
		if err != nil {
			return err
		}
		if cw, ok := dst.(closeWriter); ok {
			return ignoreClosed(cw.CloseWrite())
		}
		closeBoth()
		return nil
	}

	g.Go(func() error {
		return ignoreClosed(oneWay(left, right))
	})
	g.Go(func() error {
		return ignoreClosed(oneWay(right, left))
	})

	// If the context is canceled, ensure we close both sides to unblock Copy.
	go func() {
		select {
		case <-gctx.Done():
			closeBoth()
		case <-done:
		}
	}()

	err := g.Wait()
	close(done)
	return err
}

// ignoreClosed drops the error a copy sees after the other direction closed
// both ends.
func ignoreClosed(err error) error {
	if errors.Is(err, net.ErrClosed) || errors.Is(err, io.ErrClosedPipe) {
		return nil
	}
	return err
}
