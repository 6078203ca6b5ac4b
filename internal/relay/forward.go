package relay

import (
	"context"
	"errors"
	"net"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/net/proxy"
)

// Forwarder accepts local connections and relays each one through its own
// tunnel to Target.
type Forwarder struct {
	Dialer proxy.ContextDialer
	Target string
	Log    zerolog.Logger
}

// Serve accepts connections from ln until ctx is cancelled or Accept fails,
// then waits for the relays in flight to finish. Closing ln because ctx was
// cancelled is not an error.
func (f *Forwarder) Serve(ctx context.Context, ln net.Listener) error {
	stop := context.AfterFunc(ctx, func() {
		_ = ln.Close()
	})
	defer stop()

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		c, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil && errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			f.handleConn(ctx, c)
		}()
	}
}

func (f *Forwarder) handleConn(ctx context.Context, c net.Conn) {
	log := f.Log.With().Str("client", c.RemoteAddr().String()).Logger()

	tunnel, err := f.Dialer.DialContext(ctx, "tcp", f.Target)
	if err != nil {
		_ = c.Close()
		log.Warn().Err(err).Str("target", f.Target).Msg("tunnel failed")
		return
	}

	log.Debug().Str("target", f.Target).Msg("relaying")
	if err := CopyBidirectional(ctx, c, tunnel); err != nil {
		log.Debug().Err(err).Msg("relay ended")
	}
}
