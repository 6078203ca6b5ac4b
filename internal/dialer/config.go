package dialer

import (
	"net"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	// DialTimeout bounds DNS lookup and TCP connect to the proxy.
	DialTimeout time.Duration
	// NegotiationTimeout bounds the proxy handshake. Zero means no limit.
	NegotiationTimeout time.Duration
	KeepAlive          net.KeepAliveConfig
	// Logger receives one debug event per dial. Nil disables logging.
	Logger *zerolog.Logger
}

func (c Config) logger() zerolog.Logger {
	if c.Logger == nil {
		return zerolog.Nop()
	}
	return *c.Logger
}
