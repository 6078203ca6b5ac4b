package dialer

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/net/proxy"

	"github.com/die-net/socketbroker/internal/broker"
	"github.com/die-net/socketbroker/internal/httpconnect"
	"github.com/die-net/socketbroker/internal/socks5"
)

// ProxyDialer dials TCP destinations through one proxy.
type ProxyDialer struct {
	cfg    Config
	proxy  broker.Config
	broker broker.Broker
	direct *directDialer
	log    zerolog.Logger
}

var (
	_ proxy.Dialer        = (*ProxyDialer)(nil)
	_ proxy.ContextDialer = (*ProxyDialer)(nil)
)

// New returns a dialer for the proxy described by pc.
func New(cfg Config, pc broker.Config) (*ProxyDialer, error) {
	b, err := brokerFor(pc.Kind())
	if err != nil {
		return nil, err
	}
	return &ProxyDialer{
		cfg:    cfg,
		proxy:  pc,
		broker: b,
		direct: newDirectDialer(cfg),
		log:    cfg.logger(),
	}, nil
}

// FromURL parses rawURL with broker.ParseURL and returns a dialer for it.
//
// Supported schemes:
//   - socks5://[user:pass@]host[:port]
//   - http://[user:pass@]host[:port]
func FromURL(cfg Config, rawURL string) (*ProxyDialer, error) {
	pc, err := broker.ParseURL(rawURL)
	if err != nil {
		return nil, err
	}
	return New(cfg, pc)
}

func brokerFor(kind broker.Kind) (broker.Broker, error) {
	switch kind {
	case broker.KindSOCKS5:
		return socks5.Broker{}, nil
	case broker.KindHTTPConnect:
		return httpconnect.Broker{}, nil
	default:
		return nil, fmt.Errorf("unsupported proxy kind %v", kind)
	}
}

// Proxy returns the proxy configuration.
func (d *ProxyDialer) Proxy() broker.Config {
	return d.proxy
}

// Dial is DialContext with a background context.
func (d *ProxyDialer) Dial(network, address string) (net.Conn, error) {
	return d.DialContext(context.Background(), network, address)
}

// DialContext connects to the proxy and asks it for a tunnel to address,
// returned as a net.Conn positioned at the first tunnelled byte.
//
// Host names in address are passed to the proxy unresolved. If
// NegotiationTimeout is set, a deadline is applied during the handshake and
// cleared before returning. Cancelling ctx during the handshake closes the
// connection. On any failure the connection is closed; proxy refusals are
// reported as *broker.AuthError or *broker.ConnectError and malformed replies
// as *codec.DecodeError.
func (d *ProxyDialer) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	kind := d.proxy.Kind()
	if !strings.HasPrefix(network, "tcp") {
		return nil, fmt.Errorf("%s proxy dial %s %s: unsupported network", kind, network, address)
	}
	dst, err := broker.ParseAddr(address)
	if err != nil {
		return nil, fmt.Errorf("%s proxy dial: %w", kind, err)
	}

	log := d.log.With().
		Str("attempt", uuid.NewString()).
		Str("proxy", d.proxy.String()).
		Str("dst", dst.String()).
		Logger()

	start := time.Now()
	c, err := d.direct.DialContext(ctx, network, d.proxy.ProxyAddr())
	if err != nil {
		log.Debug().Err(err).Msg("proxy unreachable")
		return nil, fmt.Errorf("%s proxy: %w", kind, err)
	}

	if d.cfg.NegotiationTimeout > 0 {
		_ = c.SetDeadline(time.Now().Add(d.cfg.NegotiationTimeout))
	}

	stop := context.AfterFunc(ctx, func() {
		_ = c.Close()
	})
	err = d.broker.Connect(c, dst, d.proxy)
	if !stop() && err == nil {
		err = ctx.Err()
	}
	if err != nil {
		_ = c.Close()
		log.Debug().Err(err).Dur("elapsed", time.Since(start)).Msg("handshake failed")
		return nil, fmt.Errorf("%s proxy dial %s: %w", kind, address, err)
	}

	if d.cfg.NegotiationTimeout > 0 {
		_ = c.SetDeadline(time.Time{})
	}

	log.Debug().Dur("elapsed", time.Since(start)).Msg("tunnel established")
	return c, nil
}
