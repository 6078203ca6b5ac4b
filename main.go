package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/die-net/socketbroker/internal/dialer"
	"github.com/die-net/socketbroker/internal/relay"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		proxyURL = pflag.String("proxy", defaultProxy(), "Proxy URL: socks5://[user:pass@]host[:port] | http://[user:pass@]host[:port]")
		listen   = pflag.String("listen", "", "Local listen address to forward to TARGET (e.g. 127.0.0.1:2222). Empty relays stdin/stdout instead.")

		dialTimeout        = pflag.Duration("dial-timeout", 10*time.Second, "Timeout for DNS lookup and TCP connect to the proxy")
		negotiationTimeout = pflag.Duration("negotiation-timeout", 10*time.Second, "Timeout for the proxy handshake")
		tcpKeepAlive       = pflag.String("tcp-keepalive", "45:45:3", "TCP keepalive: on|off|keepidle:keepintvl:keepcnt")
		verbose            = pflag.Bool("verbose", false, "Enable per-connection debug logging")
	)

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] TARGET\n\nTARGET is host:port, passed to the proxy unresolved.\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.CommandLine.SortFlags = false
	pflag.Parse()

	configureLogging(*verbose)

	if pflag.NArg() != 1 {
		pflag.Usage()
		return errors.New("exactly one TARGET is required")
	}
	target := pflag.Arg(0)

	ka, err := parseTCPKeepAlive(*tcpKeepAlive)
	if err != nil {
		return fmt.Errorf("invalid --tcp-keepalive: %w", err)
	}

	if *proxyURL == "" {
		return errors.New("no proxy configured (set --proxy or ALL_PROXY)")
	}

	logger := log.Logger
	d, err := dialer.FromURL(dialer.Config{
		DialTimeout:        *dialTimeout,
		NegotiationTimeout: *negotiationTimeout,
		KeepAlive:          ka,
		Logger:             &logger,
	}, *proxyURL)
	if err != nil {
		return fmt.Errorf("invalid --proxy: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *listen == "" {
		tunnel, err := d.DialContext(ctx, "tcp", target)
		if err != nil {
			return err
		}
		return relay.CopyBidirectional(ctx, relay.StdioConn{Reader: os.Stdin, Writer: os.Stdout}, tunnel)
	}

	ln, err := relay.ListenTCP(ctx, "tcp", *listen, ka)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	fwd := &relay.Forwarder{Dialer: d, Target: target, Log: log.Logger}
	g.Go(func() error {
		if err := fwd.Serve(ctx, ln); err != nil {
			return fmt.Errorf("forward serve: %w", err)
		}
		return nil
	})
	log.Info().Str("listen", ln.Addr().String()).Str("proxy", d.Proxy().String()).Str("target", target).Msg("forwarding")

	err = g.Wait()
	log.Info().Msg("shutting down")
	return err
}

// configureLogging writes human-readable logs to stderr, keeping stdout free
// for the tunnel.
func configureLogging(verbose bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	})

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func parseTCPKeepAlive(s string) (net.KeepAliveConfig, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return net.KeepAliveConfig{}, errors.New("empty")
	}
	if s == "on" {
		return net.KeepAliveConfig{Enable: true}, nil
	}
	if s == "off" {
		return net.KeepAliveConfig{Enable: false}, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return net.KeepAliveConfig{}, errors.New("expected on|off|keepidle:keepintvl:keepcnt")
	}
	keepIdle, err := parsePositiveSeconds(parts[0])
	if err != nil {
		return net.KeepAliveConfig{}, fmt.Errorf("keepidle: %w", err)
	}
	keepIntvl, err := parsePositiveSeconds(parts[1])
	if err != nil {
		return net.KeepAliveConfig{}, fmt.Errorf("keepintvl: %w", err)
	}
	keepCnt, err := parsePositiveInt(parts[2])
	if err != nil {
		return net.KeepAliveConfig{}, fmt.Errorf("keepcnt: %w", err)
	}

	return net.KeepAliveConfig{
		Enable:   true,
		Idle:     keepIdle,
		Interval: keepIntvl,
		Count:    keepCnt,
	}, nil
}

func parsePositiveSeconds(s string) (time.Duration, error) {
	n, err := parsePositiveInt(s)
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Second, nil
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errors.New("must be > 0")
	}
	return n, nil
}

func defaultProxy() string {
	if p := os.Getenv("ALL_PROXY"); p != "" {
		return p
	}

	return os.Getenv("all_proxy")
}
