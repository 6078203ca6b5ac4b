package testutil

import (
	"context"
	"net"
	"sync"
	"testing"
)

// StartSingleAcceptServer runs handler on the first connection accepted on
// a loopback listener. The returned wait closes the listener and blocks
// until handler has returned.
func StartSingleAcceptServer(t *testing.T, ctx context.Context, handler func(net.Conn)) (net.Listener, func()) {
	t.Helper()

	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c, err := ln.Accept()
		if err != nil {
			return
		}
		defer c.Close()
		handler(c)
	}()

	wait := func() {
		_ = ln.Close()
		wg.Wait()
	}

	return ln, wait
}

// StartProxyServer is StartSingleAcceptServer for a proxy fixture such as
// ServeSOCKS5Connect or ServeHTTPConnect, with credentials user and pass.
func StartProxyServer(t *testing.T, ctx context.Context, serve func(context.Context, net.Conn, string, string) error, user, pass string) (net.Listener, func()) {
	t.Helper()

	return StartSingleAcceptServer(t, ctx, func(c net.Conn) {
		_ = serve(ctx, c, user, pass)
	})
}
