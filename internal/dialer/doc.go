// Package dialer opens tunnelled connections through a SOCKS5 or HTTP
// CONNECT proxy.
//
// A ProxyDialer dials the proxy directly, runs the matching broker's
// handshake on the new connection and hands back the tunnel as a net.Conn.
// It satisfies golang.org/x/net/proxy's Dialer and ContextDialer.
package dialer
