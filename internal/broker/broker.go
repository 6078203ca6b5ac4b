package broker

import "io"

// Broker performs one proxy handshake over a stream that is already connected
// to the proxy server.
//
// Connect blocks until the tunnel to dst is established or the handshake
// fails. It never sets deadlines on conn; timeouts and cancellation belong to
// the caller. Implementations hold no state and may be shared between
// goroutines working on different streams.
type Broker interface {
	Connect(conn io.ReadWriteCloser, dst Addr, cfg Config) error
}
