package socks5

import (
	"io"

	"github.com/die-net/socketbroker/internal/broker"
	"github.com/die-net/socketbroker/internal/codec"
)

// Broker performs SOCKS5 CONNECT handshakes.
type Broker struct{}

var _ broker.Broker = Broker{}

// Connect negotiates authentication with the server on conn and asks it to
// open a tunnel to dst.
//
// When the server answers with NO ACCEPTABLE METHODS, conn is closed before
// the *broker.AuthError is returned, as RFC 1928 requires.
func (b Broker) Connect(conn io.ReadWriteCloser, dst broker.Addr, cfg broker.Config) error {
	_, err := b.Handshake(conn, dst, cfg)
	return err
}

// Handshake is Connect returning the server's reply, which carries the
// address the server bound for the tunnel. The reply is also returned with a
// *broker.ConnectError.
func (Broker) Handshake(conn io.ReadWriteCloser, dst broker.Addr, cfg broker.Config) (Reply, error) {
	// Encode the request first so a destination the wire format cannot carry
	// fails before any byte is sent.
	req, err := EncodeRequest(Request{Command: CommandConnect, Addr: dst})
	if err != nil {
		return Reply{}, err
	}

	greeting, err := EncodeGreeting(Greeting{Methods: offeredMethods(cfg)})
	if err != nil {
		return Reply{}, err
	}
	if err := codec.Send(conn, "socks5 greeting", greeting); err != nil {
		return Reply{}, err
	}

	r := codec.NewReader(conn)
	selected, err := DecodeServerAuthentication(r)
	if err != nil {
		return Reply{}, err
	}
	if err := authenticate(conn, r, selected.Method, cfg); err != nil {
		return Reply{}, err
	}

	if err := codec.Send(conn, "socks5 request", req); err != nil {
		return Reply{}, err
	}
	reply, err := DecodeReply(r)
	if err != nil {
		return Reply{}, err
	}
	if reply.Status != ReplySucceeded {
		return reply, &broker.ConnectError{Proxy: broker.KindSOCKS5, Code: int(reply.Status), Reason: reply.Status.String()}
	}
	return reply, nil
}

// offeredMethods always offers no authentication, and username/password
// only when matching credentials are configured.
func offeredMethods(cfg broker.Config) []Method {
	methods := []Method{MethodNoAuth}
	if _, ok := cfg.UsernamePassword(); ok {
		methods = append(methods, MethodUsernamePassword)
	}
	return methods
}

func authenticate(conn io.ReadWriteCloser, r *codec.Reader, method Method, cfg broker.Config) error {
	switch method {
	case MethodNoAuth:
		return nil
	case MethodNoAcceptable:
		_ = conn.Close()
		return broker.AuthErrorf(broker.KindSOCKS5, "authentication failed: %s", method)
	case MethodUsernamePassword:
		creds, ok := cfg.UsernamePassword()
		if !ok {
			return broker.AuthErrorf(broker.KindSOCKS5, "authentication failed: server requires %s but no credentials are configured", method)
		}
		return authenticateUsernamePassword(conn, r, creds)
	default:
		return broker.AuthErrorf(broker.KindSOCKS5, "authentication failed: server method not supported [%s]", method)
	}
}

func authenticateUsernamePassword(conn io.Writer, r *codec.Reader, creds *broker.UsernamePassword) error {
	password := creds.Password()
	msg, err := EncodeUsernamePassword(UsernamePasswordAuthentication{Username: creds.Username(), Password: password})
	clear(password)
	if err != nil {
		return &broker.AuthError{Proxy: broker.KindSOCKS5, Msg: "credentials cannot be sent", Err: err}
	}

	err = codec.Send(conn, "socks5 username/password", msg)
	clear(msg)
	if err != nil {
		return err
	}

	status, err := DecodeUsernamePasswordStatus(r)
	if err != nil {
		return err
	}
	if !status.Succeeded() {
		return broker.AuthErrorf(broker.KindSOCKS5, "authentication failed: status [%d] username/password rejected", status.Status)
	}
	return nil
}
