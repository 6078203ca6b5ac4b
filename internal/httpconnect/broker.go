package httpconnect

import (
	"fmt"
	"io"
	"strings"

	"github.com/die-net/socketbroker/internal/auth"
	"github.com/die-net/socketbroker/internal/broker"
	"github.com/die-net/socketbroker/internal/codec"
)

// Broker performs HTTP CONNECT handshakes.
type Broker struct{}

var _ broker.Broker = Broker{}

// Connect asks the proxy on conn to open a tunnel to dst.
//
// If cfg holds credentials the Basic provider can use, they are sent in a
// Proxy-Authorization header. A 200 response completes the handshake; 407
// and 401 produce a *broker.AuthError (wrapped in *AuthRequiredError for
// 407), and any other status a *broker.ConnectError.
func (b Broker) Connect(conn io.ReadWriteCloser, dst broker.Addr, cfg broker.Config) error {
	_, err := b.Handshake(conn, dst, cfg)
	return err
}

// Handshake is Connect returning the decoded response. The response is
// returned alongside AuthError and ConnectError failures too.
func (Broker) Handshake(conn io.ReadWriter, dst broker.Addr, cfg broker.Config) (Response, error) {
	if err := dst.Validate(); err != nil {
		return Response{}, fmt.Errorf("http proxy: %w", err)
	}

	var headers Headers
	if creds, ok := cfg.Credentials(); ok {
		if value, ok := (auth.Basic{}).Authorization(creds); ok {
			headers.Add(HeaderProxyAuthorization, value)
		}
	}

	req, err := EncodeRequest(NewConnectRequest(dst.Hostname(), dst.Port, headers))
	if err != nil {
		return Response{}, err
	}
	if err := codec.Send(conn, "http connect request", req); err != nil {
		return Response{}, err
	}

	resp, err := DecodeResponse(codec.NewReader(conn))
	if err != nil {
		return Response{}, err
	}

	switch resp.Code {
	case StatusOK:
		return resp, nil
	case StatusProxyAuthenticationRequired:
		challenges := auth.ParseChallenges(resp.Headers.Values(HeaderProxyAuthenticate))
		return resp, &AuthRequiredError{
			Auth: broker.AuthErrorf(broker.KindHTTPConnect,
				"authentication required: status [%d] reason [%s] challenges [%s]",
				resp.Code, resp.Reason, formatChallenges(challenges)),
			Challenges: challenges,
		}
	case StatusUnauthorized:
		return resp, broker.AuthErrorf(broker.KindHTTPConnect,
			"authentication failed: status [%d] reason [%s]", resp.Code, resp.Reason)
	default:
		return resp, &broker.ConnectError{Proxy: broker.KindHTTPConnect, Code: resp.Code, Reason: resp.Reason}
	}
}

func formatChallenges(challenges []auth.Challenge) string {
	s := make([]string, len(challenges))
	for i, c := range challenges {
		s[i] = c.String()
	}
	return strings.Join(s, "; ")
}
