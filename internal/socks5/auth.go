package socks5

import (
	"bytes"
	"fmt"

	"github.com/die-net/socketbroker/internal/codec"
)

// Greeting is the client's list of offered authentication methods.
//
//	+-----+----------+----------+
//	| VER | NMETHODS | METHODS  |
//	+-----+----------+----------+
//	|  1  |    1     | 1 to 255 |
type Greeting struct {
	Methods []Method
}

// EncodeGreeting encodes g. At least one and at most 255 methods are allowed.
func EncodeGreeting(g Greeting) ([]byte, error) {
	if len(g.Methods) == 0 {
		return nil, &codec.EncodeError{Field: "socks5 greeting", Msg: "no methods offered"}
	}
	if len(g.Methods) > codec.MaxLengthPrefixed {
		return nil, &codec.EncodeError{Field: "socks5 greeting", Msg: fmt.Sprintf("%d methods offered", len(g.Methods))}
	}
	b := make([]byte, 0, 2+len(g.Methods))
	b = append(b, byte(Version5), byte(len(g.Methods)))
	for _, m := range g.Methods {
		b = append(b, byte(m))
	}
	return b, nil
}

// ServerAuthentication is the method selected by the server.
type ServerAuthentication struct {
	Method Method
}

// DecodeServerAuthentication reads the VER and METHOD bytes of the server's
// method selection.
func DecodeServerAuthentication(r *codec.Reader) (ServerAuthentication, error) {
	if _, err := versionField.Read(r); err != nil {
		return ServerAuthentication{}, err
	}
	m, err := methodField.Read(r)
	if err != nil {
		return ServerAuthentication{}, err
	}
	return ServerAuthentication{Method: m}, nil
}

// UsernamePasswordAuthentication is the RFC 1929 sub-negotiation request.
//
//	+-----+------+----------+------+----------+
//	| VER | ULEN |  UNAME   | PLEN |  PASSWD  |
//	+-----+------+----------+------+----------+
//	|  1  |  1   | 1 to 255 |  1   | 1 to 255 |
type UsernamePasswordAuthentication struct {
	Username string
	Password []byte
}

// EncodeUsernamePassword encodes a. The username is sent as UTF-8. Either
// field longer than 255 bytes is rejected; nothing is truncated.
func EncodeUsernamePassword(a UsernamePasswordAuthentication) ([]byte, error) {
	if a.Username == "" {
		return nil, &codec.EncodeError{Field: "socks5 username", Msg: "empty username"}
	}
	user, err := codec.UTF8("socks5 username", a.Username)
	if err != nil {
		return nil, err
	}
	if err := codec.CheckLengthPrefixed("socks5 username", user); err != nil {
		return nil, err
	}
	if err := codec.CheckLengthPrefixed("socks5 password", a.Password); err != nil {
		return nil, err
	}

	var b bytes.Buffer
	b.Grow(3 + len(user) + len(a.Password))
	b.WriteByte(byte(UserPassVersion1))
	b.WriteByte(byte(len(user)))
	b.Write(user)
	b.WriteByte(byte(len(a.Password)))
	b.Write(a.Password)
	return b.Bytes(), nil
}

// UsernamePasswordStatus is the server's sub-negotiation response.
type UsernamePasswordStatus struct {
	Version UserPassVersion
	Status  uint8
}

// Succeeded reports whether the server accepted the credentials.
func (s UsernamePasswordStatus) Succeeded() bool {
	return s.Status == UserPassStatusSuccess
}

// DecodeUsernamePasswordStatus reads VER and STATUS. A non-zero status is
// returned as data; interpreting it is up to the caller.
func DecodeUsernamePasswordStatus(r *codec.Reader) (UsernamePasswordStatus, error) {
	v, err := userPassVersionField.Read(r)
	if err != nil {
		return UsernamePasswordStatus{}, err
	}
	status, err := r.Byte("socks5 username/password status")
	if err != nil {
		return UsernamePasswordStatus{}, err
	}
	return UsernamePasswordStatus{Version: v, Status: status}, nil
}
