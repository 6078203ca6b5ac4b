package httpconnect

import (
	"bytes"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/die-net/socketbroker/internal/codec"
)

// NewConnectRequest returns an HTTP/1.1 CONNECT request for host:port.
func NewConnectRequest(host string, port uint16, headers Headers) Request {
	return Request{
		Method:  MethodConnect,
		Host:    host,
		Port:    port,
		Version: Version11,
		Headers: headers,
	}
}

// EncodeRequest renders req as
//
//	METHOD host:port VERSION CRLF
//	Host: host:port CRLF
//	Name: value CRLF (one per header, in order)
//	CRLF
//
// IPv6 hosts are bracketed. Everything is encoded as ASCII.
func EncodeRequest(req Request) ([]byte, error) {
	if req.Host == "" {
		return nil, &codec.EncodeError{Field: "http request host", Msg: "empty host"}
	}
	if err := checkLine("http request method", req.Method); err != nil {
		return nil, err
	}
	if err := checkLine("http request host", req.Host); err != nil {
		return nil, err
	}
	authority := net.JoinHostPort(req.Host, strconv.Itoa(int(req.Port)))

	var b bytes.Buffer
	fmt.Fprintf(&b, "%s %s %s\r\n", req.Method, authority, req.Version)
	fmt.Fprintf(&b, "%s: %s\r\n", HeaderHost, authority)
	for _, h := range req.Headers {
		if h.Name == "" || strings.ContainsAny(h.Name, ": \t") {
			return nil, &codec.EncodeError{Field: "http header name", Msg: fmt.Sprintf("invalid name %q", h.Name)}
		}
		if err := checkLine("http header "+h.Name, h.Name+h.Value); err != nil {
			return nil, err
		}
		fmt.Fprintf(&b, "%s: %s\r\n", h.Name, h.Value)
	}
	b.WriteString("\r\n")

	return codec.ASCII("http request", b.String())
}

// checkLine rejects text that would break the line framing.
func checkLine(field, s string) error {
	if strings.ContainsAny(s, "\r\n") {
		return &codec.EncodeError{Field: field, Msg: "contains line break"}
	}
	return nil
}
