package httpconnect

import (
	"strings"
)

const (
	MethodConnect = "CONNECT"

	HeaderHost               = "Host"
	HeaderProxyAuthorization = "Proxy-Authorization"
	HeaderProxyAuthenticate  = "Proxy-Authenticate"
)

const (
	StatusOK                          = 200
	StatusUnauthorized                = 401
	StatusProxyAuthenticationRequired = 407
)

// Version is an HTTP protocol version.
type Version int

const (
	Version10 Version = iota + 1
	Version11
)

func (v Version) String() string {
	switch v {
	case Version10:
		return "HTTP/1.0"
	case Version11:
		return "HTTP/1.1"
	default:
		return "HTTP/?"
	}
}

// Header is one header field.
type Header struct {
	Name  string
	Value string
}

// Headers is an ordered header list. Duplicates are kept in the order they
// were added or received.
type Headers []Header

// Add appends a header field.
func (h *Headers) Add(name, value string) {
	*h = append(*h, Header{Name: name, Value: value})
}

// Get returns the first value for name, compared case-insensitively.
func (h Headers) Get(name string) (string, bool) {
	for _, f := range h {
		if strings.EqualFold(f.Name, name) {
			return f.Value, true
		}
	}
	return "", false
}

// Values returns every value for name in order, compared case-insensitively.
func (h Headers) Values(name string) []string {
	var out []string
	for _, f := range h {
		if strings.EqualFold(f.Name, name) {
			out = append(out, f.Value)
		}
	}
	return out
}

// Request is a CONNECT request.
type Request struct {
	Method  string
	Host    string
	Port    uint16
	Version Version
	Headers Headers
}

// StatusLine is the first line of a response.
type StatusLine struct {
	Version Version
	Code    int
	Reason  string
}

// Response is a decoded response head. CONNECT responses carry no body the
// client reads.
type Response struct {
	StatusLine
	Headers Headers
}
