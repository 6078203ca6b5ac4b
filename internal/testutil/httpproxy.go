package testutil

import (
	"bufio"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
)

// ServeHTTPConnect answers one HTTP CONNECT request on c and relays it to the
// requested destination. With a non-empty user or pass it requires a
// matching Basic Proxy-Authorization header and otherwise answers 407.
func ServeHTTPConnect(ctx context.Context, c net.Conn, user, pass string) error {
	br := bufio.NewReader(c)
	req, err := http.ReadRequest(br)
	if err != nil {
		return err
	}
	_ = req.Body.Close()

	if req.Method != http.MethodConnect {
		return writeHTTPStatus(c, http.StatusMethodNotAllowed, "")
	}

	if user != "" || pass != "" {
		u, p, ok := proxyBasicAuth(req.Header.Get("Proxy-Authorization"))
		if !ok || u != user || p != pass {
			return writeHTTPStatus(c, http.StatusProxyAuthRequired, "Proxy-Authenticate: Basic realm=\"testutil\"\r\n")
		}
	}

	d := net.Dialer{}
	dst, err := d.DialContext(ctx, "tcp", req.Host)
	if err != nil {
		return writeHTTPStatus(c, http.StatusBadGateway, "")
	}
	defer dst.Close()

	if _, err := io.WriteString(c, "HTTP/1.1 200 Connection Established\r\n\r\n"); err != nil {
		return err
	}

	relay(struct {
		io.Reader
		io.Writer
	}{br, c}, dst)
	return nil
}

func writeHTTPStatus(c net.Conn, code int, headers string) error {
	_, err := fmt.Fprintf(c, "HTTP/1.1 %d %s\r\n%sConnection: close\r\n\r\n", code, http.StatusText(code), headers)
	return err
}

func proxyBasicAuth(value string) (string, string, bool) {
	encoded, ok := strings.CutPrefix(value, "Basic ")
	if !ok {
		return "", "", false
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", "", false
	}
	return strings.Cut(string(raw), ":")
}
