package broker

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// Kind selects the proxy protocol.
type Kind int

const (
	KindSOCKS5 Kind = iota + 1
	KindHTTPConnect
)

func (k Kind) String() string {
	switch k {
	case KindSOCKS5:
		return "socks5"
	case KindHTTPConnect:
		return "http"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Config describes how to reach a proxy and how to authenticate to it.
type Config struct {
	kind        Kind
	addr        string
	credentials Credentials
}

// NewConfig validates and returns a proxy configuration. creds may be nil.
func NewConfig(kind Kind, proxyAddr string, creds Credentials) (Config, error) {
	switch kind {
	case KindSOCKS5, KindHTTPConnect:
	default:
		return Config{}, fmt.Errorf("proxy config: unsupported kind %v", kind)
	}
	host, port, err := net.SplitHostPort(proxyAddr)
	if err != nil {
		return Config{}, fmt.Errorf("proxy config: %w", err)
	}
	if host == "" {
		return Config{}, errors.New("proxy config: missing proxy host")
	}
	if port == "" {
		return Config{}, errors.New("proxy config: missing proxy port")
	}
	return Config{kind: kind, addr: proxyAddr, credentials: creds}, nil
}

// ParseURL builds a Config from a proxy URL.
//
// Supported schemes:
//   - socks5://[user:pass@]host[:port]
//   - http://[user:pass@]host[:port]
//
// A default port is applied if the URL host is missing one. Userinfo, when
// present, must carry a non-empty username.
func ParseURL(rawURL string) (Config, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Config{}, fmt.Errorf("invalid url: %w", err)
	}

	u.Scheme = strings.ToLower(u.Scheme)

	if u.Path != "" && u.Path != "/" {
		return Config{}, errors.New("invalid URL: path should be empty")
	}

	var kind Kind
	switch u.Scheme {
	case "":
		return Config{}, errors.New("invalid url: missing scheme")
	case "socks5":
		kind = KindSOCKS5
	case "http":
		kind = KindHTTPConnect
	default:
		return Config{}, fmt.Errorf("invalid url scheme: %q", u.Scheme)
	}

	host := u.Hostname()
	if host == "" {
		return Config{}, errors.New("invalid url: missing host")
	}
	addr := u.Host
	if u.Port() == "" {
		addr = net.JoinHostPort(host, defaultPortForKind(kind))
	}

	var creds Credentials
	if u.User != nil {
		user := u.User.Username()
		pass, _ := u.User.Password()
		if user == "" {
			return Config{}, errors.New("invalid url: empty username")
		}
		creds = NewUsernamePassword(user, []byte(pass))
	}

	return NewConfig(kind, addr, creds)
}

func defaultPortForKind(kind Kind) string {
	switch kind {
	case KindSOCKS5:
		return "1080"
	case KindHTTPConnect:
		return "80"
	default:
		return ""
	}
}

// Kind returns the proxy protocol.
func (c Config) Kind() Kind {
	return c.kind
}

// ProxyAddr returns the proxy host:port.
func (c Config) ProxyAddr() string {
	return c.addr
}

// Credentials returns the configured credentials, if any.
func (c Config) Credentials() (Credentials, bool) {
	return c.credentials, c.credentials != nil
}

// UsernamePassword returns the username/password credentials, if those are
// what c holds.
func (c Config) UsernamePassword() (*UsernamePassword, bool) {
	switch creds := c.credentials.(type) {
	case *UsernamePassword:
		return creds, creds != nil
	default:
		return nil, false
	}
}

func (c Config) String() string {
	return fmt.Sprintf("%s://%s", c.kind, c.addr)
}
