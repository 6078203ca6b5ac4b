package broker

import (
	"errors"
	"fmt"
	"net"
	"net/netip"
	"strconv"
)

// Addr is a destination or bound address.
//
// A resolved Addr carries an IP; an unresolved one only a host name that the
// proxy is asked to resolve. Host may also be set on a resolved Addr, in which
// case HTTP CONNECT requests use the name and SOCKS5 requests use the IP.
type Addr struct {
	Host string
	IP   netip.Addr
	Port uint16
}

// ResolvedAddr returns an Addr for ip and port.
func ResolvedAddr(ip netip.Addr, port uint16) Addr {
	return Addr{IP: ip.Unmap(), Port: port}
}

// UnresolvedAddr returns an Addr for host and port to be resolved by the
// proxy.
func UnresolvedAddr(host string, port uint16) Addr {
	return Addr{Host: host, Port: port}
}

// ParseAddr parses a "host:port" string. IP literals produce a resolved Addr;
// anything else is left unresolved. No DNS lookup is performed.
func ParseAddr(s string) (Addr, error) {
	host, sport, err := net.SplitHostPort(s)
	if err != nil {
		return Addr{}, fmt.Errorf("parse address %q: %w", s, err)
	}
	if host == "" {
		return Addr{}, fmt.Errorf("parse address %q: missing host", s)
	}
	port, err := strconv.ParseUint(sport, 10, 16)
	if err != nil {
		return Addr{}, fmt.Errorf("parse address %q: invalid port: %w", s, err)
	}
	if ip, err := netip.ParseAddr(host); err == nil {
		if ip.Zone() != "" {
			return Addr{}, fmt.Errorf("parse address %q: zoned addresses are not supported", s)
		}
		return ResolvedAddr(ip, uint16(port)), nil
	}
	return UnresolvedAddr(host, uint16(port)), nil
}

// Resolved reports whether a carries an IP address.
func (a Addr) Resolved() bool {
	return a.IP.IsValid()
}

// Hostname returns the host name if set, otherwise the IP in text form.
func (a Addr) Hostname() string {
	if a.Host != "" {
		return a.Host
	}
	if a.IP.IsValid() {
		return a.IP.String()
	}
	return ""
}

// String returns a in "host:port" form, bracketing IPv6 literals.
func (a Addr) String() string {
	return net.JoinHostPort(a.Hostname(), strconv.Itoa(int(a.Port)))
}

// Validate reports whether a names a host.
func (a Addr) Validate() error {
	if a.Host == "" && !a.IP.IsValid() {
		return errors.New("address has neither host nor IP")
	}
	return nil
}
