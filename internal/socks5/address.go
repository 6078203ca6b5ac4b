package socks5

import (
	"bytes"
	"net/netip"

	"github.com/die-net/socketbroker/internal/broker"
	"github.com/die-net/socketbroker/internal/codec"
)

const (
	fieldAddress = "socks5 address"
	fieldPort    = "socks5 port"
)

// appendAddr writes ATYP, ADDR and PORT for a.
//
// Unresolved addresses use the domain name encoding, resolved IPv6 addresses
// the 16-byte encoding, and every other resolved address the 4-byte one.
func appendAddr(b *bytes.Buffer, a broker.Addr) error {
	switch {
	case !a.Resolved():
		if a.Host == "" {
			return &codec.EncodeError{Field: fieldAddress, Msg: "empty host name"}
		}
		host, err := codec.ASCII(fieldAddress, a.Host)
		if err != nil {
			return err
		}
		if err := codec.CheckLengthPrefixed(fieldAddress, host); err != nil {
			return err
		}
		b.WriteByte(byte(AddressDomain))
		b.WriteByte(byte(len(host)))
		b.Write(host)
	case a.IP.Is6() && !a.IP.Is4In6():
		ip := a.IP.As16()
		b.WriteByte(byte(AddressIPv6))
		b.Write(ip[:])
	default:
		ip := a.IP.Unmap().As4()
		b.WriteByte(byte(AddressIPv4))
		b.Write(ip[:])
	}
	b.WriteByte(byte(a.Port >> 8))
	b.WriteByte(byte(a.Port))
	return nil
}

// decodeAddr reads ATYP, ADDR and PORT. Domain names come back unresolved,
// IP addresses resolved.
func decodeAddr(r *codec.Reader) (broker.Addr, error) {
	atyp, err := addressTypeField.Read(r)
	if err != nil {
		return broker.Addr{}, err
	}

	var a broker.Addr
	switch atyp {
	case AddressIPv4:
		raw, err := r.Bytes(fieldAddress, 4)
		if err != nil {
			return broker.Addr{}, err
		}
		a.IP = netip.AddrFrom4([4]byte(raw))
	case AddressIPv6:
		raw, err := r.Bytes(fieldAddress, 16)
		if err != nil {
			return broker.Addr{}, err
		}
		a.IP = netip.AddrFrom16([16]byte(raw))
	case AddressDomain:
		n, err := r.Byte(fieldAddress)
		if err != nil {
			return broker.Addr{}, err
		}
		raw, err := r.Bytes(fieldAddress, int(n))
		if err != nil {
			return broker.Addr{}, err
		}
		a.Host = string(raw)
	}

	if a.Port, err = r.Uint16(fieldPort); err != nil {
		return broker.Addr{}, err
	}
	return a, nil
}
