package socks5

import (
	"fmt"

	"github.com/die-net/socketbroker/internal/codec"
)

// Version is the protocol version field.
type Version uint8

const Version5 Version = 0x05 // SOCKS Protocol Version 5

// Method is an authentication method.
type Method uint8

const (
	MethodNoAuth           Method = 0x00 // NO AUTHENTICATION REQUIRED
	MethodGSSAPI           Method = 0x01 // GSSAPI
	MethodUsernamePassword Method = 0x02 // USERNAME/PASSWORD
	MethodNoAcceptable     Method = 0xFF // NO ACCEPTABLE METHODS
)

func (m Method) String() string {
	switch m {
	case MethodNoAuth:
		return "no authentication required"
	case MethodGSSAPI:
		return "GSSAPI"
	case MethodUsernamePassword:
		return "username/password"
	case MethodNoAcceptable:
		return "no acceptable methods"
	default:
		return fmt.Sprintf("method 0x%02x", uint8(m))
	}
}

// Command is a request command.
type Command uint8

const (
	CommandConnect      Command = 0x01 // CONNECT
	CommandBind         Command = 0x02 // BIND
	CommandUDPAssociate Command = 0x03 // UDP ASSOCIATE
)

// AddressType tags the address encoding in requests and replies.
type AddressType uint8

const (
	AddressIPv4   AddressType = 0x01 // IPv4 address (4 bytes)
	AddressDomain AddressType = 0x03 // Domain name (length-prefixed)
	AddressIPv6   AddressType = 0x04 // IPv6 address (16 bytes)
)

// ReplyStatus is the REP field of a reply.
type ReplyStatus uint8

const (
	ReplySucceeded               ReplyStatus = 0x00 // succeeded
	ReplyGeneralFailure          ReplyStatus = 0x01 // general SOCKS server failure
	ReplyConnectionNotAllowed    ReplyStatus = 0x02 // connection not allowed by ruleset
	ReplyNetworkUnreachable      ReplyStatus = 0x03 // Network unreachable
	ReplyHostUnreachable         ReplyStatus = 0x04 // Host unreachable
	ReplyConnectionRefused       ReplyStatus = 0x05 // Connection refused
	ReplyTTLExpired              ReplyStatus = 0x06 // TTL expired
	ReplyCommandNotSupported     ReplyStatus = 0x07 // Command not supported
	ReplyAddressTypeNotSupported ReplyStatus = 0x08 // Address type not supported
)

func (s ReplyStatus) String() string {
	switch s {
	case ReplySucceeded:
		return "succeeded"
	case ReplyGeneralFailure:
		return "general SOCKS server failure"
	case ReplyConnectionNotAllowed:
		return "connection not allowed by ruleset"
	case ReplyNetworkUnreachable:
		return "network unreachable"
	case ReplyHostUnreachable:
		return "host unreachable"
	case ReplyConnectionRefused:
		return "connection refused"
	case ReplyTTLExpired:
		return "TTL expired"
	case ReplyCommandNotSupported:
		return "command not supported"
	case ReplyAddressTypeNotSupported:
		return "address type not supported"
	default:
		return fmt.Sprintf("reply 0x%02x", uint8(s))
	}
}

type reserved uint8

const reservedZero reserved = 0x00

// UserPassVersion is the RFC 1929 sub-negotiation version.
type UserPassVersion uint8

const UserPassVersion1 UserPassVersion = 0x01

// UserPassStatusSuccess is the only status RFC 1929 defines as success; any
// other value is a failure.
const UserPassStatusSuccess uint8 = 0x00

var (
	versionField     = codec.NewEnum("socks5 version", Version5)
	methodField      = codec.NewEnum("socks5 authentication method", MethodNoAuth, MethodGSSAPI, MethodUsernamePassword, MethodNoAcceptable)
	commandField     = codec.NewEnum("socks5 command", CommandConnect, CommandBind, CommandUDPAssociate)
	addressTypeField = codec.NewEnum("socks5 address type", AddressIPv4, AddressDomain, AddressIPv6)
	replyStatusField = codec.NewEnum("socks5 reply status", ReplySucceeded, ReplyGeneralFailure, ReplyConnectionNotAllowed,
		ReplyNetworkUnreachable, ReplyHostUnreachable, ReplyConnectionRefused, ReplyTTLExpired,
		ReplyCommandNotSupported, ReplyAddressTypeNotSupported)
	reservedField        = codec.NewEnum("socks5 reserved", reservedZero)
	userPassVersionField = codec.NewEnum("socks5 username/password version", UserPassVersion1)
)
