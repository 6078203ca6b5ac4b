// Package socks5 implements the client side of a SOCKS version 5 handshake
// (RFC 1928) with optional username/password authentication (RFC 1929).
//
// Every single-byte enumerated field is decoded through a static code table,
// so an unknown version, method, address type or reply code is reported as a
// *codec.DecodeError naming the field and the offending code.
package socks5
