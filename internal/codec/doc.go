// Package codec holds the byte-level primitives shared by the SOCKS5 and
// HTTP CONNECT wire codecs.
//
// Decoders read from the proxy connection one field at a time through an
// unbuffered Reader, so no byte belonging to the tunnel that follows the
// handshake is ever consumed. Encoders assemble a complete message in a
// local buffer and hand it to Send, which writes it as one unit.
package codec
