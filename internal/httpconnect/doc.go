// Package httpconnect implements the client side of an HTTP CONNECT proxy
// handshake (RFC 7231 section 4.3.6) with Basic proxy authentication.
//
// The decoders read the proxy response one byte at a time and stop right
// after the blank line that ends the header block, leaving the connection
// positioned at the first tunnelled byte.
package httpconnect
