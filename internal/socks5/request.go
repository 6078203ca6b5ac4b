package socks5

import (
	"bytes"

	"github.com/die-net/socketbroker/internal/broker"
	"github.com/die-net/socketbroker/internal/codec"
)

// Request asks the server to perform Command for Addr.
//
//	+-----+-----+-------+------+----------+----------+
//	| VER | CMD |  RSV  | ATYP | DST.ADDR | DST.PORT |
//	+-----+-----+-------+------+----------+----------+
//	|  1  |  1  | X'00' |  1   | Variable |    2     |
type Request struct {
	Command Command
	Addr    broker.Addr
}

// EncodeRequest encodes req. Host names must be ASCII and at most 255 bytes.
func EncodeRequest(req Request) ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte(byte(Version5))
	b.WriteByte(byte(req.Command))
	b.WriteByte(byte(reservedZero))
	if err := appendAddr(&b, req.Addr); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// DecodeRequest reads a request. Brokers never receive requests; this is the
// server-side counterpart of EncodeRequest.
func DecodeRequest(r *codec.Reader) (Request, error) {
	if _, err := versionField.Read(r); err != nil {
		return Request{}, err
	}
	cmd, err := commandField.Read(r)
	if err != nil {
		return Request{}, err
	}
	if _, err := reservedField.Read(r); err != nil {
		return Request{}, err
	}
	addr, err := decodeAddr(r)
	if err != nil {
		return Request{}, err
	}
	return Request{Command: cmd, Addr: addr}, nil
}
