package socks5

import (
	"bytes"

	"github.com/die-net/socketbroker/internal/broker"
	"github.com/die-net/socketbroker/internal/codec"
)

// Reply is the server's answer to a Request.
//
//	+-----+-----+-------+------+----------+----------+
//	| VER | REP |  RSV  | ATYP | BND.ADDR | BND.PORT |
//	+-----+-----+-------+------+----------+----------+
//	|  1  |  1  | X'00' |  1   | Variable |    2     |
type Reply struct {
	Status ReplyStatus
	Bound  broker.Addr
}

// DecodeReply reads a reply. The version and reserved bytes are validated;
// a domain-name bound address is returned unresolved.
func DecodeReply(r *codec.Reader) (Reply, error) {
	if _, err := versionField.Read(r); err != nil {
		return Reply{}, err
	}
	status, err := replyStatusField.Read(r)
	if err != nil {
		return Reply{}, err
	}
	if _, err := reservedField.Read(r); err != nil {
		return Reply{}, err
	}
	bound, err := decodeAddr(r)
	if err != nil {
		return Reply{}, err
	}
	return Reply{Status: status, Bound: bound}, nil
}

// EncodeReply encodes rep; the server-side counterpart of DecodeReply.
func EncodeReply(rep Reply) ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte(byte(Version5))
	b.WriteByte(byte(rep.Status))
	b.WriteByte(byte(reservedZero))
	if err := appendAddr(&b, rep.Bound); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
