package httpconnect

import (
	"fmt"
	"strings"

	"github.com/die-net/socketbroker/internal/codec"
)

const (
	fieldHeaders = "http headers"

	// maxHeaderBytes bounds how much of an untrusted header block is read.
	maxHeaderBytes = 64 << 10
)

type headerState int

const (
	stateName       headerState = iota // before the colon
	stateValueStart                    // just after the colon
	stateValue                         // inside the value
	stateLineFeed                      // after CR, LF must follow
	stateTerminator                    // colon with no name; CR or LF ends the block
)

// headerParser holds the state of one header-block decode.
type headerParser struct {
	state    headerState
	name     strings.Builder
	value    strings.Builder
	colon    bool
	consumed int
	headers  Headers
}

// DecodeHeaders reads header lines from r up to and including the blank line
// that ends the block, and returns them in the order received.
//
// A header name runs to the first colon. One space directly after the colon
// is skipped; the value runs to CR LF. An empty line, or a line holding only
// a colon, ends the block.
func DecodeHeaders(r *codec.Reader) (Headers, error) {
	p := &headerParser{}
	for {
		c, err := r.Byte(fieldHeaders)
		if err != nil {
			return nil, err
		}
		p.consumed++
		if p.consumed > maxHeaderBytes {
			return nil, &codec.DecodeError{Field: fieldHeaders, Msg: fmt.Sprintf("longer than %d bytes", maxHeaderBytes)}
		}
		done, err := p.step(c)
		if err != nil {
			return nil, err
		}
		if done {
			return p.headers, nil
		}
	}
}

// step feeds one byte to the parser and reports whether the block ended.
func (p *headerParser) step(c byte) (bool, error) {
	switch p.state {
	case stateName:
		switch c {
		case ':':
			if p.name.Len() == 0 {
				p.state = stateTerminator
				return false, nil
			}
			p.colon = true
			p.state = stateValueStart
		case '\r':
			p.state = stateLineFeed
		case '\n':
			return p.endLine()
		default:
			p.name.WriteByte(c)
		}
	case stateValueStart:
		p.state = stateValue
		if c == ' ' {
			return false, nil
		}
		return p.step(c)
	case stateValue:
		switch c {
		case '\r':
			p.state = stateLineFeed
		case '\n':
			return p.endLine()
		default:
			p.value.WriteByte(c)
		}
	case stateTerminator:
		switch c {
		case '\r':
			p.state = stateLineFeed
		case '\n':
			return true, nil
		default:
			return false, &codec.DecodeError{Field: fieldHeaders, Msg: "empty header name"}
		}
	case stateLineFeed:
		if c != '\n' {
			return false, &codec.DecodeError{Field: fieldHeaders, Msg: fmt.Sprintf("expected line feed after carriage return, found 0x%02x", c)}
		}
		return p.endLine()
	}
	return false, nil
}

// endLine completes the current line. An empty line ends the block.
func (p *headerParser) endLine() (bool, error) {
	if p.name.Len() == 0 && !p.colon {
		return true, nil
	}
	if !p.colon {
		return false, &codec.DecodeError{Field: fieldHeaders, Msg: fmt.Sprintf("header line %q has no colon", p.name.String())}
	}
	p.headers.Add(p.name.String(), p.value.String())
	p.name.Reset()
	p.value.Reset()
	p.colon = false
	p.state = stateName
	return false, nil
}
