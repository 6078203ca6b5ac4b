package httpconnect

import "github.com/die-net/socketbroker/internal/codec"

// DecodeResponse reads a status line and header block from r.
func DecodeResponse(r *codec.Reader) (Response, error) {
	status, err := DecodeStatusLine(r)
	if err != nil {
		return Response{}, err
	}
	headers, err := DecodeHeaders(r)
	if err != nil {
		return Response{}, err
	}
	return Response{StatusLine: status, Headers: headers}, nil
}
