package auth

import (
	"encoding/base64"

	"github.com/die-net/socketbroker/internal/broker"
)

// AuthorizationProvider turns credentials into a Proxy-Authorization header
// value.
type AuthorizationProvider interface {
	Authorization(creds broker.Credentials) (string, bool)
}

// Basic provides HTTP Basic authorization (RFC 7617).
type Basic struct{}

var _ AuthorizationProvider = Basic{}

// Authorization returns "Basic " followed by the base64 encoding of
// "username:password" for username/password credentials. Other credentials,
// including nil, produce no value.
func (Basic) Authorization(creds broker.Credentials) (string, bool) {
	switch c := creds.(type) {
	case *broker.UsernamePassword:
		if c == nil {
			return "", false
		}
		password := c.Password()
		raw := make([]byte, 0, len(c.Username())+1+len(password))
		raw = append(raw, c.Username()...)
		raw = append(raw, ':')
		raw = append(raw, password...)
		clear(password)
		value := "Basic " + base64.StdEncoding.EncodeToString(raw)
		clear(raw)
		return value, true
	default:
		return "", false
	}
}
