package httpconnect

import (
	"github.com/die-net/socketbroker/internal/auth"
	"github.com/die-net/socketbroker/internal/broker"
)

// AuthRequiredError is returned for a 407 response. It unwraps to the
// *broker.AuthError describing the failure, and carries the parsed
// Proxy-Authenticate challenges so a caller can pick credentials for a retry.
type AuthRequiredError struct {
	Auth       *broker.AuthError
	Challenges []auth.Challenge
}

func (e *AuthRequiredError) Error() string {
	return e.Auth.Error()
}

func (e *AuthRequiredError) Unwrap() error {
	return e.Auth
}
