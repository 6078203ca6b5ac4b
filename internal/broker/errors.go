package broker

import "fmt"

// AuthError reports that the proxy rejected the request for lack of
// acceptable credentials, or that the configured credentials could not be
// used. A caller may re-prompt for credentials and try again on a new
// connection.
type AuthError struct {
	Proxy Kind
	Msg   string
	Err   error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s proxy: %s: %v", e.Proxy, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s proxy: %s", e.Proxy, e.Msg)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// ConnectError reports that the proxy understood the request but declined to
// open the tunnel.
type ConnectError struct {
	Proxy Kind
	// Code is the HTTP status code or SOCKS5 reply code.
	Code int
	// Reason is the HTTP reason phrase or SOCKS5 reply status name.
	Reason string
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("%s proxy: connect failed: status [%d] reason [%s]", e.Proxy, e.Code, e.Reason)
}

// AuthErrorf returns an AuthError for kind with a formatted message.
func AuthErrorf(kind Kind, format string, args ...any) *AuthError {
	return &AuthError{Proxy: kind, Msg: fmt.Sprintf(format, args...)}
}
