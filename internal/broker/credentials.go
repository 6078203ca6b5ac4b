package broker

// CredentialKind identifies the authentication capability a Credentials
// value provides.
type CredentialKind int

const (
	// CredentialUsernamePassword is a username with a password.
	CredentialUsernamePassword CredentialKind = iota + 1
)

func (k CredentialKind) String() string {
	switch k {
	case CredentialUsernamePassword:
		return "username/password"
	default:
		return "unknown"
	}
}

// Credentials is the closed set of authentication credentials a proxy
// configuration can hold. Use a type switch to reach the concrete variant;
// *UsernamePassword is currently the only one.
type Credentials interface {
	Kind() CredentialKind

	// sealed keeps the set of variants inside this package.
	sealed()
}

// UsernamePassword holds a username and password. The password is kept in a
// private buffer that is copied on the way in and on every read.
type UsernamePassword struct {
	username string
	password []byte
}

// NewUsernamePassword returns credentials holding a copy of password.
func NewUsernamePassword(username string, password []byte) *UsernamePassword {
	p := make([]byte, len(password))
	copy(p, password)
	return &UsernamePassword{username: username, password: p}
}

func (*UsernamePassword) Kind() CredentialKind { return CredentialUsernamePassword }

func (*UsernamePassword) sealed() {}

// Username returns the username.
func (c *UsernamePassword) Username() string {
	return c.username
}

// Password returns a fresh copy of the password. Callers may modify or zero
// it without affecting c.
func (c *UsernamePassword) Password() []byte {
	p := make([]byte, len(c.password))
	copy(p, c.password)
	return p
}

// String hides the password.
func (c *UsernamePassword) String() string {
	return "UsernamePassword{" + c.username + ":***}"
}
