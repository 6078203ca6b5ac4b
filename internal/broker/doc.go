// Package broker defines the model shared by the proxy handshake brokers:
// proxy configuration and credentials, destination addresses, the Broker
// interface, and the authentication and connect failures a handshake can
// end with.
//
// Malformed wire data is reported separately as a *codec.DecodeError, so a
// caller can tell the three failure kinds apart with errors.As.
package broker
