// Package relay moves bytes between a local endpoint and an established
// tunnel. It is used by the socketbroker command in both stdio and listen
// modes.
package relay
