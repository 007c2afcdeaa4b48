// Package protocol defines the GURT wire constants and the closed method
// and status code registries shared by the codec and the client.
package protocol

import "time"

// Protocol constants.
const (
	// Version is the protocol version this client emits and expects.
	Version = "1.0.0"

	// Prefix is the literal token carried on every request and status line.
	Prefix = "GURT/"

	// Scheme is the URL scheme for GURT addresses.
	Scheme = "gurt"

	// DefaultPort is the well-known GURT port.
	DefaultPort = 4878
)

// Message separators.
const (
	HeaderSeparator = "\r\n"
	BodySeparator   = "\r\n\r\n"
)

// Default phase timeouts.
const (
	DefaultHandshakeTimeout  = 5 * time.Second
	DefaultRequestTimeout    = 30 * time.Second
	DefaultConnectionTimeout = 10 * time.Second
)

// MaxMessageSize bounds a single message (headers + body) at 10MB.
const MaxMessageSize = 10 * 1024 * 1024

// TLS configuration. The encrypted transport is pinned to TLS 1.3 and
// negotiates exactly one application-layer protocol identifier.
const (
	ALPN = "GURT/1.0"
)

// DefaultUserAgent identifies this client on the wire when the caller
// does not set a user-agent header.
const DefaultUserAgent = "GURT-Go-Client/" + Version
