package client

import (
	"time"

	"github.com/asmtilde/gurted/internal/pkg/protocol"
)

// Config holds the per-client settings. It is pure configuration with no
// behaviour, held for the lifetime of a Client.
type Config struct {
	HandshakeTimeout  time.Duration `validate:"gt=0"`
	RequestTimeout    time.Duration `validate:"gt=0"`
	ConnectionTimeout time.Duration `validate:"gt=0"`
	UserAgent         string        `validate:"required"`

	// VerifyTLS enables certificate and hostname verification during the
	// transport upgrade. It defaults to false, an explicitly insecure mode
	// for development against self-signed certificates.
	VerifyTLS bool
}

// DefaultConfig returns the protocol's default client configuration.
func DefaultConfig() Config {
	return Config{
		HandshakeTimeout:  protocol.DefaultHandshakeTimeout,
		RequestTimeout:    protocol.DefaultRequestTimeout,
		ConnectionTimeout: protocol.DefaultConnectionTimeout,
		UserAgent:         protocol.DefaultUserAgent,
	}
}
