package client

import (
	"errors"
	"net"

	"github.com/asmtilde/gurted/internal/pkg/gurterr"
)

// isTimeout reports whether err is a network timeout.
func isTimeout(err error) bool {
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}

// handshakeErr classifies a handshake-phase failure. Already classified
// errors pass through unchanged.
func handshakeErr(err error, msg string) error {
	if isTimeout(err) {
		return gurterr.Wrap(gurterr.Timeout, err, "handshake timeout")
	}
	return gurterr.Coerce(gurterr.Handshake, err, msg)
}

// exchangeErr classifies a request-phase failure. Already classified errors
// pass through unchanged.
func exchangeErr(err error, msg string) error {
	if isTimeout(err) {
		return gurterr.Wrap(gurterr.Timeout, err, "request timeout")
	}
	return gurterr.Coerce(gurterr.Connection, err, msg)
}
