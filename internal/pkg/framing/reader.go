// Package framing reads complete GURT messages off a byte stream.
//
// A frame is the header block up to and including the blank-line terminator,
// followed by exactly content-length body bytes. The reader returns the raw
// concatenated bytes; the message codec re-derives the header/body split.
package framing

import (
	"bytes"
	"errors"
	"io"
	"net"
	"strconv"
	"strings"

	"github.com/asmtilde/gurted/internal/pkg/gurterr"
	"github.com/asmtilde/gurted/internal/pkg/protocol"
)

const chunkSize = 4096

// ReadMessage reads one complete message from r. Timeouts on the underlying
// stream surface as timeout errors; a stream that closes before the frame is
// complete is a connection error; a frame whose headers exceed the maximum
// message size is a protocol error.
func ReadMessage(r io.Reader) ([]byte, error) {
	terminator := []byte(protocol.BodySeparator)
	var data []byte
	buf := make([]byte, chunkSize)

	// Accumulate until the header terminator appears. Only the bytes a
	// terminator straddling the previous read could occupy are rescanned.
	headerEnd := -1
	for headerEnd < 0 {
		n, err := r.Read(buf)
		if n > 0 {
			start := len(data) - len(terminator) + 1
			if start < 0 {
				start = 0
			}
			data = append(data, buf[:n]...)
			if i := bytes.Index(data[start:], terminator); i >= 0 {
				headerEnd = start + i + len(terminator)
				break
			}
			if len(data) > protocol.MaxMessageSize {
				return nil, gurterr.New(gurterr.Protocol, "response too large")
			}
		}
		if err != nil {
			return nil, readErr(err, "connection closed while reading headers")
		}
	}

	// Read until the declared body length is satisfied.
	want := headerEnd + contentLength(data[:headerEnd])
	for len(data) < want {
		n, err := r.Read(buf[:min(chunkSize, want-len(data))])
		if n > 0 {
			data = append(data, buf[:n]...)
		}
		if err != nil && len(data) < want {
			return nil, readErr(err, "connection closed while reading body")
		}
	}
	return data, nil
}

// contentLength scans the header block for the first content-length header,
// case-insensitively. A non-numeric value is tolerated as 0 rather than
// treated as a hard failure.
func contentLength(header []byte) int {
	for _, line := range strings.Split(string(header), protocol.HeaderSeparator) {
		if !strings.HasPrefix(strings.ToLower(line), "content-length:") {
			continue
		}
		value := strings.TrimSpace(line[len("content-length:"):])
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return 0
		}
		return n
	}
	return 0
}

func readErr(err error, msg string) error {
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return gurterr.Wrap(gurterr.Timeout, err, msg)
	}
	if errors.Is(err, io.EOF) {
		return gurterr.New(gurterr.Connection, msg)
	}
	return gurterr.Wrap(gurterr.Connection, err, msg)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
