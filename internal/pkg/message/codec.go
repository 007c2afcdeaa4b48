package message

import (
	"bytes"
	"strings"

	"github.com/asmtilde/gurted/internal/pkg/gurterr"
	"github.com/asmtilde/gurted/internal/pkg/protocol"
)

// splitMessage splits a raw message on the first blank-line terminator and
// returns the header lines and the body. When no terminator is present the
// entire buffer is header text and the body is empty.
func splitMessage(data []byte) ([]string, []byte, error) {
	head, body := data, []byte(nil)
	if i := bytes.Index(data, []byte(protocol.BodySeparator)); i >= 0 {
		head = data[:i]
		body = data[i+len(protocol.BodySeparator):]
	}
	if len(head) == 0 {
		return nil, nil, gurterr.New(gurterr.Protocol, "empty message")
	}
	return strings.Split(string(head), protocol.HeaderSeparator), body, nil
}

// parseHeaders parses key:value lines into h. An empty or whitespace-only
// line terminates parsing early, tolerating callers that already stripped
// the trailing blank line.
func parseHeaders(lines []string, h Headers) {
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			break
		}
		i := strings.Index(line, ":")
		if i < 0 {
			continue
		}
		h.Set(strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:]))
	}
}

// writeHeaders emits one "key: value" line per header. Iteration order is
// whatever order the map yields.
func writeHeaders(buf *bytes.Buffer, h Headers) {
	for key, value := range h {
		buf.WriteString(key)
		buf.WriteString(": ")
		buf.WriteString(value)
		buf.WriteString(protocol.HeaderSeparator)
	}
	buf.WriteString(protocol.HeaderSeparator)
}
