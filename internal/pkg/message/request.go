package message

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/asmtilde/gurted/internal/pkg/gurterr"
	"github.com/asmtilde/gurted/internal/pkg/protocol"
)

// Request is a GURT protocol request.
type Request struct {
	Method  protocol.Method
	Path    string
	Version string
	Headers Headers
	Body    []byte
}

// NewRequest creates a request for the current protocol version.
func NewRequest(method protocol.Method, path string) *Request {
	return &Request{
		Method:  method,
		Path:    path,
		Version: protocol.Version,
		Headers: Headers{},
	}
}

// WithHeader adds a header to the request.
func (r *Request) WithHeader(key, value string) *Request {
	r.Headers.Set(key, value)
	return r
}

// WithBody sets the request body.
func (r *Request) WithBody(body []byte) *Request {
	r.Body = body
	return r
}

// WithText sets the request body from a string.
func (r *Request) WithText(body string) *Request {
	r.Body = []byte(body)
	return r
}

// Header returns a header value (case-insensitive).
func (r *Request) Header(key string) string {
	return r.Headers.Get(key)
}

// Text returns the body as text.
func (r *Request) Text() string {
	return string(r.Body)
}

// Encode converts the request to its wire byte form. The content-length and
// user-agent headers are synthesized when absent; the request itself is not
// modified.
func (r *Request) Encode() []byte {
	var buf bytes.Buffer
	buf.WriteString(r.Method.String())
	buf.WriteByte(' ')
	buf.WriteString(r.Path)
	buf.WriteByte(' ')
	buf.WriteString(protocol.Prefix)
	buf.WriteString(r.Version)
	buf.WriteString(protocol.HeaderSeparator)

	headers := r.Headers.Clone()
	if !headers.Has("content-length") {
		headers.Set("content-length", strconv.Itoa(len(r.Body)))
	}
	if !headers.Has("user-agent") {
		headers.Set("user-agent", protocol.DefaultUserAgent)
	}
	writeHeaders(&buf, headers)

	buf.Write(r.Body)
	return buf.Bytes()
}

// ParseRequest parses a GURT request from its raw byte form.
func ParseRequest(data []byte) (*Request, error) {
	lines, body, err := splitMessage(data)
	if err != nil {
		return nil, err
	}

	parts := strings.Fields(lines[0])
	if len(parts) != 3 {
		return nil, gurterr.New(gurterr.Protocol, "invalid request line format")
	}
	method, err := protocol.ParseMethod(parts[0])
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(parts[2], protocol.Prefix) {
		return nil, gurterr.New(gurterr.Protocol, "invalid protocol identifier")
	}

	req := &Request{
		Method:  method,
		Path:    parts[1],
		Version: strings.TrimPrefix(parts[2], protocol.Prefix),
		Headers: Headers{},
		Body:    body,
	}
	parseHeaders(lines[1:], req.Headers)
	return req, nil
}
