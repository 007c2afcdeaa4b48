package message

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/asmtilde/gurted/internal/pkg/gurterr"
	"github.com/asmtilde/gurted/internal/pkg/protocol"
)

// dateFormat is the RFC 1123 timestamp carried in the date header.
const dateFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

// Response is a GURT protocol response.
//
// StatusMessage defaults to the canonical message for the status code but is
// overridden by the literal message actually received on the wire.
type Response struct {
	Version       string
	Status        protocol.StatusCode
	StatusMessage string
	Headers       Headers
	Body          []byte
}

// NewResponse creates a response for the current protocol version carrying
// the canonical status message.
func NewResponse(status protocol.StatusCode) *Response {
	return &Response{
		Version:       protocol.Version,
		Status:        status,
		StatusMessage: status.Message(),
		Headers:       Headers{},
	}
}

// OK creates a 200 response.
func OK() *Response { return NewResponse(protocol.StatusOK) }

// NotFound creates a 404 response.
func NotFound() *Response { return NewResponse(protocol.StatusNotFound) }

// BadRequest creates a 400 response.
func BadRequest() *Response { return NewResponse(protocol.StatusBadRequest) }

// InternalServerError creates a 500 response.
func InternalServerError() *Response { return NewResponse(protocol.StatusInternalServerError) }

// WithHeader adds a header to the response.
func (r *Response) WithHeader(key, value string) *Response {
	r.Headers.Set(key, value)
	return r
}

// WithBody sets the response body.
func (r *Response) WithBody(body []byte) *Response {
	r.Body = body
	return r
}

// WithText sets the response body from a string.
func (r *Response) WithText(body string) *Response {
	r.Body = []byte(body)
	return r
}

// WithJSONBody sets the response body to the JSON encoding of v and the
// content-type header to application/json.
func (r *Response) WithJSONBody(v interface{}) (*Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshal json body failed")
	}
	r.Body = body
	r.Headers.Set("content-type", "application/json")
	return r, nil
}

// Header returns a header value (case-insensitive).
func (r *Response) Header(key string) string {
	return r.Headers.Get(key)
}

// Text returns the body as text.
func (r *Response) Text() string {
	return string(r.Body)
}

// JSON unmarshals the body into v.
func (r *Response) JSON(v interface{}) error {
	return errors.Wrap(json.Unmarshal(r.Body, v), "unmarshal json body failed")
}

// IsSuccess reports whether this is a success response.
func (r *Response) IsSuccess() bool { return r.Status.IsSuccess() }

// IsClientError reports whether this is a client error response.
func (r *Response) IsClientError() bool { return r.Status.IsClientError() }

// IsServerError reports whether this is a server error response.
func (r *Response) IsServerError() bool { return r.Status.IsServerError() }

// Encode converts the response to its wire byte form. The content-length,
// server and date headers are synthesized when absent; the response itself
// is not modified.
func (r *Response) Encode() []byte {
	var buf bytes.Buffer
	buf.WriteString(protocol.Prefix)
	buf.WriteString(r.Version)
	buf.WriteByte(' ')
	buf.WriteString(strconv.Itoa(int(r.Status)))
	buf.WriteByte(' ')
	buf.WriteString(r.StatusMessage)
	buf.WriteString(protocol.HeaderSeparator)

	headers := r.Headers.Clone()
	if !headers.Has("content-length") {
		headers.Set("content-length", strconv.Itoa(len(r.Body)))
	}
	if !headers.Has("server") {
		headers.Set("server", protocol.Prefix+protocol.Version)
	}
	if !headers.Has("date") {
		headers.Set("date", time.Now().UTC().Format(dateFormat))
	}
	writeHeaders(&buf, headers)

	buf.Write(r.Body)
	return buf.Bytes()
}

// ParseResponse parses a GURT response from its raw byte form.
func ParseResponse(data []byte) (*Response, error) {
	lines, body, err := splitMessage(data)
	if err != nil {
		return nil, err
	}

	// The status message may itself contain spaces, so split at most twice.
	parts := strings.SplitN(lines[0], " ", 3)
	if len(parts) < 2 {
		return nil, gurterr.New(gurterr.Protocol, "invalid status line format")
	}
	if !strings.HasPrefix(parts[0], protocol.Prefix) {
		return nil, gurterr.New(gurterr.Protocol, "invalid protocol identifier")
	}
	status, err := protocol.ParseStatusCode(parts[1])
	if err != nil {
		return nil, err
	}

	resp := &Response{
		Version:       strings.TrimPrefix(parts[0], protocol.Prefix),
		Status:        status,
		StatusMessage: status.Message(),
		Headers:       Headers{},
		Body:          body,
	}
	// The wire-observed message takes precedence over the canonical table.
	if len(parts) > 2 {
		resp.StatusMessage = parts[2]
	}
	parseHeaders(lines[1:], resp.Headers)
	return resp, nil
}
