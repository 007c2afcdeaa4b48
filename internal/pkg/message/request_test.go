package message

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asmtilde/gurted/internal/pkg/gurterr"
	"github.com/asmtilde/gurted/internal/pkg/protocol"
)

func TestRequestBuilding(t *testing.T) {
	req := NewRequest(protocol.MethodGet, "/test").
		WithHeader("Host", "example.com").
		WithHeader("Accept", "text/html").
		WithText("test body")

	require.Equal(t, protocol.MethodGet, req.Method)
	require.Equal(t, "/test", req.Path)
	require.Equal(t, protocol.Version, req.Version)
	require.Equal(t, "example.com", req.Header("host"))
	require.Equal(t, "text/html", req.Header("Accept"))
	require.Equal(t, "test body", req.Text())
}

func TestRequestEncode(t *testing.T) {
	req := NewRequest(protocol.MethodPost, "/api/data").
		WithHeader("Host", "localhost").
		WithHeader("Content-Type", "application/json").
		WithText(`{"test": true}`)

	wire := string(req.Encode())
	require.True(t, strings.HasPrefix(wire, "POST /api/data GURT/"+protocol.Version+"\r\n"))
	require.Contains(t, wire, "host: localhost\r\n")
	require.Contains(t, wire, "content-type: application/json\r\n")
	require.Contains(t, wire, "content-length: 14\r\n")
	require.Contains(t, wire, "user-agent: "+protocol.DefaultUserAgent+"\r\n")
	require.True(t, strings.HasSuffix(wire, "\r\n\r\n"+`{"test": true}`))

	// Encoding synthesizes headers without mutating the request.
	require.False(t, req.Headers.Has("content-length"))
}

func TestRequestParse(t *testing.T) {
	raw := "GET /test GURT/" + protocol.Version + "\r\nHost: example.com\r\nAccept: text/html\r\n\r\ntest body"

	req, err := ParseRequest([]byte(raw))
	require.NoError(t, err)
	require.Equal(t, protocol.MethodGet, req.Method)
	require.Equal(t, "/test", req.Path)
	require.Equal(t, protocol.Version, req.Version)
	require.Equal(t, "example.com", req.Header("host"))
	require.Equal(t, "text/html", req.Header("accept"))
	require.Equal(t, "test body", req.Text())
}

func TestRequestRoundTrip(t *testing.T) {
	req := NewRequest(protocol.MethodPut, "/items/7?force=1").
		WithHeader("Host", "example.com").
		WithHeader("X-Custom", "a value").
		WithBody([]byte{0x00, 0x01, 0xff, 0xfe})

	got, err := ParseRequest(req.Encode())
	require.NoError(t, err)
	require.Equal(t, req.Method, got.Method)
	require.Equal(t, req.Path, got.Path)
	require.Equal(t, req.Version, got.Version)
	require.Equal(t, req.Body, got.Body)
	for key, value := range req.Headers {
		require.Equal(t, value, got.Header(key))
	}
}

func TestRequestParseNoBody(t *testing.T) {
	// A buffer without the blank-line terminator is all headers.
	req, err := ParseRequest([]byte("GET / GURT/1.0.0\r\nhost: example.com"))
	require.NoError(t, err)
	require.Equal(t, "example.com", req.Header("host"))
	require.Empty(t, req.Body)
}

func TestRequestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed request line", "INVALID REQUEST"},
		{"foreign protocol", "GET /test HTTP/1.1\r\n\r\n"},
		{"unknown method", "SPLORT /test GURT/1.0.0\r\n\r\n"},
		{"empty message", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRequest([]byte(tt.raw))
			require.True(t, gurterr.Is(err, gurterr.Protocol))
		})
	}
}
