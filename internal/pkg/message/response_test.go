package message

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asmtilde/gurted/internal/pkg/gurterr"
	"github.com/asmtilde/gurted/internal/pkg/protocol"
)

func TestResponseConstructors(t *testing.T) {
	require.Equal(t, protocol.StatusOK, OK().Status)
	require.Equal(t, protocol.StatusNotFound, NotFound().Status)
	require.Equal(t, protocol.StatusBadRequest, BadRequest().Status)
	require.Equal(t, protocol.StatusInternalServerError, InternalServerError().Status)
	require.Equal(t, "NOT_FOUND", NotFound().StatusMessage)
}

func TestResponseBuilding(t *testing.T) {
	resp := OK().
		WithHeader("Content-Type", "text/html").
		WithText("<html></html>")

	require.Equal(t, "text/html", resp.Header("content-type"))
	require.Equal(t, "<html></html>", resp.Text())
	require.True(t, resp.IsSuccess())
	require.False(t, resp.IsClientError())
	require.False(t, resp.IsServerError())
}

func TestResponseJSONBody(t *testing.T) {
	payload := map[string]interface{}{"message": "Hello", "success": true}
	resp, err := OK().WithJSONBody(payload)
	require.NoError(t, err)
	require.Equal(t, "application/json", resp.Header("content-type"))

	var got map[string]interface{}
	require.NoError(t, resp.JSON(&got))
	require.Equal(t, payload, got)
}

func TestResponseEncode(t *testing.T) {
	resp := NewResponse(protocol.StatusCreated).
		WithHeader("Location", "/api/resource/123").
		WithText("Resource created")

	wire := string(resp.Encode())
	require.True(t, strings.HasPrefix(wire, "GURT/"+protocol.Version+" 201 CREATED\r\n"))
	require.Contains(t, wire, "location: /api/resource/123\r\n")
	require.Contains(t, wire, "content-length: 16\r\n")
	require.Contains(t, wire, "server: GURT/"+protocol.Version+"\r\n")
	require.Contains(t, wire, "date: ")
	require.True(t, strings.HasSuffix(wire, "\r\n\r\nResource created"))
}

func TestResponseParse(t *testing.T) {
	raw := "GURT/" + protocol.Version + " 200 OK\r\nContent-Type: text/html\r\n\r\n<html></html>"

	resp, err := ParseResponse([]byte(raw))
	require.NoError(t, err)
	require.Equal(t, protocol.StatusOK, resp.Status)
	require.Equal(t, "OK", resp.StatusMessage)
	require.Equal(t, "text/html", resp.Header("content-type"))
	require.Equal(t, "<html></html>", resp.Text())
}

func TestResponseParseWireMessageOverride(t *testing.T) {
	// The message actually sent on the wire wins over the canonical table.
	resp, err := ParseResponse([]byte("GURT/1.0.0 404 Nothing To See Here\r\n\r\n"))
	require.NoError(t, err)
	require.Equal(t, protocol.StatusNotFound, resp.Status)
	require.Equal(t, "Nothing To See Here", resp.StatusMessage)
	require.Equal(t, "NOT_FOUND", resp.Status.Message())
}

func TestResponseParseOmittedMessage(t *testing.T) {
	resp, err := ParseResponse([]byte("GURT/1.0.0 204\r\n\r\n"))
	require.NoError(t, err)
	require.Equal(t, protocol.StatusNoContent, resp.Status)
	require.Equal(t, "NO_CONTENT", resp.StatusMessage)
}

func TestResponseRoundTrip(t *testing.T) {
	resp := NewResponse(protocol.StatusAccepted).
		WithHeader("X-Job", "42").
		WithText("queued")
	resp.StatusMessage = "Queued For Later"

	got, err := ParseResponse(resp.Encode())
	require.NoError(t, err)
	require.Equal(t, resp.Status, got.Status)
	require.Equal(t, "Queued For Later", got.StatusMessage)
	require.Equal(t, resp.Body, got.Body)
	for key, value := range resp.Headers {
		require.Equal(t, value, got.Header(key))
	}
}

func TestResponseParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty message", ""},
		{"bare status line", "GURT/1.0.0\r\n\r\n"},
		{"foreign protocol", "HTTP/1.1 200 OK\r\n\r\n"},
		{"unknown status code", "GURT/1.0.0 299 WHO_KNOWS\r\n\r\n"},
		{"non-numeric status code", "GURT/1.0.0 abc OK\r\n\r\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResponse([]byte(tt.raw))
			require.True(t, gurterr.Is(err, gurterr.Protocol))
		})
	}
}

func TestHeadersNormalization(t *testing.T) {
	h := Headers{}
	h.Set("Content-Type", "text/plain")
	h.Set("CONTENT-TYPE", "application/json")
	require.Equal(t, "application/json", h.Get("content-type"))
	require.Len(t, h, 1)
	require.True(t, h.Has("Content-type"))
}
