package gurturl

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asmtilde/gurted/internal/pkg/gurterr"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		url  string
		want Address
	}{
		{"gurt://example.com/test", Address{Host: "example.com", Port: 4878, Path: "/test"}},
		{"gurt://localhost:8080/api/data", Address{Host: "localhost", Port: 8080, Path: "/api/data"}},
		{"gurt://api.example.com/search?q=test&limit=10", Address{Host: "api.example.com", Port: 4878, Path: "/search?q=test&limit=10"}},
		{"gurt://localhost", Address{Host: "localhost", Port: 4878, Path: "/"}},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := Resolve(tt.url)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestResolveRejects(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"http scheme", "http://example.com/"},
		{"https scheme", "https://example.com/"},
		{"missing host", "gurt:///path"},
		{"no scheme", "example.com/test"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.url)
			require.True(t, gurterr.Is(err, gurterr.URL))
		})
	}
}
