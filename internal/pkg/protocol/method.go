package protocol

import "github.com/asmtilde/gurted/internal/pkg/gurterr"

// Method is a GURT request method.
type Method string

// The closed set of GURT request methods.
const (
	MethodGet       Method = "GET"
	MethodPost      Method = "POST"
	MethodPut       Method = "PUT"
	MethodDelete    Method = "DELETE"
	MethodHead      Method = "HEAD"
	MethodOptions   Method = "OPTIONS"
	MethodPatch     Method = "PATCH"
	MethodHandshake Method = "HANDSHAKE"
)

// ParseMethod parses a wire token into a Method.
// Unknown tokens are a protocol error, never accepted silently.
func ParseMethod(token string) (Method, error) {
	switch m := Method(token); m {
	case MethodGet, MethodPost, MethodPut, MethodDelete,
		MethodHead, MethodOptions, MethodPatch, MethodHandshake:
		return m, nil
	}
	return "", gurterr.Newf(gurterr.Protocol, "unsupported method: %s", token)
}

func (m Method) String() string {
	return string(m)
}
