// Package gurturl resolves gurt:// addresses into connection targets.
package gurturl

import (
	"net/url"
	"strconv"

	"github.com/asmtilde/gurted/internal/pkg/gurterr"
	"github.com/asmtilde/gurted/internal/pkg/protocol"
)

// Address is a resolved connection target. Path carries the full
// request-target, including any query string.
type Address struct {
	Host string
	Port int
	Path string
}

// Resolve parses a gurt:// URL into an Address. The port defaults to the
// well-known GURT port and the path defaults to "/".
func Resolve(raw string) (Address, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Address{}, gurterr.Wrap(gurterr.URL, err, "parse url failed")
	}
	if u.Scheme != protocol.Scheme {
		return Address{}, gurterr.Newf(gurterr.URL, "url must use %s:// scheme: %s", protocol.Scheme, raw)
	}
	if u.Hostname() == "" {
		return Address{}, gurterr.Newf(gurterr.URL, "url must have a hostname: %s", raw)
	}

	addr := Address{
		Host: u.Hostname(),
		Port: protocol.DefaultPort,
		Path: u.Path,
	}
	if p := u.Port(); p != "" {
		addr.Port, err = strconv.Atoi(p)
		if err != nil {
			return Address{}, gurterr.Newf(gurterr.URL, "invalid port in url: %s", raw)
		}
	}
	if addr.Path == "" {
		addr.Path = "/"
	}
	if u.RawQuery != "" {
		addr.Path += "?" + u.RawQuery
	}
	return addr, nil
}
