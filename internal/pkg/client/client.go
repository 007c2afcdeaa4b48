package client

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/asmtilde/gurted/internal/pkg/gurturl"
	"github.com/asmtilde/gurted/internal/pkg/message"
	"github.com/asmtilde/gurted/internal/pkg/protocol"
	"github.com/asmtilde/gurted/internal/pkg/validate"
)

var logger logrus.FieldLogger = logrus.StandardLogger()

// Client implements the client behaviour of GURT. It holds no open
// connection between calls; each request opens and closes its own socket.
type Client struct {
	cfg    Config
	tlsCfg *tls.Config
}

// Cfg configures a Client.
type Cfg func(*Client) error

// WithHandshakeTimeout bounds the plaintext handshake exchange.
func WithHandshakeTimeout(d time.Duration) Cfg {
	return func(c *Client) error {
		c.cfg.HandshakeTimeout = d
		return nil
	}
}

// WithRequestTimeout bounds the application request/response exchange.
func WithRequestTimeout(d time.Duration) Cfg {
	return func(c *Client) error {
		c.cfg.RequestTimeout = d
		return nil
	}
}

// WithConnectionTimeout bounds the TCP connect.
func WithConnectionTimeout(d time.Duration) Cfg {
	return func(c *Client) error {
		c.cfg.ConnectionTimeout = d
		return nil
	}
}

// WithUserAgent sets the user-agent header sent on every request.
func WithUserAgent(ua string) Cfg {
	return func(c *Client) error {
		c.cfg.UserAgent = ua
		return nil
	}
}

// WithVerifyTLS enables or disables verification of the peer's transport
// identity. Disabled is an insecure development mode.
func WithVerifyTLS(verify bool) Cfg {
	return func(c *Client) error {
		c.cfg.VerifyTLS = verify
		return nil
	}
}

// NewClient creates a new Client with the given configuration.
func NewClient(cfgs ...Cfg) (*Client, error) {
	c := &Client{cfg: DefaultConfig()}
	for _, cfg := range cfgs {
		if err := cfg(c); err != nil {
			return nil, errors.Wrap(err, "apply Client cfg failed")
		}
	}
	if err := validate.Validate().Struct(c.cfg); err != nil {
		return nil, errors.Wrap(err, "validate Client config failed")
	}
	c.tlsCfg = newTLSConfig(c.cfg.VerifyTLS)
	return c, nil
}

// newTLSConfig builds the reusable transport-security configuration: TLS
// pinned to exactly 1.3, offering the single GURT protocol identifier.
func newTLSConfig(verify bool) *tls.Config {
	cfg := &tls.Config{
		MinVersion: tls.VersionTLS13,
		MaxVersion: tls.VersionTLS13,
		NextProtos: []string{protocol.ALPN},
	}
	if !verify {
		cfg.InsecureSkipVerify = true // nolint: gosec // documented development mode
		logger.Warn("transport identity verification disabled - only use for development")
	}
	return cfg
}

// Get sends a GET request.
func (c *Client) Get(ctx context.Context, url string) (*message.Response, error) {
	return c.send(ctx, protocol.MethodGet, url, nil, "")
}

// Head sends a HEAD request.
func (c *Client) Head(ctx context.Context, url string) (*message.Response, error) {
	return c.send(ctx, protocol.MethodHead, url, nil, "")
}

// Delete sends a DELETE request.
func (c *Client) Delete(ctx context.Context, url string) (*message.Response, error) {
	return c.send(ctx, protocol.MethodDelete, url, nil, "")
}

// Options sends an OPTIONS request.
func (c *Client) Options(ctx context.Context, url string) (*message.Response, error) {
	return c.send(ctx, protocol.MethodOptions, url, nil, "")
}

// Post sends a POST request with the given body and content type.
func (c *Client) Post(ctx context.Context, url string, body []byte, contentType string) (*message.Response, error) {
	return c.send(ctx, protocol.MethodPost, url, body, contentType)
}

// Put sends a PUT request with the given body and content type.
func (c *Client) Put(ctx context.Context, url string, body []byte, contentType string) (*message.Response, error) {
	return c.send(ctx, protocol.MethodPut, url, body, contentType)
}

// PostJSON sends a POST request with the JSON encoding of v.
func (c *Client) PostJSON(ctx context.Context, url string, v interface{}) (*message.Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshal json body failed")
	}
	return c.Post(ctx, url, body, "application/json")
}

// send resolves the URL, builds the request and runs one full negotiation.
func (c *Client) send(ctx context.Context, method protocol.Method, rawURL string, body []byte, contentType string) (*message.Response, error) {
	addr, err := gurturl.Resolve(rawURL)
	if err != nil {
		return nil, err
	}
	req := message.NewRequest(method, addr.Path).
		WithHeader("host", addr.Host).
		WithHeader("user-agent", c.cfg.UserAgent)
	if contentType != "" {
		req.WithHeader("content-type", contentType)
	}
	if body != nil {
		req.WithBody(body)
	}
	return c.do(ctx, addr, req)
}
