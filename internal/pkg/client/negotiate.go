package client

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/asmtilde/gurted/internal/pkg/framing"
	"github.com/asmtilde/gurted/internal/pkg/gurterr"
	"github.com/asmtilde/gurted/internal/pkg/gurturl"
	"github.com/asmtilde/gurted/internal/pkg/log"
	"github.com/asmtilde/gurted/internal/pkg/message"
	"github.com/asmtilde/gurted/internal/pkg/protocol"
)

// do runs one complete exchange: connect, handshake, upgrade, verify,
// request, response. The connection is closed on every exit path.
func (c *Client) do(ctx context.Context, addr gurturl.Address, req *message.Request) (*message.Response, error) {
	fields := logrus.Fields{
		"attempt": uuid.New().String(),
		"host":    addr.Host,
		"port":    addr.Port,
	}

	conn, err := c.dial(ctx, addr)
	if err != nil {
		return nil, err
	}
	defer conn.Close() // nolint: errcheck
	logger.WithFields(fields).Debug("connected")

	tconn, err := c.negotiate(conn, addr.Host)
	if err != nil {
		return nil, err
	}
	defer tconn.Close() // nolint: errcheck
	logger.WithFields(fields).Debug("transport upgraded")

	if err := tconn.SetDeadline(time.Now().Add(c.cfg.RequestTimeout)); err != nil {
		return nil, gurterr.Wrap(gurterr.Connection, err, "set request deadline failed")
	}
	logger.WithFields(fields).WithFields(log.RequestToFields(req)).Debug("sending request")
	if _, err := tconn.Write(req.Encode()); err != nil {
		return nil, exchangeErr(err, "write request failed")
	}
	raw, err := framing.ReadMessage(tconn)
	if err != nil {
		return nil, err
	}
	resp, err := message.ParseResponse(raw)
	if err != nil {
		return nil, err
	}
	logger.WithFields(fields).WithFields(log.ResponseToFields(resp)).Debug("received response")
	return resp, nil
}

// dial opens the TCP connection, bounded by the connection timeout.
func (c *Client) dial(ctx context.Context, addr gurturl.Address) (net.Conn, error) {
	d := net.Dialer{Timeout: c.cfg.ConnectionTimeout}
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(addr.Host, strconv.Itoa(addr.Port)))
	if err != nil {
		if isTimeout(err) {
			return nil, gurterr.Wrap(gurterr.Timeout, err, fmt.Sprintf("connection timeout to %s:%d", addr.Host, addr.Port))
		}
		return nil, gurterr.Wrap(gurterr.Connection, err, fmt.Sprintf("connect to %s:%d failed", addr.Host, addr.Port))
	}
	return conn, nil
}

// negotiate performs the plaintext handshake on conn and upgrades the same
// connection to the encrypted transport, verifying the negotiated protocol
// identifier before returning.
func (c *Client) negotiate(conn net.Conn, host string) (*tls.Conn, error) {
	hs := message.NewRequest(protocol.MethodHandshake, "/").
		WithHeader("host", host).
		WithHeader("user-agent", c.cfg.UserAgent)

	if err := conn.SetDeadline(time.Now().Add(c.cfg.HandshakeTimeout)); err != nil {
		return nil, gurterr.Wrap(gurterr.Handshake, err, "set handshake deadline failed")
	}
	if _, err := conn.Write(hs.Encode()); err != nil {
		return nil, handshakeErr(err, "write handshake failed")
	}
	raw, err := framing.ReadMessage(conn)
	if err != nil {
		return nil, err
	}
	resp, err := message.ParseResponse(raw)
	if err != nil {
		return nil, err
	}
	// The upgrade must not be attempted unless the peer agreed to switch.
	if resp.Status != protocol.StatusSwitchingProtocols {
		return nil, gurterr.Newf(gurterr.Handshake, "handshake failed: %d %s", int(resp.Status), resp.StatusMessage)
	}

	tlsCfg := c.tlsCfg.Clone()
	tlsCfg.ServerName = host
	tconn := tls.Client(conn, tlsCfg)
	if err := tconn.Handshake(); err != nil {
		if isTimeout(err) {
			return nil, gurterr.Wrap(gurterr.Timeout, err, "handshake timeout")
		}
		return nil, gurterr.Wrap(gurterr.Transport, err, "tls handshake failed")
	}
	// The peer must have negotiated the one identifier we offered.
	if proto := tconn.ConnectionState().NegotiatedProtocol; proto != protocol.ALPN {
		return nil, gurterr.Newf(gurterr.Transport, "alpn negotiation failed: expected %q, got %q", protocol.ALPN, proto)
	}
	if err := tconn.SetDeadline(time.Time{}); err != nil {
		return nil, gurterr.Wrap(gurterr.Transport, err, "clear handshake deadline failed")
	}
	return tconn, nil
}
