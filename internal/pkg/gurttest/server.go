// Package gurttest provides an in-process GURT server fixture for tests.
//
// The fixture speaks just enough of the server side of the protocol to
// exercise a real client: it answers the plaintext handshake, upgrades the
// connection to TLS 1.3 with a generated self-signed certificate, and serves
// scripted responses on the encrypted channel.
package gurttest

import (
	"crypto/tls"
	"fmt"
	"net"

	"github.com/pkg/errors"

	"github.com/asmtilde/gurted/internal/pkg/framing"
	"github.com/asmtilde/gurted/internal/pkg/message"
	"github.com/asmtilde/gurted/internal/pkg/protocol"
)

// Handler produces the response for one application request.
type Handler func(*message.Request) *message.Response

// Server is a GURT server fixture listening on a loopback port.
type Server struct {
	ln              net.Listener
	cert            tls.Certificate
	handshakeStatus protocol.StatusCode
	alpn            []string
	handler         Handler
}

// Cfg configures a Server.
type Cfg func(*Server) error

// WithHandshakeStatus sets the status answered to the HANDSHAKE request.
func WithHandshakeStatus(status protocol.StatusCode) Cfg {
	return func(s *Server) error {
		s.handshakeStatus = status
		return nil
	}
}

// WithALPN sets the application protocols the TLS server offers. Passing
// none makes the upgrade complete without negotiating any protocol.
func WithALPN(protos ...string) Cfg {
	return func(s *Server) error {
		s.alpn = protos
		return nil
	}
}

// WithHandler sets the application request handler.
func WithHandler(h Handler) Cfg {
	return func(s *Server) error {
		s.handler = h
		return nil
	}
}

// NewServer starts a server fixture on an ephemeral loopback port.
func NewServer(cfgs ...Cfg) (*Server, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, errors.Wrap(err, "listen failed")
	}
	cert, err := selfSignedCert()
	if err != nil {
		ln.Close() // nolint: errcheck
		return nil, errors.Wrap(err, "generate certificate failed")
	}
	s := &Server{
		ln:              ln,
		cert:            cert,
		handshakeStatus: protocol.StatusSwitchingProtocols,
		alpn:            []string{protocol.ALPN},
		handler: func(*message.Request) *message.Response {
			return message.OK()
		},
	}
	for _, cfg := range cfgs {
		if err := cfg(s); err != nil {
			ln.Close() // nolint: errcheck
			return nil, errors.Wrap(err, "apply Server cfg failed")
		}
	}
	go s.serve()
	return s, nil
}

// URL returns the gurt:// address of the fixture, with the given path.
func (s *Server) URL(path string) string {
	return fmt.Sprintf("%s://%s%s", protocol.Scheme, s.ln.Addr().String(), path)
}

// Close stops the listener.
func (s *Server) Close() error {
	return s.ln.Close()
}

func (s *Server) serve() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		go s.handle(conn)
	}
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close() // nolint: errcheck

	raw, err := framing.ReadMessage(conn)
	if err != nil {
		return
	}
	req, err := message.ParseRequest(raw)
	if err != nil || req.Method != protocol.MethodHandshake {
		conn.Write(message.BadRequest().Encode()) // nolint: errcheck
		return
	}

	resp := message.NewResponse(s.handshakeStatus)
	if s.handshakeStatus == protocol.StatusSwitchingProtocols {
		resp.WithHeader("upgrade", protocol.ALPN)
	}
	if _, err := conn.Write(resp.Encode()); err != nil {
		return
	}
	if s.handshakeStatus != protocol.StatusSwitchingProtocols {
		return
	}

	tconn := tls.Server(conn, &tls.Config{
		Certificates: []tls.Certificate{s.cert},
		MinVersion:   tls.VersionTLS13,
		NextProtos:   s.alpn,
	})
	if err := tconn.Handshake(); err != nil {
		return
	}
	for {
		raw, err := framing.ReadMessage(tconn)
		if err != nil {
			return
		}
		req, err := message.ParseRequest(raw)
		if err != nil {
			tconn.Write(message.BadRequest().Encode()) // nolint: errcheck
			return
		}
		if _, err := tconn.Write(s.handler(req).Encode()); err != nil {
			return
		}
	}
}
