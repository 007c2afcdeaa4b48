// Package client implements the client side of the GURT protocol.
//
// Each request runs the full connection sequence:
//	1. Open a TCP connection to the resolved host and port, bounded by the connection timeout.
//	2. Send a HANDSHAKE request for "/" on the plaintext connection.
//	3. Read the handshake response, bounded by the handshake timeout. The server must answer 101 SWITCHING_PROTOCOLS.
//	4. Upgrade the same connection to TLS 1.3, offering the single GURT application protocol identifier.
//	5. Verify the peer negotiated that identifier.
//	6. Send the caller's request on the encrypted connection and read the response, bounded by the request timeout.
//
// The sequence is strictly ordered and terminal on first failure; the
// connection is closed on every exit path. There is no connection reuse,
// pipelining or retry: each verb method performs exactly one exchange.
//
// Failures cross the package boundary as gurterr kinds only. A failure that
// is not already classified is wrapped into the kind of the phase it
// occurred in.
package client
