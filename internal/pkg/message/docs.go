// Package message implements the GURT message codec.
//
// A message is a header block and an optional body separated by a blank
// line, with CRLF line endings throughout:
//
//	Request:  "<METHOD> <path> GURT/<version>\r\n" {"<key>: <value>\r\n"} "\r\n" <body>
//	Response: "GURT/<version> <status> <message>\r\n" {"<key>: <value>\r\n"} "\r\n" <body>
//
// Bodies are opaque byte sequences; the codec never inspects them. Header
// names are case-insensitive and stored lower-cased. Encoding synthesizes
// the headers the protocol requires (content-length, user-agent on requests,
// server and date on responses) without mutating the message.
//
// The codec performs no body-length enforcement; that is the framing
// package's job upstream. Decoding a buffer with no blank-line terminator
// treats the entire buffer as header text with an empty body.
package message
