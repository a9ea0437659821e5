// Package sftp implements the server and client sides of the SSH File
// Transfer Protocol version 3 as described in
// https://tools.ietf.org/html/draft-ietf-secsh-filexfer-02
//
// The package is a pure protocol engine: it owns framing, packet decoding,
// request/response dispatch and error serialization over any bidirectional
// byte stream, and delegates all domain behavior to a ServerHandler or
// ClientHandler supplied by the host application.
package sftp

// ProtocolVersion is the protocol version implemented and negotiated by default.
const ProtocolVersion = 3
