package sftp

import (
	"context"
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	sshfx "github.com/driftware/sftp/encoding/ssh/filexfer"
)

// Server dispatches SFTP requests read from a byte stream to a
// ServerHandler, and writes the responses back. It exclusively owns the
// stream and the handler for the duration of the session.
type Server struct {
	conn

	handler ServerHandler
	logger  logrus.FieldLogger

	// version is the negotiated protocol version, zero until SSH_FXP_INIT
	// has been answered.
	version uint32
}

// A ServerOption is a function which applies configuration to a Server.
type ServerOption func(*Server)

// WithServerLogger directs the server's session diagnostics to the given
// logger. The default discards them.
func WithServerLogger(logger logrus.FieldLogger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMaxPacketLength overrides the maximum accepted frame length,
// sshfx.DefaultMaxPacketLength by default.
func WithMaxPacketLength(length uint32) ServerOption {
	return func(s *Server) {
		s.maxPacketLength = length
	}
}

// NewServer creates a server-side dispatcher around the provided stream.
// A subsequent call to Serve is required to begin serving requests.
func NewServer(rwc io.ReadWriteCloser, handler ServerHandler, options ...ServerOption) *Server {
	discard := logrus.New()
	discard.SetOutput(ioutil.Discard)

	s := &Server{
		conn: conn{
			Reader:      rwc,
			WriteCloser: rwc,
		},
		handler: handler,
		logger:  discard,
	}

	for _, o := range options {
		o(s)
	}

	return s
}

// Run starts a server-side dispatch loop on its own goroutine and returns
// immediately. Errors never escape the loop; its termination is observable
// only through the transport closing.
func Run(ctx context.Context, rwc io.ReadWriteCloser, handler ServerHandler, options ...ServerOption) {
	s := NewServer(rwc, handler, options...)
	go func() {
		if err := s.Serve(ctx); err != nil {
			s.logger.WithError(err).Debug("sftp server session ended")
		}
	}()
}

// Serve reads frames from the stream, dispatches them to the handler and
// writes the responses, until the stream is exhausted or ctx is cancelled.
//
// Requests are processed strictly in arrival order: the next read does not
// begin until the previous response has been written. A clean EOF between
// frames, and a frame truncated by the peer closing, both end the session
// with a nil error.
func (s *Server) Serve(ctx context.Context) error {
	defer s.conn.Close()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		raw, err := s.recvPacket()
		if err != nil {
			switch errors.Cause(err) {
			case io.EOF:
				return nil
			case io.ErrUnexpectedEOF:
				s.logger.Debug("sftp session ended mid-frame")
				return nil
			default:
				return errors.Wrap(err, "sftp: recv")
			}
		}

		reqid, resp := s.dispatch(ctx, raw)

		if err := s.sendPacket(reqid, resp); err != nil {
			s.logger.WithError(err).Error("sftp: failed to write response")
			return err
		}
	}
}

// dispatch decodes the typed request and routes it to the matching handler
// method. It always produces a response packet: decoding failures become
// SSH_FX_BAD_MESSAGE statuses with the recovered request-id, and handler
// errors become statuses via statusPacketFor.
func (s *Server) dispatch(ctx context.Context, raw *sshfx.RawPacket) (uint32, sshfx.Packet) {
	pkt, err := raw.Request()
	if err != nil {
		s.logger.WithError(err).WithField("type", raw.PacketType).Warn("sftp: malformed packet")
		return raw.RequestID, sshfx.NewStatus(raw.RequestID, sshfx.StatusBadMessage)
	}

	if init, ok := pkt.(*sshfx.InitPacket); ok {
		if s.version != 0 {
			return 0, sshfx.NewStatus(0, sshfx.StatusConnectionLost)
		}

		resp, err := s.handler.Init(ctx, init)
		if err != nil {
			return 0, statusPacketFor(0, err)
		}

		s.version = resp.Version
		return 0, resp
	}

	if s.version == 0 {
		return raw.RequestID, sshfx.NewStatus(raw.RequestID, sshfx.StatusNoConnection)
	}

	var resp sshfx.Packet

	switch req := pkt.(type) {
	case *sshfx.OpenPacket:
		resp, err = s.handler.Open(ctx, req)
	case *sshfx.ClosePacket:
		resp, err = s.handler.Close(ctx, req)
	case *sshfx.ReadPacket:
		resp, err = s.handler.Read(ctx, req)
	case *sshfx.WritePacket:
		resp, err = s.handler.Write(ctx, req)
	case *sshfx.LStatPacket:
		resp, err = s.handler.LStat(ctx, req)
	case *sshfx.FStatPacket:
		resp, err = s.handler.FStat(ctx, req)
	case *sshfx.SetStatPacket:
		resp, err = s.handler.SetStat(ctx, req)
	case *sshfx.FSetStatPacket:
		resp, err = s.handler.FSetStat(ctx, req)
	case *sshfx.OpenDirPacket:
		resp, err = s.handler.OpenDir(ctx, req)
	case *sshfx.ReadDirPacket:
		resp, err = s.handler.ReadDir(ctx, req)
	case *sshfx.RemovePacket:
		resp, err = s.handler.Remove(ctx, req)
	case *sshfx.MkdirPacket:
		resp, err = s.handler.Mkdir(ctx, req)
	case *sshfx.RmdirPacket:
		resp, err = s.handler.Rmdir(ctx, req)
	case *sshfx.RealPathPacket:
		resp, err = s.handler.RealPath(ctx, req)
	case *sshfx.StatPacket:
		resp, err = s.handler.Stat(ctx, req)
	case *sshfx.RenamePacket:
		resp, err = s.handler.Rename(ctx, req)
	case *sshfx.ReadLinkPacket:
		resp, err = s.handler.ReadLink(ctx, req)
	case *sshfx.SymlinkPacket:
		resp, err = s.handler.Symlink(ctx, req)
	case *sshfx.ExtendedPacket:
		resp, err = s.handler.Extended(ctx, req)
	default:
		// Request() only returns types from the request set.
		return raw.RequestID, sshfx.NewStatus(raw.RequestID, sshfx.StatusBadMessage)
	}

	if err != nil {
		return raw.RequestID, statusPacketFor(raw.RequestID, err)
	}

	return raw.RequestID, resp
}
