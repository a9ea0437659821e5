package sftp

import (
	"context"
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	sshfx "github.com/driftware/sftp/encoding/ssh/filexfer"
)

// Client dispatches SFTP responses read from a byte stream to a
// ClientHandler. It is the mirror of Server: same framing, same decode
// step, specialised to the response packet set.
//
// The loop is write-free: responses are terminal, so nothing is sent back
// on the wire, and a handler error is surfaced through the HandlerError
// callback rather than as a Status packet to the server.
type Client struct {
	conn

	handler ClientHandler
	logger  logrus.FieldLogger

	// handlerError, when set, receives every error returned by a handler
	// method. The session continues either way.
	handlerError func(error)
}

// A ClientOption is a function which applies configuration to a Client.
type ClientOption func(*Client)

// WithClientLogger directs the client's session diagnostics to the given
// logger. The default discards them.
func WithClientLogger(logger logrus.FieldLogger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHandlerError registers a callback receiving handler errors.
func WithHandlerError(fn func(error)) ClientOption {
	return func(c *Client) {
		c.handlerError = fn
	}
}

// WithClientMaxPacketLength overrides the maximum accepted frame length,
// sshfx.DefaultMaxPacketLength by default.
func WithClientMaxPacketLength(length uint32) ClientOption {
	return func(c *Client) {
		c.maxPacketLength = length
	}
}

// NewClient creates a client-side dispatcher around the provided stream.
// A subsequent call to Serve is required to begin dispatching responses.
//
// Framing requests onto the same stream is the host's concern: the typed
// packets in the sshfx package marshal themselves, so a driver writes
// requests directly and observes the replies through its ClientHandler.
func NewClient(rwc io.ReadWriteCloser, handler ClientHandler, options ...ClientOption) *Client {
	discard := logrus.New()
	discard.SetOutput(ioutil.Discard)

	c := &Client{
		conn: conn{
			Reader:      rwc,
			WriteCloser: rwc,
		},
		handler: handler,
		logger:  discard,
	}

	for _, o := range options {
		o(c)
	}

	return c
}

// RunClient starts a client-side dispatch loop on its own goroutine and
// returns immediately. Errors never escape the loop.
func RunClient(ctx context.Context, rwc io.ReadWriteCloser, handler ClientHandler, options ...ClientOption) {
	c := NewClient(rwc, handler, options...)
	go func() {
		if err := c.Serve(ctx); err != nil {
			c.logger.WithError(err).Debug("sftp client session ended")
		}
	}()
}

// Serve reads response frames from the stream and dispatches them to the
// handler until the stream is exhausted or ctx is cancelled. Responses on
// one stream are dispatched strictly sequentially.
func (c *Client) Serve(ctx context.Context) error {
	defer c.conn.Close()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		raw, err := c.recvPacket()
		if err != nil {
			switch errors.Cause(err) {
			case io.EOF:
				return nil
			case io.ErrUnexpectedEOF:
				c.logger.Debug("sftp session ended mid-frame")
				return nil
			default:
				return errors.Wrap(err, "sftp: recv")
			}
		}

		c.dispatch(ctx, raw)
	}
}

// dispatch decodes the typed response and routes it to the matching
// handler method. Malformed packets and handler errors are reported and
// dropped; nothing is ever written back.
func (c *Client) dispatch(ctx context.Context, raw *sshfx.RawPacket) {
	pkt, err := raw.Response()
	if err != nil {
		c.logger.WithError(err).WithField("type", raw.PacketType).Warn("sftp: malformed packet")
		c.reportHandlerError(sshfx.StatusBadMessage)
		return
	}

	switch resp := pkt.(type) {
	case *sshfx.VersionPacket:
		err = c.handler.Version(ctx, resp)
	case *sshfx.StatusPacket:
		err = c.handler.Status(ctx, resp)
	case *sshfx.HandlePacket:
		err = c.handler.Handle(ctx, resp)
	case *sshfx.DataPacket:
		err = c.handler.Data(ctx, resp)
	case *sshfx.NamePacket:
		err = c.handler.Name(ctx, resp)
	case *sshfx.AttrsPacket:
		err = c.handler.Attrs(ctx, resp)
	case *sshfx.ExtendedReplyPacket:
		err = c.handler.ExtendedReply(ctx, resp)
	}

	if err != nil {
		c.logger.WithError(err).WithField("type", raw.PacketType).Warn("sftp: handler error")
		c.reportHandlerError(err)
	}
}

func (c *Client) reportHandlerError(err error) {
	if c.handlerError != nil {
		c.handlerError(err)
	}
}
