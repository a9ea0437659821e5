package sftp

import (
	"io"
	"sync"

	"github.com/pkg/errors"

	sshfx "github.com/driftware/sftp/encoding/ssh/filexfer"
)

// conn wraps the host-supplied bidirectional stream with frame-level
// send and receive. Writes are serialised so a response frame is never
// interleaved with another.
type conn struct {
	io.Reader

	sync.Mutex // serialises sendPacket
	io.WriteCloser

	maxPacketLength uint32
}

// recvPacket reads one length-prefixed frame from the stream.
// io.EOF means the peer closed the stream between frames;
// io.ErrUnexpectedEOF means the frame was truncated.
func (c *conn) recvPacket() (*sshfx.RawPacket, error) {
	var raw sshfx.RawPacket
	if err := raw.ReadFrom(c.Reader, c.maxPacketLength); err != nil {
		return nil, err
	}

	return &raw, nil
}

// sendPacket marshals p with the given request-id and writes the frame.
func (c *conn) sendPacket(reqid uint32, p sshfx.Packet) error {
	header, payload, err := p.MarshalPacket(reqid, nil)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Lock()
	defer c.Unlock()

	if _, err := c.WriteCloser.Write(header); err != nil {
		return errors.WithStack(err)
	}

	if len(payload) > 0 {
		if _, err := c.WriteCloser.Write(payload); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

func (c *conn) Close() error {
	c.Lock()
	defer c.Unlock()

	return c.WriteCloser.Close()
}
