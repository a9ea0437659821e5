package sftp

import (
	"io"
	"os"

	"github.com/pkg/errors"

	sshfx "github.com/driftware/sftp/encoding/ssh/filexfer"
)

// Handler errors are serialized onto the wire as SSH_FXP_STATUS packets.
// A handler can return an sshfx.Status directly to control the exact code,
// or an *sshfx.StatusPacket to also control the message; any other error is
// mapped through the usual os and io predicates and falls back to
// SSH_FX_FAILURE.

// statusFor resolves the wire status code for a handler error.
func statusFor(err error) sshfx.Status {
	if err == nil {
		return sshfx.StatusOK
	}

	switch cause := errors.Cause(err).(type) {
	case sshfx.Status:
		return cause
	case *sshfx.StatusPacket:
		return cause.StatusCode
	}

	switch {
	case errors.Cause(err) == io.EOF:
		return sshfx.StatusEOF
	case os.IsNotExist(errors.Cause(err)):
		return sshfx.StatusNoSuchFile
	case os.IsPermission(errors.Cause(err)):
		return sshfx.StatusPermissionDenied
	}

	return sshfx.StatusFailure
}

// statusPacketFor builds the SSH_FXP_STATUS response for a handler error,
// preserving a handler-supplied message when one was given.
func statusPacketFor(reqid uint32, err error) *sshfx.StatusPacket {
	if sp, ok := errors.Cause(err).(*sshfx.StatusPacket); ok {
		return &sshfx.StatusPacket{
			RequestID:    reqid,
			StatusCode:   sp.StatusCode,
			ErrorMessage: sp.ErrorMessage,
			LanguageTag:  sp.LanguageTag,
		}
	}

	return sshfx.NewStatus(reqid, statusFor(err))
}
