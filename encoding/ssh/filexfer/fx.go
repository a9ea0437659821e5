package sshfx

import (
	"fmt"
)

// Status defines the SFTP error codes used in SSH_FXP_STATUS response packets.
type Status uint32

// Defines the various SSH_FX_* values.
const (
	// see draft-ietf-secsh-filexfer-02
	// https://tools.ietf.org/html/draft-ietf-secsh-filexfer-02#section-7
	StatusOK = Status(iota)
	StatusEOF
	StatusNoSuchFile
	StatusPermissionDenied
	StatusFailure
	StatusBadMessage
	StatusNoConnection
	StatusConnectionLost
	StatusOPUnsupported
)

func (s Status) Error() string {
	return s.Message()
}

// Message returns the canonical human-readable message for the status code,
// as carried in the error message field of SSH_FXP_STATUS packets.
func (s Status) Message() string {
	switch s {
	case StatusOK:
		return "Ok"
	case StatusEOF:
		return "End of file"
	case StatusNoSuchFile:
		return "No such file"
	case StatusPermissionDenied:
		return "Permission denied"
	case StatusFailure:
		return "Failure"
	case StatusBadMessage:
		return "Bad message"
	case StatusNoConnection:
		return "No connection"
	case StatusConnectionLost:
		return "Connection lost"
	case StatusOPUnsupported:
		return "Operation unsupported"
	default:
		return fmt.Sprintf("unknown status code %d", uint32(s))
	}
}

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "SSH_FX_OK"
	case StatusEOF:
		return "SSH_FX_EOF"
	case StatusNoSuchFile:
		return "SSH_FX_NO_SUCH_FILE"
	case StatusPermissionDenied:
		return "SSH_FX_PERMISSION_DENIED"
	case StatusFailure:
		return "SSH_FX_FAILURE"
	case StatusBadMessage:
		return "SSH_FX_BAD_MESSAGE"
	case StatusNoConnection:
		return "SSH_FX_NO_CONNECTION"
	case StatusConnectionLost:
		return "SSH_FX_CONNECTION_LOST"
	case StatusOPUnsupported:
		return "SSH_FX_OP_UNSUPPORTED"
	default:
		return fmt.Sprintf("SSH_FX_UNKNOWN(%d)", uint32(s))
	}
}
