package sftp

import (
	"context"

	sshfx "github.com/driftware/sftp/encoding/ssh/filexfer"
)

// ServerHandler is the capability set a server-side host application
// implements. The dispatcher invokes exactly one method per incoming
// request packet; the successful return is the response written back to
// the client, and an error is serialised as an SSH_FXP_STATUS (see
// errors.go for the mapping).
//
// Implementations must embed UnimplementedServerHandler, which answers
// every operation with SSH_FX_OP_UNSUPPORTED, so that partial handlers
// remain valid as the contract grows.
type ServerHandler interface {
	// Init answers the version negotiation that opens every session.
	Init(ctx context.Context, req *sshfx.InitPacket) (*sshfx.VersionPacket, error)

	Open(ctx context.Context, req *sshfx.OpenPacket) (*sshfx.HandlePacket, error)
	Close(ctx context.Context, req *sshfx.ClosePacket) (*sshfx.StatusPacket, error)
	Read(ctx context.Context, req *sshfx.ReadPacket) (*sshfx.DataPacket, error)
	Write(ctx context.Context, req *sshfx.WritePacket) (*sshfx.StatusPacket, error)
	LStat(ctx context.Context, req *sshfx.LStatPacket) (*sshfx.AttrsPacket, error)
	FStat(ctx context.Context, req *sshfx.FStatPacket) (*sshfx.AttrsPacket, error)
	SetStat(ctx context.Context, req *sshfx.SetStatPacket) (*sshfx.StatusPacket, error)
	FSetStat(ctx context.Context, req *sshfx.FSetStatPacket) (*sshfx.StatusPacket, error)
	OpenDir(ctx context.Context, req *sshfx.OpenDirPacket) (*sshfx.HandlePacket, error)

	// ReadDir returns the next batch of entries for an open directory
	// handle, and signals end-of-directory with sshfx.StatusEOF.
	ReadDir(ctx context.Context, req *sshfx.ReadDirPacket) (*sshfx.NamePacket, error)

	Remove(ctx context.Context, req *sshfx.RemovePacket) (*sshfx.StatusPacket, error)
	Mkdir(ctx context.Context, req *sshfx.MkdirPacket) (*sshfx.StatusPacket, error)
	Rmdir(ctx context.Context, req *sshfx.RmdirPacket) (*sshfx.StatusPacket, error)

	// RealPath resolves a path to its canonical absolute form. The
	// returned name packet must contain exactly one entry.
	RealPath(ctx context.Context, req *sshfx.RealPathPacket) (*sshfx.NamePacket, error)

	Stat(ctx context.Context, req *sshfx.StatPacket) (*sshfx.AttrsPacket, error)
	Rename(ctx context.Context, req *sshfx.RenamePacket) (*sshfx.StatusPacket, error)
	ReadLink(ctx context.Context, req *sshfx.ReadLinkPacket) (*sshfx.NamePacket, error)
	Symlink(ctx context.Context, req *sshfx.SymlinkPacket) (*sshfx.StatusPacket, error)
	Extended(ctx context.Context, req *sshfx.ExtendedPacket) (*sshfx.ExtendedReplyPacket, error)

	mustEmbedUnimplementedServerHandler()
}

// ClientHandler is the capability set a client-side host application
// implements, one method per response packet type a server can send.
// Responses are terminal: the dispatcher writes nothing back, and a
// handler error is surfaced through the Client's error callback.
//
// Implementations must embed UnimplementedClientHandler.
type ClientHandler interface {
	// Version consumes the negotiation reply that opens every session.
	Version(ctx context.Context, resp *sshfx.VersionPacket) error

	Status(ctx context.Context, resp *sshfx.StatusPacket) error
	Handle(ctx context.Context, resp *sshfx.HandlePacket) error
	Data(ctx context.Context, resp *sshfx.DataPacket) error
	Name(ctx context.Context, resp *sshfx.NamePacket) error
	Attrs(ctx context.Context, resp *sshfx.AttrsPacket) error
	ExtendedReply(ctx context.Context, resp *sshfx.ExtendedReplyPacket) error

	mustEmbedUnimplementedClientHandler()
}
