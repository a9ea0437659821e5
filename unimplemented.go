package sftp

import (
	"context"

	sshfx "github.com/driftware/sftp/encoding/ssh/filexfer"
)

// UnimplementedServerHandler must be embedded to both ensure forward
// compatible implementations, and to stub out any operations you do not
// wish to implement. Every stub answers SSH_FX_OP_UNSUPPORTED, except
// Init, which performs the default version negotiation.
type UnimplementedServerHandler struct{}

func (UnimplementedServerHandler) mustEmbedUnimplementedServerHandler() {}

// Init accepts protocol version 3 and ignores any extensions. Any other
// version is refused with SSH_FX_CONNECTION_LOST; override Init to
// negotiate downward.
func (UnimplementedServerHandler) Init(_ context.Context, req *sshfx.InitPacket) (*sshfx.VersionPacket, error) {
	if req.Version != ProtocolVersion {
		return nil, sshfx.StatusConnectionLost
	}

	return &sshfx.VersionPacket{Version: ProtocolVersion}, nil
}

// Open returns an SSH_FX_OP_UNSUPPORTED error.
func (UnimplementedServerHandler) Open(_ context.Context, _ *sshfx.OpenPacket) (*sshfx.HandlePacket, error) {
	return nil, sshfx.StatusOPUnsupported
}

// Close returns an SSH_FX_OP_UNSUPPORTED error.
func (UnimplementedServerHandler) Close(_ context.Context, _ *sshfx.ClosePacket) (*sshfx.StatusPacket, error) {
	return nil, sshfx.StatusOPUnsupported
}

// Read returns an SSH_FX_OP_UNSUPPORTED error.
func (UnimplementedServerHandler) Read(_ context.Context, _ *sshfx.ReadPacket) (*sshfx.DataPacket, error) {
	return nil, sshfx.StatusOPUnsupported
}

// Write returns an SSH_FX_OP_UNSUPPORTED error.
func (UnimplementedServerHandler) Write(_ context.Context, _ *sshfx.WritePacket) (*sshfx.StatusPacket, error) {
	return nil, sshfx.StatusOPUnsupported
}

// LStat returns an SSH_FX_OP_UNSUPPORTED error.
func (UnimplementedServerHandler) LStat(_ context.Context, _ *sshfx.LStatPacket) (*sshfx.AttrsPacket, error) {
	return nil, sshfx.StatusOPUnsupported
}

// FStat returns an SSH_FX_OP_UNSUPPORTED error.
func (UnimplementedServerHandler) FStat(_ context.Context, _ *sshfx.FStatPacket) (*sshfx.AttrsPacket, error) {
	return nil, sshfx.StatusOPUnsupported
}

// SetStat returns an SSH_FX_OP_UNSUPPORTED error.
func (UnimplementedServerHandler) SetStat(_ context.Context, _ *sshfx.SetStatPacket) (*sshfx.StatusPacket, error) {
	return nil, sshfx.StatusOPUnsupported
}

// FSetStat returns an SSH_FX_OP_UNSUPPORTED error.
func (UnimplementedServerHandler) FSetStat(_ context.Context, _ *sshfx.FSetStatPacket) (*sshfx.StatusPacket, error) {
	return nil, sshfx.StatusOPUnsupported
}

// OpenDir returns an SSH_FX_OP_UNSUPPORTED error.
func (UnimplementedServerHandler) OpenDir(_ context.Context, _ *sshfx.OpenDirPacket) (*sshfx.HandlePacket, error) {
	return nil, sshfx.StatusOPUnsupported
}

// ReadDir returns an SSH_FX_OP_UNSUPPORTED error.
func (UnimplementedServerHandler) ReadDir(_ context.Context, _ *sshfx.ReadDirPacket) (*sshfx.NamePacket, error) {
	return nil, sshfx.StatusOPUnsupported
}

// Remove returns an SSH_FX_OP_UNSUPPORTED error.
func (UnimplementedServerHandler) Remove(_ context.Context, _ *sshfx.RemovePacket) (*sshfx.StatusPacket, error) {
	return nil, sshfx.StatusOPUnsupported
}

// Mkdir returns an SSH_FX_OP_UNSUPPORTED error.
func (UnimplementedServerHandler) Mkdir(_ context.Context, _ *sshfx.MkdirPacket) (*sshfx.StatusPacket, error) {
	return nil, sshfx.StatusOPUnsupported
}

// Rmdir returns an SSH_FX_OP_UNSUPPORTED error.
func (UnimplementedServerHandler) Rmdir(_ context.Context, _ *sshfx.RmdirPacket) (*sshfx.StatusPacket, error) {
	return nil, sshfx.StatusOPUnsupported
}

// RealPath returns an SSH_FX_OP_UNSUPPORTED error.
func (UnimplementedServerHandler) RealPath(_ context.Context, _ *sshfx.RealPathPacket) (*sshfx.NamePacket, error) {
	return nil, sshfx.StatusOPUnsupported
}

// Stat returns an SSH_FX_OP_UNSUPPORTED error.
func (UnimplementedServerHandler) Stat(_ context.Context, _ *sshfx.StatPacket) (*sshfx.AttrsPacket, error) {
	return nil, sshfx.StatusOPUnsupported
}

// Rename returns an SSH_FX_OP_UNSUPPORTED error.
func (UnimplementedServerHandler) Rename(_ context.Context, _ *sshfx.RenamePacket) (*sshfx.StatusPacket, error) {
	return nil, sshfx.StatusOPUnsupported
}

// ReadLink returns an SSH_FX_OP_UNSUPPORTED error.
func (UnimplementedServerHandler) ReadLink(_ context.Context, _ *sshfx.ReadLinkPacket) (*sshfx.NamePacket, error) {
	return nil, sshfx.StatusOPUnsupported
}

// Symlink returns an SSH_FX_OP_UNSUPPORTED error.
func (UnimplementedServerHandler) Symlink(_ context.Context, _ *sshfx.SymlinkPacket) (*sshfx.StatusPacket, error) {
	return nil, sshfx.StatusOPUnsupported
}

// Extended returns an SSH_FX_OP_UNSUPPORTED error, as required for any
// extended-request name the server does not recognize.
func (UnimplementedServerHandler) Extended(_ context.Context, _ *sshfx.ExtendedPacket) (*sshfx.ExtendedReplyPacket, error) {
	return nil, sshfx.StatusOPUnsupported
}

// UnimplementedClientHandler must be embedded to both ensure forward
// compatible implementations, and to stub out any responses you do not
// wish to observe. Every stub answers SSH_FX_OP_UNSUPPORTED, except
// Version, which performs the default version check.
type UnimplementedClientHandler struct{}

func (UnimplementedClientHandler) mustEmbedUnimplementedClientHandler() {}

// Version accepts protocol version 3 and ignores any extensions. Any
// other version is refused with SSH_FX_CONNECTION_LOST; override Version
// to negotiate downward.
func (UnimplementedClientHandler) Version(_ context.Context, resp *sshfx.VersionPacket) error {
	if resp.Version != ProtocolVersion {
		return sshfx.StatusConnectionLost
	}

	return nil
}

// Status returns an SSH_FX_OP_UNSUPPORTED error.
func (UnimplementedClientHandler) Status(_ context.Context, _ *sshfx.StatusPacket) error {
	return sshfx.StatusOPUnsupported
}

// Handle returns an SSH_FX_OP_UNSUPPORTED error.
func (UnimplementedClientHandler) Handle(_ context.Context, _ *sshfx.HandlePacket) error {
	return sshfx.StatusOPUnsupported
}

// Data returns an SSH_FX_OP_UNSUPPORTED error.
func (UnimplementedClientHandler) Data(_ context.Context, _ *sshfx.DataPacket) error {
	return sshfx.StatusOPUnsupported
}

// Name returns an SSH_FX_OP_UNSUPPORTED error.
func (UnimplementedClientHandler) Name(_ context.Context, _ *sshfx.NamePacket) error {
	return sshfx.StatusOPUnsupported
}

// Attrs returns an SSH_FX_OP_UNSUPPORTED error.
func (UnimplementedClientHandler) Attrs(_ context.Context, _ *sshfx.AttrsPacket) error {
	return sshfx.StatusOPUnsupported
}

// ExtendedReply returns an SSH_FX_OP_UNSUPPORTED error.
func (UnimplementedClientHandler) ExtendedReply(_ context.Context, _ *sshfx.ExtendedReplyPacket) error {
	return sshfx.StatusOPUnsupported
}
