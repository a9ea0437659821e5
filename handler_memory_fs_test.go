package sftp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sshfx "github.com/driftware/sftp/encoding/ssh/filexfer"
)

func openFile(t *testing.T, fs *MemFS, name string, flags sshfx.PFlags) string {
	t.Helper()

	handle, err := fs.Open(context.Background(), &sshfx.OpenPacket{
		Filename: name,
		PFlags:   flags,
	})
	require.NoError(t, err)
	return handle.Handle
}

func TestMemFSCreateWriteRead(t *testing.T) {
	ctx := context.Background()
	fs := NewMemFS()

	h := openFile(t, fs, "/f", sshfx.FlagRead|sshfx.FlagWrite|sshfx.FlagCreate)

	_, err := fs.Write(ctx, &sshfx.WritePacket{Handle: h, Offset: 0, Data: []byte("hello, world")})
	require.NoError(t, err)

	data, err := fs.Read(ctx, &sshfx.ReadPacket{Handle: h, Offset: 7, Len: 5})
	require.NoError(t, err)
	assert.Equal(t, []byte("world"), data.Data)

	_, err = fs.Close(ctx, &sshfx.ClosePacket{Handle: h})
	require.NoError(t, err)

	// The handle is gone after close.
	_, err = fs.Read(ctx, &sshfx.ReadPacket{Handle: h, Offset: 0, Len: 1})
	assert.Equal(t, sshfx.StatusFailure, err)
}

func TestMemFSOpenFlags(t *testing.T) {
	ctx := context.Background()
	fs := NewMemFS()
	require.NoError(t, fs.Put("/exists", []byte("x"), 0o644))

	// Missing file without SSH_FXF_CREAT.
	_, err := fs.Open(ctx, &sshfx.OpenPacket{Filename: "/missing", PFlags: sshfx.FlagRead})
	assert.Equal(t, sshfx.StatusNoSuchFile, err)

	// Neither read nor write.
	_, err = fs.Open(ctx, &sshfx.OpenPacket{Filename: "/exists"})
	assert.Equal(t, sshfx.StatusFailure, err)

	// EXCL and TRUNC both require CREAT.
	_, err = fs.Open(ctx, &sshfx.OpenPacket{Filename: "/exists", PFlags: sshfx.FlagWrite | sshfx.FlagExclusive})
	assert.Equal(t, sshfx.StatusFailure, err)

	_, err = fs.Open(ctx, &sshfx.OpenPacket{Filename: "/exists", PFlags: sshfx.FlagWrite | sshfx.FlagTruncate})
	assert.Equal(t, sshfx.StatusFailure, err)

	// EXCL refuses an existing path.
	_, err = fs.Open(ctx, &sshfx.OpenPacket{
		Filename: "/exists",
		PFlags:   sshfx.FlagWrite | sshfx.FlagCreate | sshfx.FlagExclusive,
	})
	assert.Equal(t, sshfx.StatusFailure, err)

	// TRUNC empties the file.
	h := openFile(t, fs, "/exists", sshfx.FlagWrite|sshfx.FlagCreate|sshfx.FlagTruncate)
	attrs, err := fs.FStat(ctx, &sshfx.FStatPacket{Handle: h})
	require.NoError(t, err)
	assert.EqualValues(t, 0, attrs.Attrs.Size)
}

func TestMemFSAppend(t *testing.T) {
	ctx := context.Background()
	fs := NewMemFS()
	require.NoError(t, fs.Put("/log", []byte("one"), 0o644))

	h := openFile(t, fs, "/log", sshfx.FlagWrite|sshfx.FlagAppend)

	// The offset is ignored with SSH_FXF_APPEND.
	_, err := fs.Write(ctx, &sshfx.WritePacket{Handle: h, Offset: 0, Data: []byte("two")})
	require.NoError(t, err)

	stat, err := fs.Stat(ctx, &sshfx.StatPacket{Path: "/log"})
	require.NoError(t, err)
	assert.EqualValues(t, 6, stat.Attrs.Size)
}

func TestMemFSWriteBeyondEnd(t *testing.T) {
	ctx := context.Background()
	fs := NewMemFS()

	h := openFile(t, fs, "/sparse", sshfx.FlagRead|sshfx.FlagWrite|sshfx.FlagCreate)

	_, err := fs.Write(ctx, &sshfx.WritePacket{Handle: h, Offset: 4, Data: []byte("data")})
	require.NoError(t, err)

	data, err := fs.Read(ctx, &sshfx.ReadPacket{Handle: h, Offset: 0, Len: 16})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0, 'd', 'a', 't', 'a'}, data.Data)
}

func TestMemFSReadDirBatchThenEOF(t *testing.T) {
	ctx := context.Background()
	fs := NewMemFS()
	require.NoError(t, fs.Put("/d/b", nil, 0o644))
	require.NoError(t, fs.Put("/d/a", nil, 0o644))
	require.NoError(t, fs.PutDir("/d/sub", 0o755))

	handle, err := fs.OpenDir(ctx, &sshfx.OpenDirPacket{Path: "/d"})
	require.NoError(t, err)

	name, err := fs.ReadDir(ctx, &sshfx.ReadDirPacket{Handle: handle.Handle})
	require.NoError(t, err)
	require.Len(t, name.Entries, 3)

	// Entries arrive sorted by filename.
	assert.Equal(t, "a", name.Entries[0].Filename)
	assert.Equal(t, "b", name.Entries[1].Filename)
	assert.Equal(t, "sub", name.Entries[2].Filename)
	assert.True(t, name.Entries[2].Attrs.IsDir())

	_, err = fs.ReadDir(ctx, &sshfx.ReadDirPacket{Handle: handle.Handle})
	assert.Equal(t, sshfx.StatusEOF, err)
}

func TestMemFSMkdirRmdir(t *testing.T) {
	ctx := context.Background()
	fs := NewMemFS()

	_, err := fs.Mkdir(ctx, &sshfx.MkdirPacket{Path: "/dir"})
	require.NoError(t, err)

	// An existing path is refused.
	_, err = fs.Mkdir(ctx, &sshfx.MkdirPacket{Path: "/dir"})
	assert.Equal(t, sshfx.StatusFailure, err)

	require.NoError(t, fs.Put("/dir/f", []byte("x"), 0o644))

	// A non-empty directory cannot be removed.
	_, err = fs.Rmdir(ctx, &sshfx.RmdirPacket{Path: "/dir"})
	assert.Equal(t, sshfx.StatusFailure, err)

	_, err = fs.Remove(ctx, &sshfx.RemovePacket{Filename: "/dir/f"})
	require.NoError(t, err)

	_, err = fs.Rmdir(ctx, &sshfx.RmdirPacket{Path: "/dir"})
	require.NoError(t, err)

	_, err = fs.Stat(ctx, &sshfx.StatPacket{Path: "/dir"})
	assert.Equal(t, sshfx.StatusNoSuchFile, err)
}

func TestMemFSRemoveRefusesDirectory(t *testing.T) {
	ctx := context.Background()
	fs := NewMemFS()
	require.NoError(t, fs.PutDir("/dir", 0o755))

	_, err := fs.Remove(ctx, &sshfx.RemovePacket{Filename: "/dir"})
	assert.Equal(t, sshfx.StatusFailure, err)
}

func TestMemFSRename(t *testing.T) {
	ctx := context.Background()
	fs := NewMemFS()
	require.NoError(t, fs.Put("/old", []byte("x"), 0o644))
	require.NoError(t, fs.Put("/taken", []byte("y"), 0o644))

	// An existing destination is refused.
	_, err := fs.Rename(ctx, &sshfx.RenamePacket{OldPath: "/old", NewPath: "/taken"})
	assert.Equal(t, sshfx.StatusFailure, err)

	_, err = fs.Rename(ctx, &sshfx.RenamePacket{OldPath: "/old", NewPath: "/new"})
	require.NoError(t, err)

	_, err = fs.Stat(ctx, &sshfx.StatPacket{Path: "/old"})
	assert.Equal(t, sshfx.StatusNoSuchFile, err)

	stat, err := fs.Stat(ctx, &sshfx.StatPacket{Path: "/new"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, stat.Attrs.Size)
}

func TestMemFSSymlinks(t *testing.T) {
	ctx := context.Background()
	fs := NewMemFS()
	require.NoError(t, fs.Put("/target", []byte("pointed at"), 0o644))

	_, err := fs.Symlink(ctx, &sshfx.SymlinkPacket{LinkPath: "/link", TargetPath: "/target"})
	require.NoError(t, err)

	// Stat follows the link, LStat does not.
	stat, err := fs.Stat(ctx, &sshfx.StatPacket{Path: "/link"})
	require.NoError(t, err)
	assert.EqualValues(t, 10, stat.Attrs.Size)

	lstat, err := fs.LStat(ctx, &sshfx.LStatPacket{Path: "/link"})
	require.NoError(t, err)
	assert.EqualValues(t, len("/target"), lstat.Attrs.Size)

	name, err := fs.ReadLink(ctx, &sshfx.ReadLinkPacket{Path: "/link"})
	require.NoError(t, err)
	require.Len(t, name.Entries, 1)
	assert.Equal(t, "/target", name.Entries[0].Filename)

	// ReadLink on a regular file fails.
	_, err = fs.ReadLink(ctx, &sshfx.ReadLinkPacket{Path: "/target"})
	assert.Equal(t, sshfx.StatusFailure, err)

	// A link loop resolves to failure, not a hang.
	_, err = fs.Symlink(ctx, &sshfx.SymlinkPacket{LinkPath: "/loop", TargetPath: "/loop"})
	require.NoError(t, err)

	_, err = fs.Stat(ctx, &sshfx.StatPacket{Path: "/loop"})
	assert.Equal(t, sshfx.StatusFailure, err)
}

func TestMemFSSetStat(t *testing.T) {
	ctx := context.Background()
	fs := NewMemFS()
	require.NoError(t, fs.Put("/f", []byte("0123456789"), 0o644))

	var attrs sshfx.Attributes
	attrs.SetSize(4)
	attrs.SetPermissions(0o600)
	attrs.SetACModTime(11, 22)

	_, err := fs.SetStat(ctx, &sshfx.SetStatPacket{Path: "/f", Attrs: attrs})
	require.NoError(t, err)

	stat, err := fs.Stat(ctx, &sshfx.StatPacket{Path: "/f"})
	require.NoError(t, err)
	assert.EqualValues(t, 4, stat.Attrs.Size)
	assert.EqualValues(t, 0o600, stat.Attrs.Permissions)
	assert.EqualValues(t, 11, stat.Attrs.ATime)
	assert.EqualValues(t, 22, stat.Attrs.MTime)
}

func TestMemFSRealPath(t *testing.T) {
	ctx := context.Background()
	fs := NewMemFS()
	require.NoError(t, fs.Put("/a/b", []byte("x"), 0o644))

	name, err := fs.RealPath(ctx, &sshfx.RealPathPacket{Path: "a/./../a/b"})
	require.NoError(t, err)
	require.Len(t, name.Entries, 1)
	assert.Equal(t, "/a/b", name.Entries[0].Filename)
	assert.True(t, name.Entries[0].Attrs.HasSize())

	// A path through a missing component still resolves lexically.
	name, err = fs.RealPath(ctx, &sshfx.RealPathPacket{Path: "/nope/.."})
	require.NoError(t, err)
	require.Len(t, name.Entries, 1)
	assert.Equal(t, "/", name.Entries[0].Filename)
}

func TestMemFSStatDirectoryAttrs(t *testing.T) {
	ctx := context.Background()
	fs := NewMemFS()
	require.NoError(t, fs.PutDir("/d", 0o755))

	stat, err := fs.Stat(ctx, &sshfx.StatPacket{Path: "/d"})
	require.NoError(t, err)
	assert.True(t, stat.Attrs.IsDir())
	assert.EqualValues(t, 0o755|sshfx.ModeDir, stat.Attrs.Permissions)
}
