package sftp

// A reference ServerHandler backed by an in-memory tree. It serves as an
// example of how to implement the handler contract as well as a backend
// for testing: platform-free, no host filesystem involved.

import (
	"context"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	sshfx "github.com/driftware/sftp/encoding/ssh/filexfer"
)

const (
	memDefaultFilePerm = 0o644
	memDefaultDirPerm  = 0o755

	modeSymlink = 0o120000

	// maxLinkHops bounds symlink resolution, so link loops fail instead of spinning.
	maxLinkHops = 16
)

// MemFS is an in-memory filesystem serving the full ServerHandler
// capability set. The zero value is not usable; use NewMemFS.
//
// A MemFS may back multiple sessions at once; all operations are
// serialised on an internal lock.
type MemFS struct {
	UnimplementedServerHandler

	mu      sync.Mutex
	root    *memEntry
	handles map[string]*memHandle
}

// memEntry is a node of the tree: a file, a directory, or a symlink.
type memEntry struct {
	perms uint32 // permission bits, plus the file-type bits
	uid   uint32
	gid   uint32
	atime uint32
	mtime uint32

	data     []byte               // file contents
	children map[string]*memEntry // directory entries
	target   string               // symlink target
}

func (e *memEntry) isDir() bool  { return e.children != nil }
func (e *memEntry) isLink() bool { return e.target != "" }

// memHandle is the server-side state behind an opaque handle string.
type memHandle struct {
	entry *memEntry
	path  string

	read   bool
	write  bool
	append bool

	dir bool
	eof bool // set once the single directory batch has been returned
}

// NewMemFS returns an empty in-memory filesystem rooted at "/".
func NewMemFS() *MemFS {
	return &MemFS{
		root:    newMemDir(memDefaultDirPerm),
		handles: make(map[string]*memHandle),
	}
}

func newMemDir(perm uint32) *memEntry {
	now := uint32(time.Now().Unix())
	return &memEntry{
		perms:    perm&0o7777 | sshfx.ModeDir,
		atime:    now,
		mtime:    now,
		children: make(map[string]*memEntry),
	}
}

func newMemFile(perm uint32) *memEntry {
	now := uint32(time.Now().Unix())
	return &memEntry{
		perms: perm & 0o7777,
		atime: now,
		mtime: now,
	}
}

// Put creates or replaces a file at name with the given contents,
// creating parent directories as needed. It is a host-side seeding
// helper, not part of the wire protocol.
func (fs *MemFS) Put(name string, data []byte, perm uint32) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	dir, base, err := fs.makeParents(name)
	if err != nil {
		return err
	}

	f := newMemFile(perm)
	f.data = append([]byte(nil), data...)
	dir.children[base] = f
	return nil
}

// PutDir creates a directory at name, creating parents as needed.
func (fs *MemFS) PutDir(name string, perm uint32) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	dir, base, err := fs.makeParents(name)
	if err != nil {
		return err
	}

	if existing, ok := dir.children[base]; ok {
		if !existing.isDir() {
			return sshfx.StatusFailure
		}
		return nil
	}

	dir.children[base] = newMemDir(perm)
	return nil
}

func (fs *MemFS) makeParents(name string) (dir *memEntry, base string, err error) {
	name = cleanPath(name)
	if name == "/" {
		return nil, "", sshfx.StatusFailure
	}

	dir = fs.root
	parts := splitPath(name)
	for _, part := range parts[:len(parts)-1] {
		next, ok := dir.children[part]
		if !ok {
			next = newMemDir(memDefaultDirPerm)
			dir.children[part] = next
		}
		if !next.isDir() {
			return nil, "", sshfx.StatusFailure
		}
		dir = next
	}

	return dir, parts[len(parts)-1], nil
}

func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if p[0] != '/' {
		p = "/" + p
	}
	return path.Clean(p)
}

func splitPath(p string) []string {
	var parts []string
	for _, part := range strings.Split(p, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// lookup resolves name to an entry, following intermediate symlinks, and
// the terminal symlink too when followLast is set. It also returns the
// parent directory and the base name so callers can mutate the tree.
func (fs *MemFS) lookup(name string, followLast bool) (entry, parent *memEntry, base string, err error) {
	return fs.lookupHops(name, followLast, maxLinkHops)
}

func (fs *MemFS) lookupHops(name string, followLast bool, hops int) (entry, parent *memEntry, base string, err error) {
	if hops <= 0 {
		return nil, nil, "", sshfx.StatusFailure
	}

	name = cleanPath(name)
	if name == "/" {
		return fs.root, nil, "", nil
	}

	dir := fs.root
	parts := splitPath(name)
	for i, part := range parts {
		next, ok := dir.children[part]
		if !ok {
			return nil, nil, "", sshfx.StatusNoSuchFile
		}

		last := i == len(parts)-1

		if next.isLink() && (!last || followLast) {
			target := next.target
			if target == "" || target[0] != '/' {
				target = path.Join("/", strings.Join(parts[:i], "/"), target)
			}
			rest := strings.Join(parts[i+1:], "/")
			return fs.lookupHops(path.Join(target, rest), followLast, hops-1)
		}

		if last {
			return next, dir, part, nil
		}

		if !next.isDir() {
			return nil, nil, "", sshfx.StatusNoSuchFile
		}
		dir = next
	}

	return nil, nil, "", sshfx.StatusNoSuchFile
}

func (fs *MemFS) handle(h string) (*memHandle, error) {
	mh, ok := fs.handles[h]
	if !ok {
		return nil, sshfx.StatusFailure
	}
	return mh, nil
}

func entryAttrs(e *memEntry) sshfx.Attributes {
	var attrs sshfx.Attributes

	size := uint64(len(e.data))
	if e.isLink() {
		size = uint64(len(e.target))
	}

	attrs.SetSize(size)
	attrs.SetUIDGID(e.uid, e.gid)
	attrs.SetPermissions(e.perms)
	attrs.SetACModTime(e.atime, e.mtime)

	return attrs
}

// applyAttrs applies a SETSTAT/FSETSTAT attribute block to an entry.
func applyAttrs(e *memEntry, attrs *sshfx.Attributes) {
	if attrs.HasSize() && !e.isDir() {
		size := int(attrs.Size)
		switch {
		case size < len(e.data):
			e.data = e.data[:size]
		case size > len(e.data):
			e.data = append(e.data, make([]byte, size-len(e.data))...)
		}
	}

	if attrs.HasUIDGID() {
		e.uid, e.gid = attrs.UID, attrs.GID
	}

	if attrs.HasPermissions() {
		e.perms = e.perms&^uint32(0o7777) | attrs.Permissions&0o7777
	}

	if attrs.HasACModTime() {
		e.atime, e.mtime = attrs.ATime, attrs.MTime
	}
}

// Open opens or creates a file per the pflags semantics: EXCL and TRUNC
// require CREAT, EXCL refuses an existing path, and opening without CREAT
// requires the path to exist.
func (fs *MemFS) Open(_ context.Context, req *sshfx.OpenPacket) (*sshfx.HandlePacket, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	flags := req.PFlags

	if !flags.Read() && !flags.Write() {
		return nil, sshfx.StatusFailure
	}

	if (flags.Exclusive() || flags.Truncate()) && !flags.Create() {
		return nil, sshfx.StatusFailure
	}

	name := cleanPath(req.Filename)

	entry, _, _, err := fs.lookup(name, true)
	switch {
	case err == nil:
		if flags.Exclusive() {
			return nil, sshfx.StatusFailure
		}
		if entry.isDir() {
			return nil, sshfx.StatusFailure
		}
		if flags.Truncate() {
			entry.data = nil
			entry.mtime = uint32(time.Now().Unix())
		}

	case err == sshfx.StatusNoSuchFile && flags.Create():
		dir, base, perr := fs.makeParents(name)
		if perr != nil {
			return nil, perr
		}

		perm := uint32(memDefaultFilePerm)
		if req.Attrs.HasPermissions() {
			perm = req.Attrs.Permissions
		}

		entry = newMemFile(perm)
		dir.children[base] = entry

	default:
		return nil, err
	}

	h := uuid.New().String()
	fs.handles[h] = &memHandle{
		entry:  entry,
		path:   name,
		read:   flags.Read(),
		write:  flags.Write(),
		append: flags.Append(),
	}

	return &sshfx.HandlePacket{RequestID: req.RequestID, Handle: h}, nil
}

// Close releases an open file or directory handle.
func (fs *MemFS) Close(_ context.Context, req *sshfx.ClosePacket) (*sshfx.StatusPacket, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if _, err := fs.handle(req.Handle); err != nil {
		return nil, err
	}

	delete(fs.handles, req.Handle)
	return sshfx.NewStatus(req.RequestID, sshfx.StatusOK), nil
}

// Read returns up to req.Len bytes from the given offset, and
// SSH_FX_EOF once the offset is at or past the end of the file.
func (fs *MemFS) Read(_ context.Context, req *sshfx.ReadPacket) (*sshfx.DataPacket, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	h, err := fs.handle(req.Handle)
	if err != nil {
		return nil, err
	}

	if h.dir || !h.read {
		return nil, sshfx.StatusPermissionDenied
	}

	if req.Offset >= uint64(len(h.entry.data)) {
		return nil, sshfx.StatusEOF
	}

	data := h.entry.data[req.Offset:]
	if uint64(len(data)) > uint64(req.Len) {
		data = data[:req.Len]
	}

	return &sshfx.DataPacket{
		RequestID: req.RequestID,
		Data:      append([]byte(nil), data...),
	}, nil
}

// Write stores data at the given offset, zero-filling any gap; with
// SSH_FXF_APPEND the offset is ignored and data lands at the end.
func (fs *MemFS) Write(_ context.Context, req *sshfx.WritePacket) (*sshfx.StatusPacket, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	h, err := fs.handle(req.Handle)
	if err != nil {
		return nil, err
	}

	if h.dir || !h.write {
		return nil, sshfx.StatusPermissionDenied
	}

	offset := req.Offset
	if h.append {
		offset = uint64(len(h.entry.data))
	}

	if grow := offset + uint64(len(req.Data)); grow > uint64(len(h.entry.data)) {
		h.entry.data = append(h.entry.data, make([]byte, grow-uint64(len(h.entry.data)))...)
	}

	copy(h.entry.data[offset:], req.Data)
	h.entry.mtime = uint32(time.Now().Unix())

	return sshfx.NewStatus(req.RequestID, sshfx.StatusOK), nil
}

// LStat stats a path without following a terminal symlink.
func (fs *MemFS) LStat(_ context.Context, req *sshfx.LStatPacket) (*sshfx.AttrsPacket, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	entry, _, _, err := fs.lookup(req.Path, false)
	if err != nil {
		return nil, err
	}

	return &sshfx.AttrsPacket{RequestID: req.RequestID, Attrs: entryAttrs(entry)}, nil
}

// FStat stats an open handle.
func (fs *MemFS) FStat(_ context.Context, req *sshfx.FStatPacket) (*sshfx.AttrsPacket, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	h, err := fs.handle(req.Handle)
	if err != nil {
		return nil, err
	}

	return &sshfx.AttrsPacket{RequestID: req.RequestID, Attrs: entryAttrs(h.entry)}, nil
}

// SetStat applies attributes to a path, following symlinks.
func (fs *MemFS) SetStat(_ context.Context, req *sshfx.SetStatPacket) (*sshfx.StatusPacket, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	entry, _, _, err := fs.lookup(req.Path, true)
	if err != nil {
		return nil, err
	}

	applyAttrs(entry, &req.Attrs)
	return sshfx.NewStatus(req.RequestID, sshfx.StatusOK), nil
}

// FSetStat applies attributes to an open handle.
func (fs *MemFS) FSetStat(_ context.Context, req *sshfx.FSetStatPacket) (*sshfx.StatusPacket, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	h, err := fs.handle(req.Handle)
	if err != nil {
		return nil, err
	}

	applyAttrs(h.entry, &req.Attrs)
	return sshfx.NewStatus(req.RequestID, sshfx.StatusOK), nil
}

// OpenDir opens a directory for listing.
func (fs *MemFS) OpenDir(_ context.Context, req *sshfx.OpenDirPacket) (*sshfx.HandlePacket, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	entry, _, _, err := fs.lookup(req.Path, true)
	if err != nil {
		return nil, err
	}

	if !entry.isDir() {
		return nil, sshfx.StatusFailure
	}

	h := uuid.New().String()
	fs.handles[h] = &memHandle{
		entry: entry,
		path:  cleanPath(req.Path),
		dir:   true,
	}

	return &sshfx.HandlePacket{RequestID: req.RequestID, Handle: h}, nil
}

// ReadDir returns the whole directory in a single batch, then signals
// end-of-directory with SSH_FX_EOF on the next call.
func (fs *MemFS) ReadDir(_ context.Context, req *sshfx.ReadDirPacket) (*sshfx.NamePacket, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	h, err := fs.handle(req.Handle)
	if err != nil {
		return nil, err
	}

	if !h.dir {
		return nil, sshfx.StatusFailure
	}

	if h.eof {
		return nil, sshfx.StatusEOF
	}
	h.eof = true

	names := make([]string, 0, len(h.entry.children))
	for name := range h.entry.children {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]*sshfx.NameEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, &sshfx.NameEntry{
			Filename: name,
			Attrs:    entryAttrs(h.entry.children[name]),
		})
	}

	return &sshfx.NamePacket{RequestID: req.RequestID, Entries: entries}, nil
}

// Remove deletes a file or symlink; directories are refused.
func (fs *MemFS) Remove(_ context.Context, req *sshfx.RemovePacket) (*sshfx.StatusPacket, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	entry, parent, base, err := fs.lookup(req.Filename, false)
	if err != nil {
		return nil, err
	}

	if parent == nil || entry.isDir() {
		return nil, sshfx.StatusFailure
	}

	delete(parent.children, base)
	return sshfx.NewStatus(req.RequestID, sshfx.StatusOK), nil
}

// Mkdir creates a directory; an existing path is refused.
func (fs *MemFS) Mkdir(_ context.Context, req *sshfx.MkdirPacket) (*sshfx.StatusPacket, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	name := cleanPath(req.Path)

	if _, _, _, err := fs.lookup(name, false); err == nil {
		return nil, sshfx.StatusFailure
	}

	dir, base, err := fs.makeParents(name)
	if err != nil {
		return nil, err
	}

	perm := uint32(memDefaultDirPerm)
	if req.Attrs.HasPermissions() {
		perm = req.Attrs.Permissions
	}

	dir.children[base] = newMemDir(perm)
	return sshfx.NewStatus(req.RequestID, sshfx.StatusOK), nil
}

// Rmdir removes an empty directory.
func (fs *MemFS) Rmdir(_ context.Context, req *sshfx.RmdirPacket) (*sshfx.StatusPacket, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	entry, parent, base, err := fs.lookup(req.Path, false)
	if err != nil {
		return nil, err
	}

	if parent == nil || !entry.isDir() || len(entry.children) > 0 {
		return nil, sshfx.StatusFailure
	}

	delete(parent.children, base)
	return sshfx.NewStatus(req.RequestID, sshfx.StatusOK), nil
}

// RealPath resolves a path to its canonical absolute form. The reply
// contains exactly one entry, with the entry's attributes when the path
// exists and a dummy attribute block otherwise.
func (fs *MemFS) RealPath(_ context.Context, req *sshfx.RealPathPacket) (*sshfx.NamePacket, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	name := cleanPath(req.Path)

	entry := &sshfx.NameEntry{
		Filename: name,
		Longname: name,
	}
	if e, _, _, err := fs.lookup(name, true); err == nil {
		entry.Attrs = entryAttrs(e)
		entry.Longname = ""
	}

	return &sshfx.NamePacket{
		RequestID: req.RequestID,
		Entries:   []*sshfx.NameEntry{entry},
	}, nil
}

// Stat stats a path, following symlinks.
func (fs *MemFS) Stat(_ context.Context, req *sshfx.StatPacket) (*sshfx.AttrsPacket, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	entry, _, _, err := fs.lookup(req.Path, true)
	if err != nil {
		return nil, err
	}

	return &sshfx.AttrsPacket{RequestID: req.RequestID, Attrs: entryAttrs(entry)}, nil
}

// Rename moves a file or directory; an existing destination is refused.
func (fs *MemFS) Rename(_ context.Context, req *sshfx.RenamePacket) (*sshfx.StatusPacket, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	entry, parent, base, err := fs.lookup(req.OldPath, false)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, sshfx.StatusFailure
	}

	newName := cleanPath(req.NewPath)
	if _, _, _, err := fs.lookup(newName, false); err == nil {
		return nil, sshfx.StatusFailure
	}

	dir, newBase, err := fs.makeParents(newName)
	if err != nil {
		return nil, err
	}

	delete(parent.children, base)
	dir.children[newBase] = entry
	return sshfx.NewStatus(req.RequestID, sshfx.StatusOK), nil
}

// ReadLink returns the target of a symlink as a single name entry.
func (fs *MemFS) ReadLink(_ context.Context, req *sshfx.ReadLinkPacket) (*sshfx.NamePacket, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	entry, _, _, err := fs.lookup(req.Path, false)
	if err != nil {
		return nil, err
	}

	if !entry.isLink() {
		return nil, sshfx.StatusFailure
	}

	return &sshfx.NamePacket{
		RequestID: req.RequestID,
		Entries: []*sshfx.NameEntry{{
			Filename: entry.target,
			Longname: entry.target,
		}},
	}, nil
}

// Symlink creates a symlink at linkpath pointing at targetpath. The
// target need not exist.
func (fs *MemFS) Symlink(_ context.Context, req *sshfx.SymlinkPacket) (*sshfx.StatusPacket, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	name := cleanPath(req.LinkPath)

	if _, _, _, err := fs.lookup(name, false); err == nil {
		return nil, sshfx.StatusFailure
	}

	dir, base, err := fs.makeParents(name)
	if err != nil {
		return nil, err
	}

	now := uint32(time.Now().Unix())
	dir.children[base] = &memEntry{
		perms:  modeSymlink | 0o777,
		atime:  now,
		mtime:  now,
		target: req.TargetPath,
	}

	return sshfx.NewStatus(req.RequestID, sshfx.StatusOK), nil
}
