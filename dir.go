package tnfs

import "github.com/Fbeen/tnfs-client/internal/wire"

// Dir is an open directory handle from OpenDir. It implements io.Closer so
// callers can tie its lifetime to a scope (spec.md §5: "tie these to
// scoped acquisition").
type Dir struct {
	c      *Client
	handle uint8
}

// OpenDir opens path for sequential enumeration via ReadDir. For
// paginated, stat-carrying enumeration use OpenDirX instead.
func (c *Client) OpenDir(path string) (*Dir, error) {
	c.prepareCommand(opOpendir)
	off := wire.PutCString(c.buf, wire.HeaderSize, path)
	if _, err := c.sendReceive(off); err != nil {
		return nil, err
	}
	handle := c.buf[5]
	c.openDirs[handle] = true
	return &Dir{c: c, handle: handle}, nil
}

// ReadDir returns the next entry's name, or a *ServerError wrapping
// StatusENOENT-like codes the server uses to signal exhaustion (the legacy
// READDIR opcode has no dedicated EOF marker; OpenDirX/DirStream does).
func (d *Dir) ReadDir() (string, error) {
	c := d.c
	c.prepareCommand(opReaddir)
	c.buf[4] = d.handle
	if _, err := c.sendReceive(5); err != nil {
		return "", err
	}
	name, _, err := wire.CString(c.buf, 5)
	if err != nil {
		return "", err
	}
	return name, nil
}

// Close releases the directory handle.
func (d *Dir) Close() error { return d.c.closeDirHandle(d.handle) }

func (c *Client) closeDirHandle(handle uint8) error {
	c.prepareCommand(opClosedir)
	c.buf[4] = handle
	_, err := c.sendReceive(5)
	delete(c.openDirs, handle)
	return err
}

// Mkdir creates a new directory.
func (c *Client) Mkdir(path string) error {
	c.prepareCommand(opMkdir)
	off := wire.PutCString(c.buf, wire.HeaderSize, path)
	_, err := c.sendReceive(off)
	return err
}

// Rmdir removes an empty directory.
func (c *Client) Rmdir(path string) error {
	c.prepareCommand(opRmdir)
	off := wire.PutCString(c.buf, wire.HeaderSize, path)
	_, err := c.sendReceive(off)
	return err
}

// TellDir returns the current entry position within path's directory
// results, usable with SeekDir.
func (d *Dir) TellDir() (uint32, error) {
	c := d.c
	c.prepareCommand(opTelldir)
	c.buf[4] = d.handle
	if _, err := c.sendReceive(5); err != nil {
		return 0, err
	}
	return wire.Uint32LE(c.buf, 5)
}

// SeekDir moves the directory results position to position.
func (d *Dir) SeekDir(position uint32) error {
	c := d.c
	c.prepareCommand(opSeekdir)
	c.buf[4] = d.handle
	wire.PutUint32LE(c.buf, 5, position)
	_, err := c.sendReceive(9)
	return err
}
