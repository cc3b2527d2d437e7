package tnfs

import "github.com/Fbeen/tnfs-client/internal/wire"

// File is an open file handle from Open. It implements io.Reader,
// io.Writer, io.Closer and a TNFS-flavored Seek, so callers can tie its
// lifetime to a scope (spec.md §5: "tie these to scoped acquisition").
type File struct {
	c      *Client
	handle uint8
}

// Open opens filename with the given flags (OR of O* constants) and mode,
// returning a File on success.
func (c *Client) Open(filename string, flags, mode uint16) (*File, error) {
	c.prepareCommand(opOpen)
	wire.PutUint16LE(c.buf, 4, flags)
	wire.PutUint16LE(c.buf, 6, mode)
	off := wire.PutCString(c.buf, 8, filename)
	if _, err := c.sendReceive(off); err != nil {
		return nil, err
	}
	handle := c.buf[5]
	c.openFiles[handle] = true
	return &File{c: c, handle: handle}, nil
}

// Read reads up to len(p) bytes (capped at 65535, the protocol's u16
// maxlen, and at what fits in the client buffer after the 7-byte reply
// prefix) from the file, returning the number of bytes actually read.
func (f *File) Read(p []byte) (int, error) {
	c := f.c
	maxlen := len(p)
	if maxlen > 0xFFFF {
		maxlen = 0xFFFF
	}
	if maxlen > len(c.buf)-7 {
		maxlen = len(c.buf) - 7
	}
	c.prepareCommand(opRead)
	c.buf[4] = f.handle
	wire.PutUint16LE(c.buf, 5, uint16(maxlen))
	if _, err := c.sendReceive(7); err != nil {
		return 0, err
	}
	actual, err := wire.Uint16LE(c.buf, 5)
	if err != nil {
		return 0, err
	}
	n := copy(p, c.buf[7:7+int(actual)])
	c.cfg.metrics.BytesRead.Add(float64(n))
	return n, nil
}

// Write writes p to the file (capped at 65535 bytes per call, the
// protocol's u16 length field, and at what fits in the client buffer after
// the 7-byte request prefix), returning the number of bytes the server
// reports as written.
func (f *File) Write(p []byte) (int, error) {
	c := f.c
	n := len(p)
	if n > 0xFFFF {
		n = 0xFFFF
	}
	if n > len(c.buf)-7 {
		n = len(c.buf) - 7
	}
	c.prepareCommand(opWrite)
	c.buf[4] = f.handle
	wire.PutUint16LE(c.buf, 5, uint16(n))
	copy(c.buf[7:7+n], p[:n])
	if _, err := c.sendReceive(7 + n); err != nil {
		return 0, err
	}
	written, err := wire.Uint16LE(c.buf, 5)
	if err != nil {
		return 0, err
	}
	c.cfg.metrics.BytesWritten.Add(float64(written))
	return int(written), nil
}

// Close closes the file handle on the server.
func (f *File) Close() error { return f.c.closeFile(f.handle) }

func (c *Client) closeFile(handle uint8) error {
	c.prepareCommand(opClose)
	c.buf[4] = handle
	_, err := c.sendReceive(5)
	delete(c.openFiles, handle)
	return err
}

// Lseek repositions the file according to whence (Seek* constants) and
// offset.
func (f *File) Lseek(whence uint8, offset uint32) error {
	c := f.c
	c.prepareCommand(opLseek)
	c.buf[4] = f.handle
	c.buf[5] = whence
	wire.PutUint32LE(c.buf, 6, offset)
	_, err := c.sendReceive(10)
	return err
}

// Unlink deletes a file.
func (c *Client) Unlink(filename string) error {
	c.prepareCommand(opUnlink)
	off := wire.PutCString(c.buf, wire.HeaderSize, filename)
	_, err := c.sendReceive(off)
	return err
}

// Chmod changes a file's permissions.
func (c *Client) Chmod(filename string, mode uint16) error {
	c.prepareCommand(opChmod)
	wire.PutUint16LE(c.buf, 4, mode)
	off := wire.PutCString(c.buf, 6, filename)
	_, err := c.sendReceive(off)
	return err
}

// Rename moves or renames a file within the mounted filesystem.
func (c *Client) Rename(source, destination string) error {
	c.prepareCommand(opRename)
	off := wire.PutCString(c.buf, wire.HeaderSize, source)
	off = wire.PutCString(c.buf, off, destination)
	_, err := c.sendReceive(off)
	return err
}
