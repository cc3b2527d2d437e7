package tnfs

import "github.com/Fbeen/tnfs-client/internal/wire"

// DirEntry is one directory entry yielded by a DirStream, per spec.md §3.
// Name is copied out of the client's shared buffer at yield time (see
// SPEC_FULL.md's data-model note): borrowing it across the next Next call
// would be unsound once that call overwrites the buffer.
type DirEntry struct {
	Flags uint8
	Size  uint32
	Mtime uint32
	Ctime uint32
	Name  string
}

// IsDir reports whether the entry is a directory.
func (e DirEntry) IsDir() bool { return e.Flags&DirEntryDir != 0 }

// IsHidden reports whether the entry is hidden.
func (e DirEntry) IsHidden() bool { return e.Flags&DirEntryHidden != 0 }

// IsSpecial reports whether the entry is special.
func (e DirEntry) IsSpecial() bool { return e.Flags&DirEntrySpecial != 0 }

// DirStream is the pagination state machine over READDIRX described in
// spec.md §4.F. It borrows the Client's scratch buffer; only one DirStream
// per Client may be iterated at a time (the buffer is exclusive to the
// session, per spec.md §3).
type DirStream struct {
	c      *Client
	handle uint8

	total       uint16
	batchCount  uint8
	batchCursor uint8
	parseOffset int
	status      uint8
	batchDirPos uint16
}

// OpenDirX opens path for paginated, stat-carrying enumeration, optionally
// filtered by pattern. diropts and sortopts are the OPENDIRX option bits
// (DirOpt*/DirSort* constants); pass 0 for server defaults.
func (c *Client) OpenDirX(path, pattern string, diropts, sortopts uint8) (*DirStream, error) {
	c.prepareCommand(opOpendirx)
	c.buf[4] = diropts
	c.buf[5] = sortopts
	wire.PutUint16LE(c.buf, 6, 0) // max=0: request the total count
	off := wire.PutCString(c.buf, 8, pattern)
	off = wire.PutCString(c.buf, off, path)

	if _, err := c.sendReceive(off); err != nil {
		return nil, err
	}
	handle := c.buf[5]
	total, _ := wire.Uint16LE(c.buf, 6)
	c.openDirs[handle] = true
	return &DirStream{c: c, handle: handle, total: total}, nil
}

// Total returns the snapshot of matching entries taken when the stream was
// opened.
func (d *DirStream) Total() uint16 { return d.total }

// Next yields the next entry, or ErrEOF once the stream is exhausted. It
// implements the five-step algorithm in spec.md §4.F exactly: refill the
// batch via READDIRX when the cursor catches up to the batch count (unless
// the server has already signaled end-of-results), then parse one record
// out of the refilled buffer.
func (d *DirStream) Next() (DirEntry, error) {
	if d.batchCursor >= d.batchCount {
		if d.status&dirStatusEOF != 0 {
			return DirEntry{}, ErrEOF
		}
		if err := d.readdirx(); err != nil {
			return DirEntry{}, err
		}
		if d.batchCount == 0 {
			return DirEntry{}, ErrEOF
		}
	}

	buf := d.c.buf
	off := d.parseOffset
	flags := buf[off]
	size, _ := wire.Uint32LE(buf, off+1)
	mtime, _ := wire.Uint32LE(buf, off+5)
	ctime, _ := wire.Uint32LE(buf, off+9)
	name, nextOff, err := wire.CString(buf, off+13)
	if err != nil {
		return DirEntry{}, err
	}

	d.parseOffset = nextOff
	d.batchCursor++
	d.c.cfg.metrics.DirEntriesStreamed.Inc()

	return DirEntry{
		Flags: flags,
		Size:  size,
		Mtime: mtime,
		Ctime: ctime,
		Name:  name,
	}, nil
}

// readdirx issues one READDIRX request, requesting up to the configured
// max-results-per-batch entries, and resets the parse cursor to offset 9
// (past header + count + dirstatus + dirpos), per spec.md §4.F.
func (d *DirStream) readdirx() error {
	c := d.c
	c.prepareCommand(opReaddirx)
	c.buf[4] = d.handle
	c.buf[5] = byte(c.cfg.maxResultsPerBatch)

	if _, err := c.sendReceive(6); err != nil {
		return err
	}
	d.batchCount = c.buf[5]
	d.status = c.buf[6]
	dirpos, _ := wire.Uint16LE(c.buf, 7)
	d.batchDirPos = dirpos
	d.parseOffset = 9
	d.batchCursor = 0
	c.cfg.metrics.ReaddirxRoundtrips.Inc()
	return nil
}

// Close releases the directory handle.
func (d *DirStream) Close() error { return d.c.closeDirHandle(d.handle) }
