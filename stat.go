package tnfs

import "github.com/Fbeen/tnfs-client/internal/wire"

// FileStat holds the metadata returned by Stat, per spec.md §4.E and
// original_source/tnfs.c's tnfs_stat layout: mode, uid, gid, size and three
// timestamps, followed by the uid/gid strings the server resolved them to.
type FileStat struct {
	Mode  uint16
	UID   uint16
	GID   uint16
	Size  uint32
	Atime uint32
	Mtime uint32
	Ctime uint32

	UIDName string
	GIDName string
}

// Stat retrieves metadata for filename.
func (c *Client) Stat(filename string) (FileStat, error) {
	c.prepareCommand(opStat)
	off := wire.PutCString(c.buf, wire.HeaderSize, filename)
	if _, err := c.sendReceive(off); err != nil {
		return FileStat{}, err
	}

	var st FileStat
	st.Mode, _ = wire.Uint16LE(c.buf, 5)
	st.UID, _ = wire.Uint16LE(c.buf, 7)
	st.GID, _ = wire.Uint16LE(c.buf, 9)
	st.Size, _ = wire.Uint32LE(c.buf, 11)
	st.Atime, _ = wire.Uint32LE(c.buf, 15)
	st.Mtime, _ = wire.Uint32LE(c.buf, 19)
	st.Ctime, _ = wire.Uint32LE(c.buf, 23)

	uidName, next, err := wire.CString(c.buf, 27)
	if err != nil {
		return st, err
	}
	gidName, _, err := wire.CString(c.buf, next)
	if err != nil {
		return st, err
	}
	st.UIDName = uidName
	st.GIDName = gidName
	return st, nil
}
