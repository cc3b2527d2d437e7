package tnfs

// Opcodes, per spec.md §4.E.
const (
	opMount    uint8 = 0x00
	opUmount   uint8 = 0x01
	opOpendir  uint8 = 0x10
	opReaddir  uint8 = 0x11
	opClosedir uint8 = 0x12
	opMkdir    uint8 = 0x13
	opRmdir    uint8 = 0x14
	opTelldir  uint8 = 0x15
	opSeekdir  uint8 = 0x16
	opOpendirx uint8 = 0x17
	opReaddirx uint8 = 0x18
	opRead     uint8 = 0x21
	opWrite    uint8 = 0x22
	opClose    uint8 = 0x23
	opStat     uint8 = 0x24
	opLseek    uint8 = 0x25
	opUnlink   uint8 = 0x26
	opChmod    uint8 = 0x27
	opRename   uint8 = 0x28
	opOpen     uint8 = 0x29
	opSize     uint8 = 0x30
	opFree     uint8 = 0x31
)

var opcodeNames = map[uint8]string{
	opMount:    "MOUNT",
	opUmount:   "UMOUNT",
	opOpendir:  "OPENDIR",
	opReaddir:  "READDIR",
	opClosedir: "CLOSEDIR",
	opMkdir:    "MKDIR",
	opRmdir:    "RMDIR",
	opTelldir:  "TELLDIR",
	opSeekdir:  "SEEKDIR",
	opOpendirx: "OPENDIRX",
	opReaddirx: "READDIRX",
	opRead:     "READ",
	opWrite:    "WRITE",
	opClose:    "CLOSE",
	opStat:     "STAT",
	opLseek:    "LSEEK",
	opUnlink:   "UNLINK",
	opChmod:    "CHMOD",
	opRename:   "RENAME",
	opOpen:     "OPEN",
	opSize:     "SIZE",
	opFree:     "FREE",
}

// Open flags for Open, OR-able, per spec.md §4.E.
const (
	ORDONLY uint16 = 0x0001
	OWRONLY uint16 = 0x0002
	ORDWR   uint16 = 0x0003
	OAPPEND uint16 = 0x0008
	OCREAT  uint16 = 0x0100
	OTRUNC  uint16 = 0x0200
	OEXCL   uint16 = 0x0400
)

// Seek whence values for Lseek.
const (
	SeekSet uint8 = 0
	SeekCur uint8 = 1
	SeekEnd uint8 = 2
)

// Directory entry flag bits.
const (
	DirEntryDir     uint8 = 0x01
	DirEntryHidden  uint8 = 0x02
	DirEntrySpecial uint8 = 0x04
)

// OPENDIRX directory option bits.
const (
	DirOptNoFoldersFirst uint8 = 0x01
	DirOptNoSkipHidden   uint8 = 0x02
	DirOptNoSkipSpecial  uint8 = 0x04
	DirOptDirPattern     uint8 = 0x08
)

// OPENDIRX sort option bits.
const (
	DirSortNone       uint8 = 0x01
	DirSortCase       uint8 = 0x02
	DirSortDescending uint8 = 0x04
	DirSortModified   uint8 = 0x08
	DirSortSize       uint8 = 0x10
)

// dirStatusEOF is bit 0x01 of the READDIRX directory-status byte.
const dirStatusEOF uint8 = 0x01
