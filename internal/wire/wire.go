// Package wire encodes and decodes the TNFS frame header and the
// little-endian primitive fields carried in request and response payloads.
//
// Every multi-byte integer on the wire is little-endian regardless of host
// byte order, and strings are NUL-terminated with no length prefix. This
// package only ever touches a caller-owned buffer at an explicit offset; it
// never allocates the buffer itself, matching the session's single
// scratch-region ownership model.
package wire

import (
	"encoding/binary"
	"errors"
)

// HeaderSize is the fixed 4-byte request/response header: session id (u16),
// request id (u8), command/opcode (u8).
const HeaderSize = 4

// ErrShortBuffer is returned when a decode would read past the end of buf.
var ErrShortBuffer = errors.New("wire: buffer too short")

// ErrNoNUL is returned when a NUL-terminated string has no terminator
// before the end of buf.
var ErrNoNUL = errors.New("wire: unterminated string")

// PutHeader writes the 4-byte request header at buf[0:4].
func PutHeader(buf []byte, sessionID uint16, requestID, opcode uint8) {
	PutUint16LE(buf, 0, sessionID)
	buf[2] = requestID
	buf[3] = opcode
}

// PutUint16LE writes v little-endian at buf[off:off+2].
func PutUint16LE(buf []byte, off int, v uint16) {
	binary.LittleEndian.PutUint16(buf[off:], v)
}

// PutUint32LE writes v little-endian at buf[off:off+4].
func PutUint32LE(buf []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(buf[off:], v)
}

// PutCString writes s followed by a NUL terminator at buf[off:], returning
// the offset just past the terminator.
func PutCString(buf []byte, off int, s string) int {
	n := copy(buf[off:], s)
	buf[off+n] = 0
	return off + n + 1
}

// Uint16LE reads a little-endian u16 at buf[off:off+2].
func Uint16LE(buf []byte, off int) (uint16, error) {
	if off+2 > len(buf) {
		return 0, ErrShortBuffer
	}
	return binary.LittleEndian.Uint16(buf[off:]), nil
}

// Uint32LE reads a little-endian u32 at buf[off:off+4].
func Uint32LE(buf []byte, off int) (uint32, error) {
	if off+4 > len(buf) {
		return 0, ErrShortBuffer
	}
	return binary.LittleEndian.Uint32(buf[off:]), nil
}

// CString reads a NUL-terminated string starting at buf[off:], returning the
// string (without the terminator) and the offset just past the terminator.
func CString(buf []byte, off int) (string, int, error) {
	for i := off; i < len(buf); i++ {
		if buf[i] == 0 {
			return string(buf[off:i]), i + 1, nil
		}
	}
	return "", off, ErrNoNUL
}
