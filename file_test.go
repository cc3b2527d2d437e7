package tnfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fbeen/tnfs-client/internal/transporttest"
	"github.com/Fbeen/tnfs-client/internal/wire"
)

func TestOpenRegistersHandleAndReadWritesRoundtrip(t *testing.T) {
	payload := []byte("hello")
	readReply := make([]byte, 7+len(payload))
	readReply[4] = StatusOK
	wire.PutUint16LE(readReply, 5, uint16(len(payload)))
	copy(readReply[7:], payload)

	writeReply := okReply(0, 0, StatusOK, 5, 0) // 5 bytes written, LE

	mock := transporttest.NewMock(
		transporttest.Step{Data: okReply(0, 0, StatusOK, 3)}, // open -> handle 3
		transporttest.Step{Data: readReply},
		transporttest.Step{Data: writeReply},
		transporttest.Step{Data: okReply(0, 0, StatusOK)}, // close
	)
	c := newTestClient(t, mock)

	f, err := c.Open("/a.txt", ORDWR, 0)
	require.NoError(t, err)
	assert.True(t, c.openFiles[3])

	buf := make([]byte, 16)
	n, err := f.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(buf[:n]))

	n, err = f.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	require.NoError(t, f.Close())
	assert.False(t, c.openFiles[3])
}

func TestLseekEncodesWhenceAndOffset(t *testing.T) {
	mock := transporttest.NewMock(transporttest.Step{Data: okReply(0, 0, StatusOK)})
	c := newTestClient(t, mock)
	f := &File{c: c, handle: 7}

	require.NoError(t, f.Lseek(SeekEnd, 42))

	sent := mock.Sent[0]
	assert.Equal(t, uint8(7), sent[4])
	assert.Equal(t, SeekEnd, sent[5])
	got, err := wire.Uint32LE(sent, 6)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), got)
}

func TestUnlinkChmodRename(t *testing.T) {
	mock := transporttest.NewMock(
		transporttest.Step{Data: okReply(0, 0, StatusOK)},
		transporttest.Step{Data: okReply(0, 0, StatusOK)},
		transporttest.Step{Data: okReply(0, 0, StatusOK)},
	)
	c := newTestClient(t, mock)

	require.NoError(t, c.Unlink("/a.txt"))
	require.NoError(t, c.Chmod("/a.txt", 0644))
	require.NoError(t, c.Rename("/a.txt", "/b.txt"))

	assert.Equal(t, opUnlink, mock.Sent[0][3])
	assert.Equal(t, opChmod, mock.Sent[1][3])
	assert.Equal(t, opRename, mock.Sent[2][3])
}
