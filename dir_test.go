package tnfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fbeen/tnfs-client/internal/transporttest"
	"github.com/Fbeen/tnfs-client/internal/wire"
)

func TestOpenDirReadDirClose(t *testing.T) {
	readDirReply := make([]byte, 5)
	readDirReply[4] = StatusOK
	readDirReply = append(readDirReply, []byte("file.txt")...)
	readDirReply = append(readDirReply, 0)

	mock := transporttest.NewMock(
		transporttest.Step{Data: okReply(0, 0, StatusOK, 4)}, // opendir -> handle 4
		transporttest.Step{Data: readDirReply},
		transporttest.Step{Data: okReply(0, 0, StatusOK)}, // closedir
	)
	c := newTestClient(t, mock)

	d, err := c.OpenDir("/")
	require.NoError(t, err)
	assert.True(t, c.openDirs[4])

	name, err := d.ReadDir()
	require.NoError(t, err)
	assert.Equal(t, "file.txt", name)

	require.NoError(t, d.Close())
	assert.False(t, c.openDirs[4])
}

func TestMkdirAndRmdir(t *testing.T) {
	mock := transporttest.NewMock(
		transporttest.Step{Data: okReply(0, 0, StatusOK)},
		transporttest.Step{Data: okReply(0, 0, StatusOK)},
	)
	c := newTestClient(t, mock)

	require.NoError(t, c.Mkdir("/newdir"))
	require.NoError(t, c.Rmdir("/newdir"))

	assert.Equal(t, opMkdir, mock.Sent[0][3])
	assert.Equal(t, opRmdir, mock.Sent[1][3])
}

func TestTellDirAndSeekDir(t *testing.T) {
	tellReply := okReply(0, 0, StatusOK, 0, 0, 0, 0)
	wire.PutUint32LE(tellReply, 5, 17)

	mock := transporttest.NewMock(
		transporttest.Step{Data: tellReply},
		transporttest.Step{Data: okReply(0, 0, StatusOK)},
	)
	c := newTestClient(t, mock)
	d := &Dir{c: c, handle: 1}

	pos, err := d.TellDir()
	require.NoError(t, err)
	assert.Equal(t, uint32(17), pos)

	require.NoError(t, d.SeekDir(17))
	got, err := wire.Uint32LE(mock.Sent[1], 5)
	require.NoError(t, err)
	assert.Equal(t, uint32(17), got)
}
