package tnfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fbeen/tnfs-client/internal/transporttest"
)

func TestSizeAndFreeDecodeKilobytes(t *testing.T) {
	mock := transporttest.NewMock(
		transporttest.Step{Data: okReply(0, 0, StatusOK, 0x00, 0x10, 0, 0)}, // 4096 KB
		transporttest.Step{Data: okReply(0, 0, StatusOK, 0x00, 0x08, 0, 0)}, // 2048 KB
	)
	c := newTestClient(t, mock)

	total, err := c.Size()
	require.NoError(t, err)
	assert.Equal(t, uint32(4096), total)

	free, err := c.Free()
	require.NoError(t, err)
	assert.Equal(t, uint32(2048), free)
}
