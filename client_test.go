package tnfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fbeen/tnfs-client/internal/logger"
	"github.com/Fbeen/tnfs-client/internal/metrics"
	"github.com/Fbeen/tnfs-client/internal/transporttest"
	"github.com/Fbeen/tnfs-client/internal/wire"
)

func newTestClient(t *testing.T, mock *transporttest.Mock, opts ...ClientOption) *Client {
	t.Helper()
	cfg := defaultConfig()
	cfg.logger = logger.Noop{}
	cfg.metrics = metrics.New("tnfs_client_test")
	for _, opt := range opts {
		opt(&cfg)
	}
	require.NoError(t, cfg.validate())
	return &Client{
		cfg:       cfg,
		transport: mock,
		buf:       make([]byte, cfg.bufferSize),
		openFiles: make(map[uint8]bool),
		openDirs:  make(map[uint8]bool),
	}
}

func okReply(sessionID uint16, requestID, status byte, payload ...byte) []byte {
	buf := make([]byte, 5+len(payload))
	wire.PutUint16LE(buf, 0, sessionID)
	buf[2] = requestID
	buf[3] = 0
	buf[4] = status
	copy(buf[5:], payload)
	return buf
}

func TestPrepareCommandWritesHeaderAndAdvancesRequestID(t *testing.T) {
	mock := transporttest.NewMock()
	c := newTestClient(t, mock)
	c.sessionID = 0x1234

	c.prepareCommand(opMount)

	gotSession, err := wire.Uint16LE(c.buf, 0)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), gotSession)
	assert.Equal(t, byte(0), c.buf[2])
	assert.Equal(t, opMount, c.buf[3])
	assert.Equal(t, uint8(1), c.requestID)
}

func TestSendReceiveSucceedsFirstTry(t *testing.T) {
	mock := transporttest.NewMock(transporttest.Step{Data: okReply(0, 0, StatusOK)})
	c := newTestClient(t, mock)

	c.prepareCommand(opUmount)
	n, err := c.sendReceive(wire.HeaderSize)

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Len(t, mock.Sent, 1)
}

func TestSendReceiveRetriesOnTimeoutThenSucceeds(t *testing.T) {
	mock := transporttest.NewMock(
		transporttest.Step{Timeout: true},
		transporttest.Step{Timeout: true},
		transporttest.Step{Data: okReply(0, 0, StatusOK)},
	)
	c := newTestClient(t, mock)

	c.prepareCommand(opUmount)
	_, err := c.sendReceive(wire.HeaderSize)

	require.NoError(t, err)
	assert.Len(t, mock.Sent, 3)
	for _, frame := range mock.Sent {
		assert.Equal(t, mock.Sent[0], frame, "retransmits must reuse the same request id/opcode frame")
	}
}

func TestSendReceiveExhaustsRetriesReturnsErrProtocol(t *testing.T) {
	mock := transporttest.NewMock()
	c := newTestClient(t, mock, WithMaxRetries(3))

	c.prepareCommand(opUmount)
	_, err := c.sendReceive(wire.HeaderSize)

	assert.ErrorIs(t, err, ErrProtocol)
	assert.Len(t, mock.Sent, 3)
	assert.Equal(t, StatusEPROTO, c.buf[4])
}

func TestSendReceiveServerErrorStatus(t *testing.T) {
	mock := transporttest.NewMock(transporttest.Step{Data: okReply(0, 0, StatusENOENT)})
	c := newTestClient(t, mock)

	c.prepareCommand(opStat)
	_, err := c.sendReceive(wire.HeaderSize)

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, StatusENOENT, serverErr.Code)
}

func TestSendReceiveTreatsEOFStatusAsSuccess(t *testing.T) {
	mock := transporttest.NewMock(transporttest.Step{Data: okReply(0, 0, StatusEOF)})
	c := newTestClient(t, mock)

	c.prepareCommand(opReaddirx)
	_, err := c.sendReceive(wire.HeaderSize)

	assert.NoError(t, err)
}

func TestReplyValidationRejectsMismatchedSession(t *testing.T) {
	mock := transporttest.NewMock(
		transporttest.Step{Data: okReply(0xBEEF, 0, StatusOK)},
		transporttest.Step{Data: okReply(0x1234, 0, StatusOK)},
	)
	c := newTestClient(t, mock, WithReplyValidation())
	c.sessionID = 0x1234

	c.prepareCommand(opUmount)
	_, err := c.sendReceive(wire.HeaderSize)

	require.NoError(t, err)
	assert.Len(t, mock.Sent, 2, "mismatched session id should be treated as if no reply arrived")
}

func TestReplyValidationRejectsMismatchedRequestID(t *testing.T) {
	mock := transporttest.NewMock(
		transporttest.Step{Data: okReply(0, 9, StatusOK)},
		transporttest.Step{Data: okReply(0, 1, StatusOK)},
	)
	c := newTestClient(t, mock, WithReplyValidation())
	c.requestID = 1

	c.prepareCommand(opUmount)
	_, err := c.sendReceive(wire.HeaderSize)

	require.NoError(t, err)
	assert.Len(t, mock.Sent, 2, "mismatched request id should be treated as if no reply arrived")
}

func TestCloseTearsDownOpenHandlesAndSession(t *testing.T) {
	mock := transporttest.NewMock(
		transporttest.Step{Data: okReply(0, 0, StatusOK)}, // closeFile
		transporttest.Step{Data: okReply(0, 0, StatusOK)}, // closeDirHandle
		transporttest.Step{Data: okReply(0, 0, StatusOK)}, // Umount
	)
	c := newTestClient(t, mock)
	c.sessionID = 0x42
	c.openFiles[1] = true
	c.openDirs[2] = true

	err := c.Close()

	require.NoError(t, err)
	assert.Len(t, mock.Sent, 3)
	assert.True(t, mock.Closed)
	assert.Empty(t, c.openFiles)
	assert.Empty(t, c.openDirs)
}
