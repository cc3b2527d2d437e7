// Package tnfs is a client library for the TNFS (Trivial Network File
// System) protocol: request/response framing, session state, a
// retry/timeout loop, a typed command set, and a streaming
// directory-enumeration subsystem, for mounting a remote filesystem
// exported by a TNFS server.
//
// A Client owns exactly one session: one transport connection, one scratch
// buffer, one request id counter. It is not safe for concurrent use by
// multiple goroutines — there is no request pipelining, by design (see
// spec §5).
package tnfs

import (
	"time"

	"github.com/Fbeen/tnfs-client/internal/metrics"
	"github.com/Fbeen/tnfs-client/internal/transport"
	"github.com/Fbeen/tnfs-client/internal/wire"
)

// protocolVersion is announced verbatim in every MOUNT request, per
// spec.md §6: {0x02, 0x01} (minor, major), matching the C reference's
// TNFS_PROTOCOL_VERSION byte order exactly.
var protocolVersion = [2]byte{0x02, 0x01}

// Client owns one TNFS session: the connection, the shared send/receive
// buffer, the session id and request id counters. It replaces the C
// reference's process-wide globals (spec.md §9) so that multiple Clients
// can coexist in one process.
type Client struct {
	cfg       config
	transport transport.Transport

	buf       []byte
	sessionID uint16
	requestID uint8

	openFiles map[uint8]bool
	openDirs  map[uint8]bool
}

// NewClient connects to host:port and returns an unmounted Client. Call
// Mount before issuing any other command. A connect failure is always
// fatal, per spec.md §4.A.
func NewClient(host string, port int, opts ...ClientOption) (*Client, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	t, err := transport.Dial(host, port, cfg.useTCP, cfg.timeout)
	if err != nil {
		return nil, &TransportError{Op: "connect", Err: err}
	}

	c := &Client{
		cfg:       cfg,
		transport: t,
		buf:       make([]byte, cfg.bufferSize),
		openFiles: make(map[uint8]bool),
		openDirs:  make(map[uint8]bool),
	}
	c.cfg.logger.Infof("tnfs: connected to %s:%d (tcp=%v)", host, port, cfg.useTCP)
	return c, nil
}

// prepareCommand zero-fills the buffer and writes the 4-byte request
// header, advancing requestID for the *next* prepared command. It mirrors
// tnfs_prepareCommand in original_source/tnfs.c.
func (c *Client) prepareCommand(opcode uint8) {
	for i := range c.buf {
		c.buf[i] = 0
	}
	wire.PutHeader(c.buf, c.sessionID, c.requestID, opcode)
	c.requestID++
}

// sendReceive implements the send-then-wait-with-retries loop from
// spec.md §4.D. length is the number of bytes already composed into
// c.buf[0:length]. On success it returns the number of bytes received; the
// response header and status byte are valid in c.buf[0:5].
func (c *Client) sendReceive(length int) (int, error) {
	sentRequestID := c.buf[2]
	// Recv writes into c.buf, so keep the outbound frame aside: a retry after
	// a rejected reply must resend the original bytes, not the reply.
	frame := append([]byte(nil), c.buf[:length]...)
	var retries int
	for {
		if err := c.transport.Send(frame); err != nil {
			return 0, err
		}
		c.cfg.metrics.RequestsSent.Inc()

		n, err := c.transport.Recv(c.buf)
		if err == nil && n > 0 && c.replyLooksValid(n, sentRequestID) {
			return c.checkStatus(n)
		}
		if err != nil && err != transport.ErrTimeout {
			// Socket closed or otherwise broken: fatal, not retryable.
			return 0, &TransportError{Op: "recv", Err: err}
		}

		retries++
		c.cfg.metrics.Retries.Inc()
		if err == transport.ErrTimeout {
			c.cfg.metrics.Timeouts.Inc()
		}
		if retries >= c.cfg.maxRetries {
			c.buf[4] = StatusEPROTO
			c.cfg.metrics.ProtocolErrors.Inc()
			c.cfg.logger.Warnf("tnfs: opcode 0x%02X exhausted %d retries", c.buf[3], c.cfg.maxRetries)
			return 0, ErrProtocol
		}
		c.cfg.logger.Debugf("tnfs: retry %d/%d for opcode 0x%02X", retries, c.cfg.maxRetries, c.buf[3])
	}
}

// replyLooksValid applies the optional header-mismatch check spec.md §4.D
// recommends: if enabled and the inbound session id or request id don't
// match what was just sent, treat the reply as if it hadn't arrived yet
// (retry).
func (c *Client) replyLooksValid(n int, sentRequestID uint8) bool {
	if !c.cfg.validateReply || n < wire.HeaderSize {
		return n >= 5
	}
	gotSession, _ := wire.Uint16LE(c.buf, 0)
	// Mount replies legitimately carry a *new* session id the client has
	// not adopted yet, so the session-id check only applies once mounted.
	if c.sessionID != 0 && gotSession != c.sessionID {
		return false
	}
	if c.buf[2] != sentRequestID {
		return false
	}
	return n >= 5
}

// checkStatus inspects the status byte at c.buf[4], per spec.md §4.D:
// EOF (0x21) is not an error at this layer, any other non-OK status is.
func (c *Client) checkStatus(n int) (int, error) {
	status := c.buf[4]
	if status != StatusOK && status != StatusEOF {
		c.cfg.metrics.ServerErrors.WithLabelValues(opcodeLabel(c.buf[3])).Inc()
		return n, &ServerError{Code: status}
	}
	return n, nil
}

// SetTimeout changes the receive deadline used by subsequent commands.
func (c *Client) SetTimeout(d time.Duration) {
	c.cfg.timeout = d
	c.transport.SetTimeout(d)
}

// Timeout reports the currently configured receive deadline.
func (c *Client) Timeout() time.Duration { return c.cfg.timeout }

// Metrics returns the Prometheus collector this Client reports into,
// registering it with a host application's registry is the caller's
// responsibility (see WithMetrics).
func (c *Client) Metrics() *metrics.Collector { return c.cfg.metrics }

// Close releases every handle the Client still has open (best-effort,
// errors logged not returned, per spec.md §5), then unmounts and closes the
// transport.
func (c *Client) Close() error {
	for h := range c.openFiles {
		if err := c.closeFile(h); err != nil {
			c.cfg.logger.Warnf("tnfs: close handle %d on teardown: %v", h, err)
		}
	}
	for h := range c.openDirs {
		if err := c.closeDirHandle(h); err != nil {
			c.cfg.logger.Warnf("tnfs: closedir handle %d on teardown: %v", h, err)
		}
	}
	if c.sessionID != 0 {
		if err := c.Umount(); err != nil {
			c.cfg.logger.Warnf("tnfs: umount on teardown: %v", err)
		}
	}
	return c.transport.Close()
}

func opcodeLabel(op byte) string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return "unknown"
}
