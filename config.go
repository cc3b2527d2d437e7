package tnfs

import (
	"fmt"
	"time"

	"github.com/Fbeen/tnfs-client/internal/logger"
	"github.com/Fbeen/tnfs-client/internal/metrics"
)

// Default protocol parameters, per spec.md §6.
const (
	DefaultPort               = 16384
	DefaultTimeout            = 1000 * time.Millisecond
	DefaultMaxRetries         = 5
	DefaultBufferSize         = 16384
	DefaultMaxPathLen         = 256
	DefaultMaxResultsPerBatch = 58
	minAdoptedTimeout         = 100 * time.Millisecond
)

// config holds everything a Client needs at construction time. It is built
// from functional options the same way the teacher's ClientConfig/
// ServerConfig pair is built from validated fields, but as an options
// pattern rather than a JSON-tagged settings struct, since there is no
// on-disk persistence requirement for a library (spec.md §6: "No persisted
// state").
type config struct {
	useTCP             bool
	timeout            time.Duration
	maxRetries         int
	bufferSize         int
	maxPathLen         int
	maxResultsPerBatch int
	validateReply      bool
	logger             logger.Logger
	metrics            *metrics.Collector
}

func defaultConfig() config {
	return config{
		timeout:            DefaultTimeout,
		maxRetries:         DefaultMaxRetries,
		bufferSize:         DefaultBufferSize,
		maxPathLen:         DefaultMaxPathLen,
		maxResultsPerBatch: DefaultMaxResultsPerBatch,
		logger:             logger.New(),
		metrics:            metrics.New("tnfs_client"),
	}
}

// validate enforces the product constraint spec.md §6 and §4.F require:
// a READDIRX batch of maxResultsPerBatch entries, each the 13-byte fixed
// record prefix plus a name of up to maxPathLen bytes including its NUL,
// plus a 10-byte allowance for the reply prefix (the 9 bytes of header,
// status, count, dirstatus and dirpos that precede the first record), must
// fit in bufferSize.
func (c config) validate() error {
	need := 10 + (13+c.maxPathLen)*c.maxResultsPerBatch
	if need > c.bufferSize {
		return fmt.Errorf(
			"tnfs: config: buffer_size %d too small for max_path_len %d and max_results_per_batch %d (need >= %d)",
			c.bufferSize, c.maxPathLen, c.maxResultsPerBatch, need)
	}
	if c.maxRetries < 1 {
		return fmt.Errorf("tnfs: config: max_retries must be >= 1, got %d", c.maxRetries)
	}
	if c.bufferSize < wireMinBufferSize {
		return fmt.Errorf("tnfs: config: buffer_size must be >= %d, got %d", wireMinBufferSize, c.bufferSize)
	}
	return nil
}

// wireMinBufferSize is the floor validate puts on buffer_size. It holds a
// MOUNT request with empty directory, user and password (4-byte header,
// 2-byte protocol version, three NULs: 9 bytes) and the 5-byte header and
// status of every reply.
const wireMinBufferSize = 16

// ClientOption configures a Client at construction time.
type ClientOption func(*config)

// WithTCP selects TCP transport instead of the UDP default. Both listen on
// the same port per spec.md §6.
func WithTCP() ClientOption { return func(c *config) { c.useTCP = true } }

// WithTimeout overrides the default 1000ms receive deadline.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *config) { c.timeout = d }
}

// WithMaxRetries overrides the default retry budget of 5.
func WithMaxRetries(n int) ClientOption {
	return func(c *config) { c.maxRetries = n }
}

// WithBufferSize overrides the default 16384-byte scratch buffer.
func WithBufferSize(n int) ClientOption {
	return func(c *config) { c.bufferSize = n }
}

// WithMaxPathLen overrides the default 256-byte maximum path length.
func WithMaxPathLen(n int) ClientOption {
	return func(c *config) { c.maxPathLen = n }
}

// WithMaxResultsPerBatch overrides the default READDIRX batch size of 58.
func WithMaxResultsPerBatch(n int) ClientOption {
	return func(c *config) { c.maxResultsPerBatch = n }
}

// WithReplyValidation enables the recommended-but-optional check from
// spec.md §4.D: treat an inbound session id or request id mismatch as a
// timeout (and thus retry) instead of trusting the server unconditionally.
func WithReplyValidation() ClientOption {
	return func(c *config) { c.validateReply = true }
}

// WithLogger plugs in a caller-supplied logger in place of the default
// logger.New(); logger.Noop{} logs nothing. The logger must not be nil.
func WithLogger(l logger.Logger) ClientOption {
	return func(c *config) { c.logger = l }
}

// WithMetrics plugs in a Prometheus collector the host application can
// register with its own registry. If never supplied, the Client still
// collects into a private, unregistered Collector.
func WithMetrics(m *metrics.Collector) ClientOption {
	return func(c *config) { c.metrics = m }
}
