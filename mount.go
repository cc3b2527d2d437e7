package tnfs

import (
	"time"

	"github.com/Fbeen/tnfs-client/internal/wire"
)

// Mount establishes a new session against dir on the server, authenticating
// with username/password (either may be empty). On success the Client
// adopts the server-assigned session id and, per spec.md §4.C and §9,
// the server's suggested minimum retry time — bounded to a 100ms floor to
// guard against a pathological server suggesting an unreasonably small
// value.
func (c *Client) Mount(dir, username, password string) error {
	c.prepareCommand(opMount)
	off := wire.HeaderSize
	off += copy(c.buf[off:], protocolVersion[:])
	off = wire.PutCString(c.buf, off, dir)
	off = wire.PutCString(c.buf, off, username)
	off = wire.PutCString(c.buf, off, password)

	if _, err := c.sendReceive(off); err != nil {
		return err
	}

	sessionID, _ := wire.Uint16LE(c.buf, 0)
	c.sessionID = sessionID

	retryMS, err := wire.Uint16LE(c.buf, 7)
	if err == nil {
		d := time.Duration(retryMS) * time.Millisecond
		if d < minAdoptedTimeout {
			d = minAdoptedTimeout
		}
		c.SetTimeout(d)
	}
	c.cfg.logger.Infof("tnfs: mounted %q, session=0x%04X, timeout=%v", dir, c.sessionID, c.cfg.timeout)
	return nil
}

// Umount ends the session. The Client's session id is not reset: per
// spec.md §3, once non-zero it stays fixed until teardown, and no further
// commands should be issued on this Client afterward.
func (c *Client) Umount() error {
	c.prepareCommand(opUmount)
	_, err := c.sendReceive(wire.HeaderSize)
	return err
}
