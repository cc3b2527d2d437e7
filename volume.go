package tnfs

import "github.com/Fbeen/tnfs-client/internal/wire"

// Size returns the total size, in kilobytes, of the mounted volume.
func (c *Client) Size() (uint32, error) {
	c.prepareCommand(opSize)
	if _, err := c.sendReceive(wire.HeaderSize); err != nil {
		return 0, err
	}
	return wire.Uint32LE(c.buf, 5)
}

// Free returns the free space, in kilobytes, on the mounted volume.
func (c *Client) Free() (uint32, error) {
	c.prepareCommand(opFree)
	if _, err := c.sendReceive(wire.HeaderSize); err != nil {
		return 0, err
	}
	return wire.Uint32LE(c.buf, 5)
}
