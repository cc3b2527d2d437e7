package transport

import (
	"net"
	"time"
)

// datagramTransport sends and receives one UDP datagram per request, the
// way the original tnfs.c client does over its BSD socket.
type datagramTransport struct {
	conn    *net.UDPConn
	timeout time.Duration
}

func (t *datagramTransport) Send(b []byte) error {
	if _, err := t.conn.Write(b); err != nil {
		return &FatalError{Op: "send", Err: err}
	}
	return nil
}

func (t *datagramTransport) Recv(buf []byte) (int, error) {
	if err := t.conn.SetReadDeadline(time.Now().Add(t.timeout)); err != nil {
		return 0, &FatalError{Op: "set deadline", Err: err}
	}
	n, err := t.conn.Read(buf)
	if err != nil {
		return 0, classifyRecvErr(err)
	}
	return n, nil
}

func (t *datagramTransport) SetTimeout(d time.Duration) { t.timeout = d }

func (t *datagramTransport) Close() error { return t.conn.Close() }
