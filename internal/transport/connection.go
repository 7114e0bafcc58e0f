// Package transport owns the TCP+TLS connection to an EPP server and the
// length-prefixed frame exchange over it (RFC 5734). It knows nothing about
// EPP's XML schema; callers hand it opaque byte payloads.
package transport

import (
	"context"
	"crypto/tls"
	"net"
	"time"

	"github.com/bokysan/eppclient/internal/tlsmaterial"
	"github.com/bokysan/eppclient/internal/transport/framer"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultDialTimeout bounds how long the initial TCP+TLS handshake may take
// when the caller's context carries no deadline of its own.
const DefaultDialTimeout = 30 * time.Second

// Connection is one TLS-wrapped TCP connection to an EPP server, framed per
// RFC 5734. It is not safe for concurrent use: the protocol allows exactly
// one outstanding request at a time, and so does this type.
type Connection struct {
	conn   net.Conn
	framer *framer.Framer
}

// Dial opens a TLS connection to addr (host:port) and wraps it for framed
// I/O. It does not read the server's greeting; callers do that separately
// via ReadFrame, since the greeting is itself just the first frame.
func Dial(ctx context.Context, addr string, tlsConfig *tls.Config) (*Connection, error) {
	dialer := &net.Dialer{}
	if deadline, ok := ctx.Deadline(); ok {
		dialer.Deadline = deadline
	} else {
		dialer.Timeout = DefaultDialTimeout
	}

	log.Debugf("dialing EPP server at %v", addr)
	rawConn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, errors.Wrap(err, "could not establish TCP connection")
	}

	tlsConn := tls.Client(rawConn, tlsConfig)
	if deadline, ok := ctx.Deadline(); ok {
		_ = tlsConn.SetDeadline(deadline)
	}
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		_ = rawConn.Close()
		return nil, errors.Wrap(err, "TLS handshake failed")
	}
	_ = tlsConn.SetDeadline(time.Time{})

	tlsmaterial.LogPeerCertificate(tlsConn)

	return &Connection{
		conn:   tlsConn,
		framer: framer.New(tlsConn),
	}, nil
}

// WriteFrame sends payload as one length-prefixed frame, honoring ctx's
// deadline if it has one.
func (c *Connection) WriteFrame(ctx context.Context, payload []byte) error {
	if err := c.applyDeadline(ctx); err != nil {
		return err
	}
	if err := c.framer.WriteFrame(payload); err != nil {
		return errors.Wrap(err, "could not write frame")
	}
	return nil
}

// ReadFrame reads one length-prefixed frame, honoring ctx's deadline if it
// has one.
func (c *Connection) ReadFrame(ctx context.Context) ([]byte, error) {
	if err := c.applyDeadline(ctx); err != nil {
		return nil, err
	}
	payload, err := c.framer.ReadFrame()
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *Connection) applyDeadline(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "context already done")
	}
	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Time{}
	}
	return c.conn.SetDeadline(deadline)
}

// Close closes the underlying TLS connection. It is safe to call more than
// once.
func (c *Connection) Close() error {
	return c.conn.Close()
}

// RemoteAddr returns the registry's network address, for logging.
func (c *Connection) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}
