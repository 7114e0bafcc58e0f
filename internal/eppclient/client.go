// Package eppclient implements the typed transaction engine on top of
// internal/transport and internal/epp/schema: it owns one connection's
// lifecycle (connect, greeting, login state, poisoning on fatal error,
// close) and the single generic transact path every command goes through.
package eppclient

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"os"
	"sync"
	"time"

	"github.com/bokysan/eppclient/internal/epp/schema"
	"github.com/bokysan/eppclient/internal/transport"
	"github.com/bokysan/eppclient/internal/transport/framer"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultTimeout bounds every individual I/O operation when the caller does
// not specify one at Connect time.
const DefaultTimeout = 60 * time.Second

// Client is a single-owner, single-in-flight-transaction connection to one
// EPP registry. It is not safe for concurrent use from multiple goroutines;
// callers that need concurrency open multiple Clients.
type Client struct {
	mu       sync.Mutex
	conn     *transport.Connection
	greeting *schema.Greeting
	timeout  time.Duration
	poisoned error
}

// Connect dials addr, performs the TLS handshake against sniHost and reads
// the server's unsolicited greeting. timeout bounds every subsequent I/O
// operation on the returned Client; pass 0 to use DefaultTimeout.
func Connect(ctx context.Context, addr string, sniHost string, tlsConfig *tls.Config, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if tlsConfig == nil {
		tlsConfig = &tls.Config{}
	}
	cfg := tlsConfig.Clone()
	cfg.ServerName = sniHost

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := transport.Dial(dialCtx, addr, cfg)
	if err != nil {
		return nil, classifyDial(err)
	}

	c := &Client{conn: conn, timeout: timeout}

	greetCtx, cancelGreet := context.WithTimeout(ctx, timeout)
	defer cancelGreet()

	greeting, err := c.readGreeting(greetCtx)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	c.greeting = greeting
	log.Infof("connected to %v (svID=%v)", addr, greeting.ServiceID)
	return c, nil
}

// Greeting returns the greeting captured at connect time, or the most
// recent one solicited via Hello.
func (c *Client) Greeting() *schema.Greeting {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.greeting
}

// Hello solicits a fresh greeting without otherwise affecting session
// state.
func (c *Client) Hello(ctx context.Context) (*schema.Greeting, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkPoisoned(); err != nil {
		return nil, err
	}

	deadlineCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.conn.WriteFrame(deadlineCtx, schema.MarshalHello()); err != nil {
		return nil, c.poison(classifyIO(err))
	}
	greeting, err := c.readGreetingLocked(deadlineCtx)
	if err != nil {
		return nil, err
	}
	c.greeting = greeting
	return greeting, nil
}

func (c *Client) readGreeting(ctx context.Context) (*schema.Greeting, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readGreetingLocked(ctx)
}

func (c *Client) readGreetingLocked(ctx context.Context) (*schema.Greeting, error) {
	frame, err := c.conn.ReadFrame(ctx)
	if err != nil {
		return nil, c.poison(classifyIO(err))
	}
	greeting, response, err := schema.DecodeFrame(frame)
	if err != nil {
		return nil, c.poison(newError(KindProtocolDesync, err))
	}
	if greeting == nil || response != nil {
		return nil, c.poison(newError(KindProtocolDesync, errors.New("expected a greeting frame")))
	}
	return greeting, nil
}

// Transact sends body (and, if non-nil, ext) wrapped in a <command>
// envelope tagged with clTRID, and decodes the resulting <response>. When
// the registry rejects the command (first result code not in 1000-1999) it returns
// the response together with a *Error of Kind KindCommandFailed and leaves
// the connection usable; an xml-decode failure leaves it usable too. Every
// other failure met while talking to the server poisons the connection. A
// clTRID that is empty or longer than 64 characters is rejected with
// KindProtocolDesync before anything is sent, without poisoning.
func (c *Client) Transact(ctx context.Context, body schema.CommandBody, ext schema.ExtensionBody, clTRID string) (*schema.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkPoisoned(); err != nil {
		return nil, err
	}
	if clTRID == "" || len(clTRID) > 64 {
		return nil, newError(KindProtocolDesync, errors.Errorf("clTRID must be 1-64 characters, got %d", len(clTRID)))
	}

	env := &schema.Envelope{Command: body, Extension: ext, ClTRID: clTRID}
	payload, err := env.Marshal()
	if err != nil {
		return nil, newError(KindXMLDecode, err)
	}

	deadlineCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.conn.WriteFrame(deadlineCtx, payload); err != nil {
		return nil, c.poison(classifyIO(err))
	}

	frame, err := c.conn.ReadFrame(deadlineCtx)
	if err != nil {
		return nil, c.poison(classifyIO(err))
	}

	_, response, err := schema.DecodeFrame(frame)
	if err != nil {
		return nil, c.poison(newError(KindXMLDecode, err))
	}
	if response == nil {
		return nil, c.poison(newError(KindProtocolDesync, errors.New("expected a response frame")))
	}

	if response.TrID.ClientTRID != clTRID {
		return nil, c.poison(newError(KindProtocolDesync, errors.Errorf("clTRID mismatch: sent %q, got %q", clTRID, response.TrID.ClientTRID)))
	}

	first, ok := response.FirstResult()
	if !ok {
		return nil, c.poison(newError(KindProtocolDesync, errors.New("response carried no result")))
	}
	if !first.Success() {
		return response, newCommandFailed(first.Code, first.Message)
	}

	return response, nil
}

// Close closes the underlying connection. It is safe to call on an already
// poisoned client.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.Close()
}

func (c *Client) checkPoisoned() error {
	if c.poisoned != nil {
		return newError(KindConnectionPoisoned, c.poisoned)
	}
	return nil
}

// poison records err as the reason the connection became unusable, if it
// is a fatal kind, and always returns err for the caller to return onward.
func (c *Client) poison(err *Error) *Error {
	if err.Fatal() && c.poisoned == nil {
		c.poisoned = err
		log.Warnf("connection poisoned: %v", err)
	}
	return err
}

func classifyIO(err error) *Error {
	var existing *Error
	if errors.As(err, &existing) {
		return existing
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return newError(KindTimeout, err)
	}
	if errors.Is(err, framer.ErrFraming) {
		return newError(KindProtocolFraming, err)
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return newError(KindTransportEOF, err)
	}
	return newError(KindTransportIO, err)
}

func classifyDial(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return newError(KindTimeout, err)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return newError(KindTransportIO, err)
	}
	return newError(KindTLS, err)
}
