package eppclient

import "github.com/pkg/errors"

// Kind classifies a Client error into one of the fixed error categories the
// transaction engine can produce, so callers can branch on what went wrong
// without parsing error strings.
type Kind string

const (
	// KindTransportEOF means the stream closed mid-frame.
	KindTransportEOF Kind = "transport-eof"
	// KindTransportIO means the underlying connection failed outside of a
	// clean EOF (a reset, a broken pipe, and so on).
	KindTransportIO Kind = "transport-io"
	// KindTimeout means an I/O deadline elapsed.
	KindTimeout Kind = "timeout"
	// KindTLS means the TLS handshake or certificate validation failed.
	KindTLS Kind = "tls"
	// KindProtocolFraming means the frame length prefix was invalid.
	KindProtocolFraming Kind = "protocol-framing"
	// KindProtocolDesync means the response's clTRID did not match the
	// request, or an unexpected document shape was received.
	KindProtocolDesync Kind = "protocol-desync"
	// KindXMLDecode means the response body could not be parsed into the
	// expected schema type.
	KindXMLDecode Kind = "xml-decode"
	// KindCommandFailed means the server returned a result code outside
	// 1000-1999 (in practice 2000 or above): the round trip succeeded but
	// the command was rejected.
	KindCommandFailed Kind = "command-failed"
	// KindConnectionPoisoned means a prior operation left the connection
	// unusable and the caller must reconnect.
	KindConnectionPoisoned Kind = "connection-poisoned"
)

// Error is the error type returned by every Client operation that fails.
// Fatal kinds (everything except xml-decode and command-failed) poison the
// connection when they arise from an exchange with the server: every
// subsequent Client method returns a KindConnectionPoisoned Error until the
// caller reconnects.
type Error struct {
	Kind    Kind
	Code    int    // populated for KindCommandFailed
	Reason  string // populated for KindCommandFailed
	cause   error
}

func (e *Error) Error() string {
	if e.Kind == KindCommandFailed {
		return errors.Errorf("%s: code=%d reason=%q", e.Kind, e.Code, e.Reason).Error()
	}
	if e.cause != nil {
		return errors.Wrap(e.cause, string(e.Kind)).Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Fatal reports whether this error kind poisons the connection.
func (e *Error) Fatal() bool {
	switch e.Kind {
	case KindXMLDecode, KindCommandFailed:
		return false
	default:
		return true
	}
}

func newError(kind Kind, cause error) *Error {
	return &Error{Kind: kind, cause: cause}
}

func newCommandFailed(code int, reason string) *Error {
	return &Error{Kind: KindCommandFailed, Code: code, Reason: reason}
}

// KindOf extracts the Kind from err if it is (or wraps) a *Error, and
// reports false otherwise.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
