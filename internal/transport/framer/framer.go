// Package framer implements the EPP wire framing defined in RFC 5734
// section 4: each message is prefixed by a 4-byte big-endian total length,
// the length field itself included, followed by the raw XML payload.
package framer

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// headerSize is the width of the length prefix in bytes.
const headerSize = 4

// DefaultMaxFrameSize bounds how large a single frame's declared payload may
// be before it is rejected outright, guarding against a corrupted or hostile
// length prefix causing an unbounded allocation. Callers that need a
// different limit can override it with NewWithLimit.
const DefaultMaxFrameSize = 1024 * 1024

// ErrFraming identifies a length prefix that violates the framing protocol
// itself (too small to leave room for a payload, or larger than the
// configured maximum), as distinct from an ordinary I/O failure. Callers can
// recognize it with errors.Is even though the wrapped message varies.
var ErrFraming = errors.New("epp: frame violates length-prefix framing")

// Framer reads and writes length-prefixed EPP frames over an underlying
// stream. It keeps no buffering state of its own beyond what io.Reader
// requires, so a desynchronized stream (a short read straddling a length
// prefix, for instance) cannot be recovered from mid-frame; callers treat
// any framing error as fatal to the connection, per the protocol's design.
type Framer struct {
	rw           io.ReadWriter
	maxFrameSize uint32
}

// New returns a Framer bounded by DefaultMaxFrameSize.
func New(rw io.ReadWriter) *Framer {
	return NewWithLimit(rw, DefaultMaxFrameSize)
}

// NewWithLimit returns a Framer that rejects any frame whose payload exceeds
// maxFrameSize bytes.
func NewWithLimit(rw io.ReadWriter, maxFrameSize uint32) *Framer {
	return &Framer{rw: rw, maxFrameSize: maxFrameSize}
}

// WriteFrame writes payload as one length-prefixed EPP frame.
func (f *Framer) WriteFrame(payload []byte) error {
	total := uint32(len(payload) + headerSize)
	header := make([]byte, headerSize)
	binary.BigEndian.PutUint32(header, total)

	if _, err := f.rw.Write(header); err != nil {
		return errors.Wrap(err, "could not write frame header")
	}
	if _, err := f.rw.Write(payload); err != nil {
		return errors.Wrap(err, "could not write frame payload")
	}
	return nil
}

// ReadFrame reads one length-prefixed EPP frame and returns its payload,
// with the length prefix stripped.
func (f *Framer) ReadFrame() ([]byte, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(f.rw, header); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, io.EOF
		}
		return nil, errors.Wrap(err, "could not read frame header")
	}

	total := binary.BigEndian.Uint32(header)
	if total <= headerSize {
		return nil, errors.Wrapf(ErrFraming, "frame length %d leaves no room for a payload", total)
	}
	payloadLen := total - headerSize
	if payloadLen > f.maxFrameSize {
		return nil, errors.Wrapf(ErrFraming, "frame length %d exceeds the maximum of %d", payloadLen, f.maxFrameSize)
	}

	payload := make([]byte, payloadLen)
	if _, err := io.ReadFull(f.rw, payload); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, errors.Wrap(io.ErrUnexpectedEOF, "connection closed mid-frame")
		}
		return nil, errors.Wrap(err, "could not read frame payload")
	}
	return payload, nil
}
