package framer

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_WriteFrame_ReadFrame_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	f := New(&buf)

	payload := []byte(`<epp xmlns="urn:ietf:params:xml:ns:epp-1.0"><hello/></epp>`)
	require.NoError(t, f.WriteFrame(payload))

	got, err := f.ReadFrame()
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func Test_WriteFrame_PrefixesFourByteBigEndianLength(t *testing.T) {
	var buf bytes.Buffer
	f := New(&buf)

	payload := []byte("abc")
	require.NoError(t, f.WriteFrame(payload))

	header := buf.Bytes()[:4]
	require.Equal(t, []byte{0, 0, 0, 7}, header)
}

func Test_ReadFrame_MultipleFrames(t *testing.T) {
	var buf bytes.Buffer
	f := New(&buf)

	require.NoError(t, f.WriteFrame([]byte("first")))
	require.NoError(t, f.WriteFrame([]byte("second")))

	got, err := f.ReadFrame()
	require.NoError(t, err)
	require.Equal(t, []byte("first"), got)

	got, err = f.ReadFrame()
	require.NoError(t, err)
	require.Equal(t, []byte("second"), got)
}

func Test_ReadFrame_EOFOnEmptyStream(t *testing.T) {
	var buf bytes.Buffer
	f := New(&buf)

	_, err := f.ReadFrame()
	require.Equal(t, io.EOF, err)
}

func Test_ReadFrame_ErrorsOnTruncatedFrame(t *testing.T) {
	var buf bytes.Buffer
	f := New(&buf)
	require.NoError(t, f.WriteFrame([]byte("hello world")))

	truncated := bytes.NewReader(buf.Bytes()[:6])
	f2 := New(truncatedReadWriter{truncated})

	_, err := f2.ReadFrame()
	require.Error(t, err)
}

func Test_ReadFrame_RejectsOversizedFrame(t *testing.T) {
	header := []byte{0xff, 0xff, 0xff, 0xff}
	f := New(bytes.NewBuffer(header))

	_, err := f.ReadFrame()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrFraming)
}

func Test_ReadFrame_RejectsPrefixWithNoRoomForPayload(t *testing.T) {
	// 0x00000004 covers only the header itself, leaving no payload byte, so
	// it must be rejected rather than accepted as a legal empty frame.
	header := []byte{0x00, 0x00, 0x00, 0x04}
	f := New(bytes.NewBuffer(header))

	_, err := f.ReadFrame()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrFraming)
}

func Test_ReadFrame_RejectsPrefixSmallerThanHeader(t *testing.T) {
	header := []byte{0x00, 0x00, 0x00, 0x03}
	f := New(bytes.NewBuffer(header))

	_, err := f.ReadFrame()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrFraming)
}

func Test_NewWithLimit_EnforcesCustomMax(t *testing.T) {
	payload := []byte("0123456789")
	var buf bytes.Buffer
	buf.Write([]byte{0x00, 0x00, 0x00, 0x0e})
	buf.Write(payload)

	f := NewWithLimit(&buf, 8)
	_, err := f.ReadFrame()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrFraming)
}

type truncatedReadWriter struct {
	r io.Reader
}

func (t truncatedReadWriter) Read(p []byte) (int, error)  { return t.r.Read(p) }
func (t truncatedReadWriter) Write(p []byte) (int, error) { return len(p), nil }
