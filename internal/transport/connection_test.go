package transport

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/bokysan/eppclient/internal/transport/framer"
	"github.com/stretchr/testify/require"
)

func pipeConnections(t *testing.T) (*Connection, *Connection) {
	t.Helper()
	client, server := net.Pipe()
	t.Cleanup(func() { _ = client.Close(); _ = server.Close() })
	return &Connection{conn: client, framer: framer.New(client)},
		&Connection{conn: server, framer: framer.New(server)}
}

func Test_Connection_WriteFrame_ReadFrame_RoundTrip(t *testing.T) {
	client, server := pipeConnections(t)

	payload := []byte(`<epp xmlns="urn:ietf:params:xml:ns:epp-1.0"><hello/></epp>`)
	go func() {
		require.NoError(t, client.WriteFrame(context.Background(), payload))
	}()

	got, err := server.ReadFrame(context.Background())
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func Test_Connection_ReadFrame_HonorsContextDeadline(t *testing.T) {
	_, server := pipeConnections(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := server.ReadFrame(ctx)
	require.Error(t, err)
}

func Test_Connection_ReadFrame_RejectsAlreadyCanceledContext(t *testing.T) {
	_, server := pipeConnections(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := server.ReadFrame(ctx)
	require.Error(t, err)
}

func Test_Connection_RemoteAddr(t *testing.T) {
	client, _ := pipeConnections(t)
	require.Equal(t, "pipe", client.RemoteAddr().Network())
}
