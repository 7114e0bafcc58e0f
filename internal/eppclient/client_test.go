package eppclient

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/bokysan/eppclient/internal/epp/schema"
	"github.com/stretchr/testify/require"
)

// selfSignedTLSConfig builds a loopback-only server certificate so tests
// don't depend on any fixture on disk.
func selfSignedTLSConfig(t *testing.T) *tls.Config {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "127.0.0.1"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		IPAddresses:  []net.IP{net.ParseIP("127.0.0.1")},
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	cert := tls.Certificate{
		Certificate: [][]byte{der},
		PrivateKey:  key,
	}
	return &tls.Config{Certificates: []tls.Certificate{cert}}
}

// startFakeRegistry spins up a loopback TLS listener that accepts exactly
// one connection and hands it to handle, returning the address to dial.
func startFakeRegistry(t *testing.T, handle func(net.Conn)) string {
	t.Helper()

	ln, err := tls.Listen("tcp", "127.0.0.1:0", selfSignedTLSConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		handle(conn)
	}()

	return ln.Addr().String()
}

const testGreeting = `<?xml version="1.0" encoding="UTF-8"?>
<epp xmlns="` + schema.XMLNSEpp + `">
  <greeting>
    <svID>Fake Registry</svID>
    <svDate>2026-01-01T00:00:00.0Z</svDate>
    <svcMenu>
      <version>1.0</version>
      <lang>en</lang>
      <objURI>` + schema.XMLNSDomain + `</objURI>
    </svcMenu>
  </greeting>
</epp>`

func responseFrame(code int, msg, clTRID, svTRID string) []byte {
	return []byte(`<?xml version="1.0" encoding="UTF-8"?>
<epp xmlns="` + schema.XMLNSEpp + `">
  <response>
    <result code="` + strconv.Itoa(code) + `">
      <msg>` + msg + `</msg>
    </result>
    <trID>
      <clTRID>` + clTRID + `</clTRID>
      <svTRID>` + svTRID + `</svTRID>
    </trID>
  </response>
</epp>`)
}

func dial(t *testing.T, addr string) *Client {
	t.Helper()
	tlsConfig := &tls.Config{InsecureSkipVerify: true}
	client, err := Connect(context.Background(), addr, "127.0.0.1", tlsConfig, 5*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func Test_Connect_ReadsGreeting(t *testing.T) {
	addr := startFakeRegistry(t, func(conn net.Conn) {
		defer conn.Close()
		writeFrame(conn, []byte(testGreeting))
	})

	client := dial(t, addr)
	greeting := client.Greeting()
	require.NotNil(t, greeting)
	require.Equal(t, "Fake Registry", greeting.ServiceID)
}

func Test_Transact_Success(t *testing.T) {
	addr := startFakeRegistry(t, func(conn net.Conn) {
		defer conn.Close()
		writeFrame(conn, []byte(testGreeting))
		readFrame(conn)
		writeFrame(conn, responseFrame(1000, "Command completed successfully", "client-trid-1", "SRV-1"))
	})

	client := dial(t, addr)
	resp, err := client.Transact(context.Background(), schema.NewDomainCheck("example.com"), nil, "client-trid-1")
	require.NoError(t, err)
	require.True(t, resp.Success())
}

func Test_Transact_ClTRIDMismatch_PoisonsConnection(t *testing.T) {
	addr := startFakeRegistry(t, func(conn net.Conn) {
		defer conn.Close()
		writeFrame(conn, []byte(testGreeting))
		readFrame(conn)
		writeFrame(conn, responseFrame(1000, "Command completed successfully", "wrong-trid", "SRV-1"))
	})

	client := dial(t, addr)
	_, err := client.Transact(context.Background(), schema.NewDomainCheck("example.com"), nil, "client-trid-1")
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, KindProtocolDesync, kind)

	_, err = client.Transact(context.Background(), schema.NewDomainCheck("example.com"), nil, "client-trid-2")
	kind, ok = KindOf(err)
	require.True(t, ok)
	require.Equal(t, KindConnectionPoisoned, kind)
}

func Test_Transact_CommandFailed_DoesNotPoisonConnection(t *testing.T) {
	addr := startFakeRegistry(t, func(conn net.Conn) {
		defer conn.Close()
		writeFrame(conn, []byte(testGreeting))
		readFrame(conn)
		writeFrame(conn, responseFrame(2201, "Authorization error", "client-trid-1", "SRV-1"))
		readFrame(conn)
		writeFrame(conn, responseFrame(1000, "Command completed successfully", "client-trid-2", "SRV-2"))
	})

	client := dial(t, addr)
	_, err := client.Transact(context.Background(), schema.NewDomainCheck("example.com"), nil, "client-trid-1")
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, KindCommandFailed, kind)

	resp, err := client.Transact(context.Background(), schema.NewDomainCheck("example.com"), nil, "client-trid-2")
	require.NoError(t, err)
	require.True(t, resp.Success())
}

func Test_Transact_EmptyClTRID_RejectedWithoutRoundTrip(t *testing.T) {
	addr := startFakeRegistry(t, func(conn net.Conn) {
		defer conn.Close()
		writeFrame(conn, []byte(testGreeting))
	})

	client := dial(t, addr)
	_, err := client.Transact(context.Background(), schema.NewDomainCheck("example.com"), nil, "")
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, KindProtocolDesync, kind)
}

func Test_Transact_BadLengthPrefix_ClassifiesAsProtocolFraming(t *testing.T) {
	addr := startFakeRegistry(t, func(conn net.Conn) {
		defer conn.Close()
		writeFrame(conn, []byte(testGreeting))
		readFrame(conn)
		// A length prefix of 3 cannot even cover the 4-byte header itself.
		_, _ = conn.Write([]byte{0x00, 0x00, 0x00, 0x03})
	})

	client := dial(t, addr)
	_, err := client.Transact(context.Background(), schema.NewDomainCheck("example.com"), nil, "client-trid-1")
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, KindProtocolFraming, kind)

	_, err = client.Transact(context.Background(), schema.NewDomainCheck("example.com"), nil, "client-trid-2")
	kind, ok = KindOf(err)
	require.True(t, ok)
	require.Equal(t, KindConnectionPoisoned, kind)
}

func writeFrame(conn net.Conn, payload []byte) {
	header := make([]byte, 4)
	total := uint32(len(payload) + 4)
	header[0] = byte(total >> 24)
	header[1] = byte(total >> 16)
	header[2] = byte(total >> 8)
	header[3] = byte(total)
	_, _ = conn.Write(header)
	_, _ = conn.Write(payload)
}

func readFrame(conn net.Conn) []byte {
	header := make([]byte, 4)
	if _, err := readFull(conn, header); err != nil {
		return nil
	}
	total := uint32(header[0])<<24 | uint32(header[1])<<16 | uint32(header[2])<<8 | uint32(header[3])
	payload := make([]byte, total-4)
	_, _ = readFull(conn, payload)
	return payload
}

func readFull(conn net.Conn, buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		m, err := conn.Read(buf[n:])
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
