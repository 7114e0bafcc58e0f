package tlsmaterial

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"io/ioutil"
	"math/big"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// selfSignedPEM generates a fresh ECDSA key and self-signed certificate,
// PEM-encoded, for use as test fixtures.
func selfSignedPEM(t *testing.T) (certPEM, keyPEM []byte) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "eppclient-test"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	keyDER, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)

	certPEM = pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyPEM = pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})
	return certPEM, keyPEM
}

func Test_GetCertificate_Inline(t *testing.T) {
	certPEM, _ := selfSignedPEM(t)
	cfg := &Config{Certificate: string(certPEM)}

	got, err := cfg.GetCertificate()
	require.NoError(t, err)
	require.Equal(t, bytes.TrimSpace(certPEM), got)
}

func Test_GetCertificate_FromFile(t *testing.T) {
	certPEM, _ := selfSignedPEM(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "client.pem")
	require.NoError(t, ioutil.WriteFile(path, certPEM, 0600))

	cfg := &Config{CertificateFile: "client.pem", ConfigurationDir: dir}
	got, err := cfg.GetCertificate()
	require.NoError(t, err)
	require.Equal(t, certPEM, got)
}

func Test_GetCertificate_Unset(t *testing.T) {
	cfg := &Config{}
	got, err := cfg.GetCertificate()
	require.NoError(t, err)
	require.Nil(t, got)
}

func Test_GetX509KeyPair_PlaintextKey(t *testing.T) {
	certPEM, keyPEM := selfSignedPEM(t)
	cfg := &Config{Certificate: string(certPEM), PrivateKey: string(keyPEM)}

	pair, err := cfg.GetX509KeyPair()
	require.NoError(t, err)
	require.NotNil(t, pair)
}

func Test_GetPrivateKeyPassword_FromLiteral(t *testing.T) {
	password := "hunter2"
	cfg := &Config{PrivateKeyPassword: &password}

	got, err := cfg.GetPrivateKeyPassword()
	require.NoError(t, err)
	require.Equal(t, []byte("hunter2"), got)
}

func Test_GetPrivateKeyPassword_FromProgram(t *testing.T) {
	cfg := &Config{PrivateKeyPasswordProgram: "echo -n hunter2"}

	got, err := cfg.GetPrivateKeyPassword()
	require.NoError(t, err)
	require.Equal(t, []byte("hunter2"), got)
}

func Test_GetPrivateKeyPassword_Unconfigured(t *testing.T) {
	cfg := &Config{}
	_, err := cfg.GetPrivateKeyPassword()
	require.Error(t, err)
}

func Test_GetTLSConfig_InsecureSkipVerify(t *testing.T) {
	cfg := &Config{InsecureSkipVerify: true}
	tlsConfig, err := cfg.GetTLSConfig()
	require.NoError(t, err)
	require.True(t, tlsConfig.InsecureSkipVerify)
}

func Test_GetTLSConfig_LoadsCAPool(t *testing.T) {
	certPEM, _ := selfSignedPEM(t)
	cfg := &Config{CaCertificate: string(certPEM)}

	tlsConfig, err := cfg.GetTLSConfig()
	require.NoError(t, err)
	require.NotNil(t, tlsConfig.RootCAs)
}

func Test_FindFile_ResolvesRelativeToConfigurationDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "ca.pem"), []byte("x"), 0600))

	cfg := &Config{ConfigurationDir: dir}
	require.Equal(t, filepath.Join(dir, "ca.pem"), cfg.findFile("ca.pem"))
}

func Test_FindFile_AbsolutePathPassesThrough(t *testing.T) {
	cfg := &Config{ConfigurationDir: "/some/other/dir"}
	require.Equal(t, "/abs/path.pem", cfg.findFile("/abs/path.pem"))
}
