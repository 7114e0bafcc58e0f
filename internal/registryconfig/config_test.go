package registryconfig

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[registry.verisign-ote]
host = "epp.verisign-grs.com"
port = 700
username = "testuser"
password = "testpass"
ext_uris = ["urn:ietf:params:xml:ns:rgp-1.0"]

[registry.verisign-ote.tls]
certificate_file = "client.pem"
private_key_file = "client.key"
`

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "registries.toml")
	require.NoError(t, ioutil.WriteFile(path, []byte(contents), 0600))
	return path
}

func Test_Load_ParsesRegistryConnection(t *testing.T) {
	path := writeTempConfig(t, sampleConfig)

	cfg, err := Load(path)
	require.NoError(t, err)

	conn, err := cfg.Lookup("verisign-ote")
	require.NoError(t, err)
	require.Equal(t, "epp.verisign-grs.com", conn.Host)
	require.Equal(t, 700, conn.Port)
	require.Equal(t, "epp.verisign-grs.com:700", conn.Addr())
	require.Equal(t, []string{"urn:ietf:params:xml:ns:rgp-1.0"}, conn.ExtURIs)
	require.Equal(t, filepath.Dir(path), conn.TLS.ConfigurationDir)
}

func Test_Lookup_UnknownRegistry(t *testing.T) {
	path := writeTempConfig(t, sampleConfig)
	cfg, err := Load(path)
	require.NoError(t, err)

	_, err = cfg.Lookup("does-not-exist")
	require.Error(t, err)
}

func Test_Load_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(os.TempDir(), "does-not-exist.toml"))
	require.Error(t, err)
}
