// Package registryconfig loads the on-disk TOML file mapping registry names
// to their connection details: host/port, credentials, service extension
// overrides and TLS material. It is a thin collaborator, not part of the
// transaction engine; eppclient never reads files itself.
package registryconfig

import (
	"net"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/bokysan/eppclient/internal/tlsmaterial"
	"github.com/pkg/errors"
)

// Connection is one registry's connection details, as found under
// [registry.<name>] in the config file.
type Connection struct {
	Host     string              `toml:"host"`
	Port     int                 `toml:"port"`
	Username string              `toml:"username"`
	Password string              `toml:"password"`
	ExtURIs  []string            `toml:"ext_uris"`
	TLS      tlsmaterial.Config  `toml:"tls"`
}

// Addr returns the "host:port" dial address for this registry.
func (c Connection) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Config is the top-level shape of a registry config file: a name to
// connection-details mapping, mirroring a registrar's multi-registry setup.
type Config struct {
	Registry map[string]Connection `toml:"registry"`
}

// Load parses the TOML file at path. Relative certificate/key paths inside
// each registry's [tls] block are resolved against the directory the config
// file itself lives in.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrapf(err, "could not parse registry config %s", path)
	}

	dir := filepath.Dir(path)
	for name, conn := range cfg.Registry {
		conn.TLS.ConfigurationDir = dir
		cfg.Registry[name] = conn
	}

	return &cfg, nil
}

// Lookup returns the named registry's connection details.
func (c *Config) Lookup(name string) (Connection, error) {
	conn, ok := c.Registry[name]
	if !ok {
		return Connection{}, errors.Errorf("no registry named %q in configuration", name)
	}
	return conn, nil
}
