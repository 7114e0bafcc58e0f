// Package tlsmaterial loads client certificates, private keys and CA bundles
// for the mutual-TLS connection RFC 5734 requires, supporting both
// plaintext and encrypted (PKCS8 or legacy PEM) private keys.
package tlsmaterial

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/youmark/pkcs8"
)

// Config names the certificate, key and CA material for one registry
// connection, either inline (as PEM text) or as a path to a PEM file.
// ConfigurationDir anchors relative file paths the way a registry config
// file's own location does.
type Config struct {
	CaCertificate             string  `toml:"ca_certificate"`
	CaCertificateFile         string  `toml:"ca_certificate_file"`
	Certificate               string  `toml:"certificate"`
	CertificateFile           string  `toml:"certificate_file"`
	PrivateKey                string  `toml:"private_key"`
	PrivateKeyFile            string  `toml:"private_key_file"`
	PrivateKeyPassword        *string `toml:"private_key_password"`
	PrivateKeyPasswordProgram string  `toml:"private_key_password_program"`
	InsecureSkipVerify        bool    `toml:"insecure_skip_verify"`

	ConfigurationDir string `toml:"-"`
}

func (m *Config) GetCertificate() ([]byte, error) {
	if m.CertificateFile != "" {
		certPemBlock, err := ioutil.ReadFile(m.findFile(m.CertificateFile))
		if err != nil {
			return nil, errors.Wrapf(err, "could not read certificate file: %s", m.CertificateFile)
		}
		return certPemBlock, nil
	} else if m.Certificate != "" {
		return []byte(strings.TrimSpace(m.Certificate)), nil
	}
	return nil, nil
}

func (m *Config) GetPrivateKey() (privateKeyPemBlock []byte, err error) {
	if m.PrivateKeyFile != "" {
		privateKeyPemBlock, err = ioutil.ReadFile(m.findFile(m.PrivateKeyFile))
		if err != nil {
			err = errors.Wrapf(err, "could not read private key file: %s", m.PrivateKeyFile)
		}
	} else if m.PrivateKey != "" {
		privateKeyPemBlock = []byte(strings.TrimSpace(m.PrivateKey))
	}
	if err != nil || len(privateKeyPemBlock) == 0 {
		return
	}

	block, _ := pem.Decode(privateKeyPemBlock)
	if block == nil {
		return privateKeyPemBlock, nil
	}

	if block.Type == "ENCRYPTED PRIVATE KEY" {
		var password []byte
		password, err = m.GetPrivateKeyPassword()
		if err != nil {
			return nil, errors.Wrap(err, "failed getting the private key password")
		}
		key, err := pkcs8.ParsePKCS8PrivateKey(block.Bytes, password)
		if err != nil {
			return nil, errors.Wrap(err, "could not decrypt PKCS8 private key")
		}
		der, err := x509.MarshalPKCS8PrivateKey(key)
		if err != nil {
			return nil, errors.Wrapf(err, "don't know how to re-encode key of type %T", key)
		}
		return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), nil
	} else if x509.IsEncryptedPEMBlock(block) {
		var password []byte
		password, err = m.GetPrivateKeyPassword()
		if err != nil {
			return nil, errors.Wrap(err, "failed getting the private key password")
		}
		decrypted, err := x509.DecryptPEMBlock(block, password)
		if err != nil {
			return nil, errors.Wrap(err, "could not decrypt private key")
		}
		return pem.EncodeToMemory(&pem.Block{Type: block.Type, Bytes: decrypted}), nil
	}

	return privateKeyPemBlock, nil
}

func (m *Config) GetPrivateKeyPassword() ([]byte, error) {
	if m.PrivateKeyPassword != nil {
		return []byte(*m.PrivateKeyPassword), nil
	} else if m.PrivateKeyPasswordProgram != "" {
		cmd := exec.Command("sh", "-c", m.PrivateKeyPasswordProgram)
		out := bytes.NewBuffer(nil)
		cmd.Stdout = out
		if err := cmd.Run(); err != nil {
			return nil, errors.Wrapf(err, "failed executing %s", m.PrivateKeyPasswordProgram)
		}
		return bytes.TrimSpace(out.Bytes()), nil
	}
	return nil, errors.New("private key is encrypted and no password or password program was configured")
}

func (m *Config) GetX509KeyPair() (*tls.Certificate, error) {
	certPemBlock, err := m.GetCertificate()
	if err != nil {
		return nil, err
	}
	keyPemBlock, err := m.GetPrivateKey()
	if err != nil {
		return nil, err
	}
	if len(certPemBlock) == 0 || len(keyPemBlock) == 0 {
		return nil, nil
	}
	pair, err := tls.X509KeyPair(certPemBlock, keyPemBlock)
	if err != nil {
		return nil, errors.Wrap(err, "could not build X509 key pair")
	}
	return &pair, nil
}

func (m *Config) GetCaCertificates() ([]byte, error) {
	if m.CaCertificateFile != "" {
		certPemBlock, err := ioutil.ReadFile(m.findFile(m.CaCertificateFile))
		if err != nil {
			return nil, errors.Wrapf(err, "could not read CA certificate file: %s", m.CaCertificateFile)
		}
		return certPemBlock, nil
	} else if m.CaCertificate != "" {
		return []byte(strings.TrimSpace(m.CaCertificate)), nil
	}
	return nil, nil
}

// GetTLSConfig builds a *tls.Config ready to pass to tls.Client, with the
// client certificate, CA pool and server-name verification policy applied.
func (m *Config) GetTLSConfig() (*tls.Config, error) {
	conf := &tls.Config{InsecureSkipVerify: m.InsecureSkipVerify}

	pair, err := m.GetX509KeyPair()
	if err != nil {
		return nil, errors.Wrap(err, "could not load client certificate pair")
	}
	if pair != nil {
		conf.Certificates = []tls.Certificate{*pair}
	}

	caCert, err := m.GetCaCertificates()
	if err != nil {
		return nil, errors.Wrap(err, "could not load CA certificates")
	}
	if len(caCert) > 0 {
		pool := x509.NewCertPool()
		if ok := pool.AppendCertsFromPEM(caCert); !ok {
			return nil, errors.New("could not parse CA certificates")
		}
		conf.RootCAs = pool
	}

	return conf, nil
}

// findFile resolves a relative path against the directory the registry
// config file lives in, falling back to the literal path if that does not
// exist (e.g. it was already absolute).
func (m *Config) findFile(name string) string {
	if filepath.IsAbs(name) || m.ConfigurationDir == "" {
		return name
	}
	candidate := filepath.Join(m.ConfigurationDir, name)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return name
}
