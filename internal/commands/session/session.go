// Package session wires together cliargs, registryconfig and tlsmaterial
// into one Open helper, so every eppctl subcommand opens a registry
// session the same way instead of repeating the dial/login boilerplate.
package session

import (
	"context"
	"time"

	"github.com/bokysan/eppclient/internal/cliargs"
	"github.com/bokysan/eppclient/internal/clientrid"
	"github.com/bokysan/eppclient/internal/eppclient"
	"github.com/bokysan/eppclient/internal/logging"
	"github.com/bokysan/eppclient/internal/registryconfig"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Session bundles a live, authenticated eppclient.Client with the clTRID
// generator and registry details a subcommand needs to issue further
// commands and log them meaningfully.
type Session struct {
	Client *eppclient.Client
	Conn   registryconfig.Connection
	RID    *clientrid.Generator
}

// Open loads the registry configuration named by cliargs.General.Registry,
// dials it, performs the TLS handshake and logs in. Callers are
// responsible for calling Close when done.
func Open(ctx context.Context) (*Session, error) {
	logging.Setup()

	cfg, err := registryconfig.Load(cliargs.General.RegistryConfigFile)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	conn, err := cfg.Lookup(cliargs.General.Registry)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if cliargs.General.Insecure {
		conn.TLS.InsecureSkipVerify = true
	}

	tlsConfig, err := conn.TLS.GetTLSConfig()
	if err != nil {
		return nil, errors.Wrapf(err, "could not build TLS configuration for registry %q", cliargs.General.Registry)
	}

	timeout := time.Duration(cliargs.General.Timeout) * time.Second
	client, err := eppclient.Connect(ctx, conn.Addr(), conn.Host, tlsConfig, timeout)
	if err != nil {
		return nil, errors.Wrapf(err, "could not connect to registry %q at %s", cliargs.General.Registry, conn.Addr())
	}

	rid := clientrid.New(conn.Username)

	greeting := client.Greeting()
	extURIs := conn.ExtURIs
	if greeting != nil && greeting.ServiceMenu.Extensions != nil {
		extURIs = intersect(conn.ExtURIs, greeting.ServiceMenu.Extensions.ExtURIs)
	}

	if _, err := client.Login(ctx, conn.Username, conn.Password, extURIs, rid.Next()); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "login to registry %q failed", cliargs.General.Registry)
	}

	return &Session{Client: client, Conn: conn, RID: rid}, nil
}

// Close logs out of the session and closes the underlying connection. It
// logs, rather than returns, a failed logout so callers can still report
// their own command's result.
func (s *Session) Close(ctx context.Context) {
	if _, err := s.Client.Logout(ctx, s.RID.Next()); err != nil {
		log.Warnf("logout failed: %v", err)
	}
	if err := s.Client.Close(); err != nil {
		log.Warnf("closing connection failed: %v", err)
	}
}

// intersect returns the subset of configured extension URIs the registry
// actually advertised support for, preserving configured order.
func intersect(configured, advertised []string) []string {
	supported := make(map[string]bool, len(advertised))
	for _, uri := range advertised {
		supported[uri] = true
	}
	var out []string
	for _, uri := range configured {
		if supported[uri] {
			out = append(out, uri)
		}
	}
	return out
}
