package eppclient

import (
	"context"

	"github.com/bokysan/eppclient/internal/epp/schema"
)

// Login authenticates the session, declaring only the object namespaces
// the stored greeting actually advertised (out of schema.DefaultObjURIs)
// plus the given extension namespaces (typically a subset of the greeting's
// advertised svcExtension list). It must be the first command sent on a
// fresh connection.
func (c *Client) Login(ctx context.Context, username, password string, extURIs []string, clTRID string) (*schema.Response, error) {
	greeting := c.Greeting()

	var objURIs []string
	for _, uri := range schema.DefaultObjURIs {
		if greeting == nil || greeting.ServiceMenu.Supports(uri) {
			objURIs = append(objURIs, uri)
		}
	}

	login := schema.NewLogin(username, password, objURIs, extURIs)
	return c.Transact(ctx, login, nil, clTRID)
}

// Logout ends the session. Per RFC 5730 it must be the last command sent on
// the connection; the registry closes the connection afterward, so any
// further Transact call will observe a transport-eof or
// connection-poisoned error.
func (c *Client) Logout(ctx context.Context, clTRID string) (*schema.Response, error) {
	return c.Transact(ctx, &schema.Logout{}, nil, clTRID)
}
