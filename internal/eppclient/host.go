package eppclient

import (
	"context"

	"github.com/bokysan/eppclient/internal/epp/schema"
)

// HostCheck queries availability for one or more host object names.
func (c *Client) HostCheck(ctx context.Context, clTRID string, names ...string) (*schema.HostCheckData, error) {
	resp, err := c.Transact(ctx, schema.NewHostCheck(names...), nil, clTRID)
	if err != nil {
		return nil, err
	}
	var data schema.HostCheckData
	if err := resp.DecodeResData(&data); err != nil {
		return nil, newError(KindXMLDecode, err)
	}
	return &data, nil
}

// HostInfo fetches full details for a host object.
func (c *Client) HostInfo(ctx context.Context, name string, clTRID string) (*schema.HostInfoData, error) {
	resp, err := c.Transact(ctx, schema.NewHostInfo(name), nil, clTRID)
	if err != nil {
		return nil, err
	}
	var data schema.HostInfoData
	if err := resp.DecodeResData(&data); err != nil {
		return nil, newError(KindXMLDecode, err)
	}
	return &data, nil
}

// HostCreate registers a new host object.
func (c *Client) HostCreate(ctx context.Context, cmd *schema.HostCreate, clTRID string) (*schema.HostCreateData, error) {
	resp, err := c.Transact(ctx, cmd, nil, clTRID)
	if err != nil {
		return nil, err
	}
	var data schema.HostCreateData
	if err := resp.DecodeResData(&data); err != nil {
		return nil, newError(KindXMLDecode, err)
	}
	return &data, nil
}

// HostDelete removes a host object.
func (c *Client) HostDelete(ctx context.Context, name string, clTRID string) (*schema.Response, error) {
	return c.Transact(ctx, schema.NewHostDelete(name), nil, clTRID)
}

// HostUpdate modifies a host's addresses, statuses or name.
func (c *Client) HostUpdate(ctx context.Context, cmd *schema.HostUpdate, clTRID string) (*schema.Response, error) {
	return c.Transact(ctx, cmd, nil, clTRID)
}
