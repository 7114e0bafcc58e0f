package eppclient

import (
	"context"

	"github.com/bokysan/eppclient/internal/epp/schema"
)

// DomainCheck queries availability for one or more domain names.
func (c *Client) DomainCheck(ctx context.Context, clTRID string, names ...string) (*schema.DomainCheckData, error) {
	resp, err := c.Transact(ctx, schema.NewDomainCheck(names...), nil, clTRID)
	if err != nil {
		return nil, err
	}
	var data schema.DomainCheckData
	if err := resp.DecodeResData(&data); err != nil {
		return nil, newError(KindXMLDecode, err)
	}
	return &data, nil
}

// DomainInfo fetches full details for a domain. authInfo unlocks
// registrant-restricted fields when supplied. hosts selects which delegated
// hosts the registry should report back ("all", "del", "sub" or "none");
// pass "" for the usual "all".
func (c *Client) DomainInfo(ctx context.Context, name string, hosts string, authInfo *schema.DomainAuthInfo, clTRID string) (*schema.DomainInfoData, error) {
	resp, err := c.Transact(ctx, schema.NewDomainInfo(name, hosts, authInfo), nil, clTRID)
	if err != nil {
		return nil, err
	}
	var data schema.DomainInfoData
	if err := resp.DecodeResData(&data); err != nil {
		return nil, newError(KindXMLDecode, err)
	}
	return &data, nil
}

// DomainCreate registers a new domain.
func (c *Client) DomainCreate(ctx context.Context, cmd *schema.DomainCreate, ext schema.ExtensionBody, clTRID string) (*schema.DomainCreateData, error) {
	resp, err := c.Transact(ctx, cmd, ext, clTRID)
	if err != nil {
		return nil, err
	}
	var data schema.DomainCreateData
	if err := resp.DecodeResData(&data); err != nil {
		return nil, newError(KindXMLDecode, err)
	}
	return &data, nil
}

// DomainDelete removes a domain (subject to registry grace-period rules).
func (c *Client) DomainDelete(ctx context.Context, name string, clTRID string) (*schema.Response, error) {
	return c.Transact(ctx, schema.NewDomainDelete(name), nil, clTRID)
}

// DomainRenew extends a domain's registration.
func (c *Client) DomainRenew(ctx context.Context, cmd *schema.DomainRenew, clTRID string) (*schema.DomainRenewData, error) {
	resp, err := c.Transact(ctx, cmd, nil, clTRID)
	if err != nil {
		return nil, err
	}
	var data schema.DomainRenewData
	if err := resp.DecodeResData(&data); err != nil {
		return nil, newError(KindXMLDecode, err)
	}
	return &data, nil
}

// DomainUpdate modifies a domain's nameservers, contacts, statuses,
// registrant or auth info.
func (c *Client) DomainUpdate(ctx context.Context, cmd *schema.DomainUpdate, ext schema.ExtensionBody, clTRID string) (*schema.Response, error) {
	return c.Transact(ctx, cmd, ext, clTRID)
}

// DomainTransfer drives one step of the transfer state machine (query,
// request, cancel, approve or reject). Only query and request carry a
// <domain:trnData> resData payload back; a successful cancel, approve or
// reject response legitimately has none, so those return a nil data.
func (c *Client) DomainTransfer(ctx context.Context, cmd *schema.DomainTransfer, clTRID string) (*schema.DomainTransferData, error) {
	resp, err := c.Transact(ctx, cmd, nil, clTRID)
	if err != nil {
		return nil, err
	}
	if cmd.Op != schema.TransferQuery && cmd.Op != schema.TransferRequest {
		return nil, nil
	}
	var data schema.DomainTransferData
	if err := resp.DecodeResData(&data); err != nil {
		return nil, newError(KindXMLDecode, err)
	}
	return &data, nil
}
