package eppclient

import (
	"context"

	"github.com/bokysan/eppclient/internal/epp/schema"
)

// ContactCheck queries availability for one or more contact IDs.
func (c *Client) ContactCheck(ctx context.Context, clTRID string, ids ...string) (*schema.ContactCheckData, error) {
	resp, err := c.Transact(ctx, schema.NewContactCheck(ids...), nil, clTRID)
	if err != nil {
		return nil, err
	}
	var data schema.ContactCheckData
	if err := resp.DecodeResData(&data); err != nil {
		return nil, newError(KindXMLDecode, err)
	}
	return &data, nil
}

// ContactInfo fetches full details for a contact. authInfo unlocks
// registrant-restricted fields when supplied.
func (c *Client) ContactInfo(ctx context.Context, id string, authInfo *schema.ContactAuthInfo, clTRID string) (*schema.ContactInfoData, error) {
	resp, err := c.Transact(ctx, schema.NewContactInfo(id, authInfo), nil, clTRID)
	if err != nil {
		return nil, err
	}
	var data schema.ContactInfoData
	if err := resp.DecodeResData(&data); err != nil {
		return nil, newError(KindXMLDecode, err)
	}
	return &data, nil
}

// ContactCreate registers a new contact.
func (c *Client) ContactCreate(ctx context.Context, cmd *schema.ContactCreate, clTRID string) (*schema.ContactCreateData, error) {
	resp, err := c.Transact(ctx, cmd, nil, clTRID)
	if err != nil {
		return nil, err
	}
	var data schema.ContactCreateData
	if err := resp.DecodeResData(&data); err != nil {
		return nil, newError(KindXMLDecode, err)
	}
	return &data, nil
}

// ContactDelete removes a contact.
func (c *Client) ContactDelete(ctx context.Context, id string, clTRID string) (*schema.Response, error) {
	return c.Transact(ctx, schema.NewContactDelete(id), nil, clTRID)
}

// ContactUpdate modifies a contact's postal info, phone, email, statuses or
// auth info.
func (c *Client) ContactUpdate(ctx context.Context, cmd *schema.ContactUpdate, clTRID string) (*schema.Response, error) {
	return c.Transact(ctx, cmd, nil, clTRID)
}
