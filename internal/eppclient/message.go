package eppclient

import (
	"context"

	"github.com/bokysan/eppclient/internal/epp/schema"
)

// MessagePoll requests the oldest queued message, if any. A nil
// MessageQueue on the returned response means the queue is empty.
func (c *Client) MessagePoll(ctx context.Context, clTRID string) (*schema.Response, error) {
	return c.Transact(ctx, schema.NewMessagePoll(), nil, clTRID)
}

// MessageAck acknowledges and dequeues the message with the given ID, as
// reported by a prior MessagePoll's MessageQueue.ID.
func (c *Client) MessageAck(ctx context.Context, messageID string, clTRID string) (*schema.Response, error) {
	return c.Transact(ctx, schema.NewMessageAck(messageID), nil, clTRID)
}
