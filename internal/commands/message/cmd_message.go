// Package message implements the `eppctl message` subcommand group: poll
// and ack against the registry's queued-message inbox.
package message

import (
	"context"
	"fmt"

	"github.com/bokysan/eppclient/internal/commands/session"
	"github.com/bokysan/eppclient/internal/epp/schema"
	"github.com/pkg/errors"
)

// Command is the `message` parent.
type Command struct {
}

func (c *Command) String() string {
	return "Queued message operations"
}

func (c *Command) Execute(args []string) error {
	return errors.New("specify a message subcommand: poll, ack")
}

// PollCommand requests the oldest queued message without dequeuing it.
type PollCommand struct {
}

func (c *PollCommand) String() string {
	return "Poll the oldest queued message"
}

func (c *PollCommand) Execute(args []string) error {
	ctx := context.Background()
	sess, err := session.Open(ctx)
	if err != nil {
		return err
	}
	defer sess.Close(ctx)

	resp, err := sess.Client.MessagePoll(ctx, sess.RID.Next())
	if err != nil {
		return err
	}
	if resp.MessageQueue == nil {
		fmt.Println("queue is empty")
		return nil
	}
	q := resp.MessageQueue
	fmt.Printf("msgID=%s count=%d\n", q.ID, q.Count)

	if resp.ResData != nil {
		var transfer schema.DomainTransferMessageData
		if err := resp.DecodeResData(&transfer); err == nil && transfer.Name != "" {
			fmt.Printf("transfer notice: %s %s requested by %s\n", transfer.Name, transfer.TransferStatus, transfer.RequesterID)
		}
	}
	return nil
}

// AckCommand acknowledges and dequeues a previously polled message.
type AckCommand struct {
}

func (c *AckCommand) String() string {
	return "Acknowledge and dequeue a message"
}

func (c *AckCommand) Execute(args []string) error {
	if len(args) != 1 {
		return errors.New("message ack requires exactly one message ID")
	}
	ctx := context.Background()
	sess, err := session.Open(ctx)
	if err != nil {
		return err
	}
	defer sess.Close(ctx)

	if _, err := sess.Client.MessageAck(ctx, args[0], sess.RID.Next()); err != nil {
		return err
	}
	fmt.Printf("acknowledged %s\n", args[0])
	return nil
}
