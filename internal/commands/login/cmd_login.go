// Package login implements the `eppctl login`/`logout` subcommands, useful
// for verifying registry credentials without issuing any object command.
package login

import (
	"context"
	"fmt"

	"github.com/bokysan/eppclient/internal/commands/session"
)

// Command connects, logs in, then immediately logs out again, reporting
// success. It exercises exactly the same Open/Close path every other
// subcommand uses, in isolation.
type Command struct {
}

func (c *Command) String() string {
	return "Verify registry credentials"
}

func (c *Command) Execute(args []string) error {
	ctx := context.Background()
	sess, err := session.Open(ctx)
	if err != nil {
		return err
	}
	sess.Close(ctx)
	fmt.Println("login OK")
	return nil
}
