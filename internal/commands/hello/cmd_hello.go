// Package hello implements the `eppctl hello` subcommand, which solicits a
// fresh greeting from the registry and prints its service menu.
package hello

import (
	"context"
	"fmt"

	"github.com/bokysan/eppclient/internal/commands/session"
)

// Command opens a connection, logs in, re-solicits the greeting with
// <hello/> and prints it.
type Command struct {
}

func (c *Command) String() string {
	return "Fetch the registry greeting"
}

func (c *Command) Execute(args []string) error {
	ctx := context.Background()
	sess, err := session.Open(ctx)
	if err != nil {
		return err
	}
	defer sess.Close(ctx)

	greeting, err := sess.Client.Hello(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("svID:      %s\n", greeting.ServiceID)
	fmt.Printf("svDate:    %s\n", greeting.ServiceDate.Time)
	fmt.Printf("versions:  %v\n", greeting.ServiceMenu.Versions)
	fmt.Printf("languages: %v\n", greeting.ServiceMenu.Languages)
	fmt.Printf("objURIs:   %v\n", greeting.ServiceMenu.ObjURIs)
	if greeting.ServiceMenu.Extensions != nil {
		fmt.Printf("extURIs:   %v\n", greeting.ServiceMenu.Extensions.ExtURIs)
	}
	return nil
}
