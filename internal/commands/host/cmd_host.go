// Package host implements the `eppctl host` subcommand group: check, info,
// create, delete and update against RFC 5732 host objects.
package host

import (
	"context"
	"fmt"

	"github.com/bokysan/eppclient/internal/commands/session"
	"github.com/bokysan/eppclient/internal/epp/schema"
	"github.com/pkg/errors"
)

// Command is the `host` parent.
type Command struct {
}

func (c *Command) String() string {
	return "Host object operations"
}

func (c *Command) Execute(args []string) error {
	return errors.New("specify a host subcommand: check, info, create, delete, update")
}

// CheckCommand looks up availability for one or more host names.
type CheckCommand struct {
}

func (c *CheckCommand) String() string {
	return "Check host name availability"
}

func (c *CheckCommand) Execute(names []string) error {
	if len(names) == 0 {
		return errors.New("host check requires at least one host name")
	}
	ctx := context.Background()
	sess, err := session.Open(ctx)
	if err != nil {
		return err
	}
	defer sess.Close(ctx)

	data, err := sess.Client.HostCheck(ctx, sess.RID.Next(), names...)
	if err != nil {
		return err
	}
	for _, r := range data.Checks {
		fmt.Printf("%s %q avail=%v\n", r.Name.Name, r.Reason, r.Name.Available)
	}
	return nil
}

// InfoCommand fetches full details for a host object.
type InfoCommand struct {
}

func (c *InfoCommand) String() string {
	return "Show host details"
}

func (c *InfoCommand) Execute(args []string) error {
	if len(args) != 1 {
		return errors.New("host info requires exactly one host name")
	}
	ctx := context.Background()
	sess, err := session.Open(ctx)
	if err != nil {
		return err
	}
	defer sess.Close(ctx)

	data, err := sess.Client.HostInfo(ctx, args[0], sess.RID.Next())
	if err != nil {
		return err
	}
	fmt.Printf("%+v\n", data)
	return nil
}

// CreateCommand registers a new host object with optional glue addresses.
type CreateCommand struct {
	V4 []string `long:"v4" description:"IPv4 glue address; repeatable"`
	V6 []string `long:"v6" description:"IPv6 glue address; repeatable"`
}

func (c *CreateCommand) String() string {
	return "Register a new host object"
}

func (c *CreateCommand) Execute(args []string) error {
	if len(args) != 1 {
		return errors.New("host create requires exactly one host name")
	}

	var addrs []schema.HostAddr
	for _, ip := range c.V4 {
		addrs = append(addrs, schema.NewHostAddrV4(ip))
	}
	for _, ip := range c.V6 {
		addrs = append(addrs, schema.NewHostAddrV6(ip))
	}

	ctx := context.Background()
	sess, err := session.Open(ctx)
	if err != nil {
		return err
	}
	defer sess.Close(ctx)

	cmd := schema.NewHostCreate(args[0], addrs...)
	data, err := sess.Client.HostCreate(ctx, cmd, sess.RID.Next())
	if err != nil {
		return err
	}
	fmt.Printf("created %s at %s\n", data.Name, data.CreatedAt.Time)
	return nil
}

// DeleteCommand removes a host object.
type DeleteCommand struct {
}

func (c *DeleteCommand) String() string {
	return "Delete a host object"
}

func (c *DeleteCommand) Execute(args []string) error {
	if len(args) != 1 {
		return errors.New("host delete requires exactly one host name")
	}
	ctx := context.Background()
	sess, err := session.Open(ctx)
	if err != nil {
		return err
	}
	defer sess.Close(ctx)

	if _, err := sess.Client.HostDelete(ctx, args[0], sess.RID.Next()); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", args[0])
	return nil
}

// UpdateCommand modifies a host object's glue addresses or renames it.
type UpdateCommand struct {
	AddV4  []string `long:"add-v4" description:"IPv4 glue address to add; repeatable"`
	AddV6  []string `long:"add-v6" description:"IPv6 glue address to add; repeatable"`
	RemV4  []string `long:"rem-v4" description:"IPv4 glue address to remove; repeatable"`
	RemV6  []string `long:"rem-v6" description:"IPv6 glue address to remove; repeatable"`
	Rename string   `long:"rename" description:"New host name"`
}

func (c *UpdateCommand) String() string {
	return "Update a host object"
}

func (c *UpdateCommand) Execute(args []string) error {
	if len(args) != 1 {
		return errors.New("host update requires exactly one host name")
	}

	var add, remove *schema.HostAddRemove
	if addrs := collectAddrs(c.AddV4, c.AddV6); len(addrs) > 0 {
		add = &schema.HostAddRemove{Addresses: addrs}
	}
	if addrs := collectAddrs(c.RemV4, c.RemV6); len(addrs) > 0 {
		remove = &schema.HostAddRemove{Addresses: addrs}
	}

	ctx := context.Background()
	sess, err := session.Open(ctx)
	if err != nil {
		return err
	}
	defer sess.Close(ctx)

	cmd := schema.NewHostUpdate(args[0], add, remove, c.Rename)
	if _, err := sess.Client.HostUpdate(ctx, cmd, sess.RID.Next()); err != nil {
		return err
	}
	fmt.Printf("updated %s\n", args[0])
	return nil
}

func collectAddrs(v4, v6 []string) []schema.HostAddr {
	var addrs []schema.HostAddr
	for _, ip := range v4 {
		addrs = append(addrs, schema.NewHostAddrV4(ip))
	}
	for _, ip := range v6 {
		addrs = append(addrs, schema.NewHostAddrV6(ip))
	}
	return addrs
}
