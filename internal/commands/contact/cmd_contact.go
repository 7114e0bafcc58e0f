// Package contact implements the `eppctl contact` subcommand group: check,
// info, create, delete and update against RFC 5733 contact objects.
package contact

import (
	"context"
	"fmt"

	"github.com/bokysan/eppclient/internal/commands/session"
	"github.com/bokysan/eppclient/internal/epp/schema"
	"github.com/pkg/errors"
)

// Command is the `contact` parent.
type Command struct {
}

func (c *Command) String() string {
	return "Contact object operations"
}

func (c *Command) Execute(args []string) error {
	return errors.New("specify a contact subcommand: check, info, create, delete, update")
}

// CheckCommand looks up availability for one or more contact IDs.
type CheckCommand struct {
}

func (c *CheckCommand) String() string {
	return "Check contact ID availability"
}

func (c *CheckCommand) Execute(ids []string) error {
	if len(ids) == 0 {
		return errors.New("contact check requires at least one contact ID")
	}
	ctx := context.Background()
	sess, err := session.Open(ctx)
	if err != nil {
		return err
	}
	defer sess.Close(ctx)

	data, err := sess.Client.ContactCheck(ctx, sess.RID.Next(), ids...)
	if err != nil {
		return err
	}
	for _, r := range data.Checks {
		fmt.Printf("%s %q avail=%v\n", r.ID.ID, r.Reason, r.ID.Available)
	}
	return nil
}

// InfoCommand fetches full details for a contact.
type InfoCommand struct {
	AuthInfo string `short:"a" long:"auth-info" description:"Auth info password unlocking restricted fields"`
}

func (c *InfoCommand) String() string {
	return "Show contact details"
}

func (c *InfoCommand) Execute(args []string) error {
	if len(args) != 1 {
		return errors.New("contact info requires exactly one contact ID")
	}

	var authInfo *schema.ContactAuthInfo
	if c.AuthInfo != "" {
		authInfo = &schema.ContactAuthInfo{Password: c.AuthInfo}
	}

	ctx := context.Background()
	sess, err := session.Open(ctx)
	if err != nil {
		return err
	}
	defer sess.Close(ctx)

	data, err := sess.Client.ContactInfo(ctx, args[0], authInfo, sess.RID.Next())
	if err != nil {
		return err
	}
	fmt.Printf("%+v\n", data)
	return nil
}

// CreateCommand registers a new contact.
type CreateCommand struct {
	Name         string `long:"name" required:"true" description:"Contact name"`
	Organization string `long:"org" description:"Contact organization"`
	Street       string `long:"street" required:"true" description:"Street address"`
	City         string `long:"city" required:"true" description:"City"`
	Province     string `long:"province" description:"State/province"`
	PostalCode   string `long:"postal-code" description:"Postal code"`
	Country      string `long:"country" required:"true" description:"Two-letter country code"`
	Voice        string `long:"voice" description:"Voice phone number"`
	Email        string `long:"email" required:"true" description:"Contact email"`
	AuthInfo     string `short:"a" long:"auth-info" required:"true" description:"Auth info password to set on the new contact"`
}

func (c *CreateCommand) String() string {
	return "Register a new contact"
}

func (c *CreateCommand) Execute(args []string) error {
	if len(args) != 1 {
		return errors.New("contact create requires exactly one contact ID")
	}

	postalInfo := []schema.PostalInfo{{
		Type:         "int",
		Name:         c.Name,
		Organization: c.Organization,
		Address: schema.Address{
			Street:     nonEmpty(c.Street),
			City:       c.City,
			Province:   c.Province,
			PostalCode: c.PostalCode,
			Country:    c.Country,
		},
	}}

	var voice *schema.Phone
	if c.Voice != "" {
		voice = &schema.Phone{Number: c.Voice}
	}

	ctx := context.Background()
	sess, err := session.Open(ctx)
	if err != nil {
		return err
	}
	defer sess.Close(ctx)

	cmd := schema.NewContactCreate(args[0], postalInfo, voice, nil, c.Email, c.AuthInfo)
	data, err := sess.Client.ContactCreate(ctx, cmd, sess.RID.Next())
	if err != nil {
		return err
	}
	fmt.Printf("created %s at %s\n", data.ID, data.CreatedAt.Time)
	return nil
}

func nonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}

// DeleteCommand removes a contact.
type DeleteCommand struct {
}

func (c *DeleteCommand) String() string {
	return "Delete a contact"
}

func (c *DeleteCommand) Execute(args []string) error {
	if len(args) != 1 {
		return errors.New("contact delete requires exactly one contact ID")
	}
	ctx := context.Background()
	sess, err := session.Open(ctx)
	if err != nil {
		return err
	}
	defer sess.Close(ctx)

	if _, err := sess.Client.ContactDelete(ctx, args[0], sess.RID.Next()); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", args[0])
	return nil
}

// UpdateCommand changes a contact's email or auth info.
type UpdateCommand struct {
	Email    string `long:"email" description:"New email address"`
	AuthInfo string `short:"a" long:"auth-info" description:"New auth info password"`
}

func (c *UpdateCommand) String() string {
	return "Update a contact"
}

func (c *UpdateCommand) Execute(args []string) error {
	if len(args) != 1 {
		return errors.New("contact update requires exactly one contact ID")
	}
	if c.Email == "" && c.AuthInfo == "" {
		return errors.New("contact update requires at least one of --email or --auth-info")
	}

	change := &schema.ContactChange{Email: c.Email}
	if c.AuthInfo != "" {
		change.AuthInfo = &schema.ContactAuthInfo{Password: c.AuthInfo}
	}

	ctx := context.Background()
	sess, err := session.Open(ctx)
	if err != nil {
		return err
	}
	defer sess.Close(ctx)

	cmd := schema.NewContactUpdate(args[0], nil, nil, change)
	if _, err := sess.Client.ContactUpdate(ctx, cmd, sess.RID.Next()); err != nil {
		return err
	}
	fmt.Printf("updated %s\n", args[0])
	return nil
}
