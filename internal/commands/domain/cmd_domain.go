// Package domain implements the `eppctl domain` subcommand group: check,
// info, create, renew, delete, update and transfer against RFC 5731 domain
// objects.
package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/bokysan/eppclient/internal/cliargs"
	"github.com/bokysan/eppclient/internal/commands/session"
	"github.com/bokysan/eppclient/internal/epp/schema"
	"github.com/bokysan/eppclient/internal/epp/xmltypes"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Command is the `domain` parent; cmd/eppctl attaches the subcommands below
// to it.
type Command struct {
}

func (c *Command) String() string {
	return "Domain object operations"
}

func (c *Command) Execute(args []string) error {
	return errors.New("specify a domain subcommand: check, info, create, delete, renew, update, transfer")
}

// CheckCommand looks up availability for one or more domain names. Unlike
// every other subcommand, it accepts a comma-separated list of registries
// and fans the same check out to each one independently, aggregating
// per-registry failures with hashicorp/go-multierror rather than aborting
// on the first error.
type CheckCommand struct {
	Registries []string `short:"R" long:"registries" description:"Comma-separated registry names to check against; defaults to the single --registry value" env:"EPPCTL_CHECK_REGISTRIES" env-delim:","`
}

func (c *CheckCommand) String() string {
	return "Check domain name availability"
}

func (c *CheckCommand) Execute(names []string) error {
	if len(names) == 0 {
		return errors.New("domain check requires at least one domain name")
	}

	var registries []string
	for _, r := range c.Registries {
		for _, name := range strings.Split(r, ",") {
			if name = strings.TrimSpace(name); name != "" {
				registries = append(registries, name)
			}
		}
	}
	if len(registries) == 0 {
		registries = []string{cliargs.General.Registry}
	}

	var result error
	for _, registry := range registries {
		if err := checkOne(registry, names); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "registry %q", registry))
		}
	}
	return result
}

func checkOne(registry string, names []string) error {
	original := cliargs.General.Registry
	cliargs.General.Registry = registry
	defer func() { cliargs.General.Registry = original }()

	ctx := context.Background()
	sess, err := session.Open(ctx)
	if err != nil {
		return err
	}
	defer sess.Close(ctx)

	data, err := sess.Client.DomainCheck(ctx, sess.RID.Next(), names...)
	if err != nil {
		return err
	}
	for _, r := range data.Checks {
		fmt.Printf("%s: %s %q avail=%v\n", registry, r.Name.Name, r.Reason, r.Name.Available)
	}
	return nil
}

// InfoCommand fetches full details for a single domain.
type InfoCommand struct {
	AuthInfo string `short:"a" long:"auth-info" description:"Auth info password unlocking registrant-restricted fields"`
	Hosts    string `long:"hosts" default:"all" description:"Delegated hosts to report: all, del, sub or none"`
}

func (c *InfoCommand) String() string {
	return "Show domain details"
}

func (c *InfoCommand) Execute(args []string) error {
	if len(args) != 1 {
		return errors.New("domain info requires exactly one domain name")
	}
	ctx := context.Background()
	sess, err := session.Open(ctx)
	if err != nil {
		return err
	}
	defer sess.Close(ctx)

	var authInfo *schema.DomainAuthInfo
	if c.AuthInfo != "" {
		authInfo = &schema.DomainAuthInfo{Password: c.AuthInfo}
	}

	data, err := sess.Client.DomainInfo(ctx, args[0], c.Hosts, authInfo, sess.RID.Next())
	if err != nil {
		return err
	}
	fmt.Printf("%+v\n", data)
	return nil
}

// CreateCommand registers a new domain.
type CreateCommand struct {
	Years      uint     `short:"y" long:"years" default:"1" description:"Registration period, in years"`
	Registrant string   `long:"registrant" required:"true" description:"Registrant contact ID"`
	Contacts   []string `long:"contact" description:"Additional contact in id:type form (e.g. jdoe123:admin); repeatable"`
	AuthInfo   string   `short:"a" long:"auth-info" required:"true" description:"Auth info password to set on the new domain"`
	Nameserver []string `short:"n" long:"ns" description:"Host-object nameserver name; repeatable"`
}

func (c *CreateCommand) String() string {
	return "Register a new domain"
}

func (c *CreateCommand) Execute(args []string) error {
	if len(args) != 1 {
		return errors.New("domain create requires exactly one domain name")
	}

	contacts, err := parseContacts(c.Contacts)
	if err != nil {
		return err
	}

	var ns *schema.DomainNameservers
	if len(c.Nameserver) > 0 {
		ns = &schema.DomainNameservers{HostObj: c.Nameserver}
	}

	ctx := context.Background()
	sess, err := session.Open(ctx)
	if err != nil {
		return err
	}
	defer sess.Close(ctx)

	cmd := schema.NewDomainCreate(args[0], xmltypes.NewPeriod(int(c.Years)), ns, c.Registrant, contacts, c.AuthInfo)
	data, err := sess.Client.DomainCreate(ctx, cmd, nil, sess.RID.Next())
	if err != nil {
		return err
	}
	fmt.Printf("created %s, expires %s\n", data.Name, data.ExpiringAt.Time)
	return nil
}

func parseContacts(raw []string) ([]schema.DomainContact, error) {
	contacts := make([]schema.DomainContact, 0, len(raw))
	for _, c := range raw {
		id, typ, ok := splitOnce(c, ':')
		if !ok {
			return nil, errors.Errorf("invalid --contact %q, expected id:type", c)
		}
		contacts = append(contacts, schema.DomainContact{ID: id, Type: typ})
	}
	return contacts, nil
}

func splitOnce(s string, sep byte) (string, string, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return s[:i], s[i+1:], true
		}
	}
	return "", "", false
}

// DeleteCommand removes a domain.
type DeleteCommand struct {
}

func (c *DeleteCommand) String() string {
	return "Delete a domain"
}

func (c *DeleteCommand) Execute(args []string) error {
	if len(args) != 1 {
		return errors.New("domain delete requires exactly one domain name")
	}
	ctx := context.Background()
	sess, err := session.Open(ctx)
	if err != nil {
		return err
	}
	defer sess.Close(ctx)

	if _, err := sess.Client.DomainDelete(ctx, args[0], sess.RID.Next()); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", args[0])
	return nil
}

// RenewCommand extends a domain's registration.
type RenewCommand struct {
	Years        uint   `short:"y" long:"years" default:"1" description:"Additional period, in years"`
	CurrentExpiry string `long:"current-expiry" required:"true" description:"Domain's current expiration date, as registered (RFC3339)"`
}

func (c *RenewCommand) String() string {
	return "Renew a domain's registration"
}

func (c *RenewCommand) Execute(args []string) error {
	if len(args) != 1 {
		return errors.New("domain renew requires exactly one domain name")
	}
	expiry, err := parseTime(c.CurrentExpiry)
	if err != nil {
		return err
	}

	ctx := context.Background()
	sess, err := session.Open(ctx)
	if err != nil {
		return err
	}
	defer sess.Close(ctx)

	cmd := schema.NewDomainRenew(args[0], expiry, xmltypes.NewPeriod(int(c.Years)))
	data, err := sess.Client.DomainRenew(ctx, cmd, sess.RID.Next())
	if err != nil {
		return err
	}
	fmt.Printf("renewed %s, now expires %s\n", data.Name, data.ExpiringAt.Time)
	return nil
}

// TransferCommand drives one step of the domain transfer state machine.
type TransferCommand struct {
	Op       string `short:"o" long:"op" required:"true" choice:"query" choice:"request" choice:"cancel" choice:"approve" choice:"reject" description:"Transfer operation"`
	AuthInfo string `short:"a" long:"auth-info" description:"Auth info password, required for request"`
	Years    uint   `short:"y" long:"years" description:"Additional period to request on transfer, in years"`
}

func (c *TransferCommand) String() string {
	return "Drive a domain transfer"
}

func (c *TransferCommand) Execute(args []string) error {
	if len(args) != 1 {
		return errors.New("domain transfer requires exactly one domain name")
	}

	var authInfo *schema.DomainAuthInfo
	if c.AuthInfo != "" {
		authInfo = &schema.DomainAuthInfo{Password: c.AuthInfo}
	}
	var period *xmltypes.Period
	if c.Years > 0 {
		period = xmltypes.NewPeriod(int(c.Years))
	}

	ctx := context.Background()
	sess, err := session.Open(ctx)
	if err != nil {
		return err
	}
	defer sess.Close(ctx)

	cmd := schema.NewDomainTransfer(schema.DomainTransferOp(c.Op), args[0], period, authInfo)
	data, err := sess.Client.DomainTransfer(ctx, cmd, sess.RID.Next())
	if err != nil {
		return err
	}
	if data == nil {
		fmt.Printf("%s: %s acknowledged\n", args[0], c.Op)
		return nil
	}
	fmt.Printf("%s: %s (requested by %s)\n", data.Name, data.TransferStatus, data.RequesterID)
	return nil
}

// UpdateCommand adds or removes nameservers, contacts and statuses, and/or
// changes the registrant or auth info.
type UpdateCommand struct {
	AddNS      []string `long:"add-ns" description:"Host-object nameserver to add; repeatable"`
	RemNS      []string `long:"rem-ns" description:"Host-object nameserver to remove; repeatable"`
	AddContact []string `long:"add-contact" description:"Contact to add, in id:type form; repeatable"`
	RemContact []string `long:"rem-contact" description:"Contact to remove, in id:type form; repeatable"`
	AddStatus  []string `long:"add-status" description:"Status to add, e.g. clientHold; repeatable"`
	RemStatus  []string `long:"rem-status" description:"Status to remove; repeatable"`
	Registrant string   `long:"registrant" description:"New registrant contact ID"`
	AuthInfo   string   `short:"a" long:"auth-info" description:"New auth info password"`
}

func (c *UpdateCommand) String() string {
	return "Update a domain"
}

func (c *UpdateCommand) Execute(args []string) error {
	if len(args) != 1 {
		return errors.New("domain update requires exactly one domain name")
	}

	addContacts, err := parseContacts(c.AddContact)
	if err != nil {
		return err
	}
	remContacts, err := parseContacts(c.RemContact)
	if err != nil {
		return err
	}

	add := domainAddRemove(c.AddNS, addContacts, c.AddStatus)
	remove := domainAddRemove(c.RemNS, remContacts, c.RemStatus)

	var change *schema.DomainChange
	if c.Registrant != "" || c.AuthInfo != "" {
		change = &schema.DomainChange{Registrant: c.Registrant}
		if c.AuthInfo != "" {
			change.AuthInfo = &schema.DomainAuthInfo{Password: c.AuthInfo}
		}
	}

	if add == nil && remove == nil && change == nil {
		return errors.New("domain update requires at least one add, remove or change option")
	}

	ctx := context.Background()
	sess, err := session.Open(ctx)
	if err != nil {
		return err
	}
	defer sess.Close(ctx)

	cmd := schema.NewDomainUpdate(args[0], add, remove, change)
	if _, err := sess.Client.DomainUpdate(ctx, cmd, nil, sess.RID.Next()); err != nil {
		return err
	}
	fmt.Printf("updated %s\n", args[0])
	return nil
}

func domainAddRemove(nameservers []string, contacts []schema.DomainContact, statuses []string) *schema.DomainAddRemove {
	if len(nameservers) == 0 && len(contacts) == 0 && len(statuses) == 0 {
		return nil
	}
	ar := &schema.DomainAddRemove{Contacts: contacts}
	if len(nameservers) > 0 {
		ar.Nameservers = &schema.DomainNameservers{HostObj: nameservers}
	}
	for _, s := range statuses {
		ar.Statuses = append(ar.Statuses, schema.DomainStatus{Status: s})
	}
	return ar
}

func parseTime(s string) (xmltypes.Time, error) {
	t, err := xmltypes.ParseTime(s)
	if err != nil {
		return xmltypes.Time{}, errors.Wrapf(err, "invalid time %q", s)
	}
	return t, nil
}
