package main

import (
	"os"
	"path"

	"github.com/bokysan/eppclient/internal/cliargs"
	"github.com/bokysan/eppclient/internal/commands/contact"
	"github.com/bokysan/eppclient/internal/commands/domain"
	"github.com/bokysan/eppclient/internal/commands/hello"
	"github.com/bokysan/eppclient/internal/commands/host"
	"github.com/bokysan/eppclient/internal/commands/login"
	"github.com/bokysan/eppclient/internal/commands/message"
	"github.com/bokysan/eppclient/internal/commands/version"
	"github.com/bokysan/eppclient/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

// Eppctl is the main executable: an EPP registry client driven entirely
// from the command line, one connection-login-command-logout cycle per
// invocation.
type Eppctl struct {
	parser *flags.Parser
}

// NewEppctl creates a new instance of Eppctl and initializes the parser.
func NewEppctl() *Eppctl {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	e := &Eppctl{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	e.setupGeneral()
	e.setupVersion()
	e.setupHello()
	e.setupLogin()
	e.setupDomain()
	e.setupHost()
	e.setupContact()
	e.setupMessage()

	return e
}

// setupGeneral configures the global flags.
func (e *Eppctl) setupGeneral() {
	if _, err := e.parser.AddGroup("General", "General options", &cliargs.General); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}
}

// setupVersion adds the `version` command.
func (e *Eppctl) setupVersion() {
	_, err := e.parser.AddCommand("version", "Print the version", "Print the application version and exit", &version.Command{})
	util.MustErrorNilOrExit(err)
}

// setupHello adds the `hello` command.
func (e *Eppctl) setupHello() {
	_, err := e.parser.AddCommand("hello", "Fetch the registry greeting", "Solicit a fresh greeting and print its service menu", &hello.Command{})
	util.MustErrorNilOrExit(err)
}

// setupLogin adds the `login` and `logout` commands. Both exercise the same
// connect/login/logout/close lifecycle in isolation, to verify credentials.
func (e *Eppctl) setupLogin() {
	_, err := e.parser.AddCommand("login", "Verify registry credentials", "Log in and immediately log out, reporting success", &login.Command{})
	util.MustErrorNilOrExit(err)
	_, err = e.parser.AddCommand("logout", "Verify registry credentials", "Log in and immediately log out, reporting success", &login.Command{})
	util.MustErrorNilOrExit(err)
}

// setupDomain adds the `domain` command group.
func (e *Eppctl) setupDomain() {
	cmd, err := e.parser.AddCommand("domain", "Domain object operations", "Check, fetch, create, renew, delete, update and transfer domains", &domain.Command{})
	util.MustErrorNilOrExit(err)

	_, err = cmd.AddCommand("check", "Check domain name availability", "Check one or more domain names for availability", &domain.CheckCommand{})
	util.MustErrorNilOrExit(err)
	_, err = cmd.AddCommand("info", "Show domain details", "Fetch full details for a domain", &domain.InfoCommand{})
	util.MustErrorNilOrExit(err)
	_, err = cmd.AddCommand("create", "Register a new domain", "Register a new domain", &domain.CreateCommand{})
	util.MustErrorNilOrExit(err)
	_, err = cmd.AddCommand("delete", "Delete a domain", "Delete a domain", &domain.DeleteCommand{})
	util.MustErrorNilOrExit(err)
	_, err = cmd.AddCommand("renew", "Renew a domain", "Extend a domain's registration period", &domain.RenewCommand{})
	util.MustErrorNilOrExit(err)
	_, err = cmd.AddCommand("update", "Update a domain", "Add, remove or change nameservers, contacts, statuses, registrant or auth info", &domain.UpdateCommand{})
	util.MustErrorNilOrExit(err)
	_, err = cmd.AddCommand("transfer", "Drive a domain transfer", "Query, request, cancel, approve or reject a domain transfer", &domain.TransferCommand{})
	util.MustErrorNilOrExit(err)
}

// setupHost adds the `host` command group.
func (e *Eppctl) setupHost() {
	cmd, err := e.parser.AddCommand("host", "Host object operations", "Check, fetch, create, delete and update host objects", &host.Command{})
	util.MustErrorNilOrExit(err)

	_, err = cmd.AddCommand("check", "Check host name availability", "Check one or more host names for availability", &host.CheckCommand{})
	util.MustErrorNilOrExit(err)
	_, err = cmd.AddCommand("info", "Show host details", "Fetch full details for a host object", &host.InfoCommand{})
	util.MustErrorNilOrExit(err)
	_, err = cmd.AddCommand("create", "Register a new host object", "Register a new host object", &host.CreateCommand{})
	util.MustErrorNilOrExit(err)
	_, err = cmd.AddCommand("delete", "Delete a host object", "Delete a host object", &host.DeleteCommand{})
	util.MustErrorNilOrExit(err)
	_, err = cmd.AddCommand("update", "Update a host object", "Add, remove or rename a host object", &host.UpdateCommand{})
	util.MustErrorNilOrExit(err)
}

// setupContact adds the `contact` command group.
func (e *Eppctl) setupContact() {
	cmd, err := e.parser.AddCommand("contact", "Contact object operations", "Check, fetch, create, delete and update contacts", &contact.Command{})
	util.MustErrorNilOrExit(err)

	_, err = cmd.AddCommand("check", "Check contact ID availability", "Check one or more contact IDs for availability", &contact.CheckCommand{})
	util.MustErrorNilOrExit(err)
	_, err = cmd.AddCommand("info", "Show contact details", "Fetch full details for a contact", &contact.InfoCommand{})
	util.MustErrorNilOrExit(err)
	_, err = cmd.AddCommand("create", "Register a new contact", "Register a new contact", &contact.CreateCommand{})
	util.MustErrorNilOrExit(err)
	_, err = cmd.AddCommand("delete", "Delete a contact", "Delete a contact", &contact.DeleteCommand{})
	util.MustErrorNilOrExit(err)
	_, err = cmd.AddCommand("update", "Update a contact", "Change a contact's email or auth info", &contact.UpdateCommand{})
	util.MustErrorNilOrExit(err)
}

// setupMessage adds the `message` command group.
func (e *Eppctl) setupMessage() {
	cmd, err := e.parser.AddCommand("message", "Queued message operations", "Poll and acknowledge registry-queued messages", &message.Command{})
	util.MustErrorNilOrExit(err)

	_, err = cmd.AddCommand("poll", "Poll the oldest queued message", "Fetch the oldest queued message without dequeuing it", &message.PollCommand{})
	util.MustErrorNilOrExit(err)
	_, err = cmd.AddCommand("ack", "Acknowledge a message", "Acknowledge and dequeue a previously polled message", &message.AckCommand{})
	util.MustErrorNilOrExit(err)
}

func main() {
	eppctl := NewEppctl()

	_, err := eppctl.parser.Parse()
	util.MustErrorNilOrExit(err)
}
