package schema

import "encoding/xml"

// Login is the <login> command body, sent once right after the greeting to
// authenticate and declare the object/extension namespaces this session
// will use. Both the object URI list and the extension URI list are
// populated from the greeting the server actually sent, not a constant, so a
// registry that drops or adds an object namespace doesn't break login.
type Login struct {
	XMLName  xml.Name       `xml:"login"`
	ClID     string         `xml:"clID"`
	Password string         `xml:"pw"`
	NewPW    string         `xml:"newPW,omitempty"`
	Options  loginOptions   `xml:"options"`
	Services loginServices  `xml:"svcs"`
}

func (Login) eppCommandBody() {}

type loginOptions struct {
	Version string `xml:"version"`
	Lang    string `xml:"lang"`
}

type loginServices struct {
	ObjURIs    []string            `xml:"objURI"`
	Extensions *loginSvcExtension `xml:"svcExtension,omitempty"`
}

type loginSvcExtension struct {
	ExtURIs []string `xml:"extURI"`
}

// DefaultObjURIs is the mapping object namespaces a client asks for by
// default: domain, host and contact. Client.Login intersects this list
// against what the greeting actually advertised before passing it here, so
// it is only the desired set, not necessarily the sent one.
var DefaultObjURIs = []string{XMLNSDomain, XMLNSHost, XMLNSContact}

// NewLogin builds a Login command requesting objURIs and extURIs, typically
// the subsets of a Greeting's advertised object and extension namespaces
// this client wants to use.
func NewLogin(username, password string, objURIs, extURIs []string) *Login {
	l := &Login{
		ClID:     username,
		Password: password,
		Options:  loginOptions{Version: "1.0", Lang: "en"},
		Services: loginServices{
			ObjURIs: objURIs,
		},
	}
	if len(extURIs) > 0 {
		l.Services.Extensions = &loginSvcExtension{ExtURIs: extURIs}
	}
	return l
}

// Logout is the <logout> command body. It carries no fields; ending a
// session is simply the act of sending it.
type Logout struct {
	XMLName xml.Name `xml:"logout"`
}

func (Logout) eppCommandBody() {}
