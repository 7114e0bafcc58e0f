package schema

import "github.com/bokysan/eppclient/internal/epp/xmltypes"

// Greeting is the server's opening frame, sent unsolicited right after TLS
// handshake and again in response to a <hello/>. ServiceMenu lists what the
// server actually supports; Login should only request object URIs and
// extension URIs that appear here.
type Greeting struct {
	ServiceID   string        `xml:"svID"`
	ServiceDate xmltypes.Time `xml:"svDate"`
	ServiceMenu ServiceMenu   `xml:"svcMenu"`
	Dcp         *rawInner     `xml:"dcp"`
}

// ServiceMenu enumerates the protocol versions, languages, object
// namespaces and extension namespaces a server advertises.
type ServiceMenu struct {
	Versions   []string        `xml:"version"`
	Languages  []string        `xml:"lang"`
	ObjURIs    []string        `xml:"objURI"`
	Extensions *ServiceExtURIs `xml:"svcExtension"`
}

// ServiceExtURIs is the <svcExtension> child listing supported extension
// namespaces, e.g. RGP or Namestore.
type ServiceExtURIs struct {
	ExtURIs []string `xml:"extURI"`
}

// Supports reports whether the server advertised the given object namespace
// in its service menu.
func (s ServiceMenu) Supports(objURI string) bool {
	for _, u := range s.ObjURIs {
		if u == objURI {
			return true
		}
	}
	return false
}

// SupportsExtension reports whether the server advertised the given
// extension namespace.
func (s ServiceMenu) SupportsExtension(extURI string) bool {
	if s.Extensions == nil {
		return false
	}
	for _, u := range s.Extensions.ExtURIs {
		if u == extURI {
			return true
		}
	}
	return false
}
