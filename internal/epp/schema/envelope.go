// Package schema is the EPP XML binding catalog: request/response structs for
// every command this client supports, plus the envelope, greeting and result
// types shared by all of them. Every exported type mirrors exactly one XML
// shape from RFC 5730/5731/5732/5733 or one of the Verisign extensions; there
// is no dispatch-by-string anywhere in the package, only typed structs.
package schema

import (
	"bytes"
	"encoding/xml"

	"github.com/pkg/errors"
)

const (
	XMLNSEpp     = "urn:ietf:params:xml:ns:epp-1.0"
	XMLNSXSI     = "http://www.w3.org/2001/XMLSchema-instance"
	XMLNSDomain  = "urn:ietf:params:xml:ns:domain-1.0"
	XMLNSHost    = "urn:ietf:params:xml:ns:host-1.0"
	XMLNSContact = "urn:ietf:params:xml:ns:contact-1.0"
)

// CommandBody is implemented by every <command> payload type (check, info,
// create, update, delete, renew, transfer, login, logout, poll). It is a
// sealed set: the marker method has no behavior, it only prevents arbitrary
// types from being passed to Envelope.
type CommandBody interface {
	eppCommandBody()
}

// ExtensionBody is implemented by every <extension> payload type understood
// by this client (RGP, Namestore, ConsoliDate, low-balance). It is exported
// so that the extensions subpackage, which lives outside this package, can
// satisfy it too. A caller may also pass nil when no extension applies.
type ExtensionBody interface {
	EPPExtensionBody()
}

// Envelope wraps a single command body, an optional extension and the client
// transaction ID into the <epp><command>...</command></epp> document sent on
// the wire. It marshals itself manually, mirroring the field order the
// original client's hand-written serializer used, rather than relying on
// struct-tag ordering of a generic container.
type Envelope struct {
	Command   CommandBody
	Extension ExtensionBody
	ClTRID    string
}

func (e *Envelope) MarshalXML(enc *xml.Encoder, _ xml.StartElement) error {
	eppStart := xml.StartElement{
		Name: xml.Name{Local: "epp"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "xmlns"}, Value: XMLNSEpp},
			{Name: xml.Name{Local: "xmlns:xsi"}, Value: XMLNSXSI},
			{Name: xml.Name{Local: "xsi:schemaLocation"}, Value: XMLNSEpp + " epp-1.0.xsd"},
		},
	}
	if err := enc.EncodeToken(eppStart); err != nil {
		return err
	}

	cmdStart := xml.StartElement{Name: xml.Name{Local: "command"}}
	if err := enc.EncodeToken(cmdStart); err != nil {
		return err
	}
	if err := enc.Encode(e.Command); err != nil {
		return errors.Wrap(err, "could not encode command body")
	}
	if e.Extension != nil {
		extStart := xml.StartElement{Name: xml.Name{Local: "extension"}}
		if err := enc.EncodeToken(extStart); err != nil {
			return err
		}
		if err := enc.Encode(e.Extension); err != nil {
			return errors.Wrap(err, "could not encode extension body")
		}
		if err := enc.EncodeToken(extStart.End()); err != nil {
			return err
		}
	}
	if e.ClTRID != "" {
		if err := enc.EncodeElement(e.ClTRID, xml.StartElement{Name: xml.Name{Local: "clTRID"}}); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(cmdStart.End()); err != nil {
		return err
	}
	if err := enc.EncodeToken(eppStart.End()); err != nil {
		return err
	}
	return enc.Flush()
}

// Marshal serializes the envelope to a standalone XML document, including
// the leading <?xml?> processing instruction EPP servers expect.
func (e *Envelope) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	if err := enc.Encode(e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// helloDocument is the literal request sent to check server liveness or
// request a fresh greeting. It carries no fields, so it is written directly
// rather than routed through Envelope.
const helloDocument = xml.Header + `<epp xmlns="` + XMLNSEpp + `"><hello/></epp>`

// MarshalHello returns the wire bytes for a <hello/> request.
func MarshalHello() []byte {
	return []byte(helloDocument)
}

// document is the generic decoding target for any frame received from the
// server: either a <greeting> (on connect) or a <response> (after a
// command). Exactly one of the two pointers will be non-nil after decoding.
type document struct {
	XMLName  xml.Name  `xml:"epp"`
	Greeting *Greeting `xml:"greeting"`
	Response *Response `xml:"response"`
}

// DecodeFrame parses one length-delimited EPP frame's payload. It returns
// the greeting or the response, whichever is present; exactly one of the two
// return values is non-nil on success.
func DecodeFrame(frame []byte) (*Greeting, *Response, error) {
	var doc document
	if err := xml.Unmarshal(frame, &doc); err != nil {
		return nil, nil, errors.Wrap(err, "could not decode EPP frame")
	}
	if doc.Greeting == nil && doc.Response == nil {
		return nil, nil, errors.New("EPP frame contained neither a greeting nor a response")
	}
	return doc.Greeting, doc.Response, nil
}
