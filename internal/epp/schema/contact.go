package schema

import (
	"encoding/xml"

	"github.com/bokysan/eppclient/internal/epp/xmltypes"
)

// ContactCheck is the <check><contact:check> command body.
type ContactCheck struct {
	XMLName xml.Name        `xml:"check"`
	List    contactIDList   `xml:"contact:check"`
}

func (ContactCheck) eppCommandBody() {}

type contactIDList struct {
	XMLNSContact string   `xml:"xmlns:contact,attr"`
	IDs          []string `xml:"contact:id"`
}

func NewContactCheck(ids ...string) *ContactCheck {
	return &ContactCheck{List: contactIDList{XMLNSContact: XMLNSContact, IDs: ids}}
}

// ContactCheckResult reports a single contact ID's availability.
// Decode-only: the registry's namespace prefix is stripped before tag
// matching, so these are bare local names rather than the colon-literal
// form request types use.
type ContactCheckResult struct {
	ID     ContactCheckID `xml:"id"`
	Reason string         `xml:"reason"`
}

// ContactCheckID pairs the queried ID with its availability flag.
type ContactCheckID struct {
	ID        string `xml:",chardata"`
	Available bool   `xml:"avail,attr"`
}

// ContactCheckData is the <contact:chkData> resData payload.
type ContactCheckData struct {
	XMLName xml.Name              `xml:"chkData"`
	Checks  []ContactCheckResult  `xml:"cd"`
}


// Phone is a voice or fax number with an optional extension.
type Phone struct {
	Number    string `xml:",chardata"`
	Extension string `xml:"x,attr,omitempty"`
}

// Address is a postal address. Request-marshal-only; see AddressData for
// the decode-side counterpart.
type Address struct {
	Street     []string `xml:"contact:street,omitempty"`
	City       string   `xml:"contact:city"`
	Province   string   `xml:"contact:sp,omitempty"`
	PostalCode string   `xml:"contact:pc,omitempty"`
	Country    string   `xml:"contact:cc"`
}

// PostalInfo carries a contact's name, organization and address in either
// the internationalized ("int") or localized ("loc") form.
// Request-marshal-only; see PostalInfoData for the decode-side counterpart.
type PostalInfo struct {
	Type         string  `xml:"type,attr"`
	Name         string  `xml:"contact:name"`
	Organization string  `xml:"contact:org,omitempty"`
	Address      Address `xml:"contact:addr"`
}

// ContactAuthInfo carries a contact's transfer/auth password.
// Request-marshal-only; see ContactAuthInfoData for the decode-side
// counterpart.
type ContactAuthInfo struct {
	Password string `xml:"contact:pw"`
}

// AddressData is the decode-side counterpart of Address: encoding/xml
// strips the registry's namespace prefix before tag matching, so these are
// bare local names.
type AddressData struct {
	Street     []string `xml:"street,omitempty"`
	City       string   `xml:"city"`
	Province   string   `xml:"sp,omitempty"`
	PostalCode string   `xml:"pc,omitempty"`
	Country    string   `xml:"cc"`
}

// PostalInfoData is the decode-side counterpart of PostalInfo.
type PostalInfoData struct {
	Type         string      `xml:"type,attr"`
	Name         string      `xml:"name"`
	Organization string      `xml:"org,omitempty"`
	Address      AddressData `xml:"addr"`
}

// ContactAuthInfoData is the decode-side counterpart of ContactAuthInfo.
type ContactAuthInfoData struct {
	Password string `xml:"pw"`
}

// ContactCreate is the <create><contact:create> command body.
type ContactCreate struct {
	XMLName xml.Name        `xml:"create"`
	Data    contactCreateIn `xml:"contact:create"`
}

func (ContactCreate) eppCommandBody() {}

type contactCreateIn struct {
	XMLNSContact string           `xml:"xmlns:contact,attr"`
	ID           string           `xml:"contact:id"`
	PostalInfo   []PostalInfo     `xml:"contact:postalInfo"`
	Voice        *Phone           `xml:"contact:voice"`
	Fax          *Phone           `xml:"contact:fax"`
	Email        string           `xml:"contact:email"`
	AuthInfo     ContactAuthInfo  `xml:"contact:authInfo"`
}

func NewContactCreate(id string, postalInfo []PostalInfo, voice, fax *Phone, email, authInfoPW string) *ContactCreate {
	return &ContactCreate{Data: contactCreateIn{
		XMLNSContact: XMLNSContact,
		ID:           id,
		PostalInfo:   postalInfo,
		Voice:        voice,
		Fax:          fax,
		Email:        email,
		AuthInfo:     ContactAuthInfo{Password: authInfoPW},
	}}
}

// ContactCreateData is the <contact:creData> resData payload.
type ContactCreateData struct {
	XMLName   xml.Name      `xml:"creData"`
	ID        string        `xml:"id"`
	CreatedAt xmltypes.Time `xml:"crDate"`
}


// ContactInfo is the <info><contact:info> command body.
type ContactInfo struct {
	XMLName xml.Name      `xml:"info"`
	Data    contactInfoIn `xml:"contact:info"`
}

func (ContactInfo) eppCommandBody() {}

type contactInfoIn struct {
	XMLNSContact string           `xml:"xmlns:contact,attr"`
	ID           string           `xml:"contact:id"`
	AuthInfo     *ContactAuthInfo `xml:"contact:authInfo"`
}

func NewContactInfo(id string, authInfo *ContactAuthInfo) *ContactInfo {
	return &ContactInfo{Data: contactInfoIn{XMLNSContact: XMLNSContact, ID: id, AuthInfo: authInfo}}
}

// ContactStatus is one RFC 5733 contact status value.
type ContactStatus struct {
	Status string `xml:"s,attr"`
}

// ContactInfoData is the <contact:infData> resData payload.
type ContactInfoData struct {
	XMLName       xml.Name        `xml:"infData"`
	ID            string          `xml:"id"`
	ROID          string          `xml:"roid"`
	Statuses      []ContactStatus     `xml:"status"`
	PostalInfo    []PostalInfoData    `xml:"postalInfo"`
	Voice         *Phone              `xml:"voice"`
	Fax           *Phone              `xml:"fax"`
	Email         string              `xml:"email"`
	ClID          string              `xml:"clID"`
	CrID          string              `xml:"crID,omitempty"`
	CreatedAt     *xmltypes.Time      `xml:"crDate"`
	UpID          string              `xml:"upID,omitempty"`
	UpdatedAt     *xmltypes.Time      `xml:"upDate"`
	TransferredAt *xmltypes.Time      `xml:"trDate"`
	AuthInfo      *ContactAuthInfoData `xml:"authInfo"`
}


// ContactDelete is the <delete><contact:delete> command body.
type ContactDelete struct {
	XMLName xml.Name   `xml:"delete"`
	Data    contactIDOnly `xml:"contact:delete"`
}

func (ContactDelete) eppCommandBody() {}

type contactIDOnly struct {
	XMLNSContact string `xml:"xmlns:contact,attr"`
	ID           string `xml:"contact:id"`
}

func NewContactDelete(id string) *ContactDelete {
	return &ContactDelete{Data: contactIDOnly{XMLNSContact: XMLNSContact, ID: id}}
}

// ContactUpdate is the <update><contact:update> command body.
type ContactUpdate struct {
	XMLName xml.Name        `xml:"update"`
	Data    contactUpdateIn `xml:"contact:update"`
}

func (ContactUpdate) eppCommandBody() {}

type contactUpdateIn struct {
	XMLNSContact string               `xml:"xmlns:contact,attr"`
	ID           string               `xml:"contact:id"`
	Add          *ContactStatusList   `xml:"contact:add"`
	Remove       *ContactStatusList   `xml:"contact:rem"`
	Change       *ContactChange       `xml:"contact:chg"`
}

// ContactStatusList wraps a bare list of contact statuses for add/rem.
type ContactStatusList struct {
	Statuses []ContactStatus `xml:"contact:status"`
}

// ContactChange carries the fields a contact update may replace.
type ContactChange struct {
	PostalInfo *PostalInfo      `xml:"contact:postalInfo"`
	Voice      *Phone           `xml:"contact:voice"`
	Fax        *Phone           `xml:"contact:fax"`
	Email      string           `xml:"contact:email,omitempty"`
	AuthInfo   *ContactAuthInfo `xml:"contact:authInfo"`
}

func NewContactUpdate(id string, add, remove *ContactStatusList, change *ContactChange) *ContactUpdate {
	return &ContactUpdate{Data: contactUpdateIn{
		XMLNSContact: XMLNSContact,
		ID:           id,
		Add:          add,
		Remove:       remove,
		Change:       change,
	}}
}
