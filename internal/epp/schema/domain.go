package schema

import (
	"encoding/xml"

	"github.com/bokysan/eppclient/internal/epp/xmltypes"
)

// --- check -----------------------------------------------------------------

// DomainCheck is the <check><domain:check> command body for checking
// availability of one or more domain names in a single round trip.
type DomainCheck struct {
	XMLName xml.Name       `xml:"check"`
	List    domainNameList `xml:"domain:check"`
}

func (DomainCheck) eppCommandBody() {}

type domainNameList struct {
	XMLNSDomain string   `xml:"xmlns:domain,attr"`
	Names       []string `xml:"domain:name"`
}

// NewDomainCheck builds a DomainCheck command for the given domain names.
func NewDomainCheck(names ...string) *DomainCheck {
	return &DomainCheck{List: domainNameList{XMLNSDomain: XMLNSDomain, Names: names}}
}

// DomainCheckResult reports a single domain's availability and, when
// unavailable, the reason given by the registry. It is decode-only: the
// registry's namespace prefix is stripped by encoding/xml before matching,
// so its tags are bare local names rather than the colon-literal form the
// request-side types use.
type DomainCheckResult struct {
	Name      DomainCheckName `xml:"name"`
	Reason    string          `xml:"reason"`
}

// DomainCheckName pairs the queried name with its availability flag.
type DomainCheckName struct {
	Name      string `xml:",chardata"`
	Available bool   `xml:"avail,attr"`
}

// DomainCheckData is the <domain:chkData> resData payload.
type DomainCheckData struct {
	XMLName xml.Name            `xml:"chkData"`
	Checks  []DomainCheckResult `xml:"cd"`
}


// --- info --------------------------------------------------------------

// DomainInfo is the <info><domain:info> command body.
type DomainInfo struct {
	XMLName xml.Name     `xml:"info"`
	Data    domainInfoIn `xml:"domain:info"`
}

func (DomainInfo) eppCommandBody() {}

type domainInfoIn struct {
	XMLNSDomain string          `xml:"xmlns:domain,attr"`
	Name        domainInfoName  `xml:"domain:name"`
	AuthInfo    *DomainAuthInfo `xml:"domain:authInfo"`
}

// domainInfoName is the <domain:name hosts="all|del|sub|none"> element RFC
// 5731 requires on an info request, selecting which delegated hosts the
// response should include.
type domainInfoName struct {
	Hosts string `xml:"hosts,attr"`
	Name  string `xml:",chardata"`
}

// DefaultInfoHosts is the hosts scope NewDomainInfo sends when the caller
// doesn't need a narrower one: report every associated host.
const DefaultInfoHosts = "all"

// NewDomainInfo builds a DomainInfo command for the given name, optionally
// supplying auth info to reveal registrant-restricted fields. hosts selects
// which delegated hosts the registry should report back ("all", "del",
// "sub" or "none"); pass "" to get DefaultInfoHosts.
func NewDomainInfo(name string, hosts string, authInfo *DomainAuthInfo) *DomainInfo {
	if hosts == "" {
		hosts = DefaultInfoHosts
	}
	return &DomainInfo{Data: domainInfoIn{
		XMLNSDomain: XMLNSDomain,
		Name:        domainInfoName{Hosts: hosts, Name: name},
		AuthInfo:    authInfo,
	}}
}

// DomainAuthInfo carries the domain's transfer/auth password. It is
// request-marshal-only: encoding/xml never resolves the "domain:" prefix on
// decode, so a response payload is decoded into DomainAuthInfoData instead.
type DomainAuthInfo struct {
	Password string `xml:"domain:pw"`
}

// DomainAuthInfoData is the decode-side counterpart of DomainAuthInfo, used
// wherever a response echoes back auth info (e.g. domain:infData).
type DomainAuthInfoData struct {
	Password string `xml:"pw"`
}

// DomainNameservers is the <domain:ns> element, holding either a plain list
// of host object references or a list of host attribute bundles (name plus
// inline addresses), never both. Request-marshal-only; see
// DomainNameserversData for the decode-side counterpart.
type DomainNameservers struct {
	HostObj  []string       `xml:"domain:hostObj"`
	HostAttr []HostAttr     `xml:"domain:hostAttr"`
}

// HostAttr names a nameserver inline, with optional glue addresses, instead
// of referencing a previously created host object. Request-marshal-only.
type HostAttr struct {
	Name      string     `xml:"domain:hostName"`
	Addresses []HostAddr `xml:"domain:hostAddr"`
}

// DomainNameserversData is the decode-side counterpart of
// DomainNameservers, used for the <ns> child of a domain:infData response.
type DomainNameserversData struct {
	HostObj  []string       `xml:"hostObj"`
	HostAttr []HostAttrData `xml:"hostAttr"`
}

// HostAttrData is the decode-side counterpart of HostAttr.
type HostAttrData struct {
	Name      string     `xml:"hostName"`
	Addresses []HostAddr `xml:"hostAddr"`
}

// HostAddr is a single glue IPv4/IPv6 address.
type HostAddr struct {
	IP      string `xml:",chardata"`
	Version string `xml:"ip,attr,omitempty"`
}

func NewHostAddrV4(ip string) HostAddr { return HostAddr{IP: ip, Version: "v4"} }
func NewHostAddrV6(ip string) HostAddr { return HostAddr{IP: ip, Version: "v6"} }

// DomainContact references a contact object in a particular role
// (registrant, admin, tech, billing).
type DomainContact struct {
	ID   string `xml:",chardata"`
	Type string `xml:"type,attr"`
}

// DomainInfoData is the <domain:infData> resData payload.
type DomainInfoData struct {
	XMLName      xml.Name           `xml:"infData"`
	Name         string             `xml:"name"`
	ROID         string             `xml:"roid"`
	Statuses     []DomainStatus     `xml:"status"`
	Registrant   string                 `xml:"registrant,omitempty"`
	Contacts     []DomainContact        `xml:"contact"`
	Nameservers  *DomainNameserversData `xml:"ns"`
	Hosts        []string               `xml:"host"`
	ClID         string                 `xml:"clID"`
	CrID         string                 `xml:"crID,omitempty"`
	CreatedAt    *xmltypes.Time         `xml:"crDate"`
	UpID         string                 `xml:"upID,omitempty"`
	UpdatedAt    *xmltypes.Time         `xml:"upDate"`
	ExpiringAt   *xmltypes.Time         `xml:"exDate"`
	TransferredAt *xmltypes.Time        `xml:"trDate"`
	AuthInfo     *DomainAuthInfoData    `xml:"authInfo"`
}


// DomainStatus is one RFC 5731 status value, e.g. "clientTransferProhibited".
type DomainStatus struct {
	Status string `xml:"s,attr"`
}

// --- create ----------------------------------------------------------------

// DomainCreate is the <create><domain:create> command body.
type DomainCreate struct {
	XMLName xml.Name       `xml:"create"`
	Data    domainCreateIn `xml:"domain:create"`
}

func (DomainCreate) eppCommandBody() {}

type domainCreateIn struct {
	XMLNSDomain string             `xml:"xmlns:domain,attr"`
	Name        string             `xml:"domain:name"`
	Period      *xmltypes.Period   `xml:"domain:period"`
	Nameservers *DomainNameservers `xml:"domain:ns"`
	Registrant  string             `xml:"domain:registrant,omitempty"`
	Contacts    []DomainContact    `xml:"domain:contact"`
	AuthInfo    DomainAuthInfo     `xml:"domain:authInfo"`
}

// NewDomainCreate builds a DomainCreate command. ns and registrant/contacts
// may be nil/empty where the registry auto-derives them or does not require
// them (some TLDs forbid a registrant element entirely).
func NewDomainCreate(name string, period *xmltypes.Period, ns *DomainNameservers, registrant string, contacts []DomainContact, authInfoPW string) *DomainCreate {
	return &DomainCreate{Data: domainCreateIn{
		XMLNSDomain: XMLNSDomain,
		Name:        name,
		Period:      period,
		Nameservers: ns,
		Registrant:  registrant,
		Contacts:    contacts,
		AuthInfo:    DomainAuthInfo{Password: authInfoPW},
	}}
}

// DomainCreateData is the <domain:creData> resData payload.
type DomainCreateData struct {
	XMLName    xml.Name      `xml:"creData"`
	Name       string        `xml:"name"`
	CreatedAt  xmltypes.Time `xml:"crDate"`
	ExpiringAt xmltypes.Time `xml:"exDate"`
}


// --- delete ------------------------------------------------------------

// DomainDelete is the <delete><domain:delete> command body.
type DomainDelete struct {
	XMLName xml.Name `xml:"delete"`
	Data    domainNameOnly `xml:"domain:delete"`
}

func (DomainDelete) eppCommandBody() {}

type domainNameOnly struct {
	XMLNSDomain string `xml:"xmlns:domain,attr"`
	Name        string `xml:"domain:name"`
}

func NewDomainDelete(name string) *DomainDelete {
	return &DomainDelete{Data: domainNameOnly{XMLNSDomain: XMLNSDomain, Name: name}}
}

// --- renew ---------------------------------------------------------------

// DomainRenew is the <renew><domain:renew> command body.
type DomainRenew struct {
	XMLName xml.Name      `xml:"renew"`
	Data    domainRenewIn `xml:"domain:renew"`
}

func (DomainRenew) eppCommandBody() {}

type domainRenewIn struct {
	XMLNSDomain      string           `xml:"xmlns:domain,attr"`
	Name             string           `xml:"domain:name"`
	CurrentExpiresAt xmltypes.Time    `xml:"domain:curExpDate"`
	Period           *xmltypes.Period `xml:"domain:period"`
}

func NewDomainRenew(name string, currentExpiresAt xmltypes.Time, period *xmltypes.Period) *DomainRenew {
	return &DomainRenew{Data: domainRenewIn{
		XMLNSDomain:      XMLNSDomain,
		Name:             name,
		CurrentExpiresAt: currentExpiresAt,
		Period:           period,
	}}
}

// DomainRenewData is the <domain:renData> resData payload.
type DomainRenewData struct {
	XMLName    xml.Name      `xml:"renData"`
	Name       string        `xml:"name"`
	ExpiringAt xmltypes.Time `xml:"exDate"`
}


// --- update --------------------------------------------------------------

// DomainUpdate is the <update><domain:update> command body.
type DomainUpdate struct {
	XMLName xml.Name       `xml:"update"`
	Data    domainUpdateIn `xml:"domain:update"`
}

func (DomainUpdate) eppCommandBody() {}

type domainUpdateIn struct {
	XMLNSDomain string           `xml:"xmlns:domain,attr"`
	Name        string           `xml:"domain:name"`
	Add         *DomainAddRemove `xml:"domain:add"`
	Remove      *DomainAddRemove `xml:"domain:rem"`
	Change      *DomainChange    `xml:"domain:chg"`
}

// DomainAddRemove lists nameservers, contacts and statuses to add or remove
// in a single update command.
type DomainAddRemove struct {
	Nameservers *DomainNameservers `xml:"domain:ns"`
	Contacts    []DomainContact    `xml:"domain:contact"`
	Statuses    []DomainStatus     `xml:"domain:status"`
}

// DomainChange carries the registrant and/or auth info replacement for an
// update command.
type DomainChange struct {
	Registrant string          `xml:"domain:registrant,omitempty"`
	AuthInfo   *DomainAuthInfo `xml:"domain:authInfo"`
}

func NewDomainUpdate(name string, add, remove *DomainAddRemove, change *DomainChange) *DomainUpdate {
	return &DomainUpdate{Data: domainUpdateIn{
		XMLNSDomain: XMLNSDomain,
		Name:        name,
		Add:         add,
		Remove:      remove,
		Change:      change,
	}}
}

// --- transfer ------------------------------------------------------------

// DomainTransferOp selects the sub-operation of a transfer command: query,
// request, cancel, approve or reject.
type DomainTransferOp string

const (
	TransferQuery   DomainTransferOp = "query"
	TransferRequest DomainTransferOp = "request"
	TransferCancel  DomainTransferOp = "cancel"
	TransferApprove DomainTransferOp = "approve"
	TransferReject  DomainTransferOp = "reject"
)

// DomainTransfer is the <transfer op="..."><domain:transfer> command body.
type DomainTransfer struct {
	XMLName xml.Name             `xml:"transfer"`
	Op      DomainTransferOp     `xml:"op,attr"`
	Data    domainTransferIn     `xml:"domain:transfer"`
}

func (DomainTransfer) eppCommandBody() {}

type domainTransferIn struct {
	XMLNSDomain string           `xml:"xmlns:domain,attr"`
	Name        string           `xml:"domain:name"`
	Period      *xmltypes.Period `xml:"domain:period"`
	AuthInfo    *DomainAuthInfo  `xml:"domain:authInfo"`
}

func NewDomainTransfer(op DomainTransferOp, name string, period *xmltypes.Period, authInfo *DomainAuthInfo) *DomainTransfer {
	return &DomainTransfer{Op: op, Data: domainTransferIn{
		XMLNSDomain: XMLNSDomain,
		Name:        name,
		Period:      period,
		AuthInfo:    authInfo,
	}}
}

// DomainTransferData is the <domain:trnData> resData payload.
type DomainTransferData struct {
	XMLName       xml.Name      `xml:"trnData"`
	Name          string        `xml:"name"`
	TransferStatus string       `xml:"trStatus"`
	RequesterID   string        `xml:"reID"`
	RequestedAt   xmltypes.Time `xml:"reDate"`
	AckID         string        `xml:"acID"`
	AckBy         xmltypes.Time `xml:"acDate"`
	ExpiringAt    *xmltypes.Time `xml:"exDate"`
}

