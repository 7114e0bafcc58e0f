package schema

import (
	"encoding/xml"

	"github.com/bokysan/eppclient/internal/epp/xmltypes"
)

const xmlnsHostAttr = "xmlns:host,attr"

// HostCheck is the <check><host:check> command body.
type HostCheck struct {
	XMLName xml.Name     `xml:"check"`
	List    hostNameList `xml:"host:check"`
}

func (HostCheck) eppCommandBody() {}

type hostNameList struct {
	XMLNSHost string   `xml:"xmlns:host,attr"`
	Names     []string `xml:"host:name"`
}

func NewHostCheck(names ...string) *HostCheck {
	return &HostCheck{List: hostNameList{XMLNSHost: XMLNSHost, Names: names}}
}

// HostCheckResult reports a single host's availability. Decode-only: the
// registry's namespace prefix is stripped before tag matching, so these are
// bare local names rather than the colon-literal form request types use.
type HostCheckResult struct {
	Name   HostCheckName `xml:"name"`
	Reason string        `xml:"reason"`
}

// HostCheckName pairs the queried name with its availability flag.
type HostCheckName struct {
	Name      string `xml:",chardata"`
	Available bool   `xml:"avail,attr"`
}

// HostCheckData is the <host:chkData> resData payload.
type HostCheckData struct {
	XMLName xml.Name          `xml:"chkData"`
	Checks  []HostCheckResult `xml:"cd"`
}


// HostInfo is the <info><host:info> command body.
type HostInfo struct {
	XMLName xml.Name   `xml:"info"`
	Data    hostNameOnly `xml:"host:info"`
}

func (HostInfo) eppCommandBody() {}

type hostNameOnly struct {
	XMLNSHost string `xml:"xmlns:host,attr"`
	Name      string `xml:"host:name"`
}

func NewHostInfo(name string) *HostInfo {
	return &HostInfo{Data: hostNameOnly{XMLNSHost: XMLNSHost, Name: name}}
}

// HostStatus is one RFC 5732 host status value.
type HostStatus struct {
	Status string `xml:"s,attr"`
}

// HostInfoData is the <host:infData> resData payload.
type HostInfoData struct {
	XMLName       xml.Name         `xml:"infData"`
	Name          string           `xml:"name"`
	ROID          string           `xml:"roid"`
	Statuses      []HostStatus     `xml:"status"`
	Addresses     []HostAddr       `xml:"addr"`
	ClID          string           `xml:"clID"`
	CrID          string           `xml:"crID,omitempty"`
	CreatedAt     *xmltypes.Time   `xml:"crDate"`
	UpID          string           `xml:"upID,omitempty"`
	UpdatedAt     *xmltypes.Time   `xml:"upDate"`
	TransferredAt *xmltypes.Time   `xml:"trDate"`
}


// HostCreate is the <create><host:create> command body.
type HostCreate struct {
	XMLName xml.Name     `xml:"create"`
	Data    hostCreateIn `xml:"host:create"`
}

func (HostCreate) eppCommandBody() {}

type hostCreateIn struct {
	XMLNSHost string     `xml:"xmlns:host,attr"`
	Name      string     `xml:"host:name"`
	Addresses []HostAddr `xml:"host:addr"`
}

func NewHostCreate(name string, addresses ...HostAddr) *HostCreate {
	return &HostCreate{Data: hostCreateIn{XMLNSHost: XMLNSHost, Name: name, Addresses: addresses}}
}

// HostCreateData is the <host:creData> resData payload.
type HostCreateData struct {
	XMLName   xml.Name      `xml:"creData"`
	Name      string        `xml:"name"`
	CreatedAt xmltypes.Time `xml:"crDate"`
}


// HostDelete is the <delete><host:delete> command body.
type HostDelete struct {
	XMLName xml.Name     `xml:"delete"`
	Data    hostNameOnly `xml:"host:delete"`
}

func (HostDelete) eppCommandBody() {}

func NewHostDelete(name string) *HostDelete {
	return &HostDelete{Data: hostNameOnly{XMLNSHost: XMLNSHost, Name: name}}
}

// HostUpdate is the <update><host:update> command body.
type HostUpdate struct {
	XMLName xml.Name     `xml:"update"`
	Data    hostUpdateIn `xml:"host:update"`
}

func (HostUpdate) eppCommandBody() {}

type hostUpdateIn struct {
	XMLNSHost string         `xml:"xmlns:host,attr"`
	Name      string         `xml:"host:name"`
	Add       *HostAddRemove `xml:"host:add"`
	Remove    *HostAddRemove `xml:"host:rem"`
	Rename    string         `xml:"host:chg>host:name,omitempty"`
}

// HostAddRemove lists addresses and statuses to add or remove.
type HostAddRemove struct {
	Addresses []HostAddr   `xml:"host:addr"`
	Statuses  []HostStatus `xml:"host:status"`
}

func NewHostUpdate(name string, add, remove *HostAddRemove, rename string) *HostUpdate {
	return &HostUpdate{Data: hostUpdateIn{
		XMLNSHost: XMLNSHost,
		Name:      name,
		Add:       add,
		Remove:    remove,
		Rename:    rename,
	}}
}
