package extensions

import (
	"encoding/xml"
	"fmt"

	"github.com/pkg/errors"
)

const XMLNSConsolidate = "http://www.verisign.com/epp/sync-1.0"

// GMonthDay is the xsd:gMonthDay value ("--MM-DD") the ConsoliDate
// extension uses to express a new annual expiration anniversary, without
// reference to a particular year.
type GMonthDay struct {
	Month int
	Day   int
}

func NewGMonthDay(month, day int) (GMonthDay, error) {
	if month < 1 || month > 12 {
		return GMonthDay{}, errors.Errorf("invalid month %d", month)
	}
	if day < 1 || day > 31 {
		return GMonthDay{}, errors.Errorf("invalid day %d", day)
	}
	return GMonthDay{Month: month, Day: day}, nil
}

func (g GMonthDay) String() string {
	return fmt.Sprintf("--%02d-%02d", g.Month, g.Day)
}

func (g GMonthDay) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(g.String(), start)
}

// Sync is the ConsoliDate extension, attached to a domain update command to
// move a domain's expiration date to a new month/day within the same year,
// consolidating renewal dates across a registrant's portfolio.
type Sync struct {
	XMLName xml.Name  `xml:"sync:update"`
	XMLNS   string    `xml:"xmlns:sync,attr"`
	ExDate  GMonthDay `xml:"sync:exDate"`
}

func (Sync) EPPExtensionBody() {}

// NewSync builds a Sync extension targeting the given month/day.
func NewSync(exDate GMonthDay) *Sync {
	return &Sync{XMLNS: XMLNSConsolidate, ExDate: exDate}
}
