// Package xmltypes holds small value types used across the schema catalog
// that need custom XML marshaling: EPP timestamps and registration periods.
package xmltypes

import (
	"encoding/xml"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// eppTimeLayout is the xsd:dateTime format EPP servers expect and emit.
const eppTimeLayout = "2006-01-02T15:04:05.0Z07:00"

// Time wraps time.Time so it can be marshaled/unmarshaled as EPP's
// xsd:dateTime element text instead of Go's default RFC3339Nano.
type Time struct {
	time.Time
}

func NewTime(t time.Time) Time {
	return Time{Time: t}
}

func (t Time) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(t.Time.UTC().Format(eppTimeLayout), start)
}

func (t *Time) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	parsed, err := parseEppTime(s)
	if err != nil {
		return errors.Wrapf(err, "could not parse EPP timestamp %q", s)
	}
	t.Time = parsed
	return nil
}

func parseEppTime(s string) (time.Time, error) {
	for _, layout := range []string{eppTimeLayout, time.RFC3339, time.RFC3339Nano} {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, errors.Errorf("unrecognized timestamp format: %s", s)
}

// ParseTime parses s using the same layouts accepted when decoding an EPP
// response, for callers (e.g. the CLI) that need to build a Time from
// user-supplied input rather than from the wire.
func ParseTime(s string) (Time, error) {
	t, err := parseEppTime(s)
	if err != nil {
		return Time{}, err
	}
	return Time{Time: t}, nil
}

// PeriodUnit is the registration period unit, either years ("y") or months ("m").
type PeriodUnit string

const (
	PeriodYears  PeriodUnit = "y"
	PeriodMonths PeriodUnit = "m"
)

// Period is a domain registration or renewal period, e.g. <period unit="y">2</period>.
type Period struct {
	Unit   PeriodUnit `xml:"unit,attr"`
	Length int        `xml:"chardata"`
}

func NewPeriod(length int) *Period {
	return &Period{Unit: PeriodYears, Length: length}
}

func (p Period) WithUnit(unit PeriodUnit) Period {
	p.Unit = unit
	return p
}

func (p Period) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "unit"}, Value: string(p.Unit)})
	return e.EncodeElement(strconv.Itoa(p.Length), start)
}

func (p *Period) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		if attr.Name.Local == "unit" {
			p.Unit = PeriodUnit(attr.Value)
		}
	}
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.Wrapf(err, "invalid period length %q", s)
	}
	p.Length = n
	return nil
}
