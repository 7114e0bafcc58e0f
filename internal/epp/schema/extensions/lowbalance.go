package extensions

import "encoding/xml"

const XMLNSLowBalance = "http://www.verisign.com/epp/lowbalance-poll-1.0"

// ThresholdType selects whether a LowBalance threshold is an absolute
// credit amount or a percentage of the registrar's credit limit.
type ThresholdType string

const (
	ThresholdFixed   ThresholdType = "FIXED"
	ThresholdPercent ThresholdType = "PERCENT"
)

// Threshold is the low-balance warning threshold that was crossed.
type Threshold struct {
	Type  ThresholdType `xml:"type,attr"`
	Value string        `xml:",chardata"`
}

// LowBalance is the Verisign low-balance poll extension, delivered
// unsolicited as a poll message when a registrar's prepaid balance with the
// registry drops below its configured threshold. It is never sent by the
// client, only ever decoded out of a poll response's extension, so its tags
// are bare local names: encoding/xml strips the registry's namespace prefix
// before tag matching.
type LowBalance struct {
	XMLName        xml.Name  `xml:"pollData"`
	RegistrarName  string    `xml:"registrarName"`
	CreditLimit    string    `xml:"creditLimit"`
	CreditThreshold Threshold `xml:"creditThreshold"`
	AvailableCredit string   `xml:"availableCredit"`
}
