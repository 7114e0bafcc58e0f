// Package extensions holds EPP extension XML bindings that layer additional
// semantics onto the base RFC 5730 commands: redemption grace period (RFC
// 3915), Verisign's namestore, consolidate and low-balance-poll extensions.
package extensions

import (
	"encoding/xml"

	"github.com/bokysan/eppclient/internal/epp/xmltypes"
)

const XMLNSRgp = "urn:ietf:params:xml:ns:rgp-1.0"

// RgpRestoreRequest is the <rgp:update><rgp:restore op="request"/> extension
// body attached to a domain update command, requesting a deleted domain be
// restored from the redemption grace period.
type RgpRestoreRequest struct {
	XMLName xml.Name        `xml:"rgp:update"`
	XMLNS   string          `xml:"xmlns:rgp,attr"`
	Restore rgpRestoreOp    `xml:"rgp:restore"`
}

func (RgpRestoreRequest) EPPExtensionBody() {}

type rgpRestoreOp struct {
	Op string `xml:"op,attr"`
}

// NewRgpRestoreRequest builds the extension body for step one of a restore:
// asking the registry to lift the redemption hold.
func NewRgpRestoreRequest() *RgpRestoreRequest {
	return &RgpRestoreRequest{XMLNS: XMLNSRgp, Restore: rgpRestoreOp{Op: "request"}}
}

// RgpRestoreReport is the <rgp:update><rgp:restore op="report"> extension
// body for step two of a restore: submitting the registrant's statement of
// why the domain should come back, required by most registries within a
// fixed window after the request.
type RgpRestoreReport struct {
	XMLName xml.Name           `xml:"rgp:update"`
	XMLNS   string             `xml:"xmlns:rgp,attr"`
	Restore rgpRestoreReportOp `xml:"rgp:restore"`
}

func (RgpRestoreReport) EPPExtensionBody() {}

type rgpRestoreReportOp struct {
	Op     string             `xml:"op,attr"`
	Report rgpRestoreReportBody `xml:"rgp:report"`
}

type rgpRestoreReportBody struct {
	PreData      string        `xml:"rgp:preData"`
	PostData     string        `xml:"rgp:postData"`
	DeletedAt    xmltypes.Time `xml:"rgp:delTime"`
	RestoredAt   xmltypes.Time `xml:"rgp:resTime"`
	RestoreReason string       `xml:"rgp:resReason"`
	Statements   []string      `xml:"rgp:statement"`
	Other        string        `xml:"rgp:other,omitempty"`
}

// NewRgpRestoreReport builds the extension body for step two of a restore.
func NewRgpRestoreReport(preData, postData string, deletedAt, restoredAt xmltypes.Time, reason string, statements []string, other string) *RgpRestoreReport {
	return &RgpRestoreReport{
		XMLNS: XMLNSRgp,
		Restore: rgpRestoreReportOp{
			Op: "report",
			Report: rgpRestoreReportBody{
				PreData:       preData,
				PostData:      postData,
				DeletedAt:     deletedAt,
				RestoredAt:    restoredAt,
				RestoreReason: reason,
				Statements:    statements,
				Other:         other,
			},
		},
	}
}

// RgpStatus is a single grace period status, e.g. "pendingDelete" or
// "redemptionPeriod".
type RgpStatus struct {
	Status string `xml:"s,attr"`
}

// RgpInfoData is the <rgp:infData> extension payload returned on a domain
// info response whenever the domain is in a grace period.
type RgpInfoData struct {
	XMLName  xml.Name    `xml:"infData"`
	Statuses []RgpStatus `xml:"rgpStatus"`
}

