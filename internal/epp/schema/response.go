package schema

import (
	"encoding/xml"

	"github.com/bokysan/eppclient/internal/epp/xmltypes"
	"github.com/pkg/errors"
)

// ResultSuccessThreshold is the upper bound (inclusive) of a result code
// range that counts as success, per RFC 5730 section 3: codes 1000-1999 are
// success, 2000 and above are failure.
const ResultSuccessThreshold = 1999

// Result is one <result code="..."> entry. A response always carries at
// least one and may carry several; a batched domain:check still answers
// with a single result and reports each queried name in its resData.
type Result struct {
	Code     int        `xml:"code,attr"`
	Message  string     `xml:"msg"`
	Values   []rawInner `xml:"value"`
	ExtValue []ExtValue `xml:"extValue"`
}

// Success reports whether this individual result code indicates success.
func (r Result) Success() bool {
	return r.Code >= 1000 && r.Code <= ResultSuccessThreshold
}

// ExtValue carries the echoed offending XML fragment and a human-readable
// reason for a failed result, as described in RFC 5730 section 2.6.
type ExtValue struct {
	Value  rawInner `xml:"value"`
	Reason string   `xml:"reason"`
}

// MessageQueue reports the server-side poll queue depth. It may appear on
// any response; a poll response for an empty queue carries none.
type MessageQueue struct {
	Count   int             `xml:"count,attr"`
	ID      string          `xml:"id,attr"`
	QDate   *xmltypes.Time  `xml:"qDate"`
	Message *rawInner       `xml:"msg"`
}

// TrID carries the client- and server-assigned transaction identifiers
// echoed back on every response.
type TrID struct {
	ClientTRID string `xml:"clTRID"`
	ServerTRID string `xml:"svTRID"`
}

// rawInner captures an element's inner XML verbatim, without interpreting
// its contents. It backs resData/extension/value, whose shape depends on the
// command that produced them and is decoded on demand by DecodeResData and
// DecodeExtension.
type rawInner struct {
	Inner []byte `xml:",innerxml"`
}

// Response is the fully parsed <response> element of an EPP reply: one or
// more results, an optional poll queue summary, the opaque command-specific
// payload and extension payload, and the transaction ID pair.
type Response struct {
	Results      []Result      `xml:"result"`
	MessageQueue *MessageQueue `xml:"msgQ"`
	ResData      *rawInner     `xml:"resData"`
	Extension    *rawInner     `xml:"extension"`
	TrID         TrID          `xml:"trID"`
}

// FirstResult returns the primary result, the one that determines whether
// the command as a whole succeeded. A response with no results at all is
// malformed and never produced by a conforming server.
func (r *Response) FirstResult() (Result, bool) {
	if len(r.Results) == 0 {
		return Result{}, false
	}
	return r.Results[0], true
}

// Success reports whether the command succeeded, based on the first result.
func (r *Response) Success() bool {
	first, ok := r.FirstResult()
	return ok && first.Success()
}

// DecodeResData unmarshals the response's <resData> payload into out, a
// pointer to one of this package's *Data types (e.g. *DomainInfoData) whose
// XMLName must match the child element actually present. It returns an
// error if the response carries no resData, which is expected for e.g. a
// plain logout response.
func (r *Response) DecodeResData(out interface{}) error {
	if r.ResData == nil {
		return errors.New("response has no resData to decode")
	}
	if err := xml.Unmarshal(r.ResData.Inner, out); err != nil {
		return errors.Wrap(err, "could not decode resData")
	}
	return nil
}

// DecodeExtension unmarshals the response's <extension> payload into out, a
// pointer to an extension result type (e.g. *extensions.RgpInfoData).
// Callers that do not recognize the extension namespace simply never call
// this, leaving the raw bytes in Response.Extension untouched.
func (r *Response) DecodeExtension(out interface{}) error {
	if r.Extension == nil {
		return errors.New("response has no extension to decode")
	}
	if err := xml.Unmarshal(r.Extension.Inner, out); err != nil {
		return errors.Wrap(err, "could not decode extension")
	}
	return nil
}
