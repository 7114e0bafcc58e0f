package extensions

import "encoding/xml"

const XMLNSNamestore = "http://www.verisign-grs.com/epp/namestoreExt-1.1"

// NameStore is the Verisign namestore extension, attached to create/check/
// info/transfer/renew/update commands to select which product (TLD group) a
// registrar-level login should operate against.
type NameStore struct {
	XMLName    xml.Name `xml:"namestoreExt:namestoreExt"`
	XMLNS      string   `xml:"xmlns:namestoreExt,attr"`
	SubProduct string   `xml:"namestoreExt:subProduct"`
}

func (NameStore) EPPExtensionBody() {}

// NewNameStore builds a NameStore extension selecting the given subproduct.
func NewNameStore(subProduct string) *NameStore {
	return &NameStore{XMLNS: XMLNSNamestore, SubProduct: subProduct}
}

// NameStoreInfoData is the extension payload Verisign returns on an info
// response, echoing back which subproduct served the query. Decode-only:
// encoding/xml strips the registry's namespace prefix before tag matching,
// so the XMLName and element tags are bare local names.
type NameStoreInfoData struct {
	XMLName    xml.Name `xml:"infData"`
	SubProduct string   `xml:"subProduct"`
}
