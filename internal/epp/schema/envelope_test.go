package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Envelope_Marshal_LoginCommand(t *testing.T) {
	login := NewLogin("gregister", "foo-BAR2", DefaultObjURIs, []string{"urn:ietf:params:xml:ns:rgp-1.0"})
	env := &Envelope{Command: login, ClTRID: "ABC-12345"}

	payload, err := env.Marshal()
	require.NoError(t, err)

	doc := string(payload)
	require.True(t, strings.HasPrefix(doc, `<?xml version="1.0" encoding="UTF-8"?>`))
	require.Contains(t, doc, `<clID>gregister</clID>`)
	require.Contains(t, doc, `<pw>foo-BAR2</pw>`)
	require.Contains(t, doc, `<objURI>`+XMLNSDomain+`</objURI>`)
	require.Contains(t, doc, `<extURI>urn:ietf:params:xml:ns:rgp-1.0</extURI>`)
	require.Contains(t, doc, `<clTRID>ABC-12345</clTRID>`)
}

func Test_Envelope_Marshal_NoExtensionOmitsExtensionElement(t *testing.T) {
	env := &Envelope{Command: &Logout{}, ClTRID: "xyz"}

	payload, err := env.Marshal()
	require.NoError(t, err)
	require.NotContains(t, string(payload), "<extension>")
}

func Test_DecodeFrame_Greeting(t *testing.T) {
	frame := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<epp xmlns="` + XMLNSEpp + `">
  <greeting>
    <svID>Example EPP Server</svID>
    <svDate>2021-01-01T00:00:00.0Z</svDate>
    <svcMenu>
      <version>1.0</version>
      <lang>en</lang>
      <objURI>` + XMLNSDomain + `</objURI>
    </svcMenu>
  </greeting>
</epp>`)

	greeting, response, err := DecodeFrame(frame)
	require.NoError(t, err)
	require.Nil(t, response)
	require.NotNil(t, greeting)
	require.Equal(t, "Example EPP Server", greeting.ServiceID)
	require.True(t, greeting.ServiceMenu.Supports(XMLNSDomain))
}

func Test_DecodeFrame_ResponseWithDomainCheckData(t *testing.T) {
	frame := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<epp xmlns="` + XMLNSEpp + `">
  <response>
    <result code="1000">
      <msg>Command completed successfully</msg>
    </result>
    <resData>
      <domain:chkData xmlns:domain="` + XMLNSDomain + `">
        <domain:cd>
          <domain:name avail="1">eppdev.com</domain:name>
        </domain:cd>
        <domain:cd>
          <domain:name avail="0">eppdev.net</domain:name>
          <domain:reason>In use</domain:reason>
        </domain:cd>
      </domain:chkData>
    </resData>
    <trID>
      <clTRID>abc-123</clTRID>
      <svTRID>SERVER-001</svTRID>
    </trID>
  </response>
</epp>`)

	greeting, response, err := DecodeFrame(frame)
	require.NoError(t, err)
	require.Nil(t, greeting)
	require.NotNil(t, response)
	require.True(t, response.Success())
	require.Equal(t, "abc-123", response.TrID.ClientTRID)

	var data DomainCheckData
	require.NoError(t, response.DecodeResData(&data))
	require.Len(t, data.Checks, 2)
	require.Equal(t, "eppdev.com", data.Checks[0].Name.Name)
	require.True(t, data.Checks[0].Name.Available)
	require.Equal(t, "eppdev.net", data.Checks[1].Name.Name)
	require.False(t, data.Checks[1].Name.Available)
	require.Equal(t, "In use", data.Checks[1].Reason)
}

func Test_Response_Success_FailureCode(t *testing.T) {
	frame := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<epp xmlns="` + XMLNSEpp + `">
  <response>
    <result code="2200">
      <msg>Authentication error</msg>
    </result>
    <trID>
      <clTRID>bad-login</clTRID>
      <svTRID>SERVER-002</svTRID>
    </trID>
  </response>
</epp>`)

	_, response, err := DecodeFrame(frame)
	require.NoError(t, err)
	require.False(t, response.Success())
	first, ok := response.FirstResult()
	require.True(t, ok)
	require.Equal(t, 2200, first.Code)
	require.Equal(t, "Authentication error", first.Message)
}
