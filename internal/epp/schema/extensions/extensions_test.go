package extensions

import (
	"bytes"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_NameStore_MarshalsSubProductAndNamespace(t *testing.T) {
	ext := NewNameStore("dotCOM")

	var buf bytes.Buffer
	require.NoError(t, xml.NewEncoder(&buf).Encode(ext))

	doc := buf.String()
	require.Contains(t, doc, `xmlns:namestoreExt="`+XMLNSNamestore+`"`)
	require.Contains(t, doc, `<namestoreExt:subProduct>dotCOM</namestoreExt:subProduct>`)
}

func Test_Sync_MarshalsGMonthDay(t *testing.T) {
	exDate, err := NewGMonthDay(3, 15)
	require.NoError(t, err)
	ext := NewSync(exDate)

	var buf bytes.Buffer
	require.NoError(t, xml.NewEncoder(&buf).Encode(ext))

	require.Contains(t, buf.String(), "--03-15")
}

func Test_NewGMonthDay_RejectsOutOfRange(t *testing.T) {
	_, err := NewGMonthDay(13, 1)
	require.Error(t, err)

	_, err = NewGMonthDay(1, 32)
	require.Error(t, err)
}

func Test_RgpRestoreRequest_MarshalsOp(t *testing.T) {
	req := NewRgpRestoreRequest()

	var buf bytes.Buffer
	require.NoError(t, xml.NewEncoder(&buf).Encode(req))

	require.Contains(t, buf.String(), `op="request"`)
}
