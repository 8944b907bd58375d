package packet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteDistinguisherASN2RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	writeUint16(&buf, uint16(RDTypeASN2))
	writeUint16(&buf, 65000)
	writeUint32(&buf, 42)

	rd, err := decodeRD(newReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, uint32(65000), rd.ASN())
	assert.Equal(t, uint32(42), rd.Value())
	assert.Equal(t, "65000:42", rd.String())

	var out bytes.Buffer
	rd.emit(&out)
	assert.Equal(t, buf.Bytes(), out.Bytes())
}

func TestRouteDistinguisherIPv4(t *testing.T) {
	var buf bytes.Buffer
	writeUint16(&buf, uint16(RDTypeIPv4))
	buf.Write([]byte{10, 0, 0, 1})
	writeUint16(&buf, 7)

	rd, err := decodeRD(newReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1:7", rd.String())
	assert.Equal(t, uint32(7), rd.Value())
}

func TestRouteDistinguisherASN4(t *testing.T) {
	var buf bytes.Buffer
	writeUint16(&buf, uint16(RDTypeASN4))
	writeUint32(&buf, 4200000000)
	writeUint16(&buf, 99)

	rd, err := decodeRD(newReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, uint32(4200000000), rd.ASN())
	assert.Equal(t, uint32(99), rd.Value())
	assert.Equal(t, "4200000000:99", rd.String())
}
