package packet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bgpnet "github.com/zebra-rs/bgp-packet/net"
)

func TestIpv4NlriRoundTripNoAddPath(t *testing.T) {
	n := Ipv4Nlri{Prefix: bgpnet.NewIPv4PrefixFromBytes([4]byte{192, 168, 1, 0}, 24)}
	var buf bytes.Buffer
	emitIpv4Nlri(&buf, n)

	got, err := parseIpv4Nlri(newReader(buf.Bytes()), false)
	require.NoError(t, err)
	assert.Equal(t, n, got)
}

func TestIpv4NlriRoundTripAddPath(t *testing.T) {
	n := Ipv4Nlri{ID: 7, Prefix: bgpnet.NewIPv4PrefixFromBytes([4]byte{10, 0, 0, 0}, 8)}
	var buf bytes.Buffer
	emitIpv4Nlri(&buf, n)

	got, err := parseIpv4Nlri(newReader(buf.Bytes()), true)
	require.NoError(t, err)
	assert.Equal(t, n, got)
}

func TestIpv6NlriRoundTrip(t *testing.T) {
	addr := [16]byte{0x20, 0x01, 0x0d, 0xb8}
	n := Ipv6Nlri{Prefix: bgpnet.NewIPv6PrefixFromBytes(addr, 32)}
	var buf bytes.Buffer
	emitIpv6Nlri(&buf, n)

	got, err := parseIpv6Nlri(newReader(buf.Bytes()), false)
	require.NoError(t, err)
	assert.Equal(t, n, got)
}

func TestVpnv4NlriRoundTrip(t *testing.T) {
	n := Vpnv4Nlri{
		ID:     3,
		Label:  Label{Value: 100, TC: 0, BoS: true},
		RD:     RouteDistinguisher{Type: RDTypeASN2, Bytes: [6]byte{0xFD, 0xE8, 0, 0, 0, 42}},
		Prefix: bgpnet.NewIPv4PrefixFromBytes([4]byte{172, 16, 0, 0}, 16),
	}
	var buf bytes.Buffer
	n.emit(&buf)

	got, err := parseVpnv4Nlri(newReader(buf.Bytes()), true)
	require.NoError(t, err)
	assert.Equal(t, n, got)
}

func TestVpnv4NlriRejectsShortTotalLength(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(50) // below 88
	_, err := parseVpnv4Nlri(newReader(buf.Bytes()), false)
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, KindBadValue, e.Kind)
}
