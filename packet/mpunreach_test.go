package packet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bgpnet "github.com/zebra-rs/bgp-packet/net"
)

func TestMpUnreachIPv4UnicastRoundTrip(t *testing.T) {
	a := MpUnreachAttr{AFI: AFIIPv4, SAFI: SAFIUnicast, Body: MpUnreachIPv4Unicast{
		NLRI: []Ipv4Nlri{{Prefix: bgpnet.NewIPv4PrefixFromBytes([4]byte{203, 0, 113, 0}, 24)}},
	}}
	var buf bytes.Buffer
	a.emitValue(&buf)

	got, err := parseMPUnreach(newReader(buf.Bytes()), NewParseContext())
	require.NoError(t, err)
	assert.Equal(t, a.Body, got.Body)
	assert.False(t, got.IsEndOfRib())
}

func TestMpUnreachEndOfRib(t *testing.T) {
	a := MpUnreachAttr{AFI: AFIIPv6, SAFI: SAFIUnicast, Body: MpUnreachIPv6Unicast{}}
	var buf bytes.Buffer
	a.emitValue(&buf)

	got, err := parseMPUnreach(newReader(buf.Bytes()), NewParseContext())
	require.NoError(t, err)
	assert.True(t, got.IsEndOfRib())
}

func TestMpUnreachEVPNRoundTrip(t *testing.T) {
	a := MpUnreachAttr{AFI: AFIL2VPN, SAFI: SAFIEVPN, Body: MpUnreachEVPN{
		Routes: []EvpnRoute{EvpnUnknownRoute{Type: EvpnRouteTypeEthernetSeg, Raw: []byte{9, 9}}},
	}}
	var buf bytes.Buffer
	a.emitValue(&buf)

	got, err := parseMPUnreach(newReader(buf.Bytes()), NewParseContext())
	require.NoError(t, err)
	assert.Equal(t, a.Body, got.Body)
}

func TestMpUnreachRejectsUnsupportedFamily(t *testing.T) {
	var buf bytes.Buffer
	writeUint16(&buf, uint16(AFIIPv6))
	buf.WriteByte(byte(SAFIMPLSVPN))

	_, err := parseMPUnreach(newReader(buf.Bytes()), NewParseContext())
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, KindUnsupportedFamily, e.Kind)
}
