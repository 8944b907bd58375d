package packet

import (
	"bytes"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bgpnet "github.com/zebra-rs/bgp-packet/net"
)

func macIPFixture() EvpnMacIPRoute {
	return EvpnMacIPRoute{
		RD:          RouteDistinguisher{Type: RDTypeIPv4, Bytes: [6]byte{10, 0, 0, 1, 0, 1}},
		ESIType:     0,
		ESI:         [9]byte{},
		EthernetTag: 0,
		MAC:         net.HardwareAddr{0x00, 0x1c, 0x73, 0x01, 0x02, 0x03},
		IPLen:       32,
		IP:          net.ParseIP("192.0.2.1").To4(),
		Label:       Label{Value: 10, TC: 0, BoS: true},
	}
}

func TestEvpnMacIPRouteRoundTrip(t *testing.T) {
	route := macIPFixture()
	var buf bytes.Buffer
	route.emitRoute(&buf)

	got, err := parseEvpnRoute(newReader(buf.Bytes()), false)
	require.NoError(t, err)
	parsed, ok := got.(EvpnMacIPRoute)
	require.True(t, ok)
	assert.True(t, parsed.IP.Equal(route.IP))
	assert.Equal(t, route.MAC, parsed.MAC)
	assert.Equal(t, route.Label, parsed.Label)
	assert.Equal(t, EvpnRouteTypeMacIP, parsed.RouteType())
}

func TestEvpnMacIPRouteNoIP(t *testing.T) {
	route := macIPFixture()
	route.IPLen = 0
	route.IP = nil
	var buf bytes.Buffer
	route.emitRoute(&buf)

	got, err := parseEvpnRoute(newReader(buf.Bytes()), false)
	require.NoError(t, err)
	parsed, ok := got.(EvpnMacIPRoute)
	require.True(t, ok)
	assert.Equal(t, uint8(0), parsed.IPLen)
	assert.Nil(t, parsed.IP)
}

func TestEvpnIMETRouteRoundTrip(t *testing.T) {
	route := EvpnIMETRoute{
		RD:          RouteDistinguisher{Type: RDTypeASN2, Bytes: [6]byte{0xFD, 0xE8, 0, 0, 0, 1}},
		EthernetTag: 100,
		Originator:  bgpnet.NewIPv6PrefixFromBytes([16]byte{192, 0, 2, 1}, 32),
	}
	var buf bytes.Buffer
	route.emitRoute(&buf)

	got, err := parseEvpnRoute(newReader(buf.Bytes()), false)
	require.NoError(t, err)
	parsed, ok := got.(EvpnIMETRoute)
	require.True(t, ok)
	assert.Equal(t, route, parsed)
	assert.Equal(t, EvpnRouteTypeIMET, parsed.RouteType())
}

func TestEvpnUnknownRoutePreservesRawBytes(t *testing.T) {
	unk := EvpnUnknownRoute{ID: 0, Type: EvpnRouteTypeEthernetAD, Raw: []byte{1, 2, 3, 4}}
	var buf bytes.Buffer
	unk.emitRoute(&buf)

	got, err := parseEvpnRoute(newReader(buf.Bytes()), false)
	require.NoError(t, err)
	assert.Equal(t, unk, got)
}

func TestParseEvpnRouteRejectsLengthOverrun(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(byte(EvpnRouteTypeEthernetSeg))
	buf.WriteByte(10) // claims 10 bytes but none follow
	_, err := parseEvpnRoute(newReader(buf.Bytes()), false)
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, KindMalformed, e.Kind)
}
