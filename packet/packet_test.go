package packet

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitPacketBackpatchesLength(t *testing.T) {
	p := &Packet{Body: &KeepaliveMessage{}}
	wire := EmitPacket(p)
	require.Len(t, wire, HeaderLen)
	length := uint16(wire[16])<<8 | uint16(wire[17])
	assert.Equal(t, uint16(len(wire)), length)
	assert.Equal(t, byte(MsgTypeKeepalive), wire[18])
}

func TestParsePacketKeepaliveRoundTrip(t *testing.T) {
	p := &Packet{Body: &KeepaliveMessage{}}
	wire := EmitPacket(p)

	got, err := ParsePacket(wire, NewParseContext())
	require.NoError(t, err)
	assert.Equal(t, MsgTypeKeepalive, got.Header.Type)
	assert.IsType(t, &KeepaliveMessage{}, got.Body)
}

func TestParsePacketOpenRoundTrip(t *testing.T) {
	p := &Packet{Body: &OpenMessage{
		Version:  bgpVersion,
		ASN:      65001,
		HoldTime: 180,
		RouterID: net.ParseIP("198.51.100.1").To4(),
	}}
	wire := EmitPacket(p)

	got, err := ParsePacket(wire, NewParseContext())
	require.NoError(t, err)
	assert.Equal(t, MsgTypeOpen, got.Header.Type)
	open, ok := got.Body.(*OpenMessage)
	require.True(t, ok)
	assert.Equal(t, uint16(65001), open.ASN)
}

func TestParsePacketNotificationRoundTrip(t *testing.T) {
	p := &Packet{Body: &NotificationMessage{ErrorCode: Cease, ErrorSubcode: 2}}
	wire := EmitPacket(p)

	got, err := ParsePacket(wire, NewParseContext())
	require.NoError(t, err)
	n, ok := got.Body.(*NotificationMessage)
	require.True(t, ok)
	assert.Equal(t, Cease, n.ErrorCode)
}

func TestParsePacketRouteRefreshRoundTrip(t *testing.T) {
	p := &Packet{Body: &RouteRefreshMessage{AFI: AFIIPv4, SAFI: SAFIUnicast}}
	wire := EmitPacket(p)

	got, err := ParsePacket(wire, NewParseContext())
	require.NoError(t, err)
	rr, ok := got.Body.(*RouteRefreshMessage)
	require.True(t, ok)
	assert.Equal(t, AFIIPv4, rr.AFI)
}

func TestParsePacketRejectsLengthMismatch(t *testing.T) {
	p := &Packet{Body: &KeepaliveMessage{}}
	wire := EmitPacket(p)
	wire = append(wire, 0x00)

	_, err := ParsePacket(wire, NewParseContext())
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, KindBadLength, e.Kind)
}

func TestMsgTypeOfUnknownBodyIsZero(t *testing.T) {
	assert.Equal(t, MsgType(0), msgTypeOf(nil))
}
