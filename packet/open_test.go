package packet

import (
	"bytes"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMessageRoundTrip(t *testing.T) {
	m := &OpenMessage{
		Version:  bgpVersion,
		ASN:      65001,
		HoldTime: 180,
		RouterID: net.ParseIP("198.51.100.1").To4(),
		Capabilities: []Capability{
			CapMultiProtocol{AFI: AFIIPv4, SAFI: SAFIUnicast},
			CapAS4{ASN: 65001},
			CapRouteRefresh{},
		},
	}
	var buf bytes.Buffer
	m.emitBody(&buf)

	got, err := parseOpenMsg(newReader(buf.Bytes()), NewParseContext())
	require.NoError(t, err)
	assert.Equal(t, m.Version, got.Version)
	assert.Equal(t, m.ASN, got.ASN)
	assert.Equal(t, m.HoldTime, got.HoldTime)
	assert.True(t, m.RouterID.Equal(got.RouterID))
	require.Len(t, got.Capabilities, 3)
}

func TestOpenMessageASTransSentinel(t *testing.T) {
	m := &OpenMessage{Version: bgpVersion, ASN: AS_TRANS, HoldTime: 90, RouterID: net.ParseIP("1.1.1.1").To4(), Capabilities: []Capability{CapAS4{ASN: 4200001000}}}
	var buf bytes.Buffer
	m.emitBody(&buf)

	got, err := parseOpenMsg(newReader(buf.Bytes()), NewParseContext())
	require.NoError(t, err)
	assert.Equal(t, AS_TRANS, got.ASN)
	require.Len(t, got.Capabilities, 1)
	as4, ok := got.Capabilities[0].(CapAS4)
	require.True(t, ok)
	assert.Equal(t, uint32(4200001000), as4.ASN)
}

func TestOpenMessageNoCapabilities(t *testing.T) {
	m := &OpenMessage{Version: bgpVersion, ASN: 64512, HoldTime: 30, RouterID: net.ParseIP("10.0.0.1").To4()}
	var buf bytes.Buffer
	m.emitBody(&buf)

	got, err := parseOpenMsg(newReader(buf.Bytes()), NewParseContext())
	require.NoError(t, err)
	assert.Empty(t, got.Capabilities)
}

func TestIsValidIdentifierRejectsLoopbackAndMulticast(t *testing.T) {
	assert.False(t, isValidIdentifier(net.ParseIP("127.0.0.1")))
	assert.False(t, isValidIdentifier(net.ParseIP("224.0.0.1")))
	assert.False(t, isValidIdentifier(net.IPv4bcast))
	assert.True(t, isValidIdentifier(net.ParseIP("192.0.2.1")))
}
