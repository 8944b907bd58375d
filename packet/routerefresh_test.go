package packet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteRefreshMessageRoundTrip(t *testing.T) {
	m := &RouteRefreshMessage{AFI: AFIIPv6, SAFI: SAFIUnicast}
	var buf bytes.Buffer
	m.emitBody(&buf)

	got, err := parseRouteRefreshMsg(newReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestRouteRefreshMessageIgnoresReservedByte(t *testing.T) {
	var buf bytes.Buffer
	writeUint16(&buf, uint16(AFIIPv4))
	buf.WriteByte(0xff)
	buf.WriteByte(byte(SAFIMPLSVPN))

	got, err := parseRouteRefreshMsg(newReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, AFIIPv4, got.AFI)
	assert.Equal(t, SAFIMPLSVPN, got.SAFI)
}
