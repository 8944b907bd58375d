package packet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bgpnet "github.com/zebra-rs/bgp-packet/net"
)

func TestUpdateMessageRoundTrip(t *testing.T) {
	m := &UpdateMessage{
		PathAttributes: []PathAttribute{
			NewPathAttribute(AttrTypeOrigin, OriginIGP),
			NewPathAttribute(AttrTypeASPath, ASPath{Segments: []ASPathSegment{{Type: ASSequence, ASNs: []uint32{65001}}}}),
			NewPathAttribute(AttrTypeNextHop, NextHop{Addr: [4]byte{192, 0, 2, 1}}),
		},
		NLRI: []Ipv4Nlri{{Prefix: bgpnet.NewIPv4PrefixFromBytes([4]byte{10, 0, 0, 0}, 8)}},
	}
	var buf bytes.Buffer
	m.emitBody(&buf)

	got, err := parseUpdateMsg(newReader(buf.Bytes()), NewParseContext())
	require.NoError(t, err)
	assert.Len(t, got.PathAttributes, 3)
	assert.Len(t, got.NLRI, 1)
	assert.Empty(t, got.WithdrawnRoutes)
}

func TestUpdateMessageWithdrawOnly(t *testing.T) {
	m := &UpdateMessage{
		WithdrawnRoutes: []Ipv4Nlri{{Prefix: bgpnet.NewIPv4PrefixFromBytes([4]byte{10, 1, 0, 0}, 16)}},
	}
	var buf bytes.Buffer
	m.emitBody(&buf)

	got, err := parseUpdateMsg(newReader(buf.Bytes()), NewParseContext())
	require.NoError(t, err)
	assert.Len(t, got.WithdrawnRoutes, 1)
	assert.Empty(t, got.PathAttributes)
	assert.Empty(t, got.NLRI)
}

func TestUpdateMessageRejectsMissingMandatoryAttributes(t *testing.T) {
	m := &UpdateMessage{
		NLRI: []Ipv4Nlri{{Prefix: bgpnet.NewIPv4PrefixFromBytes([4]byte{10, 0, 0, 0}, 8)}},
	}
	var buf bytes.Buffer
	m.emitBody(&buf)

	_, err := parseUpdateMsg(newReader(buf.Bytes()), NewParseContext())
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, KindMalformed, e.Kind)
}
