package packet

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextFromOpenPairAS4AndExtendedMessage(t *testing.T) {
	local := &OpenMessage{RouterID: net.ParseIP("1.1.1.1"), Capabilities: []Capability{CapAS4{ASN: 65001}, CapExtendedMessage{}}}
	remote := &OpenMessage{RouterID: net.ParseIP("2.2.2.2"), Capabilities: []Capability{CapAS4{ASN: 65002}}}

	ctx := ContextFromOpenPair(local, remote)
	assert.True(t, ctx.AS4)
	assert.False(t, ctx.ExtendedMessage) // remote didn't advertise it
}

func TestContextFromOpenPairAddPathNegotiation(t *testing.T) {
	fam := AfiSafi{AFIIPv4, SAFIUnicast}
	local := &OpenMessage{Capabilities: []Capability{
		CapAddPath{Values: []AddPathValue{{AFI: AFIIPv4, SAFI: SAFIUnicast, SendReceive: AddPathSend}}},
	}}
	remote := &OpenMessage{Capabilities: []Capability{
		CapAddPath{Values: []AddPathValue{{AFI: AFIIPv4, SAFI: SAFIUnicast, SendReceive: AddPathReceive}}},
	}}

	ctx := ContextFromOpenPair(local, remote)
	// local sends, remote receives -> ctx.addPathSend(fam) true; local doesn't
	// receive and remote doesn't send -> addPathRecv false.
	assert.True(t, ctx.addPathSend(fam))
	assert.False(t, ctx.addPathRecv(fam))
}

func TestContextFromOpenPairAddPathBothDirections(t *testing.T) {
	fam := AfiSafi{AFIIPv6, SAFIUnicast}
	both := CapAddPath{Values: []AddPathValue{{AFI: AFIIPv6, SAFI: SAFIUnicast, SendReceive: AddPathBoth}}}
	local := &OpenMessage{Capabilities: []Capability{both}}
	remote := &OpenMessage{Capabilities: []Capability{both}}

	ctx := ContextFromOpenPair(local, remote)
	assert.True(t, ctx.addPathSend(fam))
	assert.True(t, ctx.addPathRecv(fam))
}

func TestNilParseContextAddPathDefaultsFalse(t *testing.T) {
	var ctx *ParseContext
	assert.False(t, ctx.addPathRecv(AfiSafi{AFIIPv4, SAFIUnicast}))
	assert.False(t, ctx.addPathSend(AfiSafi{AFIIPv4, SAFIUnicast}))
}
