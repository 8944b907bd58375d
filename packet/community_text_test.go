package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommunityRegular(t *testing.T) {
	c, err := ParseCommunity("65001:100")
	require.NoError(t, err)
	assert.Equal(t, Community(65001<<16|100), c)
	assert.Equal(t, "65001:100", c.String())
}

func TestParseCommunityWellKnown(t *testing.T) {
	c, err := ParseCommunity("no-export")
	require.NoError(t, err)
	assert.Equal(t, CommunityNoExport, c)
	assert.Equal(t, "no-export", c.String())
}

func TestParseCommunityInvalid(t *testing.T) {
	_, err := ParseCommunity("not-a-community")
	require.Error(t, err)
}

func TestParseExtCommunityTwoOctetASN(t *testing.T) {
	ec, err := ParseExtCommunity("rt 65001:100")
	require.NoError(t, err)
	assert.Equal(t, "rt 65001:100", ec.String())
}

func TestParseExtCommunityIPv4(t *testing.T) {
	ec, err := ParseExtCommunity("soo 192.0.2.1:5")
	require.NoError(t, err)
	assert.Equal(t, "soo 192.0.2.1:5", ec.String())
}

func TestParseExtCommunityFourOctetASN(t *testing.T) {
	ec, err := ParseExtCommunity("rt 64086.60904:7")
	require.NoError(t, err)
	assert.Equal(t, "rt 4200001000:7", ec.String())
}

func TestParseExtCommunityVXLANSentinel(t *testing.T) {
	ec, err := ParseExtCommunity("rt VXLAN")
	require.NoError(t, err)
	assert.Equal(t, "rt VXLAN", ec.String())

	ec, err = ParseExtCommunity("soo vxlan")
	require.NoError(t, err)
	assert.Equal(t, "soo VXLAN", ec.String())
}

func TestExtCommunityOpaqueNonVXLANFallsBackToAddressForm(t *testing.T) {
	ec := ExtCommunity{extTypeHighOpaque, extSubTypeRT, 10, 0, 0, 1, 0, 5}
	assert.Equal(t, "rt 10.0.0.1:5", ec.String())
}

func TestParseExtIPv6Community(t *testing.T) {
	ec, err := ParseExtIPv6Community("rt [2001:db8::1]:42")
	require.NoError(t, err)
	assert.Equal(t, uint16(42), ecLocalAdmin(ec))
}

func TestParseLargeCommunity(t *testing.T) {
	lc, err := ParseLargeCommunity("65001:1:2")
	require.NoError(t, err)
	assert.Equal(t, LargeCommunity{Global: 65001, Local1: 1, Local2: 2}, lc)
	assert.Equal(t, "65001:1:2", lc.String())
}

func TestParseLargeCommunityInvalid(t *testing.T) {
	_, err := ParseLargeCommunity("65001:1")
	require.Error(t, err)
}

// ecLocalAdmin pulls the 2-byte local-admin field back out of a 20-byte
// extended community for assertion purposes.
func ecLocalAdmin(e ExtIPv6Community) uint16 {
	return uint16(e[18])<<8 | uint16(e[19])
}
