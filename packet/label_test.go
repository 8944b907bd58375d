package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelDecodeEncodeRoundTrip(t *testing.T) {
	// value=1000 (0x3E8), TC=5 (0b101), BoS=1 -> 20-bit value << 4 | TC << 1 | BoS
	raw := [3]byte{}
	packed := uint32(1000)<<4 | uint32(5)<<1 | 1
	raw[0] = byte(packed >> 16)
	raw[1] = byte(packed >> 8)
	raw[2] = byte(packed)

	lbl := decodeLabel(raw)
	assert.Equal(t, uint32(1000), lbl.Value)
	assert.Equal(t, uint8(5), lbl.TC)
	assert.True(t, lbl.BoS)

	assert.Equal(t, raw, lbl.Bytes())
}

func TestLabelBottomOfStackClear(t *testing.T) {
	raw := [3]byte{0x00, 0x10, 0x00} // value=0x100=256, TC=0, BoS=0
	lbl := decodeLabel(raw)
	assert.Equal(t, uint32(256), lbl.Value)
	assert.False(t, lbl.BoS)
	assert.Equal(t, raw, lbl.Bytes())
}
