package packet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestASPathRoundTrip2Byte(t *testing.T) {
	p := ASPath{Segments: []ASPathSegment{
		{Type: ASSequence, ASNs: []uint32{65001, 65002}},
		{Type: ASSet, ASNs: []uint32{65003}},
	}}
	var buf bytes.Buffer
	p.emitValue(&buf)

	got, err := parseASPath(newReader(buf.Bytes()), false)
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.Equal(t, "65001 65002 {65003}", got.String())
}

func TestASPathRoundTrip4Byte(t *testing.T) {
	p := ASPath{FourByte: true, Segments: []ASPathSegment{
		{Type: ASSequence, ASNs: []uint32{4200001000}},
	}}
	var buf bytes.Buffer
	p.emitValue(&buf)

	got, err := parseASPath(newReader(buf.Bytes()), true)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestASPathRejectsBadSegmentType(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(9) // invalid
	buf.WriteByte(0)
	_, err := parseASPath(newReader(buf.Bytes()), false)
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, KindBadValue, e.Kind)
}

func TestASPathPrependMergesAdjacentSequences(t *testing.T) {
	existing := ASPath{Segments: []ASPathSegment{{Type: ASSequence, ASNs: []uint32{65003, 65004}}}}
	prefix := ASPath{Segments: []ASPathSegment{{Type: ASSequence, ASNs: []uint32{65001}}}}

	got := existing.Prepend(prefix)
	require.Len(t, got.Segments, 1)
	assert.Equal(t, []uint32{65001, 65003, 65004}, got.Segments[0].ASNs)
}

func TestASPathPrependKeepsDistinctSegmentTypesSeparate(t *testing.T) {
	existing := ASPath{Segments: []ASPathSegment{{Type: ASSet, ASNs: []uint32{65003}}}}
	prefix := ASPath{Segments: []ASPathSegment{{Type: ASSequence, ASNs: []uint32{65001}}}}

	got := existing.Prepend(prefix)
	require.Len(t, got.Segments, 2)
	assert.Equal(t, ASSequence, got.Segments[0].Type)
	assert.Equal(t, ASSet, got.Segments[1].Type)
}

func TestASNToStringDottedForLargeASN(t *testing.T) {
	seg := ASPathSegment{Type: ASSequence, ASNs: []uint32{4200001000}}
	assert.Equal(t, "64086.60904", seg.String())
}
