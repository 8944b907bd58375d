package packet

import (
	"bytes"
	"strconv"
	"strings"
)

// ASPathSegmentType is the 1-byte segment type of an AS_PATH segment.
type ASPathSegmentType uint8

const (
	ASSet            ASPathSegmentType = 1
	ASSequence       ASPathSegmentType = 2
	ASConfedSequence ASPathSegmentType = 3
	ASConfedSet      ASPathSegmentType = 4
)

// ASPathSegment is one (type, ASN list) segment of an AS_PATH. ASNs are
// always widened to uint32 in memory regardless of the wire width used to
// parse them.
type ASPathSegment struct {
	Type ASPathSegmentType
	ASNs []uint32
}

// ASPath is the well-known AS_PATH attribute (type 2), dual-mode on the
// 4-octet-ASN negotiation carried in ParseContext.
type ASPath struct {
	Segments []ASPathSegment
	FourByte bool
}

func asnToString(v uint32) string {
	if v > 65535 {
		return strconv.Itoa(int(v>>16)) + "." + strconv.Itoa(int(v&0xFFFF))
	}
	return strconv.Itoa(int(v))
}

func (s ASPathSegment) String() string {
	parts := make([]string, len(s.ASNs))
	for i, asn := range s.ASNs {
		parts[i] = asnToString(asn)
	}
	inner := strings.Join(parts, " ")
	switch s.Type {
	case ASSet:
		return "{" + inner + "}"
	case ASConfedSequence:
		return "(" + inner + ")"
	case ASConfedSet:
		return "[" + inner + "]"
	default: // ASSequence
		return inner
	}
}

func (p ASPath) String() string {
	parts := make([]string, len(p.Segments))
	for i, seg := range p.Segments {
		parts[i] = seg.String()
	}
	return strings.Join(parts, " ")
}

// Prepend builds a new AS_PATH with other's segments placed ahead of p's,
// merging adjacent AS_SEQUENCE segments the way a route-reflector or
// eBGP speaker prepending its own ASN would. Grounded on the source's
// As4Path::prepend (src/attr/aspath.rs).
func (p ASPath) Prepend(other ASPath) ASPath {
	if len(other.Segments) == 0 {
		return p
	}
	segments := make([]ASPathSegment, 0, len(p.Segments)+len(other.Segments))
	segments = append(segments, other.Segments...)
	if len(p.Segments) > 0 && len(segments) > 0 {
		last := &segments[len(segments)-1]
		first := p.Segments[0]
		if last.Type == ASSequence && first.Type == ASSequence {
			merged := append(append([]uint32(nil), last.ASNs...), first.ASNs...)
			segments[len(segments)-1] = ASPathSegment{Type: ASSequence, ASNs: merged}
			segments = append(segments, p.Segments[1:]...)
			return ASPath{Segments: segments, FourByte: p.FourByte || other.FourByte}
		}
	}
	segments = append(segments, p.Segments...)
	return ASPath{Segments: segments, FourByte: p.FourByte || other.FourByte}
}

func asnWidth(fourByte bool) int {
	if fourByte {
		return 4
	}
	return 2
}

func parseASPath(r *reader, fourByte bool) (ASPath, error) {
	width := asnWidth(fourByte)
	var path ASPath
	path.FourByte = fourByte
	for r.remaining() > 0 {
		typ, err := r.readUint8()
		if err != nil {
			return ASPath{}, err
		}
		if typ < uint8(ASSet) || typ > uint8(ASConfedSet) {
			return ASPath{}, &Error{Kind: KindBadValue, Type: AttrTypeASPath, Reason: "AS_PATH segment type outside {1..4}", Offset: r.offset()}
		}
		count, err := r.readUint8()
		if err != nil {
			return ASPath{}, err
		}
		seg := ASPathSegment{Type: ASPathSegmentType(typ), ASNs: make([]uint32, 0, count)}
		for i := 0; i < int(count); i++ {
			var asn uint32
			if width == 4 {
				asn, err = r.readUint32()
			} else {
				var v uint16
				v, err = r.readUint16()
				asn = uint32(v)
			}
			if err != nil {
				return ASPath{}, err
			}
			seg.ASNs = append(seg.ASNs, asn)
		}
		path.Segments = append(path.Segments, seg)
	}
	return path, nil
}

func (p ASPath) emitValue(buf *bytes.Buffer) {
	width := asnWidth(p.FourByte)
	for _, seg := range p.Segments {
		buf.WriteByte(byte(seg.Type))
		buf.WriteByte(byte(len(seg.ASNs)))
		for _, asn := range seg.ASNs {
			if width == 4 {
				writeUint32(buf, asn)
			} else {
				writeUint16(buf, uint16(asn))
			}
		}
	}
}
