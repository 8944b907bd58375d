package packet

import "bytes"

// RtcNlri is an IPv4-RouteTargetConstraint prefix (RFC 4684): a fixed
// total-length of 96 bits, a 4-byte origin ASN, and an 8-byte Route Target
// extended community.
type RtcNlri struct {
	ID          uint32
	OriginASN   uint32
	RouteTarget ExtCommunity
}

func parseRtcNlri(r *reader, addPath bool) (RtcNlri, error) {
	var id uint32
	if addPath {
		v, err := r.readUint32()
		if err != nil {
			return RtcNlri{}, err
		}
		id = v
	}
	plen, err := r.readUint8()
	if err != nil {
		return RtcNlri{}, err
	}
	if plen != 96 {
		return RtcNlri{}, &Error{Kind: KindBadValue, Reason: "RTC prefix length must be 96", Offset: r.offset()}
	}
	asn, err := r.readUint32()
	if err != nil {
		return RtcNlri{}, err
	}
	rtRaw, err := r.readBytes(8)
	if err != nil {
		return RtcNlri{}, err
	}
	var rt ExtCommunity
	copy(rt[:], rtRaw)
	return RtcNlri{ID: id, OriginASN: asn, RouteTarget: rt}, nil
}

func (n RtcNlri) emit(buf *bytes.Buffer) {
	if n.ID != 0 {
		writeUint32(buf, n.ID)
	}
	buf.WriteByte(96)
	writeUint32(buf, n.OriginASN)
	buf.Write(n.RouteTarget[:])
}
