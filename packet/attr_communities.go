package packet

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Community is the 4-byte value of a regular COMMUNITIES entry (RFC 1997).
type Community uint32

const (
	CommunityNoExport          Community = 0xFFFFFF01
	CommunityNoAdvertise       Community = 0xFFFFFF02
	CommunityNoExportSubconfed Community = 0xFFFFFF03
)

func (c Community) String() string {
	switch c {
	case CommunityNoExport:
		return "no-export"
	case CommunityNoAdvertise:
		return "no-advertise"
	case CommunityNoExportSubconfed:
		return "no-export-subconfed"
	default:
		return fmt.Sprintf("%d:%d", uint32(c)>>16, uint32(c)&0xFFFF)
	}
}

// Communities is the COMMUNITIES attribute (type 8): a list of 4-byte
// values.
type Communities []Community

func parseCommunities(r *reader) (Communities, error) {
	if r.remaining()%4 != 0 {
		return nil, &Error{Kind: KindBadLength, Type: AttrTypeCommunities, Reason: "COMMUNITIES length must be a multiple of 4"}
	}
	var out Communities
	for r.remaining() > 0 {
		v, err := r.readUint32()
		if err != nil {
			return nil, err
		}
		out = append(out, Community(v))
	}
	return out, nil
}

func (c Communities) emitValue(buf *bytes.Buffer) {
	for _, v := range c {
		writeUint32(buf, uint32(v))
	}
}

// OriginatorID is the optional non-transitive ORIGINATOR_ID attribute (type
// 9): a 4-byte router ID.
type OriginatorID [4]byte

func parseOriginatorID(r *reader) (OriginatorID, error) {
	if r.remaining() != 4 {
		return OriginatorID{}, &Error{Kind: KindBadLength, Type: AttrTypeOriginatorID, Reason: "ORIGINATOR_ID value must be 4 bytes"}
	}
	raw, err := r.readBytes(4)
	if err != nil {
		return OriginatorID{}, err
	}
	var o OriginatorID
	copy(o[:], raw)
	return o, nil
}

func (o OriginatorID) emitValue(buf *bytes.Buffer) {
	buf.Write(o[:])
}

// ClusterList is the optional non-transitive CLUSTER_LIST attribute (type
// 10): a list of 4-byte cluster IDs.
type ClusterList [][4]byte

func parseClusterList(r *reader) (ClusterList, error) {
	if r.remaining()%4 != 0 {
		return nil, &Error{Kind: KindBadLength, Type: AttrTypeClusterList, Reason: "CLUSTER_LIST length must be a multiple of 4"}
	}
	var out ClusterList
	for r.remaining() > 0 {
		raw, err := r.readBytes(4)
		if err != nil {
			return nil, err
		}
		var id [4]byte
		copy(id[:], raw)
		out = append(out, id)
	}
	return out, nil
}

func (c ClusterList) emitValue(buf *bytes.Buffer) {
	for _, id := range c {
		buf.Write(id[:])
	}
}

// ExtCommunity is an 8-byte extended community TLV (RFC 4360). Byte 0 is the
// type and byte 1 the sub-type. typeHigh clears only the top (IANA-authority)
// bit of byte 0; the transitive bit 0x40 is kept, so non-transitive types
// print in the generic ext(...) form.
type ExtCommunity [8]byte

func (e ExtCommunity) typeHigh() byte { return e[0] &^ 0x80 }
func (e ExtCommunity) typeLow() byte  { return e[1] }

// RT/SOO sub-types per RFC 4360 §3-4.
const (
	extSubTypeRT  = 0x02
	extSubTypeSOO = 0x03
)

// extTypeHighOpaque is the Opaque extended-community type (RFC 4360 §3.3).
// A local-admin value of 8 is the well-known VXLAN tunnel-type sentinel
// (RFC 5512 §4), printed as a bare "VXLAN" token rather than an address:value
// pair.
const extTypeHighOpaque = 0x03

const extOpaqueVXLAN = 8

func (e ExtCommunity) String() string {
	var kind string
	switch e.typeLow() {
	case extSubTypeRT:
		kind = "rt"
	case extSubTypeSOO:
		kind = "soo"
	default:
		return fmt.Sprintf("ext(%02x:%02x:%x)", e[0], e[1], e[2:])
	}
	switch e.typeHigh() {
	case 0x00: // 2-octet AS : 4-byte number
		asn := binary.BigEndian.Uint16(e[2:4])
		val := binary.BigEndian.Uint32(e[4:8])
		return fmt.Sprintf("%s %d:%d", kind, asn, val)
	case 0x01: // IPv4 address : 2-byte number
		ip := fmt.Sprintf("%d.%d.%d.%d", e[2], e[3], e[4], e[5])
		val := binary.BigEndian.Uint16(e[6:8])
		return fmt.Sprintf("%s %s:%d", kind, ip, val)
	case 0x02: // 4-octet AS : 2-byte number
		asn := binary.BigEndian.Uint32(e[2:6])
		val := binary.BigEndian.Uint16(e[6:8])
		return fmt.Sprintf("%s %d:%d", kind, asn, val)
	case extTypeHighOpaque:
		val := binary.BigEndian.Uint16(e[6:8])
		if val == extOpaqueVXLAN {
			return fmt.Sprintf("%s VXLAN", kind)
		}
		ip := fmt.Sprintf("%d.%d.%d.%d", e[2], e[3], e[4], e[5])
		return fmt.Sprintf("%s %s:%d", kind, ip, val)
	default:
		return fmt.Sprintf("ext(%02x:%02x:%x)", e[0], e[1], e[2:])
	}
}

// ExtCommunities is the EXT_COMMUNITIES attribute (type 16): a list of
// 8-byte TLVs.
type ExtCommunities []ExtCommunity

func parseExtCommunities(r *reader) (ExtCommunities, error) {
	if r.remaining()%8 != 0 {
		return nil, &Error{Kind: KindBadLength, Type: AttrTypeExtCommunities, Reason: "EXT_COMMUNITIES length must be a multiple of 8"}
	}
	var out ExtCommunities
	for r.remaining() > 0 {
		raw, err := r.readBytes(8)
		if err != nil {
			return nil, err
		}
		var e ExtCommunity
		copy(e[:], raw)
		out = append(out, e)
	}
	return out, nil
}

func (c ExtCommunities) emitValue(buf *bytes.Buffer) {
	for _, e := range c {
		buf.Write(e[:])
	}
}

// ExtIPv6Community is a 20-byte extended community TLV for IPv6 (RFC 5701):
// type(1), sub-type(1), 16-byte IPv6 address, 2-byte local admin.
type ExtIPv6Community [20]byte

func (e ExtIPv6Community) String() string {
	ip := e[2:18]
	val := binary.BigEndian.Uint16(e[18:20])
	return fmt.Sprintf("rt [%x:%x:%x:%x:%x:%x:%x:%x]:%d",
		binary.BigEndian.Uint16(ip[0:2]), binary.BigEndian.Uint16(ip[2:4]),
		binary.BigEndian.Uint16(ip[4:6]), binary.BigEndian.Uint16(ip[6:8]),
		binary.BigEndian.Uint16(ip[8:10]), binary.BigEndian.Uint16(ip[10:12]),
		binary.BigEndian.Uint16(ip[12:14]), binary.BigEndian.Uint16(ip[14:16]), val)
}

// ExtIPv6Communities is the EXT_IPV6_COMMUNITIES attribute (type 25).
type ExtIPv6Communities []ExtIPv6Community

func parseExtIPv6Communities(r *reader) (ExtIPv6Communities, error) {
	if r.remaining()%20 != 0 {
		return nil, &Error{Kind: KindBadLength, Type: AttrTypeExtIPv6Communities, Reason: "EXT_IPV6_COMMUNITIES length must be a multiple of 20"}
	}
	var out ExtIPv6Communities
	for r.remaining() > 0 {
		raw, err := r.readBytes(20)
		if err != nil {
			return nil, err
		}
		var e ExtIPv6Community
		copy(e[:], raw)
		out = append(out, e)
	}
	return out, nil
}

func (c ExtIPv6Communities) emitValue(buf *bytes.Buffer) {
	for _, e := range c {
		buf.Write(e[:])
	}
}

// LargeCommunity is a 12-byte triple (RFC 8092): global-admin, local-data-1,
// local-data-2.
type LargeCommunity struct {
	Global uint32
	Local1 uint32
	Local2 uint32
}

func (c LargeCommunity) String() string {
	return fmt.Sprintf("%d:%d:%d", c.Global, c.Local1, c.Local2)
}

// LargeCommunities is the LARGE_COMMUNITIES attribute (type 32).
type LargeCommunities []LargeCommunity

func parseLargeCommunities(r *reader) (LargeCommunities, error) {
	if r.remaining()%12 != 0 {
		return nil, &Error{Kind: KindBadLength, Type: AttrTypeLargeCommunities, Reason: "LARGE_COMMUNITIES length must be a multiple of 12"}
	}
	var out LargeCommunities
	for r.remaining() > 0 {
		g, err := r.readUint32()
		if err != nil {
			return nil, err
		}
		l1, err := r.readUint32()
		if err != nil {
			return nil, err
		}
		l2, err := r.readUint32()
		if err != nil {
			return nil, err
		}
		out = append(out, LargeCommunity{Global: g, Local1: l1, Local2: l2})
	}
	return out, nil
}

func (c LargeCommunities) emitValue(buf *bytes.Buffer) {
	for _, v := range c {
		writeUint32(buf, v.Global)
		writeUint32(buf, v.Local1)
		writeUint32(buf, v.Local2)
	}
}
