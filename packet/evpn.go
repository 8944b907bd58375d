package packet

import (
	"bytes"
	"net"

	bgpnet "github.com/zebra-rs/bgp-packet/net"
)

// EvpnRouteType is the 1-byte EVPN route-type tag (RFC 7432 §7).
type EvpnRouteType uint8

const (
	EvpnRouteTypeEthernetAD  EvpnRouteType = 1
	EvpnRouteTypeMacIP       EvpnRouteType = 2
	EvpnRouteTypeIMET        EvpnRouteType = 3
	EvpnRouteTypeEthernetSeg EvpnRouteType = 4
)

// EvpnRoute is the tagged union of EVPN route types. Types 2 and 3 are
// deep-parsed; types 1 and 4 are kept opaque per spec.md §4.5/§9.
type EvpnRoute interface {
	RouteType() EvpnRouteType
	emitRoute(buf *bytes.Buffer)
}

// EvpnMacIPRoute is route-type 2, MAC/IP Advertisement.
type EvpnMacIPRoute struct {
	ID          uint32
	RD          RouteDistinguisher
	ESIType     uint8
	ESI         [9]byte
	EthernetTag uint32
	MAC         net.HardwareAddr
	IPLen       uint8 // 0, 32, or 128
	IP          net.IP
	Label       Label
}

func (EvpnMacIPRoute) RouteType() EvpnRouteType { return EvpnRouteTypeMacIP }

func parseEvpnMacIP(r *reader, id uint32) (EvpnMacIPRoute, error) {
	rd, err := decodeRD(r)
	if err != nil {
		return EvpnMacIPRoute{}, err
	}
	esiType, err := r.readUint8()
	if err != nil {
		return EvpnMacIPRoute{}, err
	}
	esiRaw, err := r.readBytes(9)
	if err != nil {
		return EvpnMacIPRoute{}, err
	}
	etherTag, err := r.readUint32()
	if err != nil {
		return EvpnMacIPRoute{}, err
	}
	macLen, err := r.readUint8()
	if err != nil {
		return EvpnMacIPRoute{}, err
	}
	if macLen != 48 {
		return EvpnMacIPRoute{}, &Error{Kind: KindBadValue, Reason: "EVPN MAC length must be 48 bits", Offset: r.offset()}
	}
	macRaw, err := r.readBytes(6)
	if err != nil {
		return EvpnMacIPRoute{}, err
	}
	ipLen, err := r.readUint8()
	if err != nil {
		return EvpnMacIPRoute{}, err
	}
	var ip net.IP
	switch ipLen {
	case 0:
	case 32:
		raw, err := r.readBytes(4)
		if err != nil {
			return EvpnMacIPRoute{}, err
		}
		ip = net.IP(append([]byte(nil), raw...))
	case 128:
		raw, err := r.readBytes(16)
		if err != nil {
			return EvpnMacIPRoute{}, err
		}
		ip = net.IP(append([]byte(nil), raw...))
	default:
		return EvpnMacIPRoute{}, &Error{Kind: KindBadValue, Reason: "EVPN IP length must be 0, 32, or 128 bits", Offset: r.offset()}
	}
	labelRaw, err := r.readBytes(3)
	if err != nil {
		return EvpnMacIPRoute{}, err
	}
	var lb [3]byte
	copy(lb[:], labelRaw)
	var esi [9]byte
	copy(esi[:], esiRaw)
	return EvpnMacIPRoute{
		ID: id, RD: rd, ESIType: esiType, ESI: esi, EthernetTag: etherTag,
		MAC: net.HardwareAddr(append([]byte(nil), macRaw...)), IPLen: ipLen, IP: ip, Label: decodeLabel(lb),
	}, nil
}

func (r EvpnMacIPRoute) emitRoute(buf *bytes.Buffer) {
	var val bytes.Buffer
	r.RD.emit(&val)
	val.WriteByte(r.ESIType)
	val.Write(r.ESI[:])
	writeUint32(&val, r.EthernetTag)
	val.WriteByte(48)
	val.Write(r.MAC)
	val.WriteByte(r.IPLen)
	switch r.IPLen {
	case 32:
		val.Write(r.IP.To4())
	case 128:
		val.Write(r.IP.To16())
	}
	lb := r.Label.Bytes()
	val.Write(lb[:])
	if r.ID != 0 {
		writeUint32(buf, r.ID)
	}
	buf.WriteByte(byte(EvpnRouteTypeMacIP))
	buf.WriteByte(byte(val.Len()))
	buf.Write(val.Bytes())
}

// EvpnIMETRoute is route-type 3, Inclusive Multicast Ethernet Tag.
type EvpnIMETRoute struct {
	ID          uint32
	RD          RouteDistinguisher
	EthernetTag uint32
	Originator  bgpnet.IPv6Prefix // length-compressed per wire form; width 32 for IPv4-originator
}

func (EvpnIMETRoute) RouteType() EvpnRouteType { return EvpnRouteTypeIMET }

func parseEvpnIMET(r *reader, id uint32) (EvpnIMETRoute, error) {
	rd, err := decodeRD(r)
	if err != nil {
		return EvpnIMETRoute{}, err
	}
	etherTag, err := r.readUint32()
	if err != nil {
		return EvpnIMETRoute{}, err
	}
	raw, plen, err := readPrefixBytes(r, 16)
	if err != nil {
		return EvpnIMETRoute{}, err
	}
	var a [16]byte
	copy(a[:], raw)
	return EvpnIMETRoute{ID: id, RD: rd, EthernetTag: etherTag, Originator: bgpnet.NewIPv6PrefixFromBytes(a, plen)}, nil
}

func (r EvpnIMETRoute) emitRoute(buf *bytes.Buffer) {
	var val bytes.Buffer
	r.RD.emit(&val)
	writeUint32(&val, r.EthernetTag)
	a := r.Originator.AddrBytes()
	writePrefixBytes(&val, a[:], r.Originator.Len())
	if r.ID != 0 {
		writeUint32(buf, r.ID)
	}
	buf.WriteByte(byte(EvpnRouteTypeIMET))
	buf.WriteByte(byte(val.Len()))
	buf.Write(val.Bytes())
}

// EvpnUnknownRoute preserves route types 1 (Ethernet A-D) and 4 (Ethernet
// Segment), and any future type, as opaque bytes for exact re-emission.
type EvpnUnknownRoute struct {
	ID   uint32
	Type EvpnRouteType
	Raw  []byte
}

func (r EvpnUnknownRoute) RouteType() EvpnRouteType { return r.Type }
func (r EvpnUnknownRoute) emitRoute(buf *bytes.Buffer) {
	if r.ID != 0 {
		writeUint32(buf, r.ID)
	}
	buf.WriteByte(byte(r.Type))
	buf.WriteByte(byte(len(r.Raw)))
	buf.Write(r.Raw)
}

func parseEvpnRoute(r *reader, addPath bool) (EvpnRoute, error) {
	var id uint32
	if addPath {
		v, err := r.readUint32()
		if err != nil {
			return nil, err
		}
		id = v
	}
	typ, err := r.readUint8()
	if err != nil {
		return nil, err
	}
	length, err := r.readUint8()
	if err != nil {
		return nil, err
	}
	if r.remaining() < int(length) {
		return nil, &Error{Kind: KindMalformed, Reason: "EVPN route length overruns MP body", Offset: r.offset()}
	}
	payload, err := r.readBytes(int(length))
	if err != nil {
		return nil, err
	}
	pr := newReader(payload)
	switch EvpnRouteType(typ) {
	case EvpnRouteTypeMacIP:
		return parseEvpnMacIP(pr, id)
	case EvpnRouteTypeIMET:
		return parseEvpnIMET(pr, id)
	default:
		return EvpnUnknownRoute{ID: id, Type: EvpnRouteType(typ), Raw: append([]byte(nil), payload...)}, nil
	}
}
