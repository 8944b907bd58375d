package packet

import (
	"bytes"
	"encoding/binary"
	"fmt"

	bgpnet "github.com/zebra-rs/bgp-packet/net"
)

// RDType is the 2-byte Route Distinguisher type field (RFC 4364 §4.2).
type RDType uint16

const (
	RDTypeASN2 RDType = 0 // 2-byte ASN : 4-byte number
	RDTypeIPv4 RDType = 1 // 4-byte IPv4 address : 2-byte number
	RDTypeASN4 RDType = 2 // 4-byte ASN : 2-byte number
)

// RouteDistinguisher is the 8-byte value that disambiguates VPN routes.
type RouteDistinguisher struct {
	Type  RDType
	Bytes [6]byte
}

func (rd RouteDistinguisher) ASN() uint32 {
	switch rd.Type {
	case RDTypeASN2:
		return uint32(binary.BigEndian.Uint16(rd.Bytes[0:2]))
	case RDTypeASN4:
		return binary.BigEndian.Uint32(rd.Bytes[0:4])
	default:
		return 0
	}
}

func (rd RouteDistinguisher) IP() bgpnet.IPv4Prefix {
	if rd.Type != RDTypeIPv4 {
		return bgpnet.IPv4Prefix{}
	}
	var a [4]byte
	copy(a[:], rd.Bytes[0:4])
	return bgpnet.NewIPv4PrefixFromBytes(a, 32)
}

func (rd RouteDistinguisher) Value() uint32 {
	switch rd.Type {
	case RDTypeASN2:
		return binary.BigEndian.Uint32(rd.Bytes[2:6])
	case RDTypeIPv4:
		return uint32(binary.BigEndian.Uint16(rd.Bytes[4:6]))
	case RDTypeASN4:
		return uint32(binary.BigEndian.Uint16(rd.Bytes[4:6]))
	default:
		return 0
	}
}

// String renders asn:val or ip:val, grounded on the Vpnv4Nexthop Display
// impl ("[{rd}]:{nhop}") from the source's attrs/attribute.rs.
func (rd RouteDistinguisher) String() string {
	switch rd.Type {
	case RDTypeIPv4:
		return fmt.Sprintf("%s:%d", rd.IP().IP(), rd.Value())
	case RDTypeASN2, RDTypeASN4:
		return fmt.Sprintf("%d:%d", rd.ASN(), rd.Value())
	default:
		return fmt.Sprintf("unknown-rd-type(%d)", uint16(rd.Type))
	}
}

func decodeRD(r *reader) (RouteDistinguisher, error) {
	typ, err := r.readUint16()
	if err != nil {
		return RouteDistinguisher{}, err
	}
	raw, err := r.readBytes(6)
	if err != nil {
		return RouteDistinguisher{}, err
	}
	var b [6]byte
	copy(b[:], raw)
	return RouteDistinguisher{Type: RDType(typ), Bytes: b}, nil
}

func (rd RouteDistinguisher) emit(buf *bytes.Buffer) {
	writeUint16(buf, uint16(rd.Type))
	buf.Write(rd.Bytes[:])
}
