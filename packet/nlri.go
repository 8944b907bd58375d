package packet

import (
	"bytes"

	bgpnet "github.com/zebra-rs/bgp-packet/net"
)

// Ipv4Nlri is a single IPv4-unicast prefix, optionally carrying an RFC 7911
// Add-Path identifier. ID is 0 when Add-Path is not in use for this prefix;
// by convention (grounded on the source's Vpnv4Reach::emit) a nonzero ID is
// what signals emit-time whether to write the 4-byte identifier.
type Ipv4Nlri struct {
	ID     uint32
	Prefix bgpnet.IPv4Prefix
}

func parseIpv4Nlri(r *reader, addPath bool) (Ipv4Nlri, error) {
	var id uint32
	if addPath {
		v, err := r.readUint32()
		if err != nil {
			return Ipv4Nlri{}, err
		}
		id = v
	}
	raw, plen, err := readPrefixBytes(r, 4)
	if err != nil {
		return Ipv4Nlri{}, err
	}
	var a [4]byte
	copy(a[:], raw)
	return Ipv4Nlri{ID: id, Prefix: bgpnet.NewIPv4PrefixFromBytes(a, plen)}, nil
}

func emitIpv4Nlri(buf *bytes.Buffer, n Ipv4Nlri) {
	if n.ID != 0 {
		writeUint32(buf, n.ID)
	}
	a := n.Prefix.AddrBytes()
	writePrefixBytes(buf, a[:], n.Prefix.Len())
}

// Ipv6Nlri is a single IPv6-unicast prefix.
type Ipv6Nlri struct {
	ID     uint32
	Prefix bgpnet.IPv6Prefix
}

func parseIpv6Nlri(r *reader, addPath bool) (Ipv6Nlri, error) {
	var id uint32
	if addPath {
		v, err := r.readUint32()
		if err != nil {
			return Ipv6Nlri{}, err
		}
		id = v
	}
	raw, plen, err := readPrefixBytes(r, 16)
	if err != nil {
		return Ipv6Nlri{}, err
	}
	var a [16]byte
	copy(a[:], raw)
	return Ipv6Nlri{ID: id, Prefix: bgpnet.NewIPv6PrefixFromBytes(a, plen)}, nil
}

func emitIpv6Nlri(buf *bytes.Buffer, n Ipv6Nlri) {
	if n.ID != 0 {
		writeUint32(buf, n.ID)
	}
	a := n.Prefix.AddrBytes()
	writePrefixBytes(buf, a[:], n.Prefix.Len())
}

// Vpnv4Nlri is a VPN-IPv4 prefix (RFC 4364): 3-byte label, 8-byte RD, then
// the IPv4 prefix. Prefix.Len() is the real address prefix length; the
// on-wire total-length is Prefix.Len()+88.
type Vpnv4Nlri struct {
	ID     uint32
	Label  Label
	RD     RouteDistinguisher
	Prefix bgpnet.IPv4Prefix
}

func parseVpnv4Nlri(r *reader, addPath bool) (Vpnv4Nlri, error) {
	var id uint32
	if addPath {
		v, err := r.readUint32()
		if err != nil {
			return Vpnv4Nlri{}, err
		}
		id = v
	}
	totalLen, err := r.readUint8()
	if err != nil {
		return Vpnv4Nlri{}, err
	}
	if totalLen < 88 {
		return Vpnv4Nlri{}, &Error{Kind: KindBadValue, Reason: "vpnv4 total prefix length below label+RD width (88 bits)", Offset: r.offset()}
	}
	labelRaw, err := r.readBytes(3)
	if err != nil {
		return Vpnv4Nlri{}, err
	}
	var lb [3]byte
	copy(lb[:], labelRaw)
	label := decodeLabel(lb)
	rd, err := decodeRD(r)
	if err != nil {
		return Vpnv4Nlri{}, err
	}
	plen := totalLen - 88
	if int(plen) > 32 {
		return Vpnv4Nlri{}, &Error{Kind: KindBadValue, Reason: "vpnv4 prefix length exceeds 32 bits", Offset: r.offset()}
	}
	byteLen := (int(plen) + 7) / 8
	raw, err := r.readBytes(byteLen)
	if err != nil {
		return Vpnv4Nlri{}, err
	}
	var a [4]byte
	copy(a[:], raw)
	return Vpnv4Nlri{ID: id, Label: label, RD: rd, Prefix: bgpnet.NewIPv4PrefixFromBytes(a, plen)}, nil
}

func (n Vpnv4Nlri) emit(buf *bytes.Buffer) {
	if n.ID != 0 {
		writeUint32(buf, n.ID)
	}
	buf.WriteByte(n.Prefix.Len() + 88)
	lb := n.Label.Bytes()
	buf.Write(lb[:])
	n.RD.emit(buf)
	byteLen := (int(n.Prefix.Len()) + 7) / 8
	a := n.Prefix.AddrBytes()
	buf.Write(a[:byteLen])
}
