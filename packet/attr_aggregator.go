package packet

import (
	"bytes"
	"net"
)

// Aggregator is the optional transitive AGGREGATOR attribute (type 7),
// dual-mode on the 4-octet-ASN negotiation.
type Aggregator struct {
	ASN      uint32
	Addr     [4]byte
	FourByte bool
}

func (a Aggregator) IP() net.IP {
	return net.IPv4(a.Addr[0], a.Addr[1], a.Addr[2], a.Addr[3])
}

func parseAggregator(r *reader, fourByte bool) (Aggregator, error) {
	width := asnWidth(fourByte)
	want := width + 4
	if r.remaining() != want {
		return Aggregator{}, &Error{Kind: KindBadLength, Type: AttrTypeAggregator, Reason: "AGGREGATOR value must be 6 (2-byte mode) or 8 bytes (4-byte mode)"}
	}
	var asn uint32
	var err error
	if width == 4 {
		asn, err = r.readUint32()
	} else {
		var v uint16
		v, err = r.readUint16()
		asn = uint32(v)
	}
	if err != nil {
		return Aggregator{}, err
	}
	raw, err := r.readBytes(4)
	if err != nil {
		return Aggregator{}, err
	}
	var a [4]byte
	copy(a[:], raw)
	return Aggregator{ASN: asn, Addr: a, FourByte: fourByte}, nil
}

func (a Aggregator) emitValue(buf *bytes.Buffer) {
	width := asnWidth(a.FourByte)
	if width == 4 {
		writeUint32(buf, a.ASN)
	} else {
		writeUint16(buf, uint16(a.ASN))
	}
	buf.Write(a.Addr[:])
}
