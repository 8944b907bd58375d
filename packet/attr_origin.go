package packet

import (
	"bytes"
	"net"
)

// Origin is the well-known ORIGIN attribute (type 1).
type Origin uint8

const (
	OriginIGP        Origin = 0
	OriginEGP        Origin = 1
	OriginIncomplete Origin = 2
)

func (o Origin) String() string {
	switch o {
	case OriginIGP:
		return "IGP"
	case OriginEGP:
		return "EGP"
	case OriginIncomplete:
		return "Incomplete"
	default:
		return "Unknown"
	}
}

func parseOrigin(r *reader) (Origin, error) {
	if r.remaining() != 1 {
		return 0, &Error{Kind: KindBadLength, Type: AttrTypeOrigin, Reason: "ORIGIN value must be 1 byte"}
	}
	v, err := r.readUint8()
	if err != nil {
		return 0, err
	}
	if v > uint8(OriginIncomplete) {
		return 0, &Error{Kind: KindBadValue, Type: AttrTypeOrigin, Reason: "ORIGIN value must be 0, 1, or 2"}
	}
	return Origin(v), nil
}

func (o Origin) emitValue(buf *bytes.Buffer) {
	buf.WriteByte(byte(o))
}

// NextHop is the well-known NEXT_HOP attribute (type 3): a 4-byte IPv4
// address.
type NextHop struct {
	Addr [4]byte
}

func (n NextHop) IP() net.IP {
	return net.IPv4(n.Addr[0], n.Addr[1], n.Addr[2], n.Addr[3])
}

func (n NextHop) String() string {
	return n.IP().String()
}

func parseNextHop(r *reader) (NextHop, error) {
	if r.remaining() != 4 {
		return NextHop{}, &Error{Kind: KindBadLength, Type: AttrTypeNextHop, Reason: "NEXT_HOP value must be 4 bytes"}
	}
	raw, err := r.readBytes(4)
	if err != nil {
		return NextHop{}, err
	}
	var a [4]byte
	copy(a[:], raw)
	return NextHop{Addr: a}, nil
}

func (n NextHop) emitValue(buf *bytes.Buffer) {
	buf.Write(n.Addr[:])
}

// MED is the optional non-transitive MULTI_EXIT_DISC attribute (type 4).
type MED uint32

func parseMED(r *reader) (MED, error) {
	if r.remaining() != 4 {
		return 0, &Error{Kind: KindBadLength, Type: AttrTypeMED, Reason: "MED value must be 4 bytes"}
	}
	v, err := r.readUint32()
	if err != nil {
		return 0, err
	}
	return MED(v), nil
}

func (m MED) emitValue(buf *bytes.Buffer) {
	writeUint32(buf, uint32(m))
}

// LocalPref is the well-known LOCAL_PREF attribute (type 5).
type LocalPref uint32

func parseLocalPref(r *reader) (LocalPref, error) {
	if r.remaining() != 4 {
		return 0, &Error{Kind: KindBadLength, Type: AttrTypeLocalPref, Reason: "LOCAL_PREF value must be 4 bytes"}
	}
	v, err := r.readUint32()
	if err != nil {
		return 0, err
	}
	return LocalPref(v), nil
}

func (l LocalPref) emitValue(buf *bytes.Buffer) {
	writeUint32(buf, uint32(l))
}

// AtomicAggregate is the well-known zero-length ATOMIC_AGGREGATE attribute
// (type 6); its presence alone carries meaning.
type AtomicAggregate struct{}

func parseAtomicAggregate(r *reader) (AtomicAggregate, error) {
	if r.remaining() != 0 {
		return AtomicAggregate{}, &Error{Kind: KindBadLength, Type: AttrTypeAtomicAggregate, Reason: "ATOMIC_AGGREGATE must be zero-length"}
	}
	return AtomicAggregate{}, nil
}

func (AtomicAggregate) emitValue(buf *bytes.Buffer) {}
