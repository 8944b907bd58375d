package packet

import "bytes"

// PMSITunnel is the optional transitive PMSI_TUNNEL attribute (type 22,
// RFC 6514 §5): flags, tunnel-type, an MPLS label, and a tunnel-type-specific
// identifier carried opaquely.
type PMSITunnel struct {
	Flags      uint8
	TunnelType uint8
	Label      Label
	TunnelID   []byte
}

func parsePMSITunnel(r *reader) (PMSITunnel, error) {
	if r.remaining() < 9 {
		return PMSITunnel{}, &Error{Kind: KindBadLength, Type: AttrTypePMSITunnel, Reason: "PMSI_TUNNEL value must be at least 9 bytes"}
	}
	flags, err := r.readUint8()
	if err != nil {
		return PMSITunnel{}, err
	}
	tunType, err := r.readUint8()
	if err != nil {
		return PMSITunnel{}, err
	}
	labelRaw, err := r.readBytes(3)
	if err != nil {
		return PMSITunnel{}, err
	}
	var lb [3]byte
	copy(lb[:], labelRaw)
	id, err := r.readBytes(r.remaining())
	if err != nil {
		return PMSITunnel{}, err
	}
	return PMSITunnel{Flags: flags, TunnelType: tunType, Label: decodeLabel(lb), TunnelID: append([]byte(nil), id...)}, nil
}

func (p PMSITunnel) emitValue(buf *bytes.Buffer) {
	buf.WriteByte(p.Flags)
	buf.WriteByte(p.TunnelType)
	lb := p.Label.Bytes()
	buf.Write(lb[:])
	buf.Write(p.TunnelID)
}
