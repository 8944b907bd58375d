package packet

import "bytes"

// AIGP is the optional non-transitive AIGP attribute (type 26, RFC 7311
// §3): a single TLV of type 1, length 11, carrying an 8-byte metric.
type AIGP struct {
	Metric uint64
}

const aigpTLVType = 1

func parseAIGP(r *reader) (AIGP, error) {
	if r.remaining() != 11 {
		return AIGP{}, &Error{Kind: KindBadLength, Type: AttrTypeAIGP, Reason: "AIGP attribute length must be 11"}
	}
	tlvType, err := r.readUint8()
	if err != nil {
		return AIGP{}, err
	}
	if tlvType != aigpTLVType {
		return AIGP{}, &Error{Kind: KindBadValue, Type: AttrTypeAIGP, Reason: "AIGP TLV type must be 1"}
	}
	tlvLen, err := r.readUint16()
	if err != nil {
		return AIGP{}, err
	}
	if tlvLen != 11 {
		return AIGP{}, &Error{Kind: KindBadValue, Type: AttrTypeAIGP, Reason: "AIGP TLV length must be 11"}
	}
	metric, err := r.readUint64()
	if err != nil {
		return AIGP{}, err
	}
	return AIGP{Metric: metric}, nil
}

func (a AIGP) emitValue(buf *bytes.Buffer) {
	buf.WriteByte(aigpTLVType)
	writeUint16(buf, 11)
	writeUint64(buf, a.Metric)
}
