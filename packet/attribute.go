package packet

import "bytes"

// AttrType is the 1-byte path attribute type code.
type AttrType uint8

const (
	AttrTypeOrigin             AttrType = 1
	AttrTypeASPath             AttrType = 2
	AttrTypeNextHop            AttrType = 3
	AttrTypeMED                AttrType = 4
	AttrTypeLocalPref          AttrType = 5
	AttrTypeAtomicAggregate    AttrType = 6
	AttrTypeAggregator         AttrType = 7
	AttrTypeCommunities        AttrType = 8
	AttrTypeOriginatorID       AttrType = 9
	AttrTypeClusterList        AttrType = 10
	AttrTypeMPReachNLRI        AttrType = 14
	AttrTypeMPUnreachNLRI      AttrType = 15
	AttrTypeExtCommunities     AttrType = 16
	AttrTypePMSITunnel         AttrType = 22
	AttrTypeExtIPv6Communities AttrType = 25
	AttrTypeAIGP               AttrType = 26
	AttrTypeLargeCommunities   AttrType = 32
)

// AttrFlags are the four meaningful bits of a path attribute's flag byte.
type AttrFlags struct {
	Optional       bool
	Transitive     bool
	Partial        bool
	ExtendedLength bool
}

func decodeAttrFlags(b uint8) AttrFlags {
	return AttrFlags{
		Optional:       b&0x80 != 0,
		Transitive:     b&0x40 != 0,
		Partial:        b&0x20 != 0,
		ExtendedLength: b&0x10 != 0,
	}
}

func (f AttrFlags) encode() uint8 {
	var b uint8
	if f.Optional {
		b |= 0x80
	}
	if f.Transitive {
		b |= 0x40
	}
	if f.Partial {
		b |= 0x20
	}
	if f.ExtendedLength {
		b |= 0x10
	}
	return b
}

type flagReq struct{ Optional, Transitive bool }

var attrFlagRequirements = map[AttrType]flagReq{
	AttrTypeOrigin:             {false, true},
	AttrTypeASPath:             {false, true},
	AttrTypeNextHop:            {false, true},
	AttrTypeMED:                {true, false},
	AttrTypeLocalPref:          {false, true},
	AttrTypeAtomicAggregate:    {false, true},
	AttrTypeAggregator:         {true, true},
	AttrTypeCommunities:        {true, true},
	AttrTypeOriginatorID:       {true, false},
	AttrTypeClusterList:        {true, false},
	AttrTypeMPReachNLRI:        {true, false},
	AttrTypeMPUnreachNLRI:      {true, false},
	AttrTypeExtCommunities:     {true, true},
	AttrTypePMSITunnel:         {true, true},
	AttrTypeExtIPv6Communities: {true, true},
	AttrTypeAIGP:               {true, false},
	AttrTypeLargeCommunities:   {true, true},
}

func requiredFlags(t AttrType) (flagReq, bool) {
	r, ok := attrFlagRequirements[t]
	return r, ok
}

// UnknownAttr preserves an unrecognized attribute's value bytes verbatim.
type UnknownAttr struct {
	Raw []byte
}

// PathAttribute is one decoded {flags, type, value} entry of an UPDATE's
// path-attribute vector. Value holds one of the typed attribute structs in
// this package, or UnknownAttr for an unrecognized type.
type PathAttribute struct {
	Flags AttrFlags
	Type  AttrType
	Value interface{}
}

func hasAttr(attrs []PathAttribute, t AttrType) bool {
	for _, a := range attrs {
		if a.Type == t {
			return true
		}
	}
	return false
}

func parseAttribute(r *reader, ctx *ParseContext) (PathAttribute, error) {
	flagsByte, err := r.readUint8()
	if err != nil {
		return PathAttribute{}, err
	}
	flags := decodeAttrFlags(flagsByte)
	typByte, err := r.readUint8()
	if err != nil {
		return PathAttribute{}, err
	}
	typ := AttrType(typByte)

	var length int
	if flags.ExtendedLength {
		l, err := r.readUint16()
		if err != nil {
			return PathAttribute{}, err
		}
		length = int(l)
	} else {
		l, err := r.readUint8()
		if err != nil {
			return PathAttribute{}, err
		}
		length = int(l)
	}
	valBytes, err := r.readBytes(length)
	if err != nil {
		return PathAttribute{}, err
	}

	req, known := requiredFlags(typ)
	if known {
		if flags.Optional != req.Optional || flags.Transitive != req.Transitive {
			return PathAttribute{}, &Error{Kind: KindFlagViolation, Type: typ, Offset: r.offset()}
		}
	} else {
		if !flags.Optional {
			return PathAttribute{}, &Error{Kind: KindOptionalMissing, Type: typ, Offset: r.offset()}
		}
		return PathAttribute{Flags: flags, Type: typ, Value: UnknownAttr{Raw: append([]byte(nil), valBytes...)}}, nil
	}

	vr := newReader(valBytes)
	var value interface{}
	switch typ {
	case AttrTypeOrigin:
		value, err = parseOrigin(vr)
	case AttrTypeASPath:
		value, err = parseASPath(vr, ctx.AS4)
	case AttrTypeNextHop:
		value, err = parseNextHop(vr)
	case AttrTypeMED:
		value, err = parseMED(vr)
	case AttrTypeLocalPref:
		value, err = parseLocalPref(vr)
	case AttrTypeAtomicAggregate:
		value, err = parseAtomicAggregate(vr)
	case AttrTypeAggregator:
		value, err = parseAggregator(vr, ctx.AS4)
	case AttrTypeCommunities:
		value, err = parseCommunities(vr)
	case AttrTypeOriginatorID:
		value, err = parseOriginatorID(vr)
	case AttrTypeClusterList:
		value, err = parseClusterList(vr)
	case AttrTypeMPReachNLRI:
		value, err = parseMPReach(vr, ctx)
	case AttrTypeMPUnreachNLRI:
		value, err = parseMPUnreach(vr, ctx)
	case AttrTypeExtCommunities:
		value, err = parseExtCommunities(vr)
	case AttrTypePMSITunnel:
		value, err = parsePMSITunnel(vr)
	case AttrTypeExtIPv6Communities:
		value, err = parseExtIPv6Communities(vr)
	case AttrTypeAIGP:
		value, err = parseAIGP(vr)
	case AttrTypeLargeCommunities:
		value, err = parseLargeCommunities(vr)
	}
	if err != nil {
		return PathAttribute{}, wrapAttrErr(typ, err)
	}
	return PathAttribute{Flags: flags, Type: typ, Value: value}, nil
}

// emitAttr emits flags/type/length(placeholder via scratch buffer)/value for
// a single attribute, choosing the extended-length bit from the actual
// value length (spec.md §4.7, §8 extended-length promotion).
func emitAttr(buf *bytes.Buffer, req flagReq, partial bool, typ AttrType, writeValue func(*bytes.Buffer)) {
	var val bytes.Buffer
	writeValue(&val)
	flags := AttrFlags{Optional: req.Optional, Transitive: req.Transitive, Partial: partial}
	flags.ExtendedLength = val.Len() >= 256
	buf.WriteByte(flags.encode())
	buf.WriteByte(byte(typ))
	if flags.ExtendedLength {
		writeUint16(buf, uint16(val.Len()))
	} else {
		buf.WriteByte(byte(val.Len()))
	}
	buf.Write(val.Bytes())
}

func (pa PathAttribute) emit(buf *bytes.Buffer) {
	if unk, ok := pa.Value.(UnknownAttr); ok {
		buf.WriteByte(pa.Flags.encode())
		buf.WriteByte(byte(pa.Type))
		if pa.Flags.ExtendedLength {
			writeUint16(buf, uint16(len(unk.Raw)))
		} else {
			buf.WriteByte(byte(len(unk.Raw)))
		}
		buf.Write(unk.Raw)
		return
	}
	req := attrFlagRequirements[pa.Type]
	switch v := pa.Value.(type) {
	case Origin:
		emitAttr(buf, req, pa.Flags.Partial, pa.Type, v.emitValue)
	case ASPath:
		emitAttr(buf, req, pa.Flags.Partial, pa.Type, v.emitValue)
	case NextHop:
		emitAttr(buf, req, pa.Flags.Partial, pa.Type, v.emitValue)
	case MED:
		emitAttr(buf, req, pa.Flags.Partial, pa.Type, v.emitValue)
	case LocalPref:
		emitAttr(buf, req, pa.Flags.Partial, pa.Type, v.emitValue)
	case AtomicAggregate:
		emitAttr(buf, req, pa.Flags.Partial, pa.Type, v.emitValue)
	case Aggregator:
		emitAttr(buf, req, pa.Flags.Partial, pa.Type, v.emitValue)
	case Communities:
		emitAttr(buf, req, pa.Flags.Partial, pa.Type, v.emitValue)
	case OriginatorID:
		emitAttr(buf, req, pa.Flags.Partial, pa.Type, v.emitValue)
	case ClusterList:
		emitAttr(buf, req, pa.Flags.Partial, pa.Type, v.emitValue)
	case MpReachAttr:
		emitAttr(buf, req, pa.Flags.Partial, pa.Type, v.emitValue)
	case MpUnreachAttr:
		emitAttr(buf, req, pa.Flags.Partial, pa.Type, v.emitValue)
	case ExtCommunities:
		emitAttr(buf, req, pa.Flags.Partial, pa.Type, v.emitValue)
	case PMSITunnel:
		emitAttr(buf, req, pa.Flags.Partial, pa.Type, v.emitValue)
	case ExtIPv6Communities:
		emitAttr(buf, req, pa.Flags.Partial, pa.Type, v.emitValue)
	case AIGP:
		emitAttr(buf, req, pa.Flags.Partial, pa.Type, v.emitValue)
	case LargeCommunities:
		emitAttr(buf, req, pa.Flags.Partial, pa.Type, v.emitValue)
	}
}

// NewPathAttribute builds a well-known/optional attribute with the standard
// required flags for its type, ready for emission.
func NewPathAttribute(typ AttrType, value interface{}) PathAttribute {
	req := attrFlagRequirements[typ]
	return PathAttribute{Flags: AttrFlags{Optional: req.Optional, Transitive: req.Transitive}, Type: typ, Value: value}
}
