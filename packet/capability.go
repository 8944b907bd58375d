package packet

import (
	"bytes"
	"fmt"
)

// CapabilityCode is the 1-byte capability code carried in an OPEN message's
// capability optional parameter (RFC 5492 §4).
type CapabilityCode uint8

const (
	CapCodeMultiProtocol        CapabilityCode = 1
	CapCodeRouteRefresh         CapabilityCode = 2
	CapCodeExtendedMessage      CapabilityCode = 6
	CapCodeGracefulRestart      CapabilityCode = 64
	CapCodeAS4                  CapabilityCode = 65
	CapCodeDynamicCapability    CapabilityCode = 67
	CapCodeAddPath              CapabilityCode = 69
	CapCodeEnhancedRouteRefresh CapabilityCode = 70
	CapCodeLLGR                 CapabilityCode = 71
	CapCodeFQDN                 CapabilityCode = 73
	CapCodeSoftwareVersion      CapabilityCode = 75
	CapCodePathLimit            CapabilityCode = 76
	CapCodeRouteRefreshCisco    CapabilityCode = 128
)

// Capability is any OPEN-message capability TLV value.
type Capability interface {
	Code() CapabilityCode
	emitValue(buf *bytes.Buffer)
}

// EmitCapability writes code, length, value for a single capability.
func EmitCapability(buf *bytes.Buffer, c Capability) {
	var val bytes.Buffer
	c.emitValue(&val)
	buf.WriteByte(byte(c.Code()))
	buf.WriteByte(byte(val.Len()))
	buf.Write(val.Bytes())
}

// ParseCapability reads one {code, length, value} TLV from r.
func ParseCapability(r *reader) (Capability, error) {
	code, err := r.readUint8()
	if err != nil {
		return nil, err
	}
	length, err := r.readUint8()
	if err != nil {
		return nil, err
	}
	value, err := r.readBytes(int(length))
	if err != nil {
		return nil, err
	}
	vr := newReader(value)
	switch CapabilityCode(code) {
	case CapCodeMultiProtocol:
		return parseCapMultiProtocol(vr)
	case CapCodeRouteRefresh:
		return CapRouteRefresh{}, nil
	case CapCodeRouteRefreshCisco:
		return CapRouteRefreshCisco{}, nil
	case CapCodeExtendedMessage:
		return CapExtendedMessage{}, nil
	case CapCodeEnhancedRouteRefresh:
		return CapEnhancedRouteRefresh{}, nil
	case CapCodeGracefulRestart:
		return parseCapGracefulRestart(vr)
	case CapCodeAS4:
		return parseCapAS4(vr)
	case CapCodeDynamicCapability:
		return CapDynamicCapability{}, nil
	case CapCodeAddPath:
		return parseCapAddPath(vr)
	case CapCodeLLGR:
		return parseCapLLGR(vr)
	case CapCodeFQDN:
		return parseCapFQDN(vr)
	case CapCodeSoftwareVersion:
		return parseCapSoftwareVersion(vr)
	case CapCodePathLimit:
		return parseCapPathLimit(vr)
	default:
		return CapUnknown{CodeVal: CapabilityCode(code), Raw: append([]byte(nil), value...)}, nil
	}
}

// CapMultiProtocol is code 1: (AFI, reserved, SAFI).
type CapMultiProtocol struct {
	AFI  AFI
	SAFI SAFI
}

func (CapMultiProtocol) Code() CapabilityCode { return CapCodeMultiProtocol }
func (c CapMultiProtocol) emitValue(buf *bytes.Buffer) {
	writeUint16(buf, uint16(c.AFI))
	buf.WriteByte(0)
	buf.WriteByte(byte(c.SAFI))
}
func parseCapMultiProtocol(r *reader) (CapMultiProtocol, error) {
	afi, err := r.readUint16()
	if err != nil {
		return CapMultiProtocol{}, err
	}
	if _, err := r.readUint8(); err != nil {
		return CapMultiProtocol{}, err
	}
	safi, err := r.readUint8()
	if err != nil {
		return CapMultiProtocol{}, err
	}
	return CapMultiProtocol{AFI: AFI(afi), SAFI: SAFI(safi)}, nil
}

// CapRouteRefresh is code 2, zero-length value.
type CapRouteRefresh struct{}

func (CapRouteRefresh) Code() CapabilityCode       { return CapCodeRouteRefresh }
func (CapRouteRefresh) emitValue(buf *bytes.Buffer) {}

// CapRouteRefreshCisco is code 128, the pre-standard vendor variant.
type CapRouteRefreshCisco struct{}

func (CapRouteRefreshCisco) Code() CapabilityCode       { return CapCodeRouteRefreshCisco }
func (CapRouteRefreshCisco) emitValue(buf *bytes.Buffer) {}

// CapExtendedMessage is code 6, zero-length value.
type CapExtendedMessage struct{}

func (CapExtendedMessage) Code() CapabilityCode       { return CapCodeExtendedMessage }
func (CapExtendedMessage) emitValue(buf *bytes.Buffer) {}

// CapEnhancedRouteRefresh is code 70, zero-length value.
type CapEnhancedRouteRefresh struct{}

func (CapEnhancedRouteRefresh) Code() CapabilityCode       { return CapCodeEnhancedRouteRefresh }
func (CapEnhancedRouteRefresh) emitValue(buf *bytes.Buffer) {}

// CapDynamicCapability is code 67, zero-length value.
type CapDynamicCapability struct{}

func (CapDynamicCapability) Code() CapabilityCode       { return CapCodeDynamicCapability }
func (CapDynamicCapability) emitValue(buf *bytes.Buffer) {}

// CapAS4 is code 65: a bare 4-byte ASN.
type CapAS4 struct {
	ASN uint32
}

func (CapAS4) Code() CapabilityCode { return CapCodeAS4 }
func (c CapAS4) emitValue(buf *bytes.Buffer) {
	writeUint32(buf, c.ASN)
}
func parseCapAS4(r *reader) (CapAS4, error) {
	asn, err := r.readUint32()
	if err != nil {
		return CapAS4{}, err
	}
	return CapAS4{ASN: asn}, nil
}

// GracefulRestartFamily is one per-(AFI,SAFI) tuple of the GR capability.
type GracefulRestartFamily struct {
	AFI                 AFI
	SAFI                SAFI
	ForwardingPreserved bool
}

// CapGracefulRestart is code 64 (RFC 4724 §3): 4-bit flags + 12-bit restart
// time packed into 2 bytes, followed by zero or more family tuples. Some
// legacy peers send only the 2-byte flags/time with no tuples; this parser
// tolerates that by simply not looping when no bytes remain.
type CapGracefulRestart struct {
	RestartState bool
	RestartTime  uint16
	Families     []GracefulRestartFamily
}

func (CapGracefulRestart) Code() CapabilityCode { return CapCodeGracefulRestart }
func (c CapGracefulRestart) emitValue(buf *bytes.Buffer) {
	flagsTime := c.RestartTime & 0x0FFF
	if c.RestartState {
		flagsTime |= 0x8000
	}
	writeUint16(buf, flagsTime)
	for _, f := range c.Families {
		writeUint16(buf, uint16(f.AFI))
		buf.WriteByte(byte(f.SAFI))
		flags := byte(0)
		if f.ForwardingPreserved {
			flags |= 0x80
		}
		buf.WriteByte(flags)
	}
}
func parseCapGracefulRestart(r *reader) (CapGracefulRestart, error) {
	if r.remaining() < 2 {
		return CapGracefulRestart{}, nil
	}
	flagsTime, err := r.readUint16()
	if err != nil {
		return CapGracefulRestart{}, err
	}
	gr := CapGracefulRestart{
		RestartState: flagsTime&0x8000 != 0,
		RestartTime:  flagsTime & 0x0FFF,
	}
	for r.remaining() >= 4 {
		afi, err := r.readUint16()
		if err != nil {
			return gr, err
		}
		safi, err := r.readUint8()
		if err != nil {
			return gr, err
		}
		flags, err := r.readUint8()
		if err != nil {
			return gr, err
		}
		gr.Families = append(gr.Families, GracefulRestartFamily{
			AFI:                 AFI(afi),
			SAFI:                SAFI(safi),
			ForwardingPreserved: flags&0x80 != 0,
		})
	}
	return gr, nil
}

// AddPathValue is one {AFI,SAFI,send/receive} entry of the Add-Path
// capability.
type AddPathValue struct {
	AFI         AFI
	SAFI        SAFI
	SendReceive AddPathSendReceive
}

// CapAddPath is code 69 (RFC 7911 §4).
type CapAddPath struct {
	Values []AddPathValue
}

func (CapAddPath) Code() CapabilityCode { return CapCodeAddPath }
func (c CapAddPath) emitValue(buf *bytes.Buffer) {
	for _, v := range c.Values {
		writeUint16(buf, uint16(v.AFI))
		buf.WriteByte(byte(v.SAFI))
		buf.WriteByte(byte(v.SendReceive))
	}
}
func parseCapAddPath(r *reader) (CapAddPath, error) {
	var c CapAddPath
	for r.remaining() >= 4 {
		afi, err := r.readUint16()
		if err != nil {
			return c, err
		}
		safi, err := r.readUint8()
		if err != nil {
			return c, err
		}
		sr, err := r.readUint8()
		if err != nil {
			return c, err
		}
		c.Values = append(c.Values, AddPathValue{AFI: AFI(afi), SAFI: SAFI(safi), SendReceive: AddPathSendReceive(sr)})
	}
	return c, nil
}

// LLGRValue is one {AFI,SAFI,flags,stale-time} entry of the LLGR capability.
type LLGRValue struct {
	AFI       AFI
	SAFI      SAFI
	Forwarded bool // F-bit: forwarding state preserved during stale period
	StaleTime uint32
}

// CapLLGR is code 71 (RFC 8538 §3): a list of 7-byte entries, each
// AFI(2)+SAFI(1)+flags(1, top bit is F)+stale-time(3, 24-bit).
type CapLLGR struct {
	Values []LLGRValue
}

func (CapLLGR) Code() CapabilityCode { return CapCodeLLGR }
func (c CapLLGR) emitValue(buf *bytes.Buffer) {
	for _, v := range c.Values {
		writeUint16(buf, uint16(v.AFI))
		buf.WriteByte(byte(v.SAFI))
		flags := byte(0)
		if v.Forwarded {
			flags |= 0x80
		}
		buf.WriteByte(flags)
		writeUint24(buf, v.StaleTime&0xFFFFFF)
	}
}
func parseCapLLGR(r *reader) (CapLLGR, error) {
	var c CapLLGR
	for r.remaining() >= 7 {
		afi, err := r.readUint16()
		if err != nil {
			return c, err
		}
		safi, err := r.readUint8()
		if err != nil {
			return c, err
		}
		flags, err := r.readUint8()
		if err != nil {
			return c, err
		}
		stale, err := r.readUint24()
		if err != nil {
			return c, err
		}
		c.Values = append(c.Values, LLGRValue{AFI: AFI(afi), SAFI: SAFI(safi), Forwarded: flags&0x80 != 0, StaleTime: stale})
	}
	return c, nil
}

// CapFQDN is code 73 (draft-walton-bgp-hostname-capability): a Pascal-style
// hostname string followed by a Pascal-style domain string.
type CapFQDN struct {
	Hostname string
	Domain   string
}

func (CapFQDN) Code() CapabilityCode { return CapCodeFQDN }
func (c CapFQDN) emitValue(buf *bytes.Buffer) {
	buf.WriteByte(byte(len(c.Hostname)))
	buf.WriteString(c.Hostname)
	buf.WriteByte(byte(len(c.Domain)))
	buf.WriteString(c.Domain)
}
func parseCapFQDN(r *reader) (CapFQDN, error) {
	hlen, err := r.readUint8()
	if err != nil {
		return CapFQDN{}, err
	}
	host, err := r.readBytes(int(hlen))
	if err != nil {
		return CapFQDN{}, err
	}
	dlen, err := r.readUint8()
	if err != nil {
		return CapFQDN{}, err
	}
	dom, err := r.readBytes(int(dlen))
	if err != nil {
		return CapFQDN{}, err
	}
	return CapFQDN{Hostname: string(host), Domain: string(dom)}, nil
}

// CapSoftwareVersion is code 75 (draft-abraitis-bgp-version-capability): a
// Pascal-style ASCII string.
type CapSoftwareVersion struct {
	Version string
}

func (CapSoftwareVersion) Code() CapabilityCode { return CapCodeSoftwareVersion }
func (c CapSoftwareVersion) emitValue(buf *bytes.Buffer) {
	buf.WriteByte(byte(len(c.Version)))
	buf.WriteString(c.Version)
}
func parseCapSoftwareVersion(r *reader) (CapSoftwareVersion, error) {
	l, err := r.readUint8()
	if err != nil {
		return CapSoftwareVersion{}, err
	}
	v, err := r.readBytes(int(l))
	if err != nil {
		return CapSoftwareVersion{}, err
	}
	return CapSoftwareVersion{Version: string(v)}, nil
}

// PathLimitValue is one {AFI,SAFI,limit} entry of the PathLimit capability.
type PathLimitValue struct {
	AFI   AFI
	SAFI  SAFI
	Limit uint16
}

// CapPathLimit is code 76: a list of 6-byte entries,
// AFI(2)+SAFI(1)+reserved(1)+limit(2).
type CapPathLimit struct {
	Values []PathLimitValue
}

func (CapPathLimit) Code() CapabilityCode { return CapCodePathLimit }
func (c CapPathLimit) emitValue(buf *bytes.Buffer) {
	for _, v := range c.Values {
		writeUint16(buf, uint16(v.AFI))
		buf.WriteByte(byte(v.SAFI))
		buf.WriteByte(0)
		writeUint16(buf, v.Limit)
	}
}
func parseCapPathLimit(r *reader) (CapPathLimit, error) {
	var c CapPathLimit
	for r.remaining() >= 6 {
		afi, err := r.readUint16()
		if err != nil {
			return c, err
		}
		safi, err := r.readUint8()
		if err != nil {
			return c, err
		}
		if _, err := r.readUint8(); err != nil {
			return c, err
		}
		limit, err := r.readUint16()
		if err != nil {
			return c, err
		}
		c.Values = append(c.Values, PathLimitValue{AFI: AFI(afi), SAFI: SAFI(safi), Limit: limit})
	}
	return c, nil
}

// CapUnknown preserves an unrecognized capability code verbatim.
type CapUnknown struct {
	CodeVal CapabilityCode
	Raw     []byte
}

func (c CapUnknown) Code() CapabilityCode { return c.CodeVal }
func (c CapUnknown) emitValue(buf *bytes.Buffer) {
	buf.Write(c.Raw)
}

func (c CapabilityCode) String() string {
	switch c {
	case CapCodeMultiProtocol:
		return "MultiProtocol"
	case CapCodeRouteRefresh:
		return "RouteRefresh"
	case CapCodeExtendedMessage:
		return "ExtendedMessage"
	case CapCodeGracefulRestart:
		return "GracefulRestart"
	case CapCodeAS4:
		return "4-octet-ASN"
	case CapCodeDynamicCapability:
		return "DynamicCapability"
	case CapCodeAddPath:
		return "AddPath"
	case CapCodeEnhancedRouteRefresh:
		return "EnhancedRouteRefresh"
	case CapCodeLLGR:
		return "LongLivedGracefulRestart"
	case CapCodeFQDN:
		return "FQDN"
	case CapCodeSoftwareVersion:
		return "SoftwareVersion"
	case CapCodePathLimit:
		return "PathLimit"
	case CapCodeRouteRefreshCisco:
		return "RouteRefreshCisco"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(c))
	}
}
