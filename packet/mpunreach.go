package packet

import "bytes"

// MpNlriUnreachBody is the family-specific payload of a MP_UNREACH_NLRI
// attribute.
type MpNlriUnreachBody interface {
	mpFamily() AfiSafi
	isEndOfRib() bool
}

type MpUnreachIPv4Unicast struct{ NLRI []Ipv4Nlri }

func (MpUnreachIPv4Unicast) mpFamily() AfiSafi   { return AfiSafi{AFIIPv4, SAFIUnicast} }
func (b MpUnreachIPv4Unicast) isEndOfRib() bool  { return len(b.NLRI) == 0 }

type MpUnreachIPv6Unicast struct{ NLRI []Ipv6Nlri }

func (MpUnreachIPv6Unicast) mpFamily() AfiSafi  { return AfiSafi{AFIIPv6, SAFIUnicast} }
func (b MpUnreachIPv6Unicast) isEndOfRib() bool { return len(b.NLRI) == 0 }

type MpUnreachVPNv4 struct{ NLRI []Vpnv4Nlri }

func (MpUnreachVPNv4) mpFamily() AfiSafi   { return AfiSafi{AFIIPv4, SAFIMPLSVPN} }
func (b MpUnreachVPNv4) isEndOfRib() bool  { return len(b.NLRI) == 0 }

type MpUnreachEVPN struct{ Routes []EvpnRoute }

func (MpUnreachEVPN) mpFamily() AfiSafi   { return AfiSafi{AFIL2VPN, SAFIEVPN} }
func (b MpUnreachEVPN) isEndOfRib() bool  { return len(b.Routes) == 0 }

type MpUnreachRTC struct{ NLRI []RtcNlri }

func (MpUnreachRTC) mpFamily() AfiSafi  { return AfiSafi{AFIIPv4, SAFIRTC} }
func (b MpUnreachRTC) isEndOfRib() bool { return len(b.NLRI) == 0 }

// MpUnreachAttr is the MP_UNREACH_NLRI attribute (type 15, RFC 4760 §4).
type MpUnreachAttr struct {
	AFI  AFI
	SAFI SAFI
	Body MpNlriUnreachBody
}

// IsEndOfRib reports whether this attribute is an End-of-RIB marker: an
// empty NLRI/route vector after the AFI/SAFI header.
func (a MpUnreachAttr) IsEndOfRib() bool {
	if a.Body == nil {
		return true
	}
	return a.Body.isEndOfRib()
}

func parseMPUnreach(r *reader, ctx *ParseContext) (MpUnreachAttr, error) {
	afiV, err := r.readUint16()
	if err != nil {
		return MpUnreachAttr{}, err
	}
	safiV, err := r.readUint8()
	if err != nil {
		return MpUnreachAttr{}, err
	}
	afi, safi := AFI(afiV), SAFI(safiV)
	addPath := ctx.addPathRecv(AfiSafi{afi, safi})

	switch {
	case afi == AFIIPv4 && safi == SAFIUnicast:
		var nlri []Ipv4Nlri
		for r.remaining() > 0 {
			n, err := parseIpv4Nlri(r, addPath)
			if err != nil {
				return MpUnreachAttr{}, err
			}
			nlri = append(nlri, n)
		}
		return MpUnreachAttr{AFI: afi, SAFI: safi, Body: MpUnreachIPv4Unicast{NLRI: nlri}}, nil
	case afi == AFIIPv6 && safi == SAFIUnicast:
		var nlri []Ipv6Nlri
		for r.remaining() > 0 {
			n, err := parseIpv6Nlri(r, addPath)
			if err != nil {
				return MpUnreachAttr{}, err
			}
			nlri = append(nlri, n)
		}
		return MpUnreachAttr{AFI: afi, SAFI: safi, Body: MpUnreachIPv6Unicast{NLRI: nlri}}, nil
	case afi == AFIIPv4 && safi == SAFIMPLSVPN:
		var nlri []Vpnv4Nlri
		for r.remaining() > 0 {
			n, err := parseVpnv4Nlri(r, addPath)
			if err != nil {
				return MpUnreachAttr{}, err
			}
			nlri = append(nlri, n)
		}
		return MpUnreachAttr{AFI: afi, SAFI: safi, Body: MpUnreachVPNv4{NLRI: nlri}}, nil
	case afi == AFIL2VPN && safi == SAFIEVPN:
		var routes []EvpnRoute
		for r.remaining() > 0 {
			route, err := parseEvpnRoute(r, addPath)
			if err != nil {
				return MpUnreachAttr{}, err
			}
			routes = append(routes, route)
		}
		return MpUnreachAttr{AFI: afi, SAFI: safi, Body: MpUnreachEVPN{Routes: routes}}, nil
	case afi == AFIIPv4 && safi == SAFIRTC:
		var nlri []RtcNlri
		for r.remaining() > 0 {
			n, err := parseRtcNlri(r, addPath)
			if err != nil {
				return MpUnreachAttr{}, err
			}
			nlri = append(nlri, n)
		}
		return MpUnreachAttr{AFI: afi, SAFI: safi, Body: MpUnreachRTC{NLRI: nlri}}, nil
	default:
		return MpUnreachAttr{}, &Error{Kind: KindUnsupportedFamily, AFI: afi, SAFI: safi, Type: AttrTypeMPUnreachNLRI}
	}
}

func (a MpUnreachAttr) emitValue(buf *bytes.Buffer) {
	writeUint16(buf, uint16(a.AFI))
	buf.WriteByte(byte(a.SAFI))
	switch b := a.Body.(type) {
	case MpUnreachIPv4Unicast:
		for _, n := range b.NLRI {
			emitIpv4Nlri(buf, n)
		}
	case MpUnreachIPv6Unicast:
		for _, n := range b.NLRI {
			emitIpv6Nlri(buf, n)
		}
	case MpUnreachVPNv4:
		for _, n := range b.NLRI {
			n.emit(buf)
		}
	case MpUnreachEVPN:
		for _, route := range b.Routes {
			route.emitRoute(buf)
		}
	case MpUnreachRTC:
		for _, n := range b.NLRI {
			n.emit(buf)
		}
	}
}
