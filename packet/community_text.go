package packet

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// wellKnownCommunityNames maps the three well-known regular communities to
// their RFC 1997 / RFC 8642 text names for ParseCommunity;
// Community.String() prints the same names from its own switch.
var wellKnownCommunityNames = map[string]Community{
	"no-export":           CommunityNoExport,
	"no-advertise":        CommunityNoAdvertise,
	"no-export-subconfed": CommunityNoExportSubconfed,
}

// ParseCommunity parses a regular community in "AA:NN" or well-known-name
// form (spec.md §4.8).
func ParseCommunity(s string) (Community, error) {
	if c, ok := wellKnownCommunityNames[s]; ok {
		return c, nil
	}
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("bgp: invalid community %q", s)
	}
	hi, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil {
		return 0, fmt.Errorf("bgp: invalid community %q: %w", s, err)
	}
	lo, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil {
		return 0, fmt.Errorf("bgp: invalid community %q: %w", s, err)
	}
	return Community(hi<<16 | lo), nil
}

// ParseExtCommunity parses "rt <AA:NN|IPv4:NN|AA.AA:NN>" or
// "soo <AA:NN|IPv4:NN|AA.AA:NN>" into an 8-byte extended community.
func ParseExtCommunity(s string) (ExtCommunity, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return ExtCommunity{}, fmt.Errorf("bgp: invalid extended community %q", s)
	}
	var subtype byte
	switch strings.ToLower(fields[0]) {
	case "rt":
		subtype = extSubTypeRT
	case "soo":
		subtype = extSubTypeSOO
	default:
		return ExtCommunity{}, fmt.Errorf("bgp: unknown extended community kind %q", fields[0])
	}

	val := fields[1]
	if strings.EqualFold(val, "VXLAN") {
		var ec ExtCommunity
		ec[0], ec[1] = extTypeHighOpaque, subtype
		ec[6], ec[7] = 0, extOpaqueVXLAN
		return ec, nil
	}
	colon := strings.LastIndex(val, ":")
	if colon < 0 {
		return ExtCommunity{}, fmt.Errorf("bgp: invalid extended community value %q", val)
	}
	left, right := val[:colon], val[colon+1:]
	localAdmin, err := strconv.ParseUint(right, 10, 32)
	if err != nil {
		return ExtCommunity{}, fmt.Errorf("bgp: invalid extended community value %q: %w", val, err)
	}

	var ec ExtCommunity
	if ip := net.ParseIP(left).To4(); ip != nil {
		if localAdmin > 0xffff {
			return ExtCommunity{}, fmt.Errorf("bgp: local admin out of range for IPv4-typed community: %q", val)
		}
		ec[0], ec[1] = 0x01, subtype
		copy(ec[2:6], ip)
		ec[6], ec[7] = byte(localAdmin>>8), byte(localAdmin)
		return ec, nil
	}
	if strings.Contains(left, ".") {
		// dotted 4-octet ASN, AA.AA form
		dot := strings.Index(left, ".")
		hi, err1 := strconv.ParseUint(left[:dot], 10, 16)
		lo, err2 := strconv.ParseUint(left[dot+1:], 10, 16)
		if err1 != nil || err2 != nil {
			return ExtCommunity{}, fmt.Errorf("bgp: invalid 4-octet ASN %q", left)
		}
		if localAdmin > 0xffff {
			return ExtCommunity{}, fmt.Errorf("bgp: local admin out of range for 4-octet-AS community: %q", val)
		}
		asn := hi<<16 | lo
		ec[0], ec[1] = 0x02, subtype
		ec[2], ec[3], ec[4], ec[5] = byte(asn>>24), byte(asn>>16), byte(asn>>8), byte(asn)
		ec[6], ec[7] = byte(localAdmin>>8), byte(localAdmin)
		return ec, nil
	}
	asn, err := strconv.ParseUint(left, 10, 16)
	if err != nil {
		return ExtCommunity{}, fmt.Errorf("bgp: invalid extended community admin %q", left)
	}
	ec[0], ec[1] = 0x00, subtype
	ec[2], ec[3] = byte(asn>>8), byte(asn)
	ec[4], ec[5], ec[6], ec[7] = byte(localAdmin>>24), byte(localAdmin>>16), byte(localAdmin>>8), byte(localAdmin)
	return ec, nil
}

// ParseExtIPv6Community parses "rt [ipv6]:NN" / "soo [ipv6]:NN" into a
// 20-byte IPv6-address-specific extended community (RFC 5701).
func ParseExtIPv6Community(s string) (ExtIPv6Community, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return ExtIPv6Community{}, fmt.Errorf("bgp: invalid IPv6 extended community %q", s)
	}
	var subtype byte
	switch strings.ToLower(fields[0]) {
	case "rt":
		subtype = extSubTypeRT
	case "soo":
		subtype = extSubTypeSOO
	default:
		return ExtIPv6Community{}, fmt.Errorf("bgp: unknown extended community kind %q", fields[0])
	}
	val := strings.Trim(fields[1], "[]")
	colon := strings.LastIndex(val, "]:")
	var addrPart, adminPart string
	if colon >= 0 {
		addrPart, adminPart = val[:colon], val[colon+2:]
	} else {
		idx := strings.LastIndex(val, ":")
		if idx < 0 {
			return ExtIPv6Community{}, fmt.Errorf("bgp: invalid IPv6 extended community %q", s)
		}
		addrPart, adminPart = val[:idx], val[idx+1:]
	}
	ip := net.ParseIP(addrPart).To16()
	if ip == nil {
		return ExtIPv6Community{}, fmt.Errorf("bgp: invalid IPv6 address %q", addrPart)
	}
	localAdmin, err := strconv.ParseUint(adminPart, 10, 16)
	if err != nil {
		return ExtIPv6Community{}, fmt.Errorf("bgp: invalid local admin %q: %w", adminPart, err)
	}
	var ec ExtIPv6Community
	ec[0], ec[1] = 0x00, subtype
	copy(ec[2:18], ip)
	ec[18], ec[19] = byte(localAdmin>>8), byte(localAdmin)
	return ec, nil
}

// ParseLargeCommunity parses "AA:BB:CC" (RFC 8092).
func ParseLargeCommunity(s string) (LargeCommunity, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return LargeCommunity{}, fmt.Errorf("bgp: invalid large community %q", s)
	}
	vals := make([]uint64, 3)
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return LargeCommunity{}, fmt.Errorf("bgp: invalid large community %q: %w", s, err)
		}
		vals[i] = v
	}
	return LargeCommunity{Global: uint32(vals[0]), Local1: uint32(vals[1]), Local2: uint32(vals[2])}, nil
}
