package packet

import (
	"fmt"

	"github.com/armon/go-radix"
)

// AFI is an Address Family Identifier (RFC 4760 §2).
type AFI uint16

const (
	AFIIPv4  AFI = 1
	AFIIPv6  AFI = 2
	AFIL2VPN AFI = 25
)

func (a AFI) String() string {
	switch a {
	case AFIIPv4:
		return "IPv4"
	case AFIIPv6:
		return "IPv6"
	case AFIL2VPN:
		return "L2VPN"
	default:
		return fmt.Sprintf("Unknown(%d)", uint16(a))
	}
}

// SAFI is a Subsequent Address Family Identifier (RFC 4760 §2).
type SAFI uint8

const (
	SAFIUnicast    SAFI = 1
	SAFIMulticast  SAFI = 2
	SAFIMPLSLabel  SAFI = 4
	SAFIEncap      SAFI = 7
	SAFIEVPN       SAFI = 70
	SAFIMPLSVPN    SAFI = 128
	SAFIRTC        SAFI = 132
	SAFIFlowSpec   SAFI = 133
)

func (s SAFI) String() string {
	switch s {
	case SAFIUnicast:
		return "Unicast"
	case SAFIMulticast:
		return "Multicast"
	case SAFIMPLSLabel:
		return "MPLS-labeled"
	case SAFIEncap:
		return "Encapsulation"
	case SAFIEVPN:
		return "EVPN"
	case SAFIMPLSVPN:
		return "MPLS-VPN"
	case SAFIRTC:
		return "RouteTargetConstraint"
	case SAFIFlowSpec:
		return "FlowSpec"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(s))
	}
}

// AfiSafi is the composite (AFI,SAFI) key that selects a routing-information
// family, e.g. for MP_REACH/MP_UNREACH dispatch and the Add-Path map.
type AfiSafi struct {
	AFI  AFI
	SAFI SAFI
}

func (k AfiSafi) String() string { return fmt.Sprintf("%s/%s", k.AFI, k.SAFI) }

// radixKey zero-pads both fields so lexicographic string ordering of the key
// matches numeric (AFI,SAFI) ordering.
func (k AfiSafi) radixKey() string {
	return fmt.Sprintf("%05d-%03d", uint16(k.AFI), uint8(k.SAFI))
}

// AfiSafiSet is an ordered set of (AFI,SAFI) keys, backed by a radix tree so
// Ordered() walks in deterministic, lexicographically-sorted order as
// required by §4.2. ContextFromOpenPair uses it to walk the Add-Path
// families in a stable order.
type AfiSafiSet struct {
	tree *radix.Tree
}

func NewAfiSafiSet() *AfiSafiSet {
	return &AfiSafiSet{tree: radix.New()}
}

func (s *AfiSafiSet) Add(k AfiSafi) {
	s.tree.Insert(k.radixKey(), k)
}

func (s *AfiSafiSet) Has(k AfiSafi) bool {
	_, ok := s.tree.Get(k.radixKey())
	return ok
}

func (s *AfiSafiSet) Len() int { return s.tree.Len() }

// Ordered returns every member in ascending (AFI,SAFI) order.
func (s *AfiSafiSet) Ordered() []AfiSafi {
	out := make([]AfiSafi, 0, s.tree.Len())
	s.tree.Walk(func(key string, v interface{}) bool {
		out = append(out, v.(AfiSafi))
		return false
	})
	return out
}
