package packet

import "bytes"

// RouteRefreshMessage is the ROUTE-REFRESH message body (RFC 2918). The
// reserved byte between AFI and SAFI is fixed at zero on emit and ignored
// on parse, matching ordinary (non-ORF) route refresh.
type RouteRefreshMessage struct {
	AFI  AFI
	SAFI SAFI
}

func parseRouteRefreshMsg(r *reader) (*RouteRefreshMessage, error) {
	afiV, err := r.readUint16()
	if err != nil {
		return nil, err
	}
	if _, err := r.readUint8(); err != nil { // reserved
		return nil, err
	}
	safiV, err := r.readUint8()
	if err != nil {
		return nil, err
	}
	return &RouteRefreshMessage{AFI: AFI(afiV), SAFI: SAFI(safiV)}, nil
}

func (m *RouteRefreshMessage) emitBody(buf *bytes.Buffer) {
	writeUint16(buf, uint16(m.AFI))
	buf.WriteByte(0)
	buf.WriteByte(byte(m.SAFI))
}
