package packet

import "github.com/sirupsen/logrus"

// Dump logs a structured summary of the packet at debug level. It is never
// called from the parse or emit paths; callers wire it in explicitly where
// they want wire-level tracing, mirroring the teacher's opt-in dump style.
func (p *Packet) Dump(log *logrus.Entry) {
	fields := logrus.Fields{
		"length": p.Header.Length,
		"type":   p.Header.Type.String(),
	}
	switch b := p.Body.(type) {
	case *OpenMessage:
		fields["asn"] = b.ASN
		fields["hold_time"] = b.HoldTime
		fields["router_id"] = b.RouterID.String()
		fields["capabilities"] = len(b.Capabilities)
	case *UpdateMessage:
		fields["withdrawn"] = len(b.WithdrawnRoutes)
		fields["attributes"] = len(b.PathAttributes)
		fields["nlri"] = len(b.NLRI)
	case *NotificationMessage:
		fields["error_code"] = b.ErrorCode
		fields["error_subcode"] = b.ErrorSubcode
	case *RouteRefreshMessage:
		fields["afi"] = b.AFI.String()
		fields["safi"] = b.SAFI.String()
	}
	log.WithFields(fields).Debug("bgp packet")
}
