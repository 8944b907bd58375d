package packet

import (
	"bytes"
	"net"

	"github.com/taktv6/tflow2/convert"
)

const bgpVersion = 4

// OpenMessage is the BGP OPEN message body (RFC 4271 §4.2).
type OpenMessage struct {
	Version      uint8
	ASN          uint16
	HoldTime     uint16
	RouterID     net.IP
	Capabilities []Capability
}

// AS_TRANS is the sentinel 2-byte ASN carried in OpenMessage.ASN when
// 4-octet-ASN mode is in effect and the real ASN doesn't fit in 16 bits
// (RFC 6793 §4.1).
const AS_TRANS uint16 = 23456

func parseOpenMsg(r *reader, ctx *ParseContext) (*OpenMessage, error) {
	version, err := r.readUint8()
	if err != nil {
		return nil, err
	}
	asn, err := r.readUint16()
	if err != nil {
		return nil, err
	}
	holdTime, err := r.readUint16()
	if err != nil {
		return nil, err
	}
	idRaw, err := r.readBytes(4)
	if err != nil {
		return nil, err
	}
	routerID := net.IP(convert.Uint32Byte(convert.Uint32b(idRaw))) // round-trips through convert, matching the teacher's isValidIdentifier helper

	optParmLen, err := r.readUint8()
	if err != nil {
		return nil, err
	}
	extended := false
	var paramsLen int
	if optParmLen == 255 {
		extended = true
		l, err := r.readUint16()
		if err != nil {
			return nil, err
		}
		paramsLen = int(l)
	} else {
		paramsLen = int(optParmLen)
	}
	paramBytes, err := r.readBytes(paramsLen)
	if err != nil {
		return nil, err
	}

	pr := newReader(paramBytes)
	var caps []Capability
	for pr.remaining() > 0 {
		ptype, err := pr.readUint8()
		if err != nil {
			return nil, err
		}
		var plen int
		if extended {
			l, err := pr.readUint16()
			if err != nil {
				return nil, err
			}
			plen = int(l)
		} else {
			l, err := pr.readUint8()
			if err != nil {
				return nil, err
			}
			plen = int(l)
		}
		pval, err := pr.readBytes(plen)
		if err != nil {
			return nil, err
		}
		if ptype == 2 { // capabilities optional parameter
			vr := newReader(pval)
			for vr.remaining() > 0 {
				c, err := ParseCapability(vr)
				if err != nil {
					return nil, err
				}
				caps = append(caps, c)
			}
		}
	}

	return &OpenMessage{Version: version, ASN: asn, HoldTime: holdTime, RouterID: routerID, Capabilities: caps}, nil
}

func (m *OpenMessage) emitBody(buf *bytes.Buffer) {
	buf.WriteByte(m.Version)
	writeUint16(buf, m.ASN)
	writeUint16(buf, m.HoldTime)
	buf.Write(m.RouterID.To4())

	var params bytes.Buffer
	extended := false
	if len(m.Capabilities) > 0 {
		var capsBuf bytes.Buffer
		for _, c := range m.Capabilities {
			EmitCapability(&capsBuf, c)
		}
		// The compact form must keep the parameter block below the 255
		// sentinel; past that the RFC 9072 form is used, whose parameter
		// length is 2 bytes wide, as parseOpenMsg reads it. Capabilities are
		// never split across multiple Type-2 parameters.
		extended = capsBuf.Len()+2 >= 255
		params.WriteByte(2) // optional-parameter type: Capabilities
		if extended {
			writeUint16(&params, uint16(capsBuf.Len()))
		} else {
			params.WriteByte(byte(capsBuf.Len()))
		}
		params.Write(capsBuf.Bytes())
	}
	if extended {
		buf.WriteByte(255)
		writeUint16(buf, uint16(params.Len()))
	} else {
		buf.WriteByte(byte(params.Len()))
	}
	buf.Write(params.Bytes())
}

// isValidIdentifier rejects loopback, multicast, zero, and broadcast router
// IDs, grounded on the teacher's decoder.go isValidIdentifier.
func isValidIdentifier(id net.IP) bool {
	if id.IsLoopback() || id.IsMulticast() || id.IsUnspecified() {
		return false
	}
	if id.Equal(net.IPv4bcast) {
		return false
	}
	return true
}
