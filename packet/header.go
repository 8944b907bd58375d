package packet

import "encoding/binary"

// MsgType is the 1-byte BGP message type code (RFC 4271 §4.1).
type MsgType uint8

const (
	MsgTypeOpen         MsgType = 1
	MsgTypeUpdate       MsgType = 2
	MsgTypeNotification MsgType = 3
	MsgTypeKeepalive    MsgType = 4
	MsgTypeRouteRefresh MsgType = 5
)

func (t MsgType) String() string {
	switch t {
	case MsgTypeOpen:
		return "OPEN"
	case MsgTypeUpdate:
		return "UPDATE"
	case MsgTypeNotification:
		return "NOTIFICATION"
	case MsgTypeKeepalive:
		return "KEEPALIVE"
	case MsgTypeRouteRefresh:
		return "ROUTE-REFRESH"
	default:
		return "UNKNOWN"
	}
}

const (
	// HeaderLen is the fixed 19-byte BGP message header: 16-byte marker,
	// 2-byte length, 1-byte type (RFC 4271 §4.1).
	HeaderLen = 19
	// MinLen is the smallest legal total message length (a bare KEEPALIVE).
	MinLen = HeaderLen
	// MaxLen is the largest legal total message length for a peer that has
	// not negotiated the Extended Message capability (RFC 4271 §4.1).
	MaxLen = 4096
	// MaxExtLen is the largest legal total message length for a peer that
	// negotiated RFC 8654 Extended Message.
	MaxExtLen = 65535
)

// Header is the fixed 19-byte BGP message header. The marker is not
// retained: it is accepted unconditionally on parse (any pattern, not just
// all-ones) and a caller wanting to enforce a particular marker must check
// the raw bytes itself before calling parseHeader.
type Header struct {
	Length uint16
	Type   MsgType
}

// PeekLength reads the 2-byte length field out of a buffer that contains at
// least a full header, without consuming anything. Used by stream framers
// to decide how many more bytes to buffer before calling ParsePacket.
func PeekLength(buf []byte) (uint16, error) {
	if len(buf) < HeaderLen {
		return 0, truncated(len(buf), HeaderLen)
	}
	return binary.BigEndian.Uint16(buf[16:18]), nil
}

func parseHeader(r *reader, extendedMessage bool) (Header, error) {
	// The marker is all-ones on transmit (RFC 4271 §4.1) but any pattern is
	// accepted on receive: authentication extensions are free to carry
	// something else here, and this package doesn't implement any of them.
	if _, err := r.readBytes(16); err != nil {
		return Header{}, err
	}
	length, err := r.readUint16()
	if err != nil {
		return Header{}, err
	}
	typByte, err := r.readUint8()
	if err != nil {
		return Header{}, err
	}
	maxLen := uint16(MaxLen)
	if extendedMessage {
		maxLen = MaxExtLen
	}
	if length < MinLen || length > maxLen {
		return Header{}, &Error{Kind: KindBadLength, Reason: "message length out of range", Needed: int(length)}
	}
	return Header{Length: length, Type: MsgType(typByte)}, nil
}
