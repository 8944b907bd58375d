package packet

import "bytes"

// Body is the type-specific payload of a BGP message. It is a closed sum
// type: only the five message bodies in this package implement it.
type Body interface {
	isBody()
}

func (*OpenMessage) isBody()         {}
func (*UpdateMessage) isBody()       {}
func (*NotificationMessage) isBody() {}
func (*KeepaliveMessage) isBody()    {}
func (*RouteRefreshMessage) isBody() {}

// Packet is one fully decoded BGP message: header plus body.
type Packet struct {
	Header Header
	Body   Body
}

// ParsePacket decodes a single BGP message from buf, which must contain
// exactly one message (use PeekLength to frame a stream first). ctx governs
// AS4/ExtendedMessage/Add-Path interpretation of UPDATE bodies and must
// reflect the OPEN exchange already completed on this session.
func ParsePacket(buf []byte, ctx *ParseContext) (*Packet, error) {
	r := newReader(buf)
	hdr, err := parseHeader(r, ctx.ExtendedMessage)
	if err != nil {
		return nil, err
	}
	if int(hdr.Length) != len(buf) {
		return nil, &Error{Kind: KindBadLength, Reason: "declared length does not match buffer size", Needed: int(hdr.Length)}
	}

	body, err := parseBody(r, hdr.Type, ctx)
	if err != nil {
		return nil, err
	}
	return &Packet{Header: hdr, Body: body}, nil
}

func parseBody(r *reader, typ MsgType, ctx *ParseContext) (Body, error) {
	switch typ {
	case MsgTypeOpen:
		return parseOpenMsg(r, ctx)
	case MsgTypeUpdate:
		return parseUpdateMsg(r, ctx)
	case MsgTypeNotification:
		return parseNotificationMsg(r)
	case MsgTypeKeepalive:
		return parseKeepaliveMsg(r)
	case MsgTypeRouteRefresh:
		return parseRouteRefreshMsg(r)
	default:
		return nil, &Error{Kind: KindMalformed, Reason: "unknown message type", Offset: HeaderLen}
	}
}

func msgTypeOf(b Body) MsgType {
	switch b.(type) {
	case *OpenMessage:
		return MsgTypeOpen
	case *UpdateMessage:
		return MsgTypeUpdate
	case *NotificationMessage:
		return MsgTypeNotification
	case *KeepaliveMessage:
		return MsgTypeKeepalive
	case *RouteRefreshMessage:
		return MsgTypeRouteRefresh
	default:
		return 0
	}
}

func emitBody(buf *bytes.Buffer, b Body) {
	switch v := b.(type) {
	case *OpenMessage:
		v.emitBody(buf)
	case *UpdateMessage:
		v.emitBody(buf)
	case *NotificationMessage:
		v.emitBody(buf)
	case *KeepaliveMessage:
		v.emitBody(buf)
	case *RouteRefreshMessage:
		v.emitBody(buf)
	}
}

// EmitPacket serializes p into a complete wire-format BGP message,
// back-patching the length field in place once the body size is known
// (the alternative to the scratch-buffer approach used for attribute and
// capability emission; spec.md §9 treats both as equally acceptable).
func EmitPacket(p *Packet) []byte {
	out := make([]byte, HeaderLen)
	for i := range out[:16] {
		out[i] = 0xff
	}
	out[18] = byte(msgTypeOf(p.Body))

	buf := bytes.NewBuffer(out)
	emitBody(buf, p.Body)

	wire := buf.Bytes()
	length := uint16(len(wire))
	wire[16] = byte(length >> 8)
	wire[17] = byte(length)
	return wire
}
