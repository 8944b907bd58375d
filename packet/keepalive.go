package packet

import "bytes"

// KeepaliveMessage is the BGP KEEPALIVE message body (RFC 4271 §4.4). It
// carries no fields; the 19-byte header is the entire message.
type KeepaliveMessage struct{}

func parseKeepaliveMsg(r *reader) (*KeepaliveMessage, error) {
	if r.remaining() != 0 {
		return nil, &Error{Kind: KindBadLength, Reason: "KEEPALIVE body must be empty", Offset: r.offset()}
	}
	return &KeepaliveMessage{}, nil
}

func (m *KeepaliveMessage) emitBody(buf *bytes.Buffer) {}
