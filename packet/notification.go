package packet

import "bytes"

// NOTIFICATION error codes 1-6 (RFC 4271 §4.5), carried over from the
// teacher's packet/bgp.go constants.
const (
	MessageHeaderError      uint8 = 1
	OpenMessageError        uint8 = 2
	UpdateMessageError      uint8 = 3
	HoldTimerExpired        uint8 = 4
	FiniteStateMachineError uint8 = 5
	Cease                   uint8 = 6
)

// NotificationMessage is the BGP NOTIFICATION message body (RFC 4271 §4.5).
type NotificationMessage struct {
	ErrorCode    uint8
	ErrorSubcode uint8
	Data         []byte
}

func parseNotificationMsg(r *reader) (*NotificationMessage, error) {
	code, err := r.readUint8()
	if err != nil {
		return nil, err
	}
	subcode, err := r.readUint8()
	if err != nil {
		return nil, err
	}
	data, err := r.readBytes(r.remaining())
	if err != nil {
		return nil, err
	}
	return &NotificationMessage{ErrorCode: code, ErrorSubcode: subcode, Data: append([]byte(nil), data...)}, nil
}

func (m *NotificationMessage) emitBody(buf *bytes.Buffer) {
	buf.WriteByte(m.ErrorCode)
	buf.WriteByte(m.ErrorSubcode)
	buf.Write(m.Data)
}
