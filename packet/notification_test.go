package packet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationMessageRoundTrip(t *testing.T) {
	m := &NotificationMessage{ErrorCode: UpdateMessageError, ErrorSubcode: 3, Data: []byte{0xde, 0xad}}
	var buf bytes.Buffer
	m.emitBody(&buf)

	got, err := parseNotificationMsg(newReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestNotificationMessageNoData(t *testing.T) {
	m := &NotificationMessage{ErrorCode: Cease, ErrorSubcode: 0}
	var buf bytes.Buffer
	m.emitBody(&buf)

	got, err := parseNotificationMsg(newReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, Cease, got.ErrorCode)
	assert.Empty(t, got.Data)
}
