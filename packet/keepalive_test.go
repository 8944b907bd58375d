package packet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeepaliveMessageRoundTrip(t *testing.T) {
	m := &KeepaliveMessage{}
	var buf bytes.Buffer
	m.emitBody(&buf)
	assert.Empty(t, buf.Bytes())

	got, err := parseKeepaliveMsg(newReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, &KeepaliveMessage{}, got)
}

func TestKeepaliveMessageRejectsNonEmptyBody(t *testing.T) {
	_, err := parseKeepaliveMsg(newReader([]byte{1}))
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, KindBadLength, e.Kind)
}
