package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardtable/internal/protocol"
)

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	msg := MustNewMessage(protocol.MsgJoin, protocol.JoinPayload{Name: "Alice"})
	data, err := Encode(msg)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, protocol.MsgJoin, decoded.Type)

	payload, err := ParsePayload[protocol.JoinPayload](decoded)
	require.NoError(t, err)
	assert.Equal(t, "Alice", payload.Name)
}

func TestDecodeInvalid(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte("not json"))
	assert.Error(t, err)

	// 缺少 type 字段
	_, err = Decode([]byte(`{"payload":{}}`))
	assert.Error(t, err)
}

func TestParsePayloadMissing(t *testing.T) {
	t.Parallel()

	msg := &protocol.Message{Type: protocol.MsgJoin}
	_, err := ParsePayload[protocol.JoinPayload](msg)
	assert.Error(t, err)
}

func TestNewErrorMessage(t *testing.T) {
	t.Parallel()

	msg := NewErrorMessage(protocol.ErrCodeNotYourTurn)
	require.Equal(t, protocol.MsgError, msg.Type)

	payload, err := ParsePayload[protocol.ErrorPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeNotYourTurn, payload.Code)
	assert.Equal(t, protocol.ErrorMessages[protocol.ErrCodeNotYourTurn], payload.Message)
}

func TestNewErrorMessageUnknownCode(t *testing.T) {
	t.Parallel()

	msg := NewErrorMessage(99999)
	payload, err := ParsePayload[protocol.ErrorPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, 99999, payload.Code)
	assert.Equal(t, protocol.ErrorMessages[protocol.ErrCodeUnknown], payload.Message)
}
