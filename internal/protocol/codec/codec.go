package codec

import (
	"encoding/json"
	"fmt"

	"cardtable/internal/protocol"
)

// Encode 编码消息
func Encode(msg *protocol.Message) ([]byte, error) {
	return json.Marshal(msg)
}

// Decode 解码消息
func Decode(data []byte) (*protocol.Message, error) {
	var msg protocol.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("解析消息失败: %w", err)
	}
	if msg.Type == "" {
		return nil, fmt.Errorf("消息缺少 type 字段")
	}
	return &msg, nil
}

// NewMessage 构造带 payload 的消息
func NewMessage(msgType protocol.MessageType, payload any) (*protocol.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("序列化 payload 失败: %w", err)
	}
	return &protocol.Message{Type: msgType, Payload: data}, nil
}

// MustNewMessage 构造消息，payload 序列化失败时 panic
// （只用于序列化不可能失败的内部类型）
func MustNewMessage(msgType protocol.MessageType, payload any) *protocol.Message {
	msg, err := NewMessage(msgType, payload)
	if err != nil {
		panic(err)
	}
	return msg
}

// ParsePayload 解析指定类型的 payload
func ParsePayload[T any](msg *protocol.Message) (T, error) {
	var payload T
	if len(msg.Payload) == 0 {
		return payload, fmt.Errorf("消息缺少 payload")
	}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("解析 payload 失败: %w", err)
	}
	return payload, nil
}

// NewErrorMessage 根据错误码构造错误消息
func NewErrorMessage(code int) *protocol.Message {
	text, ok := protocol.ErrorMessages[code]
	if !ok {
		text = protocol.ErrorMessages[protocol.ErrCodeUnknown]
	}
	return NewErrorMessageWithText(code, text)
}

// NewErrorMessageWithText 构造带自定义文本的错误消息
func NewErrorMessageWithText(code int, text string) *protocol.Message {
	return MustNewMessage(protocol.MsgError, protocol.ErrorPayload{
		Code:    code,
		Message: text,
	})
}
