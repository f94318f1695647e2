package types

import (
	"cardtable/internal/protocol"
)

// ClientInterface 定义连接接口（打破 room 与 server 的循环依赖）
type ClientInterface interface {
	GetID() string
	SendMessage(msg *protocol.Message)
	Close()
}
