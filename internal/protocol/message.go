package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	MsgJoin      MessageType = "join"       // 加入/重连房间
	MsgStartGame MessageType = "start_game" // 开始游戏
	MsgAddBot    MessageType = "add_bot"    // 添加机器人占座
	MsgReset     MessageType = "reset"      // 重置房间

	// 斗地主
	MsgBid  MessageType = "bid"  // 叫分
	MsgPass MessageType = "pass" // 不出

	// 五十K
	MsgSetTrump MessageType = "set_trump" // 定主

	// 两种玩法共用，payload 结构按玩法区分
	MsgPlay MessageType = "play" // 出牌
)

// 服务端 → 客户端 消息类型
const (
	MsgState MessageType = "state" // 全量状态快照
	MsgError MessageType = "error" // 错误消息（只发给出错的连接）
)

// GameKind 房间玩法
type GameKind string

const (
	GameDoudizhu GameKind = "doudizhu"
	GameWushik   GameKind = "wushik"
)

// Valid 是否为已知玩法
func (k GameKind) Valid() bool {
	return k == GameDoudizhu || k == GameWushik
}
