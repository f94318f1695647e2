package protocol

import "encoding/json"

// --- 客户端请求 Payloads ---

// JoinPayload 加入房间请求，Name 是跨连接的身份标识（重连凭据）
type JoinPayload struct {
	Name string `json:"name"`
}

// BidPayload 斗地主叫分请求，0 = 不叫，1-3 = 叫分
type BidPayload struct {
	Value int `json:"value"`
}

// PlayCardsPayload 斗地主出牌请求，CardIDs 是手牌下标
type PlayCardsPayload struct {
	CardIDs []int `json:"card_ids"`
}

// SetTrumpPayload 五十K定主请求
type SetTrumpPayload struct {
	Suit string `json:"suit"` // spades/hearts/clubs/diamonds
}

// PlayCardPayload 五十K出牌请求，CardIndex 是手牌下标
type PlayCardPayload struct {
	CardIndex int `json:"card_index"`
}

// --- 服务端响应 Payloads ---

// StatePayload 全量状态快照，State 是对应玩法 GameState 的 JSON
type StatePayload struct {
	Game  GameKind        `json:"game"`
	State json.RawMessage `json:"state"`
}

// ErrorPayload 错误响应
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
