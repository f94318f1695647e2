package protocol

// 错误码
const (
	ErrCodeUnknown    = 1000
	ErrCodeInvalidMsg = 1001

	ErrCodeRoomNotFound = 2001
	ErrCodeRoomFull     = 2002
	ErrCodeGameStarted  = 2004
	ErrCodeNeedPlayers  = 2005 // 开局人数不对

	ErrCodeGameNotStart   = 3001
	ErrCodeNotYourTurn    = 3002
	ErrCodeInvalidCards   = 3003
	ErrCodeCannotBeat     = 3004
	ErrCodeMustPlay       = 3005
	ErrCodeBidTooLow      = 3006
	ErrCodeInvalidBid     = 3007
	ErrCodeNotBidding     = 3008 // 不在叫分/定主阶段
	ErrCodeNotPlaying     = 3009 // 不在出牌阶段
	ErrCodeMustFollowSuit = 3010
	ErrCodeInvalidSuit    = 3011
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:        "未知错误",
	ErrCodeInvalidMsg:     "无效的消息格式",
	ErrCodeRoomNotFound:   "房间不存在",
	ErrCodeRoomFull:       "房间已满",
	ErrCodeGameStarted:    "游戏已开始",
	ErrCodeNeedPlayers:    "开局人数不符合要求",
	ErrCodeGameNotStart:   "游戏尚未开始",
	ErrCodeNotYourTurn:    "还没轮到您",
	ErrCodeInvalidCards:   "无效的牌型",
	ErrCodeCannotBeat:     "您的牌大不过上家",
	ErrCodeMustPlay:       "您必须出牌",
	ErrCodeBidTooLow:      "叫分必须高于当前最高分",
	ErrCodeInvalidBid:     "无效的叫分",
	ErrCodeNotBidding:     "不在叫分阶段",
	ErrCodeNotPlaying:     "不在出牌阶段",
	ErrCodeMustFollowSuit: "必须跟领出花色",
	ErrCodeInvalidSuit:    "无效的花色",
}
