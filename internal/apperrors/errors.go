package apperrors

import (
	"cardtable/internal/protocol"
)

// GameError 游戏错误（两种玩法共享），每种拒绝原因一个预定义值，
// 被拒绝的操作不改动任何状态
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

func newError(code int) *GameError {
	return &GameError{Code: code, Message: protocol.ErrorMessages[code]}
}

// 预定义错误
var (
	ErrInvalidMsg   = newError(protocol.ErrCodeInvalidMsg)
	ErrRoomNotFound = newError(protocol.ErrCodeRoomNotFound)
	ErrRoomFull     = newError(protocol.ErrCodeRoomFull)
	ErrGameStarted  = newError(protocol.ErrCodeGameStarted)
	ErrNeedPlayers  = newError(protocol.ErrCodeNeedPlayers)

	ErrGameNotStart   = newError(protocol.ErrCodeGameNotStart)
	ErrNotYourTurn    = newError(protocol.ErrCodeNotYourTurn)
	ErrInvalidCards   = newError(protocol.ErrCodeInvalidCards)
	ErrCannotBeat     = newError(protocol.ErrCodeCannotBeat)
	ErrMustPlay       = newError(protocol.ErrCodeMustPlay)
	ErrBidTooLow      = newError(protocol.ErrCodeBidTooLow)
	ErrInvalidBid     = newError(protocol.ErrCodeInvalidBid)
	ErrNotBidding     = newError(protocol.ErrCodeNotBidding)
	ErrNotPlaying     = newError(protocol.ErrCodeNotPlaying)
	ErrMustFollowSuit = newError(protocol.ErrCodeMustFollowSuit)
	ErrInvalidSuit    = newError(protocol.ErrCodeInvalidSuit)
)
