package trick

import "cardtable/internal/game/card"

// Play 一墩中某个玩家打出的一张牌
type Play struct {
	PlayerID string    `json:"player_id"`
	Card     card.Card `json:"card"`
}

// Trick 一墩牌：每个在座玩家各出一张后结算
type Trick struct {
	LeadSuit card.Suit `json:"lead_suit"` // 领出花色，王牌领出时为 SuitNone
	Plays    []Play    `json:"plays"`
	WinnerID string    `json:"winner_id,omitempty"`
}

// New 创建一墩空牌
func New() *Trick {
	return &Trick{LeadSuit: card.SuitNone, Plays: make([]Play, 0, 4)}
}

// Add 记录一张出牌，第一张普通牌确定本墩的领出花色
func (t *Trick) Add(playerID string, c card.Card) {
	if len(t.Plays) == 0 && !c.IsJoker() {
		t.LeadSuit = c.Suit
	}
	t.Plays = append(t.Plays, Play{PlayerID: playerID, Card: c})
}

// IsComplete 所有在座玩家是否都已出牌
func (t *Trick) IsComplete(playerCount int) bool {
	return len(t.Plays) >= playerCount
}

// Resolve 结算本墩赢家：顺次扫描，后出的牌能压住当前最大时取代之
func (t *Trick) Resolve(trumpSuit card.Suit) string {
	if len(t.Plays) == 0 {
		return ""
	}
	winning := 0
	for i := 1; i < len(t.Plays); i++ {
		if CardBeats(t.Plays[i].Card, t.Plays[winning].Card, t.LeadSuit, trumpSuit) {
			winning = i
		}
	}
	t.WinnerID = t.Plays[winning].PlayerID
	return t.WinnerID
}

// Points 本墩的分值
func (t *Trick) Points() int {
	points := 0
	for _, p := range t.Plays {
		points += PointValue(p.Card)
	}
	return points
}

// PointValue 单张牌的分值：5 记 5 分，10 和 K 记 10 分，其余不记分
func PointValue(c card.Card) int {
	if c.IsJoker() {
		return 0
	}
	switch c.Rank {
	case card.Rank5:
		return 5
	case card.Rank10, card.RankK:
		return 10
	}
	return 0
}

// CardBeats reports whether a beats b. The big joker beats everything, the
// small joker beats any non-joker, trump beats non-trump, and among
// equal-status cards the one following the lead suit with the higher value
// wins. A card that is neither trump nor lead suit never takes the trick.
func CardBeats(a, b card.Card, leadSuit, trumpSuit card.Suit) bool {
	if a.IsJoker() && a.IsBigJoker() {
		return true
	}
	if b.IsJoker() && b.IsBigJoker() {
		return false
	}
	if a.IsJoker() {
		return !b.IsJoker()
	}
	if b.IsJoker() {
		return false
	}

	aTrump := a.Suit == trumpSuit
	bTrump := b.Suit == trumpSuit
	if aTrump != bTrump {
		return aTrump
	}
	if aTrump && bTrump {
		return a.Value > b.Value
	}

	aFollows := a.Suit == leadSuit
	bFollows := b.Suit == leadSuit
	if aFollows != bFollows {
		return aFollows
	}
	if aFollows && bFollows {
		return a.Value > b.Value
	}

	// 双方既非主牌也非领出花色，先出者保持领先
	return false
}

// FollowSuitLegal 跟牌合法性：墩内还没有领出花色时任意出牌；
// 手里有领出花色时必须跟（王牌此时也不能出）；没有则任意出牌
func FollowSuitLegal(c card.Card, hand []card.Card, leadSuit card.Suit) bool {
	if leadSuit == card.SuitNone {
		return true
	}
	hasLead := false
	for _, h := range hand {
		if !h.IsJoker() && h.Suit == leadSuit {
			hasLead = true
			break
		}
	}
	if !hasLead {
		return true
	}
	if c.IsJoker() {
		return false
	}
	return c.Suit == leadSuit
}
