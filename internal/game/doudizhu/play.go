package doudizhu

import (
	"slices"

	"cardtable/internal/apperrors"
	"cardtable/internal/game/card"
	"cardtable/internal/game/rule"
)

// Bid 叫分。0 = 不叫，1-3 必须高于当前最高分；
// 三人都表过态或有人叫满 3 分时结束叫分
func (g *Game) Bid(connID string, value int) error {
	if g.Phase != PhaseBidding {
		return apperrors.ErrNotBidding
	}

	idx := g.indexByID(connID)
	if idx < 0 || idx != g.CurrentBidIndex {
		return apperrors.ErrNotYourTurn
	}

	if value < 0 || value > MaxBid {
		return apperrors.ErrInvalidBid
	}
	if value > 0 && value <= g.HighestBid {
		return apperrors.ErrBidTooLow
	}

	p := g.Players[idx]
	p.Bid = &value

	if value > g.HighestBid {
		g.HighestBid = value
		g.HighestBidder = p.ID
	}

	allBid := true
	for _, p := range g.Players {
		if p.Bid == nil {
			allBid = false
			break
		}
	}

	if allBid || g.HighestBid == MaxBid {
		g.finishBidding()
	} else {
		g.CurrentBidIndex = (g.CurrentBidIndex + 1) % MaxPlayers
	}
	return nil
}

// finishBidding 叫分结束：没人叫分则流局回到等待状态（玩家保留座位），
// 否则最高叫分者当地主、拿底牌并先出牌
func (g *Game) finishBidding() {
	if g.HighestBidder == "" {
		g.Phase = PhaseWaiting
		for _, p := range g.Players {
			p.Hand = nil
			p.Bid = nil
			p.Role = ""
		}
		g.HoleCards = nil
		return
	}

	landlordIdx := g.indexByID(g.HighestBidder)
	for i, p := range g.Players {
		if i == landlordIdx {
			p.Role = RoleLandlord
		} else {
			p.Role = RolePeasant
		}
	}

	landlord := g.Players[landlordIdx]
	landlord.Hand = append(landlord.Hand, g.HoleCards...)

	g.Phase = PhasePlaying
	g.CurrentPlayerIndex = landlordIdx
}

// Play 出牌。cardIDs 是手牌下标；必须组成合法牌型，
// 且在不是自由出牌时要大过上家
func (g *Game) Play(connID string, cardIDs []int) error {
	if g.Phase != PhasePlaying {
		return apperrors.ErrNotPlaying
	}

	idx := g.indexByID(connID)
	if idx < 0 || idx != g.CurrentPlayerIndex {
		return apperrors.ErrNotYourTurn
	}
	p := g.Players[idx]

	cards, ok := pickCards(p.Hand, cardIDs)
	if !ok {
		return apperrors.ErrInvalidCards
	}

	combo, ok := rule.Classify(cards)
	if !ok {
		return apperrors.ErrInvalidCards
	}

	// 上一手不是自己出的就必须压过去；
	// 其他两家都不要后轮回自己时是自由出牌
	if g.LastPlay != nil && g.LastPlayerID != p.ID {
		if !rule.CanBeat(*g.LastPlay, combo) {
			return apperrors.ErrCannotBeat
		}
	}

	// 按下标从大到小移除，避免删除时下标错位
	sorted := append([]int(nil), cardIDs...)
	slices.Sort(sorted)
	slices.Reverse(sorted)
	for _, i := range sorted {
		p.Hand = slices.Delete(p.Hand, i, i+1)
	}

	g.LastPlay = &combo
	g.LastPlayerID = p.ID
	g.PassCount = 0

	if len(p.Hand) == 0 {
		g.Phase = PhaseFinished
		if p.Role == RoleLandlord {
			g.Winner = WinnerLandlord
		} else {
			g.Winner = WinnerPeasants
		}
		return nil
	}

	g.CurrentPlayerIndex = (g.CurrentPlayerIndex + 1) % MaxPlayers
	return nil
}

// Pass 不出。领出方和没人出过牌时不能过；
// 其他两家都过时清空上一手，让原出牌者自由出牌
func (g *Game) Pass(connID string) error {
	if g.Phase != PhasePlaying {
		return apperrors.ErrNotPlaying
	}

	idx := g.indexByID(connID)
	if idx < 0 || idx != g.CurrentPlayerIndex {
		return apperrors.ErrNotYourTurn
	}

	if g.LastPlay == nil || g.LastPlayerID == connID {
		return apperrors.ErrMustPlay
	}

	g.PassCount++
	if g.PassCount >= MaxPlayers-1 {
		g.LastPlay = nil
		g.PassCount = 0
	}

	g.CurrentPlayerIndex = (g.CurrentPlayerIndex + 1) % MaxPlayers
	return nil
}

// pickCards 校验手牌下标（越界、重复都不行）并取出对应的牌
func pickCards(hand []card.Card, cardIDs []int) ([]card.Card, bool) {
	if len(cardIDs) == 0 {
		return nil, false
	}
	seen := make(map[int]bool, len(cardIDs))
	cards := make([]card.Card, 0, len(cardIDs))
	for _, i := range cardIDs {
		if i < 0 || i >= len(hand) || seen[i] {
			return nil, false
		}
		seen[i] = true
		cards = append(cards, hand[i])
	}
	return cards, true
}
