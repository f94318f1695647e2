package wushik

import (
	"slices"

	"cardtable/internal/apperrors"
	"cardtable/internal/game/card"
	"cardtable/internal/game/trick"
)

// SetTrump 定主：轮到的座位选定主花色后直接进入出牌阶段，
// 由庄家下一位领出第一墩
func (g *Game) SetTrump(connID string, suit card.Suit) error {
	if g.Phase != PhaseBidding {
		return apperrors.ErrNotBidding
	}

	idx := g.indexByID(connID)
	if idx < 0 || idx != g.CurrentPlayerIndex {
		return apperrors.ErrNotYourTurn
	}

	if suit < card.Spade || suit > card.Diamond {
		return apperrors.ErrInvalidSuit
	}

	g.TrumpSuit = suit
	g.Phase = PhasePlaying
	g.CurrentPlayerIndex = (g.DealerIndex + 1) % g.PlayerCount
	g.CurrentTrick = trick.New()
	return nil
}

// Play 出一张牌。必须满足跟牌规则；一墩打满后结算赢家、
// 给赢家队伍记分，并由赢家领出下一墩
func (g *Game) Play(connID string, cardIndex int) error {
	if g.Phase != PhasePlaying {
		return apperrors.ErrNotPlaying
	}

	idx := g.indexByID(connID)
	if idx < 0 || idx != g.CurrentPlayerIndex {
		return apperrors.ErrNotYourTurn
	}
	p := g.Players[idx]

	if cardIndex < 0 || cardIndex >= len(p.Hand) {
		return apperrors.ErrInvalidCards
	}
	c := p.Hand[cardIndex]

	if !trick.FollowSuitLegal(c, p.Hand, g.CurrentTrick.LeadSuit) {
		return apperrors.ErrMustFollowSuit
	}

	p.Hand = slices.Delete(p.Hand, cardIndex, cardIndex+1)
	g.CurrentTrick.Add(p.ID, c)

	if !g.CurrentTrick.IsComplete(g.PlayerCount) {
		g.CurrentPlayerIndex = (g.CurrentPlayerIndex + 1) % g.PlayerCount
		return nil
	}

	winnerID := g.CurrentTrick.Resolve(g.TrumpSuit)
	points := g.CurrentTrick.Points()

	winnerIdx := g.indexByID(winnerID)
	if g.Players[winnerIdx].Team == TeamA {
		g.TeamAPoints += points
	} else {
		g.TeamBPoints += points
	}

	g.CompletedTricks = append(g.CompletedTricks, g.CurrentTrick)

	if g.handsEmpty() {
		g.Phase = PhaseFinished
		// 平分时 A 队胜
		if g.TeamAPoints >= g.TeamBPoints {
			g.Winner = TeamA
		} else {
			g.Winner = TeamB
		}
		return nil
	}

	g.CurrentPlayerIndex = winnerIdx
	g.CurrentTrick = trick.New()
	return nil
}

// handsEmpty 是否有人出完了牌（均匀发牌下等价于所有人都出完）
func (g *Game) handsEmpty() bool {
	for _, p := range g.Players {
		if len(p.Hand) == 0 {
			return true
		}
	}
	return false
}
