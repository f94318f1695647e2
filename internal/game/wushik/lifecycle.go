package wushik

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"cardtable/internal/apperrors"
	"cardtable/internal/game/card"
	"cardtable/internal/game/trick"
)

// Join 加入房间，同名玩家视为重连（任何阶段都允许）
func (g *Game) Join(connID, name string) error {
	if existing := g.playerByName(name); existing != nil {
		old := existing.ID
		existing.ID = connID
		existing.IsConnected = true
		g.remapTrickOwner(old, connID)
		return nil
	}

	if g.Phase != PhaseWaiting {
		return apperrors.ErrGameStarted
	}
	if len(g.Players) >= MaxPlayers {
		return apperrors.ErrRoomFull
	}

	g.Players = append(g.Players, &Player{
		ID:          connID,
		Name:        name,
		IsConnected: true,
	})
	return nil
}

// remapTrickOwner 重连后把当前墩里旧连接号的出牌记录挂到新连接上
func (g *Game) remapTrickOwner(oldID, newID string) {
	if g.CurrentTrick == nil {
		return
	}
	for i := range g.CurrentTrick.Plays {
		if g.CurrentTrick.Plays[i].PlayerID == oldID {
			g.CurrentTrick.Plays[i].PlayerID = newID
		}
	}
}

// AddBot 添加一个机器人占座
func (g *Game) AddBot() error {
	if g.Phase != PhaseWaiting {
		return apperrors.ErrGameStarted
	}
	if len(g.Players) >= MaxPlayers {
		return apperrors.ErrRoomFull
	}

	botNum := 0
	for _, p := range g.Players {
		if p.IsBot {
			botNum++
		}
	}
	g.Players = append(g.Players, &Player{
		ID:          "bot-" + uuid.NewString(),
		Name:        fmt.Sprintf("Bot %d", botNum+1),
		IsConnected: true,
		IsBot:       true,
	})
	return nil
}

// Start 开局：2 或 4 人才能开。分队后把牌发完
// （2 人整副 54 张各 27 张，4 人去掉大小王各 13 张），
// 从庄家开始定主
func (g *Game) Start() error {
	if g.Phase != PhaseWaiting {
		return apperrors.ErrGameStarted
	}
	n := len(g.Players)
	if n != 2 && n != 4 {
		return apperrors.ErrNeedPlayers
	}

	g.PlayerCount = n
	for i, p := range g.Players {
		p.Team = teamOf(i)
	}

	deck := card.NewDeck(card.VariantWushik)
	if n == 4 {
		deck = deck.WithoutJokers()
	}
	deck.ShuffleWith(g.rng)

	hands := card.DealWushik(deck, n)
	for i, p := range g.Players {
		p.Hand = hands[i]
	}

	g.Phase = PhaseBidding
	g.TrumpSuit = card.SuitNone
	g.CurrentPlayerIndex = g.DealerIndex
	g.CurrentTrick = trick.New()
	g.CompletedTricks = nil
	g.TeamAPoints = 0
	g.TeamBPoints = 0
	g.Winner = ""
	return nil
}

// Reset 把房间重置为空的等待状态，清掉所有玩家和进度
func (g *Game) Reset() {
	rng := g.rng
	*g = *New(g.RoomCode)
	g.rng = rng
}

// Disconnect 标记断线，座位保留
func (g *Game) Disconnect(connID string) bool {
	idx := g.indexByID(connID)
	if idx < 0 {
		return false
	}
	g.Players[idx].IsConnected = false
	return true
}

// Snapshot 把完整状态序列化为持久化快照
func (g *Game) Snapshot() ([]byte, error) {
	return json.Marshal(g)
}

// Restore 从持久化快照恢复状态
func (g *Game) Restore(data []byte) error {
	return json.Unmarshal(data, g)
}
