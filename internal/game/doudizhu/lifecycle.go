package doudizhu

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"cardtable/internal/apperrors"
	"cardtable/internal/game/card"
)

// Join 加入房间。同名玩家视为重连：不论什么阶段都把座位
// 重新绑定到新连接并标记在线，旧连接号彻底作废
func (g *Game) Join(connID, name string) error {
	if existing := g.playerByName(name); existing != nil {
		old := existing.ID
		existing.ID = connID
		existing.IsConnected = true
		if g.HighestBidder == old {
			g.HighestBidder = connID
		}
		if g.LastPlayerID == old {
			g.LastPlayerID = connID
		}
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

// Start 开局：洗牌发牌 17/17/17 + 3 张底牌，随机选首叫玩家
func (g *Game) Start() error {
	if g.Phase != PhaseWaiting {
		return apperrors.ErrGameStarted
	}
	if len(g.Players) != MaxPlayers {
		return apperrors.ErrNeedPlayers
	}

	deck := card.NewDeck(card.VariantDoudizhu)
	deck.ShuffleWith(g.rng)
	hands, hole := card.DealDoudizhu(deck)

	for i, p := range g.Players {
		p.Hand = hands[i]
		p.Role = ""
		p.Bid = nil
	}
	g.HoleCards = hole

	g.Phase = PhaseBidding
	g.CurrentBidIndex = g.intn(MaxPlayers)
	g.HighestBid = 0
	g.HighestBidder = ""
	g.LastPlay = nil
	g.LastPlayerID = ""
	g.PassCount = 0
	g.Winner = ""
	return nil
}

// Reset 把房间重置为空的等待状态，清掉所有玩家和进度
func (g *Game) Reset() {
	rng := g.rng
	*g = *New(g.RoomCode)
	g.rng = rng
}

// Disconnect 标记断线。座位保留，轮到该玩家时对局会一直等其重连
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
