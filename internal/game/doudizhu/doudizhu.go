// Package doudizhu 实现斗地主的权威游戏状态机。
// 所有方法都只做 校验 → 变更，不做任何 I/O；
// 校验失败时返回 *apperrors.GameError 且状态保持原样。
package doudizhu

import (
	"math/rand/v2"

	"cardtable/internal/game/card"
	"cardtable/internal/game/rule"
)

// Phase 游戏阶段
type Phase string

const (
	PhaseWaiting  Phase = "waiting"
	PhaseBidding  Phase = "bidding"
	PhasePlaying  Phase = "playing"
	PhaseFinished Phase = "finished"
)

// Role 玩家身份
type Role string

const (
	RoleLandlord Role = "landlord"
	RolePeasant  Role = "peasant"
)

const (
	// MaxPlayers 斗地主固定三人
	MaxPlayers = 3
	// MaxBid 最高叫分，叫到即止
	MaxBid = 3
)

// 对局结果
const (
	WinnerLandlord = "landlord"
	WinnerPeasants = "peasants"
)

// Player 一个座位上的玩家。身份以 Name 为准，
// ID 是当前连接号，重连时会被新连接覆盖
type Player struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Hand        []card.Card `json:"hand"`
	Role        Role        `json:"role,omitempty"`
	Bid         *int        `json:"bid"` // nil = 本轮还没叫过
	IsConnected bool        `json:"is_connected"`
	IsBot       bool        `json:"is_bot,omitempty"`
}

// Game 一个房间的完整斗地主状态，房间内唯一的事实来源
type Game struct {
	Phase              Phase             `json:"phase"`
	Players            []*Player         `json:"players"`
	HoleCards          []card.Card       `json:"hole_cards"`
	CurrentPlayerIndex int               `json:"current_player_index"`
	CurrentBidIndex    int               `json:"current_bid_index"`
	HighestBid         int               `json:"highest_bid"`
	HighestBidder      string            `json:"highest_bidder,omitempty"`
	LastPlay           *rule.Combination `json:"last_play,omitempty"`
	LastPlayerID       string            `json:"last_player_id,omitempty"`
	PassCount          int               `json:"pass_count"`
	Winner             string            `json:"winner,omitempty"`
	RoomCode           string            `json:"room_code"`

	rng *rand.Rand
}

// New 创建一个等待玩家的空局
func New(roomCode string) *Game {
	return &Game{
		Phase:    PhaseWaiting,
		Players:  make([]*Player, 0, MaxPlayers),
		RoomCode: roomCode,
	}
}

// SetRand 注入随机源（测试用），nil 表示使用全局随机源
func (g *Game) SetRand(rng *rand.Rand) {
	g.rng = rng
}

func (g *Game) intn(n int) int {
	if g.rng != nil {
		return g.rng.IntN(n)
	}
	return rand.IntN(n)
}

// indexByID 按连接 ID 找座位，找不到返回 -1
func (g *Game) indexByID(connID string) int {
	for i, p := range g.Players {
		if p.ID == connID {
			return i
		}
	}
	return -1
}

// playerByName 按名字找玩家（重连匹配用）
func (g *Game) playerByName(name string) *Player {
	for _, p := range g.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}
