// Package wushik 实现五十K（2/4 人有主升级式拿分玩法）的权威游戏状态机。
// 与 doudizhu 包同构：校验 → 变更，不做 I/O，
// 拒绝时返回 *apperrors.GameError 且状态不变。
package wushik

import (
	"math/rand/v2"
	"slices"

	"cardtable/internal/game/card"
	"cardtable/internal/game/trick"
)

// Phase 游戏阶段，bidding 阶段用于定主
type Phase string

const (
	PhaseWaiting  Phase = "waiting"
	PhaseBidding  Phase = "bidding"
	PhasePlaying  Phase = "playing"
	PhaseFinished Phase = "finished"
)

// Team 队伍。4 人局 0/2 号座位一队、1/3 号一队，2 人局各自一队
type Team string

const (
	TeamA Team = "A"
	TeamB Team = "B"
)

// MaxPlayers 房间容量（4 人局满座；2 人也可开局）
const MaxPlayers = 4

// Player 一个座位上的玩家，身份以 Name 为准
type Player struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Hand        []card.Card `json:"hand"`
	Team        Team        `json:"team,omitempty"`
	IsConnected bool        `json:"is_connected"`
	IsBot       bool        `json:"is_bot,omitempty"`
}

// Game 一个房间的完整五十K状态
type Game struct {
	Phase              Phase          `json:"phase"`
	Players            []*Player      `json:"players"`
	PlayerCount        int            `json:"player_count"` // 开局时固定为 2 或 4
	TrumpSuit          card.Suit      `json:"trump_suit"`
	CurrentPlayerIndex int            `json:"current_player_index"`
	DealerIndex        int            `json:"dealer_index"`
	CurrentTrick       *trick.Trick   `json:"current_trick"`
	CompletedTricks    []*trick.Trick `json:"completed_tricks"`
	TeamAPoints        int            `json:"team_a_points"`
	TeamBPoints        int            `json:"team_b_points"`
	Winner             Team           `json:"winner,omitempty"`
	RoomCode           string         `json:"room_code"`

	rng *rand.Rand
}

// New 创建一个等待玩家的空局
func New(roomCode string) *Game {
	return &Game{
		Phase:        PhaseWaiting,
		Players:      make([]*Player, 0, MaxPlayers),
		TrumpSuit:    card.SuitNone,
		CurrentTrick: trick.New(),
		RoomCode:     roomCode,
	}
}

// SetRand 注入随机源（测试用）
func (g *Game) SetRand(rng *rand.Rand) {
	g.rng = rng
}

func (g *Game) indexByID(connID string) int {
	for i, p := range g.Players {
		if p.ID == connID {
			return i
		}
	}
	return -1
}

func (g *Game) playerByName(name string) *Player {
	for _, p := range g.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// teamOf 座位对应的队伍
func teamOf(seat int) Team {
	if seat%2 == 0 {
		return TeamA
	}
	return TeamB
}

// SortHand 返回按显示顺序排好的手牌副本：王最大，主牌其次，
// 其余按花色归组、组内按牌值升序（给客户端显示用，不改变手牌本身）
func SortHand(hand []card.Card, trumpSuit card.Suit) []card.Card {
	suitOrder := map[card.Suit]int{card.Club: 1, card.Diamond: 2, card.Heart: 3, card.Spade: 4}

	sorted := append([]card.Card(nil), hand...)
	slices.SortStableFunc(sorted, func(a, b card.Card) int {
		rank := func(c card.Card) int {
			switch {
			case c.IsJoker():
				return 6
			case c.Suit == trumpSuit:
				return 5
			default:
				return suitOrder[c.Suit]
			}
		}
		if ra, rb := rank(a), rank(b); ra != rb {
			return ra - rb
		}
		return a.Value - b.Value
	})
	return sorted
}
