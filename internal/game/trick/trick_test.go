package trick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardtable/internal/game/card"
)

// wk 按五十K牌值构造一张牌
func wk(suit card.Suit, rank card.Rank) card.Card {
	value := int(rank)
	switch rank {
	case card.RankBlackJoker:
		value = 15
	case card.RankRedJoker:
		value = 16
	}
	return card.Card{Suit: suit, Rank: rank, Value: value}
}

func TestCardBeats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		a, b      card.Card
		leadSuit  card.Suit
		trumpSuit card.Suit
		expected  bool
	}{
		{
			"Higher lead suit wins",
			wk(card.Spade, card.RankK), wk(card.Spade, card.Rank9),
			card.Spade, card.Heart, true,
		},
		{
			"Off suit never takes the trick",
			wk(card.Club, card.RankA), wk(card.Spade, card.Rank3),
			card.Spade, card.Heart, false,
		},
		{
			"Trump beats high lead suit",
			wk(card.Heart, card.Rank3), wk(card.Spade, card.RankA),
			card.Spade, card.Heart, true,
		},
		{
			"Higher trump beats lower trump",
			wk(card.Heart, card.RankQ), wk(card.Heart, card.Rank4),
			card.Spade, card.Heart, true,
		},
		{
			"Small joker beats trump",
			wk(card.Joker, card.RankBlackJoker), wk(card.Heart, card.RankA),
			card.Spade, card.Heart, true,
		},
		{
			"Big joker beats small joker",
			wk(card.Joker, card.RankRedJoker), wk(card.Joker, card.RankBlackJoker),
			card.Spade, card.Heart, true,
		},
		{
			"Small joker cannot beat big joker",
			wk(card.Joker, card.RankBlackJoker), wk(card.Joker, card.RankRedJoker),
			card.Spade, card.Heart, false,
		},
		{
			"Equal value later card loses",
			wk(card.Spade, card.Rank9), wk(card.Spade, card.Rank9),
			card.Spade, card.Heart, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, CardBeats(tt.a, tt.b, tt.leadSuit, tt.trumpSuit))
		})
	}
}

func TestFollowSuitLegal(t *testing.T) {
	t.Parallel()

	hand := []card.Card{
		wk(card.Spade, card.Rank9),
		wk(card.Club, card.RankA),
		wk(card.Joker, card.RankRedJoker),
	}

	t.Run("leading any card is legal", func(t *testing.T) {
		t.Parallel()
		assert.True(t, FollowSuitLegal(wk(card.Club, card.RankA), hand, card.SuitNone))
	})

	t.Run("must follow lead suit when holding it", func(t *testing.T) {
		t.Parallel()
		assert.True(t, FollowSuitLegal(wk(card.Spade, card.Rank9), hand, card.Spade))
		assert.False(t, FollowSuitLegal(wk(card.Club, card.RankA), hand, card.Spade))
	})

	t.Run("joker does not satisfy follow suit", func(t *testing.T) {
		t.Parallel()
		assert.False(t, FollowSuitLegal(wk(card.Joker, card.RankRedJoker), hand, card.Spade))
	})

	t.Run("void in lead suit frees any card", func(t *testing.T) {
		t.Parallel()
		assert.True(t, FollowSuitLegal(wk(card.Club, card.RankA), hand, card.Diamond))
		assert.True(t, FollowSuitLegal(wk(card.Joker, card.RankRedJoker), hand, card.Diamond))
	})
}

func TestTrickLeadSuit(t *testing.T) {
	t.Parallel()

	tr := New()
	assert.Equal(t, card.SuitNone, tr.LeadSuit)

	tr.Add("p1", wk(card.Diamond, card.Rank7))
	assert.Equal(t, card.Diamond, tr.LeadSuit)

	// 后续出牌不改变领出花色
	tr.Add("p2", wk(card.Spade, card.RankA))
	assert.Equal(t, card.Diamond, tr.LeadSuit)
}

func TestTrickJokerLead(t *testing.T) {
	t.Parallel()

	tr := New()
	tr.Add("p1", wk(card.Joker, card.RankBlackJoker))
	assert.Equal(t, card.SuitNone, tr.LeadSuit)
}

func TestTrickResolveAndPoints(t *testing.T) {
	t.Parallel()

	// 黑桃领出，红心为主：♥3 吃下整墩，墩内一张 5 记 5 分
	tr := New()
	tr.Add("p1", wk(card.Spade, card.RankA))
	tr.Add("p2", wk(card.Heart, card.Rank3))
	tr.Add("p3", wk(card.Spade, card.Rank5))
	tr.Add("p4", wk(card.Club, card.RankK))

	require.True(t, tr.IsComplete(4))

	winner := tr.Resolve(card.Heart)
	assert.Equal(t, "p2", winner)
	assert.Equal(t, "p2", tr.WinnerID)
	assert.Equal(t, 15, tr.Points())
}

func TestPointValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, PointValue(wk(card.Club, card.Rank5)))
	assert.Equal(t, 10, PointValue(wk(card.Heart, card.Rank10)))
	assert.Equal(t, 10, PointValue(wk(card.Spade, card.RankK)))
	assert.Equal(t, 0, PointValue(wk(card.Diamond, card.RankA)))
	assert.Equal(t, 0, PointValue(wk(card.Joker, card.RankRedJoker)))
}
