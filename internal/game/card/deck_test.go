package card

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	t.Parallel()

	deck := NewDeck(VariantDoudizhu)
	require.Len(t, deck, 54)

	// 没有重复的牌
	seen := make(map[Card]bool)
	for _, c := range deck {
		key := Card{Suit: c.Suit, Rank: c.Rank}
		assert.False(t, seen[key], "duplicate card %v", c)
		seen[key] = true
	}
}

func TestDeckValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		variant  Variant
		rank     Rank
		expected int
	}{
		{"Doudizhu three is lowest", VariantDoudizhu, Rank3, 3},
		{"Doudizhu two beats ace", VariantDoudizhu, Rank2, 15},
		{"Doudizhu small joker", VariantDoudizhu, RankBlackJoker, 16},
		{"Doudizhu big joker", VariantDoudizhu, RankRedJoker, 17},
		{"Wushik two is lowest", VariantWushik, Rank2, 2},
		{"Wushik ace is highest regular", VariantWushik, RankA, 14},
		{"Wushik small joker", VariantWushik, RankBlackJoker, 15},
		{"Wushik big joker", VariantWushik, RankRedJoker, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			deck := NewDeck(tt.variant)
			for _, c := range deck {
				if c.Rank == tt.rank {
					assert.Equal(t, tt.expected, c.Value)
				}
			}
		})
	}
}

func TestDealDoudizhu(t *testing.T) {
	t.Parallel()

	deck := NewDeck(VariantDoudizhu)
	deck.ShuffleWith(rand.New(rand.NewPCG(1, 2)))

	hands, hole := DealDoudizhu(deck)
	require.Len(t, hands, 3)
	for _, hand := range hands {
		assert.Len(t, hand, 17)
	}
	assert.Len(t, hole, 3)

	// 发出去的牌加底牌正好是一整副
	total := len(hole)
	for _, hand := range hands {
		total += len(hand)
	}
	assert.Equal(t, 54, total)
}

func TestWithoutJokers(t *testing.T) {
	t.Parallel()

	deck := NewDeck(VariantWushik).WithoutJokers()
	require.Len(t, deck, 52)
	for _, c := range deck {
		assert.False(t, c.IsJoker())
	}
}

func TestDealWushik(t *testing.T) {
	t.Parallel()

	t.Run("two players split full deck", func(t *testing.T) {
		t.Parallel()
		deck := NewDeck(VariantWushik)
		deck.ShuffleWith(rand.New(rand.NewPCG(3, 4)))

		hands := DealWushik(deck, 2)
		require.Len(t, hands, 2)
		assert.Len(t, hands[0], 27)
		assert.Len(t, hands[1], 27)
	})

	t.Run("four players get thirteen each", func(t *testing.T) {
		t.Parallel()
		deck := NewDeck(VariantWushik).WithoutJokers()
		deck.ShuffleWith(rand.New(rand.NewPCG(5, 6)))

		hands := DealWushik(deck, 4)
		require.Len(t, hands, 4)
		for _, hand := range hands {
			assert.Len(t, hand, 13)
		}
	})
}

func TestShuffleWithDeterministic(t *testing.T) {
	t.Parallel()

	a := NewDeck(VariantDoudizhu)
	b := NewDeck(VariantDoudizhu)
	a.ShuffleWith(rand.New(rand.NewPCG(7, 8)))
	b.ShuffleWith(rand.New(rand.NewPCG(7, 8)))

	assert.Equal(t, a, b)
}

func TestCardString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "♠A", Card{Suit: Spade, Rank: RankA}.String())
	assert.Equal(t, "♥10", Card{Suit: Heart, Rank: Rank10}.String())
	assert.Equal(t, "小王", Card{Suit: Joker, Rank: RankBlackJoker}.String())
	assert.Equal(t, "大王", Card{Suit: Joker, Rank: RankRedJoker}.String())
}

func TestSuitFromName(t *testing.T) {
	t.Parallel()

	s, ok := SuitFromName("hearts")
	require.True(t, ok)
	assert.Equal(t, Heart, s)

	_, ok = SuitFromName("joker")
	assert.False(t, ok)

	_, ok = SuitFromName("stars")
	assert.False(t, ok)
}
