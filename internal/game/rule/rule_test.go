package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardtable/internal/game/card"
)

// dd 按斗地主牌值构造一手牌，花色轮换只为凑出合法的 Card
func dd(ranks ...card.Rank) []card.Card {
	cards := make([]card.Card, len(ranks))
	for i, r := range ranks {
		value := int(r)
		suit := card.Suit(i % 4)
		switch r {
		case card.Rank2:
			value = 15
		case card.RankBlackJoker:
			value = 16
			suit = card.Joker
		case card.RankRedJoker:
			value = 17
			suit = card.Joker
		}
		cards[i] = card.Card{Suit: suit, Rank: r, Value: value}
	}
	return cards
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ranks    []card.Rank
		expected ComboType
		keyValue int
		length   int
	}{
		{"Single", []card.Rank{card.Rank7}, Single, 7, 0},
		{"Single two", []card.Rank{card.Rank2}, Single, 15, 0},
		{"Pair", []card.Rank{card.Rank5, card.Rank5}, Pair, 5, 0},
		{"Trio", []card.Rank{card.RankQ, card.RankQ, card.RankQ}, Trio, 12, 0},
		{"Trio with single", []card.Rank{card.Rank8, card.Rank8, card.Rank8, card.Rank3}, TrioWithSingle, 8, 0},
		{"Trio with pair", []card.Rank{card.Rank8, card.Rank8, card.Rank8, card.Rank4, card.Rank4}, TrioWithPair, 8, 0},
		{"Straight", []card.Rank{card.Rank3, card.Rank4, card.Rank5, card.Rank6, card.Rank7}, Straight, 7, 5},
		{"Straight to ace", []card.Rank{card.Rank10, card.RankJ, card.RankQ, card.RankK, card.RankA}, Straight, 14, 5},
		{"Pair straight", []card.Rank{card.Rank3, card.Rank3, card.Rank4, card.Rank4, card.Rank5, card.Rank5}, PairStraight, 5, 3},
		{"Plane", []card.Rank{card.Rank3, card.Rank3, card.Rank3, card.Rank4, card.Rank4, card.Rank4}, Plane, 4, 2},
		{
			"Plane with single wings",
			[]card.Rank{card.Rank3, card.Rank3, card.Rank3, card.Rank4, card.Rank4, card.Rank4, card.Rank9, card.RankK},
			PlaneWithWings, 4, 2,
		},
		{
			"Plane with pair wings",
			[]card.Rank{card.Rank5, card.Rank5, card.Rank5, card.Rank6, card.Rank6, card.Rank6, card.Rank9, card.Rank9, card.RankJ, card.RankJ},
			PlaneWithWings, 6, 2,
		},
		{
			"Four with two singles",
			[]card.Rank{card.Rank9, card.Rank9, card.Rank9, card.Rank9, card.Rank3, card.Rank5},
			FourWithTwo, 9, 0,
		},
		{
			"Four with two pairs",
			[]card.Rank{card.Rank9, card.Rank9, card.Rank9, card.Rank9, card.Rank3, card.Rank3, card.Rank5, card.Rank5},
			FourWithTwo, 9, 0,
		},
		{"Bomb", []card.Rank{card.Rank6, card.Rank6, card.Rank6, card.Rank6}, Bomb, 6, 0},
		{"Rocket", []card.Rank{card.RankBlackJoker, card.RankRedJoker}, Rocket, 99, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			combo, ok := Classify(dd(tt.ranks...))
			require.True(t, ok)
			assert.Equal(t, tt.expected, combo.Type)
			assert.Equal(t, tt.keyValue, combo.KeyValue)
			assert.Equal(t, tt.length, combo.Length)
		})
	}
}

func TestClassifyInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ranks []card.Rank
	}{
		{"Empty", nil},
		{"Mismatched pair", []card.Rank{card.Rank5, card.Rank6}},
		{"Four card straight", []card.Rank{card.Rank3, card.Rank4, card.Rank5, card.Rank6}},
		{"Straight through two", []card.Rank{card.RankJ, card.RankQ, card.RankK, card.RankA, card.Rank2}},
		{"Two pair only", []card.Rank{card.Rank3, card.Rank3, card.Rank4, card.Rank4}},
		{"Pair straight with two", []card.Rank{card.RankA, card.RankA, card.Rank2, card.Rank2, card.Rank3, card.Rank3}},
		{"Trio with two singles", []card.Rank{card.Rank8, card.Rank8, card.Rank8, card.Rank3, card.Rank4}},
		{"Non consecutive plane", []card.Rank{card.Rank3, card.Rank3, card.Rank3, card.Rank5, card.Rank5, card.Rank5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			combo, ok := Classify(dd(tt.ranks...))
			assert.False(t, ok)
			assert.Equal(t, Invalid, combo.Type)
		})
	}
}

func mustClassify(t *testing.T, ranks ...card.Rank) Combination {
	t.Helper()
	combo, ok := Classify(dd(ranks...))
	require.True(t, ok)
	return combo
}

func TestCanBeat(t *testing.T) {
	t.Parallel()

	single3 := mustClassify(t, card.Rank3)
	single2 := mustClassify(t, card.Rank2)
	pair5 := mustClassify(t, card.Rank5, card.Rank5)
	pairK := mustClassify(t, card.RankK, card.RankK)
	straight37 := mustClassify(t, card.Rank3, card.Rank4, card.Rank5, card.Rank6, card.Rank7)
	straight48 := mustClassify(t, card.Rank4, card.Rank5, card.Rank6, card.Rank7, card.Rank8)
	straight39 := mustClassify(t, card.Rank3, card.Rank4, card.Rank5, card.Rank6, card.Rank7, card.Rank8, card.Rank9)
	bomb6 := mustClassify(t, card.Rank6, card.Rank6, card.Rank6, card.Rank6)
	bombQ := mustClassify(t, card.RankQ, card.RankQ, card.RankQ, card.RankQ)
	rocket := mustClassify(t, card.RankBlackJoker, card.RankRedJoker)

	tests := []struct {
		name      string
		current   Combination
		candidate Combination
		expected  bool
	}{
		{"Higher single beats lower", single3, single2, true},
		{"Lower single loses", single2, single3, false},
		{"Equal single loses", single3, single3, false},
		{"Pair beats lower pair", pair5, pairK, true},
		{"Pair cannot beat single", single3, pair5, false},
		{"Same length straight beats", straight37, straight48, true},
		{"Longer straight cannot beat", straight37, straight39, false},
		{"Bomb beats single", single2, bomb6, true},
		{"Bomb beats straight", straight39, bomb6, true},
		{"Higher bomb beats bomb", bomb6, bombQ, true},
		{"Lower bomb loses to bomb", bombQ, bomb6, false},
		{"Single cannot beat bomb", bomb6, single2, false},
		{"Rocket beats bomb", bombQ, rocket, true},
		{"Bomb cannot beat rocket", rocket, bombQ, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, CanBeat(tt.current, tt.candidate))
		})
	}
}
