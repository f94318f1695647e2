package card

import "math/rand/v2"

// Variant 定义玩法（两种玩法的牌值映射不同）
type Variant int

const (
	VariantDoudizhu Variant = iota // 斗地主：3 最小，2 最大
	VariantWushik                  // 五十K：2 最小，A 最大
)

// Deck 定义一副牌
type Deck []Card

// doudizhuValue 斗地主牌值：3..10=3..10, J=11..A=14, 2=15, 小王=16, 大王=17
func doudizhuValue(r Rank) int {
	switch r {
	case Rank2:
		return 15
	case RankBlackJoker:
		return 16
	case RankRedJoker:
		return 17
	default:
		return int(r)
	}
}

// wushikValue 五十K牌值：2..A=2..14, 小王=15, 大王=16
func wushikValue(r Rank) int {
	switch r {
	case RankBlackJoker:
		return 15
	case RankRedJoker:
		return 16
	default:
		return int(r)
	}
}

// NewDeck 创建一副 54 张的新牌（52 张普通牌 + 大小王）
func NewDeck(v Variant) Deck {
	value := doudizhuValue
	if v == VariantWushik {
		value = wushikValue
	}

	deck := make(Deck, 0, 54)
	for s := Spade; s <= Diamond; s++ {
		for r := Rank2; r <= RankA; r++ {
			deck = append(deck, Card{Suit: s, Rank: r, Value: value(r)})
		}
	}
	deck = append(deck,
		Card{Suit: Joker, Rank: RankBlackJoker, Value: value(RankBlackJoker)},
		Card{Suit: Joker, Rank: RankRedJoker, Value: value(RankRedJoker)},
	)
	return deck
}

// Shuffle 洗牌（Fisher-Yates）
func (d Deck) Shuffle() {
	rand.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// ShuffleWith 用指定随机源洗牌，rng 为 nil 时退回全局随机源（测试注入用）
func (d Deck) ShuffleWith(rng *rand.Rand) {
	if rng == nil {
		d.Shuffle()
		return
	}
	rng.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// DealDoudizhu 斗地主发牌：17/17/17 + 3 张底牌
func DealDoudizhu(d Deck) (hands [][]Card, hole []Card) {
	hands = [][]Card{
		append([]Card(nil), d[0:17]...),
		append([]Card(nil), d[17:34]...),
		append([]Card(nil), d[34:51]...),
	}
	hole = append([]Card(nil), d[51:54]...)
	return hands, hole
}

// WithoutJokers 返回去掉大小王的一副牌（4 人五十K用）
func (d Deck) WithoutJokers() Deck {
	out := make(Deck, 0, len(d))
	for _, c := range d {
		if !c.IsJoker() {
			out = append(out, c)
		}
	}
	return out
}

// DealWushik 把整副牌轮流发完：2 人局用 54 张（各 27 张），
// 4 人局先 WithoutJokers 再发（各 13 张，两张王不参与）
func DealWushik(d Deck, playerCount int) [][]Card {
	hands := make([][]Card, playerCount)
	for i, c := range d {
		hands[i%playerCount] = append(hands[i%playerCount], c)
	}
	return hands
}
