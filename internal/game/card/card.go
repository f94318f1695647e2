package card

import "strconv"

// Suit 定义花色
type Suit int

const (
	Spade   Suit = iota // 黑桃
	Heart               // 红心
	Club                // 梅花
	Diamond             // 方块
	Joker               // 王牌
)

// SuitNone 表示"无花色"，用于一墩牌还没有确定领出花色的场合
const SuitNone Suit = -1

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Spade:   "♠",
	Heart:   "♥",
	Club:    "♣",
	Diamond: "♦",
	Joker:   "",
}

// suitNames 花色在协议中的名称
var suitNames = map[Suit]string{
	Spade:   "spades",
	Heart:   "hearts",
	Club:    "clubs",
	Diamond: "diamonds",
	Joker:   "joker",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

// Name 返回花色的协议名称
func (s Suit) Name() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return ""
}

// SuitFromName 根据协议名称解析花色（只接受四种普通花色）
func SuitFromName(name string) (Suit, bool) {
	for s := Spade; s <= Diamond; s++ {
		if suitNames[s] == name {
			return s, true
		}
	}
	return SuitNone, false
}

// Rank 定义点数
type Rank int

const (
	Rank2 Rank = iota + 2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ // Jack
	RankQ // Queen
	RankK // King
	RankA // Ace

	RankBlackJoker // 小王
	RankRedJoker   // 大王
)

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	Rank2:          "2",
	Rank3:          "3",
	Rank4:          "4",
	Rank5:          "5",
	Rank6:          "6",
	Rank7:          "7",
	Rank8:          "8",
	Rank9:          "9",
	Rank10:         "10",
	RankJ:          "J",
	RankQ:          "Q",
	RankK:          "K",
	RankA:          "A",
	RankBlackJoker: "B",
	RankRedJoker:   "R",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// Card 定义一张牌
// Value 是按玩法预先算好的比较值，发牌后不再变化：
// 斗地主 3..15(2)、16(小王)、17(大王)；五十K 2..14(A)、15(小王)、16(大王)
type Card struct {
	Suit  Suit `json:"suit"`
	Rank  Rank `json:"rank"`
	Value int  `json:"value"`
}

// IsJoker 是否为王牌
func (c Card) IsJoker() bool {
	return c.Suit == Joker
}

// IsBigJoker 是否为大王
func (c Card) IsBigJoker() bool {
	return c.Rank == RankRedJoker
}

func (c Card) String() string {
	if c.IsJoker() {
		if c.IsBigJoker() {
			return "大王"
		}
		return "小王"
	}
	return c.Suit.String() + c.Rank.String()
}
