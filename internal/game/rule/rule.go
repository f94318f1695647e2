package rule

import (
	"slices"

	"cardtable/internal/game/card"
)

// ComboType 定义牌型
type ComboType string

const (
	Invalid        ComboType = "invalid"
	Single         ComboType = "single"         // 单张
	Pair           ComboType = "pair"           // 对子
	Trio           ComboType = "triple"         // 三张不带
	TrioWithSingle ComboType = "triple_one"     // 三带一
	TrioWithPair   ComboType = "triple_two"     // 三带二
	Straight       ComboType = "straight"       // 顺子（5张或以上连续单张）
	PairStraight   ComboType = "straight_pairs" // 连对（3对或以上）
	Plane          ComboType = "plane"          // 飞机不带翅膀（2个或以上连续三张）
	PlaneWithWings ComboType = "plane_wings"    // 飞机带单或带对
	FourWithTwo    ComboType = "four_two"       // 四带二（两张单牌或两对）
	Bomb           ComboType = "bomb"           // 炸弹（四张相同）
	Rocket         ComboType = "rocket"         // 王炸（双王）
)

// comboTypeNames 牌型中文名称映射表
var comboTypeNames = map[ComboType]string{
	Single:         "单张",
	Pair:           "对子",
	Trio:           "三张",
	TrioWithSingle: "三带一",
	TrioWithPair:   "三带二",
	Straight:       "顺子",
	PairStraight:   "连对",
	Plane:          "飞机",
	PlaneWithWings: "飞机带翅膀",
	FourWithTwo:    "四带二",
	Bomb:           "炸弹",
	Rocket:         "王炸",
}

func (t ComboType) Name() string {
	if name, ok := comboTypeNames[t]; ok {
		return name
	}
	return "无效"
}

// rocketValue 王炸的比较值，大于任何普通牌值
const rocketValue = 99

// Combination 识别出的一手牌，用于比较
type Combination struct {
	Type     ComboType   `json:"type"`
	Cards    []card.Card `json:"cards"`
	KeyValue int         `json:"key_value"`        // 决定大小的关键牌值（三带一取三张的值）
	Length   int         `json:"length,omitempty"` // 顺子/连对/飞机的长度，同长才可比
}

// handAnalysis 对一手牌的预分析：按牌值分组统计一次，
// 各牌型检查都在这份统计上做纯判断
type handAnalysis struct {
	counts map[int]int // 牌值 -> 张数
	values []int       // 出现过的牌值，升序
	cards  []card.Card
}

func analyze(cards []card.Card) handAnalysis {
	a := handAnalysis{
		counts: make(map[int]int),
		cards:  cards,
	}
	for _, c := range cards {
		a.counts[c.Value]++
	}
	for v := range a.counts {
		a.values = append(a.values, v)
	}
	slices.Sort(a.values)
	return a
}

// valuesWithCount 返回张数恰好为 n 的牌值，升序
func (a handAnalysis) valuesWithCount(n int) []int {
	var out []int
	for _, v := range a.values {
		if a.counts[v] == n {
			out = append(out, v)
		}
	}
	return out
}

// straightCeiling 顺子能用的最大牌值，2 和王（值 >= 15）会打断顺子
const straightCeiling = 15

// isConsecutive 判断一组升序牌值是否连续且可组顺子
func isConsecutive(values []int) bool {
	if len(values) == 0 {
		return false
	}
	if values[len(values)-1] >= straightCeiling {
		return false
	}
	for i := 1; i < len(values); i++ {
		if values[i] != values[i-1]+1 {
			return false
		}
	}
	return true
}

// Classify 识别一手牌的牌型，按优先级依次检查，最多命中一种
func Classify(cards []card.Card) (Combination, bool) {
	if len(cards) == 0 {
		return Combination{Type: Invalid}, false
	}

	a := analyze(cards)

	checks := []func(handAnalysis) (Combination, bool){
		checkRocket,
		checkBomb,
		checkSingle,
		checkPair,
		checkTrio,
		checkTrioWithKicker,
		checkStraight,
		checkPairStraight,
		checkPlane,
		checkPlaneWithWings,
		checkFourWithTwo,
	}
	for _, check := range checks {
		if combo, ok := check(a); ok {
			return combo, true
		}
	}
	return Combination{Type: Invalid}, false
}

// checkRocket 王炸：恰好大小王各一张
func checkRocket(a handAnalysis) (Combination, bool) {
	if len(a.cards) != 2 {
		return Combination{}, false
	}
	for _, c := range a.cards {
		if !c.IsJoker() {
			return Combination{}, false
		}
	}
	return Combination{Type: Rocket, Cards: a.cards, KeyValue: rocketValue}, true
}

// checkBomb 炸弹：四张同值
func checkBomb(a handAnalysis) (Combination, bool) {
	if len(a.cards) == 4 && len(a.values) == 1 {
		return Combination{Type: Bomb, Cards: a.cards, KeyValue: a.values[0]}, true
	}
	return Combination{}, false
}

func checkSingle(a handAnalysis) (Combination, bool) {
	if len(a.cards) == 1 {
		return Combination{Type: Single, Cards: a.cards, KeyValue: a.cards[0].Value}, true
	}
	return Combination{}, false
}

func checkPair(a handAnalysis) (Combination, bool) {
	if len(a.cards) == 2 && len(a.values) == 1 {
		return Combination{Type: Pair, Cards: a.cards, KeyValue: a.values[0]}, true
	}
	return Combination{}, false
}

func checkTrio(a handAnalysis) (Combination, bool) {
	if len(a.cards) == 3 && len(a.values) == 1 {
		return Combination{Type: Trio, Cards: a.cards, KeyValue: a.values[0]}, true
	}
	return Combination{}, false
}

// checkTrioWithKicker 三带一（4张）和三带二（5张），大小由三张部分决定
func checkTrioWithKicker(a handAnalysis) (Combination, bool) {
	if len(a.values) != 2 {
		return Combination{}, false
	}
	trios := a.valuesWithCount(3)
	if len(trios) != 1 {
		return Combination{}, false
	}
	switch len(a.cards) {
	case 4:
		return Combination{Type: TrioWithSingle, Cards: a.cards, KeyValue: trios[0]}, true
	case 5:
		return Combination{Type: TrioWithPair, Cards: a.cards, KeyValue: trios[0]}, true
	}
	return Combination{}, false
}

// checkStraight 顺子：5 张以上连续单张
func checkStraight(a handAnalysis) (Combination, bool) {
	if len(a.cards) < 5 || len(a.values) != len(a.cards) {
		return Combination{}, false
	}
	if !isConsecutive(a.values) {
		return Combination{}, false
	}
	return Combination{
		Type:     Straight,
		Cards:    a.cards,
		KeyValue: a.values[len(a.values)-1],
		Length:   len(a.cards),
	}, true
}

// checkPairStraight 连对：3 对以上连续对子
func checkPairStraight(a handAnalysis) (Combination, bool) {
	if len(a.cards) < 6 || len(a.cards)%2 != 0 {
		return Combination{}, false
	}
	if len(a.valuesWithCount(2)) != len(a.values) {
		return Combination{}, false
	}
	if !isConsecutive(a.values) {
		return Combination{}, false
	}
	return Combination{
		Type:     PairStraight,
		Cards:    a.cards,
		KeyValue: a.values[len(a.values)-1],
		Length:   len(a.values),
	}, true
}

// checkPlane 飞机不带翅膀：2 组以上连续三张
func checkPlane(a handAnalysis) (Combination, bool) {
	if len(a.cards) < 6 || len(a.cards)%3 != 0 {
		return Combination{}, false
	}
	if len(a.valuesWithCount(3)) != len(a.values) {
		return Combination{}, false
	}
	if !isConsecutive(a.values) {
		return Combination{}, false
	}
	return Combination{
		Type:     Plane,
		Cards:    a.cards,
		KeyValue: a.values[len(a.values)-1],
		Length:   len(a.values),
	}, true
}

// checkPlaneWithWings 飞机带翅膀：连续三张为机身，
// 带机身数量的单张（张数相等）或同样数量的对子，不能混带
func checkPlaneWithWings(a handAnalysis) (Combination, bool) {
	trios := a.valuesWithCount(3)
	if len(trios) < 2 || !isConsecutive(trios) {
		return Combination{}, false
	}

	planeSize := len(trios)
	wingCards := len(a.cards) - planeSize*3
	key := trios[planeSize-1]

	// 带单：翅膀张数等于机身组数
	if wingCards == planeSize {
		return Combination{Type: PlaneWithWings, Cards: a.cards, KeyValue: key, Length: planeSize}, true
	}

	// 带对：翅膀必须全是对子
	if wingCards == planeSize*2 {
		for _, v := range a.values {
			if a.counts[v] != 3 && a.counts[v] != 2 {
				return Combination{}, false
			}
		}
		return Combination{Type: PlaneWithWings, Cards: a.cards, KeyValue: key, Length: planeSize}, true
	}
	return Combination{}, false
}

// checkFourWithTwo 四带二：一组四张带两张单牌（6张）或两对（8张）
func checkFourWithTwo(a handAnalysis) (Combination, bool) {
	quads := a.valuesWithCount(4)
	if len(quads) != 1 {
		return Combination{}, false
	}
	quad := quads[0]

	switch len(a.cards) {
	case 6:
		return Combination{Type: FourWithTwo, Cards: a.cards, KeyValue: quad}, true
	case 8:
		pairs := 0
		for _, v := range a.values {
			if v == quad {
				continue
			}
			if a.counts[v] != 2 {
				return Combination{}, false
			}
			pairs++
		}
		if pairs == 2 {
			return Combination{Type: FourWithTwo, Cards: a.cards, KeyValue: quad}, true
		}
	}
	return Combination{}, false
}
