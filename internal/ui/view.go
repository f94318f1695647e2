package ui

import (
	"fmt"
	"strings"

	"cardtable/internal/game/card"
	"cardtable/internal/game/doudizhu"
	"cardtable/internal/game/wushik"
	"cardtable/internal/protocol"
)

// View 实现 tea.Model
func (m *Model) View() string {
	var b strings.Builder

	switch m.game {
	case protocol.GameDoudizhu:
		b.WriteString(m.viewDoudizhu())
	case protocol.GameWushik:
		b.WriteString(m.viewWushik())
	}

	if m.errText != "" {
		b.WriteString("\n" + errorStyle.Render("⚠ "+m.errText))
	} else if m.statusOK != "" {
		b.WriteString("\n" + dimStyle.Render(m.statusOK))
	}

	b.WriteString(promptStyle.Render("\n> " + m.input.View()))
	return docStyle.Render(b.String())
}

func (m *Model) viewDoudizhu() string {
	g := m.doudizhu
	if g == nil {
		return titleStyle("斗地主") + "\n" + dimStyle.Render("连接中...")
	}

	var b strings.Builder
	b.WriteString(titleStyle(fmt.Sprintf("斗地主 · 房间 %s · %s", g.RoomCode, phaseLabel(string(g.Phase)))))
	b.WriteString("\n\n")

	for i, p := range g.Players {
		marker := "  "
		if (g.Phase == doudizhu.PhaseBidding && i == g.CurrentBidIndex) ||
			(g.Phase == doudizhu.PhasePlaying && i == g.CurrentPlayerIndex) {
			marker = turnStyle.Render("▶ ")
		}
		b.WriteString(fmt.Sprintf("%s%s%s  手牌 %d 张%s\n",
			marker, playerIcons(p.IsBot, p.IsConnected, p.Role == doudizhu.RoleLandlord),
			p.Name, len(p.Hand), bidLabel(p.Bid)))
	}

	if g.LastPlay != nil {
		b.WriteString("\n上家出牌: " + renderCards(g.LastPlay.Cards) + "\n")
	}
	if g.Phase == doudizhu.PhaseFinished && g.Winner != "" {
		if g.Winner == doudizhu.WinnerLandlord {
			b.WriteString("\n🏆 地主获胜\n")
		} else {
			b.WriteString("\n🏆 农民获胜\n")
		}
	}

	if me := m.seatDoudizhu(); me != nil {
		b.WriteString("\n" + boxStyle.Render("我的手牌\n"+renderIndexedCards(me.Hand)))
	}
	return b.String()
}

func (m *Model) viewWushik() string {
	g := m.wushik
	if g == nil {
		return titleStyle("五十K") + "\n" + dimStyle.Render("连接中...")
	}

	var b strings.Builder
	b.WriteString(titleStyle(fmt.Sprintf("五十K · 房间 %s · %s", g.RoomCode, phaseLabel(string(g.Phase)))))
	b.WriteString("\n")
	if g.TrumpSuit != card.SuitNone {
		b.WriteString(fmt.Sprintf("主牌花色: %s   A队 %d 分 · B队 %d 分\n", g.TrumpSuit, g.TeamAPoints, g.TeamBPoints))
	}
	b.WriteString("\n")

	for i, p := range g.Players {
		marker := "  "
		if g.Phase != wushik.PhaseWaiting && g.Phase != wushik.PhaseFinished && i == g.CurrentPlayerIndex {
			marker = turnStyle.Render("▶ ")
		}
		b.WriteString(fmt.Sprintf("%s%s%s (%s队)  手牌 %d 张\n",
			marker, playerIcons(p.IsBot, p.IsConnected, false), p.Name, p.Team, len(p.Hand)))
	}

	if g.CurrentTrick != nil && len(g.CurrentTrick.Plays) > 0 {
		b.WriteString("\n本墩:")
		for _, play := range g.CurrentTrick.Plays {
			b.WriteString(" " + renderCard(play.Card))
		}
		b.WriteString("\n")
	}
	if g.Phase == wushik.PhaseFinished && g.Winner != "" {
		b.WriteString(fmt.Sprintf("\n🏆 %s队获胜\n", g.Winner))
	}

	if me := m.seatWushik(); me != nil {
		// 序号按服务器的原始手牌顺序，play 命令直接用
		b.WriteString("\n" + boxStyle.Render("我的手牌\n"+renderIndexedCards(me.Hand)))
	}
	return b.String()
}

func (m *Model) seatDoudizhu() *doudizhu.Player {
	if m.doudizhu == nil {
		return nil
	}
	for _, p := range m.doudizhu.Players {
		if p.Name == m.playerName {
			return p
		}
	}
	return nil
}

func (m *Model) seatWushik() *wushik.Player {
	if m.wushik == nil {
		return nil
	}
	for _, p := range m.wushik.Players {
		if p.Name == m.playerName {
			return p
		}
	}
	return nil
}

func phaseLabel(phase string) string {
	switch phase {
	case "waiting":
		return "等待开局"
	case "bidding":
		return "叫分/定主"
	case "playing":
		return "进行中"
	case "finished":
		return "已结束"
	}
	return phase
}

func playerIcons(isBot, isConnected, isLandlord bool) string {
	var icons string
	if isBot {
		icons += BotIcon
	}
	if isLandlord {
		icons += LandlordIcon
	}
	if !isConnected && !isBot {
		icons += OfflineIcon
	}
	if icons != "" {
		icons += " "
	}
	return icons
}

func bidLabel(bid *int) string {
	if bid == nil {
		return ""
	}
	if *bid == 0 {
		return "  [不叫]"
	}
	return fmt.Sprintf("  [叫 %d 分]", *bid)
}

func renderCards(cards []card.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = renderCard(c)
	}
	return strings.Join(parts, " ")
}

// renderIndexedCards 带序号渲染手牌，序号即 play 命令用的下标
func renderIndexedCards(cards []card.Card) string {
	var b strings.Builder
	for i, c := range cards {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(fmt.Sprintf("%s%s", dimStyle.Render(fmt.Sprintf("%d:", i)), renderCard(c)))
	}
	return b.String()
}
