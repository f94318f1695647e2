package ui

import (
	"github.com/charmbracelet/lipgloss"

	"cardtable/internal/game/card"
)

// Icon constants
const (
	LandlordIcon = "👑"
	FarmerIcon   = "🧑‍🌾"
	BotIcon      = "🤖"
	OfflineIcon  = "🔌"
)

// Lipgloss Styles
var (
	docStyle    = lipgloss.NewStyle().Margin(1, 2)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Bold(true)
	blackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	promptStyle = lipgloss.NewStyle().MarginTop(1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	turnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)

// renderCard 按花色着色渲染一张牌
func renderCard(c card.Card) string {
	label := c.String()
	switch {
	case c.Rank == card.RankRedJoker:
		return redStyle.Render("RJ")
	case c.Rank == card.RankBlackJoker:
		return blackStyle.Render("BJ")
	case c.Suit == card.Heart || c.Suit == card.Diamond:
		return redStyle.Render(label)
	default:
		return blackStyle.Render(label)
	}
}
