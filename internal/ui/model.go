// Package ui 提供命令式终端客户端：
// 一行输入框接收命令，其余区域渲染服务器广播的最新状态快照
package ui

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cardtable/internal/client"
	"cardtable/internal/game/doudizhu"
	"cardtable/internal/game/wushik"
	"cardtable/internal/protocol"
)

// ServerMessage 服务器消息（用于 tea.Msg）
type ServerMessage struct {
	Msg *protocol.Message
}

// ConnectionErrorMsg 连接错误消息
type ConnectionErrorMsg struct {
	Err error
}

// ConnectionClosedMsg 连接断开消息
type ConnectionClosedMsg struct{}

// Model 联网客户端的 bubbletea model
type Model struct {
	client *client.Client
	game   protocol.GameKind

	// 座位身份以名字为准，join 之后记住自己的名字
	playerName string

	// 最近一次状态快照（按玩法只会有一个非 nil）
	doudizhu *doudizhu.Game
	wushik   *wushik.Game

	errText  string
	statusOK string

	msgs  chan tea.Msg
	input textinput.Model

	width  int
	height int
}

// NewModel 创建客户端 model 并发起连接
func NewModel(serverURL string, game protocol.GameKind, name string) *Model {
	ti := textinput.New()
	ti.Placeholder = "输入命令，help 查看帮助"
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	m := &Model{
		game:       game,
		playerName: name,
		msgs:       make(chan tea.Msg, 64),
		input:      ti,
	}

	c := client.NewClient(serverURL)
	c.OnMessage = func(msg *protocol.Message) {
		m.msgs <- ServerMessage{Msg: msg}
	}
	c.OnError = func(err error) {
		m.msgs <- ConnectionErrorMsg{Err: err}
	}
	c.OnClose = func() {
		m.msgs <- ConnectionClosedMsg{}
	}
	m.client = c

	return m
}

// Init 实现 tea.Model
func (m *Model) Init() tea.Cmd {
	if err := m.client.Connect(); err != nil {
		return func() tea.Msg { return ConnectionErrorMsg{Err: err} }
	}
	if m.playerName != "" {
		_ = m.client.Join(m.playerName)
	}
	return m.waitForMessage()
}

// waitForMessage 等待下一条服务器消息
func (m *Model) waitForMessage() tea.Cmd {
	return func() tea.Msg {
		return <-m.msgs
	}
}

// Update 实现 tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.client.Close()
			return m, tea.Quit
		case tea.KeyEnter:
			m.execCommand(strings.TrimSpace(m.input.Value()))
			m.input.Reset()
			return m, nil
		}

	case ServerMessage:
		m.applyServerMessage(msg.Msg)
		return m, m.waitForMessage()

	case ConnectionErrorMsg:
		m.errText = fmt.Sprintf("连接错误: %v", msg.Err)
		return m, m.waitForMessage()

	case ConnectionClosedMsg:
		m.errText = "连接已断开"
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// applyServerMessage 处理状态广播与错误通知
func (m *Model) applyServerMessage(msg *protocol.Message) {
	switch msg.Type {
	case protocol.MsgState:
		var payload protocol.StatePayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			m.errText = "状态解析失败"
			return
		}
		m.errText = ""
		switch payload.Game {
		case protocol.GameDoudizhu:
			var g doudizhu.Game
			if err := json.Unmarshal(payload.State, &g); err == nil {
				m.doudizhu = &g
			}
		case protocol.GameWushik:
			var g wushik.Game
			if err := json.Unmarshal(payload.State, &g); err == nil {
				m.wushik = &g
			}
		}

	case protocol.MsgError:
		var payload protocol.ErrorPayload
		if err := json.Unmarshal(msg.Payload, &payload); err == nil {
			m.errText = payload.Message
		}
	}
}

// execCommand 解析并执行输入的命令
func (m *Model) execCommand(line string) {
	if line == "" {
		return
	}
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	var err error
	switch cmd {
	case "join":
		if len(args) == 0 {
			m.errText = "用法: join <名字>"
			return
		}
		m.playerName = strings.Join(args, " ")
		err = m.client.Join(m.playerName)
	case "start":
		err = m.client.StartGame()
	case "bot":
		err = m.client.AddBot()
	case "reset":
		err = m.client.Reset()
	case "bid":
		if len(args) != 1 {
			m.errText = "用法: bid <0-3>"
			return
		}
		var v int
		if v, err = strconv.Atoi(args[0]); err != nil {
			m.errText = "叫分必须是数字"
			return
		}
		err = m.client.Bid(v)
	case "pass":
		err = m.client.Pass()
	case "play":
		if len(args) == 0 {
			m.errText = "用法: play <手牌序号...>"
			return
		}
		ids := make([]int, 0, len(args))
		for _, a := range args {
			v, convErr := strconv.Atoi(a)
			if convErr != nil {
				m.errText = "手牌序号必须是数字"
				return
			}
			ids = append(ids, v)
		}
		if m.game == protocol.GameWushik {
			err = m.client.PlayCard(ids[0])
		} else {
			err = m.client.PlayCards(ids)
		}
	case "trump":
		if len(args) != 1 {
			m.errText = "用法: trump <spades|hearts|clubs|diamonds>"
			return
		}
		err = m.client.SetTrump(args[0])
	case "help":
		m.statusOK = "命令: join <名字> | start | bot | reset | bid <0-3> | play <序号...> | pass | trump <花色> | quit"
		return
	case "quit", "exit":
		m.client.Close()
		return
	default:
		m.errText = fmt.Sprintf("未知命令: %s", cmd)
		return
	}

	if err != nil {
		m.errText = err.Error()
	}
}
