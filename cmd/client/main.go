package main

import (
	"flag"
	"fmt"
	"log"
	"net/url"

	tea "github.com/charmbracelet/bubbletea"

	"cardtable/internal/logger"
	"cardtable/internal/protocol"
	"cardtable/internal/ui"
)

func main() {
	serverAddr := flag.String("server", "localhost:5100", "服务器地址")
	game := flag.String("game", "doudizhu", "玩法: doudizhu | wushik")
	roomCode := flag.String("room", "", "房间号，留空则开新房间")
	name := flag.String("name", "", "玩家名字，与断线前相同即可重连")
	flag.Parse()

	kind := protocol.GameKind(*game)
	if !kind.Valid() {
		log.Fatalf("未知玩法: %s", *game)
	}

	if err := logger.Init(); err != nil {
		log.Printf("日志初始化失败: %v", err)
	}
	defer logger.Close()

	query := url.Values{}
	query.Set("game", string(kind))
	if *roomCode != "" {
		query.Set("room", *roomCode)
	}
	serverURL := fmt.Sprintf("ws://%s/ws?%s", *serverAddr, query.Encode())

	model := ui.NewModel(serverURL, kind, *name)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("启动客户端时出错: %v", err)
	}
}
