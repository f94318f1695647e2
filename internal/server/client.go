package server

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"cardtable/internal/protocol"
	"cardtable/internal/protocol/codec"
	"cardtable/internal/room"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Client 一条 WebSocket 连接
type Client struct {
	ID   string
	conn *websocket.Conn
	room *room.Room

	server *Server
	send   chan []byte

	mu     sync.Mutex
	closed bool
}

// NewClient 创建客户端连接
func NewClient(s *Server, conn *websocket.Conn, rm *room.Room) *Client {
	return &Client{
		ID:     uuid.New().String(),
		conn:   conn,
		room:   rm,
		server: s,
		send:   make(chan []byte, 256),
	}
}

// GetID 实现 types.ClientInterface
func (c *Client) GetID() string {
	return c.ID
}

// SendMessage 异步发送消息，缓冲满则丢弃并断开
func (c *Client) SendMessage(msg *protocol.Message) {
	data, err := codec.Encode(msg)
	if err != nil {
		log.Printf("消息编码失败: %v", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	select {
	case c.send <- data:
	default:
		log.Printf("⚠️ 客户端 %s 发送缓冲已满，断开连接", c.ID)
		c.closed = true
		close(c.send)
	}
}

// Close 关闭连接
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

// ReadPump 读取循环，连接断开时负责清理
func (c *Client) ReadPump() {
	defer c.handleDisconnect()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("读取错误: %v", err)
			}
			return
		}

		msg, err := codec.Decode(data)
		if err != nil {
			c.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
			continue
		}

		c.server.dispatch(c, msg)
	}
}

// WritePump 写入循环，定期发送 ping 保活
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleDisconnect() {
	c.room.Detach(c.ID)
	c.server.unregisterClient(c)
	c.Close()
}
