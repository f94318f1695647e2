package room

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"cardtable/internal/apperrors"
	"cardtable/internal/protocol"
	"cardtable/internal/protocol/codec"
	"cardtable/internal/storage"
	"cardtable/internal/types"
)

// Engine 两种玩法状态机的公共操作。
// 玩法特有的操作（叫分、出牌、定主）由 server 层按玩法分发
type Engine interface {
	Join(connID, name string) error
	AddBot() error
	Start() error
	Reset()
	Disconnect(connID string) bool
	Snapshot() ([]byte, error)
	Restore(data []byte) error
}

// Room 一个游戏房间：唯一的 GameState（Engine 持有）加上当前连接。
// 房间内所有消息都在 mu 下串行处理：校验 → 变更 → 持久化 → 广播
type Room struct {
	Code   string
	Game   protocol.GameKind
	Engine Engine

	store      *storage.RedisStore
	conns      map[string]types.ClientInterface
	lastActive time.Time

	mu sync.Mutex
}

func newRoom(game protocol.GameKind, code string, engine Engine, store *storage.RedisStore) *Room {
	return &Room{
		Code:       code,
		Game:       game,
		Engine:     engine,
		store:      store,
		conns:      make(map[string]types.ClientInterface),
		lastActive: time.Now(),
	}
}

// Attach 接入一个连接并立即单发当前状态快照
func (r *Room) Attach(c types.ClientInterface) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.conns[c.GetID()] = c
	r.lastActive = time.Now()

	if msg, err := r.stateMessage(); err == nil {
		c.SendMessage(msg)
	}
}

// Detach 移除一个连接。如果该连接占着座位，只标记断线不腾座位，
// 对局会停在该玩家的回合等重连
func (r *Room) Detach(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.conns, connID)
	r.lastActive = time.Now()

	if r.Engine.Disconnect(connID) {
		r.persistLocked()
		r.broadcastStateLocked()
	}
}

// Mutate 在房间锁下执行一次状态变更。
// 成功时持久化并向全房间广播新状态；被拒绝时只通知出错的连接，
// 状态保持原样也不广播
func (r *Room) Mutate(c types.ClientInterface, fn func(Engine) error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastActive = time.Now()

	if err := fn(r.Engine); err != nil {
		var gameErr *apperrors.GameError
		if errors.As(err, &gameErr) {
			c.SendMessage(codec.NewErrorMessage(gameErr.Code))
		} else {
			c.SendMessage(codec.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
		}
		return
	}

	r.persistLocked()
	r.broadcastStateLocked()
}

// ConnCount 当前接入的连接数
func (r *Room) ConnCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.conns)
}

// IdleSince 最近一次活动时间
func (r *Room) IdleSince() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastActive
}

// stateMessage 构造全量状态快照消息，须持有 mu 调用
func (r *Room) stateMessage() (*protocol.Message, error) {
	data, err := r.Engine.Snapshot()
	if err != nil {
		return nil, err
	}
	return codec.NewMessage(protocol.MsgState, protocol.StatePayload{
		Game:  r.Game,
		State: data,
	})
}

// broadcastStateLocked 向房间内所有连接广播状态，须持有 mu 调用
func (r *Room) broadcastStateLocked() {
	msg, err := r.stateMessage()
	if err != nil {
		log.Printf("房间 %s 序列化状态失败: %v", r.Code, err)
		return
	}
	for _, c := range r.conns {
		c.SendMessage(msg)
	}
}

// persistLocked 异步写入 Redis 快照，须持有 mu 调用。
// 持久化相对游戏逻辑是尽力而为：写入失败最多丢最近一步
func (r *Room) persistLocked() {
	if r.store == nil {
		return
	}
	data, err := r.Engine.Snapshot()
	if err != nil {
		log.Printf("房间 %s 序列化状态失败: %v", r.Code, err)
		return
	}
	game, code := r.Game, r.Code
	go func() {
		if err := r.store.SaveState(context.Background(), game, code, data); err != nil {
			log.Printf("房间 %s 持久化失败: %v", code, err)
		}
	}()
}
