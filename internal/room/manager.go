package room

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"cardtable/internal/game/doudizhu"
	"cardtable/internal/game/wushik"
	"cardtable/internal/protocol"
	"cardtable/internal/storage"
)

const (
	roomCodeLength = 6
	// 去掉易混淆的 0/O/1/I
	roomCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// RoomManager 房间管理器：内存里每个房间一个实例，
// 不在内存时先尝试从 Redis 恢复
type RoomManager struct {
	store       *storage.RedisStore
	idleTimeout time.Duration
	rooms       map[string]*Room
	mu          sync.RWMutex
}

// NewRoomManager 创建房间管理器并启动空房间回收协程
func NewRoomManager(store *storage.RedisStore, idleTimeout time.Duration) *RoomManager {
	rm := &RoomManager{
		store:       store,
		idleTimeout: idleTimeout,
		rooms:       make(map[string]*Room),
	}
	go rm.cleanupLoop()
	return rm
}

func roomIndexKey(game protocol.GameKind, code string) string {
	return string(game) + ":" + code
}

// newEngine 按玩法创建空局
func newEngine(game protocol.GameKind, code string) Engine {
	switch game {
	case protocol.GameWushik:
		return wushik.New(code)
	default:
		return doudizhu.New(code)
	}
}

// GetOrCreate 获取房间。code 为空时开新房间并生成房间号；
// 指定 code 时优先取内存实例，其次从 Redis 恢复，最后新建
func (rm *RoomManager) GetOrCreate(ctx context.Context, game protocol.GameKind, code string) (*Room, error) {
	if !game.Valid() {
		return nil, fmt.Errorf("未知玩法: %s", game)
	}

	rm.mu.Lock()
	defer rm.mu.Unlock()

	if code == "" {
		code = rm.generateRoomCodeLocked(game)
		r := newRoom(game, code, newEngine(game, code), rm.store)
		rm.rooms[roomIndexKey(game, code)] = r
		log.Printf("🏠 房间 %s (%s) 已创建", code, game)
		return r, nil
	}

	code = strings.ToUpper(code)
	key := roomIndexKey(game, code)

	if r, ok := rm.rooms[key]; ok {
		return r, nil
	}

	engine := newEngine(game, code)
	if rm.store != nil {
		if data, err := rm.store.LoadState(ctx, game, code); err != nil {
			log.Printf("房间 %s 读取快照失败: %v", code, err)
		} else if data != nil {
			if err := engine.Restore(data); err != nil {
				log.Printf("房间 %s 恢复快照失败，按新房间处理: %v", code, err)
				engine = newEngine(game, code)
			} else {
				log.Printf("💾 房间 %s (%s) 已从快照恢复", code, game)
			}
		}
	}

	r := newRoom(game, code, engine, rm.store)
	rm.rooms[key] = r
	return r, nil
}

// generateRoomCodeLocked 生成未被占用的房间号，须持有 mu 调用
func (rm *RoomManager) generateRoomCodeLocked(game protocol.GameKind) string {
	for {
		b := make([]byte, roomCodeLength)
		for i := range b {
			b[i] = roomCodeChars[rand.IntN(len(roomCodeChars))]
		}
		code := string(b)
		if _, ok := rm.rooms[roomIndexKey(game, code)]; !ok {
			return code
		}
	}
}

// Count 当前内存中的房间数
func (rm *RoomManager) Count() int {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return len(rm.rooms)
}

// cleanupLoop 定期回收长时间没有任何连接的房间。
// 状态快照仍留在 Redis 中，有人再进时可恢复
func (rm *RoomManager) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rm.mu.Lock()
		for key, r := range rm.rooms {
			if r.ConnCount() == 0 && time.Since(r.IdleSince()) > rm.idleTimeout {
				delete(rm.rooms, key)
				log.Printf("🧹 空闲房间 %s 已回收", r.Code)
			}
		}
		rm.mu.Unlock()
	}
}
