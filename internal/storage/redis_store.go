package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"cardtable/internal/protocol"
)

const (
	// Redis key 前缀：room:<玩法>:<房间号>
	roomKeyPrefix = "room:"

	// 房间状态过期时间，过期即视为房间废弃
	roomExpiration = 2 * time.Hour
)

// RedisStore 按房间保存整块序列化后的 GameState。
// 每次成功变更后整体覆盖写入，恢复时整体读出
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 创建 Redis 存储
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func roomKey(game protocol.GameKind, code string) string {
	return roomKeyPrefix + string(game) + ":" + code
}

// SaveState 保存房间状态快照
func (rs *RedisStore) SaveState(ctx context.Context, game protocol.GameKind, code string, data []byte) error {
	return rs.client.Set(ctx, roomKey(game, code), data, roomExpiration).Err()
}

// LoadState 读取房间状态快照，房间不存在时返回 (nil, nil)
func (rs *RedisStore) LoadState(ctx context.Context, game protocol.GameKind, code string) ([]byte, error) {
	data, err := rs.client.Get(ctx, roomKey(game, code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// DeleteState 删除房间状态快照
func (rs *RedisStore) DeleteState(ctx context.Context, game protocol.GameKind, code string) error {
	return rs.client.Del(ctx, roomKey(game, code)).Err()
}
