package repository

import (
	"auth-web-server/config"
	"auth-web-server/internal/model"
	"auth-web-server/internal/util"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

// SetIdentity кладёт пользователя в кэш вместе с bcrypt-хэшем пароля:
// кэш обслуживает Authenticate, которому нужен хэш для сравнения.
// Открытый пароль сюда никогда не попадает.
func (r *CacheRepository) SetIdentity(ctx context.Context, identity *model.Identity) error {
	data, err := encodeIdentity(identity)
	if err != nil {
		return util.LogError("ошибка сериализации пользователя", err)
	}

	cmd := r.client.Client.Set(ctx, r.key(identity.ClientID), data, r.ttl)
	if err = cmd.Err(); err != nil {
		return util.LogError("ошибка сохранения в Redis", err)
	}
	if cmd.Val() != "OK" {
		return fmt.Errorf("неожиданный ответ Redis: %s", cmd.Val())
	}

	return nil
}

func (r *CacheRepository) GetIdentity(ctx context.Context, clientID string) (*model.Identity, error) {
	val, err := r.client.Client.Get(ctx, r.key(clientID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // нет в кэше
	} else if err != nil {
		return nil, util.LogError("ошибка получения пользователя из Redis", err)
	}

	identity, err := decodeIdentity(val)
	if err != nil {
		return nil, util.LogError("ошибка десериализации пользователя из кэша", err)
	}
	return identity, nil
}

func encodeIdentity(identity *model.Identity) ([]byte, error) {
	return json.Marshal(identity)
}

func decodeIdentity(raw string) (*model.Identity, error) {
	var identity model.Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

func (r *CacheRepository) key(clientID string) string {
	return fmt.Sprintf("identity:%s", clientID)
}
