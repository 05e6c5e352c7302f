package redis

import (
	"time"

	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/service/cache/provider"
	"github.com/archetype-labs/minter-suite/service/redis"
)

type impl struct {
	redis redis.Service
}

func New(redisSvc redis.Service) provider.Provider {
	return &impl{redisSvc}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, error) {
	val, err := im.redis.Get(c, key)
	if err == redis.ErrNotFound {
		return nil, provider.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return val, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	return im.redis.Set(c, key, value, ttl)
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	return im.redis.Del(c, key)
}
