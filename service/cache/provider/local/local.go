package local

import (
	"time"

	"github.com/coocood/freecache"

	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/service/cache/provider"
)

type impl struct {
	cache *freecache.Cache
}

// New creates an in-process provider with the given cache size in bytes.
func New(size int) provider.Provider {
	return &impl{
		cache: freecache.NewCache(size),
	}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, error) {
	val, err := im.cache.Get([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, provider.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return val, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	return im.cache.Set([]byte(key), value, int(ttl/time.Second))
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}
