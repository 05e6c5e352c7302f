package compound

import (
	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/service/cache"
)

type impl struct {
	layers []cache.Service
}

// New stacks cache layers: reads try each layer in order, writes go to all
// layers.
func New(layers []cache.Service) cache.Service {
	return &impl{layers}
}

func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, getter cache.OneTimeGetter) error {
	err := im.Get(c, key, container)
	if err == nil {
		return nil
	} else if err != cache.ErrNotFound {
		return err
	}

	val, err := getter()
	if err != nil {
		return err
	}

	if err := im.Set(c, key, val); err != nil {
		c.WithField("err", err).WithField("key", key).Error("compound Set failed")
	}

	return im.Get(c, key, container)
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	for _, layer := range im.layers {
		err := layer.Get(c, key, container)
		if err == nil {
			return nil
		} else if err != cache.ErrNotFound {
			return err
		}
	}
	return cache.ErrNotFound
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	for _, layer := range im.layers {
		if err := layer.Set(c, key, value); err != nil {
			return err
		}
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	for _, layer := range im.layers {
		if err := layer.Del(c, key); err != nil {
			return err
		}
	}
	return nil
}
