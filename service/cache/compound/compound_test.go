package compound

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/service/cache"
	"github.com/archetype-labs/minter-suite/service/cache/provider/local"
)

type payload struct {
	Value string `json:"value"`
}

func TestCompoundSetWritesAllLayers(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	l1 := cache.New(cache.ServiceConfig{Ttl: time.Minute, Pfx: "t", Cache: local.New(1024 * 1024)})
	l2 := cache.New(cache.ServiceConfig{Ttl: time.Minute, Pfx: "t", Cache: local.New(1024 * 1024)})
	compound := New([]cache.Service{l1, l2})

	req.NoError(compound.Set(c, "k", &payload{Value: "v"}))

	got := payload{}
	req.NoError(l1.Get(c, "k", &got))
	req.Equal("v", got.Value)

	got = payload{}
	req.NoError(l2.Get(c, "k", &got))
	req.Equal("v", got.Value)
}

func TestCompoundGetFallsThrough(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	l1 := cache.New(cache.ServiceConfig{Ttl: time.Minute, Pfx: "t", Cache: local.New(1024 * 1024)})
	l2 := cache.New(cache.ServiceConfig{Ttl: time.Minute, Pfx: "t", Cache: local.New(1024 * 1024)})
	compound := New([]cache.Service{l1, l2})

	// only the second layer holds the key
	req.NoError(l2.Set(c, "k", &payload{Value: "deep"}))

	got := payload{}
	req.NoError(compound.Get(c, "k", &got))
	req.Equal("deep", got.Value)

	got = payload{}
	req.ErrorIs(compound.Get(c, "missing", &got), cache.ErrNotFound)
}

func TestCompoundGetByFunc(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	l1 := cache.New(cache.ServiceConfig{Ttl: time.Minute, Pfx: "t", Cache: local.New(1024 * 1024)})
	compound := New([]cache.Service{l1})

	calls := 0
	getter := func() (interface{}, error) {
		calls++
		return &payload{Value: "fresh"}, nil
	}

	got := payload{}
	req.NoError(compound.GetByFunc(c, "k", &got, getter))
	req.Equal("fresh", got.Value)
	req.Equal(1, calls)

	got = payload{}
	req.NoError(compound.GetByFunc(c, "k", &got, getter))
	req.Equal("fresh", got.Value)
	req.Equal(1, calls)
}
