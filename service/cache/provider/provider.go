package provider

import (
	"errors"
	"time"

	"github.com/archetype-labs/minter-suite/base/ctx"
)

var ErrNotFound = errors.New("cache key not found")

// Provider is a raw byte cache layer.
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
