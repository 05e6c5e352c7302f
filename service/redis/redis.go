package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/metrics"
)

var ErrNotFound = errors.New("redis key not found")

type Service interface {
	Get(c ctx.Ctx, key string) ([]byte, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
	Ping(c ctx.Ctx) error
}

type Cfg struct {
	Uri         string
	MaxIdle     int
	MaxActive   int
	IdleTimeout time.Duration
}

type impl struct {
	pool *redis.Pool
	met  metrics.Service
}

func New(cfg *Cfg) Service {
	maxIdle := cfg.MaxIdle
	if maxIdle == 0 {
		maxIdle = 8
	}

	idleTimeout := cfg.IdleTimeout
	if idleTimeout == 0 {
		idleTimeout = 240 * time.Second
	}

	pool := &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   cfg.MaxActive,
		IdleTimeout: idleTimeout,
		Dial: func() (redis.Conn, error) {
			return redis.DialURL(cfg.Uri)
		},
		TestOnBorrow: func(conn redis.Conn, t time.Time) error {
			if time.Since(t) < time.Minute {
				return nil
			}
			_, err := conn.Do("PING")
			return err
		},
	}

	return &impl{
		pool: pool,
		met:  metrics.New("redis"),
	}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, error) {
	defer im.met.BumpTime("redis.time", "op", "get").End()

	conn := im.pool.Get()
	defer conn.Close()

	val, err := redis.Bytes(conn.Do("GET", key))
	if err == redis.ErrNil {
		return nil, ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis GET failed")
		return nil, err
	}

	return val, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	defer im.met.BumpTime("redis.time", "op", "set").End()

	conn := im.pool.Get()
	defer conn.Close()

	var err error
	if ttl > 0 {
		_, err = conn.Do("SET", key, value, "PX", int64(ttl/time.Millisecond))
	} else {
		_, err = conn.Do("SET", key, value)
	}
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis SET failed")
		return err
	}

	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	defer im.met.BumpTime("redis.time", "op", "del").End()

	conn := im.pool.Get()
	defer conn.Close()

	if _, err := conn.Do("DEL", key); err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis DEL failed")
		return err
	}

	return nil
}

func (im *impl) Ping(c ctx.Ctx) error {
	conn := im.pool.Get()
	defer conn.Close()

	if _, err := conn.Do("PING"); err != nil {
		c.WithField("err", err).Error("redis PING failed")
		return err
	}

	return nil
}
