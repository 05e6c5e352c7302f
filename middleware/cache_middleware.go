package middleware

import (
	"bufio"
	"bytes"
	"hash/fnv"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/domain/keys"
	"github.com/archetype-labs/minter-suite/service/cache"
	compoundcache "github.com/archetype-labs/minter-suite/service/cache/compound"
	"github.com/archetype-labs/minter-suite/service/cache/provider"
	localCache "github.com/archetype-labs/minter-suite/service/cache/provider/local"
	redisCache "github.com/archetype-labs/minter-suite/service/cache/provider/redis"
	"github.com/archetype-labs/minter-suite/service/redis"
)

const localCacheSize = 32 * 1024 * 1024

var (
	cacheMiddlewareLocalCache provider.Provider
	cacheMiddlewareRedisCache provider.Provider

	once = sync.Once{}
)

func SetupCache(redisSvc redis.Service) {
	once.Do(func() {
		cacheMiddlewareLocalCache = localCache.New(localCacheSize)
		cacheMiddlewareRedisCache = redisCache.New(redisSvc)
	})
}

// Response is the cached response data structure.
type Response struct {
	// Value is the cached response value.
	Value []byte

	// Header is the cached response header.
	Header http.Header
}

type bodyDumpResponseWriter struct {
	statusCode int
	io.Writer
	http.ResponseWriter
}

func (w *bodyDumpResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyDumpResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *bodyDumpResponseWriter) Flush() {
	w.ResponseWriter.(http.Flusher).Flush()
}

func (w *bodyDumpResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return w.ResponseWriter.(http.Hijacker).Hijack()
}

func sortURLParams(URL *url.URL) {
	params := URL.Query()
	for _, param := range params {
		sort.Slice(param, func(i, j int) bool {
			return param[i] < param[j]
		})
	}
	URL.RawQuery = params.Encode()
}

func generateKey(URL string) string {
	hash := fnv.New64a()
	hash.Write([]byte(URL))

	return strconv.FormatUint(hash.Sum64(), 36)
}

func CacheHttp(ttl time.Duration) echo.MiddlewareFunc {
	if cacheMiddlewareLocalCache == nil || cacheMiddlewareRedisCache == nil {
		panic("need SetupCache before using CacheHttp")
	}

	localTTL := 10 * time.Second
	if ttl < localTTL {
		localTTL = ttl
	}

	cacheService := compoundcache.New([]cache.Service{
		cache.New(cache.ServiceConfig{
			Ttl:   localTTL,
			Pfx:   keys.PfxHttpCache,
			Cache: cacheMiddlewareLocalCache,
		}),
		cache.New(cache.ServiceConfig{
			Ttl:   ttl,
			Pfx:   keys.PfxHttpCache,
			Cache: cacheMiddlewareRedisCache,
		}),
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Get("ctx").(ctx.Ctx)

			sortURLParams(c.Request().URL)
			key := generateKey(c.Request().URL.String())

			response := Response{}
			err := cacheService.Get(ctx, key, &response)
			if err == nil {
				// cache hit
				for k, v := range response.Header {
					c.Response().Header().Set(k, strings.Join(v, ","))
				}
				c.Response().WriteHeader(http.StatusOK)
				c.Response().Write(response.Value)
				return nil
			} else if err != cache.ErrNotFound {
				ctx.WithField("err", err).Error("cacheService.Get failed")
			}

			// cache miss
			resBody := new(bytes.Buffer)
			mw := io.MultiWriter(c.Response().Writer, resBody)
			writer := &bodyDumpResponseWriter{Writer: mw, ResponseWriter: c.Response().Writer}
			c.Response().Writer = writer
			if err := next(c); err != nil {
				c.Error(err)
			}

			if writer.statusCode < 400 {
				response := Response{
					Value:  resBody.Bytes(),
					Header: writer.Header(),
				}

				if err := cacheService.Set(ctx, key, response); err != nil {
					ctx.WithField("err", err).Error("cacheService.Set failed")
				}
			}

			return nil
		}
	}
}
