package repository

import (
	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/splitter"
	"github.com/archetype-labs/minter-suite/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type engineCacheImpl struct {
	q query.Mongo
}

func NewEngineCache(q query.Mongo) splitter.EngineCacheRepo {
	return &engineCacheImpl{q}
}

func (im *engineCacheImpl) FindOne(c ctx.Ctx, coreContract domain.Address) (*splitter.EngineCache, error) {
	qry := bson.M{"coreContract": coreContract.ToLowerStr()}

	res := &splitter.EngineCache{}

	if err := im.q.FindOne(c, domain.TableEngineCaches, qry, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}

func (im *engineCacheImpl) Create(c ctx.Ctx, cache *splitter.EngineCache) error {
	cache.CoreContract = cache.CoreContract.ToLower()

	if err := im.q.Insert(c, domain.TableEngineCaches, cache); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}

	return nil
}
