package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/registry"
	"github.com/archetype-labs/minter-suite/service/query"
)

type usageImpl struct {
	q query.Mongo
}

func NewUsage(q query.Mongo) registry.UsageRepo {
	return &usageImpl{q}
}

func (im *usageImpl) FindOne(c ctx.Ctx, minter domain.Address) (*registry.MinterUsage, error) {
	res := &registry.MinterUsage{}

	if err := im.q.FindOne(c, domain.TableMinterUsages, bson.M{"minter": minter.ToLower()}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}

func (im *usageImpl) Increment(c ctx.Ctx, minter domain.Address, delta int64) error {
	if err := im.q.Increment(c, domain.TableMinterUsages, bson.M{"minter": minter.ToLower()}, "count", delta); err != nil {
		c.WithField("err", err).Error("q.Increment failed")
		return err
	}

	return nil
}
