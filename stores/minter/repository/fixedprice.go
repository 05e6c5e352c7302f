package repository

import (
	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/database/mongoclient"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/minter"
	"github.com/archetype-labs/minter-suite/service/query"
)

type fixedPriceImpl struct {
	q query.Mongo
}

func NewFixedPrice(q query.Mongo) minter.FixedPriceRepo {
	return &fixedPriceImpl{q}
}

func (im *fixedPriceImpl) FindOne(c ctx.Ctx, id domain.ProjectKey) (*minter.FixedPrice, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}

	res := &minter.FixedPrice{}

	if err := im.q.FindOne(c, domain.TableProjectPrices, qry, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}

func (im *fixedPriceImpl) Upsert(c ctx.Ctx, price *minter.FixedPrice) error {
	selector, err := mongoclient.MakeBsonM(price.ToId())
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}

	if err := im.q.Upsert(c, domain.TableProjectPrices, selector, price); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}

	return nil
}
