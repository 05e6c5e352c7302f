package repository

import (
	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/database/mongoclient"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/auction"
	"github.com/archetype-labs/minter-suite/service/query"
)

type exponentialImpl struct {
	q query.Mongo
}

func NewExponential(q query.Mongo) auction.ExponentialRepo {
	return &exponentialImpl{q}
}

func (im *exponentialImpl) FindOne(c ctx.Ctx, id domain.ProjectKey) (*auction.ExponentialAuction, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}

	res := &auction.ExponentialAuction{}

	if err := im.q.FindOne(c, domain.TableExponentialAuctions, qry, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}

func (im *exponentialImpl) Upsert(c ctx.Ctx, a *auction.ExponentialAuction) error {
	selector, err := mongoclient.MakeBsonM(a.ToId())
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}

	if err := im.q.Upsert(c, domain.TableExponentialAuctions, selector, a); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}

	return nil
}

func (im *exponentialImpl) Remove(c ctx.Ctx, id domain.ProjectKey) error {
	selector, err := mongoclient.MakeBsonM(id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}

	if err := im.q.Remove(c, domain.TableExponentialAuctions, selector); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.Remove failed")
		return err
	}

	return nil
}
