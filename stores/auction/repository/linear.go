package repository

import (
	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/database/mongoclient"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/auction"
	"github.com/archetype-labs/minter-suite/service/query"
)

type linearImpl struct {
	q query.Mongo
}

func NewLinear(q query.Mongo) auction.LinearRepo {
	return &linearImpl{q}
}

func (im *linearImpl) FindOne(c ctx.Ctx, id domain.ProjectKey) (*auction.LinearAuction, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}

	res := &auction.LinearAuction{}

	if err := im.q.FindOne(c, domain.TableLinearAuctions, qry, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}

func (im *linearImpl) Upsert(c ctx.Ctx, a *auction.LinearAuction) error {
	selector, err := mongoclient.MakeBsonM(a.ToId())
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}

	if err := im.q.Upsert(c, domain.TableLinearAuctions, selector, a); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}

	return nil
}

func (im *linearImpl) Remove(c ctx.Ctx, id domain.ProjectKey) error {
	selector, err := mongoclient.MakeBsonM(id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}

	if err := im.q.Remove(c, domain.TableLinearAuctions, selector); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.Remove failed")
		return err
	}

	return nil
}
