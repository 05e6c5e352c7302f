package repository

import (
	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/database/mongoclient"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/invocations"
	"github.com/archetype-labs/minter-suite/service/query"
)

type invocationsImpl struct {
	q query.Mongo
}

func New(q query.Mongo) invocations.Repo {
	return &invocationsImpl{q}
}

func (im *invocationsImpl) FindOne(c ctx.Ctx, id domain.ProjectKey) (*invocations.State, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}

	res := &invocations.State{}

	if err := im.q.FindOne(c, domain.TableMaxInvocations, qry, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}

func (im *invocationsImpl) Upsert(c ctx.Ctx, state *invocations.State) error {
	selector, err := mongoclient.MakeBsonM(state.ToId())
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}

	if err := im.q.Upsert(c, domain.TableMaxInvocations, selector, state); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}

	return nil
}
