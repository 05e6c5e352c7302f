package repository

import (
	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/database/mongoclient"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/splitter"
	"github.com/archetype-labs/minter-suite/service/query"
)

type currencyImpl struct {
	q query.Mongo
}

func NewCurrency(q query.Mongo) splitter.CurrencyRepo {
	return &currencyImpl{q}
}

func (im *currencyImpl) FindOne(c ctx.Ctx, id domain.ProjectKey) (*splitter.ProjectCurrency, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}

	res := &splitter.ProjectCurrency{}

	if err := im.q.FindOne(c, domain.TableProjectCurrencies, qry, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}

func (im *currencyImpl) Upsert(c ctx.Ctx, currency *splitter.ProjectCurrency) error {
	currency.CoreContract = currency.CoreContract.ToLower()
	currency.CurrencyAddress = currency.CurrencyAddress.ToLower()

	selector, err := mongoclient.MakeBsonM(currency.ToId())
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}

	if err := im.q.Upsert(c, domain.TableProjectCurrencies, selector, currency); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}

	return nil
}
