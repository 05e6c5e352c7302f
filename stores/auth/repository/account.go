package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/service/query"
)

type accountImpl struct {
	q query.Mongo
}

func NewAccount(q query.Mongo) domain.AccountRepo {
	return &accountImpl{q}
}

func (im *accountImpl) FindOne(c ctx.Ctx, address domain.Address) (*domain.Account, error) {
	qry := bson.M{"address": address.ToLowerStr()}

	res := &domain.Account{}

	if err := im.q.FindOne(c, domain.TableAccounts, qry, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}

func (im *accountImpl) Upsert(c ctx.Ctx, account *domain.Account) error {
	account.Address = account.Address.ToLower()

	selector := bson.M{"address": account.Address.ToLowerStr()}

	if err := im.q.Upsert(c, domain.TableAccounts, selector, account); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}

	return nil
}
