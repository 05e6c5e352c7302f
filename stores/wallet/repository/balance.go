package repository

import (
	"math/big"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/wallet"
	"github.com/archetype-labs/minter-suite/service/query"
)

// balanceDoc stores the amount as Decimal128 so mongo can compare and
// increment it server-side. Wei amounts fit: Decimal128 carries 34
// significant digits, uint256 balances in practice stay far below that.
type balanceDoc struct {
	Owner    string               `bson:"owner"`
	Currency string               `bson:"currency"`
	Amount   primitive.Decimal128 `bson:"amount"`
}

type balanceImpl struct {
	q query.Mongo
}

func New(q query.Mongo) wallet.Repo {
	return &balanceImpl{q}
}

func balanceSelector(owner, currency domain.Address) bson.M {
	return bson.M{
		"owner":    owner.ToLowerStr(),
		"currency": currency.ToLowerStr(),
	}
}

func toDecimal128(c ctx.Ctx, amount *big.Int) (primitive.Decimal128, error) {
	dec, err := primitive.ParseDecimal128(amount.String())
	if err != nil {
		c.WithField("err", err).Error("primitive.ParseDecimal128 failed")
		return primitive.Decimal128{}, err
	}
	return dec, nil
}

func (im *balanceImpl) FindOne(c ctx.Ctx, owner, currency domain.Address) (*wallet.Balance, error) {
	doc := &balanceDoc{}

	if err := im.q.FindOne(c, domain.TableBalances, balanceSelector(owner, currency), doc); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}

	return &wallet.Balance{
		Owner:    domain.Address(doc.Owner),
		Currency: domain.Address(doc.Currency),
		Amount:   doc.Amount.String(),
	}, nil
}

func (im *balanceImpl) Credit(c ctx.Ctx, owner, currency domain.Address, amount *big.Int) error {
	dec, err := toDecimal128(c, amount)
	if err != nil {
		return err
	}

	update := bson.M{"$inc": bson.M{"amount": dec}}
	if err := im.q.CustomPatch(c, domain.TableBalances, balanceSelector(owner, currency), update, true); err != nil {
		c.WithField("err", err).Error("q.CustomPatch failed")
		return err
	}

	return nil
}

func (im *balanceImpl) Debit(c ctx.Ctx, owner, currency domain.Address, amount *big.Int) error {
	dec, err := toDecimal128(c, amount)
	if err != nil {
		return err
	}
	negDec, err := toDecimal128(c, new(big.Int).Neg(amount))
	if err != nil {
		return err
	}

	// the floor guard lives in the selector so check and decrement are one
	// atomic operation
	selector := balanceSelector(owner, currency)
	selector["amount"] = bson.M{"$gte": dec}
	update := bson.M{"$inc": bson.M{"amount": negDec}}

	doc := &balanceDoc{}
	if err := im.q.FindOneAndPatch(c, domain.TableBalances, selector, update, doc); err == query.ErrNotFound {
		return domain.ErrInsufficientFunds
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOneAndPatch failed")
		return err
	}

	return nil
}
