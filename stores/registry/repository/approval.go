package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/registry"
	"github.com/archetype-labs/minter-suite/service/query"
)

type approvalImpl struct {
	q query.Mongo
}

func NewApproval(q query.Mongo) registry.ApprovalRepo {
	return &approvalImpl{q}
}

func approvalSelector(minter domain.Address, scope registry.ApprovalScope, coreContract domain.Address) bson.M {
	qry := bson.M{
		"minter": minter.ToLower(),
		"scope":  scope,
	}
	if scope == registry.ApprovalScopeContract {
		qry["coreContract"] = coreContract.ToLower()
	}
	return qry
}

func (im *approvalImpl) FindOne(c ctx.Ctx, minter domain.Address, scope registry.ApprovalScope, coreContract domain.Address) (*registry.Approval, error) {
	res := &registry.Approval{}

	if err := im.q.FindOne(c, domain.TableMinterApprovals, approvalSelector(minter, scope, coreContract), res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}

func (im *approvalImpl) FindAll(c ctx.Ctx, scope registry.ApprovalScope, coreContract domain.Address) ([]*registry.Approval, error) {
	qry := bson.M{"scope": scope}
	if scope == registry.ApprovalScopeContract {
		qry["coreContract"] = coreContract.ToLower()
	}

	res := []*registry.Approval{}

	if err := im.q.Search(c, domain.TableMinterApprovals, 0, 0, "minter", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return res, err
	}

	return res, nil
}

func (im *approvalImpl) Upsert(c ctx.Ctx, approval *registry.Approval) error {
	approval.Minter = approval.Minter.ToLower()
	approval.CoreContract = approval.CoreContract.ToLower()

	selector := approvalSelector(approval.Minter, approval.Scope, approval.CoreContract)

	if err := im.q.Upsert(c, domain.TableMinterApprovals, selector, approval); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}

	return nil
}

func (im *approvalImpl) Remove(c ctx.Ctx, minter domain.Address, scope registry.ApprovalScope, coreContract domain.Address) error {
	if err := im.q.Remove(c, domain.TableMinterApprovals, approvalSelector(minter, scope, coreContract)); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.Remove failed")
		return err
	}

	return nil
}
