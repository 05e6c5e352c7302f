package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/database/mongoclient"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/registry"
	"github.com/archetype-labs/minter-suite/service/query"
)

type assignmentImpl struct {
	q query.Mongo
}

func NewAssignment(q query.Mongo) registry.AssignmentRepo {
	return &assignmentImpl{q}
}

func (im *assignmentImpl) FindOne(c ctx.Ctx, id domain.ProjectKey) (*registry.Assignment, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}

	res := &registry.Assignment{}

	if err := im.q.FindOne(c, domain.TableMinterAssignments, qry, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}

func (im *assignmentImpl) FindAll(c ctx.Ctx, opts ...registry.FindAllOptions) ([]*registry.Assignment, error) {
	parsed := registry.ParseFindAllOptions(opts...)

	offset := int(0)

	limit := int(0)

	qry := bson.M{}

	if parsed.Offset != nil {
		offset = *parsed.Offset
	}

	if parsed.Limit != nil {
		limit = *parsed.Limit
	}

	if parsed.Minter != nil {
		qry["minter"] = *parsed.Minter
	}

	if parsed.CoreContract != nil {
		qry["coreContract"] = *parsed.CoreContract
	}

	res := []*registry.Assignment{}

	if err := im.q.Search(c, domain.TableMinterAssignments, offset, limit, "coreContract", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return res, err
	}

	return res, nil
}

func (im *assignmentImpl) Count(c ctx.Ctx, opts ...registry.FindAllOptions) (int, error) {
	parsed := registry.ParseFindAllOptions(opts...)

	qry := bson.M{}

	if parsed.Minter != nil {
		qry["minter"] = *parsed.Minter
	}

	if parsed.CoreContract != nil {
		qry["coreContract"] = *parsed.CoreContract
	}

	cnt, err := im.q.Count(c, domain.TableMinterAssignments, qry)
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return 0, err
	}

	return cnt, nil
}

func (im *assignmentImpl) Upsert(c ctx.Ctx, assignment *registry.Assignment) error {
	selector, err := mongoclient.MakeBsonM(assignment.ToId())
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}

	if err := im.q.Upsert(c, domain.TableMinterAssignments, selector, assignment); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}

	return nil
}

func (im *assignmentImpl) Remove(c ctx.Ctx, id domain.ProjectKey) error {
	selector, err := mongoclient.MakeBsonM(id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}

	if err := im.q.Remove(c, domain.TableMinterAssignments, selector); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.Remove failed")
		return err
	}

	return nil
}
