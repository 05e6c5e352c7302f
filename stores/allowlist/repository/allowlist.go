package repository

import (
	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/database/mongoclient"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/allowlist"
	"github.com/archetype-labs/minter-suite/service/query"
)

type allowlistImpl struct {
	q query.Mongo
}

func New(q query.Mongo) allowlist.Repo {
	return &allowlistImpl{q}
}

func (im *allowlistImpl) FindOne(c ctx.Ctx, id allowlist.EntryId) (*allowlist.Entry, error) {
	id.OwnedNFTAddress = id.OwnedNFTAddress.ToLower()

	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}

	res := &allowlist.Entry{}

	if err := im.q.FindOne(c, domain.TableHolderAllowlists, qry, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}

func (im *allowlistImpl) FindAll(c ctx.Ctx, key domain.ProjectKey) ([]*allowlist.Entry, error) {
	qry, err := mongoclient.MakeBsonM(key)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}

	res := []*allowlist.Entry{}

	if err := im.q.Search(c, domain.TableHolderAllowlists, 0, 0, "ownedNFTAddress", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}

func (im *allowlistImpl) Upsert(c ctx.Ctx, entry *allowlist.Entry) error {
	entry.OwnedNFTAddress = entry.OwnedNFTAddress.ToLower()

	selector, err := mongoclient.MakeBsonM(entry.ToId())
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}

	if err := im.q.Upsert(c, domain.TableHolderAllowlists, selector, entry); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}

	return nil
}

func (im *allowlistImpl) Remove(c ctx.Ctx, id allowlist.EntryId) error {
	id.OwnedNFTAddress = id.OwnedNFTAddress.ToLower()

	selector, err := mongoclient.MakeBsonM(id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}

	if err := im.q.Remove(c, domain.TableHolderAllowlists, selector); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.Remove failed")
		return err
	}

	return nil
}
