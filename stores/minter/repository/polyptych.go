package repository

import (
	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/database/mongoclient"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/minter"
	"github.com/archetype-labs/minter-suite/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type polyptychImpl struct {
	q query.Mongo
}

func NewPolyptych(q query.Mongo) minter.PolyptychRepo {
	return &polyptychImpl{q}
}

func (im *polyptychImpl) FindPanel(c ctx.Ctx, id domain.ProjectKey) (*minter.PolyptychPanel, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}

	res := &minter.PolyptychPanel{}

	if err := im.q.FindOne(c, domain.TablePolyptychPanels, qry, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}

func (im *polyptychImpl) UpsertPanel(c ctx.Ctx, panel *minter.PolyptychPanel) error {
	selector, err := mongoclient.MakeBsonM(panel.ProjectKey)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}

	if err := im.q.Upsert(c, domain.TablePolyptychPanels, selector, panel); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}

	return nil
}

func seedMintSelector(id domain.ProjectKey, panelId uint64, hashSeed string) bson.M {
	return bson.M{
		"coreContract": id.CoreContract.ToLowerStr(),
		"projectId":    id.ProjectId,
		"panelId":      panelId,
		"hashSeed":     hashSeed,
	}
}

func (im *polyptychImpl) CreateSeedMint(c ctx.Ctx, mint *minter.PolyptychSeedMint) error {
	// relies on the unique (coreContract, projectId, panelId, hashSeed)
	// index to reject a second mint of the same seed on the panel
	if err := im.q.Insert(c, domain.TablePolyptychSeedMints, mint); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}

	return nil
}

func (im *polyptychImpl) FindSeedMint(c ctx.Ctx, id domain.ProjectKey, panelId uint64, hashSeed string) (*minter.PolyptychSeedMint, error) {
	res := &minter.PolyptychSeedMint{}

	if err := im.q.FindOne(c, domain.TablePolyptychSeedMints, seedMintSelector(id, panelId, hashSeed), res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}
