package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/registry"
	"github.com/archetype-labs/minter-suite/service/query"
)

// the registry config is a singleton document
const configDocId = "registry"

type configImpl struct {
	q query.Mongo
}

func NewConfig(q query.Mongo) registry.ConfigRepo {
	return &configImpl{q}
}

func (im *configImpl) Get(c ctx.Ctx) (*registry.Config, error) {
	res := &registry.Config{}

	if err := im.q.FindOne(c, domain.TableRegistryConfigs, bson.M{"_id": configDocId}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}

func (im *configImpl) Upsert(c ctx.Ctx, config *registry.Config) error {
	config.Owner = config.Owner.ToLower()
	config.CoreRegistry = config.CoreRegistry.ToLower()

	update := bson.M{
		"_id":          configDocId,
		"owner":        config.Owner,
		"coreRegistry": config.CoreRegistry,
	}

	if err := im.q.Upsert(c, domain.TableRegistryConfigs, bson.M{"_id": configDocId}, update); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}

	return nil
}
