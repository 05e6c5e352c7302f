package usecase

import (
	"math/big"

	bCtx "github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/log"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/minter"
)

// SetPriceMinter sells at a fixed per-project price in the native currency.
type SetPriceMinter struct {
	minterBase
	priceRepo minter.FixedPriceRepo
}

func NewSetPriceMinter(cfg *MinterBaseCfg, priceRepo minter.FixedPriceRepo) *SetPriceMinter {
	return &SetPriceMinter{
		minterBase: newMinterBase(cfg),
		priceRepo:  priceRepo,
	}
}

func (m *SetPriceMinter) MinterType() minter.Type {
	return minter.TypeSetPrice
}

func (m *SetPriceMinter) MinterVersion() string {
	return "v1.1.0"
}

// UpdatePricePerTokenInWei is artist-only. The first configuration also
// initializes the project's invocation cache.
func (m *SetPriceMinter) UpdatePricePerTokenInWei(c bCtx.Ctx, sender domain.Address, key domain.ProjectKey, price *big.Int) error {
	if err := m.requireArtist(c, sender, key); err != nil {
		return err
	}
	if price == nil || price.Sign() < 0 {
		return domain.ErrBadParamInput
	}

	if _, err := m.invocationsUC.EnsureSynced(c, key); err != nil {
		return err
	}

	if err := m.priceRepo.Upsert(c, &minter.FixedPrice{
		ProjectKey:         key,
		PricePerTokenInWei: domain.FormatWei(price),
	}); err != nil {
		c.WithField("err", err).Error("priceRepo.Upsert failed")
		return err
	}

	c.WithFields(log.Fields{
		"project": key.String(),
		"price":   price.String(),
	}).Info("price per token updated")
	return nil
}

func (m *SetPriceMinter) resolvePrice(c bCtx.Ctx, key domain.ProjectKey) (*big.Int, error) {
	fixed, err := m.priceRepo.FindOne(c, key)
	if err == domain.ErrNotFound {
		return nil, domain.ErrPriceNotConfigured
	} else if err != nil {
		c.WithField("err", err).Error("priceRepo.FindOne failed")
		return nil, err
	}
	return domain.ParseWei(fixed.PricePerTokenInWei)
}

func (m *SetPriceMinter) Purchase(c bCtx.Ctx, params minter.PurchaseParams) (domain.TokenId, error) {
	return m.purchaseTo(c, params, params.Purchaser)
}

func (m *SetPriceMinter) PurchaseTo(c bCtx.Ctx, params minter.PurchaseParams) (domain.TokenId, error) {
	return m.purchaseTo(c, params, params.To)
}

func (m *SetPriceMinter) purchaseTo(c bCtx.Ctx, params minter.PurchaseParams, to domain.Address) (domain.TokenId, error) {
	price, err := m.resolvePrice(c, params.Key)
	if err != nil {
		return 0, err
	}
	return m.executePurchase(c, params, to, purchaseSpec{price: price})
}

func (m *SetPriceMinter) GetPriceInfo(c bCtx.Ctx, key domain.ProjectKey) (*minter.PriceInfo, error) {
	price, err := m.resolvePrice(c, key)
	if err == domain.ErrPriceNotConfigured {
		return unconfiguredPriceInfo(), nil
	} else if err != nil {
		return nil, err
	}
	return nativePriceInfo(price), nil
}
