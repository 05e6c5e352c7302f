package usecase

import (
	"math/big"

	bCtx "github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/log"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/minter"
)

// SetPriceERC20Minter sells at a fixed per-project price in the project's
// configured ERC-20 currency. Purchases are pull-based transferFrom legs, so
// the declared sent value is ignored.
type SetPriceERC20Minter struct {
	minterBase
	priceRepo minter.FixedPriceRepo
}

func NewSetPriceERC20Minter(cfg *MinterBaseCfg, priceRepo minter.FixedPriceRepo) *SetPriceERC20Minter {
	return &SetPriceERC20Minter{
		minterBase: newMinterBase(cfg),
		priceRepo:  priceRepo,
	}
}

func (m *SetPriceERC20Minter) MinterType() minter.Type {
	return minter.TypeSetPriceERC20
}

func (m *SetPriceERC20Minter) MinterVersion() string {
	return "v1.1.0"
}

func (m *SetPriceERC20Minter) UpdatePricePerTokenInWei(c bCtx.Ctx, sender domain.Address, key domain.ProjectKey, price *big.Int) error {
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

// UpdateProjectCurrencyInfo forwards to the splitter's per-project currency
// configuration, which verifies the token symbol on-chain.
func (m *SetPriceERC20Minter) UpdateProjectCurrencyInfo(c bCtx.Ctx, sender domain.Address, key domain.ProjectKey, currencyAddress domain.Address, currencySymbol string) error {
	return m.splitterUC.UpdateProjectCurrencyInfo(c, sender, key, currencyAddress, currencySymbol)
}

func (m *SetPriceERC20Minter) resolvePrice(c bCtx.Ctx, key domain.ProjectKey) (*big.Int, error) {
	fixed, err := m.priceRepo.FindOne(c, key)
	if err == domain.ErrNotFound {
		return nil, domain.ErrPriceNotConfigured
	} else if err != nil {
		c.WithField("err", err).Error("priceRepo.FindOne failed")
		return nil, err
	}
	return domain.ParseWei(fixed.PricePerTokenInWei)
}

func (m *SetPriceERC20Minter) Purchase(c bCtx.Ctx, params minter.PurchaseParams) (domain.TokenId, error) {
	return m.purchaseTo(c, params, params.Purchaser)
}

func (m *SetPriceERC20Minter) PurchaseTo(c bCtx.Ctx, params minter.PurchaseParams) (domain.TokenId, error) {
	return m.purchaseTo(c, params, params.To)
}

func (m *SetPriceERC20Minter) purchaseTo(c bCtx.Ctx, params minter.PurchaseParams, to domain.Address) (domain.TokenId, error) {
	price, err := m.resolvePrice(c, params.Key)
	if err != nil {
		return 0, err
	}
	return m.executePurchase(c, params, to, purchaseSpec{price: price, erc20: true})
}

func (m *SetPriceERC20Minter) GetPriceInfo(c bCtx.Ctx, key domain.ProjectKey) (*minter.PriceInfo, error) {
	price, err := m.resolvePrice(c, key)
	if err == domain.ErrPriceNotConfigured {
		return unconfiguredPriceInfo(), nil
	} else if err != nil {
		return nil, err
	}

	currency, err := m.splitterUC.GetProjectCurrency(c, key)
	if err == domain.ErrNotFound {
		// price set but no currency yet: configured, not yet purchasable
		info := nativePriceInfo(price)
		info.CurrencySymbol = ""
		info.CurrencyAddress = domain.EmptyAddress
		return info, nil
	} else if err != nil {
		return nil, err
	}

	return &minter.PriceInfo{
		IsConfigured:    true,
		PriceWei:        domain.FormatWei(price),
		DisplayPrice:    displayPrice(price),
		CurrencySymbol:  currency.CurrencySymbol,
		CurrencyAddress: currency.CurrencyAddress,
	}, nil
}
