package usecase

import (
	"math/big"

	bCtx "github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/log"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/allowlist"
	"github.com/archetype-labs/minter-suite/domain/minter"
)

// HolderMinter gates a fixed-price sale on holding an allowlisted NFT. A
// vault owner can mint through a registered hot-wallet delegate; the vault
// is then the principal for ownership and allowlist checks.
type HolderMinter struct {
	minterBase
	priceRepo   minter.FixedPriceRepo
	allowlistUC allowlist.UseCase
}

func NewHolderMinter(cfg *MinterBaseCfg, priceRepo minter.FixedPriceRepo, allowlistUC allowlist.UseCase) *HolderMinter {
	return &HolderMinter{
		minterBase:  newMinterBase(cfg),
		priceRepo:   priceRepo,
		allowlistUC: allowlistUC,
	}
}

func (m *HolderMinter) MinterType() minter.Type {
	return minter.TypeHolder
}

func (m *HolderMinter) MinterVersion() string {
	return "v1.1.0"
}

func (m *HolderMinter) AllowlistUseCase() allowlist.UseCase {
	return m.allowlistUC
}

func (m *HolderMinter) UpdatePricePerTokenInWei(c bCtx.Ctx, sender domain.Address, key domain.ProjectKey, price *big.Int) error {
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

func (m *HolderMinter) resolvePrice(c bCtx.Ctx, key domain.ProjectKey) (*big.Int, error) {
	fixed, err := m.priceRepo.FindOne(c, key)
	if err == domain.ErrNotFound {
		return nil, domain.ErrPriceNotConfigured
	} else if err != nil {
		c.WithField("err", err).Error("priceRepo.FindOne failed")
		return nil, err
	}
	return domain.ParseWei(fixed.PricePerTokenInWei)
}

// gate resolves the minting principal and verifies the presented NFT is
// allowlisted and currently owned by that principal.
func (m *minterBase) gate(c bCtx.Ctx, allowlistUC allowlist.UseCase, params minter.PurchaseParams) (domain.Address, error) {
	principal, err := allowlistUC.ResolvePrincipal(c, params.Purchaser, params.Vault, params.OwnedNFTAddress, params.OwnedNFTTokenId)
	if err != nil {
		return "", err
	}

	allowed, err := allowlistUC.IsAllowlistedNFT(c, params.Key, params.OwnedNFTAddress, params.OwnedNFTTokenId)
	if err != nil {
		return "", err
	}
	if !allowed {
		return "", domain.ErrNotAllowlistedNFT
	}

	if err := allowlistUC.ValidateNFTOwnership(c, params.OwnedNFTAddress, params.OwnedNFTTokenId, principal); err != nil {
		return "", err
	}
	return principal, nil
}

func (m *HolderMinter) Purchase(c bCtx.Ctx, params minter.PurchaseParams) (domain.TokenId, error) {
	return m.purchaseTo(c, params, params.Purchaser)
}

func (m *HolderMinter) PurchaseTo(c bCtx.Ctx, params minter.PurchaseParams) (domain.TokenId, error) {
	return m.purchaseTo(c, params, params.To)
}

func (m *HolderMinter) purchaseTo(c bCtx.Ctx, params minter.PurchaseParams, to domain.Address) (domain.TokenId, error) {
	price, err := m.resolvePrice(c, params.Key)
	if err != nil {
		return 0, err
	}
	return m.executePurchase(c, params, to, purchaseSpec{
		price: price,
		preMint: func(c bCtx.Ctx) error {
			_, err := m.gate(c, m.allowlistUC, params)
			return err
		},
	})
}

func (m *HolderMinter) GetPriceInfo(c bCtx.Ctx, key domain.ProjectKey) (*minter.PriceInfo, error) {
	price, err := m.resolvePrice(c, key)
	if err == domain.ErrPriceNotConfigured {
		return unconfiguredPriceInfo(), nil
	} else if err != nil {
		return nil, err
	}
	return nativePriceInfo(price), nil
}
