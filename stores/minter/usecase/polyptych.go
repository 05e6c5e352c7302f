package usecase

import (
	"encoding/hex"
	"math/big"

	bCtx "github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/log"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/allowlist"
	"github.com/archetype-labs/minter-suite/domain/core"
	"github.com/archetype-labs/minter-suite/domain/minter"
)

// PolyptychMinter is a holder-gated minter that re-mints the hash seed of an
// owned parent token onto the next panel of the polyptych. Each parent seed
// mints at most once per panel.
type PolyptychMinter struct {
	minterBase
	priceRepo     minter.FixedPriceRepo
	allowlistUC   allowlist.UseCase
	polyptychRepo minter.PolyptychRepo
}

func NewPolyptychMinter(cfg *MinterBaseCfg, priceRepo minter.FixedPriceRepo, allowlistUC allowlist.UseCase, polyptychRepo minter.PolyptychRepo) *PolyptychMinter {
	return &PolyptychMinter{
		minterBase:    newMinterBase(cfg),
		priceRepo:     priceRepo,
		allowlistUC:   allowlistUC,
		polyptychRepo: polyptychRepo,
	}
}

func (m *PolyptychMinter) MinterType() minter.Type {
	return minter.TypePolyptych
}

func (m *PolyptychMinter) MinterVersion() string {
	return "v1.0.0"
}

func (m *PolyptychMinter) AllowlistUseCase() allowlist.UseCase {
	return m.allowlistUC
}

func formatHashSeed(seed core.HashSeed) string {
	return "0x" + hex.EncodeToString(seed[:])
}

// CurrentPanelId returns the panel currently open for minting; projects
// start on panel 0.
func (m *PolyptychMinter) CurrentPanelId(c bCtx.Ctx, key domain.ProjectKey) (uint64, error) {
	panel, err := m.polyptychRepo.FindPanel(c, key)
	if err == domain.ErrNotFound {
		return 0, nil
	} else if err != nil {
		c.WithField("err", err).Error("polyptychRepo.FindPanel failed")
		return 0, err
	}
	return panel.PanelId, nil
}

// IncrementPolyptychProjectPanelId opens the next panel, letting every
// parent seed mint once more. Artist only.
func (m *PolyptychMinter) IncrementPolyptychProjectPanelId(c bCtx.Ctx, sender domain.Address, key domain.ProjectKey) (uint64, error) {
	if err := m.requireArtist(c, sender, key); err != nil {
		return 0, err
	}

	current, err := m.CurrentPanelId(c, key)
	if err != nil {
		return 0, err
	}

	next := current + 1
	if err := m.polyptychRepo.UpsertPanel(c, &minter.PolyptychPanel{
		ProjectKey: key,
		PanelId:    next,
	}); err != nil {
		c.WithField("err", err).Error("polyptychRepo.UpsertPanel failed")
		return 0, err
	}

	c.WithFields(log.Fields{
		"project": key.String(),
		"panelId": next,
	}).Info("polyptych panel advanced")
	return next, nil
}

func (m *PolyptychMinter) UpdatePricePerTokenInWei(c bCtx.Ctx, sender domain.Address, key domain.ProjectKey, price *big.Int) error {
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

func (m *PolyptychMinter) resolvePrice(c bCtx.Ctx, key domain.ProjectKey) (*big.Int, error) {
	fixed, err := m.priceRepo.FindOne(c, key)
	if err == domain.ErrNotFound {
		return nil, domain.ErrPriceNotConfigured
	} else if err != nil {
		c.WithField("err", err).Error("priceRepo.FindOne failed")
		return nil, err
	}
	return domain.ParseWei(fixed.PricePerTokenInWei)
}

func (m *PolyptychMinter) Purchase(c bCtx.Ctx, params minter.PurchaseParams) (domain.TokenId, error) {
	return m.purchaseTo(c, params, params.Purchaser)
}

func (m *PolyptychMinter) PurchaseTo(c bCtx.Ctx, params minter.PurchaseParams) (domain.TokenId, error) {
	return m.purchaseTo(c, params, params.To)
}

func (m *PolyptychMinter) purchaseTo(c bCtx.Ctx, params minter.PurchaseParams, to domain.Address) (domain.TokenId, error) {
	price, err := m.resolvePrice(c, params.Key)
	if err != nil {
		return 0, err
	}

	var hashSeed string
	var panelId uint64

	return m.executePurchase(c, params, to, purchaseSpec{
		price: price,
		preMint: func(c bCtx.Ctx) error {
			if _, err := m.gate(c, m.allowlistUC, params); err != nil {
				return err
			}

			seed, err := m.coreContract.TokenHashSeed(c, params.OwnedNFTAddress, params.OwnedNFTTokenId)
			if err != nil {
				c.WithField("err", err).Error("coreContract.TokenHashSeed failed")
				return err
			}
			if seed.IsZero() {
				return domain.ErrNilHashSeed
			}
			hashSeed = formatHashSeed(seed)

			panelId, err = m.CurrentPanelId(c, params.Key)
			if err != nil {
				return err
			}
			if _, err := m.polyptychRepo.FindSeedMint(c, params.Key, panelId, hashSeed); err == nil {
				return domain.ErrPanelHashSeedMinted
			} else if err != domain.ErrNotFound {
				c.WithField("err", err).Error("polyptychRepo.FindSeedMint failed")
				return err
			}
			return nil
		},
		postMint: func(c bCtx.Ctx, tokenId domain.TokenId) error {
			// the unique index is the authority; a lost race surfaces here
			err := m.polyptychRepo.CreateSeedMint(c, &minter.PolyptychSeedMint{
				ProjectKey: params.Key,
				PanelId:    panelId,
				HashSeed:   hashSeed,
			})
			if err == domain.ErrConflict {
				return domain.ErrPanelHashSeedMinted
			} else if err != nil {
				c.WithField("err", err).Error("polyptychRepo.CreateSeedMint failed")
				return err
			}
			return nil
		},
	})
}

func (m *PolyptychMinter) GetPriceInfo(c bCtx.Ctx, key domain.ProjectKey) (*minter.PriceInfo, error) {
	price, err := m.resolvePrice(c, key)
	if err == domain.ErrPriceNotConfigured {
		return unconfiguredPriceInfo(), nil
	} else if err != nil {
		return nil, err
	}
	return nativePriceInfo(price), nil
}
