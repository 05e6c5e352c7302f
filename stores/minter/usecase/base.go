package usecase

import (
	"math/big"

	"github.com/shopspring/decimal"

	bCtx "github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/guard"
	"github.com/archetype-labs/minter-suite/base/log"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/core"
	"github.com/archetype-labs/minter-suite/domain/invocations"
	"github.com/archetype-labs/minter-suite/domain/minter"
	"github.com/archetype-labs/minter-suite/domain/registry"
	"github.com/archetype-labs/minter-suite/domain/splitter"
	"github.com/archetype-labs/minter-suite/domain/wallet"
)

const nativeCurrencySymbol = "ETH"

// MinterBaseCfg carries the collaborators every minter variant shares.
type MinterBaseCfg struct {
	Address            domain.Address
	Guard              *guard.Guard
	CoreContract       core.Contract
	RegistryUseCase    registry.UseCase
	InvocationsUseCase invocations.UseCase
	SplitterUseCase    splitter.UseCase
	WalletUseCase      wallet.Service
}

// minterBase implements the purchase pipeline common to all variants:
// guard entry, cap check, variant pre-mint gating, the registry mint choke
// point, invocation effects, variant post-mint bookkeeping, and the funds
// split as the final step.
type minterBase struct {
	address       domain.Address
	guard         *guard.Guard
	coreContract  core.Contract
	registryUC    registry.UseCase
	invocationsUC invocations.UseCase
	splitterUC    splitter.UseCase
	walletUC      wallet.Service
}

func newMinterBase(cfg *MinterBaseCfg) minterBase {
	return minterBase{
		address:       cfg.Address,
		guard:         cfg.Guard,
		coreContract:  cfg.CoreContract,
		registryUC:    cfg.RegistryUseCase,
		invocationsUC: cfg.InvocationsUseCase,
		splitterUC:    cfg.SplitterUseCase,
		walletUC:      cfg.WalletUseCase,
	}
}

func (m *minterBase) Address() domain.Address {
	return m.address
}

func (m *minterBase) ProjectMaxInvocations(c bCtx.Ctx, key domain.ProjectKey) (uint64, error) {
	return m.invocationsUC.ProjectMaxInvocations(c, key)
}

func (m *minterBase) ProjectMaxHasBeenInvoked(c bCtx.Ctx, key domain.ProjectKey) (bool, error) {
	return m.invocationsUC.ProjectMaxHasBeenInvoked(c, key)
}

func (m *minterBase) requireArtist(c bCtx.Ctx, sender domain.Address, key domain.ProjectKey) error {
	artist, err := m.coreContract.ProjectIdToArtistAddress(c, key.CoreContract, key.ProjectId)
	if err != nil {
		c.WithField("err", err).Error("coreContract.ProjectIdToArtistAddress failed")
		return err
	}
	if !artist.Equals(sender) {
		return domain.ErrNotArtist
	}
	return nil
}

// purchaseSpec is what a variant contributes to one purchase: the resolved
// price, the payment mode, and optional gating hooks around the mint.
type purchaseSpec struct {
	price    *big.Int
	erc20    bool
	preMint  func(c bCtx.Ctx) error
	postMint func(c bCtx.Ctx, tokenId domain.TokenId) error
}

func (m *minterBase) executePurchase(c bCtx.Ctx, params minter.PurchaseParams, to domain.Address, spec purchaseSpec) (domain.TokenId, error) {
	// per-project non-reentrant guard: a nested purchase on the same
	// project fails instead of observing half-applied state
	if err := m.guard.Enter(params.Key.String()); err != nil {
		return 0, err
	}
	defer m.guard.Exit(params.Key.String())

	if _, err := m.invocationsUC.RequireNotMaxed(c, params.Key); err != nil {
		return 0, err
	}
	if !spec.erc20 {
		if params.SentValue == nil || params.SentValue.Cmp(spec.price) < 0 {
			return 0, domain.ErrInsufficientFunds
		}
	}
	if spec.preMint != nil {
		if err := spec.preMint(c); err != nil {
			return 0, err
		}
	}

	// the mint cannot be rolled back, so an uncovered escrow balance must
	// fail here and not at the split
	if !spec.erc20 {
		balance, err := m.walletUC.BalanceOf(c, params.Purchaser, domain.NativeCurrencyAddress)
		if err != nil {
			return 0, err
		}
		if balance.Cmp(params.SentValue) < 0 {
			return 0, domain.ErrInsufficientFunds
		}
	}

	tokenId, err := m.registryUC.Mint(c, m.address, to, params.Purchaser, params.Key)
	if err != nil {
		return 0, err
	}

	if _, err := m.invocationsUC.ValidatePurchaseEffectsInvocations(c, params.Key, tokenId); err != nil {
		return 0, err
	}
	if spec.postMint != nil {
		if err := spec.postMint(c, tokenId); err != nil {
			return 0, err
		}
	}

	// funds split last, after all effects
	if spec.erc20 {
		_, err = m.splitterUC.SplitFundsERC20(c, params.Key, spec.price, params.Purchaser)
	} else {
		_, err = m.splitterUC.SplitFundsETH(c, params.Key, spec.price, params.SentValue, params.Purchaser)
	}
	if err != nil {
		return 0, err
	}

	c.WithFields(log.Fields{
		"project": params.Key.String(),
		"tokenId": tokenId,
		"to":      to,
		"price":   spec.price.String(),
	}).Info("purchase minted")
	return tokenId, nil
}

// displayPrice renders a wei amount in whole native/token units for price
// info responses.
func displayPrice(wei *big.Int) string {
	return decimal.NewFromBigInt(wei, -18).String()
}

func nativePriceInfo(price *big.Int) *minter.PriceInfo {
	return &minter.PriceInfo{
		IsConfigured:    true,
		PriceWei:        domain.FormatWei(price),
		DisplayPrice:    displayPrice(price),
		CurrencySymbol:  nativeCurrencySymbol,
		CurrencyAddress: domain.NativeCurrencyAddress,
	}
}

func unconfiguredPriceInfo() *minter.PriceInfo {
	return &minter.PriceInfo{
		IsConfigured:    false,
		CurrencySymbol:  nativeCurrencySymbol,
		CurrencyAddress: domain.NativeCurrencyAddress,
	}
}
