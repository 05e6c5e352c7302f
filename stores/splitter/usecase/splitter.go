package usecase

import (
	"math/big"
	"time"

	bCtx "github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/log"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/core"
	"github.com/archetype-labs/minter-suite/domain/splitter"
	"github.com/archetype-labs/minter-suite/domain/wallet"
	"github.com/archetype-labs/minter-suite/service/chain/contract"
)

// abi return data is a sequence of 32-byte words; the revenue split query
// returns 8 words on engine cores and 6 on flagship ones
const (
	wordSize           = 32
	engineSplitWords   = 8
	flagshipSplitWords = 6
)

type SplitterUseCaseCfg struct {
	EngineCacheRepo splitter.EngineCacheRepo
	CurrencyRepo    splitter.CurrencyRepo
	CoreContract    core.Contract
	Erc20Contract   contract.Erc20Contract
	WalletRepo      wallet.Repo
}

type splitterUseCase struct {
	engineCacheRepo splitter.EngineCacheRepo
	currencyRepo    splitter.CurrencyRepo
	coreContract    core.Contract
	erc20Contract   contract.Erc20Contract
	walletRepo      wallet.Repo
}

func NewSplitterUseCase(cfg *SplitterUseCaseCfg) splitter.UseCase {
	return &splitterUseCase{
		engineCacheRepo: cfg.EngineCacheRepo,
		currencyRepo:    cfg.CurrencyRepo,
		coreContract:    cfg.CoreContract,
		erc20Contract:   cfg.Erc20Contract,
		walletRepo:      cfg.WalletRepo,
	}
}

func (u *splitterUseCase) IsEngine(c bCtx.Ctx, coreContract domain.Address) (bool, error) {
	cached, err := u.engineCacheRepo.FindOne(c, coreContract)
	if err == nil {
		return cached.IsEngine, nil
	} else if err != domain.ErrNotFound {
		c.WithField("err", err).Error("engineCacheRepo.FindOne failed")
		return false, err
	}

	// shape-sense the core: word count of the revenue split return data is
	// fixed per deployment, independent of project and price
	startingId, err := u.coreContract.StartingProjectId(c, coreContract)
	if err != nil {
		c.WithField("err", err).Error("coreContract.StartingProjectId failed")
		return false, err
	}
	raw, err := u.coreContract.PrimaryRevenueSplitsRaw(c, coreContract, startingId, big.NewInt(0))
	if err != nil {
		c.WithField("err", err).Error("coreContract.PrimaryRevenueSplitsRaw failed")
		return false, err
	}

	var isEngine bool
	switch len(raw) {
	case engineSplitWords * wordSize:
		isEngine = true
	case flagshipSplitWords * wordSize:
		isEngine = false
	default:
		c.WithFields(log.Fields{
			"coreContract": coreContract,
			"returnLength": len(raw),
		}).Error("revenue split return data has unexpected shape")
		return false, domain.ErrUnexpectedSplitShape
	}

	err = u.engineCacheRepo.Create(c, &splitter.EngineCache{
		CoreContract: coreContract,
		IsEngine:     isEngine,
		CachedAt:     time.Now(),
	})
	// a concurrent probe already cached the same immutable answer
	if err != nil && err != domain.ErrConflict {
		c.WithField("err", err).Error("engineCacheRepo.Create failed")
		return false, err
	}

	c.WithFields(log.Fields{
		"coreContract": coreContract,
		"isEngine":     isEngine,
	}).Info("core contract engine-ness cached")
	return isEngine, nil
}

func (u *splitterUseCase) revenueSplits(c bCtx.Ctx, key domain.ProjectKey, price *big.Int) (*core.RevenueSplits, error) {
	isEngine, err := u.IsEngine(c, key.CoreContract)
	if err != nil {
		return nil, err
	}

	splits, err := u.coreContract.PrimaryRevenueSplits(c, key.CoreContract, key.ProjectId, price, isEngine)
	if err != nil {
		c.WithField("err", err).Error("coreContract.PrimaryRevenueSplits failed")
		return nil, err
	}

	if splits.Sum().Cmp(price) != 0 {
		c.WithFields(log.Fields{
			"project": key.String(),
			"price":   price.String(),
			"sum":     splits.Sum().String(),
		}).Error("revenue splits do not sum to price")
		return nil, domain.ErrSplitsDoNotSumToPrice
	}

	return splits, nil
}

// legs orders the payment legs: providers first, artist last so any rounding
// remainder computed core-side lands on the artist leg
func legs(splits *core.RevenueSplits) []splitter.Split {
	out := make([]splitter.Split, 0, 4)
	appendLeg := func(to domain.Address, amount *big.Int, role string) {
		if amount == nil || amount.Sign() == 0 {
			return
		}
		out = append(out, splitter.Split{To: to, Amount: amount, Role: role})
	}
	appendLeg(splits.RenderProviderAddress, splits.RenderProviderRevenue, "renderProvider")
	appendLeg(splits.PlatformProviderAddress, splits.PlatformProviderRevenue, "platformProvider")
	appendLeg(splits.AdditionalPayeeAddress, splits.AdditionalPayeeRevenue, "additionalPayee")
	appendLeg(splits.ArtistAddress, splits.ArtistRevenue, "artist")
	return out
}

func (u *splitterUseCase) SplitFundsETH(c bCtx.Ctx, key domain.ProjectKey, price, sentValue *big.Int, payer domain.Address) ([]splitter.Split, error) {
	if sentValue.Cmp(price) < 0 {
		return nil, domain.ErrInsufficientFunds
	}

	splits, err := u.revenueSplits(c, key, price)
	if err != nil {
		return nil, err
	}

	// the whole declared value leaves the payer atomically; the floor guard
	// in the ledger rejects an uncovered debit
	if err := u.walletRepo.Debit(c, payer, domain.NativeCurrencyAddress, sentValue); err != nil {
		if err != domain.ErrInsufficientFunds {
			c.WithField("err", err).Error("walletRepo.Debit failed")
		}
		return nil, err
	}

	executed := make([]splitter.Split, 0, 5)

	refund := new(big.Int).Sub(sentValue, price)
	if refund.Sign() > 0 {
		if err := u.walletRepo.Credit(c, payer, domain.NativeCurrencyAddress, refund); err != nil {
			c.WithField("err", err).Error("walletRepo.Credit refund failed")
			u.unwindETH(c, payer, sentValue, executed)
			return nil, err
		}
		executed = append(executed, splitter.Split{To: payer, Amount: refund, Role: "refund"})
	}

	for _, leg := range legs(splits) {
		if err := u.walletRepo.Credit(c, leg.To, domain.NativeCurrencyAddress, leg.Amount); err != nil {
			c.WithFields(log.Fields{
				"err":  err,
				"to":   leg.To,
				"role": leg.Role,
			}).Error("walletRepo.Credit leg failed")
			u.unwindETH(c, payer, sentValue, executed)
			return nil, err
		}
		executed = append(executed, leg)
	}

	return executed, nil
}

// unwindETH reverses the credited legs of a failed split and restores the
// payer, so no leg of the payment survives on its own. A leg whose recipient
// cannot cover the reversal stays put rather than minting new funds; the
// payer is restored only what was actually clawed back plus the amount never
// distributed.
func (u *splitterUseCase) unwindETH(c bCtx.Ctx, payer domain.Address, sentValue *big.Int, executed []splitter.Split) {
	restore := new(big.Int).Set(sentValue)
	for _, leg := range executed {
		restore.Sub(restore, leg.Amount)
	}

	for i := len(executed) - 1; i >= 0; i-- {
		leg := executed[i]
		if err := u.walletRepo.Debit(c, leg.To, domain.NativeCurrencyAddress, leg.Amount); err != nil {
			c.WithFields(log.Fields{
				"err":  err,
				"to":   leg.To,
				"role": leg.Role,
			}).Error("walletRepo.Debit reversal failed")
			continue
		}
		restore.Add(restore, leg.Amount)
	}

	if restore.Sign() > 0 {
		if err := u.walletRepo.Credit(c, payer, domain.NativeCurrencyAddress, restore); err != nil {
			c.WithFields(log.Fields{
				"err":    err,
				"payer":  payer,
				"amount": restore.String(),
			}).Error("walletRepo.Credit restore failed")
		}
	}
}

func (u *splitterUseCase) SplitFundsERC20(c bCtx.Ctx, key domain.ProjectKey, price *big.Int, payer domain.Address) ([]splitter.Split, error) {
	currency, err := u.currencyRepo.FindOne(c, key)
	if err == domain.ErrNotFound {
		return nil, domain.ErrCurrencyNotConfigured
	} else if err != nil {
		c.WithField("err", err).Error("currencyRepo.FindOne failed")
		return nil, err
	}

	splits, err := u.revenueSplits(c, key, price)
	if err != nil {
		return nil, err
	}

	// check balance and allowance up front so a doomed purchase fails before
	// any leg has been pulled
	balance, err := u.erc20Contract.BalanceOf(c, currency.CurrencyAddress, payer)
	if err != nil {
		c.WithField("err", err).Error("erc20Contract.BalanceOf failed")
		return nil, err
	}
	if balance.Cmp(price) < 0 {
		return nil, domain.ErrInsufficientFunds
	}
	allowance, err := u.erc20Contract.Allowance(c, currency.CurrencyAddress, payer)
	if err != nil {
		c.WithField("err", err).Error("erc20Contract.Allowance failed")
		return nil, err
	}
	if allowance.Cmp(price) < 0 {
		return nil, domain.ErrInsufficientFunds
	}

	executed := make([]splitter.Split, 0, 4)
	for _, leg := range legs(splits) {
		if err := u.erc20Contract.TransferFrom(c, currency.CurrencyAddress, payer, leg.To, leg.Amount); err != nil {
			c.WithFields(log.Fields{
				"err":  err,
				"to":   leg.To,
				"role": leg.Role,
			}).Error("erc20Contract.TransferFrom failed")
			return nil, domain.ErrTransferFailed
		}
		executed = append(executed, leg)
	}

	return executed, nil
}

func (u *splitterUseCase) UpdateProjectCurrencyInfo(c bCtx.Ctx, sender domain.Address, key domain.ProjectKey, currencyAddress domain.Address, currencySymbol string) error {
	artist, err := u.coreContract.ProjectIdToArtistAddress(c, key.CoreContract, key.ProjectId)
	if err != nil {
		c.WithField("err", err).Error("coreContract.ProjectIdToArtistAddress failed")
		return err
	}
	if !artist.Equals(sender) {
		return domain.ErrNotArtist
	}

	// ETH-priced projects leave the currency unconfigured instead of storing
	// the native sentinel
	if currencyAddress.IsEmpty() {
		return domain.ErrInvalidCurrency
	}

	symbol, err := u.erc20Contract.Symbol(c, currencyAddress)
	if err != nil {
		c.WithField("err", err).Error("erc20Contract.Symbol failed")
		return err
	}
	if symbol != currencySymbol {
		c.WithFields(log.Fields{
			"project":  key.String(),
			"declared": currencySymbol,
			"onchain":  symbol,
		}).Warn("declared currency symbol does not match token")
		return domain.ErrInvalidCurrency
	}

	if err := u.currencyRepo.Upsert(c, &splitter.ProjectCurrency{
		ProjectKey:      key,
		CurrencyAddress: currencyAddress,
		CurrencySymbol:  currencySymbol,
	}); err != nil {
		c.WithField("err", err).Error("currencyRepo.Upsert failed")
		return err
	}

	c.WithFields(log.Fields{
		"project":  key.String(),
		"currency": currencyAddress,
		"symbol":   currencySymbol,
	}).Info("project currency updated")
	return nil
}

func (u *splitterUseCase) GetProjectCurrency(c bCtx.Ctx, key domain.ProjectKey) (*splitter.ProjectCurrency, error) {
	currency, err := u.currencyRepo.FindOne(c, key)
	if err != nil && err != domain.ErrNotFound {
		c.WithField("err", err).Error("currencyRepo.FindOne failed")
	}
	return currency, err
}
