package usecase

import (
	"math/big"

	bCtx "github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/log"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/wallet"
)

type WalletUseCaseCfg struct {
	Repo wallet.Repo
}

type walletUseCase struct {
	repo wallet.Repo
}

func NewWalletUseCase(cfg *WalletUseCaseCfg) wallet.Service {
	return &walletUseCase{
		repo: cfg.Repo,
	}
}

func (u *walletUseCase) BalanceOf(c bCtx.Ctx, owner, currency domain.Address) (*big.Int, error) {
	balance, err := u.repo.FindOne(c, owner, currency)
	if err == domain.ErrNotFound {
		return big.NewInt(0), nil
	} else if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	}
	return balance.AmountWei()
}

func (u *walletUseCase) Deposit(c bCtx.Ctx, owner, currency domain.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return domain.ErrBadParamInput
	}

	if err := u.repo.Credit(c, owner, currency, amount); err != nil {
		c.WithField("err", err).Error("repo.Credit failed")
		return err
	}

	c.WithFields(log.Fields{
		"owner":  owner,
		"amount": amount.String(),
	}).Info("escrow deposit")
	return nil
}

func (u *walletUseCase) Withdraw(c bCtx.Ctx, owner, currency domain.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return domain.ErrBadParamInput
	}

	if err := u.repo.Debit(c, owner, currency, amount); err != nil {
		if err != domain.ErrInsufficientFunds {
			c.WithField("err", err).Error("repo.Debit failed")
		}
		return err
	}

	c.WithFields(log.Fields{
		"owner":  owner,
		"amount": amount.String(),
	}).Info("escrow withdrawal")
	return nil
}

func (u *walletUseCase) Transfer(c bCtx.Ctx, from, to, currency domain.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return domain.ErrBadParamInput
	}

	// debit first: the floor guard makes the debit the only leg that can
	// fail for funds reasons
	if err := u.repo.Debit(c, from, currency, amount); err != nil {
		if err != domain.ErrInsufficientFunds {
			c.WithField("err", err).Error("repo.Debit failed")
		}
		return err
	}
	if err := u.repo.Credit(c, to, currency, amount); err != nil {
		c.WithField("err", err).Error("repo.Credit failed")
		return err
	}

	return nil
}
