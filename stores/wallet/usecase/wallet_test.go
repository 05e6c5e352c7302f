package usecase

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/wallet"
	walletMocks "github.com/archetype-labs/minter-suite/domain/wallet/mocks"
)

var (
	testOwner = domain.Address("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	testPeer  = domain.Address("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
)

func TestBalanceOfMissingRowIsZero(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	repo := walletMocks.NewRepo(t)
	repo.On("FindOne", mock.Anything, testOwner, domain.NativeCurrencyAddress).
		Return(nil, domain.ErrNotFound).Once()

	uc := NewWalletUseCase(&WalletUseCaseCfg{Repo: repo})

	balance, err := uc.BalanceOf(c, testOwner, domain.NativeCurrencyAddress)
	req.NoError(err)
	req.Zero(balance.Sign())
}

func TestBalanceOfParsesStoredAmount(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	repo := walletMocks.NewRepo(t)
	repo.On("FindOne", mock.Anything, testOwner, domain.NativeCurrencyAddress).
		Return(&wallet.Balance{
			Owner:    testOwner,
			Currency: domain.NativeCurrencyAddress,
			Amount:   "1500",
		}, nil).Once()

	uc := NewWalletUseCase(&WalletUseCaseCfg{Repo: repo})

	balance, err := uc.BalanceOf(c, testOwner, domain.NativeCurrencyAddress)
	req.NoError(err)
	req.Equal(big.NewInt(1500), balance)
}

func TestDepositRejectsNonPositiveAmount(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	uc := NewWalletUseCase(&WalletUseCaseCfg{Repo: walletMocks.NewRepo(t)})

	req.ErrorIs(uc.Deposit(c, testOwner, domain.NativeCurrencyAddress, nil), domain.ErrBadParamInput)
	req.ErrorIs(uc.Deposit(c, testOwner, domain.NativeCurrencyAddress, big.NewInt(0)), domain.ErrBadParamInput)
	req.ErrorIs(uc.Deposit(c, testOwner, domain.NativeCurrencyAddress, big.NewInt(-5)), domain.ErrBadParamInput)
}

func TestTransferDebitsBeforeCrediting(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	amount := big.NewInt(1000)

	repo := walletMocks.NewRepo(t)
	debited := false
	repo.On("Debit", mock.Anything, testOwner, domain.NativeCurrencyAddress, amount).
		Run(func(args mock.Arguments) { debited = true }).Return(nil).Once()
	repo.On("Credit", mock.Anything, testPeer, domain.NativeCurrencyAddress, amount).
		Run(func(args mock.Arguments) { req.True(debited) }).Return(nil).Once()

	uc := NewWalletUseCase(&WalletUseCaseCfg{Repo: repo})

	req.NoError(uc.Transfer(c, testOwner, testPeer, domain.NativeCurrencyAddress, amount))
}

func TestTransferStopsOnInsufficientFunds(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	amount := big.NewInt(1000)

	repo := walletMocks.NewRepo(t)
	repo.On("Debit", mock.Anything, testOwner, domain.NativeCurrencyAddress, amount).
		Return(domain.ErrInsufficientFunds).Once()

	uc := NewWalletUseCase(&WalletUseCaseCfg{Repo: repo})

	err := uc.Transfer(c, testOwner, testPeer, domain.NativeCurrencyAddress, amount)
	req.ErrorIs(err, domain.ErrInsufficientFunds)
}
