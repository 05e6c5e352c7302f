package usecase

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/core"
	coreMocks "github.com/archetype-labs/minter-suite/domain/core/mocks"
	"github.com/archetype-labs/minter-suite/domain/splitter"
	splitterMocks "github.com/archetype-labs/minter-suite/domain/splitter/mocks"
	walletMocks "github.com/archetype-labs/minter-suite/domain/wallet/mocks"
	contractMocks "github.com/archetype-labs/minter-suite/service/chain/contract/mocks"
)

var (
	testCore     = domain.Address("0x1111111111111111111111111111111111111111")
	testArtist   = domain.Address("0x2222222222222222222222222222222222222222")
	testPayee    = domain.Address("0x3333333333333333333333333333333333333333")
	testProvider = domain.Address("0x4444444444444444444444444444444444444444")
	testPayer    = domain.Address("0x5555555555555555555555555555555555555555")
	testToken    = domain.Address("0x6666666666666666666666666666666666666666")
)

type splitterUseCaseMocks struct {
	engineCacheRepo *splitterMocks.EngineCacheRepo
	currencyRepo    *splitterMocks.CurrencyRepo
	coreContract    *coreMocks.Contract
	erc20Contract   *contractMocks.Erc20Contract
	walletRepo      *walletMocks.Repo
}

func newSplitterUseCase(t *testing.T) (splitter.UseCase, *splitterUseCaseMocks) {
	m := &splitterUseCaseMocks{
		engineCacheRepo: splitterMocks.NewEngineCacheRepo(t),
		currencyRepo:    splitterMocks.NewCurrencyRepo(t),
		coreContract:    coreMocks.NewContract(t),
		erc20Contract:   contractMocks.NewErc20Contract(t),
		walletRepo:      walletMocks.NewRepo(t),
	}
	uc := NewSplitterUseCase(&SplitterUseCaseCfg{
		EngineCacheRepo: m.engineCacheRepo,
		CurrencyRepo:    m.currencyRepo,
		CoreContract:    m.coreContract,
		Erc20Contract:   m.erc20Contract,
		WalletRepo:      m.walletRepo,
	})
	return uc, m
}

func wei(n int64) *big.Int {
	return big.NewInt(n)
}

func flagshipSplits(price int64) *core.RevenueSplits {
	return &core.RevenueSplits{
		RenderProviderRevenue:  wei(price / 10),
		RenderProviderAddress:  testProvider,
		ArtistRevenue:          wei(price - price/10 - price/20),
		ArtistAddress:          testArtist,
		AdditionalPayeeRevenue: wei(price / 20),
		AdditionalPayeeAddress: testPayee,
	}
}

func TestIsEngine(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	t.Run("probes return shape and caches the answer", func(t *testing.T) {
		uc, m := newSplitterUseCase(t)
		m.engineCacheRepo.On("FindOne", mock.Anything, testCore).Return(nil, domain.ErrNotFound)
		m.coreContract.On("StartingProjectId", mock.Anything, testCore).Return(domain.ProjectId(0), nil)
		m.coreContract.On("PrimaryRevenueSplitsRaw", mock.Anything, testCore, domain.ProjectId(0), mock.Anything).
			Return(make([]byte, 8*32), nil)
		m.engineCacheRepo.On("Create", mock.Anything, mock.MatchedBy(func(cache *splitter.EngineCache) bool {
			return cache.CoreContract.Equals(testCore) && cache.IsEngine
		})).Return(nil)

		isEngine, err := uc.IsEngine(c, testCore)
		req.NoError(err)
		req.True(isEngine)
	})

	t.Run("six words means flagship", func(t *testing.T) {
		uc, m := newSplitterUseCase(t)
		m.engineCacheRepo.On("FindOne", mock.Anything, testCore).Return(nil, domain.ErrNotFound)
		m.coreContract.On("StartingProjectId", mock.Anything, testCore).Return(domain.ProjectId(0), nil)
		m.coreContract.On("PrimaryRevenueSplitsRaw", mock.Anything, testCore, domain.ProjectId(0), mock.Anything).
			Return(make([]byte, 6*32), nil)
		m.engineCacheRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		isEngine, err := uc.IsEngine(c, testCore)
		req.NoError(err)
		req.False(isEngine)
	})

	t.Run("any other shape is rejected", func(t *testing.T) {
		uc, m := newSplitterUseCase(t)
		m.engineCacheRepo.On("FindOne", mock.Anything, testCore).Return(nil, domain.ErrNotFound)
		m.coreContract.On("StartingProjectId", mock.Anything, testCore).Return(domain.ProjectId(0), nil)
		m.coreContract.On("PrimaryRevenueSplitsRaw", mock.Anything, testCore, domain.ProjectId(0), mock.Anything).
			Return(make([]byte, 7*32), nil)

		_, err := uc.IsEngine(c, testCore)
		req.ErrorIs(err, domain.ErrUnexpectedSplitShape)
	})

	t.Run("cached answer skips the probe", func(t *testing.T) {
		uc, m := newSplitterUseCase(t)
		m.engineCacheRepo.On("FindOne", mock.Anything, testCore).Return(&splitter.EngineCache{
			CoreContract: testCore,
			IsEngine:     true,
		}, nil)

		isEngine, err := uc.IsEngine(c, testCore)
		req.NoError(err)
		req.True(isEngine)
	})
}

func TestSplitFundsETH(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	key := domain.NewProjectKey(testCore, 3)

	prime := func(m *splitterUseCaseMocks, splits *core.RevenueSplits, price int64) {
		m.engineCacheRepo.On("FindOne", mock.Anything, key.CoreContract).Return(&splitter.EngineCache{
			CoreContract: key.CoreContract,
			IsEngine:     false,
		}, nil)
		m.coreContract.On("PrimaryRevenueSplits", mock.Anything, key.CoreContract, key.ProjectId, wei(price), false).
			Return(splits, nil)
	}

	t.Run("refund first then legs with artist last", func(t *testing.T) {
		uc, m := newSplitterUseCase(t)
		prime(m, flagshipSplits(1000), 1000)
		m.walletRepo.On("Debit", mock.Anything, testPayer, domain.NativeCurrencyAddress, wei(1200)).Return(nil)
		m.walletRepo.On("Credit", mock.Anything, testPayer, domain.NativeCurrencyAddress, wei(200)).Return(nil)
		m.walletRepo.On("Credit", mock.Anything, testProvider, domain.NativeCurrencyAddress, wei(100)).Return(nil)
		m.walletRepo.On("Credit", mock.Anything, testPayee, domain.NativeCurrencyAddress, wei(50)).Return(nil)
		m.walletRepo.On("Credit", mock.Anything, testArtist, domain.NativeCurrencyAddress, wei(850)).Return(nil)

		executed, err := uc.SplitFundsETH(c, key, wei(1000), wei(1200), testPayer)
		req.NoError(err)
		req.Len(executed, 4)
		req.Equal("refund", executed[0].Role)
		req.Equal("artist", executed[len(executed)-1].Role)
	})

	t.Run("sent value below price fails before any ledger touch", func(t *testing.T) {
		uc, _ := newSplitterUseCase(t)
		_, err := uc.SplitFundsETH(c, key, wei(1000), wei(999), testPayer)
		req.ErrorIs(err, domain.ErrInsufficientFunds)
	})

	t.Run("splits that do not cover the price are rejected", func(t *testing.T) {
		uc, m := newSplitterUseCase(t)
		bad := flagshipSplits(1000)
		bad.ArtistRevenue = wei(1)
		prime(m, bad, 1000)

		_, err := uc.SplitFundsETH(c, key, wei(1000), wei(1000), testPayer)
		req.ErrorIs(err, domain.ErrSplitsDoNotSumToPrice)
	})

	t.Run("failed leg unwinds the whole split", func(t *testing.T) {
		uc, m := newSplitterUseCase(t)
		prime(m, flagshipSplits(1000), 1000)
		legErr := xerrors.New("ledger write failed")

		m.walletRepo.On("Debit", mock.Anything, testPayer, domain.NativeCurrencyAddress, wei(1000)).Return(nil).Once()
		m.walletRepo.On("Credit", mock.Anything, testProvider, domain.NativeCurrencyAddress, wei(100)).Return(nil).Once()
		m.walletRepo.On("Credit", mock.Anything, testPayee, domain.NativeCurrencyAddress, wei(50)).Return(legErr).Once()
		// the provider leg is clawed back and the payer restored in full
		m.walletRepo.On("Debit", mock.Anything, testProvider, domain.NativeCurrencyAddress, wei(100)).Return(nil).Once()
		m.walletRepo.On("Credit", mock.Anything, testPayer, domain.NativeCurrencyAddress, wei(1000)).Return(nil).Once()

		_, err := uc.SplitFundsETH(c, key, wei(1000), wei(1000), testPayer)
		req.ErrorIs(err, legErr)
	})

	t.Run("unreversible leg stays with its recipient", func(t *testing.T) {
		uc, m := newSplitterUseCase(t)
		prime(m, flagshipSplits(1000), 1000)
		legErr := xerrors.New("ledger write failed")

		m.walletRepo.On("Debit", mock.Anything, testPayer, domain.NativeCurrencyAddress, wei(1000)).Return(nil).Once()
		m.walletRepo.On("Credit", mock.Anything, testProvider, domain.NativeCurrencyAddress, wei(100)).Return(nil).Once()
		m.walletRepo.On("Credit", mock.Anything, testPayee, domain.NativeCurrencyAddress, wei(50)).Return(legErr).Once()
		// the provider already spent the leg; only the undistributed amount
		// comes back, never freshly minted funds
		m.walletRepo.On("Debit", mock.Anything, testProvider, domain.NativeCurrencyAddress, wei(100)).
			Return(domain.ErrInsufficientFunds).Once()
		m.walletRepo.On("Credit", mock.Anything, testPayer, domain.NativeCurrencyAddress, wei(900)).Return(nil).Once()

		_, err := uc.SplitFundsETH(c, key, wei(1000), wei(1000), testPayer)
		req.ErrorIs(err, legErr)
	})

	t.Run("uncovered escrow debit fails the purchase", func(t *testing.T) {
		uc, m := newSplitterUseCase(t)
		prime(m, flagshipSplits(1000), 1000)
		m.walletRepo.On("Debit", mock.Anything, testPayer, domain.NativeCurrencyAddress, wei(1000)).
			Return(domain.ErrInsufficientFunds)

		_, err := uc.SplitFundsETH(c, key, wei(1000), wei(1000), testPayer)
		req.ErrorIs(err, domain.ErrInsufficientFunds)
	})
}

func TestSplitFundsERC20(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	key := domain.NewProjectKey(testCore, 3)

	primeCurrency := func(m *splitterUseCaseMocks) {
		m.currencyRepo.On("FindOne", mock.Anything, key).Return(&splitter.ProjectCurrency{
			ProjectKey:      key,
			CurrencyAddress: testToken,
			CurrencySymbol:  "USDC",
		}, nil)
	}

	t.Run("pulls every leg from the payer", func(t *testing.T) {
		uc, m := newSplitterUseCase(t)
		primeCurrency(m)
		m.engineCacheRepo.On("FindOne", mock.Anything, key.CoreContract).Return(&splitter.EngineCache{
			CoreContract: key.CoreContract,
			IsEngine:     false,
		}, nil)
		m.coreContract.On("PrimaryRevenueSplits", mock.Anything, key.CoreContract, key.ProjectId, wei(1000), false).
			Return(flagshipSplits(1000), nil)
		m.erc20Contract.On("BalanceOf", mock.Anything, testToken, testPayer).Return(wei(5000), nil)
		m.erc20Contract.On("Allowance", mock.Anything, testToken, testPayer).Return(wei(5000), nil)
		m.erc20Contract.On("TransferFrom", mock.Anything, testToken, testPayer, testProvider, wei(100)).Return(nil)
		m.erc20Contract.On("TransferFrom", mock.Anything, testToken, testPayer, testPayee, wei(50)).Return(nil)
		m.erc20Contract.On("TransferFrom", mock.Anything, testToken, testPayer, testArtist, wei(850)).Return(nil)

		executed, err := uc.SplitFundsERC20(c, key, wei(1000), testPayer)
		req.NoError(err)
		req.Len(executed, 3)
	})

	t.Run("unconfigured currency is rejected", func(t *testing.T) {
		uc, m := newSplitterUseCase(t)
		m.currencyRepo.On("FindOne", mock.Anything, key).Return(nil, domain.ErrNotFound)

		_, err := uc.SplitFundsERC20(c, key, wei(1000), testPayer)
		req.ErrorIs(err, domain.ErrCurrencyNotConfigured)
	})

	t.Run("insufficient allowance fails before any pull", func(t *testing.T) {
		uc, m := newSplitterUseCase(t)
		primeCurrency(m)
		m.engineCacheRepo.On("FindOne", mock.Anything, key.CoreContract).Return(&splitter.EngineCache{
			CoreContract: key.CoreContract,
			IsEngine:     false,
		}, nil)
		m.coreContract.On("PrimaryRevenueSplits", mock.Anything, key.CoreContract, key.ProjectId, wei(1000), false).
			Return(flagshipSplits(1000), nil)
		m.erc20Contract.On("BalanceOf", mock.Anything, testToken, testPayer).Return(wei(5000), nil)
		m.erc20Contract.On("Allowance", mock.Anything, testToken, testPayer).Return(wei(999), nil)

		_, err := uc.SplitFundsERC20(c, key, wei(1000), testPayer)
		req.ErrorIs(err, domain.ErrInsufficientFunds)
	})
}

func TestUpdateProjectCurrencyInfo(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	key := domain.NewProjectKey(testCore, 3)

	t.Run("artist configures a verified token", func(t *testing.T) {
		uc, m := newSplitterUseCase(t)
		m.coreContract.On("ProjectIdToArtistAddress", mock.Anything, key.CoreContract, key.ProjectId).Return(testArtist, nil)
		m.erc20Contract.On("Symbol", mock.Anything, testToken).Return("USDC", nil)
		m.currencyRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(cur *splitter.ProjectCurrency) bool {
			return cur.CurrencyAddress.Equals(testToken) && cur.CurrencySymbol == "USDC"
		})).Return(nil)

		req.NoError(uc.UpdateProjectCurrencyInfo(c, testArtist, key, testToken, "USDC"))
	})

	t.Run("only the artist may configure", func(t *testing.T) {
		uc, m := newSplitterUseCase(t)
		m.coreContract.On("ProjectIdToArtistAddress", mock.Anything, key.CoreContract, key.ProjectId).Return(testArtist, nil)

		err := uc.UpdateProjectCurrencyInfo(c, testPayer, key, testToken, "USDC")
		req.ErrorIs(err, domain.ErrNotArtist)
	})

	t.Run("native sentinel is not a currency", func(t *testing.T) {
		uc, m := newSplitterUseCase(t)
		m.coreContract.On("ProjectIdToArtistAddress", mock.Anything, key.CoreContract, key.ProjectId).Return(testArtist, nil)

		err := uc.UpdateProjectCurrencyInfo(c, testArtist, key, domain.NativeCurrencyAddress, "ETH")
		req.ErrorIs(err, domain.ErrInvalidCurrency)
	})

	t.Run("declared symbol must match the token", func(t *testing.T) {
		uc, m := newSplitterUseCase(t)
		m.coreContract.On("ProjectIdToArtistAddress", mock.Anything, key.CoreContract, key.ProjectId).Return(testArtist, nil)
		m.erc20Contract.On("Symbol", mock.Anything, testToken).Return("DAI", nil)

		err := uc.UpdateProjectCurrencyInfo(c, testArtist, key, testToken, "USDC")
		req.ErrorIs(err, domain.ErrInvalidCurrency)
	})
}
