package usecase

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/guard"
	"github.com/archetype-labs/minter-suite/domain"
	allowlistMocks "github.com/archetype-labs/minter-suite/domain/allowlist/mocks"
	"github.com/archetype-labs/minter-suite/domain/auction"
	auctionMocks "github.com/archetype-labs/minter-suite/domain/auction/mocks"
	"github.com/archetype-labs/minter-suite/domain/core"
	coreMocks "github.com/archetype-labs/minter-suite/domain/core/mocks"
	"github.com/archetype-labs/minter-suite/domain/invocations"
	invocationsMocks "github.com/archetype-labs/minter-suite/domain/invocations/mocks"
	"github.com/archetype-labs/minter-suite/domain/minter"
	minterMocks "github.com/archetype-labs/minter-suite/domain/minter/mocks"
	registryMocks "github.com/archetype-labs/minter-suite/domain/registry/mocks"
	"github.com/archetype-labs/minter-suite/domain/splitter"
	splitterMocks "github.com/archetype-labs/minter-suite/domain/splitter/mocks"
	walletMocks "github.com/archetype-labs/minter-suite/domain/wallet/mocks"
)

var (
	testCore       = domain.Address("0x1111111111111111111111111111111111111111")
	testArtist     = domain.Address("0x2222222222222222222222222222222222222222")
	testBuyer      = domain.Address("0x3333333333333333333333333333333333333333")
	testRecipient  = domain.Address("0x4444444444444444444444444444444444444444")
	testMinterAddr = domain.Address("0x5555555555555555555555555555555555555555")
	testOwnedNFT   = domain.Address("0x6666666666666666666666666666666666666666")
	testVault      = domain.Address("0x7777777777777777777777777777777777777777")
)

func milliEth(m int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(m), big.NewInt(1e15))
}

type baseMocks struct {
	coreContract  *coreMocks.Contract
	registryUC    *registryMocks.UseCase
	invocationsUC *invocationsMocks.UseCase
	splitterUC    *splitterMocks.UseCase
	walletUC      *walletMocks.Service
	guard         *guard.Guard
}

func newBaseCfg(t *testing.T) (*MinterBaseCfg, *baseMocks) {
	m := &baseMocks{
		coreContract:  coreMocks.NewContract(t),
		registryUC:    registryMocks.NewUseCase(t),
		invocationsUC: invocationsMocks.NewUseCase(t),
		splitterUC:    splitterMocks.NewUseCase(t),
		walletUC:      walletMocks.NewService(t),
		guard:         guard.New(),
	}
	cfg := &MinterBaseCfg{
		Address:            testMinterAddr,
		Guard:              m.guard,
		CoreContract:       m.coreContract,
		RegistryUseCase:    m.registryUC,
		InvocationsUseCase: m.invocationsUC,
		SplitterUseCase:    m.splitterUC,
		WalletUseCase:      m.walletUC,
	}
	return cfg, m
}

// primePipeline arms the mocks for one successful mint of tokenId.
func primePipeline(m *baseMocks, key domain.ProjectKey, to domain.Address, tokenId domain.TokenId) {
	m.invocationsUC.On("RequireNotMaxed", mock.Anything, key).Return(&invocations.State{}, nil)
	m.registryUC.On("Mint", mock.Anything, testMinterAddr, to, testBuyer, key).Return(tokenId, nil)
	m.invocationsUC.On("ValidatePurchaseEffectsInvocations", mock.Anything, key, tokenId).Return(&invocations.State{}, nil)
}

// primeEscrow arms the escrow coverage read for an ETH purchase.
func primeEscrow(m *baseMocks, balance *big.Int) {
	m.walletUC.On("BalanceOf", mock.Anything, testBuyer, domain.NativeCurrencyAddress).Return(balance, nil)
}

func TestSetPriceMinterPurchase(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	key := domain.NewProjectKey(testCore, 3)

	t.Run("mints and splits the funds last", func(t *testing.T) {
		cfg, m := newBaseCfg(t)
		priceRepo := minterMocks.NewFixedPriceRepo(t)
		uc := NewSetPriceMinter(cfg, priceRepo)

		priceRepo.On("FindOne", mock.Anything, key).Return(&minter.FixedPrice{
			ProjectKey:         key,
			PricePerTokenInWei: domain.FormatWei(milliEth(100)),
		}, nil)
		primePipeline(m, key, testBuyer, domain.TokenId(3000007))
		primeEscrow(m, milliEth(150))
		m.splitterUC.On("SplitFundsETH", mock.Anything, key, milliEth(100), milliEth(150), testBuyer).
			Return([]splitter.Split{}, nil)

		tokenId, err := uc.Purchase(c, minter.PurchaseParams{
			Key:       key,
			Purchaser: testBuyer,
			SentValue: milliEth(150),
		})
		req.NoError(err)
		req.Equal(domain.TokenId(3000007), tokenId)
	})

	t.Run("purchaseTo mints to the named recipient", func(t *testing.T) {
		cfg, m := newBaseCfg(t)
		priceRepo := minterMocks.NewFixedPriceRepo(t)
		uc := NewSetPriceMinter(cfg, priceRepo)

		priceRepo.On("FindOne", mock.Anything, key).Return(&minter.FixedPrice{
			ProjectKey:         key,
			PricePerTokenInWei: domain.FormatWei(milliEth(100)),
		}, nil)
		primePipeline(m, key, testRecipient, domain.TokenId(3000007))
		primeEscrow(m, milliEth(100))
		m.splitterUC.On("SplitFundsETH", mock.Anything, key, milliEth(100), milliEth(100), testBuyer).
			Return([]splitter.Split{}, nil)

		_, err := uc.PurchaseTo(c, minter.PurchaseParams{
			Key:       key,
			Purchaser: testBuyer,
			To:        testRecipient,
			SentValue: milliEth(100),
		})
		req.NoError(err)
	})

	t.Run("unconfigured price blocks purchase", func(t *testing.T) {
		cfg, _ := newBaseCfg(t)
		priceRepo := minterMocks.NewFixedPriceRepo(t)
		uc := NewSetPriceMinter(cfg, priceRepo)

		priceRepo.On("FindOne", mock.Anything, key).Return(nil, domain.ErrNotFound)

		_, err := uc.Purchase(c, minter.PurchaseParams{Key: key, Purchaser: testBuyer, SentValue: milliEth(100)})
		req.ErrorIs(err, domain.ErrPriceNotConfigured)
	})

	t.Run("sent value below price fails before minting", func(t *testing.T) {
		cfg, m := newBaseCfg(t)
		priceRepo := minterMocks.NewFixedPriceRepo(t)
		uc := NewSetPriceMinter(cfg, priceRepo)

		priceRepo.On("FindOne", mock.Anything, key).Return(&minter.FixedPrice{
			ProjectKey:         key,
			PricePerTokenInWei: domain.FormatWei(milliEth(100)),
		}, nil)
		m.invocationsUC.On("RequireNotMaxed", mock.Anything, key).Return(&invocations.State{}, nil)

		_, err := uc.Purchase(c, minter.PurchaseParams{Key: key, Purchaser: testBuyer, SentValue: milliEth(99)})
		req.ErrorIs(err, domain.ErrInsufficientFunds)
	})

	t.Run("uncovered escrow fails before minting", func(t *testing.T) {
		cfg, m := newBaseCfg(t)
		priceRepo := minterMocks.NewFixedPriceRepo(t)
		uc := NewSetPriceMinter(cfg, priceRepo)

		priceRepo.On("FindOne", mock.Anything, key).Return(&minter.FixedPrice{
			ProjectKey:         key,
			PricePerTokenInWei: domain.FormatWei(milliEth(100)),
		}, nil)
		m.invocationsUC.On("RequireNotMaxed", mock.Anything, key).Return(&invocations.State{}, nil)
		primeEscrow(m, milliEth(50))

		// no Mint expectation: the pipeline must stop at the balance check
		_, err := uc.Purchase(c, minter.PurchaseParams{Key: key, Purchaser: testBuyer, SentValue: milliEth(100)})
		req.ErrorIs(err, domain.ErrInsufficientFunds)
	})

	t.Run("maxed project blocks purchase", func(t *testing.T) {
		cfg, m := newBaseCfg(t)
		priceRepo := minterMocks.NewFixedPriceRepo(t)
		uc := NewSetPriceMinter(cfg, priceRepo)

		priceRepo.On("FindOne", mock.Anything, key).Return(&minter.FixedPrice{
			ProjectKey:         key,
			PricePerTokenInWei: domain.FormatWei(milliEth(100)),
		}, nil)
		m.invocationsUC.On("RequireNotMaxed", mock.Anything, key).Return(nil, domain.ErrMaxInvocationsReached)

		_, err := uc.Purchase(c, minter.PurchaseParams{Key: key, Purchaser: testBuyer, SentValue: milliEth(100)})
		req.ErrorIs(err, domain.ErrMaxInvocationsReached)
	})

	t.Run("reentrant purchase on the same project fails", func(t *testing.T) {
		cfg, _ := newBaseCfg(t)
		priceRepo := minterMocks.NewFixedPriceRepo(t)
		uc := NewSetPriceMinter(cfg, priceRepo)

		priceRepo.On("FindOne", mock.Anything, key).Return(&minter.FixedPrice{
			ProjectKey:         key,
			PricePerTokenInWei: domain.FormatWei(milliEth(100)),
		}, nil)

		req.NoError(cfg.Guard.Enter(key.String()))
		defer cfg.Guard.Exit(key.String())

		_, err := uc.Purchase(c, minter.PurchaseParams{Key: key, Purchaser: testBuyer, SentValue: milliEth(100)})
		req.ErrorIs(err, guard.ErrReentrantCall)
	})
}

func TestSetPriceMinterUpdatePrice(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	key := domain.NewProjectKey(testCore, 3)

	cfg, m := newBaseCfg(t)
	priceRepo := minterMocks.NewFixedPriceRepo(t)
	uc := NewSetPriceMinter(cfg, priceRepo)

	m.coreContract.On("ProjectIdToArtistAddress", mock.Anything, key.CoreContract, key.ProjectId).Return(testArtist, nil)
	m.invocationsUC.On("EnsureSynced", mock.Anything, key).Return(&invocations.State{}, nil)
	priceRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *minter.FixedPrice) bool {
		return p.PricePerTokenInWei == domain.FormatWei(milliEth(100))
	})).Return(nil)

	req.NoError(uc.UpdatePricePerTokenInWei(c, testArtist, key, milliEth(100)))

	err := uc.UpdatePricePerTokenInWei(c, testBuyer, key, milliEth(100))
	req.ErrorIs(err, domain.ErrNotArtist)
}

func TestSetPriceERC20MinterPurchase(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	key := domain.NewProjectKey(testCore, 3)

	cfg, m := newBaseCfg(t)
	priceRepo := minterMocks.NewFixedPriceRepo(t)
	uc := NewSetPriceERC20Minter(cfg, priceRepo)

	priceRepo.On("FindOne", mock.Anything, key).Return(&minter.FixedPrice{
		ProjectKey:         key,
		PricePerTokenInWei: domain.FormatWei(milliEth(100)),
	}, nil)
	primePipeline(m, key, testBuyer, domain.TokenId(3000007))
	m.splitterUC.On("SplitFundsERC20", mock.Anything, key, milliEth(100), testBuyer).
		Return([]splitter.Split{}, nil)

	// no sent value: payment is pulled in the configured ERC-20
	tokenId, err := uc.Purchase(c, minter.PurchaseParams{Key: key, Purchaser: testBuyer})
	req.NoError(err)
	req.Equal(domain.TokenId(3000007), tokenId)
}

func TestDALinMinterPurchase(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	key := domain.NewProjectKey(testCore, 3)

	t.Run("price comes from the live auction", func(t *testing.T) {
		cfg, m := newBaseCfg(t)
		auctionUC := auctionMocks.NewLinearUseCase(t)
		uc := NewDALinMinter(cfg, auctionUC)

		auctionUC.On("GetPurchasePrice", mock.Anything, key, mock.Anything).Return(milliEth(550), nil)
		primePipeline(m, key, testBuyer, domain.TokenId(3000001))
		primeEscrow(m, milliEth(1000))
		m.splitterUC.On("SplitFundsETH", mock.Anything, key, milliEth(550), milliEth(1000), testBuyer).
			Return([]splitter.Split{}, nil)

		_, err := uc.Purchase(c, minter.PurchaseParams{Key: key, Purchaser: testBuyer, SentValue: milliEth(1000)})
		req.NoError(err)
	})

	t.Run("purchase before start hard-fails", func(t *testing.T) {
		cfg, _ := newBaseCfg(t)
		auctionUC := auctionMocks.NewLinearUseCase(t)
		uc := NewDALinMinter(cfg, auctionUC)

		auctionUC.On("GetPurchasePrice", mock.Anything, key, mock.Anything).Return(nil, domain.ErrAuctionNotStarted)

		_, err := uc.Purchase(c, minter.PurchaseParams{Key: key, Purchaser: testBuyer, SentValue: milliEth(1000)})
		req.ErrorIs(err, domain.ErrAuctionNotStarted)
	})

	t.Run("price info before start soft-reads the start price", func(t *testing.T) {
		cfg, _ := newBaseCfg(t)
		auctionUC := auctionMocks.NewLinearUseCase(t)
		uc := NewDALinMinter(cfg, auctionUC)

		// auction starts far in the future; PriceAt clamps to start price
		auctionUC.On("GetAuction", mock.Anything, key).Return(&auction.LinearAuction{
			ProjectKey:     key,
			TimestampStart: 1 << 62,
			TimestampEnd:   1<<62 + 7200,
			StartPrice:     domain.FormatWei(milliEth(1000)),
			BasePrice:      domain.FormatWei(milliEth(100)),
		}, nil)

		info, err := uc.GetPriceInfo(c, key)
		req.NoError(err)
		req.True(info.IsConfigured)
		req.Equal(domain.FormatWei(milliEth(1000)), info.PriceWei)
		req.Equal("ETH", info.CurrencySymbol)
	})

	t.Run("unconfigured auction reports unconfigured", func(t *testing.T) {
		cfg, _ := newBaseCfg(t)
		auctionUC := auctionMocks.NewLinearUseCase(t)
		uc := NewDALinMinter(cfg, auctionUC)

		auctionUC.On("GetAuction", mock.Anything, key).Return(nil, domain.ErrAuctionNotConfigured)

		info, err := uc.GetPriceInfo(c, key)
		req.NoError(err)
		req.False(info.IsConfigured)
	})
}

func TestDAExpMinterPurchase(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	key := domain.NewProjectKey(testCore, 3)

	cfg, m := newBaseCfg(t)
	auctionUC := auctionMocks.NewExponentialUseCase(t)
	uc := NewDAExpMinter(cfg, auctionUC)

	auctionUC.On("GetPurchasePrice", mock.Anything, key, mock.Anything).Return(milliEth(325), nil)
	primePipeline(m, key, testBuyer, domain.TokenId(3000001))
	primeEscrow(m, milliEth(500))
	m.splitterUC.On("SplitFundsETH", mock.Anything, key, milliEth(325), milliEth(500), testBuyer).
		Return([]splitter.Split{}, nil)

	_, err := uc.Purchase(c, minter.PurchaseParams{Key: key, Purchaser: testBuyer, SentValue: milliEth(500)})
	req.NoError(err)
}

func holderParams(key domain.ProjectKey) minter.PurchaseParams {
	return minter.PurchaseParams{
		Key:             key,
		Purchaser:       testBuyer,
		SentValue:       milliEth(100),
		OwnedNFTAddress: testOwnedNFT,
		OwnedNFTTokenId: domain.TokenId(5000042),
	}
}

func TestHolderMinterPurchase(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	key := domain.NewProjectKey(testCore, 3)

	primePrice := func(priceRepo *minterMocks.FixedPriceRepo) {
		priceRepo.On("FindOne", mock.Anything, key).Return(&minter.FixedPrice{
			ProjectKey:         key,
			PricePerTokenInWei: domain.FormatWei(milliEth(100)),
		}, nil)
	}

	t.Run("allowlisted holder mints", func(t *testing.T) {
		cfg, m := newBaseCfg(t)
		priceRepo := minterMocks.NewFixedPriceRepo(t)
		allowlistUC := allowlistMocks.NewUseCase(t)
		uc := NewHolderMinter(cfg, priceRepo, allowlistUC)

		primePrice(priceRepo)
		params := holderParams(key)
		allowlistUC.On("ResolvePrincipal", mock.Anything, testBuyer, domain.Address(""), testOwnedNFT, params.OwnedNFTTokenId).
			Return(testBuyer, nil)
		allowlistUC.On("IsAllowlistedNFT", mock.Anything, key, testOwnedNFT, params.OwnedNFTTokenId).Return(true, nil)
		allowlistUC.On("ValidateNFTOwnership", mock.Anything, testOwnedNFT, params.OwnedNFTTokenId, testBuyer).Return(nil)
		primePipeline(m, key, testBuyer, domain.TokenId(3000009))
		primeEscrow(m, milliEth(100))
		m.splitterUC.On("SplitFundsETH", mock.Anything, key, milliEth(100), milliEth(100), testBuyer).
			Return([]splitter.Split{}, nil)

		_, err := uc.Purchase(c, params)
		req.NoError(err)
	})

	t.Run("vault delegate mints as the vault", func(t *testing.T) {
		cfg, m := newBaseCfg(t)
		priceRepo := minterMocks.NewFixedPriceRepo(t)
		allowlistUC := allowlistMocks.NewUseCase(t)
		uc := NewHolderMinter(cfg, priceRepo, allowlistUC)

		primePrice(priceRepo)
		params := holderParams(key)
		params.Vault = testVault
		allowlistUC.On("ResolvePrincipal", mock.Anything, testBuyer, testVault, testOwnedNFT, params.OwnedNFTTokenId).
			Return(testVault, nil)
		allowlistUC.On("IsAllowlistedNFT", mock.Anything, key, testOwnedNFT, params.OwnedNFTTokenId).Return(true, nil)
		// ownership is validated against the vault, not the hot wallet
		allowlistUC.On("ValidateNFTOwnership", mock.Anything, testOwnedNFT, params.OwnedNFTTokenId, testVault).Return(nil)
		primePipeline(m, key, testBuyer, domain.TokenId(3000009))
		primeEscrow(m, milliEth(100))
		m.splitterUC.On("SplitFundsETH", mock.Anything, key, milliEth(100), milliEth(100), testBuyer).
			Return([]splitter.Split{}, nil)

		_, err := uc.Purchase(c, params)
		req.NoError(err)
	})

	t.Run("unlisted project rejected", func(t *testing.T) {
		cfg, m := newBaseCfg(t)
		priceRepo := minterMocks.NewFixedPriceRepo(t)
		allowlistUC := allowlistMocks.NewUseCase(t)
		uc := NewHolderMinter(cfg, priceRepo, allowlistUC)

		primePrice(priceRepo)
		params := holderParams(key)
		m.invocationsUC.On("RequireNotMaxed", mock.Anything, key).Return(&invocations.State{}, nil)
		allowlistUC.On("ResolvePrincipal", mock.Anything, testBuyer, domain.Address(""), testOwnedNFT, params.OwnedNFTTokenId).
			Return(testBuyer, nil)
		allowlistUC.On("IsAllowlistedNFT", mock.Anything, key, testOwnedNFT, params.OwnedNFTTokenId).Return(false, nil)

		_, err := uc.Purchase(c, params)
		req.ErrorIs(err, domain.ErrNotAllowlistedNFT)
	})

	t.Run("token owned by someone else rejected", func(t *testing.T) {
		cfg, m := newBaseCfg(t)
		priceRepo := minterMocks.NewFixedPriceRepo(t)
		allowlistUC := allowlistMocks.NewUseCase(t)
		uc := NewHolderMinter(cfg, priceRepo, allowlistUC)

		primePrice(priceRepo)
		params := holderParams(key)
		m.invocationsUC.On("RequireNotMaxed", mock.Anything, key).Return(&invocations.State{}, nil)
		allowlistUC.On("ResolvePrincipal", mock.Anything, testBuyer, domain.Address(""), testOwnedNFT, params.OwnedNFTTokenId).
			Return(testBuyer, nil)
		allowlistUC.On("IsAllowlistedNFT", mock.Anything, key, testOwnedNFT, params.OwnedNFTTokenId).Return(true, nil)
		allowlistUC.On("ValidateNFTOwnership", mock.Anything, testOwnedNFT, params.OwnedNFTTokenId, testBuyer).
			Return(domain.ErrNotTokenOwner)

		_, err := uc.Purchase(c, params)
		req.ErrorIs(err, domain.ErrNotTokenOwner)
	})
}

func TestPolyptychMinterPurchase(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	key := domain.NewProjectKey(testCore, 3)
	seed := core.HashSeed{0xde, 0xad, 0xbe, 0xef, 1, 2, 3, 4, 5, 6, 7, 8}
	seedHex := "0xdeadbeef0102030405060708"

	newUc := func(t *testing.T) (*PolyptychMinter, *baseMocks, *minterMocks.FixedPriceRepo, *allowlistMocks.UseCase, *minterMocks.PolyptychRepo) {
		cfg, m := newBaseCfg(t)
		priceRepo := minterMocks.NewFixedPriceRepo(t)
		allowlistUC := allowlistMocks.NewUseCase(t)
		polyptychRepo := minterMocks.NewPolyptychRepo(t)
		return NewPolyptychMinter(cfg, priceRepo, allowlistUC, polyptychRepo), m, priceRepo, allowlistUC, polyptychRepo
	}

	primeGate := func(priceRepo *minterMocks.FixedPriceRepo, allowlistUC *allowlistMocks.UseCase, params minter.PurchaseParams) {
		priceRepo.On("FindOne", mock.Anything, key).Return(&minter.FixedPrice{
			ProjectKey:         key,
			PricePerTokenInWei: domain.FormatWei(milliEth(100)),
		}, nil)
		allowlistUC.On("ResolvePrincipal", mock.Anything, testBuyer, domain.Address(""), testOwnedNFT, params.OwnedNFTTokenId).
			Return(testBuyer, nil)
		allowlistUC.On("IsAllowlistedNFT", mock.Anything, key, testOwnedNFT, params.OwnedNFTTokenId).Return(true, nil)
		allowlistUC.On("ValidateNFTOwnership", mock.Anything, testOwnedNFT, params.OwnedNFTTokenId, testBuyer).Return(nil)
	}

	t.Run("consumes the parent seed for the panel", func(t *testing.T) {
		uc, m, priceRepo, allowlistUC, polyptychRepo := newUc(t)
		params := holderParams(key)

		primeGate(priceRepo, allowlistUC, params)
		m.invocationsUC.On("RequireNotMaxed", mock.Anything, key).Return(&invocations.State{}, nil)
		m.coreContract.On("TokenHashSeed", mock.Anything, testOwnedNFT, params.OwnedNFTTokenId).Return(seed, nil)
		polyptychRepo.On("FindPanel", mock.Anything, key).Return(nil, domain.ErrNotFound)
		polyptychRepo.On("FindSeedMint", mock.Anything, key, uint64(0), seedHex).Return(nil, domain.ErrNotFound)
		primeEscrow(m, milliEth(100))
		m.registryUC.On("Mint", mock.Anything, testMinterAddr, testBuyer, testBuyer, key).Return(domain.TokenId(3000001), nil)
		m.invocationsUC.On("ValidatePurchaseEffectsInvocations", mock.Anything, key, domain.TokenId(3000001)).
			Return(&invocations.State{}, nil)
		polyptychRepo.On("CreateSeedMint", mock.Anything, mock.MatchedBy(func(sm *minter.PolyptychSeedMint) bool {
			return sm.PanelId == 0 && sm.HashSeed == seedHex
		})).Return(nil)
		m.splitterUC.On("SplitFundsETH", mock.Anything, key, milliEth(100), milliEth(100), testBuyer).
			Return([]splitter.Split{}, nil)

		_, err := uc.Purchase(c, params)
		req.NoError(err)
	})

	t.Run("a seed mints once per panel", func(t *testing.T) {
		uc, m, priceRepo, allowlistUC, polyptychRepo := newUc(t)
		params := holderParams(key)

		primeGate(priceRepo, allowlistUC, params)
		m.invocationsUC.On("RequireNotMaxed", mock.Anything, key).Return(&invocations.State{}, nil)
		m.coreContract.On("TokenHashSeed", mock.Anything, testOwnedNFT, params.OwnedNFTTokenId).Return(seed, nil)
		polyptychRepo.On("FindPanel", mock.Anything, key).Return(&minter.PolyptychPanel{ProjectKey: key, PanelId: 1}, nil)
		polyptychRepo.On("FindSeedMint", mock.Anything, key, uint64(1), seedHex).
			Return(&minter.PolyptychSeedMint{}, nil)

		_, err := uc.Purchase(c, params)
		req.ErrorIs(err, domain.ErrPanelHashSeedMinted)
	})

	t.Run("parent token without a seed rejected", func(t *testing.T) {
		uc, m, priceRepo, allowlistUC, _ := newUc(t)
		params := holderParams(key)

		primeGate(priceRepo, allowlistUC, params)
		m.invocationsUC.On("RequireNotMaxed", mock.Anything, key).Return(&invocations.State{}, nil)
		m.coreContract.On("TokenHashSeed", mock.Anything, testOwnedNFT, params.OwnedNFTTokenId).Return(core.HashSeed{}, nil)

		_, err := uc.Purchase(c, params)
		req.ErrorIs(err, domain.ErrNilHashSeed)
	})

	t.Run("advancing the panel reopens consumed seeds", func(t *testing.T) {
		uc, m, _, _, polyptychRepo := newUc(t)

		m.coreContract.On("ProjectIdToArtistAddress", mock.Anything, key.CoreContract, key.ProjectId).Return(testArtist, nil)
		polyptychRepo.On("FindPanel", mock.Anything, key).Return(&minter.PolyptychPanel{ProjectKey: key, PanelId: 1}, nil)
		polyptychRepo.On("UpsertPanel", mock.Anything, mock.MatchedBy(func(p *minter.PolyptychPanel) bool {
			return p.PanelId == 2
		})).Return(nil)

		next, err := uc.IncrementPolyptychProjectPanelId(c, testArtist, key)
		req.NoError(err)
		req.Equal(uint64(2), next)
	})
}
