package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/allowlist"
	allowlistMocks "github.com/archetype-labs/minter-suite/domain/allowlist/mocks"
	coreMocks "github.com/archetype-labs/minter-suite/domain/core/mocks"
	delegationMocks "github.com/archetype-labs/minter-suite/domain/delegation/mocks"
	contractMocks "github.com/archetype-labs/minter-suite/service/chain/contract/mocks"
)

var (
	testCore      = domain.Address("0x1111111111111111111111111111111111111111")
	testArtist    = domain.Address("0x2222222222222222222222222222222222222222")
	testStranger  = domain.Address("0x3333333333333333333333333333333333333333")
	testOwnedNFT  = domain.Address("0x4444444444444444444444444444444444444444")
	testVault     = domain.Address("0x5555555555555555555555555555555555555555")
	testHotWallet = domain.Address("0x6666666666666666666666666666666666666666")
)

type allowlistUseCaseMocks struct {
	repo               *allowlistMocks.Repo
	coreContract       *coreMocks.Contract
	erc721Contract     *contractMocks.Erc721Contract
	delegationRegistry *delegationMocks.Registry
}

func newAllowlistUseCase(t *testing.T) (allowlist.UseCase, *allowlistUseCaseMocks) {
	m := &allowlistUseCaseMocks{
		repo:               allowlistMocks.NewRepo(t),
		coreContract:       coreMocks.NewContract(t),
		erc721Contract:     contractMocks.NewErc721Contract(t),
		delegationRegistry: delegationMocks.NewRegistry(t),
	}
	uc := NewAllowlistUseCase(&AllowlistUseCaseCfg{
		Repo:               m.repo,
		CoreContract:       m.coreContract,
		Erc721Contract:     m.erc721Contract,
		DelegationRegistry: m.delegationRegistry,
	})
	return uc, m
}

func expectArtist(m *allowlistUseCaseMocks, key domain.ProjectKey) {
	m.coreContract.On("ProjectIdToArtistAddress", mock.Anything, key.CoreContract, key.ProjectId).Return(testArtist, nil)
}

func TestAllowHoldersOfProjects(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	key := domain.NewProjectKey(testCore, 3)
	pairs := []allowlist.ProjectPair{{OwnedNFTAddress: testOwnedNFT, OwnedNFTProjectId: 9}}

	t.Run("artist adds a pair", func(t *testing.T) {
		uc, m := newAllowlistUseCase(t)
		expectArtist(m, key)
		m.erc721Contract.On("Supports721Interface", mock.Anything, testOwnedNFT).Return(true, nil)
		m.repo.On("Upsert", mock.Anything, mock.MatchedBy(func(e *allowlist.Entry) bool {
			return e.OwnedNFTAddress.Equals(testOwnedNFT) && e.OwnedNFTProjectId == 9
		})).Return(nil)

		req.NoError(uc.AllowHoldersOfProjects(c, testArtist, key, pairs))
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		uc, m := newAllowlistUseCase(t)
		expectArtist(m, key)

		err := uc.AllowHoldersOfProjects(c, testStranger, key, pairs)
		req.ErrorIs(err, domain.ErrNotArtist)
	})

	t.Run("non-721 contract is rejected", func(t *testing.T) {
		uc, m := newAllowlistUseCase(t)
		expectArtist(m, key)
		m.erc721Contract.On("Supports721Interface", mock.Anything, testOwnedNFT).Return(false, nil)

		err := uc.AllowHoldersOfProjects(c, testArtist, key, pairs)
		req.ErrorIs(err, domain.ErrBadParamInput)
	})
}

func TestAllowAndRemoveHoldersOfProjects(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	key := domain.NewProjectKey(testCore, 3)
	pair := allowlist.ProjectPair{OwnedNFTAddress: testOwnedNFT, OwnedNFTProjectId: 9}

	// the same pair in both operands ends up removed
	uc, m := newAllowlistUseCase(t)
	expectArtist(m, key)
	m.erc721Contract.On("Supports721Interface", mock.Anything, testOwnedNFT).Return(true, nil)
	m.repo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	m.repo.On("Remove", mock.Anything, mock.MatchedBy(func(id allowlist.EntryId) bool {
		return id.OwnedNFTAddress.Equals(testOwnedNFT) && id.OwnedNFTProjectId == 9
	})).Return(nil)

	req.NoError(uc.AllowAndRemoveHoldersOfProjects(c, testArtist, key,
		[]allowlist.ProjectPair{pair}, []allowlist.ProjectPair{pair}))
	m.repo.AssertCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestRemoveHoldersOfProjectsAbsentPairIsNoOp(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	key := domain.NewProjectKey(testCore, 3)

	uc, m := newAllowlistUseCase(t)
	expectArtist(m, key)
	m.repo.On("Remove", mock.Anything, mock.Anything).Return(domain.ErrNotFound)

	req.NoError(uc.RemoveHoldersOfProjects(c, testArtist, key,
		[]allowlist.ProjectPair{{OwnedNFTAddress: testOwnedNFT, OwnedNFTProjectId: 9}}))
}

func TestIsAllowlistedNFT(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	key := domain.NewProjectKey(testCore, 3)

	t.Run("derives the owned project from the token id", func(t *testing.T) {
		uc, m := newAllowlistUseCase(t)
		m.repo.On("FindOne", mock.Anything, mock.MatchedBy(func(id allowlist.EntryId) bool {
			return id.OwnedNFTProjectId == 9
		})).Return(&allowlist.Entry{}, nil)

		// token 9000123 belongs to project 9
		ok, err := uc.IsAllowlistedNFT(c, key, testOwnedNFT, domain.TokenId(9000123))
		req.NoError(err)
		req.True(ok)
	})

	t.Run("membership miss is not an error", func(t *testing.T) {
		uc, m := newAllowlistUseCase(t)
		m.repo.On("FindOne", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

		ok, err := uc.IsAllowlistedNFT(c, key, testOwnedNFT, domain.TokenId(9000123))
		req.NoError(err)
		req.False(ok)
	})
}

func TestValidateNFTOwnership(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	t.Run("current owner passes", func(t *testing.T) {
		uc, m := newAllowlistUseCase(t)
		m.erc721Contract.On("OwnerOf", mock.Anything, testOwnedNFT, domain.TokenId(9000123)).Return(testVault, nil)

		req.NoError(uc.ValidateNFTOwnership(c, testOwnedNFT, domain.TokenId(9000123), testVault))
	})

	t.Run("anyone else fails", func(t *testing.T) {
		uc, m := newAllowlistUseCase(t)
		m.erc721Contract.On("OwnerOf", mock.Anything, testOwnedNFT, domain.TokenId(9000123)).Return(testVault, nil)

		err := uc.ValidateNFTOwnership(c, testOwnedNFT, domain.TokenId(9000123), testStranger)
		req.ErrorIs(err, domain.ErrNotTokenOwner)
	})
}

func TestResolvePrincipal(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	t.Run("no vault means sender acts for itself", func(t *testing.T) {
		uc, _ := newAllowlistUseCase(t)
		principal, err := uc.ResolvePrincipal(c, testHotWallet, "", testOwnedNFT, domain.TokenId(9000123))
		req.NoError(err)
		req.Equal(testHotWallet, principal)
	})

	t.Run("registered delegate acts as the vault", func(t *testing.T) {
		uc, m := newAllowlistUseCase(t)
		m.delegationRegistry.On("CheckDelegateForToken", mock.Anything, testHotWallet, testVault, testOwnedNFT, domain.TokenId(9000123)).
			Return(true, nil)

		principal, err := uc.ResolvePrincipal(c, testHotWallet, testVault, testOwnedNFT, domain.TokenId(9000123))
		req.NoError(err)
		req.Equal(testVault, principal)
	})

	t.Run("unregistered delegate is rejected", func(t *testing.T) {
		uc, m := newAllowlistUseCase(t)
		m.delegationRegistry.On("CheckDelegateForToken", mock.Anything, testHotWallet, testVault, testOwnedNFT, domain.TokenId(9000123)).
			Return(false, nil)

		_, err := uc.ResolvePrincipal(c, testHotWallet, testVault, testOwnedNFT, domain.TokenId(9000123))
		req.ErrorIs(err, domain.ErrNotDelegate)
	})
}
