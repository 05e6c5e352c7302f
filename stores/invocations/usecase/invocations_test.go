package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/core"
	coreMocks "github.com/archetype-labs/minter-suite/domain/core/mocks"
	"github.com/archetype-labs/minter-suite/domain/invocations"
	invocationsMocks "github.com/archetype-labs/minter-suite/domain/invocations/mocks"
)

var (
	testArtist   = domain.Address("0x1111111111111111111111111111111111111111")
	testStranger = domain.Address("0x2222222222222222222222222222222222222222")
	testCore     = domain.Address("0x3333333333333333333333333333333333333333")
)

func newInvocationsUseCase(t *testing.T) (invocations.UseCase, *invocationsMocks.Repo, *coreMocks.Contract) {
	repo := invocationsMocks.NewRepo(t)
	coreContract := coreMocks.NewContract(t)
	uc := NewInvocationsUseCase(&InvocationsUseCaseCfg{
		Repo:         repo,
		CoreContract: coreContract,
	})
	return uc, repo, coreContract
}

func TestSyncProjectMaxInvocationsToCore(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	key := domain.NewProjectKey(testCore, 7)

	uc, repo, coreContract := newInvocationsUseCase(t)

	coreContract.On("ProjectIdToArtistAddress", mock.Anything, key.CoreContract, key.ProjectId).Return(testArtist, nil)
	coreContract.On("ProjectStateData", mock.Anything, key.CoreContract, key.ProjectId).
		Return(&core.ProjectStateData{Invocations: 5, MaxInvocations: 100}, nil)
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(s *invocations.State) bool {
		return s.Invocations == 5 && s.MaxInvocations == 100 && !s.MaxHasBeenInvoked && s.Configured
	})).Return(nil)

	state, err := uc.SyncProjectMaxInvocationsToCore(c, testArtist, key)
	req.NoError(err)
	req.Equal(uint64(100), state.MaxInvocations)
}

func TestSyncRejectsNonArtist(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	key := domain.NewProjectKey(testCore, 7)

	uc, _, coreContract := newInvocationsUseCase(t)
	coreContract.On("ProjectIdToArtistAddress", mock.Anything, key.CoreContract, key.ProjectId).Return(testArtist, nil)

	_, err := uc.SyncProjectMaxInvocationsToCore(c, testStranger, key)
	req.ErrorIs(err, domain.ErrNotArtist)
}

func TestManuallyLimitProjectMaxInvocations(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	key := domain.NewProjectKey(testCore, 7)

	t.Run("lowers the cap", func(t *testing.T) {
		uc, repo, coreContract := newInvocationsUseCase(t)
		coreContract.On("ProjectIdToArtistAddress", mock.Anything, key.CoreContract, key.ProjectId).Return(testArtist, nil)
		coreContract.On("ProjectStateData", mock.Anything, key.CoreContract, key.ProjectId).
			Return(&core.ProjectStateData{Invocations: 5, MaxInvocations: 100}, nil)
		repo.On("Upsert", mock.Anything, mock.MatchedBy(func(s *invocations.State) bool {
			return s.MaxInvocations == 10 && !s.MaxHasBeenInvoked
		})).Return(nil)

		state, err := uc.ManuallyLimitProjectMaxInvocations(c, testArtist, key, 10)
		req.NoError(err)
		req.Equal(uint64(10), state.MaxInvocations)
	})

	t.Run("cannot exceed core cap", func(t *testing.T) {
		uc, _, coreContract := newInvocationsUseCase(t)
		coreContract.On("ProjectIdToArtistAddress", mock.Anything, key.CoreContract, key.ProjectId).Return(testArtist, nil)
		coreContract.On("ProjectStateData", mock.Anything, key.CoreContract, key.ProjectId).
			Return(&core.ProjectStateData{Invocations: 5, MaxInvocations: 100}, nil)

		_, err := uc.ManuallyLimitProjectMaxInvocations(c, testArtist, key, 101)
		req.ErrorIs(err, domain.ErrMaxInvocationsExceedsCore)
	})

	t.Run("cannot undercut minted invocations", func(t *testing.T) {
		uc, _, coreContract := newInvocationsUseCase(t)
		coreContract.On("ProjectIdToArtistAddress", mock.Anything, key.CoreContract, key.ProjectId).Return(testArtist, nil)
		coreContract.On("ProjectStateData", mock.Anything, key.CoreContract, key.ProjectId).
			Return(&core.ProjectStateData{Invocations: 5, MaxInvocations: 100}, nil)

		_, err := uc.ManuallyLimitProjectMaxInvocations(c, testArtist, key, 4)
		req.ErrorIs(err, domain.ErrMaxInvocationsBelowMinted)
	})

	t.Run("limiting to current invocations halts minting", func(t *testing.T) {
		uc, repo, coreContract := newInvocationsUseCase(t)
		coreContract.On("ProjectIdToArtistAddress", mock.Anything, key.CoreContract, key.ProjectId).Return(testArtist, nil)
		coreContract.On("ProjectStateData", mock.Anything, key.CoreContract, key.ProjectId).
			Return(&core.ProjectStateData{Invocations: 5, MaxInvocations: 100}, nil)
		repo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

		state, err := uc.ManuallyLimitProjectMaxInvocations(c, testArtist, key, 5)
		req.NoError(err)
		req.True(state.MaxHasBeenInvoked)

		repo.On("FindOne", mock.Anything, key).Return(state, nil)
		_, err = uc.RequireNotMaxed(c, key)
		req.ErrorIs(err, domain.ErrMaxInvocationsReached)
	})
}

func TestValidatePurchaseEffectsInvocations(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	key := domain.NewProjectKey(testCore, 7)

	t.Run("expected ordinal advances counter", func(t *testing.T) {
		uc, repo, _ := newInvocationsUseCase(t)
		repo.On("FindOne", mock.Anything, key).Return(&invocations.State{
			ProjectKey:     key,
			Configured:     true,
			Invocations:    5,
			MaxInvocations: 100,
		}, nil)
		repo.On("Upsert", mock.Anything, mock.MatchedBy(func(s *invocations.State) bool {
			return s.Invocations == 6 && !s.MaxHasBeenInvoked
		})).Return(nil)

		// token 7000005 is invocation 5 of project 7
		state, err := uc.ValidatePurchaseEffectsInvocations(c, key, domain.TokenId(7000005))
		req.NoError(err)
		req.Equal(uint64(6), state.Invocations)
	})

	t.Run("latches the flag at the cap", func(t *testing.T) {
		uc, repo, _ := newInvocationsUseCase(t)
		repo.On("FindOne", mock.Anything, key).Return(&invocations.State{
			ProjectKey:     key,
			Configured:     true,
			Invocations:    99,
			MaxInvocations: 100,
		}, nil)
		repo.On("Upsert", mock.Anything, mock.MatchedBy(func(s *invocations.State) bool {
			return s.Invocations == 100 && s.MaxHasBeenInvoked
		})).Return(nil)

		state, err := uc.ValidatePurchaseEffectsInvocations(c, key, domain.TokenId(7000099))
		req.NoError(err)
		req.True(state.MaxHasBeenInvoked)
	})

	t.Run("unexpected ordinal rejected", func(t *testing.T) {
		uc, repo, _ := newInvocationsUseCase(t)
		repo.On("FindOne", mock.Anything, key).Return(&invocations.State{
			ProjectKey:     key,
			Configured:     true,
			Invocations:    5,
			MaxInvocations: 100,
		}, nil)

		_, err := uc.ValidatePurchaseEffectsInvocations(c, key, domain.TokenId(7000007))
		req.ErrorIs(err, domain.ErrUnexpectedTokenId)
	})

	t.Run("unsynced project rejected", func(t *testing.T) {
		uc, repo, _ := newInvocationsUseCase(t)
		repo.On("FindOne", mock.Anything, key).Return(nil, domain.ErrNotFound)

		_, err := uc.ValidatePurchaseEffectsInvocations(c, key, domain.TokenId(7000005))
		req.ErrorIs(err, domain.ErrInvocationsNotSynced)
	})
}

func TestUnboundedMaxInvocations(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	key := domain.NewProjectKey(testCore, 7)

	t.Run("core max of zero does not block purchases", func(t *testing.T) {
		uc, repo, coreContract := newInvocationsUseCase(t)
		coreContract.On("ProjectIdToArtistAddress", mock.Anything, key.CoreContract, key.ProjectId).Return(testArtist, nil)
		coreContract.On("ProjectStateData", mock.Anything, key.CoreContract, key.ProjectId).
			Return(&core.ProjectStateData{Invocations: 0, MaxInvocations: 0}, nil)
		repo.On("Upsert", mock.Anything, mock.MatchedBy(func(s *invocations.State) bool {
			return s.MaxInvocations == 0 && !s.MaxHasBeenInvoked
		})).Return(nil)

		state, err := uc.SyncProjectMaxInvocationsToCore(c, testArtist, key)
		req.NoError(err)
		req.False(state.MaxHasBeenInvoked)

		repo.On("FindOne", mock.Anything, key).Return(state, nil)
		_, err = uc.RequireNotMaxed(c, key)
		req.NoError(err)
	})

	t.Run("purchase effects never latch without a cap", func(t *testing.T) {
		uc, repo, _ := newInvocationsUseCase(t)
		repo.On("FindOne", mock.Anything, key).Return(&invocations.State{
			ProjectKey:     key,
			Configured:     true,
			Invocations:    5,
			MaxInvocations: 0,
		}, nil)
		repo.On("Upsert", mock.Anything, mock.MatchedBy(func(s *invocations.State) bool {
			return s.Invocations == 6 && !s.MaxHasBeenInvoked
		})).Return(nil)

		state, err := uc.ValidatePurchaseEffectsInvocations(c, key, domain.TokenId(7000005))
		req.NoError(err)
		req.False(state.MaxHasBeenInvoked)
	})

	t.Run("sync clears a stale flag even at the cap", func(t *testing.T) {
		uc, repo, coreContract := newInvocationsUseCase(t)
		coreContract.On("ProjectIdToArtistAddress", mock.Anything, key.CoreContract, key.ProjectId).Return(testArtist, nil)
		coreContract.On("ProjectStateData", mock.Anything, key.CoreContract, key.ProjectId).
			Return(&core.ProjectStateData{Invocations: 100, MaxInvocations: 100}, nil)
		repo.On("Upsert", mock.Anything, mock.MatchedBy(func(s *invocations.State) bool {
			return !s.MaxHasBeenInvoked
		})).Return(nil)

		state, err := uc.SyncProjectMaxInvocationsToCore(c, testArtist, key)
		req.NoError(err)
		req.False(state.MaxHasBeenInvoked)
	})
}

func TestEnsureSyncedLazilyInitializes(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	key := domain.NewProjectKey(testCore, 7)

	uc, repo, coreContract := newInvocationsUseCase(t)
	repo.On("FindOne", mock.Anything, key).Return(nil, domain.ErrNotFound)
	coreContract.On("ProjectStateData", mock.Anything, key.CoreContract, key.ProjectId).
		Return(&core.ProjectStateData{Invocations: 0, MaxInvocations: 50}, nil)
	repo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	state, err := uc.EnsureSynced(c, key)
	req.NoError(err)
	req.Equal(uint64(50), state.MaxInvocations)
}
