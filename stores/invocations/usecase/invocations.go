package usecase

import (
	"time"

	bCtx "github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/log"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/core"
	"github.com/archetype-labs/minter-suite/domain/invocations"
)

type InvocationsUseCaseCfg struct {
	Repo         invocations.Repo
	CoreContract core.Contract
}

type invocationsUseCase struct {
	repo         invocations.Repo
	coreContract core.Contract
}

func NewInvocationsUseCase(cfg *InvocationsUseCaseCfg) invocations.UseCase {
	return &invocationsUseCase{
		repo:         cfg.Repo,
		coreContract: cfg.CoreContract,
	}
}

func (u *invocationsUseCase) requireArtist(c bCtx.Ctx, sender domain.Address, key domain.ProjectKey) error {
	artist, err := u.coreContract.ProjectIdToArtistAddress(c, key.CoreContract, key.ProjectId)
	if err != nil {
		c.WithField("err", err).Error("coreContract.ProjectIdToArtistAddress failed")
		return err
	}
	if !artist.Equals(sender) {
		return domain.ErrNotArtist
	}
	return nil
}

func (u *invocationsUseCase) SyncProjectMaxInvocationsToCore(c bCtx.Ctx, sender domain.Address, key domain.ProjectKey) (*invocations.State, error) {
	if err := u.requireArtist(c, sender, key); err != nil {
		return nil, err
	}
	return u.syncFromCore(c, key)
}

func (u *invocationsUseCase) syncFromCore(c bCtx.Ctx, key domain.ProjectKey) (*invocations.State, error) {
	stateData, err := u.coreContract.ProjectStateData(c, key.CoreContract, key.ProjectId)
	if err != nil {
		c.WithField("err", err).Error("coreContract.ProjectStateData failed")
		return nil, err
	}

	state := &invocations.State{
		ProjectKey:     key,
		Configured:     true,
		Invocations:    stateData.Invocations,
		MaxInvocations: stateData.MaxInvocations,
		// optimistic: the flag only latches on a purchase, and a core max of
		// zero leaves the project unbounded
		MaxHasBeenInvoked: false,
		UpdatedAt:         time.Now(),
	}
	if err := u.repo.Upsert(c, state); err != nil {
		c.WithField("err", err).Error("repo.Upsert failed")
		return nil, err
	}

	c.WithFields(log.Fields{
		"project":        key.String(),
		"invocations":    state.Invocations,
		"maxInvocations": state.MaxInvocations,
	}).Info("project max invocations synced from core")
	return state, nil
}

func (u *invocationsUseCase) ManuallyLimitProjectMaxInvocations(c bCtx.Ctx, sender domain.Address, key domain.ProjectKey, newMax uint64) (*invocations.State, error) {
	if err := u.requireArtist(c, sender, key); err != nil {
		return nil, err
	}

	stateData, err := u.coreContract.ProjectStateData(c, key.CoreContract, key.ProjectId)
	if err != nil {
		c.WithField("err", err).Error("coreContract.ProjectStateData failed")
		return nil, err
	}
	if newMax > stateData.MaxInvocations {
		return nil, domain.ErrMaxInvocationsExceedsCore
	}
	if newMax < stateData.Invocations {
		return nil, domain.ErrMaxInvocationsBelowMinted
	}

	state := &invocations.State{
		ProjectKey:        key,
		Configured:        true,
		Invocations:       stateData.Invocations,
		MaxInvocations:    newMax,
		MaxHasBeenInvoked: newMax > 0 && stateData.Invocations >= newMax,
		UpdatedAt:         time.Now(),
	}
	if err := u.repo.Upsert(c, state); err != nil {
		c.WithField("err", err).Error("repo.Upsert failed")
		return nil, err
	}

	c.WithFields(log.Fields{
		"project":        key.String(),
		"maxInvocations": newMax,
	}).Info("project max invocations manually limited")
	return state, nil
}

func (u *invocationsUseCase) EnsureSynced(c bCtx.Ctx, key domain.ProjectKey) (*invocations.State, error) {
	state, err := u.repo.FindOne(c, key)
	if err == domain.ErrNotFound {
		return u.syncFromCore(c, key)
	} else if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	}
	return state, nil
}

func (u *invocationsUseCase) RequireNotMaxed(c bCtx.Ctx, key domain.ProjectKey) (*invocations.State, error) {
	state, err := u.EnsureSynced(c, key)
	if err != nil {
		return nil, err
	}
	if state.MaxHasBeenInvoked {
		return nil, domain.ErrMaxInvocationsReached
	}
	return state, nil
}

func (u *invocationsUseCase) ValidatePurchaseEffectsInvocations(c bCtx.Ctx, key domain.ProjectKey, tokenId domain.TokenId) (*invocations.State, error) {
	state, err := u.repo.FindOne(c, key)
	if err == domain.ErrNotFound {
		return nil, domain.ErrInvocationsNotSynced
	} else if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	}

	// the minted token must carry the next invocation ordinal; anything else
	// means the local counter diverged from the core
	if tokenId.ProjectId() != key.ProjectId || tokenId.Invocation() != state.Invocations {
		c.WithFields(log.Fields{
			"project":     key.String(),
			"tokenId":     tokenId,
			"invocations": state.Invocations,
		}).Error("minted token id does not match expected invocation")
		return nil, domain.ErrUnexpectedTokenId
	}

	state.Invocations++
	if state.MaxInvocations > 0 && state.Invocations >= state.MaxInvocations {
		state.MaxHasBeenInvoked = true
	}
	state.UpdatedAt = time.Now()

	if err := u.repo.Upsert(c, state); err != nil {
		c.WithField("err", err).Error("repo.Upsert failed")
		return nil, err
	}
	return state, nil
}

func (u *invocationsUseCase) ProjectMaxInvocations(c bCtx.Ctx, key domain.ProjectKey) (uint64, error) {
	state, err := u.EnsureSynced(c, key)
	if err != nil {
		return 0, err
	}
	return state.MaxInvocations, nil
}

func (u *invocationsUseCase) ProjectMaxHasBeenInvoked(c bCtx.Ctx, key domain.ProjectKey) (bool, error) {
	state, err := u.EnsureSynced(c, key)
	if err != nil {
		return false, err
	}
	return state.MaxHasBeenInvoked, nil
}
