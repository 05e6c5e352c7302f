package usecase

import (
	bCtx "github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/log"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/allowlist"
	"github.com/archetype-labs/minter-suite/domain/core"
	"github.com/archetype-labs/minter-suite/domain/delegation"
	"github.com/archetype-labs/minter-suite/service/chain/contract"
)

type AllowlistUseCaseCfg struct {
	Repo               allowlist.Repo
	CoreContract       core.Contract
	Erc721Contract     contract.Erc721Contract
	DelegationRegistry delegation.Registry
}

type allowlistUseCase struct {
	repo               allowlist.Repo
	coreContract       core.Contract
	erc721Contract     contract.Erc721Contract
	delegationRegistry delegation.Registry
}

func NewAllowlistUseCase(cfg *AllowlistUseCaseCfg) allowlist.UseCase {
	return &allowlistUseCase{
		repo:               cfg.Repo,
		coreContract:       cfg.CoreContract,
		erc721Contract:     cfg.Erc721Contract,
		delegationRegistry: cfg.DelegationRegistry,
	}
}

func (u *allowlistUseCase) requireArtist(c bCtx.Ctx, sender domain.Address, key domain.ProjectKey) error {
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

func (u *allowlistUseCase) allow(c bCtx.Ctx, key domain.ProjectKey, pairs []allowlist.ProjectPair) error {
	for _, pair := range pairs {
		is721, err := u.erc721Contract.Supports721Interface(c, pair.OwnedNFTAddress)
		if err != nil {
			c.WithField("err", err).Error("erc721Contract.Supports721Interface failed")
			return err
		}
		if !is721 {
			return domain.ErrBadParamInput
		}

		if err := u.repo.Upsert(c, &allowlist.Entry{
			ProjectKey:        key,
			OwnedNFTAddress:   pair.OwnedNFTAddress,
			OwnedNFTProjectId: pair.OwnedNFTProjectId,
		}); err != nil {
			c.WithField("err", err).Error("repo.Upsert failed")
			return err
		}
	}
	return nil
}

func (u *allowlistUseCase) remove(c bCtx.Ctx, key domain.ProjectKey, pairs []allowlist.ProjectPair) error {
	for _, pair := range pairs {
		err := u.repo.Remove(c, allowlist.EntryId{
			ProjectKey:        key,
			OwnedNFTAddress:   pair.OwnedNFTAddress.ToLower(),
			OwnedNFTProjectId: pair.OwnedNFTProjectId,
		})
		// removing an absent pair is a no-op
		if err != nil && err != domain.ErrNotFound {
			c.WithField("err", err).Error("repo.Remove failed")
			return err
		}
	}
	return nil
}

func (u *allowlistUseCase) AllowHoldersOfProjects(c bCtx.Ctx, sender domain.Address, key domain.ProjectKey, pairs []allowlist.ProjectPair) error {
	if err := u.requireArtist(c, sender, key); err != nil {
		return err
	}
	if err := u.allow(c, key, pairs); err != nil {
		return err
	}

	c.WithFields(log.Fields{
		"project": key.String(),
		"pairs":   len(pairs),
	}).Info("holder allowlist extended")
	return nil
}

func (u *allowlistUseCase) RemoveHoldersOfProjects(c bCtx.Ctx, sender domain.Address, key domain.ProjectKey, pairs []allowlist.ProjectPair) error {
	if err := u.requireArtist(c, sender, key); err != nil {
		return err
	}
	if err := u.remove(c, key, pairs); err != nil {
		return err
	}

	c.WithFields(log.Fields{
		"project": key.String(),
		"pairs":   len(pairs),
	}).Info("holder allowlist reduced")
	return nil
}

func (u *allowlistUseCase) AllowAndRemoveHoldersOfProjects(c bCtx.Ctx, sender domain.Address, key domain.ProjectKey, add, remove []allowlist.ProjectPair) error {
	if err := u.requireArtist(c, sender, key); err != nil {
		return err
	}

	// adds run first: a pair named in both operands ends up removed
	if err := u.allow(c, key, add); err != nil {
		return err
	}
	if err := u.remove(c, key, remove); err != nil {
		return err
	}

	c.WithFields(log.Fields{
		"project": key.String(),
		"added":   len(add),
		"removed": len(remove),
	}).Info("holder allowlist updated")
	return nil
}

func (u *allowlistUseCase) IsAllowlistedNFT(c bCtx.Ctx, key domain.ProjectKey, ownedNFTAddress domain.Address, ownedNFTTokenId domain.TokenId) (bool, error) {
	_, err := u.repo.FindOne(c, allowlist.EntryId{
		ProjectKey:        key,
		OwnedNFTAddress:   ownedNFTAddress.ToLower(),
		OwnedNFTProjectId: ownedNFTTokenId.ProjectId(),
	})
	if err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return false, err
	}
	return true, nil
}

func (u *allowlistUseCase) GetHoldersOfProjects(c bCtx.Ctx, key domain.ProjectKey) ([]*allowlist.Entry, error) {
	entries, err := u.repo.FindAll(c, key)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, err
	}
	return entries, nil
}

func (u *allowlistUseCase) ValidateNFTOwnership(c bCtx.Ctx, ownedNFTAddress domain.Address, ownedNFTTokenId domain.TokenId, targetOwner domain.Address) error {
	owner, err := u.erc721Contract.OwnerOf(c, ownedNFTAddress, ownedNFTTokenId)
	if err != nil {
		c.WithField("err", err).Error("erc721Contract.OwnerOf failed")
		return err
	}
	if !owner.Equals(targetOwner) {
		return domain.ErrNotTokenOwner
	}
	return nil
}

func (u *allowlistUseCase) ResolvePrincipal(c bCtx.Ctx, sender, vault, ownedNFTAddress domain.Address, ownedNFTTokenId domain.TokenId) (domain.Address, error) {
	if vault.IsEmpty() || vault.Equals(sender) {
		return sender, nil
	}

	isDelegate, err := u.delegationRegistry.CheckDelegateForToken(c, sender, vault, ownedNFTAddress, ownedNFTTokenId)
	if err != nil {
		c.WithField("err", err).Error("delegationRegistry.CheckDelegateForToken failed")
		return "", err
	}
	if !isDelegate {
		return "", domain.ErrNotDelegate
	}
	return vault, nil
}
