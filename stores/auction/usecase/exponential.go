package usecase

import (
	"math/big"
	"time"

	bCtx "github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/log"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/acl"
	"github.com/archetype-labs/minter-suite/domain/auction"
	"github.com/archetype-labs/minter-suite/domain/core"
	"github.com/archetype-labs/minter-suite/domain/invocations"
)

// Half-life bounds: below the floor the decay is economically meaningless
// near-instant, above the ceiling the auction never meaningfully moves.
const (
	DefaultMinHalfLifeSeconds = 300
	DefaultMaxHalfLifeSeconds = 3600
)

type ExponentialUseCaseCfg struct {
	Repo               auction.ExponentialRepo
	CoreContract       core.Contract
	InvocationsUseCase invocations.UseCase
	RegistryAddress    domain.Address
	// bounds fall back to the defaults when zero
	MinHalfLifeSeconds uint64
	MaxHalfLifeSeconds uint64
}

type exponentialUseCase struct {
	repo            auction.ExponentialRepo
	coreContract    core.Contract
	invocationsUC   invocations.UseCase
	registryAddress domain.Address
	minHalfLife     uint64
	maxHalfLife     uint64
}

func NewExponentialUseCase(cfg *ExponentialUseCaseCfg) auction.ExponentialUseCase {
	minHalfLife := cfg.MinHalfLifeSeconds
	if minHalfLife == 0 {
		minHalfLife = DefaultMinHalfLifeSeconds
	}
	maxHalfLife := cfg.MaxHalfLifeSeconds
	if maxHalfLife == 0 {
		maxHalfLife = DefaultMaxHalfLifeSeconds
	}
	return &exponentialUseCase{
		repo:            cfg.Repo,
		coreContract:    cfg.CoreContract,
		invocationsUC:   cfg.InvocationsUseCase,
		registryAddress: cfg.RegistryAddress,
		minHalfLife:     minHalfLife,
		maxHalfLife:     maxHalfLife,
	}
}

func (u *exponentialUseCase) requireArtist(c bCtx.Ctx, sender domain.Address, key domain.ProjectKey) error {
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

func (u *exponentialUseCase) requireNoLiveAuction(c bCtx.Ctx, key domain.ProjectKey) error {
	existing, err := u.repo.FindOne(c, key)
	if err == domain.ErrNotFound {
		return nil
	} else if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return err
	}
	if uint64(time.Now().Unix()) < existing.TimestampStart {
		return nil
	}
	maxed, err := u.invocationsUC.ProjectMaxHasBeenInvoked(c, key)
	if err != nil {
		return err
	}
	if !maxed {
		return domain.ErrAuctionInProgress
	}
	return nil
}

func (u *exponentialUseCase) SetAuctionDetails(c bCtx.Ctx, sender domain.Address, key domain.ProjectKey, timestampStart, priceDecayHalfLifeSeconds uint64, startPrice, basePrice *big.Int) error {
	if err := u.requireArtist(c, sender, key); err != nil {
		return err
	}
	if startPrice == nil || basePrice == nil || basePrice.Sign() <= 0 {
		return domain.ErrBadParamInput
	}
	if startPrice.Cmp(basePrice) <= 0 {
		return domain.ErrInvalidAuctionPrices
	}
	if priceDecayHalfLifeSeconds < u.minHalfLife || priceDecayHalfLifeSeconds > u.maxHalfLife {
		return domain.ErrHalfLifeOutOfRange
	}
	if err := u.requireNoLiveAuction(c, key); err != nil {
		return err
	}

	if _, err := u.invocationsUC.EnsureSynced(c, key); err != nil {
		return err
	}

	if err := u.repo.Upsert(c, &auction.ExponentialAuction{
		ProjectKey:                key,
		TimestampStart:            timestampStart,
		PriceDecayHalfLifeSeconds: priceDecayHalfLifeSeconds,
		StartPrice:                domain.FormatWei(startPrice),
		BasePrice:                 domain.FormatWei(basePrice),
	}); err != nil {
		c.WithField("err", err).Error("repo.Upsert failed")
		return err
	}

	c.WithFields(log.Fields{
		"project":    key.String(),
		"start":      timestampStart,
		"halfLife":   priceDecayHalfLifeSeconds,
		"startPrice": startPrice.String(),
		"basePrice":  basePrice.String(),
	}).Info("exponential auction configured")
	return nil
}

func (u *exponentialUseCase) ResetAuctionDetails(c bCtx.Ctx, sender domain.Address, key domain.ProjectKey) error {
	allowed, err := u.coreContract.AdminACLAllowed(c, key.CoreContract, sender, u.registryAddress, acl.SelectorResetAuctionDetails)
	if err != nil {
		c.WithField("err", err).Error("coreContract.AdminACLAllowed failed")
		return err
	}
	if !allowed {
		return domain.ErrNotAdminACL
	}

	if err := u.repo.Remove(c, key); err != nil && err != domain.ErrNotFound {
		c.WithField("err", err).Error("repo.Remove failed")
		return err
	}

	c.WithField("project", key.String()).Info("exponential auction reset")
	return nil
}

func (u *exponentialUseCase) GetAuction(c bCtx.Ctx, key domain.ProjectKey) (*auction.ExponentialAuction, error) {
	a, err := u.repo.FindOne(c, key)
	if err == domain.ErrNotFound {
		return nil, domain.ErrAuctionNotConfigured
	} else if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	}
	return a, nil
}

func (u *exponentialUseCase) GetPurchasePrice(c bCtx.Ctx, key domain.ProjectKey, at uint64) (*big.Int, error) {
	a, err := u.GetAuction(c, key)
	if err != nil {
		return nil, err
	}
	if at < a.TimestampStart {
		return nil, domain.ErrAuctionNotStarted
	}
	return a.PriceAt(at)
}
