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

// DefaultMinAuctionLengthSeconds bounds linear auctions to at least one hour
// so a near-instant drop cannot be used to game the price.
const DefaultMinAuctionLengthSeconds = 3600

type LinearUseCaseCfg struct {
	Repo               auction.LinearRepo
	CoreContract       core.Contract
	InvocationsUseCase invocations.UseCase
	RegistryAddress    domain.Address
	// MinAuctionLengthSeconds falls back to the default when zero
	MinAuctionLengthSeconds uint64
}

type linearUseCase struct {
	repo             auction.LinearRepo
	coreContract     core.Contract
	invocationsUC    invocations.UseCase
	registryAddress  domain.Address
	minAuctionLength uint64
}

func NewLinearUseCase(cfg *LinearUseCaseCfg) auction.LinearUseCase {
	minLength := cfg.MinAuctionLengthSeconds
	if minLength == 0 {
		minLength = DefaultMinAuctionLengthSeconds
	}
	return &linearUseCase{
		repo:             cfg.Repo,
		coreContract:     cfg.CoreContract,
		invocationsUC:    cfg.InvocationsUseCase,
		registryAddress:  cfg.RegistryAddress,
		minAuctionLength: minLength,
	}
}

func (u *linearUseCase) requireArtist(c bCtx.Ctx, sender domain.Address, key domain.ProjectKey) error {
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

// requireNoLiveAuction enforces the no-rug rule: a started auction may only
// be replaced once the project's cap has been reached.
func (u *linearUseCase) requireNoLiveAuction(c bCtx.Ctx, key domain.ProjectKey) error {
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

func (u *linearUseCase) SetAuctionDetails(c bCtx.Ctx, sender domain.Address, key domain.ProjectKey, timestampStart, timestampEnd uint64, startPrice, basePrice *big.Int) error {
	if err := u.requireArtist(c, sender, key); err != nil {
		return err
	}
	if startPrice == nil || basePrice == nil || basePrice.Sign() < 0 {
		return domain.ErrBadParamInput
	}
	if startPrice.Cmp(basePrice) <= 0 {
		return domain.ErrInvalidAuctionPrices
	}
	if timestampEnd <= timestampStart || timestampEnd-timestampStart < u.minAuctionLength {
		return domain.ErrAuctionTooShort
	}
	if err := u.requireNoLiveAuction(c, key); err != nil {
		return err
	}

	// first auction configuration initializes the invocation cache so the
	// purchase path never races an unsynced project
	if _, err := u.invocationsUC.EnsureSynced(c, key); err != nil {
		return err
	}

	if err := u.repo.Upsert(c, &auction.LinearAuction{
		ProjectKey:     key,
		TimestampStart: timestampStart,
		TimestampEnd:   timestampEnd,
		StartPrice:     domain.FormatWei(startPrice),
		BasePrice:      domain.FormatWei(basePrice),
	}); err != nil {
		c.WithField("err", err).Error("repo.Upsert failed")
		return err
	}

	c.WithFields(log.Fields{
		"project":    key.String(),
		"start":      timestampStart,
		"end":        timestampEnd,
		"startPrice": startPrice.String(),
		"basePrice":  basePrice.String(),
	}).Info("linear auction configured")
	return nil
}

func (u *linearUseCase) ResetAuctionDetails(c bCtx.Ctx, sender domain.Address, key domain.ProjectKey) error {
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

	c.WithField("project", key.String()).Info("linear auction reset")
	return nil
}

func (u *linearUseCase) GetAuction(c bCtx.Ctx, key domain.ProjectKey) (*auction.LinearAuction, error) {
	a, err := u.repo.FindOne(c, key)
	if err == domain.ErrNotFound {
		return nil, domain.ErrAuctionNotConfigured
	} else if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	}
	return a, nil
}

func (u *linearUseCase) GetPurchasePrice(c bCtx.Ctx, key domain.ProjectKey, at uint64) (*big.Int, error) {
	a, err := u.GetAuction(c, key)
	if err != nil {
		return nil, err
	}
	if at < a.TimestampStart {
		return nil, domain.ErrAuctionNotStarted
	}
	return a.PriceAt(at)
}
