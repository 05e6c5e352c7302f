// Package auction declares the Dutch-auction pricing state machines: linear
// interpolation between two timestamps, and half-life based exponential
// decay computed with integer shifts so the price path is deterministic.
package auction

import (
	"math/big"

	bCtx "github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/domain"
)

// LinearAuction interpolates from StartPrice at TimestampStart down to
// BasePrice at TimestampEnd and stays clamped at BasePrice afterwards.
// Prices are stored as base-10 wei strings.
type LinearAuction struct {
	domain.ProjectKey `bson:"inline"`
	TimestampStart    uint64 `json:"timestampStart" bson:"timestampStart"`
	TimestampEnd      uint64 `json:"timestampEnd" bson:"timestampEnd"`
	StartPrice        string `json:"startPrice" bson:"startPrice"`
	BasePrice         string `json:"basePrice" bson:"basePrice"`
}

func (a *LinearAuction) ToId() domain.ProjectKey {
	return a.ProjectKey
}

// PriceAt returns the auction price at unix time t. Callers decide how to
// treat t < TimestampStart; the math clamps to StartPrice there.
func (a *LinearAuction) PriceAt(t uint64) (*big.Int, error) {
	startPrice, err := domain.ParseWei(a.StartPrice)
	if err != nil {
		return nil, err
	}
	basePrice, err := domain.ParseWei(a.BasePrice)
	if err != nil {
		return nil, err
	}
	if t <= a.TimestampStart {
		return startPrice, nil
	}
	if t >= a.TimestampEnd {
		return basePrice, nil
	}
	elapsed := new(big.Int).SetUint64(t - a.TimestampStart)
	duration := new(big.Int).SetUint64(a.TimestampEnd - a.TimestampStart)
	drop := new(big.Int).Sub(startPrice, basePrice)
	drop.Mul(drop, elapsed)
	drop.Div(drop, duration)
	return new(big.Int).Sub(startPrice, drop), nil
}

// ExponentialAuction decays from StartPrice toward BasePrice, halving the
// premium every PriceDecayHalfLifeSeconds.
type ExponentialAuction struct {
	domain.ProjectKey         `bson:"inline"`
	TimestampStart            uint64 `json:"timestampStart" bson:"timestampStart"`
	PriceDecayHalfLifeSeconds uint64 `json:"priceDecayHalfLifeSeconds" bson:"priceDecayHalfLifeSeconds"`
	StartPrice                string `json:"startPrice" bson:"startPrice"`
	BasePrice                 string `json:"basePrice" bson:"basePrice"`
}

func (a *ExponentialAuction) ToId() domain.ProjectKey {
	return a.ProjectKey
}

// PriceAt computes basePrice + (startPrice-basePrice) * 2^(-elapsed/halfLife)
// as an integer right shift by whole half-lives with a linear interpolation
// for the partial half-life remainder. Once the shift exceeds the premium's
// bit length the premium is zero and the price clamps to BasePrice, which
// also bounds the representable exponent for very long elapsed times.
func (a *ExponentialAuction) PriceAt(t uint64) (*big.Int, error) {
	startPrice, err := domain.ParseWei(a.StartPrice)
	if err != nil {
		return nil, err
	}
	basePrice, err := domain.ParseWei(a.BasePrice)
	if err != nil {
		return nil, err
	}
	if t <= a.TimestampStart || a.PriceDecayHalfLifeSeconds == 0 {
		return startPrice, nil
	}
	elapsed := t - a.TimestampStart
	wholeHalfLives := elapsed / a.PriceDecayHalfLifeSeconds
	remainder := elapsed % a.PriceDecayHalfLifeSeconds

	premium := new(big.Int).Sub(startPrice, basePrice)
	if wholeHalfLives >= uint64(premium.BitLen()) {
		return basePrice, nil
	}
	premium.Rsh(premium, uint(wholeHalfLives))

	// linear interpolation toward the next halving for the partial
	// half-life elapsed
	interp := new(big.Int).Set(premium)
	interp.Mul(interp, new(big.Int).SetUint64(remainder))
	interp.Div(interp, new(big.Int).SetUint64(a.PriceDecayHalfLifeSeconds))
	interp.Div(interp, domain.Big2)
	premium.Sub(premium, interp)

	return premium.Add(premium, basePrice), nil
}

type LinearRepo interface {
	FindOne(ctx bCtx.Ctx, id domain.ProjectKey) (*LinearAuction, error)
	Upsert(ctx bCtx.Ctx, auction *LinearAuction) error
	Remove(ctx bCtx.Ctx, id domain.ProjectKey) error
}

type ExponentialRepo interface {
	FindOne(ctx bCtx.Ctx, id domain.ProjectKey) (*ExponentialAuction, error)
	Upsert(ctx bCtx.Ctx, auction *ExponentialAuction) error
	Remove(ctx bCtx.Ctx, id domain.ProjectKey) error
}

type LinearUseCase interface {
	// SetAuctionDetails is artist-only and refuses to replace a live
	// auction whose cap has not been reached.
	SetAuctionDetails(ctx bCtx.Ctx, sender domain.Address, key domain.ProjectKey, timestampStart, timestampEnd uint64, startPrice, basePrice *big.Int) error
	// ResetAuctionDetails is the core-admin emergency stop: it zeroes the
	// auction and halts purchasing until reconfigured.
	ResetAuctionDetails(ctx bCtx.Ctx, sender domain.Address, key domain.ProjectKey) error
	GetAuction(ctx bCtx.Ctx, key domain.ProjectKey) (*LinearAuction, error)
	// GetPurchasePrice fails before the auction starts; view reads use
	// GetAuction and PriceAt directly.
	GetPurchasePrice(ctx bCtx.Ctx, key domain.ProjectKey, at uint64) (*big.Int, error)
}

type ExponentialUseCase interface {
	SetAuctionDetails(ctx bCtx.Ctx, sender domain.Address, key domain.ProjectKey, timestampStart, priceDecayHalfLifeSeconds uint64, startPrice, basePrice *big.Int) error
	ResetAuctionDetails(ctx bCtx.Ctx, sender domain.Address, key domain.ProjectKey) error
	GetAuction(ctx bCtx.Ctx, key domain.ProjectKey) (*ExponentialAuction, error)
	GetPurchasePrice(ctx bCtx.Ctx, key domain.ProjectKey, at uint64) (*big.Int, error)
}
