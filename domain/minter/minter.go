// Package minter declares the purchase surface every minter variant exposes
// to the registry and to off-chain callers.
package minter

import (
	"math/big"

	bCtx "github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/domain"
)

type Type string

const (
	TypeSetPrice      Type = "MinterSetPrice"
	TypeSetPriceERC20 Type = "MinterSetPriceERC20"
	TypeDALin         Type = "MinterDALin"
	TypeDAExp         Type = "MinterDAExp"
	TypeHolder        Type = "MinterHolder"
	TypePolyptych     Type = "MinterPolyptych"
)

// PriceInfo answers getPriceInfo: auctions report their current decayed
// price, unstarted auctions soft-read the start price.
type PriceInfo struct {
	IsConfigured    bool           `json:"isConfigured"`
	PriceWei        string         `json:"tokenPriceInWei"`
	DisplayPrice    string         `json:"displayPrice"`
	CurrencySymbol  string         `json:"currencySymbol"`
	CurrencyAddress domain.Address `json:"currencyAddress"`
}

// PurchaseParams carries one purchase attempt. SentValue plays the role of
// msg.value against the buyer's escrow balance. Vault is optional; when set,
// the purchaser must be its registered delegate and the vault becomes the
// minting principal. The owned-NFT pair is only read by holder-gated
// variants.
type PurchaseParams struct {
	Key             domain.ProjectKey
	Purchaser       domain.Address
	To              domain.Address
	SentValue       *big.Int
	Vault           domain.Address
	OwnedNFTAddress domain.Address
	OwnedNFTTokenId domain.TokenId
}

// FixedPrice is the per-project price configured on set-price minters.
type FixedPrice struct {
	domain.ProjectKey `bson:"inline"`
	PricePerTokenInWei string `json:"pricePerTokenInWei" bson:"pricePerTokenInWei"`
}

func (p *FixedPrice) ToId() domain.ProjectKey {
	return p.ProjectKey
}

type FixedPriceRepo interface {
	FindOne(ctx bCtx.Ctx, id domain.ProjectKey) (*FixedPrice, error)
	Upsert(ctx bCtx.Ctx, price *FixedPrice) error
}

// PolyptychPanel tracks the panel currently open for minting on a polyptych
// project.
type PolyptychPanel struct {
	domain.ProjectKey `bson:"inline"`
	PanelId           uint64 `json:"panelId" bson:"panelId"`
}

// PolyptychSeedMint marks a parent hash seed as consumed for one panel: a
// seed mints at most once per panel.
type PolyptychSeedMint struct {
	domain.ProjectKey `bson:"inline"`
	PanelId           uint64 `json:"panelId" bson:"panelId"`
	HashSeed          string `json:"hashSeed" bson:"hashSeed"`
}

type PolyptychRepo interface {
	FindPanel(ctx bCtx.Ctx, id domain.ProjectKey) (*PolyptychPanel, error)
	UpsertPanel(ctx bCtx.Ctx, panel *PolyptychPanel) error
	// CreateSeedMint fails with domain.ErrConflict when the seed was
	// already consumed for the panel
	CreateSeedMint(ctx bCtx.Ctx, mint *PolyptychSeedMint) error
	FindSeedMint(ctx bCtx.Ctx, id domain.ProjectKey, panelId uint64, hashSeed string) (*PolyptychSeedMint, error)
}

// Minter is the surface the registry and HTTP delivery see. Purchase mints
// to the purchaser; PurchaseTo mints to an arbitrary recipient.
type Minter interface {
	Address() domain.Address
	MinterType() Type
	MinterVersion() string

	Purchase(ctx bCtx.Ctx, params PurchaseParams) (domain.TokenId, error)
	PurchaseTo(ctx bCtx.Ctx, params PurchaseParams) (domain.TokenId, error)

	GetPriceInfo(ctx bCtx.Ctx, key domain.ProjectKey) (*PriceInfo, error)
	ProjectMaxInvocations(ctx bCtx.Ctx, key domain.ProjectKey) (uint64, error)
	ProjectMaxHasBeenInvoked(ctx bCtx.Ctx, key domain.ProjectKey) (bool, error)
}
