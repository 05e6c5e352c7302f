// Package splitter declares engine detection and the primary sale funds
// split shared by every minter.
package splitter

import (
	"math/big"
	"time"

	bCtx "github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/domain"
)

// EngineCache records whether a core contract is an engine deployment.
// Engine-ness cannot change post-deploy, so a cached row is immutable for
// the life of the service.
type EngineCache struct {
	CoreContract domain.Address `json:"coreContract" bson:"coreContract"`
	IsEngine     bool           `json:"isEngine" bson:"isEngine"`
	CachedAt     time.Time      `json:"cachedAt" bson:"cachedAt"`
}

type EngineCacheRepo interface {
	FindOne(ctx bCtx.Ctx, coreContract domain.Address) (*EngineCache, error)
	Create(ctx bCtx.Ctx, cache *EngineCache) error
}

// ProjectCurrency configures the ERC-20 a project is priced in. The native
// currency sentinel address is rejected here: ETH-priced projects simply
// leave the currency unconfigured.
type ProjectCurrency struct {
	domain.ProjectKey `bson:"inline"`
	CurrencyAddress   domain.Address `json:"currencyAddress" bson:"currencyAddress"`
	CurrencySymbol    string         `json:"currencySymbol" bson:"currencySymbol"`
}

func (c *ProjectCurrency) ToId() domain.ProjectKey {
	return c.ProjectKey
}

type CurrencyRepo interface {
	FindOne(ctx bCtx.Ctx, id domain.ProjectKey) (*ProjectCurrency, error)
	Upsert(ctx bCtx.Ctx, currency *ProjectCurrency) error
}

// Split is one executed payment leg.
type Split struct {
	To     domain.Address `json:"to"`
	Amount *big.Int       `json:"amount"`
	Role   string         `json:"role"`
}

type UseCase interface {
	// IsEngine returns the cached engine-ness, probing the core's revenue
	// split return shape on first use. 8 words means engine, 6 flagship;
	// anything else is a data-integrity failure.
	IsEngine(ctx bCtx.Ctx, coreContract domain.Address) (bool, error)

	// SplitFundsETH distributes an escrowed native-currency payment:
	// refund to payer first, then the provider/payee legs, artist last with
	// the exact remainder. Any failing leg fails the whole purchase.
	SplitFundsETH(ctx bCtx.Ctx, key domain.ProjectKey, price, sentValue *big.Int, payer domain.Address) ([]Split, error)

	// SplitFundsERC20 mirrors SplitFundsETH with pull-based transferFrom
	// legs in the project's configured ERC-20 currency.
	SplitFundsERC20(ctx bCtx.Ctx, key domain.ProjectKey, price *big.Int, payer domain.Address) ([]Split, error)

	// UpdateProjectCurrencyInfo sets the ERC-20 currency a project is
	// priced in. Artist only.
	UpdateProjectCurrencyInfo(ctx bCtx.Ctx, sender domain.Address, key domain.ProjectKey, currencyAddress domain.Address, currencySymbol string) error

	GetProjectCurrency(ctx bCtx.Ctx, key domain.ProjectKey) (*ProjectCurrency, error)
}
