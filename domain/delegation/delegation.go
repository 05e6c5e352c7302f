// Package delegation abstracts the vault/delegate indirection: a vault owner
// can authorize a hot wallet to mint on its behalf without moving the
// underlying asset. The eligibility source is an external registry and is
// swappable.
package delegation

import (
	bCtx "github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/domain"
)

type Registry interface {
	// CheckDelegateForToken reports whether delegate may act for vault on
	// the specific token. Token-level delegation transitively implies
	// contract- and wallet-level delegation.
	CheckDelegateForToken(ctx bCtx.Ctx, delegate, vault, contract domain.Address, tokenId domain.TokenId) (bool, error)
}
