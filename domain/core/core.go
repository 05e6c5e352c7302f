// Package core declares the capability surface this service consumes from
// ledger-side core token contracts. Any contract exposing these entry points
// can be served, flagship and engine deployments alike.
package core

import (
	"math/big"

	bCtx "github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/domain"
)

// HashSeedLength is the byte length of a token hash seed.
const HashSeedLength = 12

type HashSeed [HashSeedLength]byte

func (s HashSeed) IsZero() bool {
	return s == HashSeed{}
}

// ProjectStateData mirrors the authoritative per-project counters held by
// the core contract.
type ProjectStateData struct {
	Invocations        uint64
	MaxInvocations     uint64
	Active             bool
	Paused             bool
	CompletedTimestamp uint64
	Locked             bool
}

// RevenueSplits is the decoded primary revenue split for one price. The
// platform provider pair is only populated for engine cores. Amounts are
// computed core-side so the artist leg always carries the exact rounding
// remainder.
type RevenueSplits struct {
	RenderProviderRevenue   *big.Int
	RenderProviderAddress   domain.Address
	PlatformProviderRevenue *big.Int
	PlatformProviderAddress domain.Address
	ArtistRevenue           *big.Int
	ArtistAddress           domain.Address
	AdditionalPayeeRevenue  *big.Int
	AdditionalPayeeAddress  domain.Address
}

// Sum returns the total value distributed by the split.
func (r *RevenueSplits) Sum() *big.Int {
	sum := new(big.Int)
	for _, leg := range []*big.Int{r.RenderProviderRevenue, r.PlatformProviderRevenue, r.ArtistRevenue, r.AdditionalPayeeRevenue} {
		if leg != nil {
			sum.Add(sum, leg)
		}
	}
	return sum
}

// Contract is the adapter over any core token contract. Every call is keyed
// by the core contract address, matching the ProjectKey sharding model.
type Contract interface {
	ProjectIdToArtistAddress(ctx bCtx.Ctx, coreContract domain.Address, projectId domain.ProjectId) (domain.Address, error)

	// AdminACLAllowed defers the admin decision to the core contract's own
	// ACL: (sender, contract, selector) is forwarded verbatim.
	AdminACLAllowed(ctx bCtx.Ctx, coreContract, sender, contract domain.Address, selector [4]byte) (bool, error)

	ProjectStateData(ctx bCtx.Ctx, coreContract domain.Address, projectId domain.ProjectId) (*ProjectStateData, error)

	// NextProjectId bounds the valid project id range of the core contract.
	NextProjectId(ctx bCtx.Ctx, coreContract domain.Address) (domain.ProjectId, error)
	StartingProjectId(ctx bCtx.Ctx, coreContract domain.Address) (domain.ProjectId, error)

	// Mint calls the core's filtered mint entry point and returns the new
	// token id. The core independently re-enforces its own invocation cap.
	Mint(ctx bCtx.Ctx, coreContract, to domain.Address, projectId domain.ProjectId, by domain.Address) (domain.TokenId, error)

	// PrimaryRevenueSplitsRaw returns the raw return data of the revenue
	// split query, so callers can validate the word count before decoding.
	PrimaryRevenueSplitsRaw(ctx bCtx.Ctx, coreContract domain.Address, projectId domain.ProjectId, price *big.Int) ([]byte, error)

	// PrimaryRevenueSplits decodes the split with the shape selected by
	// isEngine.
	PrimaryRevenueSplits(ctx bCtx.Ctx, coreContract domain.Address, projectId domain.ProjectId, price *big.Int, isEngine bool) (*RevenueSplits, error)

	// TokenHashSeed returns the hash seed assigned to a minted token.
	TokenHashSeed(ctx bCtx.Ctx, coreContract domain.Address, tokenId domain.TokenId) (HashSeed, error)
}

// Registry answers whether a core contract is registered with the engine
// registry. Per-project registry mutations are gated on it. The registry
// address is passed per call because admins can repoint it at runtime.
type Registry interface {
	IsRegisteredContract(ctx bCtx.Ctx, registry, coreContract domain.Address) (bool, error)
}
