// Package invocations declares the per-project max-invocations cache. The
// cache is advisory for gas/latency only: the core contract independently
// re-enforces its own cap on every mint, so a stale-low cache can only
// reject a purchase early, never allow over-minting.
package invocations

import (
	"time"

	bCtx "github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/domain"
)

// State is the locally cached invocation bookkeeping for one project.
// MaxInvocations == 0 with Configured == false means unconfigured; the core
// cap still applies.
type State struct {
	domain.ProjectKey `bson:"inline"`
	Configured        bool      `json:"configured" bson:"configured"`
	Invocations       uint64    `json:"invocations" bson:"invocations"`
	MaxInvocations    uint64    `json:"maxInvocations" bson:"maxInvocations"`
	MaxHasBeenInvoked bool      `json:"maxHasBeenInvoked" bson:"maxHasBeenInvoked"`
	UpdatedAt         time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (s *State) ToId() domain.ProjectKey {
	return s.ProjectKey
}

type Repo interface {
	// FindOne returns domain.ErrNotFound when the project was never synced
	FindOne(ctx bCtx.Ctx, id domain.ProjectKey) (*State, error)
	Upsert(ctx bCtx.Ctx, state *State) error
}

type UseCase interface {
	// SyncProjectMaxInvocationsToCore overwrites the local cache with the
	// authoritative core values, latching MaxHasBeenInvoked when the core
	// cap is already consumed. Artist only.
	SyncProjectMaxInvocationsToCore(ctx bCtx.Ctx, sender domain.Address, key domain.ProjectKey) (*State, error)

	// ManuallyLimitProjectMaxInvocations lets the artist lower the local
	// cap. newMax must not exceed the core max nor undercut invocations
	// already minted; newMax == invocations halts minting immediately.
	ManuallyLimitProjectMaxInvocations(ctx bCtx.Ctx, sender domain.Address, key domain.ProjectKey, newMax uint64) (*State, error)

	// EnsureSynced lazily initializes the cache from the core on first
	// price or auction configuration.
	EnsureSynced(ctx bCtx.Ctx, key domain.ProjectKey) (*State, error)

	// RequireNotMaxed fails with domain.ErrMaxInvocationsReached when the
	// cached flag is set. An unconfigured cache passes; the core enforces.
	RequireNotMaxed(ctx bCtx.Ctx, key domain.ProjectKey) (*State, error)

	// ValidatePurchaseEffectsInvocations runs immediately after a
	// successful mint: it verifies the minted token carries the expected
	// next invocation ordinal and latches MaxHasBeenInvoked when the cap
	// is hit.
	ValidatePurchaseEffectsInvocations(ctx bCtx.Ctx, key domain.ProjectKey, tokenId domain.TokenId) (*State, error)

	ProjectMaxInvocations(ctx bCtx.Ctx, key domain.ProjectKey) (uint64, error)
	ProjectMaxHasBeenInvoked(ctx bCtx.Ctx, key domain.ProjectKey) (bool, error)
}
