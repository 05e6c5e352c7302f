// Package allowlist declares holder gating: which externally owned NFTs
// qualify their holder to purchase a project. Membership is deliberately not
// consumed on purchase: one held token can mint any number of times.
package allowlist

import (
	bCtx "github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/domain"
)

// Entry marks holders of (OwnedNFTAddress, OwnedNFTProjectId) as eligible to
// purchase the project identified by ProjectKey. The owned project of a
// concrete token is derived from its id, never stored.
type Entry struct {
	domain.ProjectKey `bson:"inline"`
	OwnedNFTAddress   domain.Address   `json:"ownedNFTAddress" bson:"ownedNFTAddress"`
	OwnedNFTProjectId domain.ProjectId `json:"ownedNFTProjectId" bson:"ownedNFTProjectId"`
}

type EntryId struct {
	domain.ProjectKey `bson:"inline"`
	OwnedNFTAddress   domain.Address   `bson:"ownedNFTAddress"`
	OwnedNFTProjectId domain.ProjectId `bson:"ownedNFTProjectId"`
}

func (e *Entry) ToId() EntryId {
	return EntryId{
		ProjectKey:        e.ProjectKey,
		OwnedNFTAddress:   e.OwnedNFTAddress.ToLower(),
		OwnedNFTProjectId: e.OwnedNFTProjectId,
	}
}

type Repo interface {
	FindOne(ctx bCtx.Ctx, id EntryId) (*Entry, error)
	FindAll(ctx bCtx.Ctx, key domain.ProjectKey) ([]*Entry, error)
	Upsert(ctx bCtx.Ctx, entry *Entry) error
	Remove(ctx bCtx.Ctx, id EntryId) error
}

// ProjectPair is one (owned NFT contract, owned project) allowlist operand.
type ProjectPair struct {
	OwnedNFTAddress   domain.Address   `json:"ownedNFTAddress"`
	OwnedNFTProjectId domain.ProjectId `json:"ownedNFTProjectId"`
}

type UseCase interface {
	// AllowHoldersOfProjects and RemoveHoldersOfProjects are artist-only.
	// Adding an existing pair is idempotent; removing an absent pair is a
	// no-op.
	AllowHoldersOfProjects(ctx bCtx.Ctx, sender domain.Address, key domain.ProjectKey, pairs []ProjectPair) error
	RemoveHoldersOfProjects(ctx bCtx.Ctx, sender domain.Address, key domain.ProjectKey, pairs []ProjectPair) error

	// AllowAndRemoveHoldersOfProjects applies adds then removes, so a pair
	// present in both operands ends up removed.
	AllowAndRemoveHoldersOfProjects(ctx bCtx.Ctx, sender domain.Address, key domain.ProjectKey, add, remove []ProjectPair) error

	// IsAllowlistedNFT derives the owned token's project by integer
	// division and checks membership. It intentionally does not consider
	// whether the token has purchased before.
	IsAllowlistedNFT(ctx bCtx.Ctx, key domain.ProjectKey, ownedNFTAddress domain.Address, ownedNFTTokenId domain.TokenId) (bool, error)

	GetHoldersOfProjects(ctx bCtx.Ctx, key domain.ProjectKey) ([]*Entry, error)

	// ValidateNFTOwnership queries the owned NFT contract for the token's
	// current owner.
	ValidateNFTOwnership(ctx bCtx.Ctx, ownedNFTAddress domain.Address, ownedNFTTokenId domain.TokenId, targetOwner domain.Address) error

	// ResolvePrincipal returns the effective minting principal: the vault
	// when one is supplied and sender is its registered delegate for the
	// token, otherwise sender itself.
	ResolvePrincipal(ctx bCtx.Ctx, sender, vault, ownedNFTAddress domain.Address, ownedNFTTokenId domain.TokenId) (domain.Address, error)
}
