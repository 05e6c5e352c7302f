// Package registry declares the minter-filter registry: the authoritative
// map from (core contract, project) to its one approved minter, and the
// single choke point through which mints reach the core contract.
package registry

import (
	"time"

	bCtx "github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/domain"
)

// Assignment binds a project to its currently approved minter. Existence of
// an assignment is the sole authorization source for minting.
type Assignment struct {
	domain.ProjectKey `bson:"inline"`
	Minter            domain.Address `json:"minter" bson:"minter"`
	UpdatedAt         time.Time      `json:"updatedAt" bson:"updatedAt"`
}

func (a *Assignment) ToId() domain.ProjectKey {
	return a.ProjectKey
}

// ApprovalScope distinguishes globally approved minters from per-core
// approvals.
type ApprovalScope string

const (
	ApprovalScopeGlobal   ApprovalScope = "global"
	ApprovalScopeContract ApprovalScope = "contract"
)

// Approval marks a minter as eligible for assignment. Scope "global" leaves
// CoreContract empty. Revoking an approval is non-retroactive: existing
// assignments keep minting.
type Approval struct {
	Minter       domain.Address `json:"minter" bson:"minter"`
	Scope        ApprovalScope  `json:"scope" bson:"scope"`
	CoreContract domain.Address `json:"coreContract,omitempty" bson:"coreContract,omitempty"`
	MinterType   string         `json:"minterType" bson:"minterType"`
}

// MinterUsage counts how many projects currently point at a minter.
type MinterUsage struct {
	Minter domain.Address `json:"minter" bson:"minter"`
	Count  int64          `json:"count" bson:"count"`
}

// Config is the registry-level configuration singleton. Owner is an
// admin-ACL contract, never a raw EOA, and can be transferred but not
// renounced.
type Config struct {
	Owner        domain.Address `json:"owner" bson:"owner"`
	CoreRegistry domain.Address `json:"coreRegistry" bson:"coreRegistry"`
}

type findAllOptions struct {
	Minter       *domain.Address
	CoreContract *domain.Address
	Offset       *int
	Limit        *int
}

type FindAllOptions func(*findAllOptions)

func WithMinter(minter domain.Address) FindAllOptions {
	return func(o *findAllOptions) {
		m := minter.ToLower()
		o.Minter = &m
	}
}

func WithCoreContract(coreContract domain.Address) FindAllOptions {
	return func(o *findAllOptions) {
		c := coreContract.ToLower()
		o.CoreContract = &c
	}
}

func WithPagination(offset, limit int) FindAllOptions {
	return func(o *findAllOptions) {
		o.Offset = &offset
		o.Limit = &limit
	}
}

func ParseFindAllOptions(opts ...FindAllOptions) findAllOptions {
	res := findAllOptions{}
	for _, opt := range opts {
		opt(&res)
	}
	return res
}

type AssignmentRepo interface {
	FindOne(ctx bCtx.Ctx, id domain.ProjectKey) (*Assignment, error)
	FindAll(ctx bCtx.Ctx, opts ...FindAllOptions) ([]*Assignment, error)
	Count(ctx bCtx.Ctx, opts ...FindAllOptions) (int, error)
	Upsert(ctx bCtx.Ctx, assignment *Assignment) error
	Remove(ctx bCtx.Ctx, id domain.ProjectKey) error
}

type ApprovalRepo interface {
	FindOne(ctx bCtx.Ctx, minter domain.Address, scope ApprovalScope, coreContract domain.Address) (*Approval, error)
	FindAll(ctx bCtx.Ctx, scope ApprovalScope, coreContract domain.Address) ([]*Approval, error)
	Upsert(ctx bCtx.Ctx, approval *Approval) error
	Remove(ctx bCtx.Ctx, minter domain.Address, scope ApprovalScope, coreContract domain.Address) error
}

type UsageRepo interface {
	FindOne(ctx bCtx.Ctx, minter domain.Address) (*MinterUsage, error)
	Increment(ctx bCtx.Ctx, minter domain.Address, delta int64) error
}

type ConfigRepo interface {
	Get(ctx bCtx.Ctx) (*Config, error)
	Upsert(ctx bCtx.Ctx, config *Config) error
}

// UseCase is the registry surface. sender is the authenticated acting
// address; role checks are deferred to the core contract's ACL or the
// registry owner ACL.
type UseCase interface {
	SetMinterForProject(ctx bCtx.Ctx, sender domain.Address, key domain.ProjectKey, minter domain.Address) error
	RemoveMinterForProject(ctx bCtx.Ctx, sender domain.Address, key domain.ProjectKey) error
	RemoveMintersForProjects(ctx bCtx.Ctx, sender domain.Address, keys []domain.ProjectKey) error

	// Mint is the single choke point: it fails unless minter is the
	// currently assigned minter for key, then mints on the core contract.
	// by is the purchasing principal forwarded to the core.
	Mint(ctx bCtx.Ctx, minter, to, by domain.Address, key domain.ProjectKey) (domain.TokenId, error)

	GetMinterForProject(ctx bCtx.Ctx, key domain.ProjectKey) (domain.Address, error)
	ProjectHasMinter(ctx bCtx.Ctx, key domain.ProjectKey) (bool, error)
	GetProjectsForMinter(ctx bCtx.Ctx, minter domain.Address) ([]*Assignment, error)
	NumProjectsUsingMinter(ctx bCtx.Ctx, minter domain.Address) (int, error)

	ApproveMinterGlobally(ctx bCtx.Ctx, sender, minter domain.Address, minterType string) error
	RevokeMinterGlobally(ctx bCtx.Ctx, sender, minter domain.Address) error
	ApproveMinterForContract(ctx bCtx.Ctx, sender, coreContract, minter domain.Address, minterType string) error
	RevokeMinterForContract(ctx bCtx.Ctx, sender, coreContract, minter domain.Address) error
	GetApprovedMinters(ctx bCtx.Ctx, scope ApprovalScope, coreContract domain.Address) ([]*Approval, error)

	IsRegisteredCoreContract(ctx bCtx.Ctx, coreContract domain.Address) (bool, error)
	TransferOwnership(ctx bCtx.Ctx, sender, newOwner domain.Address) error
	UpdateCoreRegistry(ctx bCtx.Ctx, sender, coreRegistry domain.Address) error
}
