package usecase

import (
	"time"

	bCtx "github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/log"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/acl"
	"github.com/archetype-labs/minter-suite/domain/core"
	"github.com/archetype-labs/minter-suite/domain/registry"
)

type RegistryUseCaseCfg struct {
	AssignmentRepo registry.AssignmentRepo
	ApprovalRepo   registry.ApprovalRepo
	UsageRepo      registry.UsageRepo
	ConfigRepo     registry.ConfigRepo
	CoreContract   core.Contract
	CoreRegistry   core.Registry
	// RegistryAddress is the published identity of this registry, forwarded
	// as the administered contract in admin ACL queries
	RegistryAddress domain.Address
}

type registryUseCase struct {
	assignmentRepo  registry.AssignmentRepo
	approvalRepo    registry.ApprovalRepo
	usageRepo       registry.UsageRepo
	configRepo      registry.ConfigRepo
	coreContract    core.Contract
	coreRegistry    core.Registry
	registryAddress domain.Address
}

func NewRegistryUseCase(cfg *RegistryUseCaseCfg) registry.UseCase {
	return &registryUseCase{
		assignmentRepo:  cfg.AssignmentRepo,
		approvalRepo:    cfg.ApprovalRepo,
		usageRepo:       cfg.UsageRepo,
		configRepo:      cfg.ConfigRepo,
		coreContract:    cfg.CoreContract,
		coreRegistry:    cfg.CoreRegistry,
		registryAddress: cfg.RegistryAddress,
	}
}

// requireOwnerACL gates registry-level operations on the owner ACL contract.
func (u *registryUseCase) requireOwnerACL(c bCtx.Ctx, sender domain.Address, selector [4]byte) error {
	cfg, err := u.configRepo.Get(c)
	if err != nil {
		c.WithField("err", err).Error("configRepo.Get failed")
		return err
	}
	allowed, err := u.coreContract.AdminACLAllowed(c, cfg.Owner, sender, u.registryAddress, selector)
	if err != nil {
		c.WithField("err", err).Error("coreContract.AdminACLAllowed failed")
		return err
	}
	if !allowed {
		return domain.ErrNotAdminACL
	}
	return nil
}

// requireCoreAdminACL gates per-contract operations on the core's own ACL.
func (u *registryUseCase) requireCoreAdminACL(c bCtx.Ctx, sender, coreContract domain.Address, selector [4]byte) error {
	allowed, err := u.coreContract.AdminACLAllowed(c, coreContract, sender, u.registryAddress, selector)
	if err != nil {
		c.WithField("err", err).Error("coreContract.AdminACLAllowed failed")
		return err
	}
	if !allowed {
		return domain.ErrNotAdminACL
	}
	return nil
}

// requireArtistOrCoreAdmin authorizes per-project configuration.
func (u *registryUseCase) requireArtistOrCoreAdmin(c bCtx.Ctx, sender domain.Address, key domain.ProjectKey, selector [4]byte) error {
	artist, err := u.coreContract.ProjectIdToArtistAddress(c, key.CoreContract, key.ProjectId)
	if err != nil {
		c.WithField("err", err).Error("coreContract.ProjectIdToArtistAddress failed")
		return err
	}
	if artist.Equals(sender) {
		return nil
	}
	allowed, err := u.coreContract.AdminACLAllowed(c, key.CoreContract, sender, u.registryAddress, selector)
	if err != nil {
		c.WithField("err", err).Error("coreContract.AdminACLAllowed failed")
		return err
	}
	if !allowed {
		return domain.ErrNotArtistNorAdmin
	}
	return nil
}

func (u *registryUseCase) requireRegisteredCore(c bCtx.Ctx, coreContract domain.Address) error {
	registered, err := u.IsRegisteredCoreContract(c, coreContract)
	if err != nil {
		return err
	}
	if !registered {
		return domain.ErrCoreContractNotRegistered
	}
	return nil
}

func (u *registryUseCase) requireValidProjectId(c bCtx.Ctx, key domain.ProjectKey) error {
	starting, err := u.coreContract.StartingProjectId(c, key.CoreContract)
	if err != nil {
		c.WithField("err", err).Error("coreContract.StartingProjectId failed")
		return err
	}
	next, err := u.coreContract.NextProjectId(c, key.CoreContract)
	if err != nil {
		c.WithField("err", err).Error("coreContract.NextProjectId failed")
		return err
	}
	if key.ProjectId < starting || key.ProjectId >= next {
		return domain.ErrProjectIdOutOfRange
	}
	return nil
}

// isApproved reports whether minter may be assigned for coreContract, either
// through a global approval or a per-contract one.
func (u *registryUseCase) isApproved(c bCtx.Ctx, minter, coreContract domain.Address) (bool, error) {
	if _, err := u.approvalRepo.FindOne(c, minter, registry.ApprovalScopeGlobal, domain.EmptyAddress); err == nil {
		return true, nil
	} else if err != domain.ErrNotFound {
		c.WithField("err", err).Error("approvalRepo.FindOne failed")
		return false, err
	}
	if _, err := u.approvalRepo.FindOne(c, minter, registry.ApprovalScopeContract, coreContract); err == nil {
		return true, nil
	} else if err != domain.ErrNotFound {
		c.WithField("err", err).Error("approvalRepo.FindOne failed")
		return false, err
	}
	return false, nil
}

func (u *registryUseCase) SetMinterForProject(c bCtx.Ctx, sender domain.Address, key domain.ProjectKey, minter domain.Address) error {
	if err := u.requireRegisteredCore(c, key.CoreContract); err != nil {
		return err
	}
	if err := u.requireValidProjectId(c, key); err != nil {
		return err
	}
	if err := u.requireArtistOrCoreAdmin(c, sender, key, acl.SelectorSetMinterForProject); err != nil {
		return err
	}

	approved, err := u.isApproved(c, minter, key.CoreContract)
	if err != nil {
		return err
	}
	if !approved {
		return domain.ErrMinterNotApproved
	}

	prev, err := u.assignmentRepo.FindOne(c, key)
	if err != nil && err != domain.ErrNotFound {
		c.WithField("err", err).Error("assignmentRepo.FindOne failed")
		return err
	}

	minter = minter.ToLower()
	if err := u.assignmentRepo.Upsert(c, &registry.Assignment{
		ProjectKey: key,
		Minter:     minter,
		UpdatedAt:  time.Now(),
	}); err != nil {
		c.WithField("err", err).Error("assignmentRepo.Upsert failed")
		return err
	}

	if prev != nil && prev.Minter.Equals(minter) {
		return nil
	}
	if prev != nil {
		if err := u.usageRepo.Increment(c, prev.Minter, -1); err != nil {
			c.WithField("err", err).Error("usageRepo.Increment failed")
			return err
		}
	}
	if err := u.usageRepo.Increment(c, minter, 1); err != nil {
		c.WithField("err", err).Error("usageRepo.Increment failed")
		return err
	}

	c.WithFields(log.Fields{
		"project": key.String(),
		"minter":  minter,
	}).Info("minter assigned for project")
	return nil
}

func (u *registryUseCase) RemoveMinterForProject(c bCtx.Ctx, sender domain.Address, key domain.ProjectKey) error {
	if err := u.requireArtistOrCoreAdmin(c, sender, key, acl.SelectorRemoveMinterForProject); err != nil {
		return err
	}
	return u.removeMinter(c, key)
}

func (u *registryUseCase) RemoveMintersForProjects(c bCtx.Ctx, sender domain.Address, keys []domain.ProjectKey) error {
	// authorize each project independently before mutating anything, so a
	// mixed batch fails closed
	for _, key := range keys {
		if err := u.requireArtistOrCoreAdmin(c, sender, key, acl.SelectorRemoveMintersForProjects); err != nil {
			return err
		}
	}
	for _, key := range keys {
		if err := u.removeMinter(c, key); err != nil {
			return err
		}
	}
	return nil
}

func (u *registryUseCase) removeMinter(c bCtx.Ctx, key domain.ProjectKey) error {
	prev, err := u.assignmentRepo.FindOne(c, key)
	if err == domain.ErrNotFound {
		return domain.ErrNoMinterAssigned
	} else if err != nil {
		c.WithField("err", err).Error("assignmentRepo.FindOne failed")
		return err
	}

	if err := u.assignmentRepo.Remove(c, key); err != nil {
		c.WithField("err", err).Error("assignmentRepo.Remove failed")
		return err
	}
	if err := u.usageRepo.Increment(c, prev.Minter, -1); err != nil {
		c.WithField("err", err).Error("usageRepo.Increment failed")
		return err
	}

	c.WithField("project", key.String()).Info("minter removed for project")
	return nil
}

func (u *registryUseCase) Mint(c bCtx.Ctx, minter, to, by domain.Address, key domain.ProjectKey) (domain.TokenId, error) {
	assignment, err := u.assignmentRepo.FindOne(c, key)
	if err == domain.ErrNotFound {
		return 0, domain.ErrNoMinterAssigned
	} else if err != nil {
		c.WithField("err", err).Error("assignmentRepo.FindOne failed")
		return 0, err
	}
	if !assignment.Minter.Equals(minter) {
		return 0, domain.ErrNotAssignedMinter
	}

	tokenId, err := u.coreContract.Mint(c, key.CoreContract, to, key.ProjectId, by)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"project": key.String(),
		}).Error("coreContract.Mint failed")
		return 0, err
	}
	return tokenId, nil
}

func (u *registryUseCase) GetMinterForProject(c bCtx.Ctx, key domain.ProjectKey) (domain.Address, error) {
	assignment, err := u.assignmentRepo.FindOne(c, key)
	if err == domain.ErrNotFound {
		return "", domain.ErrNoMinterAssigned
	} else if err != nil {
		c.WithField("err", err).Error("assignmentRepo.FindOne failed")
		return "", err
	}
	return assignment.Minter, nil
}

func (u *registryUseCase) ProjectHasMinter(c bCtx.Ctx, key domain.ProjectKey) (bool, error) {
	if _, err := u.assignmentRepo.FindOne(c, key); err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		c.WithField("err", err).Error("assignmentRepo.FindOne failed")
		return false, err
	}
	return true, nil
}

func (u *registryUseCase) GetProjectsForMinter(c bCtx.Ctx, minter domain.Address) ([]*registry.Assignment, error) {
	return u.assignmentRepo.FindAll(c, registry.WithMinter(minter))
}

func (u *registryUseCase) NumProjectsUsingMinter(c bCtx.Ctx, minter domain.Address) (int, error) {
	usage, err := u.usageRepo.FindOne(c, minter)
	if err == domain.ErrNotFound {
		return 0, nil
	} else if err != nil {
		c.WithField("err", err).Error("usageRepo.FindOne failed")
		return 0, err
	}
	return int(usage.Count), nil
}

func (u *registryUseCase) ApproveMinterGlobally(c bCtx.Ctx, sender, minter domain.Address, minterType string) error {
	if err := u.requireOwnerACL(c, sender, acl.SelectorApproveMinterGlobally); err != nil {
		return err
	}
	return u.approvalRepo.Upsert(c, &registry.Approval{
		Minter:     minter,
		Scope:      registry.ApprovalScopeGlobal,
		MinterType: minterType,
	})
}

// RevokeMinterGlobally is non-retroactive: projects already assigned to the
// minter keep minting until individually reassigned.
func (u *registryUseCase) RevokeMinterGlobally(c bCtx.Ctx, sender, minter domain.Address) error {
	if err := u.requireOwnerACL(c, sender, acl.SelectorRevokeMinterGlobally); err != nil {
		return err
	}
	if err := u.approvalRepo.Remove(c, minter, registry.ApprovalScopeGlobal, domain.EmptyAddress); err == domain.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		return err
	}
	return nil
}

func (u *registryUseCase) ApproveMinterForContract(c bCtx.Ctx, sender, coreContract, minter domain.Address, minterType string) error {
	if err := u.requireCoreAdminACL(c, sender, coreContract, acl.SelectorApproveMinterForContract); err != nil {
		return err
	}
	return u.approvalRepo.Upsert(c, &registry.Approval{
		Minter:       minter,
		Scope:        registry.ApprovalScopeContract,
		CoreContract: coreContract,
		MinterType:   minterType,
	})
}

func (u *registryUseCase) RevokeMinterForContract(c bCtx.Ctx, sender, coreContract, minter domain.Address) error {
	if err := u.requireCoreAdminACL(c, sender, coreContract, acl.SelectorRevokeMinterForContract); err != nil {
		return err
	}
	if err := u.approvalRepo.Remove(c, minter, registry.ApprovalScopeContract, coreContract); err == domain.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		return err
	}
	return nil
}

func (u *registryUseCase) GetApprovedMinters(c bCtx.Ctx, scope registry.ApprovalScope, coreContract domain.Address) ([]*registry.Approval, error) {
	return u.approvalRepo.FindAll(c, scope, coreContract)
}

func (u *registryUseCase) IsRegisteredCoreContract(c bCtx.Ctx, coreContract domain.Address) (bool, error) {
	cfg, err := u.configRepo.Get(c)
	if err != nil {
		c.WithField("err", err).Error("configRepo.Get failed")
		return false, err
	}
	if cfg.CoreRegistry.IsEmpty() {
		// no engine registry configured, single-core deployment
		return true, nil
	}
	registered, err := u.coreRegistry.IsRegisteredContract(c, cfg.CoreRegistry, coreContract)
	if err != nil {
		c.WithField("err", err).Error("coreRegistry.IsRegisteredContract failed")
		return false, err
	}
	return registered, nil
}

func (u *registryUseCase) TransferOwnership(c bCtx.Ctx, sender, newOwner domain.Address) error {
	if newOwner.IsEmpty() {
		return domain.ErrRenounceDisabled
	}
	if err := u.requireOwnerACL(c, sender, acl.SelectorTransferOwnership); err != nil {
		return err
	}

	cfg, err := u.configRepo.Get(c)
	if err != nil {
		c.WithField("err", err).Error("configRepo.Get failed")
		return err
	}
	cfg.Owner = newOwner.ToLower()
	if err := u.configRepo.Upsert(c, cfg); err != nil {
		c.WithField("err", err).Error("configRepo.Upsert failed")
		return err
	}

	c.WithField("owner", cfg.Owner).Info("registry ownership transferred")
	return nil
}

func (u *registryUseCase) UpdateCoreRegistry(c bCtx.Ctx, sender, coreRegistry domain.Address) error {
	if err := u.requireOwnerACL(c, sender, acl.SelectorUpdateCoreRegistry); err != nil {
		return err
	}

	cfg, err := u.configRepo.Get(c)
	if err != nil {
		c.WithField("err", err).Error("configRepo.Get failed")
		return err
	}
	cfg.CoreRegistry = coreRegistry.ToLower()
	if err := u.configRepo.Upsert(c, cfg); err != nil {
		c.WithField("err", err).Error("configRepo.Upsert failed")
		return err
	}

	c.WithField("coreRegistry", cfg.CoreRegistry).Info("core registry updated")
	return nil
}
