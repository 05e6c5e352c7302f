package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/domain"
	coreMocks "github.com/archetype-labs/minter-suite/domain/core/mocks"
	"github.com/archetype-labs/minter-suite/domain/registry"
	registryMocks "github.com/archetype-labs/minter-suite/domain/registry/mocks"
)

var (
	testArtist       = domain.Address("0x1111111111111111111111111111111111111111")
	testAdmin        = domain.Address("0x2222222222222222222222222222222222222222")
	testStranger     = domain.Address("0x3333333333333333333333333333333333333333")
	testMinter       = domain.Address("0x4444444444444444444444444444444444444444")
	testOtherMinter  = domain.Address("0x5555555555555555555555555555555555555555")
	testCore         = domain.Address("0x6666666666666666666666666666666666666666")
	testOwnerACL     = domain.Address("0x7777777777777777777777777777777777777777")
	testRegistryAddr = domain.Address("0x8888888888888888888888888888888888888888")
	testBuyer        = domain.Address("0x9999999999999999999999999999999999999999")
)

type registryUseCaseMocks struct {
	assignmentRepo *registryMocks.AssignmentRepo
	approvalRepo   *registryMocks.ApprovalRepo
	usageRepo      *registryMocks.UsageRepo
	configRepo     *registryMocks.ConfigRepo
	coreContract   *coreMocks.Contract
	coreRegistry   *coreMocks.Registry
}

func newRegistryUseCase(t *testing.T) (registry.UseCase, *registryUseCaseMocks) {
	m := &registryUseCaseMocks{
		assignmentRepo: registryMocks.NewAssignmentRepo(t),
		approvalRepo:   registryMocks.NewApprovalRepo(t),
		usageRepo:      registryMocks.NewUsageRepo(t),
		configRepo:     registryMocks.NewConfigRepo(t),
		coreContract:   coreMocks.NewContract(t),
		coreRegistry:   coreMocks.NewRegistry(t),
	}
	uc := NewRegistryUseCase(&RegistryUseCaseCfg{
		AssignmentRepo:  m.assignmentRepo,
		ApprovalRepo:    m.approvalRepo,
		UsageRepo:       m.usageRepo,
		ConfigRepo:      m.configRepo,
		CoreContract:    m.coreContract,
		CoreRegistry:    m.coreRegistry,
		RegistryAddress: testRegistryAddr,
	})
	return uc, m
}

func TestSetMinterForProject(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	key := domain.NewProjectKey(testCore, 3)

	uc, m := newRegistryUseCase(t)

	m.configRepo.On("Get", mock.Anything).Return(&registry.Config{Owner: testOwnerACL}, nil)
	m.coreContract.On("StartingProjectId", mock.Anything, key.CoreContract).Return(domain.ProjectId(0), nil)
	m.coreContract.On("NextProjectId", mock.Anything, key.CoreContract).Return(domain.ProjectId(10), nil)
	m.coreContract.On("ProjectIdToArtistAddress", mock.Anything, key.CoreContract, key.ProjectId).Return(testArtist, nil)
	m.approvalRepo.On("FindOne", mock.Anything, testMinter, registry.ApprovalScopeGlobal, domain.EmptyAddress).
		Return(&registry.Approval{Minter: testMinter, Scope: registry.ApprovalScopeGlobal}, nil)
	m.assignmentRepo.On("FindOne", mock.Anything, key).Return(nil, domain.ErrNotFound)
	m.assignmentRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(a *registry.Assignment) bool {
		return a.ProjectKey == key && a.Minter.Equals(testMinter)
	})).Return(nil)
	m.usageRepo.On("Increment", mock.Anything, testMinter.ToLower(), int64(1)).Return(nil)

	req.NoError(uc.SetMinterForProject(c, testArtist, key, testMinter))
}

func TestSetMinterForProjectSwapsUsage(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	key := domain.NewProjectKey(testCore, 3)

	uc, m := newRegistryUseCase(t)

	m.configRepo.On("Get", mock.Anything).Return(&registry.Config{Owner: testOwnerACL}, nil)
	m.coreContract.On("StartingProjectId", mock.Anything, key.CoreContract).Return(domain.ProjectId(0), nil)
	m.coreContract.On("NextProjectId", mock.Anything, key.CoreContract).Return(domain.ProjectId(10), nil)
	m.coreContract.On("ProjectIdToArtistAddress", mock.Anything, key.CoreContract, key.ProjectId).Return(testArtist, nil)
	m.approvalRepo.On("FindOne", mock.Anything, testMinter, registry.ApprovalScopeGlobal, domain.EmptyAddress).
		Return(&registry.Approval{Minter: testMinter, Scope: registry.ApprovalScopeGlobal}, nil)
	m.assignmentRepo.On("FindOne", mock.Anything, key).
		Return(&registry.Assignment{ProjectKey: key, Minter: testOtherMinter}, nil)
	m.assignmentRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	m.usageRepo.On("Increment", mock.Anything, testOtherMinter, int64(-1)).Return(nil)
	m.usageRepo.On("Increment", mock.Anything, testMinter.ToLower(), int64(1)).Return(nil)

	req.NoError(uc.SetMinterForProject(c, testArtist, key, testMinter))
}

func TestSetMinterForProjectRejectsUnapproved(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	key := domain.NewProjectKey(testCore, 3)

	uc, m := newRegistryUseCase(t)

	m.configRepo.On("Get", mock.Anything).Return(&registry.Config{Owner: testOwnerACL}, nil)
	m.coreContract.On("StartingProjectId", mock.Anything, key.CoreContract).Return(domain.ProjectId(0), nil)
	m.coreContract.On("NextProjectId", mock.Anything, key.CoreContract).Return(domain.ProjectId(10), nil)
	m.coreContract.On("ProjectIdToArtistAddress", mock.Anything, key.CoreContract, key.ProjectId).Return(testArtist, nil)
	m.approvalRepo.On("FindOne", mock.Anything, testMinter, registry.ApprovalScopeGlobal, domain.EmptyAddress).
		Return(nil, domain.ErrNotFound)
	m.approvalRepo.On("FindOne", mock.Anything, testMinter, registry.ApprovalScopeContract, key.CoreContract).
		Return(nil, domain.ErrNotFound)

	req.ErrorIs(uc.SetMinterForProject(c, testArtist, key, testMinter), domain.ErrMinterNotApproved)
}

func TestSetMinterForProjectRejectsStranger(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	key := domain.NewProjectKey(testCore, 3)

	uc, m := newRegistryUseCase(t)

	m.configRepo.On("Get", mock.Anything).Return(&registry.Config{Owner: testOwnerACL}, nil)
	m.coreContract.On("StartingProjectId", mock.Anything, key.CoreContract).Return(domain.ProjectId(0), nil)
	m.coreContract.On("NextProjectId", mock.Anything, key.CoreContract).Return(domain.ProjectId(10), nil)
	m.coreContract.On("ProjectIdToArtistAddress", mock.Anything, key.CoreContract, key.ProjectId).Return(testArtist, nil)
	m.coreContract.On("AdminACLAllowed", mock.Anything, key.CoreContract, testStranger, testRegistryAddr, mock.Anything).
		Return(false, nil)

	req.ErrorIs(uc.SetMinterForProject(c, testStranger, key, testMinter), domain.ErrNotArtistNorAdmin)
}

func TestSetMinterForProjectRejectsOutOfRangeProject(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	key := domain.NewProjectKey(testCore, 42)

	uc, m := newRegistryUseCase(t)

	m.configRepo.On("Get", mock.Anything).Return(&registry.Config{Owner: testOwnerACL}, nil)
	m.coreContract.On("StartingProjectId", mock.Anything, key.CoreContract).Return(domain.ProjectId(0), nil)
	m.coreContract.On("NextProjectId", mock.Anything, key.CoreContract).Return(domain.ProjectId(10), nil)

	req.ErrorIs(uc.SetMinterForProject(c, testArtist, key, testMinter), domain.ErrProjectIdOutOfRange)
}

func TestMintChokePoint(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	key := domain.NewProjectKey(testCore, 3)

	t.Run("assigned minter mints", func(t *testing.T) {
		uc, m := newRegistryUseCase(t)
		m.assignmentRepo.On("FindOne", mock.Anything, key).
			Return(&registry.Assignment{ProjectKey: key, Minter: testMinter}, nil)
		m.coreContract.On("Mint", mock.Anything, key.CoreContract, testBuyer, key.ProjectId, testBuyer).
			Return(domain.TokenId(3000001), nil)

		tokenId, err := uc.Mint(c, testMinter, testBuyer, testBuyer, key)
		req.NoError(err)
		req.Equal(domain.TokenId(3000001), tokenId)
	})

	t.Run("unassigned minter rejected", func(t *testing.T) {
		uc, m := newRegistryUseCase(t)
		m.assignmentRepo.On("FindOne", mock.Anything, key).
			Return(&registry.Assignment{ProjectKey: key, Minter: testMinter}, nil)

		_, err := uc.Mint(c, testOtherMinter, testBuyer, testBuyer, key)
		req.ErrorIs(err, domain.ErrNotAssignedMinter)
	})

	t.Run("no assignment rejected", func(t *testing.T) {
		uc, m := newRegistryUseCase(t)
		m.assignmentRepo.On("FindOne", mock.Anything, key).Return(nil, domain.ErrNotFound)

		_, err := uc.Mint(c, testMinter, testBuyer, testBuyer, key)
		req.ErrorIs(err, domain.ErrNoMinterAssigned)
	})
}

func TestRevokeMinterGloballyIsNonRetroactive(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	key := domain.NewProjectKey(testCore, 3)

	uc, m := newRegistryUseCase(t)

	m.configRepo.On("Get", mock.Anything).Return(&registry.Config{Owner: testOwnerACL}, nil)
	m.coreContract.On("AdminACLAllowed", mock.Anything, testOwnerACL, testAdmin, testRegistryAddr, mock.Anything).
		Return(true, nil)
	m.approvalRepo.On("Remove", mock.Anything, testMinter, registry.ApprovalScopeGlobal, domain.EmptyAddress).Return(nil)

	req.NoError(uc.RevokeMinterGlobally(c, testAdmin, testMinter))

	// the existing assignment keeps minting after the revocation
	m.assignmentRepo.On("FindOne", mock.Anything, key).
		Return(&registry.Assignment{ProjectKey: key, Minter: testMinter}, nil)
	m.coreContract.On("Mint", mock.Anything, key.CoreContract, testBuyer, key.ProjectId, testBuyer).
		Return(domain.TokenId(3000002), nil)

	_, err := uc.Mint(c, testMinter, testBuyer, testBuyer, key)
	req.NoError(err)
}

func TestTransferOwnership(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	t.Run("renounce disabled", func(t *testing.T) {
		uc, _ := newRegistryUseCase(t)
		req.ErrorIs(uc.TransferOwnership(c, testAdmin, domain.EmptyAddress), domain.ErrRenounceDisabled)
	})

	t.Run("owner acl transfers", func(t *testing.T) {
		uc, m := newRegistryUseCase(t)
		m.configRepo.On("Get", mock.Anything).Return(&registry.Config{Owner: testOwnerACL}, nil)
		m.coreContract.On("AdminACLAllowed", mock.Anything, testOwnerACL, testAdmin, testRegistryAddr, mock.Anything).
			Return(true, nil)
		m.configRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(cfg *registry.Config) bool {
			return cfg.Owner.Equals(testStranger)
		})).Return(nil)

		req.NoError(uc.TransferOwnership(c, testAdmin, testStranger))
	})
}

func TestIsRegisteredCoreContract(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	t.Run("no registry configured passes all", func(t *testing.T) {
		uc, m := newRegistryUseCase(t)
		m.configRepo.On("Get", mock.Anything).Return(&registry.Config{Owner: testOwnerACL}, nil)

		ok, err := uc.IsRegisteredCoreContract(c, testCore)
		req.NoError(err)
		req.True(ok)
	})

	t.Run("registry answers", func(t *testing.T) {
		coreRegistryAddr := domain.Address("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
		uc, m := newRegistryUseCase(t)
		m.configRepo.On("Get", mock.Anything).
			Return(&registry.Config{Owner: testOwnerACL, CoreRegistry: coreRegistryAddr}, nil)
		m.coreRegistry.On("IsRegisteredContract", mock.Anything, coreRegistryAddr, testCore).Return(false, nil)

		ok, err := uc.IsRegisteredCoreContract(c, testCore)
		req.NoError(err)
		req.False(ok)
	})
}
