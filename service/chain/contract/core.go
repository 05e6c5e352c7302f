package contract

import (
	"errors"
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/archetype-labs/minter-suite/base/abi"
	bCtx "github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/log"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/core"
	"github.com/archetype-labs/minter-suite/service/chain"
)

// Core adapts on-chain core token contracts to the core.Contract surface.
// All methods are keyed by the core contract address, so a single adapter
// serves every core on the chain.
type Core struct {
	chainService chain.Client
	chainId      int32
	abi          ethabi.ABI
	flagshipAbi  ethabi.ABI
	engineAbi    ethabi.ABI
	mintEventId  common.Hash
}

func NewCore(chainService chain.Client, chainId int32) *Core {
	return &Core{
		chainService: chainService,
		chainId:      chainId,
		abi:          baseabi.CoreABI,
		flagshipAbi:  baseabi.CoreSplitsFlagshipABI,
		engineAbi:    baseabi.CoreSplitsEngineABI,
		mintEventId:  baseabi.CoreABI.Events["Mint"].ID,
	}
}

func (c *Core) ProjectIdToArtistAddress(ctx bCtx.Ctx, coreContract domain.Address, projectId domain.ProjectId) (domain.Address, error) {
	method := "projectIdToArtistAddress"
	unpacked, err := c.chainService.Call(ctx, c.chainId, common.HexToAddress(string(coreContract)), nil, c.abi, method, new(big.Int).SetUint64(uint64(projectId)))
	if err != nil {
		return "", err
	}
	return domain.Address(unpacked[0].(common.Address).Hex()).ToLower(), nil
}

func (c *Core) AdminACLAllowed(ctx bCtx.Ctx, coreContract, sender, contract domain.Address, selector [4]byte) (bool, error) {
	method := "adminACLAllowed"
	unpacked, err := c.chainService.Call(ctx, c.chainId, common.HexToAddress(string(coreContract)), nil, c.abi, method,
		common.HexToAddress(string(sender)), common.HexToAddress(string(contract)), selector)
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (c *Core) ProjectStateData(ctx bCtx.Ctx, coreContract domain.Address, projectId domain.ProjectId) (*core.ProjectStateData, error) {
	method := "projectStateData"
	unpacked, err := c.chainService.Call(ctx, c.chainId, common.HexToAddress(string(coreContract)), nil, c.abi, method, new(big.Int).SetUint64(uint64(projectId)))
	if err != nil {
		return nil, err
	}
	return &core.ProjectStateData{
		Invocations:        unpacked[0].(*big.Int).Uint64(),
		MaxInvocations:     unpacked[1].(*big.Int).Uint64(),
		Active:             unpacked[2].(bool),
		Paused:             unpacked[3].(bool),
		CompletedTimestamp: unpacked[4].(*big.Int).Uint64(),
		Locked:             unpacked[5].(bool),
	}, nil
}

func (c *Core) NextProjectId(ctx bCtx.Ctx, coreContract domain.Address) (domain.ProjectId, error) {
	method := "nextProjectId"
	unpacked, err := c.chainService.Call(ctx, c.chainId, common.HexToAddress(string(coreContract)), nil, c.abi, method)
	if err != nil {
		return 0, err
	}
	return domain.ProjectId(unpacked[0].(*big.Int).Uint64()), nil
}

func (c *Core) StartingProjectId(ctx bCtx.Ctx, coreContract domain.Address) (domain.ProjectId, error) {
	method := "startingProjectId"
	unpacked, err := c.chainService.Call(ctx, c.chainId, common.HexToAddress(string(coreContract)), nil, c.abi, method)
	if err != nil {
		return 0, err
	}
	return domain.ProjectId(unpacked[0].(*big.Int).Uint64()), nil
}

func (c *Core) Mint(ctx bCtx.Ctx, coreContract, to domain.Address, projectId domain.ProjectId, by domain.Address) (domain.TokenId, error) {
	method := "mint_Ecf"
	receipt, err := c.chainService.Transact(ctx, c.chainId, common.HexToAddress(string(coreContract)), c.abi, method,
		common.HexToAddress(string(to)), new(big.Int).SetUint64(uint64(projectId)), common.HexToAddress(string(by)))
	if err != nil {
		return 0, err
	}

	coreAddr := common.HexToAddress(string(coreContract))
	for _, l := range receipt.Logs {
		if l.Address != coreAddr || len(l.Topics) != 3 || l.Topics[0] != c.mintEventId {
			continue
		}
		return domain.TokenId(new(big.Int).SetBytes(l.Topics[2].Bytes()).Uint64()), nil
	}
	ctx.WithFields(log.Fields{
		"coreContract": coreContract,
		"projectId":    projectId,
	}).Error("mint receipt carries no mint event")
	return 0, errors.New("mint event not found in receipt")
}

func (c *Core) PrimaryRevenueSplitsRaw(ctx bCtx.Ctx, coreContract domain.Address, projectId domain.ProjectId, price *big.Int) ([]byte, error) {
	method := "getPrimaryRevenueSplits"
	return c.chainService.RawCall(ctx, c.chainId, common.HexToAddress(string(coreContract)), c.flagshipAbi, method,
		new(big.Int).SetUint64(uint64(projectId)), price)
}

func (c *Core) PrimaryRevenueSplits(ctx bCtx.Ctx, coreContract domain.Address, projectId domain.ProjectId, price *big.Int, isEngine bool) (*core.RevenueSplits, error) {
	method := "getPrimaryRevenueSplits"
	_abi := c.flagshipAbi
	if isEngine {
		_abi = c.engineAbi
	}
	unpacked, err := c.chainService.Call(ctx, c.chainId, common.HexToAddress(string(coreContract)), nil, _abi, method,
		new(big.Int).SetUint64(uint64(projectId)), price)
	if err != nil {
		return nil, err
	}

	splits := &core.RevenueSplits{}
	if isEngine {
		splits.RenderProviderRevenue = unpacked[0].(*big.Int)
		splits.RenderProviderAddress = domain.Address(unpacked[1].(common.Address).Hex()).ToLower()
		splits.PlatformProviderRevenue = unpacked[2].(*big.Int)
		splits.PlatformProviderAddress = domain.Address(unpacked[3].(common.Address).Hex()).ToLower()
		splits.ArtistRevenue = unpacked[4].(*big.Int)
		splits.ArtistAddress = domain.Address(unpacked[5].(common.Address).Hex()).ToLower()
		splits.AdditionalPayeeRevenue = unpacked[6].(*big.Int)
		splits.AdditionalPayeeAddress = domain.Address(unpacked[7].(common.Address).Hex()).ToLower()
	} else {
		splits.RenderProviderRevenue = unpacked[0].(*big.Int)
		splits.RenderProviderAddress = domain.Address(unpacked[1].(common.Address).Hex()).ToLower()
		splits.ArtistRevenue = unpacked[2].(*big.Int)
		splits.ArtistAddress = domain.Address(unpacked[3].(common.Address).Hex()).ToLower()
		splits.AdditionalPayeeRevenue = unpacked[4].(*big.Int)
		splits.AdditionalPayeeAddress = domain.Address(unpacked[5].(common.Address).Hex()).ToLower()
	}
	return splits, nil
}

func (c *Core) TokenHashSeed(ctx bCtx.Ctx, coreContract domain.Address, tokenId domain.TokenId) (core.HashSeed, error) {
	method := "tokenIdToHashSeed"
	unpacked, err := c.chainService.Call(ctx, c.chainId, common.HexToAddress(string(coreContract)), nil, c.abi, method, new(big.Int).SetUint64(uint64(tokenId)))
	if err != nil {
		return core.HashSeed{}, err
	}
	return core.HashSeed(unpacked[0].([12]byte)), nil
}

// CoreRegistry adapts the on-chain engine registry.
type CoreRegistry struct {
	chainService chain.Client
	chainId      int32
	abi          ethabi.ABI
}

func NewCoreRegistry(chainService chain.Client, chainId int32) *CoreRegistry {
	return &CoreRegistry{
		chainService: chainService,
		chainId:      chainId,
		abi:          baseabi.CoreRegistryABI,
	}
}

func (r *CoreRegistry) IsRegisteredContract(ctx bCtx.Ctx, registry, coreContract domain.Address) (bool, error) {
	method := "isRegisteredContract"
	unpacked, err := r.chainService.Call(ctx, r.chainId, common.HexToAddress(string(registry)), nil, r.abi, method, common.HexToAddress(string(coreContract)))
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}
