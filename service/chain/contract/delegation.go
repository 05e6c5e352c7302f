package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/archetype-labs/minter-suite/base/abi"
	bCtx "github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/service/chain"
)

// DelegationRegistry adapts the external delegation registry contract.
type DelegationRegistry struct {
	chainService chain.Client
	chainId      int32
	registryAddr common.Address
	abi          ethabi.ABI
}

func NewDelegationRegistry(chainService chain.Client, chainId int32, registryAddr domain.Address) *DelegationRegistry {
	return &DelegationRegistry{
		chainService: chainService,
		chainId:      chainId,
		registryAddr: common.HexToAddress(string(registryAddr)),
		abi:          baseabi.DelegationRegistryABI,
	}
}

func (d *DelegationRegistry) CheckDelegateForToken(ctx bCtx.Ctx, delegate, vault, contract domain.Address, tokenId domain.TokenId) (bool, error) {
	method := "checkDelegateForToken"
	unpacked, err := d.chainService.Call(ctx, d.chainId, d.registryAddr, nil, d.abi, method,
		common.HexToAddress(string(delegate)), common.HexToAddress(string(vault)),
		common.HexToAddress(string(contract)), new(big.Int).SetUint64(uint64(tokenId)))
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}
