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

type Erc20Contract interface {
	BalanceOf(ctx bCtx.Ctx, token, owner domain.Address) (*big.Int, error)
	// Allowance reads the amount owner granted the service's transacting
	// wallet to pull
	Allowance(ctx bCtx.Ctx, token, owner domain.Address) (*big.Int, error)
	// TransferFrom pulls value from `from` to `to` using the service's
	// transacting wallet as spender
	TransferFrom(ctx bCtx.Ctx, token, from, to domain.Address, value *big.Int) error
	Symbol(ctx bCtx.Ctx, token domain.Address) (string, error)
	Decimals(ctx bCtx.Ctx, token domain.Address) (uint8, error)
}

type Erc20 struct {
	chainService chain.Client
	chainId      int32
	abi          ethabi.ABI
}

func NewErc20(chainService chain.Client, chainId int32) *Erc20 {
	return &Erc20{
		abi:          baseabi.ERC20TokenABI,
		chainService: chainService,
		chainId:      chainId,
	}
}

func (e *Erc20) BalanceOf(ctx bCtx.Ctx, token, owner domain.Address) (*big.Int, error) {
	method := "balanceOf"
	unpacked, err := e.chainService.Call(ctx, e.chainId, common.HexToAddress(string(token)), nil, e.abi, method, common.HexToAddress(string(owner)))
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (e *Erc20) Allowance(ctx bCtx.Ctx, token, owner domain.Address) (*big.Int, error) {
	method := "allowance"
	unpacked, err := e.chainService.Call(ctx, e.chainId, common.HexToAddress(string(token)), nil, e.abi, method,
		common.HexToAddress(string(owner)), e.chainService.SignerAddress())
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (e *Erc20) TransferFrom(ctx bCtx.Ctx, token, from, to domain.Address, value *big.Int) error {
	method := "transferFrom"
	_, err := e.chainService.Transact(ctx, e.chainId, common.HexToAddress(string(token)), e.abi, method,
		common.HexToAddress(string(from)), common.HexToAddress(string(to)), value)
	return err
}

func (e *Erc20) Symbol(ctx bCtx.Ctx, token domain.Address) (string, error) {
	method := "symbol"
	unpacked, err := e.chainService.Call(ctx, e.chainId, common.HexToAddress(string(token)), nil, e.abi, method)
	if err != nil {
		return "", err
	}
	return unpacked[0].(string), nil
}

func (e *Erc20) Decimals(ctx bCtx.Ctx, token domain.Address) (uint8, error) {
	method := "decimals"
	unpacked, err := e.chainService.Call(ctx, e.chainId, common.HexToAddress(string(token)), nil, e.abi, method)
	if err != nil {
		return 0, err
	}
	return unpacked[0].(uint8), nil
}
