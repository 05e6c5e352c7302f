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

type Erc721Contract interface {
	Supports721Interface(ctx bCtx.Ctx, addr domain.Address) (bool, error)
	OwnerOf(ctx bCtx.Ctx, addr domain.Address, tokenId domain.TokenId) (domain.Address, error)
}

type Erc721 struct {
	chainService      chain.Client
	chainId           int32
	abi               ethabi.ABI
	erc721InterfaceId [4]byte
}

func NewErc721(chainService chain.Client, chainId int32) *Erc721 {
	var interfaceId [4]byte
	copy(interfaceId[:], common.Hex2Bytes("80ac58cd"))
	return &Erc721{
		abi:               baseabi.ERC721TokenABI,
		chainService:      chainService,
		chainId:           chainId,
		erc721InterfaceId: interfaceId,
	}
}

func (e *Erc721) Supports721Interface(ctx bCtx.Ctx, addr domain.Address) (bool, error) {
	method := "supportsInterface"
	unpacked, err := e.chainService.Call(ctx, e.chainId, common.HexToAddress(string(addr)), nil, e.abi, method, e.erc721InterfaceId)
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (e *Erc721) OwnerOf(ctx bCtx.Ctx, addr domain.Address, tokenId domain.TokenId) (domain.Address, error) {
	method := "ownerOf"
	unpacked, err := e.chainService.Call(ctx, e.chainId, common.HexToAddress(string(addr)), nil, e.abi, method, new(big.Int).SetUint64(uint64(tokenId)))
	if err != nil {
		return "", err
	}
	return domain.Address(unpacked[0].(common.Address).Hex()).ToLower(), nil
}
