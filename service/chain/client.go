package chain

import (
	"crypto/ecdsa"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	bCtx "github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/log"
)

var ErrUnsupportedChain = errors.New("unsupported chain")

type ClientCfg struct {
	RpcUrls map[int32]string
	// SignerKey is the hex private key of the wallet submitting mint and
	// transferFrom transactions
	SignerKey string
}

type Client interface {
	Call(bCtx.Ctx, int32, common.Address, *big.Int, abi.ABI, string, ...interface{}) ([]interface{}, error)
	// RawCall returns the raw return data without unpacking, for callers
	// that select the decode shape from the data itself
	RawCall(bCtx.Ctx, int32, common.Address, abi.ABI, string, ...interface{}) ([]byte, error)
	// Transact submits a state-changing call from the configured signer and
	// waits for it to be mined
	Transact(bCtx.Ctx, int32, common.Address, abi.ABI, string, ...interface{}) (*types.Receipt, error)
	// SignerAddress is the sender address of Transact
	SignerAddress() common.Address
}

type clientImpl struct {
	clients    map[int32]*ethclient.Client
	signerKey  *ecdsa.PrivateKey
	signerAddr common.Address
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var (
		anyerr error
	)
	clients := make(map[int32]*ethclient.Client)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		clients[chainId] = client
	}
	im := &clientImpl{clients: clients}
	if cfg.SignerKey != "" {
		key, err := crypto.HexToECDSA(cfg.SignerKey)
		if err != nil {
			ctx.WithField("err", err).Error("failed to parse signer key")
			return nil, err
		}
		im.signerKey = key
		im.signerAddr = crypto.PubkeyToAddress(key.PublicKey)
	}
	return im, anyerr
}

func (c *clientImpl) SignerAddress() common.Address {
	return c.signerAddr
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId int32, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	res, err := c.rawCall(ctx, chainId, addr, blk, _abi, method, params...)
	if err != nil {
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) RawCall(ctx bCtx.Ctx, chainId int32, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]byte, error) {
	return c.rawCall(ctx, chainId, addr, nil, _abi, method, params...)
}

func (c *clientImpl) rawCall(ctx bCtx.Ctx, chainId int32, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]byte, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	return res, nil
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, chainId int32, addr common.Address, _abi abi.ABI, method string, params ...interface{}) (*types.Receipt, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}
	if c.signerKey == nil {
		return nil, errors.New("no signer key configured")
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}

	nonce, err := client.PendingNonceAt(ctx, c.signerAddr)
	if err != nil {
		ctx.WithField("err", err).Error("client.PendingNonceAt failed")
		return nil, err
	}
	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.SuggestGasPrice failed")
		return nil, err
	}
	gasLimit, err := client.EstimateGas(ctx, ethereum.CallMsg{
		From: c.signerAddr,
		To:   &addr,
		Data: data,
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("client.EstimateGas failed")
		return nil, err
	}

	tx := types.NewTransaction(nonce, addr, big.NewInt(0), gasLimit, gasPrice, data)
	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(big.NewInt(int64(chainId))), c.signerKey)
	if err != nil {
		ctx.WithField("err", err).Error("types.SignTx failed")
		return nil, err
	}
	if err := client.SendTransaction(ctx, signedTx); err != nil {
		ctx.WithField("err", err).Error("client.SendTransaction failed")
		return nil, err
	}

	receipt, err := bind.WaitMined(ctx, client, signedTx)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"txHash": signedTx.Hash().Hex(),
		}).Error("bind.WaitMined failed")
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		ctx.WithField("txHash", signedTx.Hash().Hex()).Error("transaction reverted")
		return receipt, errors.New("transaction reverted")
	}
	return receipt, nil
}
