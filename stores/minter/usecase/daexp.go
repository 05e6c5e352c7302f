package usecase

import (
	"time"

	bCtx "github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/auction"
	"github.com/archetype-labs/minter-suite/domain/minter"
)

// DAExpMinter sells along a half-life based exponential Dutch auction.
type DAExpMinter struct {
	minterBase
	auctionUC auction.ExponentialUseCase
}

func NewDAExpMinter(cfg *MinterBaseCfg, auctionUC auction.ExponentialUseCase) *DAExpMinter {
	return &DAExpMinter{
		minterBase: newMinterBase(cfg),
		auctionUC:  auctionUC,
	}
}

func (m *DAExpMinter) MinterType() minter.Type {
	return minter.TypeDAExp
}

func (m *DAExpMinter) MinterVersion() string {
	return "v1.1.0"
}

func (m *DAExpMinter) AuctionUseCase() auction.ExponentialUseCase {
	return m.auctionUC
}

func (m *DAExpMinter) Purchase(c bCtx.Ctx, params minter.PurchaseParams) (domain.TokenId, error) {
	return m.purchaseTo(c, params, params.Purchaser)
}

func (m *DAExpMinter) PurchaseTo(c bCtx.Ctx, params minter.PurchaseParams) (domain.TokenId, error) {
	return m.purchaseTo(c, params, params.To)
}

func (m *DAExpMinter) purchaseTo(c bCtx.Ctx, params minter.PurchaseParams, to domain.Address) (domain.TokenId, error) {
	price, err := m.auctionUC.GetPurchasePrice(c, params.Key, uint64(time.Now().Unix()))
	if err != nil {
		return 0, err
	}
	return m.executePurchase(c, params, to, purchaseSpec{price: price})
}

func (m *DAExpMinter) GetPriceInfo(c bCtx.Ctx, key domain.ProjectKey) (*minter.PriceInfo, error) {
	a, err := m.auctionUC.GetAuction(c, key)
	if err == domain.ErrAuctionNotConfigured {
		return unconfiguredPriceInfo(), nil
	} else if err != nil {
		return nil, err
	}

	price, err := a.PriceAt(uint64(time.Now().Unix()))
	if err != nil {
		return nil, err
	}
	return nativePriceInfo(price), nil
}
