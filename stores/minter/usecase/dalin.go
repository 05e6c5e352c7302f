package usecase

import (
	"time"

	bCtx "github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/auction"
	"github.com/archetype-labs/minter-suite/domain/minter"
)

// DALinMinter sells along a linear Dutch auction configured per project.
type DALinMinter struct {
	minterBase
	auctionUC auction.LinearUseCase
}

func NewDALinMinter(cfg *MinterBaseCfg, auctionUC auction.LinearUseCase) *DALinMinter {
	return &DALinMinter{
		minterBase: newMinterBase(cfg),
		auctionUC:  auctionUC,
	}
}

func (m *DALinMinter) MinterType() minter.Type {
	return minter.TypeDALin
}

func (m *DALinMinter) MinterVersion() string {
	return "v1.1.0"
}

func (m *DALinMinter) AuctionUseCase() auction.LinearUseCase {
	return m.auctionUC
}

func (m *DALinMinter) Purchase(c bCtx.Ctx, params minter.PurchaseParams) (domain.TokenId, error) {
	return m.purchaseTo(c, params, params.Purchaser)
}

func (m *DALinMinter) PurchaseTo(c bCtx.Ctx, params minter.PurchaseParams) (domain.TokenId, error) {
	return m.purchaseTo(c, params, params.To)
}

func (m *DALinMinter) purchaseTo(c bCtx.Ctx, params minter.PurchaseParams, to domain.Address) (domain.TokenId, error) {
	price, err := m.auctionUC.GetPurchasePrice(c, params.Key, uint64(time.Now().Unix()))
	if err != nil {
		return 0, err
	}
	return m.executePurchase(c, params, to, purchaseSpec{price: price})
}

func (m *DALinMinter) GetPriceInfo(c bCtx.Ctx, key domain.ProjectKey) (*minter.PriceInfo, error) {
	a, err := m.auctionUC.GetAuction(c, key)
	if err == domain.ErrAuctionNotConfigured {
		return unconfiguredPriceInfo(), nil
	} else if err != nil {
		return nil, err
	}

	// before the start this is a soft read of the start price; PriceAt
	// clamps there
	price, err := a.PriceAt(uint64(time.Now().Unix()))
	if err != nil {
		return nil, err
	}
	return nativePriceInfo(price), nil
}
