package http

import (
	"math/big"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	bCtx "github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/delivery"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/allowlist"
	"github.com/archetype-labs/minter-suite/domain/auction"
	"github.com/archetype-labs/minter-suite/domain/minter"
	"github.com/archetype-labs/minter-suite/middleware"
	authMiddleware "github.com/archetype-labs/minter-suite/stores/auth/delivery/http/middleware"
)

// variant-specific surfaces are discovered by interface assertion so the
// delivery never depends on concrete minter types
type fixedPriceMinter interface {
	UpdatePricePerTokenInWei(ctx bCtx.Ctx, sender domain.Address, key domain.ProjectKey, price *big.Int) error
}

type erc20Minter interface {
	UpdateProjectCurrencyInfo(ctx bCtx.Ctx, sender domain.Address, key domain.ProjectKey, currencyAddress domain.Address, currencySymbol string) error
}

type linearAuctionMinter interface {
	AuctionUseCase() auction.LinearUseCase
}

type exponentialAuctionMinter interface {
	AuctionUseCase() auction.ExponentialUseCase
}

type holderGatedMinter interface {
	AllowlistUseCase() allowlist.UseCase
}

type polyptychPanelMinter interface {
	CurrentPanelId(ctx bCtx.Ctx, key domain.ProjectKey) (uint64, error)
	IncrementPolyptychProjectPanelId(ctx bCtx.Ctx, sender domain.Address, key domain.ProjectKey) (uint64, error)
}

type handler struct {
	minters map[domain.Address]minter.Minter
}

func New(e *echo.Echo, minters []minter.Minter, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{minters: map[domain.Address]minter.Minter{}}
	for _, m := range minters {
		h.minters[m.Address().ToLower()] = m
	}

	e.GET("/minters", h.listMinters, middleware.CacheHttp(time.Minute))

	g := e.Group("/minter/:minterAddress")

	g.GET("", h.getMinter)

	p := g.Group("/projects/:coreContract/:projectId")

	p.GET("/priceInfo", h.getPriceInfo, middleware.CacheHttp(5*time.Second))

	p.GET("/maxInvocations", h.getMaxInvocations)

	p.POST("/purchase", h.purchase, authMiddleware.Auth())

	p.POST("/purchaseTo", h.purchaseTo, authMiddleware.Auth())

	p.PUT("/price", h.updatePrice, authMiddleware.Auth())

	p.PUT("/currency", h.updateCurrency, authMiddleware.Auth())

	p.GET("/auction", h.getAuction)

	p.PUT("/auction", h.setAuctionDetails, authMiddleware.Auth())

	p.DELETE("/auction", h.resetAuctionDetails, authMiddleware.Auth())

	p.GET("/holders", h.getHolders, middleware.CacheHttp(30*time.Second))

	p.GET("/holders/isAllowlisted", h.isAllowlistedNFT)

	p.POST("/holders/allow", h.allowHolders, authMiddleware.Auth())

	p.POST("/holders/remove", h.removeHolders, authMiddleware.Auth())

	p.POST("/holders/allowAndRemove", h.allowAndRemoveHolders, authMiddleware.Auth())

	p.GET("/panel", h.getPanelId)

	p.POST("/panel/increment", h.incrementPanelId, authMiddleware.Auth())
}

func (h *handler) resolveMinter(c echo.Context) (minter.Minter, error) {
	address := domain.Address(c.Param("minterAddress")).ToLower()
	m, ok := h.minters[address]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

func parseProjectKey(c echo.Context) (domain.ProjectKey, error) {
	projectId, err := strconv.ParseUint(c.Param("projectId"), 10, 64)
	if err != nil {
		return domain.ProjectKey{}, domain.ErrBadParamInput
	}
	key := domain.NewProjectKey(domain.Address(c.Param("coreContract")), domain.ProjectId(projectId))
	return key, nil
}

// zipPairs joins the parallel allowlist arrays, rejecting ragged input.
func zipPairs(addresses []domain.Address, projectIds []domain.ProjectId) ([]allowlist.ProjectPair, error) {
	if len(addresses) != len(projectIds) {
		return nil, domain.ErrArrayLengthMismatch
	}
	pairs := make([]allowlist.ProjectPair, 0, len(addresses))
	for i := range addresses {
		pairs = append(pairs, allowlist.ProjectPair{
			OwnedNFTAddress:   addresses[i],
			OwnedNFTProjectId: projectIds[i],
		})
	}
	return pairs, nil
}

type minterInfo struct {
	Address       domain.Address `json:"address"`
	MinterType    minter.Type    `json:"minterType"`
	MinterVersion string         `json:"minterVersion"`
}

func (h *handler) listMinters(c echo.Context) error {
	res := make([]minterInfo, 0, len(h.minters))
	for _, m := range h.minters {
		res = append(res, minterInfo{m.Address(), m.MinterType(), m.MinterVersion()})
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getMinter(c echo.Context) error {
	m, err := h.resolveMinter(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, minterInfo{m.Address(), m.MinterType(), m.MinterVersion()})
}

func (h *handler) getPriceInfo(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	m, err := h.resolveMinter(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	}

	key, err := parseProjectKey(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if info, err := m.GetPriceInfo(ctx, key); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, info)
	}
}

func (h *handler) getMaxInvocations(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	m, err := h.resolveMinter(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	}

	key, err := parseProjectKey(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	maxInvocations, err := m.ProjectMaxInvocations(ctx, key)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	maxHasBeenInvoked, err := m.ProjectMaxHasBeenInvoked(ctx, key)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		MaxInvocations    uint64 `json:"maxInvocations"`
		MaxHasBeenInvoked bool   `json:"maxHasBeenInvoked"`
	}{maxInvocations, maxHasBeenInvoked}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

type purchasePayload struct {
	To              domain.Address `json:"to"`
	SentValue       string         `json:"sentValue"`
	Vault           domain.Address `json:"vault"`
	OwnedNFTAddress domain.Address `json:"ownedNFTAddress"`
	OwnedNFTTokenId domain.TokenId `json:"ownedNFTTokenId"`
}

func (h *handler) bindPurchaseParams(c echo.Context) (minter.PurchaseParams, error) {
	key, err := parseProjectKey(c)
	if err != nil {
		return minter.PurchaseParams{}, err
	}

	p := &purchasePayload{}
	if err := c.Bind(p); err != nil {
		return minter.PurchaseParams{}, domain.ErrBadParamInput
	}

	params := minter.PurchaseParams{
		Key:             key,
		Purchaser:       c.Get("address").(domain.Address),
		To:              p.To,
		Vault:           p.Vault,
		OwnedNFTAddress: p.OwnedNFTAddress,
		OwnedNFTTokenId: p.OwnedNFTTokenId,
	}

	if p.SentValue != "" {
		sentValue, err := domain.ParseWei(p.SentValue)
		if err != nil {
			return minter.PurchaseParams{}, domain.ErrBadParamInput
		}
		params.SentValue = sentValue
	}

	return params, nil
}

func (h *handler) purchase(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	m, err := h.resolveMinter(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	}

	params, err := h.bindPurchaseParams(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if tokenId, err := m.Purchase(ctx, params); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, tokenId)
	}
}

func (h *handler) purchaseTo(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	m, err := h.resolveMinter(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	}

	params, err := h.bindPurchaseParams(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if params.To.IsEmpty() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if tokenId, err := m.PurchaseTo(ctx, params); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, tokenId)
	}
}

func (h *handler) updatePrice(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	m, err := h.resolveMinter(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	}

	fp, ok := m.(fixedPriceMinter)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	key, err := parseProjectKey(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	type payload struct {
		PricePerTokenInWei string `json:"pricePerTokenInWei"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	price, err := domain.ParseWei(p.PricePerTokenInWei)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	sender := c.Get("address").(domain.Address)

	if err := fp.UpdatePricePerTokenInWei(ctx, sender, key, price); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) updateCurrency(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	m, err := h.resolveMinter(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	}

	em, ok := m.(erc20Minter)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	key, err := parseProjectKey(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	type payload struct {
		CurrencyAddress domain.Address `json:"currencyAddress"`
		CurrencySymbol  string         `json:"currencySymbol"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	sender := c.Get("address").(domain.Address)

	if err := em.UpdateProjectCurrencyInfo(ctx, sender, key, p.CurrencyAddress, p.CurrencySymbol); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) getAuction(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	m, err := h.resolveMinter(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	}

	key, err := parseProjectKey(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	switch am := m.(type) {
	case linearAuctionMinter:
		if auc, err := am.AuctionUseCase().GetAuction(ctx, key); err != nil {
			return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
		} else {
			return delivery.MakeJsonResp(c, http.StatusOK, auc)
		}
	case exponentialAuctionMinter:
		if auc, err := am.AuctionUseCase().GetAuction(ctx, key); err != nil {
			return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
		} else {
			return delivery.MakeJsonResp(c, http.StatusOK, auc)
		}
	default:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
}

func (h *handler) setAuctionDetails(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	m, err := h.resolveMinter(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	}

	key, err := parseProjectKey(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	type payload struct {
		TimestampStart            uint64 `json:"timestampStart"`
		TimestampEnd              uint64 `json:"timestampEnd"`
		PriceDecayHalfLifeSeconds uint64 `json:"priceDecayHalfLifeSeconds"`
		StartPrice                string `json:"startPrice"`
		BasePrice                 string `json:"basePrice"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	startPrice, err := domain.ParseWei(p.StartPrice)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	basePrice, err := domain.ParseWei(p.BasePrice)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	sender := c.Get("address").(domain.Address)

	switch am := m.(type) {
	case linearAuctionMinter:
		err = am.AuctionUseCase().SetAuctionDetails(ctx, sender, key, p.TimestampStart, p.TimestampEnd, startPrice, basePrice)
	case exponentialAuctionMinter:
		err = am.AuctionUseCase().SetAuctionDetails(ctx, sender, key, p.TimestampStart, p.PriceDecayHalfLifeSeconds, startPrice, basePrice)
	default:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) resetAuctionDetails(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	m, err := h.resolveMinter(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	}

	key, err := parseProjectKey(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	sender := c.Get("address").(domain.Address)

	switch am := m.(type) {
	case linearAuctionMinter:
		err = am.AuctionUseCase().ResetAuctionDetails(ctx, sender, key)
	case exponentialAuctionMinter:
		err = am.AuctionUseCase().ResetAuctionDetails(ctx, sender, key)
	default:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) getHolders(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	m, err := h.resolveMinter(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	}

	hm, ok := m.(holderGatedMinter)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	key, err := parseProjectKey(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if entries, err := hm.AllowlistUseCase().GetHoldersOfProjects(ctx, key); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, entries)
	}
}

func (h *handler) isAllowlistedNFT(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	m, err := h.resolveMinter(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	}

	hm, ok := m.(holderGatedMinter)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	key, err := parseProjectKey(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	type params struct {
		OwnedNFTAddress domain.Address `query:"ownedNFTAddress"`
		OwnedNFTTokenId domain.TokenId `query:"ownedNFTTokenId"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if allowed, err := hm.AllowlistUseCase().IsAllowlistedNFT(ctx, key, p.OwnedNFTAddress, p.OwnedNFTTokenId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, allowed)
	}
}

type holdersPayload struct {
	OwnedNFTAddresses        []domain.Address   `json:"ownedNFTAddresses"`
	OwnedNFTProjectIds       []domain.ProjectId `json:"ownedNFTProjectIds"`
	RemoveOwnedNFTAddresses  []domain.Address   `json:"removeOwnedNFTAddresses"`
	RemoveOwnedNFTProjectIds []domain.ProjectId `json:"removeOwnedNFTProjectIds"`
}

func (h *handler) allowHolders(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	hm, key, p, err := h.bindHoldersRequest(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	pairs, err := zipPairs(p.OwnedNFTAddresses, p.OwnedNFTProjectIds)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	sender := c.Get("address").(domain.Address)

	if err := hm.AllowlistUseCase().AllowHoldersOfProjects(ctx, sender, key, pairs); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) removeHolders(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	hm, key, p, err := h.bindHoldersRequest(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	pairs, err := zipPairs(p.OwnedNFTAddresses, p.OwnedNFTProjectIds)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	sender := c.Get("address").(domain.Address)

	if err := hm.AllowlistUseCase().RemoveHoldersOfProjects(ctx, sender, key, pairs); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) allowAndRemoveHolders(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	hm, key, p, err := h.bindHoldersRequest(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	add, err := zipPairs(p.OwnedNFTAddresses, p.OwnedNFTProjectIds)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	remove, err := zipPairs(p.RemoveOwnedNFTAddresses, p.RemoveOwnedNFTProjectIds)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	sender := c.Get("address").(domain.Address)

	if err := hm.AllowlistUseCase().AllowAndRemoveHoldersOfProjects(ctx, sender, key, add, remove); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) bindHoldersRequest(c echo.Context) (holderGatedMinter, domain.ProjectKey, *holdersPayload, error) {
	m, err := h.resolveMinter(c)
	if err != nil {
		return nil, domain.ProjectKey{}, nil, err
	}

	hm, ok := m.(holderGatedMinter)
	if !ok {
		return nil, domain.ProjectKey{}, nil, domain.ErrBadParamInput
	}

	key, err := parseProjectKey(c)
	if err != nil {
		return nil, domain.ProjectKey{}, nil, err
	}

	p := &holdersPayload{}
	if err := c.Bind(p); err != nil {
		return nil, domain.ProjectKey{}, nil, domain.ErrBadParamInput
	}

	return hm, key, p, nil
}

func (h *handler) getPanelId(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	m, err := h.resolveMinter(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	}

	pm, ok := m.(polyptychPanelMinter)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	key, err := parseProjectKey(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if panelId, err := pm.CurrentPanelId(ctx, key); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, panelId)
	}
}

func (h *handler) incrementPanelId(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	m, err := h.resolveMinter(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	}

	pm, ok := m.(polyptychPanelMinter)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	key, err := parseProjectKey(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	sender := c.Get("address").(domain.Address)

	if panelId, err := pm.IncrementPolyptychProjectPanelId(ctx, sender, key); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, panelId)
	}
}
