package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/delivery"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/wallet"
	authMiddleware "github.com/archetype-labs/minter-suite/stores/auth/delivery/http/middleware"
)

type handler struct {
	wallet wallet.Service
}

func New(e *echo.Echo, walletSvc wallet.Service, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{walletSvc}

	g := e.Group("/wallet")

	g.GET("/:owner/balance", h.getBalance)

	g.POST("/deposit", h.deposit, authMiddleware.Auth())

	g.POST("/withdraw", h.withdraw, authMiddleware.Auth())

	g.POST("/transfer", h.transfer, authMiddleware.Auth())
}

type amountPayload struct {
	Currency domain.Address `json:"currency"`
	Amount   string         `json:"amount"`
}

func (h *handler) getBalance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	owner := domain.Address(c.Param("owner"))
	currency := domain.Address(c.QueryParam("currency"))
	if currency == "" {
		currency = domain.NativeCurrencyAddress
	}

	if balance, err := h.wallet.BalanceOf(ctx, owner, currency); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, domain.FormatWei(balance))
	}
}

func (h *handler) deposit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	sender := c.Get("address").(domain.Address)

	p := &amountPayload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	amount, err := domain.ParseWei(p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err := h.wallet.Deposit(ctx, sender, p.Currency, amount); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) withdraw(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	sender := c.Get("address").(domain.Address)

	p := &amountPayload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	amount, err := domain.ParseWei(p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err := h.wallet.Withdraw(ctx, sender, p.Currency, amount); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) transfer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	sender := c.Get("address").(domain.Address)

	type payload struct {
		To       domain.Address `json:"to"`
		Currency domain.Address `json:"currency"`
		Amount   string         `json:"amount"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if p.To.IsEmpty() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	amount, err := domain.ParseWei(p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err := h.wallet.Transfer(ctx, sender, p.To, p.Currency, amount); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
