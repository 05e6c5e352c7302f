// Package wallet declares the escrow ledger purchases spend from. Buyers
// deposit native currency ahead of time; a purchase debits the declared sent
// value atomically and pushes the split legs as ledger credits, so a failed
// leg can never leave a partial payment behind.
package wallet

import (
	"math/big"

	bCtx "github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/domain"
)

// Balance is one (owner, currency) ledger row. Currency is the native
// sentinel for ETH. Amounts are stored as Decimal128 so debits can be
// floor-guarded atomically.
type Balance struct {
	Owner    domain.Address `json:"owner" bson:"owner"`
	Currency domain.Address `json:"currency" bson:"currency"`
	Amount   string         `json:"amount" bson:"amount"`
}

func (b *Balance) AmountWei() (*big.Int, error) {
	return domain.ParseWei(b.Amount)
}

type Repo interface {
	FindOne(ctx bCtx.Ctx, owner, currency domain.Address) (*Balance, error)
	// Credit adds amount, creating the row when missing
	Credit(ctx bCtx.Ctx, owner, currency domain.Address, amount *big.Int) error
	// Debit subtracts amount only when the balance covers it, in a single
	// atomic operation; otherwise domain.ErrInsufficientFunds
	Debit(ctx bCtx.Ctx, owner, currency domain.Address, amount *big.Int) error
}

type Service interface {
	BalanceOf(ctx bCtx.Ctx, owner, currency domain.Address) (*big.Int, error)
	Deposit(ctx bCtx.Ctx, owner, currency domain.Address, amount *big.Int) error
	Withdraw(ctx bCtx.Ctx, owner, currency domain.Address, amount *big.Int) error
	// Transfer moves amount between ledger accounts, debit first
	Transfer(ctx bCtx.Ctx, from, to, currency domain.Address, amount *big.Int) error
}
