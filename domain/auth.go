package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/archetype-labs/minter-suite/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"address"`
	jwt.StandardClaims
}

type Account struct {
	Address Address `json:"address" bson:"address"`
	Nonce   int64   `json:"nonce" bson:"nonce"`
}

type AccountRepo interface {
	FindOne(ctx ctx.Ctx, address Address) (*Account, error)
	Upsert(ctx ctx.Ctx, account *Account) error
}

type AuthUsecase interface {
	// GetNonce returns the challenge nonce the wallet has to sign
	GetNonce(ctx ctx.Ctx, address Address) (int64, error)
	// SignToken verifies the wallet signature over the nonce message and
	// issues a bearer token bound to the address
	SignToken(ctx ctx.Ctx, address Address, signature string) (string, error)
	// ParseToken returns the address a bearer token is bound to
	ParseToken(ctx ctx.Ctx, token string) (Address, error)
}
