package usecase

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/golang-jwt/jwt"

	bCtx "github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/ethereum"
	"github.com/archetype-labs/minter-suite/domain"
)

const tokenLifetime = 24 * time.Hour

type AuthUseCaseCfg struct {
	JwtSecret          string
	SigningMsgTemplate string
	AccountRepo        domain.AccountRepo
}

type authUseCase struct {
	jwtSecret          []byte
	signingMsgTemplate string
	accountRepo        domain.AccountRepo
}

func NewAuthUseCase(cfg *AuthUseCaseCfg) domain.AuthUsecase {
	return &authUseCase{
		jwtSecret:          []byte(cfg.JwtSecret),
		signingMsgTemplate: cfg.SigningMsgTemplate,
		accountRepo:        cfg.AccountRepo,
	}
}

func (u *authUseCase) GetNonce(c bCtx.Ctx, address domain.Address) (int64, error) {
	account, err := u.accountRepo.FindOne(c, address)
	if err == domain.ErrNotFound {
		account = &domain.Account{
			Address: address,
			Nonce:   rand.Int63(),
		}
		if err := u.accountRepo.Upsert(c, account); err != nil {
			c.WithField("err", err).Error("accountRepo.Upsert failed")
			return 0, err
		}
	} else if err != nil {
		c.WithField("err", err).Error("accountRepo.FindOne failed")
		return 0, err
	}
	return account.Nonce, nil
}

func (u *authUseCase) SignToken(c bCtx.Ctx, address domain.Address, signature string) (string, error) {
	nonce, err := u.GetNonce(c, address)
	if err != nil {
		return "", err
	}

	msg := fmt.Sprintf(u.signingMsgTemplate, nonce)
	valid, err := ethereum.ValidateMsgSignature([]byte(msg), signature, string(address))
	if err != nil {
		c.WithField("err", err).Error("ethereum.ValidateMsgSignature failed")
		return "", err
	}
	if !valid {
		return "", domain.ErrInvalidSignature
	}

	// rotate the nonce so a captured signature cannot be replayed
	if err := u.accountRepo.Upsert(c, &domain.Account{
		Address: address,
		Nonce:   rand.Int63(),
	}); err != nil {
		c.WithField("err", err).Error("accountRepo.Upsert failed")
		return "", err
	}

	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(tokenLifetime).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(u.jwtSecret); err != nil {
		c.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (u *authUseCase) ParseToken(c bCtx.Ctx, str string) (domain.Address, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return u.jwtSecret, nil
	})

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return domain.Address(claims.Address), nil
	}

	return "", err
}
