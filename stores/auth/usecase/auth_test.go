package usecase

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/mocks"
)

const signingMsgTemplate = "Approve this signature request to authenticate.\nNonce: %d"

func signNonce(t *testing.T, nonce int64) (domain.Address, string) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	address := domain.Address(crypto.PubkeyToAddress(key.PublicKey).Hex()).ToLower()

	msg := fmt.Sprintf(signingMsgTemplate, nonce)
	sig, err := crypto.Sign(accounts.TextHash([]byte(msg)), key)
	require.NoError(t, err)

	return address, hexutil.Encode(sig)
}

func TestGetNonceCreatesAccount(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	repo := mocks.NewAccountRepo(t)
	address := domain.Address("0x1111111111111111111111111111111111111111")

	repo.On("FindOne", mock.Anything, address).Return(nil, domain.ErrNotFound).Once()
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(a *domain.Account) bool {
		return a.Address.Equals(address)
	})).Return(nil).Once()

	uc := NewAuthUseCase(&AuthUseCaseCfg{
		JwtSecret:          "secret",
		SigningMsgTemplate: signingMsgTemplate,
		AccountRepo:        repo,
	})

	_, err := uc.GetNonce(c, address)
	req.NoError(err)
}

func TestSignTokenRoundTrip(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	nonce := int64(42)
	address, signature := signNonce(t, nonce)

	repo := mocks.NewAccountRepo(t)
	repo.On("FindOne", mock.Anything, address).Return(&domain.Account{
		Address: address,
		Nonce:   nonce,
	}, nil).Once()
	// nonce rotates after a successful login
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(a *domain.Account) bool {
		return a.Address.Equals(address) && a.Nonce != nonce
	})).Return(nil).Once()

	uc := NewAuthUseCase(&AuthUseCaseCfg{
		JwtSecret:          "secret",
		SigningMsgTemplate: signingMsgTemplate,
		AccountRepo:        repo,
	})

	token, err := uc.SignToken(c, address, signature)
	req.NoError(err)
	req.NotEmpty(token)

	parsed, err := uc.ParseToken(c, token)
	req.NoError(err)
	req.Equal(address.ToLower(), parsed.ToLower())
}

func TestSignTokenRejectsWrongSigner(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	nonce := int64(42)
	_, signature := signNonce(t, nonce)

	// the signature recovers to a different wallet than the claimed address
	claimed := domain.Address("0x2222222222222222222222222222222222222222")

	repo := mocks.NewAccountRepo(t)
	repo.On("FindOne", mock.Anything, claimed).Return(&domain.Account{
		Address: claimed,
		Nonce:   nonce,
	}, nil).Once()

	uc := NewAuthUseCase(&AuthUseCaseCfg{
		JwtSecret:          "secret",
		SigningMsgTemplate: signingMsgTemplate,
		AccountRepo:        repo,
	})

	_, err := uc.SignToken(c, claimed, signature)
	req.ErrorIs(err, domain.ErrInvalidSignature)
}

func TestParseTokenRejectsForgedSecret(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	nonce := int64(7)
	address, signature := signNonce(t, nonce)

	repo := mocks.NewAccountRepo(t)
	repo.On("FindOne", mock.Anything, address).Return(&domain.Account{
		Address: address,
		Nonce:   nonce,
	}, nil).Once()
	repo.On("Upsert", mock.Anything, mock.Anything).Return(nil).Once()

	issuer := NewAuthUseCase(&AuthUseCaseCfg{
		JwtSecret:          "secret-a",
		SigningMsgTemplate: signingMsgTemplate,
		AccountRepo:        repo,
	})

	token, err := issuer.SignToken(c, address, signature)
	req.NoError(err)

	verifier := NewAuthUseCase(&AuthUseCaseCfg{
		JwtSecret:          "secret-b",
		SigningMsgTemplate: signingMsgTemplate,
		AccountRepo:        mocks.NewAccountRepo(t),
	})

	_, err = verifier.ParseToken(c, token)
	req.Error(err)
}
