package domain

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

var (
	Big1  = big.NewInt(1)
	Big2  = big.NewInt(2)
	Big10 = big.NewInt(10)
)

// OneMillion is the token-id space reserved per project: a token id encodes
// (projectId * OneMillion + invocation).
const OneMillion = 1_000_000

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

// NativeCurrencyAddress is the sentinel used when a project is priced in the
// chain's native currency rather than an ERC-20.
const NativeCurrencyAddress = EmptyAddress

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.ToLower() == EmptyAddress
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type ProjectId uint64

type TokenId uint64

// ProjectId derives the owning project from a token id.
func (t TokenId) ProjectId() ProjectId {
	return ProjectId(uint64(t) / OneMillion)
}

// Invocation derives the 0-indexed per-project invocation ordinal from a
// token id.
func (t TokenId) Invocation() uint64 {
	return uint64(t) % OneMillion
}

// ProjectKey is the universal sharding key for all per-project state. A
// project id alone is never globally unique because one registry serves many
// core contracts.
type ProjectKey struct {
	CoreContract Address   `json:"coreContract" bson:"coreContract"`
	ProjectId    ProjectId `json:"projectId" bson:"projectId"`
}

func NewProjectKey(coreContract Address, projectId ProjectId) ProjectKey {
	return ProjectKey{
		CoreContract: coreContract.ToLower(),
		ProjectId:    projectId,
	}
}

func (k ProjectKey) String() string {
	return fmt.Sprintf("%s:%d", k.CoreContract.ToLowerStr(), k.ProjectId)
}

// ParseWei parses a base-10 integer amount in minor units.
func ParseWei(s string) (*big.Int, error) {
	if s == "" {
		return big.NewInt(0), nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, xerrors.Errorf("invalid wei amount %q", s)
	}
	return v, nil
}

// FormatWei renders an amount for storage. Nil is stored as zero.
func FormatWei(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

type TxHash string

type BlockNumber uint64
