package auction

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/archetype-labs/minter-suite/domain"
)

// milliEth builds an exact wei amount from thousandths of an ether.
func milliEth(m int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(m), big.NewInt(1e15))
}

func TestLinearPriceAt(t *testing.T) {
	req := require.New(t)

	a := &LinearAuction{
		ProjectKey:     domain.NewProjectKey("0x1111111111111111111111111111111111111111", 3),
		TimestampStart: 1000,
		TimestampEnd:   2000,
		StartPrice:     domain.FormatWei(milliEth(1000)),
		BasePrice:      domain.FormatWei(milliEth(100)),
	}

	halfway, err := a.PriceAt(1500)
	req.NoError(err)
	req.Zero(halfway.Cmp(milliEth(550)))

	after, err := a.PriceAt(2500)
	req.NoError(err)
	req.Zero(after.Cmp(milliEth(100)))

	before, err := a.PriceAt(500)
	req.NoError(err)
	req.Zero(before.Cmp(milliEth(1000)))
}

func TestLinearPriceNeverLeavesBounds(t *testing.T) {
	req := require.New(t)

	a := &LinearAuction{
		TimestampStart: 1000,
		TimestampEnd:   8200,
		StartPrice:     domain.FormatWei(milliEth(3000)),
		BasePrice:      domain.FormatWei(milliEth(250)),
	}

	prev, err := a.PriceAt(1000)
	req.NoError(err)
	for ts := uint64(1000); ts <= 9000; ts += 37 {
		price, err := a.PriceAt(ts)
		req.NoError(err)
		req.LessOrEqual(price.Cmp(prev), 0)
		req.GreaterOrEqual(price.Cmp(milliEth(250)), 0)
		req.LessOrEqual(price.Cmp(milliEth(3000)), 0)
		prev = price
	}
}

func TestExponentialPriceAt(t *testing.T) {
	req := require.New(t)

	a := &ExponentialAuction{
		TimestampStart:            1000,
		PriceDecayHalfLifeSeconds: 600,
		StartPrice:                domain.FormatWei(milliEth(1000)),
		BasePrice:                 domain.FormatWei(milliEth(100)),
	}

	// whole half-lives halve the premium exactly
	one, err := a.PriceAt(1600)
	req.NoError(err)
	req.Zero(one.Cmp(milliEth(550)))

	two, err := a.PriceAt(2200)
	req.NoError(err)
	req.Zero(two.Cmp(milliEth(325)))

	before, err := a.PriceAt(900)
	req.NoError(err)
	req.Zero(before.Cmp(milliEth(1000)))
}

func TestExponentialPriceClampsToBase(t *testing.T) {
	req := require.New(t)

	a := &ExponentialAuction{
		TimestampStart:            1000,
		PriceDecayHalfLifeSeconds: 600,
		StartPrice:                domain.FormatWei(milliEth(1000)),
		BasePrice:                 domain.FormatWei(milliEth(100)),
	}

	// beyond the premium's bit length the shift zeroes the premium; a very
	// long elapsed time must not overflow the shift amount
	far, err := a.PriceAt(1000 + 600*100)
	req.NoError(err)
	req.Zero(far.Cmp(milliEth(100)))

	veryFar, err := a.PriceAt(1<<62 + 1000)
	req.NoError(err)
	req.Zero(veryFar.Cmp(milliEth(100)))
}

func TestExponentialMonotoneDecay(t *testing.T) {
	req := require.New(t)

	a := &ExponentialAuction{
		TimestampStart:            1000,
		PriceDecayHalfLifeSeconds: 300,
		StartPrice:                domain.FormatWei(milliEth(2000)),
		BasePrice:                 domain.FormatWei(milliEth(50)),
	}

	prev, err := a.PriceAt(1000)
	req.NoError(err)
	for ts := uint64(1000); ts <= 10000; ts += 13 {
		price, err := a.PriceAt(ts)
		req.NoError(err)
		req.LessOrEqual(price.Cmp(prev), 0)
		req.GreaterOrEqual(price.Cmp(milliEth(50)), 0)
		prev = price
	}
}
