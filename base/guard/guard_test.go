package guard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGuard(t *testing.T) {
	req := require.New(t)
	g := New()

	req.NoError(g.Enter("1:0xabc"))
	req.True(g.Held("1:0xabc"))

	// reentering the same key fails
	req.ErrorIs(g.Enter("1:0xabc"), ErrReentrantCall)

	// different keys do not contend
	req.NoError(g.Enter("2:0xabc"))

	g.Exit("1:0xabc")
	req.False(g.Held("1:0xabc"))
	req.NoError(g.Enter("1:0xabc"))
}

func TestGuardExitUnheld(t *testing.T) {
	g := New()
	g.Exit("never-entered")
	require.False(t, g.Held("never-entered"))
}
