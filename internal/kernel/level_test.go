package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelZeroInterned(t *testing.T) {
	a := NewArena()
	z1 := a.LevelZero()
	z2 := a.LevelZero()
	assert.Same(t, z1, z2, "two calls to LevelZero must return the same handle")
}

func TestLevelAddZeroDegenerates(t *testing.T) {
	a := NewArena()
	z := a.LevelZero()
	u := a.LevelVar(0)
	assert.Same(t, u, a.LevelAdd(u, 0), "L + 0 must normalize to L itself")
	assert.Equal(t, "0", LevelString(a.LevelAdd(z, 0)))
}

func TestLevelAddCollapsesNesting(t *testing.T) {
	a := NewArena()
	u := a.LevelVar(0)
	once := a.LevelSucc(u)          // u + 1
	twice := a.LevelSucc(once)      // (u + 1) + 1 -> u + 2
	direct := a.LevelAdd(u, 2)
	assert.Same(t, direct, twice, "(L + k1) + k2 must normalize to L + (k1 + k2)")
	assert.Equal(t, "(u0 + 2)", LevelString(twice))
}

func TestLevelMaxIdentityAndZero(t *testing.T) {
	a := NewArena()
	u := a.LevelVar(0)
	z := a.LevelZero()
	assert.Same(t, u, a.LevelMax(u, u), "max(L, L) = L")
	assert.Same(t, u, a.LevelMax(z, u), "max(0, L) = L")
	assert.Same(t, u, a.LevelMax(u, z), "max(L, 0) = L")
}

func TestLevelMaxDistributesOverCommonAdd(t *testing.T) {
	a := NewArena()
	u, v := a.LevelVar(0), a.LevelVar(1)
	// max(u+1, v+3) should normalize to max(u, v+2) + 1
	lhs := a.LevelMax(a.LevelAdd(u, 1), a.LevelAdd(v, 3))
	rhs := a.LevelAdd(a.LevelMax(u, a.LevelAdd(v, 2)), 1)
	assert.Same(t, rhs, lhs)
}

func TestLevelMaxPrettyPrint(t *testing.T) {
	a := NewArena()
	u0 := a.LevelVar(0)
	l := a.LevelMax(a.LevelAdd(u0, 0), a.LevelMax(u0, a.LevelSucc(u0)))
	// u0+0 normalizes to u0; no rule absorbs the repeated u0 into the inner
	// max, so the result prints as max(u0, max(u0, u0+1))
	assert.Equal(t, "(max u0 (max u0 (u0 + 1)))", LevelString(l))
}

func TestLevelIMaxZeroRight(t *testing.T) {
	a := NewArena()
	u := a.LevelVar(0)
	z := a.LevelZero()
	assert.Same(t, z, a.LevelIMax(u, z), "imax(L, 0) = 0")
}

func TestLevelIMaxSuccRight(t *testing.T) {
	a := NewArena()
	u, v := a.LevelVar(0), a.LevelVar(1)
	succV := a.LevelSucc(v)
	// imax(u, v+1) = max(u, v+1) since the right side is never zero
	got := a.LevelIMax(u, succV)
	want := a.LevelMax(u, succV)
	assert.Same(t, want, got)
}

func TestLevelIMaxIdentity(t *testing.T) {
	a := NewArena()
	u := a.LevelVar(0)
	assert.Same(t, u, a.LevelIMax(u, u))
}

func TestLevelIMaxRightIMaxDistributes(t *testing.T) {
	a := NewArena()
	u, v, w := a.LevelVar(0), a.LevelVar(1), a.LevelVar(2)
	// imax(u, imax(v, w)) = max(imax(u, w), imax(v, w))
	lhs := a.LevelIMax(u, a.LevelIMax(v, w))
	rhs := a.LevelMax(a.LevelIMax(u, w), a.LevelIMax(v, w))
	assert.Same(t, rhs, lhs)
}

func TestLevelIMaxRightMaxDistributes(t *testing.T) {
	a := NewArena()
	u, v, w := a.LevelVar(0), a.LevelVar(1), a.LevelVar(2)
	// imax(u, max(v, w)) = max(imax(u, v), imax(u, w))
	lhs := a.LevelIMax(u, a.LevelMax(v, w))
	rhs := a.LevelMax(a.LevelIMax(u, v), a.LevelIMax(u, w))
	assert.Same(t, rhs, lhs)
}

func TestLevelVarStuckOnVariable(t *testing.T) {
	a := NewArena()
	u, v := a.LevelVar(0), a.LevelVar(1)
	// imax(u, v) has a bare variable on the right: nothing to rewrite.
	stuck := a.LevelIMax(u, v)
	assert.Equal(t, LIMax, stuck.payload.kind)
}

func TestLevelEquivReflexive(t *testing.T) {
	a := NewArena()
	u := a.LevelVar(0)
	l := a.LevelMax(u, a.LevelSucc(u))
	assert.True(t, a.LevelEquiv(l, l))
}

func TestLevelEquivMaxCommutative(t *testing.T) {
	a := NewArena()
	u, v := a.LevelVar(0), a.LevelVar(1)
	lhs := a.LevelMax(u, v)
	rhs := a.LevelMax(v, u)
	// Structurally distinct payloads (different operand order) and distinct
	// handles, but equivalent since the equivalence treats max as
	// commutative.
	assert.True(t, a.LevelEquiv(lhs, rhs))
}

func TestLevelEquivStuckImaxSplit(t *testing.T) {
	a := NewArena()
	u := a.LevelVar(0)
	// imax(u, u) normalizes to u directly, so force a genuinely stuck case:
	// imax(0, u) has a bare variable on the right and stays an imax. Assert
	// the reflexive case on it holds, and that u vs u+1, which is decided
	// by splitting on u, does not.
	lhs := a.LevelIMax(a.LevelZero(), u)
	assert.True(t, a.LevelEquiv(lhs, lhs))
	assert.False(t, a.LevelEquiv(u, a.LevelSucc(u)))
}

func TestLevelEquivDistinctVarsNotEquiv(t *testing.T) {
	a := NewArena()
	u, v := a.LevelVar(0), a.LevelVar(1)
	assert.False(t, a.LevelEquiv(u, v))
}

func TestSubstituteUniversesPositional(t *testing.T) {
	a := NewArena()
	u, v := a.LevelVar(0), a.LevelVar(1)
	l := a.LevelMax(u, a.LevelSucc(v))
	sigma := []Level{a.LevelZero(), a.LevelVar(5)}
	got := a.SubstituteUniverses(l, sigma)
	want := a.LevelMax(a.LevelZero(), a.LevelSucc(a.LevelVar(5)))
	assert.Same(t, want, got)
}
