package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTermInterningIsStructural(t *testing.T) {
	a := NewArena()
	prop := a.Prop()
	t1 := a.Abs(prop, a.Var(1, prop))
	t2 := a.Abs(prop, a.Var(1, prop))
	assert.Same(t, t1, t2, "two structurally identical terms must share one handle")
}

func TestTermInterningDistinguishesShape(t *testing.T) {
	a := NewArena()
	prop := a.Prop()
	typ0 := a.TypeLevel(0)
	abs := a.Abs(prop, a.Var(1, prop))
	prod := a.Prod(prop, a.Var(1, prop))
	assert.NotSame(t, abs, prod)
	assert.NotSame(t, prop, typ0)
}

func TestPropIsSortZero(t *testing.T) {
	a := NewArena()
	assert.Same(t, a.Sort(a.LevelZero()), a.Prop())
}

func TestTypeLevelIsSortSucc(t *testing.T) {
	a := NewArena()
	assert.Same(t, a.Sort(a.LevelAdd(a.LevelZero(), 1)), a.TypeLevel(0))
	assert.Same(t, a.Sort(a.LevelAdd(a.LevelZero(), 3)), a.TypeLevel(2))
}

func TestAxiomOverArityPanics(t *testing.T) {
	a := NewArena()
	levels := make([]Level, maxUniverseArity+1)
	for i := range levels {
		levels[i] = a.LevelVar(i)
	}
	assert.Panics(t, func() {
		a.Axiom(AxiomEqRec, levels...)
	})
}

func TestShiftLeavesClosedTermsAlone(t *testing.T) {
	a := NewArena()
	prop := a.Prop()
	assert.Same(t, prop, a.Shift(prop, 5, 0))
}

func TestShiftIncrementsFreeVariables(t *testing.T) {
	a := NewArena()
	prop := a.Prop()
	// Var(1) under one binder (cutoff 0) is free and must shift.
	v := a.Var(1, prop)
	shifted := a.Shift(v, 2, 0)
	assert.Equal(t, 3, shifted.payload.varIndex)
}

func TestShiftRespectsCutoff(t *testing.T) {
	a := NewArena()
	prop := a.Prop()
	bound := a.Var(1, prop)
	// cutoff 1: index <= cutoff is bound locally, must not shift.
	assert.Same(t, bound, a.Shift(bound, 5, 1))
}

func TestSubstituteBetaReducesVarAtDepth(t *testing.T) {
	a := NewArena()
	prop := a.Prop()
	body := a.Var(1, prop) // references the binder being substituted away
	arg := a.TypeLevel(0)
	assert.Same(t, arg, a.Substitute(body, arg, 1))
}

func TestSubstituteShiftsDeeperVars(t *testing.T) {
	a := NewArena()
	prop := a.Prop()
	// Var(2) under the binder at depth 1 refers to an outer binder and
	// must shift down by one once that binder is removed.
	outer := a.Var(2, prop)
	result := a.Substitute(outer, prop, 1)
	assert.Equal(t, 1, result.payload.varIndex)
}

func TestSubstituteIsMemoized(t *testing.T) {
	a := NewArena()
	prop := a.Prop()
	body := a.App(a.Var(1, prop), a.Var(2, prop))
	arg := a.TypeLevel(0)
	r1 := a.Substitute(body, arg, 1)
	r2 := a.Substitute(body, arg, 1)
	assert.Same(t, r1, r2)
}
