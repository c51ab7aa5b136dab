package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTermStringProp(t *testing.T) {
	a := NewArena()
	assert.Equal(t, "Prop", TermString(a.Prop()))
}

func TestTermStringSort(t *testing.T) {
	a := NewArena()
	assert.Equal(t, "Sort((u0 + 2))", TermString(a.Sort(a.LevelAdd(a.LevelVar(0), 2))))
}

func TestTermStringVar(t *testing.T) {
	a := NewArena()
	assert.Equal(t, "#3", TermString(a.Var(3, a.Prop())))
}

func TestTermStringApp(t *testing.T) {
	a := NewArena()
	prop := a.Prop()
	f := a.Var(1, a.Prod(prop, prop))
	assert.Equal(t, "(#1 Prop)", TermString(a.App(f, prop)))
}

func TestTermStringAxiomNoLevels(t *testing.T) {
	a := NewArenaWithAxioms()
	assert.Equal(t, "False", TermString(a.Axiom(AxiomFalse)))
}

func TestTermStringAxiomWithLevels(t *testing.T) {
	a := NewArenaWithAxioms()
	u0 := a.LevelZero()
	assert.Equal(t, "Eq_rec.{0,0}", TermString(a.Axiom(AxiomEqRec, u0, u0)))
}

func TestLevelStringZero(t *testing.T) {
	a := NewArena()
	assert.Equal(t, "0", LevelString(a.LevelZero()))
}

func TestLevelStringVar(t *testing.T) {
	a := NewArena()
	assert.Equal(t, "u2", LevelString(a.LevelVar(2)))
}
