package builder

import (
	"testing"

	kernel "github.com/asm-nop/proost/internal/kernel"
	"github.com/stretchr/testify/assert"
	kerrors "github.com/asm-nop/proost/internal/errors"
)

func TestVarUnresolvedIsConstNotFound(t *testing.T) {
	a := kernel.NewArena()
	b := NewTermBuilder(a)
	_, err := b.Var("nope")
	assert.Error(t, err)
	ke, ok := err.(kerrors.KernelError)
	assert.True(t, ok)
	assert.Equal(t, kerrors.CodeConstNotFound, ke.Code)
}

func TestVarResolvesArenaBinding(t *testing.T) {
	a := kernel.NewArenaWithAxioms()
	b := NewTermBuilder(a)
	got, err := b.Var("False")
	assert.NoError(t, err)
	assert.Same(t, a.Axiom(kernel.AxiomFalse), got)
}

func TestAbsBindsNameInBody(t *testing.T) {
	a := kernel.NewArenaWithAxioms()
	b := NewTermBuilder(a)
	prop := b.Prop()

	identity, err := b.Abs("x", prop, func(inner *TermBuilder) (kernel.Term, error) {
		return inner.Var("x")
	})
	assert.NoError(t, err)
	assert.Same(t, a.Abs(prop, a.Var(1, prop)), identity)
}

func TestProdBindsNameInCodomain(t *testing.T) {
	a := kernel.NewArenaWithAxioms()
	b := NewTermBuilder(a)
	prop := b.Prop()

	selfArrow, err := b.Prod("x", prop, func(inner *TermBuilder) (kernel.Term, error) {
		return inner.Prop(), nil
	})
	assert.NoError(t, err)
	assert.Same(t, a.Prod(prop, prop), selfArrow)
}

func TestNestedBindersResolveOuterName(t *testing.T) {
	a := kernel.NewArenaWithAxioms()
	b := NewTermBuilder(a)
	prop := b.Prop()

	// fun x:Prop => fun _:Prop => x : must reference the outer binder,
	// de Bruijn index 2 from inside the inner lambda.
	nested, err := b.Abs("x", prop, func(outer *TermBuilder) (kernel.Term, error) {
		return outer.Abs("y", prop, func(inner *TermBuilder) (kernel.Term, error) {
			return inner.Var("x")
		})
	})
	assert.NoError(t, err)

	expected := a.Abs(prop, a.Abs(prop, a.Var(2, prop)))
	assert.Same(t, expected, nested)
}

func TestShadowingResolvesInnermostBinding(t *testing.T) {
	a := kernel.NewArenaWithAxioms()
	b := NewTermBuilder(a)
	prop := b.Prop()
	typ0 := b.TypeN(0)

	shadowed, err := b.Abs("x", prop, func(outer *TermBuilder) (kernel.Term, error) {
		return outer.Abs("x", typ0, func(inner *TermBuilder) (kernel.Term, error) {
			return inner.Var("x")
		})
	})
	assert.NoError(t, err)

	expected := a.Abs(prop, a.Abs(typ0, a.Var(1, typ0)))
	assert.Same(t, expected, shadowed)
}

func TestDefineAndInstantiateZeroArityDeclaration(t *testing.T) {
	a := kernel.NewArenaWithAxioms()
	b := NewTermBuilder(a)

	_, err := b.Define("myFalse", nil, func(tb *TermBuilder, lb *LevelBuilder) (kernel.Term, error) {
		return tb.Var("False")
	})
	assert.NoError(t, err)

	got, err := b.Var("myFalse")
	assert.NoError(t, err)
	assert.Equal(t, kernel.TDecl, got.Kind())
	falseTerm, _ := a.Lookup("False")
	assert.Same(t, falseTerm, a.Unfold(got))
}

func TestDefinePolymorphicDeclaration(t *testing.T) {
	a := kernel.NewArenaWithAxioms()
	b := NewTermBuilder(a)

	_, err := b.Define("idSort", []string{"u"}, func(tb *TermBuilder, lb *LevelBuilder) (kernel.Term, error) {
		u, err := lb.Var("u")
		if err != nil {
			return nil, err
		}
		return tb.Sort(u), nil
	})
	assert.NoError(t, err)

	term, err := b.Decl("idSort", []kernel.Level{a.LevelAdd(a.LevelZero(), 2)})
	assert.NoError(t, err)
	got := a.Unfold(term)
	assert.Same(t, a.TypeLevel(1), got) // Sort(2) == Type 1
}

func TestLevelBuilderVarUnresolved(t *testing.T) {
	a := kernel.NewArena()
	lb := NewLevelBuilder(a, NewLevelEnvironment("u", "v"))
	_, err := lb.Var("w")
	assert.Error(t, err)
}

func TestLevelBuilderVarResolvesPositionally(t *testing.T) {
	a := kernel.NewArena()
	lb := NewLevelBuilder(a, NewLevelEnvironment("u", "v"))
	got, err := lb.Var("v")
	assert.NoError(t, err)
	assert.Same(t, a.LevelVar(1), got)
}
