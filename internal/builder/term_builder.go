package builder

import (
	kerrors "github.com/asm-nop/proost/internal/errors"
	kernel "github.com/asm-nop/proost/internal/kernel"
)

// TermBuilder is the named-surface-syntax counterpart of internal/kernel's
// raw de-Bruijn constructors (spec §6, "Builder surface"): every method
// either resolves a name against Environment/arena bindings or otherwise
// mirrors a kernel constructor one-to-one, returning ConstNotFound for any
// unresolved identifier instead of panicking.
type TermBuilder struct {
	arena *kernel.Arena
	env   *Environment
}

// NewTermBuilder returns a builder over arena with an empty scope.
func NewTermBuilder(arena *kernel.Arena) *TermBuilder {
	return &TermBuilder{arena: arena, env: NewEnvironment(arena)}
}

// Arena exposes the underlying arena, e.g. so a caller can pair a
// TermBuilder with a LevelBuilder sharing the same arena.
func (b *TermBuilder) Arena() *kernel.Arena { return b.arena }

// Var resolves name, first against the local (lexical) scope, then
// against the arena's named terms, then against its 0-arity declarations;
// an unresolved name is a ConstNotFound error (spec §6).
func (b *TermBuilder) Var(name string) (kernel.Term, error) {
	if t, ok := b.env.Resolve(name); ok {
		return t, nil
	}
	if t, ok := b.arena.Lookup(name); ok {
		return t, nil
	}
	if d, ok := b.arena.LookupDecl(name); ok && d.Arity == 0 {
		t, err := b.arena.InstantiateDeclaration(d, nil)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, kerrors.ConstNotFound(name)
}

// Prop builds Prop (Sort 0).
func (b *TermBuilder) Prop() kernel.Term {
	return b.arena.Prop()
}

// TypeN builds Sort(k+1), the surface "Type k".
func (b *TermBuilder) TypeN(k uint32) kernel.Term {
	return b.arena.TypeLevel(k)
}

// Sort builds Sort(l) for an already-built level.
func (b *TermBuilder) Sort(l kernel.Level) kernel.Term {
	return b.arena.Sort(l)
}

// App builds App(f, arg).
func (b *TermBuilder) App(f, arg kernel.Term) kernel.Term {
	return b.arena.App(f, arg)
}

// Abs builds a lambda binding name : argType, with body built by fn under
// a scope extended with that binding (spec §6, "lambda with a named
// binder"). fn sees a TermBuilder whose Var can now resolve name.
func (b *TermBuilder) Abs(name string, argType kernel.Term, fn func(*TermBuilder) (kernel.Term, error)) (kernel.Term, error) {
	inner := &TermBuilder{arena: b.arena, env: b.env.Push(name, argType)}
	body, err := fn(inner)
	if err != nil {
		return nil, err
	}
	return b.arena.Abs(argType, body), nil
}

// Prod builds a dependent product binding name : argType, with the
// codomain built by fn under the extended scope.
func (b *TermBuilder) Prod(name string, argType kernel.Term, fn func(*TermBuilder) (kernel.Term, error)) (kernel.Term, error) {
	inner := &TermBuilder{arena: b.arena, env: b.env.Push(name, argType)}
	body, err := fn(inner)
	if err != nil {
		return nil, err
	}
	return b.arena.Prod(argType, body), nil
}

// Axiom builds Axiom(id, levels...) directly; axiom names are also
// reachable through Var once bound into the arena by the axiom schemas
// (spec §4.E), so most callers never need this.
func (b *TermBuilder) Axiom(id kernel.AxiomID, levels ...kernel.Level) kernel.Term {
	return b.arena.Axiom(id, levels...)
}

// Decl resolves name to a declaration and instantiates it at levels,
// surfacing both ConstNotFound and an arity mismatch as errors rather
// than panicking (spec §6, §9).
func (b *TermBuilder) Decl(name string, levels []kernel.Level) (kernel.Term, error) {
	d, ok := b.arena.LookupDecl(name)
	if !ok {
		return nil, kerrors.ConstNotFound(name)
	}
	return b.arena.InstantiateDeclaration(d, levels)
}

// Define registers a new declaration under name, body built by fn with
// levelNames in scope as u_0, u_1, ... (spec §4.H's universe arity).
func (b *TermBuilder) Define(name string, levelNames []string, fn func(*TermBuilder, *LevelBuilder) (kernel.Term, error)) (kernel.Declaration, error) {
	lb := NewLevelBuilder(b.arena, NewLevelEnvironment(levelNames...))
	body, err := fn(b, lb)
	if err != nil {
		return nil, err
	}
	d := b.arena.NewDeclaration(body, len(levelNames))
	b.arena.BindDecl(name, d)
	return d, nil
}
