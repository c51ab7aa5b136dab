// Package builder turns named terms and levels into the kernel's
// de-Bruijn-indexed representation: an Environment tracks which name is
// bound at which depth (mirroring the teacher's parent-pointer
// SymbolTable, internal/semantic/symbols.go), and TermBuilder/LevelBuilder
// expose fluent combinators that resolve names against it before handing
// off to internal/kernel's interning constructors.
package builder

import kernel "github.com/asm-nop/proost/internal/kernel"

// frame is one bound name in scope, a cons cell in a parent-pointer chain
// exactly like SymbolTable's {symbols, parent}, specialized to carry a
// single name per chain link since term binders are introduced one at a
// time (Abs/Prod each bind exactly one name).
type frame struct {
	parent   *Environment
	name     string
	typ      kernel.Term // the binder's type, valid in the context *before* this frame (depth-1)
	ownDepth int
}

// Environment is the term-side scope: a chain of bound names plus the
// arena used to shift a binder's stored type into whatever deeper context
// a later reference needs. An Environment with no frames, as returned by
// NewEnvironment, is the empty (root) scope.
type Environment struct {
	arena *kernel.Arena
	top   *frame
}

// NewEnvironment returns the empty scope over arena.
func NewEnvironment(arena *kernel.Arena) *Environment {
	return &Environment{arena: arena}
}

// Depth reports how many names are currently in scope.
func (e *Environment) Depth() int {
	if e.top == nil {
		return 0
	}
	return e.top.ownDepth
}

// Push returns a new scope with name freshly bound, its type given in the
// *current* context (i.e. before the new binder, matching kernel.Prod and
// kernel.Abs's own argType convention).
func (e *Environment) Push(name string, typ kernel.Term) *Environment {
	return &Environment{
		arena: e.arena,
		top: &frame{
			parent:   e,
			name:     name,
			typ:      typ,
			ownDepth: e.Depth() + 1,
		},
	}
}

// Resolve finds name's nearest binding and returns the de Bruijn Var term
// it denotes in e's own context, with its cached type hint reindexed to
// match (spec §4.D: a Var's type lives in the same context as the Var
// itself). Shadowed outer bindings are unreachable, matching ordinary
// lexical scoping.
func (e *Environment) Resolve(name string) (kernel.Term, bool) {
	for f := e.top; f != nil; f = f.parent.top {
		if f.name == name {
			index := e.Depth() - f.ownDepth + 1
			shiftedType := e.arena.Shift(f.typ, index, 0)
			return e.arena.Var(index, shiftedType), true
		}
	}
	return nil, false
}

// LevelEnvironment tracks a flat list of universe parameter names in
// scope for one declaration (spec §3's "universe arity"), unlike the
// nested term Environment: a schema's own u_0...u_{n-1} are all
// introduced together, not one binder at a time.
type LevelEnvironment struct {
	names []string
}

// NewLevelEnvironment declares names as u_0, u_1, ... in order.
func NewLevelEnvironment(names ...string) *LevelEnvironment {
	return &LevelEnvironment{names: names}
}

// Resolve returns the LevelVar index bound to name, if any.
func (le *LevelEnvironment) Resolve(name string) (int, bool) {
	for i, n := range le.names {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// Arity is the number of universe parameters in scope.
func (le *LevelEnvironment) Arity() int {
	return len(le.names)
}
