// Package kernel implements the Calculus of Constructions type-checking
// core: a hashconsed term/level arena, universe-level algebra, weak-head
// reduction, and a bidirectional conversion/inference engine. Beyond the
// standard library the package imports only internal/errors, for its
// diagnostics — per spec §5 this is a synchronous, single-threaded,
// allocation-and-comparison core, and the
// third-party stack (participle, fatih/color, testify) is exercised
// entirely at the boundary packages (internal/errors, internal/surface,
// internal/builder, cmd/, repl/) that sit around it.
package kernel

// Arena owns every interned term, level, and declaration for the
// lifetime of one kernel session (spec §4.A). Nothing is freed until the
// whole Arena is discarded; mutation after interning is limited to the
// monotonic, write-once lazy caches attached to term nodes.
type Arena struct {
	terms map[termPayload]Term
	levels map[levelPayload]Level
	decls  map[*declNode]struct{}
	instDecls map[instDeclKey]*instantiatedDecl

	namedDecls map[string]Declaration
	namedTerms map[string]Term

	substMemo map[substKey]Term

	axiomArity  map[AxiomID]int
	axiomType   map[AxiomID]Term
	axiomReduce map[AxiomID]axiomReducer
}

// substKey is the memoization key for substitute(body, arg, depth),
// exact because body and arg are themselves interned handles (spec §4.D).
type substKey struct {
	body  Term
	arg   Term
	depth int
}

// instDeclKey is the interning key for an instantiated declaration: a
// declaration paired with its (arity-bounded) level vector.
type instDeclKey struct {
	decl   Declaration
	levels [maxUniverseArity]Level
	n      int
}

// maxUniverseArity bounds the universe arity of any declaration or axiom.
// Go slices aren't comparable and so can't be struct/map-key fields the
// way Rust's &[Level] can; every schema in this kernel (Eq/Refl arity 1,
// Eq_rec arity 2) fits in 2, so instantiation vectors are carried as a
// fixed-size array plus a count instead of a slice.
const maxUniverseArity = 2

// NewArena creates an empty arena with no axioms bound. Most callers want
// NewArenaWithAxioms instead; this constructor exists for tests that need
// to exercise the bare interning layer.
func NewArena() *Arena {
	return &Arena{
		terms:     make(map[termPayload]Term),
		levels:    make(map[levelPayload]Level),
		decls:     make(map[*declNode]struct{}),
		instDecls: make(map[instDeclKey]*instantiatedDecl),
		namedDecls: make(map[string]Declaration),
		namedTerms: make(map[string]Term),
		substMemo: make(map[substKey]Term),
		axiomArity:  make(map[AxiomID]int),
		axiomType:   make(map[AxiomID]Term),
		axiomReduce: make(map[AxiomID]axiomReducer),
	}
}

// NewArenaWithAxioms creates an arena and binds the fixed set of built-in
// axiom names (spec §6): Eq/Refl/Eq_rec, False/False_rec, Nat/Zero/Succ/
// Nat_rec.
func NewArenaWithAxioms() *Arena {
	a := NewArena()
	bindEqualitySchema(a)
	bindFalsitySchema(a)
	bindNatSchema(a)
	return a
}

// UseArena mirrors the original's scope-based API (`with_arena`): it hands
// fn a fresh, axiom-free arena and returns whatever fn returns. Because Go
// has no region types, callers are trusted not to leak Term/Level/
// Declaration handles past the call the way the comment on spec §4.A's
// "lifetime parameter" requires; nothing here enforces that at runtime
// beyond normal garbage-collected pointer lifetimes.
func UseArena[T any](fn func(*Arena) T) T {
	return fn(NewArena())
}

// UseArenaWithAxioms is UseArena pre-populated with the built-in schemas.
func UseArenaWithAxioms[T any](fn func(*Arena) T) T {
	return fn(NewArenaWithAxioms())
}

// Bind replaces any prior binding of name to a plain term.
func (a *Arena) Bind(name string, t Term) {
	a.namedTerms[name] = t
}

// BindDecl replaces any prior binding of name to a declaration. Binding a
// 0-arity declaration also binds a term under the same name: the Decl term
// of its single instantiation (the empty level vector), which δ-unfolds to
// the body. The body term itself is not bound under the name.
func (a *Arena) BindDecl(name string, d Declaration) {
	a.namedDecls[name] = d
	if d.Arity == 0 {
		a.namedTerms[name] = a.instantiateDecl(d, nil)
	}
}

// Lookup returns the term currently bound under name, if any.
func (a *Arena) Lookup(name string) (Term, bool) {
	t, ok := a.namedTerms[name]
	return t, ok
}

// LookupDecl returns the declaration currently bound under name, if any.
func (a *Arena) LookupDecl(name string) (Declaration, bool) {
	d, ok := a.namedDecls[name]
	return d, ok
}
