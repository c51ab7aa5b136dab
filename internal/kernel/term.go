package kernel

// TermKind distinguishes the seven term constructors of spec §3.
type TermKind int

const (
	TSort TermKind = iota
	TVar
	TApp
	TAbs
	TProd
	TAxiom
	TDecl
)

// termPayload is the comparable value every Term node wraps, used
// directly as the arena's intern-table key. This is the Go analogue of
// the original's `HashSet<&Node>` keyed on payload equality: a struct of
// only pointers and integers is comparable, so no custom Eq/Hash is
// needed the way Rust's Payload required one.
type termPayload struct {
	kind TermKind

	level Level // TSort

	varIndex int  // TVar: de Bruijn index, i >= 1
	varType  Term // TVar: cached type hint; conversion ignores it (spec §4.F, §9)

	fnTerm, argTerm Term // TApp

	absType, absBody Term // TAbs

	prodType, prodBody Term // TProd

	axiomID      AxiomID
	axiomLevels  [maxUniverseArity]Level
	axiomLevelsN int

	declInst *instantiatedDecl // TDecl
}

// termNode is the interned representation of a term. whnf and typ are
// write-once lazy slots (spec §4.C): nil means "not yet computed", any
// other value is final and every reader sees the same handle. There is no
// mutex guarding them because spec §5 fixes a single-threaded, synchronous
// execution model — concurrent fills are explicitly out of scope.
type termNode struct {
	payload termPayload
	whnf    Term
	typ     Term
}

// Term is an arena handle. Two terms are syntactically identical iff they
// are the same Go pointer (spec §3, "term uniqueness").
type Term = *termNode

// internTerm returns the unique handle for p, allocating one if this is
// the first time this exact payload has been interned.
func (a *Arena) internTerm(p termPayload) Term {
	if existing, ok := a.terms[p]; ok {
		return existing
	}
	node := &termNode{payload: p}
	a.terms[p] = node
	return node
}

// Sort builds Sort(l). Prop is Sort(0); Type k is Sort(k+1).
func (a *Arena) Sort(l Level) Term {
	return a.internTerm(termPayload{kind: TSort, level: l})
}

// Prop is Sort(0).
func (a *Arena) Prop() Term {
	return a.Sort(a.LevelZero())
}

// TypeLevel is Sort(k+1), i.e. "Type k" in the surface syntax.
func (a *Arena) TypeLevel(k uint32) Term {
	return a.Sort(a.LevelAdd(a.LevelZero(), k+1))
}

// Var builds Var(i, t): a de Bruijn index with its cached type hint.
func (a *Arena) Var(index int, t Term) Term {
	return a.internTerm(termPayload{kind: TVar, varIndex: index, varType: t})
}

// App builds App(f, arg).
func (a *Arena) App(f, arg Term) Term {
	return a.internTerm(termPayload{kind: TApp, fnTerm: f, argTerm: arg})
}

// Abs builds Abs(argType, body): a lambda whose binder has type argType.
func (a *Arena) Abs(argType, body Term) Term {
	return a.internTerm(termPayload{kind: TAbs, absType: argType, absBody: body})
}

// Prod builds Prod(argType, body): a dependent product.
func (a *Arena) Prod(argType, body Term) Term {
	return a.internTerm(termPayload{kind: TProd, prodType: argType, prodBody: body})
}

// Axiom builds Axiom(id, levels), the handle for a built-in constant
// instantiated with its universe arguments.
func (a *Arena) Axiom(id AxiomID, levels ...Level) Term {
	if len(levels) > maxUniverseArity {
		panic("kernel: axiom universe arity exceeds maxUniverseArity")
	}
	p := termPayload{kind: TAxiom, axiomID: id, axiomLevelsN: len(levels)}
	copy(p.axiomLevels[:], levels)
	return a.internTerm(p)
}

// Kind reports which of the seven variants t is.
func (t Term) Kind() TermKind { return t.payload.kind }
