package kernel

// Shift increments every free variable of t (index > k) by n, including
// consistently shifting each touched Var's cached type hint (spec §4.D).
func (a *Arena) Shift(t Term, n, k int) Term {
	if n == 0 {
		return t
	}
	switch t.payload.kind {
	case TSort, TAxiom:
		return t
	case TVar:
		idx := t.payload.varIndex
		typ := a.Shift(t.payload.varType, n, k)
		if idx > k {
			return a.Var(idx+n, typ)
		}
		if typ == t.payload.varType {
			return t
		}
		return a.Var(idx, typ)
	case TApp:
		return a.App(a.Shift(t.payload.fnTerm, n, k), a.Shift(t.payload.argTerm, n, k))
	case TAbs:
		return a.Abs(a.Shift(t.payload.absType, n, k), a.Shift(t.payload.absBody, n, k+1))
	case TProd:
		return a.Prod(a.Shift(t.payload.prodType, n, k), a.Shift(t.payload.prodBody, n, k+1))
	case TDecl:
		return t // closed: a declaration body carries no free term variables
	default:
		return t
	}
}

// Substitute replaces every occurrence of Var(depth) in t with u (shifted
// to account for the binders crossed to reach it), and shifts every
// Var(i) with i > depth down by one to close the gap left by the removed
// binder (spec §4.D). Because t and u are interned, the arena memoizes
// (t, u, depth) -> result exactly.
func (a *Arena) Substitute(t, u Term, depth int) Term {
	key := substKey{body: t, arg: u, depth: depth}
	if cached, ok := a.substMemo[key]; ok {
		return cached
	}
	result := a.substituteUncached(t, u, depth)
	a.substMemo[key] = result
	return result
}

func (a *Arena) substituteUncached(t, u Term, depth int) Term {
	switch t.payload.kind {
	case TSort, TAxiom:
		return t
	case TVar:
		idx := t.payload.varIndex
		switch {
		case idx == depth:
			return a.Shift(u, depth-1, 0)
		case idx > depth:
			typ := a.Substitute(t.payload.varType, u, depth)
			return a.Var(idx-1, typ)
		default:
			typ := a.Substitute(t.payload.varType, u, depth)
			if typ == t.payload.varType {
				return t
			}
			return a.Var(idx, typ)
		}
	case TApp:
		return a.App(a.Substitute(t.payload.fnTerm, u, depth), a.Substitute(t.payload.argTerm, u, depth))
	case TAbs:
		return a.Abs(a.Substitute(t.payload.absType, u, depth), a.Substitute(t.payload.absBody, u, depth+1))
	case TProd:
		return a.Prod(a.Substitute(t.payload.prodType, u, depth), a.Substitute(t.payload.prodBody, u, depth+1))
	case TDecl:
		return t
	default:
		return t
	}
}

// unfold yields the body of t if it is Decl(d) (with the universe
// substitution applied), otherwise t unchanged (spec §4.D).
func (a *Arena) unfold(t Term) Term {
	if t.payload.kind != TDecl {
		return t
	}
	return a.DeclGetTerm(t.payload.declInst)
}

// Unfold is the exported form of unfold, letting a caller outside the
// package (e.g. internal/builder's tests) delta-unfold a Decl term
// without reaching into its unexported instantiation handle.
func (a *Arena) Unfold(t Term) Term {
	return a.unfold(t)
}

// substituteUniversesInTerm rewrites every level occurring in t (inside
// Sort, Axiom and Decl nodes) by sigma, recursing structurally and rebuilding
// through the interning constructors. Used by declaration instantiation
// (spec §4.H) to specialize a polymorphic body's universe variables.
func (a *Arena) substituteUniversesInTerm(t Term, sigma []Level) Term {
	switch t.payload.kind {
	case TSort:
		return a.Sort(a.SubstituteUniverses(t.payload.level, sigma))
	case TVar:
		return a.Var(t.payload.varIndex, a.substituteUniversesInTerm(t.payload.varType, sigma))
	case TApp:
		return a.App(a.substituteUniversesInTerm(t.payload.fnTerm, sigma), a.substituteUniversesInTerm(t.payload.argTerm, sigma))
	case TAbs:
		return a.Abs(a.substituteUniversesInTerm(t.payload.absType, sigma), a.substituteUniversesInTerm(t.payload.absBody, sigma))
	case TProd:
		return a.Prod(a.substituteUniversesInTerm(t.payload.prodType, sigma), a.substituteUniversesInTerm(t.payload.prodBody, sigma))
	case TAxiom:
		levels := make([]Level, t.payload.axiomLevelsN)
		for i := range levels {
			levels[i] = a.SubstituteUniverses(t.payload.axiomLevels[i], sigma)
		}
		return a.Axiom(t.payload.axiomID, levels...)
	case TDecl:
		inst := t.payload.declInst
		levels := make([]Level, inst.n)
		for i, l := range inst.levelSlice() {
			levels[i] = a.SubstituteUniverses(l, sigma)
		}
		return a.instantiateDecl(inst.decl, levels)
	default:
		return t
	}
}
