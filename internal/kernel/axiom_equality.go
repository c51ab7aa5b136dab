package kernel

// bindEqualitySchema installs the equality schema (spec §4.E, exemplary):
//
//	Eq.{u}     : (A : Sort u) -> A -> A -> Prop
//	Refl.{u}   : (A : Sort u) -> (a : A) -> Eq.{u} A a a
//	Eq_rec.{u,v} : (A : Sort u) -> (a : A) -> (m : (b:A) -> Eq A a b -> Sort v)
//	             -> m a (Refl A a) -> (b : A) -> (p : Eq A a b) -> m b p
//
// with the ι-rule Eq_rec A a m r b (Refl A' a') -> r when a ≡ a'.
func bindEqualitySchema(a *Arena) {
	u := a.LevelVar(0)
	sortU := a.Sort(u)

	// aAt(n) is "A" referenced from a context with n enclosing binders;
	// A is always the outermost bound variable of these schemas, so its
	// de Bruijn index at depth n is n itself, and its type (Sort u) is
	// closed, needing no shift.
	aAt := func(n int) Term { return a.Var(n, sortU) }

	// aValAt(n) is "a" (the element of A) referenced from depth n >= 2.
	aValAt := func(n int) Term { return a.Var(n-1, aAt(n)) }

	eqAxiom := func(levels ...Level) Term { return a.Axiom(AxiomEq, levels...) }

	// Eq.{u} : (A:Sort u) -> A -> A -> Prop
	eqType := a.Prod(sortU, a.Prod(aAt(1), a.Prod(aAt(2), a.Prop())))

	// Refl.{u} : (A:Sort u) -> (a:A) -> Eq.{u} A a a
	reflBody := a.App(a.App(a.App(eqAxiom(u), aAt(2)), aValAt(2)), aValAt(2))
	reflType := a.Prod(sortU, a.Prod(aAt(1), reflBody))

	v := a.LevelVar(1)
	sortV := a.Sort(v)

	// mType(n) is "(b:A) -> Eq A a b -> Sort v", the type of m, built so
	// that its own internal binder (b) starts right after n enclosing
	// binders (A, a, and whatever precedes m in a given use).
	mType := func(n int) Term {
		bType := aAt(n)
		aAtB := aAt(n + 1)
		aValAtB := aValAt(n + 1)
		bValAtB := a.Var(1, aAtB)
		eqApp := a.App(a.App(a.App(eqAxiom(u), aAtB), aValAtB), bValAtB)
		inner := a.Prod(eqApp, sortV)
		return a.Prod(bType, inner)
	}
	mType2 := mType(2)

	// mValAt(n) is "m" referenced from depth n >= 3; its type, built at
	// depth 2 (the context m is bound in), is shifted by n-2 so that, like
	// aValAt's, it lives in the same depth-n context as the variable.
	mValAt := func(n int) Term {
		return a.Var(n-2, a.Shift(mType2, n-2, 0))
	}

	reflAxiom := func(levels ...Level) Term { return a.Axiom(AxiomRefl, levels...) }

	// r's type: "m a (Refl A a)", at depth 3 (after A, a, m).
	rType := a.App(a.App(mValAt(3), aValAt(3)), a.App(a.App(reflAxiom(u), aAt(3)), aValAt(3)))

	// the final codomain "m b p", at depth 6 (after A,a,m,r,b,p).
	bValAt := func(n int) Term { return a.Var(n-4, aAt(n)) } // b is the 5th-bound variable
	pType := func(n int) Term {
		return a.App(a.App(a.App(eqAxiom(u), aAt(n)), aValAt(n)), bValAt(n))
	}
	pType5 := pType(5)
	pValAt := func(n int) Term { return a.Var(n-5, a.Shift(pType5, n-5, 0)) }

	bodyMBP := a.App(a.App(mValAt(6), bValAt(6)), pValAt(6))

	prodP := a.Prod(pType5, bodyMBP)
	prodB := a.Prod(aAt(4), prodP)
	prodR := a.Prod(rType, prodB)
	prodM := a.Prod(mType2, prodR)
	prodA := a.Prod(aAt(1), prodM)
	eqRecType := a.Prod(sortU, prodA)

	a.axiomArity[AxiomEq] = 1
	a.axiomArity[AxiomRefl] = 1
	a.axiomArity[AxiomEqRec] = 2
	a.axiomType[AxiomEq] = eqType
	a.axiomType[AxiomRefl] = reflType
	a.axiomType[AxiomEqRec] = eqRecType

	a.Bind(AxiomName(AxiomEq), a.Axiom(AxiomEq, u))
	a.Bind(AxiomName(AxiomRefl), a.Axiom(AxiomRefl, u))
	a.Bind(AxiomName(AxiomEqRec), a.Axiom(AxiomEqRec, u, v))

	a.axiomReduce[AxiomEqRec] = eqRecReducer
}

// eqRecReducer implements Eq_rec A a m r b p -> r, enabled when p's whnf
// is of the form Refl A' a' with a ≡ a' (spec §4.E). The result is
// exactly r; the A/A' agreement is guaranteed by well-typedness and is
// not re-checked here.
func eqRecReducer(a *Arena, head Term, args []Term) (Term, int, bool) {
	if len(args) < 6 {
		return nil, 0, false
	}
	elemA, r, p := args[1], args[3], args[5]

	wp := a.Whnf(p)
	reflHead, reflArgs := peelSpine(wp)
	if reflHead.payload.kind != TAxiom || reflHead.payload.axiomID != AxiomRefl || len(reflArgs) < 2 {
		return nil, 0, false
	}
	if !a.conversion(elemA, reflArgs[1]) {
		return nil, 0, false
	}
	return r, 6, true
}
