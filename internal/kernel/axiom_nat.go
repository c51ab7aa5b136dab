package kernel

// bindNatSchema installs the natural-number schema (spec §4.E, "other
// schemas ... follow the same shape"):
//
//	Nat         : Type 0
//	Zero        : Nat
//	Succ        : Nat -> Nat
//	Nat_rec.{u} : (C : Nat -> Sort u) -> C Zero
//	            -> ((n:Nat) -> C n -> C (Succ n)) -> (n:Nat) -> C n
//
// with the ι-rules Nat_rec C z s Zero -> z and
// Nat_rec C z s (Succ n) -> s n (Nat_rec C z s n).
func bindNatSchema(a *Arena) {
	a.registerSchema(AxiomNat, 0, func(a *Arena) Term {
		return a.TypeLevel(0)
	}, nil)

	natTerm := a.Axiom(AxiomNat)

	a.registerSchema(AxiomZero, 0, func(a *Arena) Term {
		return natTerm
	}, nil)

	a.registerSchema(AxiomSucc, 0, func(a *Arena) Term {
		return a.Prod(natTerm, natTerm) // Nat -> Nat; codomain is closed, needs no shift
	}, nil)

	u := a.LevelVar(0)
	sortU := a.Sort(u)
	zeroTerm := a.Axiom(AxiomZero)
	succAxiom := a.Axiom(AxiomSucc)

	tC := a.Prod(natTerm, sortU) // Nat -> Sort u, closed

	// cRef(n) is "C" referenced at depth n; C is the outermost bound
	// variable of Nat_rec, and tC is closed, so no shift is ever needed.
	cRef := func(n int) Term { return a.Var(n, tC) }

	// z's type: "C Zero", at depth 1 (after C).
	tZ := a.App(cRef(1), zeroTerm)

	// s's type: "(n:Nat) -> C n -> C (Succ n)", at depth 2 (after C, z).
	// Its own local n-binder starts at depth 2; the arrow to "C (Succ n)"
	// is one depth deeper still.
	localNAt3 := a.Var(1, natTerm) // the local "n", depth 3 (after C,z,n)
	cn := a.App(cRef(3), localNAt3)
	cSuccNAt4 := a.App(cRef(4), a.App(succAxiom, a.Var(2, natTerm))) // depth 4 (after C,z,n,_)
	innerArrow := a.Prod(cn, cSuccNAt4)
	tS := a.Prod(natTerm, innerArrow)

	// the final codomain "C n" for the outer n, at depth 4 (after C,z,s,n).
	bodyCN := a.App(cRef(4), a.Var(1, natTerm))

	prodN := a.Prod(natTerm, bodyCN)
	prodS := a.Prod(tS, prodN)
	prodZ := a.Prod(tZ, prodS)
	natRecType := a.Prod(tC, prodZ)

	a.axiomArity[AxiomNatRec] = 1
	a.axiomType[AxiomNatRec] = natRecType
	a.Bind(AxiomName(AxiomNatRec), a.Axiom(AxiomNatRec, u))

	a.axiomReduce[AxiomNatRec] = natRecReducer
}

func natRecReducer(a *Arena, head Term, args []Term) (Term, int, bool) {
	if len(args) < 4 {
		return nil, 0, false
	}
	cTerm, z, s, n := args[0], args[1], args[2], args[3]

	wn := a.Whnf(n)
	if wn.payload.kind == TAxiom && wn.payload.axiomID == AxiomZero {
		return z, 4, true
	}

	succHead, succArgs := peelSpine(wn)
	if succHead.payload.kind == TAxiom && succHead.payload.axiomID == AxiomSucc && len(succArgs) == 1 {
		pred := succArgs[0]
		recCall := a.App(a.App(a.App(head, cTerm), z), s)
		recCall = a.App(recCall, pred)
		return a.App(a.App(s, pred), recCall), 4, true
	}

	return nil, 0, false
}
