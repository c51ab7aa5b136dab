package kernel

// bindFalsitySchema installs the falsity schema (spec §4.E, "other
// schemas ... follow the same shape"):
//
//	False       : Prop
//	False_rec.{u} : (p : False) -> (C : Sort u) -> C
//
// False has no constructor, so False_rec has no ι-reduction rule: there
// is nothing for it to ever match against, exactly as spec §4.E predicts
// for this schema ("no reduction rule — there is no constructor, so ι
// never fires").
func bindFalsitySchema(a *Arena) {
	a.registerSchema(AxiomFalse, 0, func(a *Arena) Term {
		return a.Prop()
	}, nil)

	u := a.LevelVar(0)
	sortU := a.Sort(u)
	falseTerm := a.Axiom(AxiomFalse)

	// (p:False) -> (C:Sort u) -> C
	cRef := a.Var(1, sortU) // C referenced at depth 2 (after p, C), index 2-2+1=1
	falseRecType := a.Prod(falseTerm, a.Prod(sortU, cRef))

	a.axiomArity[AxiomFalseRec] = 1
	a.axiomType[AxiomFalseRec] = falseRecType
	a.Bind(AxiomName(AxiomFalseRec), a.Axiom(AxiomFalseRec, u))
}
