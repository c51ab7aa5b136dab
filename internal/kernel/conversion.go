package kernel

import kerrors "github.com/asm-nop/proost/internal/errors"

// conversion decides t ≡ u (spec §4.F), reporting true on success and
// discarding the failure's error. convert does the work and returns nil
// on success or a traced NotDefEq on failure; every recursive descent
// prepends its own Left/Right breadcrumb as the call unwinds, so the trace
// left on a propagated error is root-to-leaf by the time it reaches the
// caller.
func (a *Arena) conversion(t, u Term) bool {
	return a.convert(t, u) == nil
}

// IsDefEqErr is IsDefEq but returns the traced error instead of discarding it.
func (a *Arena) IsDefEqErr(t, u Term) error {
	return a.convert(t, u)
}

func (a *Arena) convert(t, u Term) error {
	if t == u {
		return nil
	}

	// Proof irrelevance: any two inhabitants of Prop are definitionally
	// equal (spec §4.F step 2, §9 glossary). Checked before whnf since it
	// is a type-level fact, not a reduction.
	if a.isPropProof(t) && a.isPropProof(u) {
		return nil
	}

	wt, wu := a.Whnf(t), a.Whnf(u)
	if wt == wu {
		return nil
	}

	switch {
	case wt.payload.kind == TSort && wu.payload.kind == TSort:
		if a.LevelEquiv(wt.payload.level, wu.payload.level) {
			return nil
		}
		return kerrors.NotDefEq(TermString(wt), TermString(wu))

	case wt.payload.kind == TVar && wu.payload.kind == TVar:
		// Cached types are ignored here: they are a construction hint,
		// not a source of truth, and are only sound under the
		// precondition that both sides already share a type (spec §9).
		if wt.payload.varIndex == wu.payload.varIndex {
			return nil
		}
		return kerrors.NotDefEq(TermString(wt), TermString(wu))

	case wt.payload.kind == TProd && wu.payload.kind == TProd:
		if err := a.convert(wt.payload.prodType, wu.payload.prodType); err != nil {
			return kerrors.WithTrace(err, kerrors.Left)
		}
		if err := a.convert(wt.payload.prodBody, wu.payload.prodBody); err != nil {
			return kerrors.WithTrace(err, kerrors.Right)
		}
		return nil

	case wt.payload.kind == TAbs && wu.payload.kind == TAbs:
		// Binder types are ignored: both terms are assumed to share a
		// type already, per spec §4.F step 4.
		if err := a.convert(wt.payload.absBody, wu.payload.absBody); err != nil {
			return kerrors.WithTrace(err, kerrors.Right)
		}
		return nil

	case wt.payload.kind == TApp && wu.payload.kind == TApp:
		if err := a.convert(wt.payload.fnTerm, wu.payload.fnTerm); err != nil {
			return kerrors.WithTrace(err, kerrors.Left)
		}
		if err := a.convert(wt.payload.argTerm, wu.payload.argTerm); err != nil {
			return kerrors.WithTrace(err, kerrors.Right)
		}
		return nil

	case wt.payload.kind == TDecl:
		return a.convert(a.unfold(wt), wu)

	case wu.payload.kind == TDecl:
		return a.convert(wt, a.unfold(wu))

	default:
		return kerrors.NotDefEq(TermString(wt), TermString(wu))
	}
}

// isPropProof reports whether t's inferred type whnf-s to Sort(0), i.e.
// t inhabits Prop. Inference failures are treated as "not a proof" rather
// than propagated, since conversion's proof-irrelevance shortcut is an
// optimization, not itself a typing judgment.
func (a *Arena) isPropProof(t Term) bool {
	typ, err := a.Infer(t)
	if err != nil {
		return false
	}
	wtyp := a.Whnf(typ)
	return wtyp.payload.kind == TSort && wtyp.payload.level == a.LevelZero()
}
