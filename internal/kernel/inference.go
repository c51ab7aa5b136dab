package kernel

import kerrors "github.com/asm-nop/proost/internal/errors"

// Infer decides ⊢ t : ? (spec §4.F), memoized on t's lazy type slot: a
// cache hit returns in O(1) and a cache miss, on success, installs the
// type before returning so every later caller observes the same handle
// (spec §4.F, "state machine for a single infer(t) call"). A failure
// leaves the slot empty so a later call retries from scratch.
func (a *Arena) Infer(t Term) (Term, error) {
	if t.typ != nil {
		return t.typ, nil
	}
	result, err := a.inferUncached(t)
	if err != nil {
		return nil, err
	}
	t.typ = result
	return result, nil
}

func (a *Arena) inferUncached(t Term) (Term, error) {
	switch t.payload.kind {
	case TSort:
		return a.Sort(a.LevelSucc(t.payload.level)), nil

	case TVar:
		return t.payload.varType, nil

	case TAxiom:
		return a.SchemaType(t.payload.axiomID, t.payload.axiomLevels[:t.payload.axiomLevelsN]), nil

	case TProd:
		la, err := a.sortOf(t.payload.prodType)
		if err != nil {
			return nil, kerrors.WithTrace(err, kerrors.Left)
		}
		lb, err := a.sortOf(t.payload.prodBody)
		if err != nil {
			return nil, kerrors.WithTrace(err, kerrors.Right)
		}
		return a.Sort(a.LevelIMax(la, lb)), nil

	case TAbs:
		if _, err := a.sortOf(t.payload.absType); err != nil {
			return nil, kerrors.WithTrace(err, kerrors.Left)
		}
		bodyType, err := a.Infer(t.payload.absBody)
		if err != nil {
			return nil, kerrors.WithTrace(err, kerrors.Right)
		}
		return a.Prod(t.payload.absType, bodyType), nil

	case TApp:
		return a.inferApp(t)

	case TDecl:
		return a.DeclGetTypeOrInit(t.payload.declInst)

	default:
		panic("kernel: inferUncached: unknown term kind")
	}
}

func (a *Arena) inferApp(t Term) (Term, error) {
	fn, arg := t.payload.fnTerm, t.payload.argTerm

	fnType, err := a.Infer(fn)
	if err != nil {
		return nil, kerrors.WithTrace(err, kerrors.Left)
	}
	wfn := a.Whnf(fnType)
	if wfn.payload.kind != TProd {
		return nil, kerrors.WithTrace(kerrors.NotAFunction(TermString(fn), TermString(wfn), TermString(arg)), kerrors.Left)
	}

	argType, err := a.Infer(arg)
	if err != nil {
		return nil, kerrors.WithTrace(err, kerrors.Right)
	}
	if !a.conversion(argType, wfn.payload.prodType) {
		werr := kerrors.WrongArgumentType(TermString(fn), TermString(wfn.payload.prodType), TermString(arg), TermString(argType))
		return nil, kerrors.WithTrace(werr, kerrors.Right)
	}

	return a.Substitute(wfn.payload.prodBody, arg, 1), nil
}

// sortOf infers x's type and requires its whnf to be a Sort, returning
// the universe level; this backs both Prod's imax rule and Abs's binder
// check (spec §4.F).
func (a *Arena) sortOf(x Term) (Level, error) {
	typ, err := a.Infer(x)
	if err != nil {
		return nil, err
	}
	wtyp := a.Whnf(typ)
	if wtyp.payload.kind != TSort {
		return nil, kerrors.NotUniverse(TermString(wtyp))
	}
	return wtyp.payload.level, nil
}

// Check is infer(t) followed by a conversion requirement against T (spec
// §4.F, "check(t, T)"), reporting TypeMismatch on disagreement.
func (a *Arena) Check(t, want Term) error {
	got, err := a.Infer(t)
	if err != nil {
		return err
	}
	if !a.conversion(got, want) {
		return kerrors.TypeMismatch(TermString(want), TermString(got))
	}
	return nil
}
