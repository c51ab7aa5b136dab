package kernel

// Whnf reduces t to weak-head normal form (spec §4.D): beta, then delta
// (lazy declaration unfolding), then the iota rules contributed by axiom
// schemas, applied head-first until none fires. The result is memoized on
// t's lazy whnf slot; a term already in whnf has whnf == itself.
func (a *Arena) Whnf(t Term) Term {
	if t.whnf != nil {
		return t.whnf
	}
	result := a.computeWhnf(t)
	t.whnf = result
	if result.whnf == nil {
		result.whnf = result
	}
	return result
}

func (a *Arena) computeWhnf(t Term) Term {
	cur := t
	for {
		switch cur.payload.kind {
		case TDecl:
			cur = a.unfold(cur)
			continue

		case TApp:
			head, args := peelSpine(cur)
			whnfHead := a.Whnf(head)

			if whnfHead.payload.kind == TAbs && len(args) > 0 {
				reduced := a.Substitute(whnfHead.payload.absBody, args[0], 1)
				cur = rebuildSpine(a, reduced, args[1:])
				continue
			}

			if whnfHead.payload.kind == TAxiom {
				if result, consumed, ok := a.reduceAxiomSpine(whnfHead, args); ok {
					cur = rebuildSpine(a, result, args[consumed:])
					continue
				}
			}

			if whnfHead.payload.kind == TDecl {
				cur = rebuildSpine(a, a.unfold(whnfHead), args)
				continue
			}

			if whnfHead == head {
				return cur
			}
			return rebuildSpine(a, whnfHead, args)

		default:
			return cur
		}
	}
}

// peelSpine decomposes t = App(...App(App(head, a0), a1)..., an) into its
// non-App head and the ordered argument list [a0, a1, ..., an].
func peelSpine(t Term) (Term, []Term) {
	var reversed []Term
	for t.payload.kind == TApp {
		reversed = append(reversed, t.payload.argTerm)
		t = t.payload.fnTerm
	}
	args := make([]Term, len(reversed))
	for i, a := range reversed {
		args[len(args)-1-i] = a
	}
	return t, args
}

// rebuildSpine re-applies args to head in order, the inverse of peelSpine.
func rebuildSpine(a *Arena, head Term, args []Term) Term {
	result := head
	for _, arg := range args {
		result = a.App(result, arg)
	}
	return result
}

// IsDefEq decides t ≡ u, delegating to the conversion algorithm; kept
// here as a thin alias so callers reading whnf.go alongside conversion.go
// see both reduction entry points together.
func (a *Arena) IsDefEq(t, u Term) bool {
	return a.conversion(t, u)
}
