package surface

import (
	"fmt"
	"strconv"

	"github.com/asm-nop/proost/internal/builder"
	kernel "github.com/asm-nop/proost/internal/kernel"
)

// translateTerm walks a parsed Term into a kernel.Term, threading tb (for
// name resolution and Abs/Prod scoping) and lb (for level-name
// resolution) through the recursion.
func translateTerm(tb *builder.TermBuilder, lb *builder.LevelBuilder, t *Term) (kernel.Term, error) {
	switch {
	case t.Fun != nil:
		argType, err := translateTerm(tb, lb, t.Fun.ArgType)
		if err != nil {
			return nil, err
		}
		return tb.Abs(t.Fun.Name, argType, func(inner *builder.TermBuilder) (kernel.Term, error) {
			return translateTerm(inner, lb, t.Fun.Body)
		})
	case t.Forall != nil:
		argType, err := translateTerm(tb, lb, t.Forall.ArgType)
		if err != nil {
			return nil, err
		}
		return tb.Prod(t.Forall.Name, argType, func(inner *builder.TermBuilder) (kernel.Term, error) {
			return translateTerm(inner, lb, t.Forall.Body)
		})
	case t.App != nil:
		return translateApp(tb, lb, t.App)
	default:
		return nil, fmt.Errorf("surface: empty term node")
	}
}

func translateApp(tb *builder.TermBuilder, lb *builder.LevelBuilder, app *AppTerm) (kernel.Term, error) {
	head, err := translateAtom(tb, lb, app.Head)
	if err != nil {
		return nil, err
	}
	for _, argAtom := range app.Args {
		arg, err := translateAtom(tb, lb, argAtom)
		if err != nil {
			return nil, err
		}
		head = tb.App(head, arg)
	}
	return head, nil
}

func translateAtom(tb *builder.TermBuilder, lb *builder.LevelBuilder, atom *Atom) (kernel.Term, error) {
	switch {
	case atom.Prop:
		return tb.Prop(), nil
	case atom.TypeN != nil:
		n, err := strconv.ParseUint(*atom.TypeN, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("surface: bad Type level %q: %w", *atom.TypeN, err)
		}
		return tb.TypeN(uint32(n)), nil
	case atom.Sort != nil:
		l, err := translateLevel(lb, atom.Sort)
		if err != nil {
			return nil, err
		}
		return tb.Sort(l), nil
	case atom.Ref != nil:
		return translateRef(tb, lb, atom.Ref)
	case atom.Paren != nil:
		return translateTerm(tb, lb, atom.Paren)
	default:
		return nil, fmt.Errorf("surface: empty atom node")
	}
}

// translateRef resolves a bare or universe-instantiated name. Explicit
// levels (`Name.{l0,l1,...}`) re-instantiate one of the fixed built-in
// axioms directly (spec §4.E treats axioms as plain Axiom(k, L̄) terms,
// not declarations) if Name names one, falling back to a user
// declaration's InstantiateDeclaration otherwise. A bare name resolves
// through the ordinary lexical/arena/declaration chain (builder.Var).
func translateRef(tb *builder.TermBuilder, lb *builder.LevelBuilder, ref *Ref) (kernel.Term, error) {
	if len(ref.Levels) == 0 {
		return tb.Var(ref.Name)
	}
	levels := make([]kernel.Level, len(ref.Levels))
	for i, lvl := range ref.Levels {
		l, err := translateLevel(lb, lvl)
		if err != nil {
			return nil, err
		}
		levels[i] = l
	}
	if id, ok := kernel.LookupAxiomID(ref.Name); ok {
		return tb.Axiom(id, levels...), nil
	}
	return tb.Decl(ref.Name, levels)
}

func translateLevel(lb *builder.LevelBuilder, lvl *Level) (kernel.Level, error) {
	base, err := translateLevelAtom(lb, lvl.Base)
	if err != nil {
		return nil, err
	}
	if lvl.Plus == nil {
		return base, nil
	}
	k, err := strconv.ParseUint(*lvl.Plus, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("surface: bad level offset %q: %w", *lvl.Plus, err)
	}
	return lb.Add(base, uint32(k)), nil
}

func translateLevelAtom(lb *builder.LevelBuilder, atom *LevelAtom) (kernel.Level, error) {
	switch {
	case atom.Zero:
		return lb.Zero(), nil
	case atom.Max != nil:
		left, right, err := translateLevelPair(lb, atom.Max)
		if err != nil {
			return nil, err
		}
		return lb.Max(left, right), nil
	case atom.IMax != nil:
		left, right, err := translateLevelPair(lb, atom.IMax)
		if err != nil {
			return nil, err
		}
		return lb.IMax(left, right), nil
	case atom.Var != nil:
		return lb.Var(*atom.Var)
	default:
		return nil, fmt.Errorf("surface: empty level node")
	}
}

func translateLevelPair(lb *builder.LevelBuilder, pair *LevelPair) (kernel.Level, kernel.Level, error) {
	left, err := translateLevel(lb, pair.Left)
	if err != nil {
		return nil, nil, err
	}
	right, err := translateLevel(lb, pair.Right)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}
