package kernel

import "fmt"

// TermString renders t for diagnostics. The kernel has no binder names
// (terms are de Bruijn-indexed), so variables print as their index; a
// surface-syntax front end that tracks names can re-render more
// helpfully from the same term tree.
func TermString(t Term) string {
	switch t.payload.kind {
	case TSort:
		l := t.payload.level
		if l.payload.kind == LZero {
			return "Prop"
		}
		return fmt.Sprintf("Sort(%s)", LevelString(l))
	case TVar:
		return fmt.Sprintf("#%d", t.payload.varIndex)
	case TApp:
		return fmt.Sprintf("(%s %s)", TermString(t.payload.fnTerm), TermString(t.payload.argTerm))
	case TAbs:
		return fmt.Sprintf("(fun _:%s => %s)", TermString(t.payload.absType), TermString(t.payload.absBody))
	case TProd:
		return fmt.Sprintf("(forall _:%s, %s)", TermString(t.payload.prodType), TermString(t.payload.prodBody))
	case TAxiom:
		levels := make([]string, t.payload.axiomLevelsN)
		for i := range levels {
			levels[i] = LevelString(t.payload.axiomLevels[i])
		}
		if len(levels) == 0 {
			return AxiomName(t.payload.axiomID)
		}
		s := AxiomName(t.payload.axiomID) + ".{"
		for i, l := range levels {
			if i > 0 {
				s += ","
			}
			s += l
		}
		return s + "}"
	case TDecl:
		return fmt.Sprintf("decl<%p>", t.payload.declInst.decl)
	default:
		return "?"
	}
}
