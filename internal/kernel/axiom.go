package kernel

// AxiomID names one of the fixed built-in constants (spec §6): exactly
// the equality, falsity, and natural-number schemas, each contributing a
// handful of constants with a declared universe arity, a type, and
// (for eliminators) an ι-reduction rule.
type AxiomID int

const (
	AxiomEq AxiomID = iota
	AxiomRefl
	AxiomEqRec
	AxiomFalse
	AxiomFalseRec
	AxiomNat
	AxiomZero
	AxiomSucc
	AxiomNatRec
)

var axiomNames = map[AxiomID]string{
	AxiomEq:       "Eq",
	AxiomRefl:     "Refl",
	AxiomEqRec:    "Eq_rec",
	AxiomFalse:    "False",
	AxiomFalseRec: "False_rec",
	AxiomNat:      "Nat",
	AxiomZero:     "Zero",
	AxiomSucc:     "Succ",
	AxiomNatRec:   "Nat_rec",
}

// AxiomName returns the fixed surface name of id.
func AxiomName(id AxiomID) string { return axiomNames[id] }

var axiomIDByName = func() map[string]AxiomID {
	m := make(map[string]AxiomID, len(axiomNames))
	for id, name := range axiomNames {
		m[name] = id
	}
	return m
}()

// LookupAxiomID resolves one of the fixed built-in names (spec §6) back
// to its AxiomID, letting a surface front end re-instantiate an axiom at
// explicit universe levels instead of using its generic arena binding.
func LookupAxiomID(name string) (AxiomID, bool) {
	id, ok := axiomIDByName[name]
	return id, ok
}

// axiomReducer attempts an ι-reduction given the whnf'd Axiom(id, _) head
// term itself (so a recursor can rebuild a recursive call with the same
// universe instantiation) and the spine of arguments applied to it. It
// returns the reduced term, how many leading args it consumed, and true
// on a match; on a stuck spine (e.g. the eliminated argument isn't yet a
// constructor, or too few args have been applied) it returns (nil, 0,
// false) and whnf leaves the term as-is.
type axiomReducer func(a *Arena, head Term, args []Term) (result Term, consumed int, ok bool)

// registerSchema installs one built-in constant: its universe arity, a
// generic type built in terms of its own fresh universe variables
// (LevelVar(0), LevelVar(1), ...), and an optional ι-reducer. The generic
// type is cached on the arena and specialized per instantiation by
// SchemaType via SubstituteUniverses, mirroring how §4.H specializes a
// declaration's cached type per instantiation.
func (a *Arena) registerSchema(id AxiomID, arity int, typeBuilder func(a *Arena) Term, reducer axiomReducer) {
	a.axiomArity[id] = arity
	a.axiomType[id] = typeBuilder(a)
	if reducer != nil {
		a.axiomReduce[id] = reducer
	}
	a.Bind(AxiomName(id), a.Axiom(id, a.freshUniverseVars(arity)...))
}

// freshUniverseVars returns [u_0, ..., u_{n-1}], the generic instantiation
// used when a schema's own defining type refers to its universe params.
func (a *Arena) freshUniverseVars(n int) []Level {
	vs := make([]Level, n)
	for i := range vs {
		vs[i] = a.LevelVar(i)
	}
	return vs
}

// SchemaArity returns the universe arity id was registered with.
func (a *Arena) SchemaArity(id AxiomID) int {
	return a.axiomArity[id]
}

// SchemaType computes schema_type(id)[levels] (spec §4.F): the generic
// type, specialized by substituting levels for the schema's own universe
// variables.
func (a *Arena) SchemaType(id AxiomID, levels []Level) Term {
	generic := a.axiomType[id]
	return a.substituteUniversesInTerm(generic, levels)
}

// reduceAxiomSpine dispatches to head's ι-reducer, if any, with the
// argument spine following the Axiom head.
func (a *Arena) reduceAxiomSpine(head Term, args []Term) (Term, int, bool) {
	reducer, ok := a.axiomReduce[head.payload.axiomID]
	if !ok {
		return nil, 0, false
	}
	return reducer(a, head, args)
}
