package kernel

// declNode backs a Declaration: a closed body polymorphic in `arity` free
// universe variables u_0 ... u_{arity-1} (spec §3, §4.H). cachedType is
// filled once, lazily, by DeclGetTypeOrInit — the type of the body *without*
// universe substitution; DeclGetTerm/DeclGetTypeOrInit apply the
// substitution per instantiation.
type declNode struct {
	Body  Term
	Arity int

	cachedType Term
}

// Declaration is an arena handle for a named, universe-polymorphic body.
type Declaration = *declNode

// NewDeclaration creates a declaration handle. Declarations are not
// hashconsed the way terms and levels are — the spec models them as a
// plain (body, arity) pair (§3) rather than a payload eligible for
// structural deduplication, since two distinct `def`s with identical
// bodies are still distinct declarations (e.g. for diagnostics).
func (a *Arena) NewDeclaration(body Term, arity int) Declaration {
	d := &declNode{Body: body, Arity: arity}
	a.decls[d] = struct{}{}
	return d
}

// instantiatedDecl is the interned pairing of a declaration with the
// level vector it is instantiated at (spec §3, "instantiated
// declaration"). It carries its own memoized substituted body so repeat
// queries against the same instantiation are O(1).
type instantiatedDecl struct {
	decl   Declaration
	levels [maxUniverseArity]Level
	n      int

	termCache Term // unfold(Decl(this)), filled once
}

func (id *instantiatedDecl) levelSlice() []Level {
	return id.levels[:id.n]
}

// InstantiateDeclaration builds the `Decl(d)` term for d applied to
// levels, validating the vector length against d's arity first. Per
// spec §9 ("malformed instantiation vectors may loop and should be
// guarded at the boundary"), a length mismatch is rejected here rather
// than silently truncated or zero-padded, since substitute_univs would
// otherwise silently leave some u_i unsubstituted or index past levels.
func (a *Arena) InstantiateDeclaration(d Declaration, levels []Level) (Term, error) {
	if len(levels) != d.Arity {
		return nil, &instantiationArityError{want: d.Arity, got: len(levels)}
	}
	return a.instantiateDecl(d, levels), nil
}

// instantiateDecl is the unchecked, internal counterpart used once arity
// has already been validated (e.g. by BindDecl for the 0-arity case).
func (a *Arena) instantiateDecl(d Declaration, levels []Level) Term {
	key := instDeclKey{decl: d, n: len(levels)}
	copy(key.levels[:], levels)

	inst, ok := a.instDecls[key]
	if !ok {
		inst = &instantiatedDecl{decl: d, n: len(levels)}
		copy(inst.levels[:], levels)
		a.instDecls[key] = inst
	}
	return a.internTerm(termPayload{kind: TDecl, declInst: inst})
}

type instantiationArityError struct {
	want, got int
}

func (e *instantiationArityError) Error() string {
	return "declaration instantiation arity mismatch"
}

// DeclGetTerm substitutes inst's levels into its declaration's body,
// memoizing the result on the instantiation (spec §4.H, "Decl.get_term").
func (a *Arena) DeclGetTerm(inst *instantiatedDecl) Term {
	if inst.termCache != nil {
		return inst.termCache
	}
	result := a.substituteUniversesInTerm(inst.decl.Body, inst.levelSlice())
	inst.termCache = result
	return result
}

// DeclGetTypeOrInit computes the type of inst's declaration body without
// universe substitution, caching it on the *declaration* (not the
// instantiation) the first time any instantiation asks for it, then
// returns the substituted form for this particular instantiation (spec
// §4.H, "Decl.get_type_or_init").
func (a *Arena) DeclGetTypeOrInit(inst *instantiatedDecl) (Term, error) {
	if inst.decl.cachedType == nil {
		t, err := a.Infer(inst.decl.Body)
		if err != nil {
			return nil, err
		}
		inst.decl.cachedType = t
	}
	return a.substituteUniversesInTerm(inst.decl.cachedType, inst.levelSlice()), nil
}
