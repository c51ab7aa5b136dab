package surface

// Program is the top-level parse result: a sequence of def/check/eval
// commands, mirroring the teacher's Program/SourceElement shape
// (grammar/grammar.go) but over this language's three command kinds
// instead of modules/structs/functions.
type Program struct {
	Commands []*Command `@@*`
}

type Command struct {
	Def   *DefCommand   `  "def" @@`
	Check *CheckCommand `| "check" @@`
	Eval  *EvalCommand  `| "eval" @@`
}

// DefCommand introduces a declaration: `def name.{u,v} : T := body ;`. The
// type annotation is optional — when absent, the body's inferred type is
// used (spec §4.H never requires the annotation, only the arity of the
// universe parameter list).
type DefCommand struct {
	Name   string   `@Ident`
	Levels []string `["." "{" @Ident { "," @Ident } "}"]`
	Type   *Term    `[ ":" @@ ]`
	Body   *Term    `":=" @@ ";"`
}

// CheckCommand reports (or verifies) a term's type: `check t ;` infers
// and prints t's type, `check t : T ;` additionally requires it convert
// to T.
type CheckCommand struct {
	Term     *Term `@@`
	Expected *Term `[ ":" @@ ]`
	_        string `";"`
}

// EvalCommand reduces a term to whnf and prints the result: `eval t ;`.
type EvalCommand struct {
	Term *Term  `@@`
	_    string `";"`
}

// Term is a surface term. The three alternatives are tried in order;
// AppTerm (plain application/atom) is listed last since fun/forall are
// the only forms with a distinguishing leading keyword.
type Term struct {
	Fun    *FunTerm    `  @@`
	Forall *ForallTerm `| @@`
	App    *AppTerm    `| @@`
}

// FunTerm is `fun x : T => body`.
type FunTerm struct {
	Name    string `"fun" @Ident ":"`
	ArgType *Term  `@@ "=>"`
	Body    *Term  `@@`
}

// ForallTerm is `forall x : T, body`, the dependent product.
type ForallTerm struct {
	Name    string `"forall" @Ident ":"`
	ArgType *Term  `@@ ","`
	Body    *Term  `@@`
}

// AppTerm is left-associative application: Head applied to zero or more
// Args in order.
type AppTerm struct {
	Head *Atom   `@@`
	Args []*Atom `{ @@ }`
}

// Atom is one non-application term: a sort constant, a reference (with
// optional universe instantiation), or a parenthesized term.
type Atom struct {
	Prop   bool      `(  @"Prop"`
	TypeN  *string   ` | "Type" @Integer`
	Sort   *Level    ` | "Sort" @@`
	Ref    *Ref      ` | @@`
	Paren  *Term     ` | "(" @@ ")" )`
}

// Ref is a bare name, optionally instantiated at explicit universe levels:
// `Eq_rec.{0,0}`.
type Ref struct {
	Name   string   `@Ident`
	Levels []*Level `["." "{" @@ { "," @@ } "}"]`
}

// Level is a universe level expression: a base (0, a named variable, or a
// max/imax of two levels) optionally offset by a literal successor count.
type Level struct {
	Base *LevelAtom `@@`
	Plus *string    `[ "+" @Integer ]`
}

type LevelAtom struct {
	Zero bool        `(  @"0"`
	Max  *LevelPair  ` | "max" "(" @@ ")"`
	IMax *LevelPair  ` | "imax" "(" @@ ")"`
	Var  *string     ` | @Ident )`
}

type LevelPair struct {
	Left  *Level `@@ ","`
	Right *Level `@@`
}
