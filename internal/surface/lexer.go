// Package surface is the external collaborator spec.md §1 anticipates but
// deliberately keeps out of the kernel: a participle grammar over a named
// surface syntax (terms, levels, and the def/check/eval commands), and a
// translator from its AST into internal/builder calls. Grounded on the
// teacher's grammar/lexer.go + grammar/grammar.go, rewritten for this
// language's syntax.
package surface

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ProostLexer tokenizes term/level/command syntax. As in the teacher's
// KansoLexer, keywords ("def", "fun", "Prop", "max", ...) are not their
// own token kind — they are plain Idents that the grammar below matches
// by literal value, exactly as "module"/"contract" are matched in
// grammar/grammar.go.
var ProostLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `--[^\n]*`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Integer", `[0-9]+`, nil},
		{"Operator", `(:=|=>|->)`, nil},
		{"Punctuation", `[(){}.,:;+]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
