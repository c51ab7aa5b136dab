package surface

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/asm-nop/proost/internal/builder"
	kerrors "github.com/asm-nop/proost/internal/errors"
	kernel "github.com/asm-nop/proost/internal/kernel"
)

// proostParser is built once: participle.Build validates the grammar's
// struct tags at init time, matching the teacher's package-level
// parser.Parse in grammar/parser.go.
var proostParser = participle.MustBuild[Program](
	participle.Lexer(ProostLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(4),
)

// Interpreter runs a sequence of def/check/eval commands against a single
// kernel.Arena, accumulating declarations across commands the way the
// teacher's Program accumulates top-level elements across one parse.
type Interpreter struct {
	arena    *kernel.Arena
	reporter *kerrors.Reporter
}

// NewInterpreter creates an interpreter with a fresh, axiom-populated
// arena (spec §6's Eq/False/Nat schemas are always in scope).
func NewInterpreter() *Interpreter {
	return &Interpreter{
		arena:    kernel.NewArenaWithAxioms(),
		reporter: kerrors.NewReporter(""),
	}
}

// Run parses source and executes each command in order, returning one
// report line per command (the printed type/normal form, or a formatted
// diagnostic) and stopping at the first error it cannot recover from —
// a parse failure aborts the whole run, but a single command's kernel
// error is reported and execution continues with the next command, the
// same resilience the teacher's REPL shows for a bad line.
func (in *Interpreter) Run(source string) ([]string, error) {
	program, err := proostParser.ParseString("<input>", source)
	if err != nil {
		if pe, ok := err.(participle.Error); ok {
			return nil, fmt.Errorf("syntax error at %d:%d: %s", pe.Position().Line, pe.Position().Column, pe.Message())
		}
		return nil, err
	}

	var out []string
	for _, cmd := range program.Commands {
		out = append(out, in.execCommand(cmd))
	}
	return out, nil
}

func (in *Interpreter) execCommand(cmd *Command) string {
	switch {
	case cmd.Def != nil:
		return in.execDef(cmd.Def)
	case cmd.Check != nil:
		return in.execCheck(cmd.Check)
	case cmd.Eval != nil:
		return in.execEval(cmd.Eval)
	default:
		return "error: empty command"
	}
}

func (in *Interpreter) execDef(def *DefCommand) string {
	decl, err := builder.NewTermBuilder(in.arena).Define(def.Name, def.Levels, func(tb *builder.TermBuilder, lb *builder.LevelBuilder) (kernel.Term, error) {
		body, err := translateTerm(tb, lb, def.Body)
		if err != nil {
			return nil, err
		}
		if def.Type != nil {
			want, err := translateTerm(tb, lb, def.Type)
			if err != nil {
				return nil, err
			}
			if err := in.arena.Check(body, want); err != nil {
				return nil, err
			}
		}
		return body, nil
	})
	if err != nil {
		return in.formatErr(err)
	}
	_ = decl
	return fmt.Sprintf("%s defined", def.Name)
}

func (in *Interpreter) execCheck(chk *CheckCommand) string {
	tb := builder.NewTermBuilder(in.arena)
	lb := builder.NewLevelBuilder(in.arena, builder.NewLevelEnvironment())
	term, err := translateTerm(tb, lb, chk.Term)
	if err != nil {
		return in.formatErr(err)
	}
	got, err := in.arena.Infer(term)
	if err != nil {
		return in.formatErr(err)
	}
	if chk.Expected != nil {
		want, err := translateTerm(tb, lb, chk.Expected)
		if err != nil {
			return in.formatErr(err)
		}
		if err := in.arena.Check(term, want); err != nil {
			return in.formatErr(err)
		}
	}
	return fmt.Sprintf("%s : %s", kernel.TermString(term), kernel.TermString(got))
}

func (in *Interpreter) execEval(ev *EvalCommand) string {
	tb := builder.NewTermBuilder(in.arena)
	lb := builder.NewLevelBuilder(in.arena, builder.NewLevelEnvironment())
	term, err := translateTerm(tb, lb, ev.Term)
	if err != nil {
		return in.formatErr(err)
	}
	reduced := in.arena.Whnf(term)
	return kernel.TermString(reduced)
}

func (in *Interpreter) formatErr(err error) string {
	if ke, ok := err.(kerrors.KernelError); ok {
		return strings.TrimRight(in.reporter.FormatError(ke), "\n")
	}
	return fmt.Sprintf("error: %s", err)
}
