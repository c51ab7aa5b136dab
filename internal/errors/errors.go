// Package errors implements the kernel's structured diagnostics: error
// kinds, the Left/Right path trace attached to every failure (spec §4.G),
// and a fluent builder for attaching suggestions/notes/help text to them.
package errors

import "fmt"

// Step is one breadcrumb of a trace: which side of a binary structural
// recursion (Prod/Abs/App/imax/...) produced the propagated failure.
type Step int

const (
	Left Step = iota
	Right
)

func (s Step) String() string {
	if s == Left {
		return "Left"
	}
	return "Right"
}

// Trace is the path from the root of a term to the sub-term that failed,
// recorded in root-to-leaf order. Each recursive descent that re-wraps a
// propagated error prepends its own Step, so the trace grows at the front
// as the error unwinds back out to the caller of infer/check/is_def_eq.
type Trace []Step

// KernelError is a structured, traceable kernel diagnostic.
type KernelError struct {
	Code        string
	Message     string
	Terms       []string // the offending sub-term(s), already rendered
	Trace       Trace
	Suggestions []string
	Notes       []string
	HelpText    string
}

// Error implements the error interface.
func (e KernelError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithTrace prepends step to the trace and returns the (value-copied) error.
// This is the kernel-side equivalent of the original's `trace_err`: called
// both at the point an error is constructed (to record the structural
// position within the current node) and at every enclosing recursive call
// as the error propagates back to the caller.
func WithTrace(err error, step Step) error {
	if err == nil {
		return nil
	}
	ke, ok := err.(KernelError)
	if !ok {
		return err
	}
	grown := make(Trace, len(ke.Trace)+1)
	grown[0] = step
	copy(grown[1:], ke.Trace)
	ke.Trace = grown
	return ke
}

// Builder provides a fluent interface for attaching suggestions, notes,
// and help text to a kernel error, mirroring this toolchain's semantic
// error builder.
type Builder struct {
	err KernelError
}

// New starts building a kernel error with the given code and message.
func New(code, message string) *Builder {
	return &Builder{err: KernelError{Code: code, Message: message}}
}

// WithTerms attaches the rendered offending sub-term(s) to the error.
func (b *Builder) WithTerms(terms ...string) *Builder {
	b.err.Terms = append(b.err.Terms, terms...)
	return b
}

// WithSuggestion adds a suggested fix.
func (b *Builder) WithSuggestion(message string) *Builder {
	b.err.Suggestions = append(b.err.Suggestions, message)
	return b
}

// WithNote adds additional context.
func (b *Builder) WithNote(note string) *Builder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp sets the help text.
func (b *Builder) WithHelp(help string) *Builder {
	b.err.HelpText = help
	return b
}

// Build returns the completed error.
func (b *Builder) Build() KernelError {
	return b.err
}

// The six kernel error constructors below correspond one-to-one to the
// ErrorKind variants of spec §4.G/§7. Each is returned with an empty
// trace; the caller adds the local step via WithTrace, exactly as type
// checking determines at which structural position (Left/Right) the
// failure occurred.

// NotUniverse reports that term (rendered) did not reduce to a Sort where one was required.
func NotUniverse(term string) KernelError {
	return New(CodeNotUniverse, fmt.Sprintf("%s is not a universe", term)).
		WithTerms(term).
		WithSuggestion("the type of a Pi binder or codomain, and of a lambda's argument type, must reduce to a Sort").
		Build()
}

// NotDefEq reports that t and u are not definitionally equal.
func NotDefEq(t, u string) KernelError {
	return New(CodeNotDefEq, fmt.Sprintf("%s and %s are not definitionally equal", t, u)).
		WithTerms(t, u).
		Build()
}

// WrongArgumentType reports that fn expected a term of type expected but received got (of type gotType).
func WrongArgumentType(fn, expected, got, gotType string) KernelError {
	return New(CodeWrongArgumentType, fmt.Sprintf("function %s expects a term of type %s, received %s : %s", fn, expected, got, gotType)).
		WithTerms(fn, expected, got, gotType).
		Build()
}

// NotAFunction reports that fn (of type fnType) was applied to arg but is not a function.
func NotAFunction(fn, fnType, arg string) KernelError {
	return New(CodeNotAFunction, fmt.Sprintf("%s : %s is not a function, it cannot be applied to %s", fn, fnType, arg)).
		WithTerms(fn, fnType, arg).
		Build()
}

// TypeMismatch reports that actual was inferred where expected was required.
func TypeMismatch(expected, actual string) KernelError {
	return New(CodeTypeMismatch, fmt.Sprintf("expected %s, got %s", expected, actual)).
		WithTerms(expected, actual).
		Build()
}

// ConstNotFound reports that name has no local or arena binding.
func ConstNotFound(name string) KernelError {
	return New(CodeConstNotFound, fmt.Sprintf("unknown identifier %s", name)).
		WithTerms(name).
		WithSuggestion("bind the name first with Arena.Bind/BindDecl, or check for a typo").
		Build()
}
