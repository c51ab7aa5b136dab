package errors

// Error codes for the kernel.
//
// The kernel raises exactly six kinds of failure (spec §7's taxonomy);
// each gets a stable code so diagnostics can be looked up and documented
// independently of the English message, the same convention the rest of
// this toolchain's error codes (E0NNN) follow.
//
// Code ranges:
// K0001-K0009: core type-checking failures (conversion, inference)
// K0010-K0019: builder-surface failures (term/level construction)
const (
	// K0001: a term used in a universe-producing position (Pi/Abs) is not a Sort.
	CodeNotUniverse = "K0001"

	// K0002: two terms were required to be definitionally equal and are not.
	CodeNotDefEq = "K0002"

	// K0003: a function argument's inferred type does not convert to the expected domain.
	CodeWrongArgumentType = "K0003"

	// K0004: an application's head does not infer to a Pi type.
	CodeNotAFunction = "K0004"

	// K0005: check(t, T) succeeded in inferring t's type but it disagrees with T.
	CodeTypeMismatch = "K0005"

	// K0010: a builder referenced a name with no local or arena binding.
	CodeConstNotFound = "K0010"
)

// Description returns a human-readable explanation of a kernel error code.
func Description(code string) string {
	switch code {
	case CodeNotUniverse:
		return "a Pi or lambda binder/codomain did not reduce to a universe"
	case CodeNotDefEq:
		return "the two terms are not definitionally equal"
	case CodeWrongArgumentType:
		return "the argument's type does not convert to the function's domain"
	case CodeNotAFunction:
		return "the applied term's type is not a Pi type"
	case CodeTypeMismatch:
		return "the inferred type does not match the expected type"
	case CodeConstNotFound:
		return "no local binding or arena declaration exists under that name"
	default:
		return "unknown kernel error code"
	}
}
