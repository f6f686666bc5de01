package expr

import "errors"

var (
	// ErrSyntax is returned when an expression cannot be parsed.
	ErrSyntax = errors.New("expr: syntax error")
	// ErrNotBoolean is returned when a predicate does not evaluate to a boolean.
	ErrNotBoolean = errors.New("expr: predicate is not boolean")
	// ErrNotNumber is returned when a function does not evaluate to a number.
	ErrNotNumber = errors.New("expr: expression is not a number")
	// ErrUnknownVariable is returned when an expression refers to a variable
	// other than x, y, pi and e.
	ErrUnknownVariable = errors.New("expr: unknown variable")
	// ErrArity is returned when a builtin is called with the wrong number of
	// arguments.
	ErrArity = errors.New("expr: wrong number of arguments")
)
