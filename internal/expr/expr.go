// Package expr compiles textual expressions of x, and of x and y, into Go
// functions that can be plotted.
//
// Expressions use govaluate syntax. Besides the variables, the constants pi
// and e and the functions sin, cos, tan, asin, acos, atan, exp, log, sqrt,
// abs, pow, floor and ceil are available. Exponentiation is written **.
package expr

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/Knetic/govaluate"
)

// Func is a compiled function of x.
type Func struct {
	src  string
	expr *govaluate.EvaluableExpression
}

// Pred is a compiled predicate of x and y.
type Pred struct {
	src  string
	expr *govaluate.EvaluableExpression
}

func unary(f func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: got %d, want 1", ErrArity, len(args))
		}
		return f(toFloat(args[0])), nil
	}
}

var functions = map[string]govaluate.ExpressionFunction{
	"sin":   unary(math.Sin),
	"cos":   unary(math.Cos),
	"tan":   unary(math.Tan),
	"asin":  unary(math.Asin),
	"acos":  unary(math.Acos),
	"atan":  unary(math.Atan),
	"exp":   unary(math.Exp),
	"log":   unary(math.Log),
	"sqrt":  unary(math.Sqrt),
	"abs":   unary(math.Abs),
	"floor": unary(math.Floor),
	"ceil":  unary(math.Ceil),
	"pow": func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("%w: got %d, want 2", ErrArity, len(args))
		}
		return math.Pow(toFloat(args[0]), toFloat(args[1])), nil
	},
}

func toFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

func parse(src string, vars ...string) (*govaluate.EvaluableExpression, error) {
	e, err := govaluate.NewEvaluableExpressionWithFunctions(src, functions)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrSyntax, src, err)
	}
	for _, v := range e.Vars() {
		if !slices.Contains(vars, v) && v != "pi" && v != "e" {
			return nil, fmt.Errorf("%w: %q in %q", ErrUnknownVariable, v, src)
		}
	}
	return e, nil
}

// params returns a fresh parameter map, so that evaluations can run
// concurrently.
func params(x, y float64) map[string]interface{} {
	return map[string]interface{}{
		"x":  x,
		"y":  y,
		"pi": math.Pi,
		"e":  math.E,
	}
}

// Compile compiles a function of x. The expression is evaluated once at
// x = 0 to check its type.
func Compile(src string) (Func, error) {
	e, err := parse(src, "x")
	if err != nil {
		return Func{}, err
	}
	f := Func{src: src, expr: e}
	if _, err := f.Eval(0); isTypeError(err) {
		return Func{}, err
	}
	return f, nil
}

// Eval evaluates the function at x.
func (f Func) Eval(x float64) (float64, error) {
	v, err := f.expr.Evaluate(params(x, 0))
	if err != nil {
		return math.NaN(), fmt.Errorf("evaluating %q at %g: %w", f.src, x, err)
	}
	switch v.(type) {
	case float64, int, int64:
		return toFloat(v), nil
	default:
		return math.NaN(), fmt.Errorf("%w: %q evaluates to %T", ErrNotNumber, f.src, v)
	}
}

// Call evaluates the function at x, returning NaN where evaluation fails.
func (f Func) Call(x float64) float64 {
	y, err := f.Eval(x)
	if err != nil {
		return math.NaN()
	}
	return y
}

func (f Func) String() string {
	return f.src
}

// CompilePred compiles a predicate of x and y. The expression is evaluated
// once at the origin to check its type.
func CompilePred(src string) (Pred, error) {
	e, err := parse(src, "x", "y")
	if err != nil {
		return Pred{}, err
	}
	p := Pred{src: src, expr: e}
	if _, err := p.Eval(0, 0); isTypeError(err) {
		return Pred{}, err
	}
	return p, nil
}

// Eval evaluates the predicate at (x, y).
func (p Pred) Eval(x, y float64) (bool, error) {
	v, err := p.expr.Evaluate(params(x, y))
	if err != nil {
		return false, fmt.Errorf("evaluating %q at (%g, %g): %w", p.src, x, y, err)
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q evaluates to %T", ErrNotBoolean, p.src, v)
	}
	return b, nil
}

// Call evaluates the predicate at (x, y), returning false where evaluation
// fails.
func (p Pred) Call(x, y float64) bool {
	b, err := p.Eval(x, y)
	return err == nil && b
}

func (p Pred) String() string {
	return p.src
}

// isTypeError reports whether err is a property of the expression rather
// than a failure at a particular point.
func isTypeError(err error) bool {
	return errors.Is(err, ErrNotNumber) || errors.Is(err, ErrNotBoolean) || errors.Is(err, ErrArity)
}
