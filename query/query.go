// Package query evaluates expressions over loaded values with
// github.com/expr-lang/expr. The value is bound to the variable v:
//
//	v.spec.replicas > 1
//	filter(v.items, .enabled) | map(.name)
//
// Besides the expr builtins, dump(x) returns the inline text of x.
package query

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/yflow/debug"
	"github.com/signadot/yflow/encode"
	"github.com/signadot/yflow/value"
)

var ErrQuery = errors.New("query")

type env struct {
	V any `expr:"v"`
}

// Query is a compiled expression.
type Query struct {
	src  string
	prog *vm.Program
}

func Compile(src string) (*Query, error) {
	prog, err := expr.Compile(src,
		expr.Env(env{}),
		expr.Function("dump", dumpFunc, new(func(any) string)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Query{src: src, prog: prog}, nil
}

func (q *Query) String() string { return q.src }

// Run evaluates q with v bound and converts the result back to a value.
func (q *Query) Run(v *value.Value) (*value.Value, error) {
	out, err := expr.Run(q.prog, env{V: v.Any()})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrQuery, q.src, err)
	}
	res := value.FromAny(out)
	if debug.Eval() {
		debug.Logf("query", "src", q.src, "in", v, "out", res)
	}
	return res, nil
}

// Test runs q over v and reports whether the result is truthy: non-zero,
// non-empty and not null.
func (q *Query) Test(v *value.Value) (bool, error) {
	res, err := q.Run(v)
	if err != nil {
		return false, err
	}
	return value.Truth(res), nil
}

// Run compiles src and runs it over v.
func Run(src string, v *value.Value) (*value.Value, error) {
	q, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return q.Run(v)
}

func dumpFunc(params ...any) (any, error) {
	return encode.Dump(value.FromAny(params[0])), nil
}
