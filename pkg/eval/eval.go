// Package eval reduces a parsed statement to a Value and an updated
// Scope. Addition and Subtraction in the expression grammar dispatch to
// value.Value's Union and Subtract; identifiers are resolved against the
// scope threaded into the call.
package eval

import (
	"fmt"

	"github.com/cidrcalc/cidrcalc/pkg/parser"
	"github.com/cidrcalc/cidrcalc/pkg/scope"
	"github.com/cidrcalc/cidrcalc/pkg/value"
)

// UnboundIdentifierError is returned when an expression references a name
// with no binding in the current scope.
type UnboundIdentifierError struct {
	Name string
}

func (e *UnboundIdentifierError) Error() string {
	return fmt.Sprintf("unbound identifier: %s", e.Name)
}

// Eval evaluates one statement against s and returns the statement's
// result together with the scope the next statement should see. A
// let-binding produces Unit and a scope with Name newly (re)bound; a bare
// expression produces its value and leaves the scope unchanged.
func Eval(stmt parser.Stmt, s scope.Scope) (value.Value, scope.Scope, error) {
	switch stmt.Kind {
	case parser.StmtLet:
		v, err := evalExpr(stmt.Expr, s)
		if err != nil {
			return value.Value{}, s, err
		}
		return value.NewUnit(), s.Bind(stmt.Name, v), nil

	case parser.StmtExpr:
		v, err := evalExpr(stmt.Expr, s)
		if err != nil {
			return value.Value{}, s, err
		}
		return v, s, nil

	default:
		panic("eval: Eval: unknown statement kind")
	}
}

// Result holds one statement's evaluated value; EvalProgram returns one
// per statement, in source order.
type Result struct {
	Value value.Value
}

// EvalProgram evaluates stmts in order against an initial empty scope,
// threading the scope produced by each statement into the next. It stops
// and returns an error at the first failing statement, along with the
// results already produced.
func EvalProgram(stmts []parser.Stmt) ([]Result, error) {
	s := scope.Scope{}
	results := make([]Result, 0, len(stmts))
	for i, stmt := range stmts {
		v, next, err := Eval(stmt, s)
		if err != nil {
			return results, fmt.Errorf("statement %d: %w", i+1, err)
		}
		s = next
		results = append(results, Result{Value: v})
	}
	return results, nil
}

func evalExpr(e *parser.Expr, s scope.Scope) (value.Value, error) {
	switch e.Kind {
	case parser.ExprAtomic:
		return evalAtomic(e.Atomic, s)

	case parser.ExprAdd:
		left, err := evalExpr(e.Left, s)
		if err != nil {
			return value.Value{}, err
		}
		right, err := evalExpr(e.Right, s)
		if err != nil {
			return value.Value{}, err
		}
		return left.Union(right)

	case parser.ExprSub:
		left, err := evalExpr(e.Left, s)
		if err != nil {
			return value.Value{}, err
		}
		right, err := evalExpr(e.Right, s)
		if err != nil {
			return value.Value{}, err
		}
		return left.Subtract(right)

	default:
		panic("eval: evalExpr: unknown expression kind")
	}
}

func evalAtomic(a parser.Atomic, s scope.Scope) (value.Value, error) {
	switch a.Kind {
	case parser.AtomicIdent:
		v, ok := s.Lookup(a.Ident)
		if !ok {
			return value.Value{}, &UnboundIdentifierError{Name: a.Ident}
		}
		return v, nil
	case parser.AtomicV4, parser.AtomicV6:
		return value.FromPrefix(a.Prefix), nil
	default:
		panic("eval: evalAtomic: unknown atomic kind")
	}
}
