package passes

import "github.com/aledsdavies/deobfjs/internal/ast"

// SimplifyAlgebraic rewrites algebraic identities: patterns that fold
// purely because both operands are the syntactically identical bound
// name (x-x, x*0, ...) need no purity analysis beyond that syntactic
// identity check, plus the true/false short-circuit identities.
func SimplifyAlgebraic(prog *ast.Program) {
	ast.RewriteProgram(prog, nil, algebraicExpr)
}

func algebraicExpr(e ast.Expression) ast.Expression {
	switch n := e.(type) {
	case *ast.BinaryExpression:
		return algebraicBinary(n)
	case *ast.LogicalExpression:
		return algebraicLogical(n)
	}
	return e
}

// sameIdent reports whether a and b are references to the identical bound
// name, the precondition every x-OP-x identity rewrite requires.
func sameIdent(a, b ast.Expression) bool {
	na, ok := ast.IdentName(a)
	if !ok {
		return false
	}
	nb, ok := ast.IdentName(b)
	if !ok {
		return false
	}
	return na == nb
}

func isNumLit(e ast.Expression, v float64) bool {
	n, ok := ast.Unwrap(e).(*ast.NumberLiteral)
	return ok && n.Value == v
}

func algebraicBinary(n *ast.BinaryExpression) ast.Expression {
	switch n.Operator {
	case ast.BinSub:
		if sameIdent(n.Left, n.Right) {
			return ast.SynthNumber(0)
		}
	case ast.BinMul:
		if isNumLit(n.Left, 0) || isNumLit(n.Right, 0) {
			return ast.SynthNumber(0)
		}
		if isNumLit(n.Right, 1) {
			return ast.CloneExpr(n.Left)
		}
		if isNumLit(n.Left, 1) {
			return ast.CloneExpr(n.Right)
		}
	case ast.BinDiv:
		if sameIdent(n.Left, n.Right) {
			return ast.SynthNumber(1)
		}
		if isNumLit(n.Right, 1) {
			return ast.CloneExpr(n.Left)
		}
	case ast.BinMod:
		if sameIdent(n.Left, n.Right) {
			return ast.SynthNumber(0)
		}
	case ast.BinXor:
		if sameIdent(n.Left, n.Right) {
			return ast.SynthNumber(0)
		}
	case ast.BinAdd:
		if isNumLit(n.Right, 0) {
			return ast.CloneExpr(n.Left)
		}
		if isNumLit(n.Left, 0) {
			return ast.CloneExpr(n.Right)
		}
	}
	return n
}

func algebraicLogical(n *ast.LogicalExpression) ast.Expression {
	switch n.Operator {
	case ast.LogicalAnd:
		if b, ok := ast.AsBoolLiteral(n.Left); ok {
			if b {
				return ast.CloneExpr(n.Right)
			}
			return ast.SynthBool(false)
		}
		if b, ok := ast.AsBoolLiteral(n.Right); ok {
			if b {
				return ast.CloneExpr(n.Left)
			}
			return ast.SynthBool(false)
		}
	case ast.LogicalOr:
		if b, ok := ast.AsBoolLiteral(n.Left); ok {
			if b {
				return ast.SynthBool(true)
			}
			return ast.CloneExpr(n.Right)
		}
		if b, ok := ast.AsBoolLiteral(n.Right); ok {
			if b {
				return ast.SynthBool(true)
			}
			return ast.CloneExpr(n.Left)
		}
	}
	return n
}
