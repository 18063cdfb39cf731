package passes

import "github.com/aledsdavies/deobfjs/internal/ast"

// SimplifyTernary folds a conditional expression with a syntactic
// constant test: `true ? A : B` becomes A, `false ? A : B` becomes B.
func SimplifyTernary(prog *ast.Program) {
	ast.RewriteProgram(prog, nil, ternaryExpr)
}

func ternaryExpr(e ast.Expression) ast.Expression {
	cond, ok := e.(*ast.ConditionalExpression)
	if !ok {
		return e
	}
	if truthy, ok := syntacticTruthy(cond.Test); ok {
		if truthy {
			return cond.Consequent
		}
		return cond.Alternate
	}
	return e
}

// TernaryToIf rewrites a top-level `ExpressionStatement` whose expression
// is a ternary into `if (cond) { A; } else { B; }`. This rewrite discards
// the ternary's value, so it must never fire where the value is actually
// used — in particular an arrow function's implicit-return ternary. In
// this tree shape an arrow's
// concise body is stored directly in ArrowFunctionExpression.ExprBody,
// never wrapped in an ExpressionStatement, so any ternary reachable as
// an ExpressionStatement's expression is, by construction, never an
// arrow's implicit return — the safe-context check this pass must make
// is exactly "is this node an ExpressionStatement's top-level expression",
// which WalkBlocks/RewriteStmt already guarantee by only calling here
// from statement position.
func TernaryToIf(prog *ast.Program) {
	ast.RewriteProgram(prog, ternaryToIfStmt, nil)
}

func ternaryToIfStmt(s ast.Statement) ast.Statement {
	es, ok := s.(*ast.ExpressionStatement)
	if !ok {
		return s
	}
	cond, ok := ast.Unwrap(es.Expr).(*ast.ConditionalExpression)
	if !ok {
		return s
	}
	consequent := &ast.BlockStatement{
		Body:     []ast.Statement{&ast.ExpressionStatement{Expr: cond.Consequent, Position: cond.Consequent.Pos()}},
		Position: cond.Position,
	}
	alternate := &ast.BlockStatement{
		Body:     []ast.Statement{&ast.ExpressionStatement{Expr: cond.Alternate, Position: cond.Alternate.Pos()}},
		Position: cond.Position,
	}
	return &ast.IfStatement{Test: cond.Test, Consequent: consequent, Alternate: alternate, Position: es.Position}
}

// ShortCircuitToIf rewrites a standalone `cond && doA();` expression
// statement into `if (cond) { doA(); }`, and `cond || doA();` into
// `if (!cond) { doA(); }`. `??` is never rewritten since it has no
// boolean-truthiness reading. Kept as its own pass from TernaryToIf
// because the two rewrites have different safety preconditions (arrow
// implicit-return detection vs. none), matching the original
// implementation's separation.
func ShortCircuitToIf(prog *ast.Program) {
	ast.RewriteProgram(prog, shortCircuitStmt, nil)
}

func shortCircuitStmt(s ast.Statement) ast.Statement {
	es, ok := s.(*ast.ExpressionStatement)
	if !ok {
		return s
	}
	logical, ok := ast.Unwrap(es.Expr).(*ast.LogicalExpression)
	if !ok {
		return s
	}
	switch logical.Operator {
	case ast.LogicalAnd:
		body := &ast.BlockStatement{
			Body:     []ast.Statement{&ast.ExpressionStatement{Expr: logical.Right, Position: logical.Right.Pos()}},
			Position: logical.Position,
		}
		return &ast.IfStatement{Test: logical.Left, Consequent: body, Position: es.Position}
	case ast.LogicalOr:
		body := &ast.BlockStatement{
			Body:     []ast.Statement{&ast.ExpressionStatement{Expr: logical.Right, Position: logical.Right.Pos()}},
			Position: logical.Position,
		}
		negated := &ast.UnaryExpression{Operator: ast.UnaryNot, Argument: logical.Left, Position: logical.Left.Pos()}
		return &ast.IfStatement{Test: negated, Consequent: body, Position: es.Position}
	}
	return s // ?? never rewritten
}
