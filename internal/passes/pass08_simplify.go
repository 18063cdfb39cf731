package passes

import "github.com/aledsdavies/deobfjs/internal/ast"

// SimplifyExpressions applies a set of local, context-free rewrites
// bottom-up: the `!0`/`!1`/`!![]`/`+[]`/`+![]` obfuscator idioms for
// boolean and numeric literals, `void x` to `undefined`, bracket-to-dot
// property access, adjacent string-literal concatenation, and bare
// `debugger;` removal.
func SimplifyExpressions(prog *ast.Program) {
	ast.RewriteProgram(prog, simplifyDebugger, simplifyExpr)
}

func simplifyExpr(e ast.Expression) ast.Expression {
	switch n := e.(type) {
	case *ast.UnaryExpression:
		return simplifyUnary(n)
	case *ast.MemberExpression:
		return simplifyMember(n)
	case *ast.BinaryExpression:
		return simplifyStringConcat(n)
	}
	return e
}

func simplifyUnary(n *ast.UnaryExpression) ast.Expression {
	if n.Operator != ast.UnaryNot && n.Operator != ast.UnaryPlus && n.Operator != ast.UnaryVoid {
		return n
	}
	arg := ast.Unwrap(n.Argument)

	switch n.Operator {
	case ast.UnaryVoid:
		return &ast.Identifier{Name: "undefined", Position: n.Position}
	case ast.UnaryNot:
		// !0 -> true, !1 -> false, and any other numeric literal follows
		// the same "nonzero is truthy" rule the obfuscator's generator
		// idiom generalizes to.
		if num, ok := arg.(*ast.NumberLiteral); ok {
			return &ast.BooleanLiteral{Value: num.Value == 0, Position: n.Position}
		}
		if arr, ok := arg.(*ast.ArrayExpression); ok && len(arr.Elements) == 0 {
			return &ast.BooleanLiteral{Value: false, Position: n.Position}
		}
		// !!<numlit> and !!<booleanlit>: the inner unary-not was already
		// rewritten bottom-up by the time this node runs, so arg is
		// already a boolean literal when the double-negation pattern
		// applies; negate it.
		if b, ok := arg.(*ast.BooleanLiteral); ok {
			return &ast.BooleanLiteral{Value: !b.Value, Position: n.Position}
		}
	case ast.UnaryPlus:
		// +[] -> 0 directly. +![] has already had its inner `![]` reduced
		// to the boolean literal `false` by this point (RewriteExpr
		// processes the argument before calling back on this node), so
		// both cases collapse to the same numeric-coercion rule: +true
		// is 1, +false is 0. `![]` evaluates to `false` (arrays are
		// truthy, so `!` on one is `false`), and `+false` is `0`, not
		// `1` — we follow the actual coercion semantics here rather than
		// a superficially plausible but wrong shortcut, since output
		// must preserve observable behavior.
		if arr, ok := arg.(*ast.ArrayExpression); ok && len(arr.Elements) == 0 {
			return &ast.NumberLiteral{Value: 0, Position: n.Position}
		}
		if b, ok := arg.(*ast.BooleanLiteral); ok {
			if b.Value {
				return &ast.NumberLiteral{Value: 1, Position: n.Position}
			}
			return &ast.NumberLiteral{Value: 0, Position: n.Position}
		}
	}
	return n
}

// simplifyMember converts obj["name"] to obj.name when "name" is a
// syntactically valid bare identifier, dropping the indirection
// obfuscators use to hide ordinary property access.
func simplifyMember(n *ast.MemberExpression) ast.Expression {
	if !n.Computed {
		return n
	}
	s, ok := ast.AsStringLiteral(n.Property)
	if !ok || !ast.IsValidIdentifierName(s) {
		return n
	}
	n.Computed = false
	n.PropertyName = s
	n.Property = nil
	return n
}

func simplifyStringConcat(n *ast.BinaryExpression) ast.Expression {
	if n.Operator != ast.BinAdd {
		return n
	}
	a, ok := ast.AsStringLiteral(n.Left)
	if !ok {
		return n
	}
	b, ok := ast.AsStringLiteral(n.Right)
	if !ok {
		return n
	}
	return &ast.StringLiteral{Value: a + b, Position: n.Position}
}

func simplifyDebugger(s ast.Statement) ast.Statement {
	if _, ok := s.(*ast.DebuggerStatement); ok {
		return &ast.EmptyStatement{Position: s.Pos()}
	}
	return s
}
