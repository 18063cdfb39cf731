package passes

import (
	"github.com/aledsdavies/deobfjs/internal/ast"
	"github.com/aledsdavies/deobfjs/internal/token"
)

// NormalizeLiterals turns `void 0` into the identifier `undefined`
// (already handled structurally by pass 8's `void X` rule, repeated here
// as a no-op-safe belt-and-braces pass since re-running the pipeline on
// already-normalized output must land on the same fixed point), and
// hex/octal/binary integer literals are rewritten to decimal form
// when the value fits exactly (at most 2^53), dropping the original
// textual radix; larger ones keep their source spelling.
func NormalizeLiterals(prog *ast.Program) {
	ast.RewriteProgram(prog, nil, literalExpr)
}

// maxExactLiteral is the largest integer below which every integer is
// exactly representable as a float64.
const maxExactLiteral = 1 << 53

func literalExpr(e ast.Expression) ast.Expression {
	switch n := e.(type) {
	case *ast.UnaryExpression:
		if n.Operator == ast.UnaryVoid {
			return &ast.Identifier{Name: "undefined", Position: n.Position}
		}
	case *ast.NumberLiteral:
		if n.Base != token.BaseDecimal && n.Value <= maxExactLiteral {
			c := *n
			c.Raw = ""
			c.Base = token.BaseDecimal
			return &c
		}
	}
	return e
}
