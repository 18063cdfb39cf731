package passes

import (
	"github.com/aledsdavies/deobfjs/internal/ast"
	"github.com/aledsdavies/deobfjs/internal/state"
)

// InlineArrayIndex replaces any `NAME[i]` where NAME is a registered
// string array and i is a non-negative in-bounds integer literal with
// the corresponding string literal. Out-of-range accesses are preserved.
func InlineArrayIndex(prog *ast.Program, st *state.DeobfuscateState) {
	ast.RewriteProgram(prog, nil, func(e ast.Expression) ast.Expression {
		member, ok := e.(*ast.MemberExpression)
		if !ok || !member.Computed {
			return e
		}
		name, ok := ast.IdentName(member.Object)
		if !ok {
			return e
		}
		i, ok := ast.AsIntLiteral(member.Property)
		if !ok || i < 0 {
			return e
		}
		val, ok := st.Lookup(name, i)
		if !ok {
			return e
		}
		return &ast.StringLiteral{Value: val, Position: member.Position}
	})
}
