package passes

import "github.com/aledsdavies/deobfjs/internal/ast"

// ReduceStrength rewrites multiply/divide/modulo by a literal power of
// two on the right into shift/mask form. This is applied unconditionally,
// with no proof that the left operand is an integer — 1.5 * 2 and
// 1.5 << 1 differ, so this is unsound in general, but obfuscated code
// deals almost exclusively in integer arithmetic and the risk of
// rewriting a genuinely fractional multiply is accepted as the cost of
// keeping this rewrite simple.
func ReduceStrength(prog *ast.Program) {
	ast.RewriteProgram(prog, nil, strengthExpr)
}

func strengthExpr(e ast.Expression) ast.Expression {
	bin, ok := e.(*ast.BinaryExpression)
	if !ok {
		return e
	}
	k, ok := powerOfTwoShift(bin.Right)
	if !ok {
		return e
	}
	switch bin.Operator {
	case ast.BinMul:
		return &ast.BinaryExpression{Operator: ast.BinShl, Left: bin.Left, Right: ast.SynthNumber(float64(k)), Position: bin.Position}
	case ast.BinDiv:
		return &ast.BinaryExpression{Operator: ast.BinShr, Left: bin.Left, Right: ast.SynthNumber(float64(k)), Position: bin.Position}
	case ast.BinMod:
		mask := (int64(1) << k) - 1
		return &ast.BinaryExpression{Operator: ast.BinAnd, Left: bin.Left, Right: ast.SynthNumber(float64(mask)), Position: bin.Position}
	}
	return e
}

// powerOfTwoShift reports (k, true) if e is a positive literal 2^k,
// never matching a non-literal right operand.
func powerOfTwoShift(e ast.Expression) (int, bool) {
	v, ok := ast.AsIntLiteral(e)
	if !ok || v <= 0 {
		return 0, false
	}
	k := 0
	n := v
	for n > 1 {
		if n%2 != 0 {
			return 0, false
		}
		n /= 2
		k++
	}
	return k, true
}
