package passes

import "github.com/aledsdavies/deobfjs/internal/ast"

// FoldConstants evaluates arithmetic, bitwise, comparison, and logical
// operations between constant operands bottom-up, replacing the
// expression with its result. Folding only fires on operands that are
// "representable integers" — a numeric literal with zero fractional part
// within the signed 64-bit range, or such a literal under one or more
// unary negations — and any failure (overflow, division by zero) leaves the original
// expression untouched rather than raising an error, since a pass
// shouldn't abort the whole pipeline over one unfoldable subexpression.
func FoldConstants(prog *ast.Program) {
	ast.RewriteProgram(prog, nil, foldExpr)
}

func foldExpr(e ast.Expression) ast.Expression {
	switch n := e.(type) {
	case *ast.BinaryExpression:
		return foldBinary(n)
	case *ast.LogicalExpression:
		return foldLogical(n)
	case *ast.UnaryExpression:
		return foldUnary(n)
	}
	return e
}

func foldBinary(n *ast.BinaryExpression) ast.Expression {
	l, lok := ast.AsIntLiteral(n.Left)
	r, rok := ast.AsIntLiteral(n.Right)

	switch n.Operator {
	case ast.BinEq, ast.BinSeq:
		if lok && rok {
			return ast.SynthBool(l == r)
		}
		return n
	case ast.BinNeq, ast.BinSneq:
		if lok && rok {
			return ast.SynthBool(l != r)
		}
		return n
	case ast.BinLt:
		if lok && rok {
			return ast.SynthBool(l < r)
		}
		return n
	case ast.BinLe:
		if lok && rok {
			return ast.SynthBool(l <= r)
		}
		return n
	case ast.BinGt:
		if lok && rok {
			return ast.SynthBool(l > r)
		}
		return n
	case ast.BinGe:
		if lok && rok {
			return ast.SynthBool(l >= r)
		}
		return n
	}

	if !lok || !rok {
		return n
	}

	switch n.Operator {
	case ast.BinAdd:
		if sum, ok := addInt64(l, r); ok {
			return ast.SynthNumber(float64(sum))
		}
	case ast.BinSub:
		if diff, ok := subInt64(l, r); ok {
			return ast.SynthNumber(float64(diff))
		}
	case ast.BinMul:
		if prod, ok := mulInt64(l, r); ok {
			return ast.SynthNumber(float64(prod))
		}
	case ast.BinDiv:
		if r != 0 && l%r == 0 {
			return ast.SynthNumber(float64(l / r))
		}
	case ast.BinMod:
		if r != 0 {
			return ast.SynthNumber(float64(l % r))
		}
	case ast.BinAnd:
		return ast.SynthNumber(float64(l & r))
	case ast.BinOr:
		return ast.SynthNumber(float64(l | r))
	case ast.BinXor:
		return ast.SynthNumber(float64(l ^ r))
	case ast.BinShl:
		return ast.SynthNumber(float64(int32(l) << (uint(r) & 0x1F)))
	case ast.BinShr:
		return ast.SynthNumber(float64(int32(l) >> (uint(r) & 0x1F)))
	case ast.BinUShr:
		return ast.SynthNumber(float64(uint32(l) >> (uint(r) & 0x1F)))
	}
	return n
}

func foldLogical(n *ast.LogicalExpression) ast.Expression {
	if n.Operator == ast.LogicalNullish {
		return n // ?? only short-circuits on null/undefined, which folding can't decide for a general operand
	}
	lb, lok := ast.AsBoolLiteral(n.Left)
	rb, rok := ast.AsBoolLiteral(n.Right)
	if !lok || !rok {
		return n
	}
	switch n.Operator {
	case ast.LogicalAnd:
		return ast.SynthBool(lb && rb)
	case ast.LogicalOr:
		return ast.SynthBool(lb || rb)
	}
	return n
}

func foldUnary(n *ast.UnaryExpression) ast.Expression {
	switch n.Operator {
	case ast.UnaryMinus:
		if v, ok := ast.AsIntLiteral(n.Argument); ok {
			if v == minInt64 {
				return n // negation overflow, preserve
			}
			return ast.SynthNumber(float64(-v))
		}
	case ast.UnaryBNot:
		if v, ok := ast.AsIntLiteral(n.Argument); ok {
			return ast.SynthNumber(float64(^int32(v)))
		}
	case ast.UnaryNot:
		if b, ok := ast.AsBoolLiteral(n.Argument); ok {
			return ast.SynthBool(!b)
		}
	case ast.UnaryPlus:
		if v, ok := ast.AsIntLiteral(n.Argument); ok {
			return ast.SynthNumber(float64(v))
		}
	}
	return n
}

const minInt64 = -1 << 63

func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

func subInt64(a, b int64) (int64, bool) {
	diff := a - b
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		return 0, false
	}
	return diff, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	prod := a * b
	if prod/b != a {
		return 0, false
	}
	return prod, true
}
