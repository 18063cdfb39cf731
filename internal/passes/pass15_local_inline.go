package passes

import (
	"strconv"

	"github.com/aledsdavies/deobfjs/internal/ast"
)

// LocalInline applies two local-expression rewrites bottom-up:
// array-literal indexing by an in-bounds integer literal collapses to
// the indexed element, and a computed property access keyed by a string
// that is (or concatenates to) a valid identifier converts to dot form —
// this subsumes hex-encoded identifier keys such as "\x61", because
// escape sequences in a string literal key are decoded before the
// identifier check.
func LocalInline(prog *ast.Program) {
	ast.RewriteProgram(prog, nil, localInlineExpr)
}

func localInlineExpr(e ast.Expression) ast.Expression {
	switch n := e.(type) {
	case *ast.MemberExpression:
		return unpackOrDottify(n)
	}
	return e
}

func unpackOrDottify(n *ast.MemberExpression) ast.Expression {
	if !n.Computed {
		return n
	}
	if arr, ok := ast.Unwrap(n.Object).(*ast.ArrayExpression); ok {
		if i, ok := ast.AsIntLiteral(n.Property); ok && i >= 0 && i < int64(len(arr.Elements)) {
			if el := arr.Elements[i]; el != nil {
				return ast.CloneExpr(el)
			}
		}
	}
	if s, ok := dynamicPropertyString(n.Property); ok && ast.IsValidIdentifierName(s) {
		n.Computed = false
		n.PropertyName = s
		n.Property = nil
	}
	return n
}

// dynamicPropertyString resolves a computed member property to the
// literal string key it statically evaluates to: a bare string literal,
// or a concatenation of string literals (the obfuscator "split the key
// across a + chain" idiom). A literal's escape sequences (\xHH, \uHHHH,
// ...) are decoded; one that does not decode is used as written.
func dynamicPropertyString(e ast.Expression) (string, bool) {
	e = ast.Unwrap(e)
	if s, ok := e.(*ast.StringLiteral); ok {
		if dec, err := strconv.Unquote(`"` + s.Value + `"`); err == nil {
			return dec, true
		}
		return s.Value, true
	}
	if bin, ok := e.(*ast.BinaryExpression); ok && bin.Operator == ast.BinAdd {
		l, ok := dynamicPropertyString(bin.Left)
		if !ok {
			return "", false
		}
		r, ok := dynamicPropertyString(bin.Right)
		if !ok {
			return "", false
		}
		return l + r, true
	}
	return "", false
}
