package jsgen

import (
	"math"
	"strconv"
	"strings"

	"github.com/aledsdavies/deobfjs/internal/ast"
)

// Precedence levels, lowest to highest. Mirrors jsparser's climbing
// table but kept local to avoid a layering dependency between the two
// external collaborators.
const (
	precSequence = 0
	precAssign   = 1
	precCond     = 2
	precNullish  = 3
	precLOr      = 4
	precLAnd     = 5
	precBOr      = 6
	precBXor     = 7
	precBAnd     = 8
	precEq       = 9
	precRel      = 10
	precShift    = 11
	precAdd      = 12
	precMul      = 13
	precExp      = 14
	precUnary    = 15
	precPostfix  = 16
	precCall     = 17
	precPrimary  = 18
)

func binaryPrec(op ast.BinaryOperator) int {
	switch op {
	case ast.BinEq, ast.BinNeq, ast.BinSeq, ast.BinSneq:
		return precEq
	case ast.BinLt, ast.BinGt, ast.BinLe, ast.BinGe, ast.BinIn, ast.BinInstOf:
		return precRel
	case ast.BinShl, ast.BinShr, ast.BinUShr:
		return precShift
	case ast.BinAdd, ast.BinSub:
		return precAdd
	case ast.BinMul, ast.BinDiv, ast.BinMod:
		return precMul
	case ast.BinPow:
		return precExp
	case ast.BinAnd:
		return precBAnd
	case ast.BinOr:
		return precBOr
	case ast.BinXor:
		return precBXor
	default:
		return precRel
	}
}

func logicalPrec(op ast.LogicalOperator) int {
	switch op {
	case ast.LogicalNullish:
		return precNullish
	case ast.LogicalOr:
		return precLOr
	default:
		return precLAnd
	}
}

// expr renders e and wraps it in parentheses if its own precedence is
// below what the surrounding context requires.
func (g *printer) expr(e ast.Expression, minPrec int) string {
	s, prec := g.render(e)
	if prec < minPrec {
		return "(" + s + ")"
	}
	return s
}

func (g *printer) render(e ast.Expression) (string, int) {
	switch n := e.(type) {
	case *ast.Identifier:
		return n.Name, precPrimary
	case *ast.NumberLiteral:
		return numberText(n), precPrimary
	case *ast.StringLiteral:
		return strconv.Quote(n.Value), precPrimary
	case *ast.BooleanLiteral:
		if n.Value {
			return "true", precPrimary
		}
		return "false", precPrimary
	case *ast.NullLiteral:
		return "null", precPrimary
	case *ast.RegExpLiteral:
		return "/" + n.Pattern + "/" + n.Flags, precPrimary
	case *ast.TemplateLiteral:
		return "`" + n.Raw + "`", precPrimary
	case *ast.UnaryExpression:
		return g.unaryExpr(n), precUnary
	case *ast.UpdateExpression:
		arg := g.expr(n.Argument, precUnary)
		if n.Prefix {
			return string(n.Operator) + arg, precUnary
		}
		return arg + string(n.Operator), precPostfix
	case *ast.BinaryExpression:
		prec := binaryPrec(n.Operator)
		rightMin := prec + 1
		if n.Operator == ast.BinPow {
			rightMin = prec // right-associative
		}
		left := g.expr(n.Left, prec)
		right := g.expr(n.Right, rightMin)
		return left + " " + string(n.Operator) + " " + right, prec
	case *ast.LogicalExpression:
		prec := logicalPrec(n.Operator)
		left := g.expr(n.Left, prec)
		right := g.expr(n.Right, prec+1)
		return left + " " + string(n.Operator) + " " + right, prec
	case *ast.ConditionalExpression:
		test := g.expr(n.Test, precNullish)
		cons := g.expr(n.Consequent, precAssign)
		alt := g.expr(n.Alternate, precAssign)
		return test + " ? " + cons + " : " + alt, precCond
	case *ast.AssignmentExpression:
		left := g.expr(n.Left, precCall)
		right := g.expr(n.Right, precAssign)
		return left + " " + string(n.Operator) + " " + right, precAssign
	case *ast.CallExpression:
		callee := g.expr(n.Callee, precCall)
		dot := "("
		if n.Optional {
			dot = "?.("
		}
		return callee + dot + g.argList(n.Args) + ")", precCall
	case *ast.NewExpression:
		callee := g.expr(n.Callee, precCall)
		return "new " + callee + "(" + g.argList(n.Args) + ")", precCall
	case *ast.MemberExpression:
		obj := g.expr(n.Object, precCall)
		if n.Computed {
			dot := "["
			if n.Optional {
				dot = "?.["
			}
			return obj + dot + g.expr(n.Property, precAssign) + "]", precCall
		}
		dot := "."
		if n.Optional {
			dot = "?."
		}
		return obj + dot + n.PropertyName, precCall
	case *ast.ArrayExpression:
		return g.arrayLit(n), precPrimary
	case *ast.ObjectExpression:
		return g.objectLit(n), precPrimary
	case *ast.FunctionExpression:
		return g.functionExprText(n), precPrimary
	case *ast.ArrowFunctionExpression:
		return g.arrowText(n), precAssign
	case *ast.SequenceExpression:
		parts := make([]string, len(n.Expressions))
		for i, sub := range n.Expressions {
			parts[i] = g.expr(sub, precAssign)
		}
		return strings.Join(parts, ", "), precSequence
	case *ast.ParenthesizedExpression:
		inner, _ := g.render(n.Expr)
		return "(" + inner + ")", precPrimary
	case *ast.SpreadElement:
		return "..." + g.expr(n.Argument, precAssign), precAssign
	case *ast.TaggedTemplateExpression:
		tag := g.expr(n.Tag, precCall)
		return tag + "`" + n.Quasi.Raw + "`", precCall
	default:
		return "/* unknown expr */", precPrimary
	}
}

func (g *printer) unaryExpr(n *ast.UnaryExpression) string {
	argStr := g.expr(n.Argument, precUnary)
	op := string(n.Operator)
	switch n.Operator {
	case ast.UnaryTypeof, ast.UnaryVoid, ast.UnaryDelete, ast.UnaryAwait:
		return op + " " + argStr
	default:
		if len(argStr) > 0 && len(op) > 0 && argStr[0] == op[0] {
			return op + " " + argStr
		}
		return op + argStr
	}
}

func (g *printer) argList(args []ast.Expression) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = g.expr(a, precAssign)
	}
	return strings.Join(parts, ", ")
}

func (g *printer) arrayLit(n *ast.ArrayExpression) string {
	parts := make([]string, len(n.Elements))
	for i, el := range n.Elements {
		if el == nil {
			parts[i] = ""
			continue
		}
		parts[i] = g.expr(el, precAssign)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (g *printer) objectLit(n *ast.ObjectExpression) string {
	if len(n.Properties) == 0 {
		return "{}"
	}
	parts := make([]string, len(n.Properties))
	for i, p := range n.Properties {
		parts[i] = g.property(p)
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func (g *printer) property(p *ast.Property) string {
	if p.Key == nil {
		if sp, ok := p.Value.(*ast.SpreadElement); ok {
			return "..." + g.expr(sp.Argument, precAssign)
		}
	}
	keyStr := g.propKey(p.Key, p.Computed)
	if fn, ok := p.Value.(*ast.FunctionExpression); ok {
		prefix := ""
		if fn.IsAsync {
			prefix = "async "
		}
		star := ""
		if fn.IsGen {
			star = "*"
		}
		return prefix + star + keyStr + "(" + g.paramList(fn.Params) + ") " + g.blockString(fn.Body, 0)
	}
	if p.Shorthand {
		if id, ok := p.Value.(*ast.Identifier); ok {
			if keyIdent, ok2 := p.Key.(*ast.Identifier); ok2 && keyIdent.Name == id.Name {
				return keyStr
			}
		}
	}
	return keyStr + ": " + g.expr(p.Value, precAssign)
}

func (g *printer) propKey(key ast.Expression, computed bool) string {
	if computed {
		return "[" + g.expr(key, precAssign) + "]"
	}
	switch k := key.(type) {
	case *ast.Identifier:
		return k.Name
	case *ast.StringLiteral:
		return strconv.Quote(k.Value)
	case *ast.NumberLiteral:
		return numberText(k)
	default:
		return g.expr(key, precPrimary)
	}
}

func (g *printer) functionExprText(n *ast.FunctionExpression) string {
	var sb strings.Builder
	if n.IsAsync {
		sb.WriteString("async ")
	}
	sb.WriteString("function")
	if n.IsGen {
		sb.WriteString("*")
	}
	if n.Name != "" {
		sb.WriteString(" " + n.Name)
	}
	sb.WriteString("(" + g.paramList(n.Params) + ") ")
	sb.WriteString(g.blockString(n.Body, 0))
	return sb.String()
}

func (g *printer) arrowText(n *ast.ArrowFunctionExpression) string {
	var sb strings.Builder
	if n.IsAsync {
		sb.WriteString("async ")
	}
	if len(n.Params) == 1 {
		if id, ok := n.Params[0].(*ast.IdentifierPattern); ok {
			sb.WriteString(id.Name)
		} else {
			sb.WriteString("(" + g.paramList(n.Params) + ")")
		}
	} else {
		sb.WriteString("(" + g.paramList(n.Params) + ")")
	}
	sb.WriteString(" => ")
	if n.Body != nil {
		sb.WriteString(g.blockString(n.Body, 0))
	} else {
		sb.WriteString(g.expr(n.ExprBody, precAssign))
	}
	return sb.String()
}

// blockString renders a block statement in isolation, starting a fresh
// sub-printer. Nested function literals printed from inside an
// expression therefore always start their own brace at indent level 0;
// the surrounding statement printer still indents the line they sit on.
func (g *printer) blockString(b *ast.BlockStatement, level int) string {
	sub := &printer{}
	sub.blockBodyInline(b, level)
	return strings.TrimRight(sub.sb.String(), "\n")
}

func numberText(n *ast.NumberLiteral) string {
	if n.Raw != "" {
		return n.Raw
	}
	if !math.IsInf(n.Value, 0) && n.Value == math.Trunc(n.Value) && math.Abs(n.Value) < 1e15 {
		return strconv.FormatFloat(n.Value, 'f', -1, 64)
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// pattern renders a binding pattern (function params, declarator ids,
// catch params, destructuring).
func (g *printer) pattern(p ast.Pattern) string {
	switch n := p.(type) {
	case *ast.IdentifierPattern:
		return n.Name
	case *ast.ArrayPattern:
		parts := make([]string, len(n.Elements))
		for i, el := range n.Elements {
			if el.Pattern == nil {
				parts[i] = ""
				continue
			}
			s := g.pattern(el.Pattern)
			if el.Default != nil {
				s += " = " + g.expr(el.Default, precAssign)
			}
			parts[i] = s
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *ast.ObjectPattern:
		parts := make([]string, 0, len(n.Properties)+1)
		for _, prop := range n.Properties {
			keyStr := g.propKey(prop.Key, prop.Computed)
			var s string
			if prop.Shorthand {
				s = keyStr
			} else {
				s = keyStr + ": " + g.pattern(prop.Value)
			}
			if prop.Default != nil {
				s += " = " + g.expr(prop.Default, precAssign)
			}
			parts = append(parts, s)
		}
		if n.Rest != nil {
			parts = append(parts, "..."+n.Rest.Name)
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	case *ast.RestElement:
		return "..." + g.pattern(n.Argument)
	case *ast.AssignmentPattern:
		return g.pattern(n.Left) + " = " + g.expr(n.Right, precAssign)
	default:
		return "/* unknown pattern */"
	}
}
