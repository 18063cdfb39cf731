package ast

import "github.com/aledsdavies/deobfjs/internal/token"

// CloneExpr copies an expression subtree into freshly allocated nodes.
// The copy is not fully deep: the body block of a function expression,
// the block body of an arrow function, non-computed property keys and
// the quasis of a tagged template are shared with the original. Go has
// no derive facility for this, so it's one hand-written switch rather
// than per-variant cloners scattered across passes; every pass that
// needs to duplicate a subtree (dispatcher, operator-proxy and function
// inlining, algebraic simplification, local inlining) calls this
// instead of writing its own copy.
func CloneExpr(e Expression) Expression {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case *Identifier:
		c := *n
		return &c
	case *NumberLiteral:
		c := *n
		return &c
	case *StringLiteral:
		c := *n
		return &c
	case *BooleanLiteral:
		c := *n
		return &c
	case *NullLiteral:
		c := *n
		return &c
	case *RegExpLiteral:
		c := *n
		return &c
	case *TemplateLiteral:
		c := *n
		return &c
	case *UnaryExpression:
		c := *n
		c.Argument = CloneExpr(n.Argument)
		return &c
	case *UpdateExpression:
		c := *n
		c.Argument = CloneExpr(n.Argument)
		return &c
	case *BinaryExpression:
		c := *n
		c.Left = CloneExpr(n.Left)
		c.Right = CloneExpr(n.Right)
		return &c
	case *LogicalExpression:
		c := *n
		c.Left = CloneExpr(n.Left)
		c.Right = CloneExpr(n.Right)
		return &c
	case *ConditionalExpression:
		c := *n
		c.Test = CloneExpr(n.Test)
		c.Consequent = CloneExpr(n.Consequent)
		c.Alternate = CloneExpr(n.Alternate)
		return &c
	case *AssignmentExpression:
		c := *n
		c.Left = CloneExpr(n.Left)
		c.Right = CloneExpr(n.Right)
		return &c
	case *CallExpression:
		c := *n
		c.Callee = CloneExpr(n.Callee)
		c.Args = make([]Expression, len(n.Args))
		for i, a := range n.Args {
			c.Args[i] = CloneExpr(a)
		}
		return &c
	case *NewExpression:
		c := *n
		c.Callee = CloneExpr(n.Callee)
		c.Args = make([]Expression, len(n.Args))
		for i, a := range n.Args {
			c.Args[i] = CloneExpr(a)
		}
		return &c
	case *MemberExpression:
		c := *n
		c.Object = CloneExpr(n.Object)
		if n.Computed {
			c.Property = CloneExpr(n.Property)
		}
		return &c
	case *ArrayExpression:
		c := *n
		c.Elements = make([]Expression, len(n.Elements))
		for i, el := range n.Elements {
			c.Elements[i] = CloneExpr(el)
		}
		return &c
	case *ObjectExpression:
		c := *n
		c.Properties = make([]*Property, len(n.Properties))
		for i, p := range n.Properties {
			cp := *p
			if p.Computed {
				cp.Key = CloneExpr(p.Key)
			}
			cp.Value = CloneExpr(p.Value)
			c.Properties[i] = &cp
		}
		return &c
	case *FunctionExpression:
		c := *n
		return &c
	case *ArrowFunctionExpression:
		c := *n
		if n.ExprBody != nil {
			c.ExprBody = CloneExpr(n.ExprBody)
		}
		return &c
	case *SequenceExpression:
		c := *n
		c.Expressions = make([]Expression, len(n.Expressions))
		for i, sub := range n.Expressions {
			c.Expressions[i] = CloneExpr(sub)
		}
		return &c
	case *ParenthesizedExpression:
		c := *n
		c.Expr = CloneExpr(n.Expr)
		return &c
	case *SpreadElement:
		c := *n
		c.Argument = CloneExpr(n.Argument)
		return &c
	case *TaggedTemplateExpression:
		c := *n
		c.Tag = CloneExpr(n.Tag)
		return &c
	default:
		return e
	}
}

// Synthetic builders used throughout the passes to manufacture
// replacement nodes; every one carries token.Synthetic since they have
// no real position in the source text.

func SynthNumber(v float64) *NumberLiteral {
	return &NumberLiteral{Value: v, Position: token.Synthetic}
}

func SynthString(v string) *StringLiteral {
	return &StringLiteral{Value: v, Position: token.Synthetic}
}

func SynthBool(v bool) *BooleanLiteral {
	return &BooleanLiteral{Value: v, Position: token.Synthetic}
}

func SynthIdent(name string) *Identifier {
	return &Identifier{Name: name, Position: token.Synthetic}
}

func SynthNull() *NullLiteral {
	return &NullLiteral{Position: token.Synthetic}
}
