package ast

// Visitor receives every expression and statement in the tree exactly
// once, in the same bottom-up order RewriteExpr/RewriteStmt use, but
// read-only. This is the "collector" half of a collector/rewriter pair
// (dead-variable elimination, function inlining, call-proxy and
// operator-proxy inlining all follow this shape): the collector walks
// with VisitExpr/VisitStmt and builds a side table; a later, separate
// pass rewrites using that table.
type Visitor struct {
	Expr func(Expression)
	Stmt func(Statement)
}

func VisitExpr(e Expression, v Visitor) {
	if e == nil {
		return
	}
	switch n := e.(type) {
	case *UnaryExpression:
		VisitExpr(n.Argument, v)
	case *UpdateExpression:
		VisitExpr(n.Argument, v)
	case *BinaryExpression:
		VisitExpr(n.Left, v)
		VisitExpr(n.Right, v)
	case *LogicalExpression:
		VisitExpr(n.Left, v)
		VisitExpr(n.Right, v)
	case *ConditionalExpression:
		VisitExpr(n.Test, v)
		VisitExpr(n.Consequent, v)
		VisitExpr(n.Alternate, v)
	case *AssignmentExpression:
		VisitExpr(n.Left, v)
		VisitExpr(n.Right, v)
	case *CallExpression:
		VisitExpr(n.Callee, v)
		for _, a := range n.Args {
			VisitExpr(a, v)
		}
	case *NewExpression:
		VisitExpr(n.Callee, v)
		for _, a := range n.Args {
			VisitExpr(a, v)
		}
	case *MemberExpression:
		VisitExpr(n.Object, v)
		if n.Computed {
			VisitExpr(n.Property, v)
		}
	case *ArrayExpression:
		for _, el := range n.Elements {
			VisitExpr(el, v)
		}
	case *ObjectExpression:
		for _, p := range n.Properties {
			if p.Computed {
				VisitExpr(p.Key, v)
			}
			VisitExpr(p.Value, v)
		}
	case *FunctionExpression:
		VisitStmt(n.Body, v)
	case *ArrowFunctionExpression:
		if n.Body != nil {
			VisitStmt(n.Body, v)
		}
		if n.ExprBody != nil {
			VisitExpr(n.ExprBody, v)
		}
	case *SequenceExpression:
		for _, sub := range n.Expressions {
			VisitExpr(sub, v)
		}
	case *ParenthesizedExpression:
		VisitExpr(n.Expr, v)
	case *SpreadElement:
		VisitExpr(n.Argument, v)
	case *TaggedTemplateExpression:
		VisitExpr(n.Tag, v)
	}
	if v.Expr != nil {
		v.Expr(e)
	}
}

func VisitStmt(s Statement, v Visitor) {
	if s == nil {
		return
	}
	switch n := s.(type) {
	case *BlockStatement:
		for _, sub := range n.Body {
			VisitStmt(sub, v)
		}
	case *ExpressionStatement:
		VisitExpr(n.Expr, v)
	case *VarDeclaration:
		for _, d := range n.Declarators {
			if d.Init != nil {
				VisitExpr(d.Init, v)
			}
		}
	case *FunctionDeclaration:
		VisitStmt(n.Body, v)
	case *IfStatement:
		VisitExpr(n.Test, v)
		VisitStmt(n.Consequent, v)
		if n.Alternate != nil {
			VisitStmt(n.Alternate, v)
		}
	case *WhileStatement:
		VisitExpr(n.Test, v)
		VisitStmt(n.Body, v)
	case *DoWhileStatement:
		VisitStmt(n.Body, v)
		VisitExpr(n.Test, v)
	case *ForStatement:
		if ve, ok := n.Init.(*VarDeclaration); ok {
			VisitStmt(ve, v)
		} else if ex, ok := n.Init.(Expression); ok && ex != nil {
			VisitExpr(ex, v)
		}
		if n.Test != nil {
			VisitExpr(n.Test, v)
		}
		if n.Update != nil {
			VisitExpr(n.Update, v)
		}
		VisitStmt(n.Body, v)
	case *ForInStatement:
		VisitExpr(n.Right, v)
		VisitStmt(n.Body, v)
	case *ForOfStatement:
		VisitExpr(n.Right, v)
		VisitStmt(n.Body, v)
	case *SwitchStatement:
		VisitExpr(n.Discriminant, v)
		for _, c := range n.Cases {
			if c.Test != nil {
				VisitExpr(c.Test, v)
			}
			for _, sub := range c.Consequent {
				VisitStmt(sub, v)
			}
		}
	case *ReturnStatement:
		if n.Argument != nil {
			VisitExpr(n.Argument, v)
		}
	case *ThrowStatement:
		VisitExpr(n.Argument, v)
	case *TryStatement:
		VisitStmt(n.Block, v)
		if n.Handler != nil {
			VisitStmt(n.Handler.Body, v)
		}
		if n.Finalizer != nil {
			VisitStmt(n.Finalizer, v)
		}
	case *LabeledStatement:
		VisitStmt(n.Body, v)
	case *ExportNamedDeclaration:
		if n.Declaration != nil {
			VisitStmt(n.Declaration, v)
		}
	case *ExportDefaultDeclaration:
		if fd, ok := n.Declaration.(*FunctionDeclaration); ok {
			VisitStmt(fd, v)
		} else if ex, ok := n.Declaration.(Expression); ok {
			VisitExpr(ex, v)
		}
	}
	if v.Stmt != nil {
		v.Stmt(s)
	}
}

func VisitProgram(p *Program, v Visitor) {
	for _, s := range p.Body {
		VisitStmt(s, v)
	}
}
