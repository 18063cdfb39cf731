package ast

// RewriteExpr walks e bottom-up: every child expression is rewritten
// first, then post is called on the node with its (possibly already
// rewritten) children already in place. This is the shared traversal used
// by every purely local, context-free expression pass (expression
// simplification, constant folding, algebraic simplification, strength
// reduction, and the rest) so each of those passes only has to supply the
// one-node rewrite rule, not its own tree walk.
func RewriteExpr(e Expression, post func(Expression) Expression) Expression {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case *Identifier, *NumberLiteral, *StringLiteral, *BooleanLiteral, *NullLiteral, *RegExpLiteral, *TemplateLiteral:
		return post(e)
	case *UnaryExpression:
		n.Argument = RewriteExpr(n.Argument, post)
		return post(n)
	case *UpdateExpression:
		n.Argument = RewriteExpr(n.Argument, post)
		return post(n)
	case *BinaryExpression:
		n.Left = RewriteExpr(n.Left, post)
		n.Right = RewriteExpr(n.Right, post)
		return post(n)
	case *LogicalExpression:
		n.Left = RewriteExpr(n.Left, post)
		n.Right = RewriteExpr(n.Right, post)
		return post(n)
	case *ConditionalExpression:
		n.Test = RewriteExpr(n.Test, post)
		n.Consequent = RewriteExpr(n.Consequent, post)
		n.Alternate = RewriteExpr(n.Alternate, post)
		return post(n)
	case *AssignmentExpression:
		n.Left = RewriteExpr(n.Left, post)
		n.Right = RewriteExpr(n.Right, post)
		return post(n)
	case *CallExpression:
		n.Callee = RewriteExpr(n.Callee, post)
		for i, a := range n.Args {
			n.Args[i] = RewriteExpr(a, post)
		}
		return post(n)
	case *NewExpression:
		n.Callee = RewriteExpr(n.Callee, post)
		for i, a := range n.Args {
			n.Args[i] = RewriteExpr(a, post)
		}
		return post(n)
	case *MemberExpression:
		n.Object = RewriteExpr(n.Object, post)
		if n.Computed {
			n.Property = RewriteExpr(n.Property, post)
		}
		return post(n)
	case *ArrayExpression:
		for i, el := range n.Elements {
			if el != nil {
				n.Elements[i] = RewriteExpr(el, post)
			}
		}
		return post(n)
	case *ObjectExpression:
		for _, p := range n.Properties {
			if p.Computed {
				p.Key = RewriteExpr(p.Key, post)
			}
			p.Value = RewriteExpr(p.Value, post)
		}
		return post(n)
	case *FunctionExpression:
		n.Body = RewriteStmt(n.Body, nil, post).(*BlockStatement)
		return post(n)
	case *ArrowFunctionExpression:
		if n.Body != nil {
			n.Body = RewriteStmt(n.Body, nil, post).(*BlockStatement)
		}
		if n.ExprBody != nil {
			n.ExprBody = RewriteExpr(n.ExprBody, post)
		}
		return post(n)
	case *SequenceExpression:
		for i, sub := range n.Expressions {
			n.Expressions[i] = RewriteExpr(sub, post)
		}
		return post(n)
	case *ParenthesizedExpression:
		n.Expr = RewriteExpr(n.Expr, post)
		return post(n)
	case *SpreadElement:
		n.Argument = RewriteExpr(n.Argument, post)
		return post(n)
	case *TaggedTemplateExpression:
		n.Tag = RewriteExpr(n.Tag, post)
		return post(n)
	default:
		return post(e)
	}
}

// RewriteStmt walks s bottom-up, rewriting nested expressions with
// postExpr (may be nil to leave expressions untouched) and nested
// statements with postStmt (may be nil). Children are processed before
// the node itself, matching RewriteExpr's contract.
func RewriteStmt(s Statement, postStmt func(Statement) Statement, postExpr func(Expression) Expression) Statement {
	if s == nil {
		return nil
	}
	rs := func(x Statement) Statement { return RewriteStmt(x, postStmt, postExpr) }
	re := func(x Expression) Expression {
		if postExpr == nil {
			return x
		}
		return RewriteExpr(x, postExpr)
	}

	switch n := s.(type) {
	case *BlockStatement:
		for i, sub := range n.Body {
			n.Body[i] = rs(sub)
		}
	case *ExpressionStatement:
		n.Expr = re(n.Expr)
	case *VarDeclaration:
		for _, d := range n.Declarators {
			if d.Init != nil {
				d.Init = re(d.Init)
			}
		}
	case *FunctionDeclaration:
		n.Body = rs(n.Body).(*BlockStatement)
	case *IfStatement:
		n.Test = re(n.Test)
		n.Consequent = rs(n.Consequent)
		if n.Alternate != nil {
			n.Alternate = rs(n.Alternate)
		}
	case *WhileStatement:
		n.Test = re(n.Test)
		n.Body = rs(n.Body)
	case *DoWhileStatement:
		n.Body = rs(n.Body)
		n.Test = re(n.Test)
	case *ForStatement:
		if ve, ok := n.Init.(*VarDeclaration); ok {
			n.Init = rs(ve)
		} else if ex, ok := n.Init.(Expression); ok && ex != nil {
			n.Init = re(ex)
		}
		if n.Test != nil {
			n.Test = re(n.Test)
		}
		if n.Update != nil {
			n.Update = re(n.Update)
		}
		n.Body = rs(n.Body)
	case *ForInStatement:
		n.Right = re(n.Right)
		n.Body = rs(n.Body)
	case *ForOfStatement:
		n.Right = re(n.Right)
		n.Body = rs(n.Body)
	case *SwitchStatement:
		n.Discriminant = re(n.Discriminant)
		for _, c := range n.Cases {
			if c.Test != nil {
				c.Test = re(c.Test)
			}
			for i, sub := range c.Consequent {
				c.Consequent[i] = rs(sub)
			}
		}
	case *ReturnStatement:
		if n.Argument != nil {
			n.Argument = re(n.Argument)
		}
	case *ThrowStatement:
		n.Argument = re(n.Argument)
	case *TryStatement:
		n.Block = rs(n.Block).(*BlockStatement)
		if n.Handler != nil {
			n.Handler.Body = rs(n.Handler.Body).(*BlockStatement)
		}
		if n.Finalizer != nil {
			n.Finalizer = rs(n.Finalizer).(*BlockStatement)
		}
	case *LabeledStatement:
		n.Body = rs(n.Body)
	case *ExportNamedDeclaration:
		if n.Declaration != nil {
			n.Declaration = rs(n.Declaration)
		}
	case *ExportDefaultDeclaration:
		if fd, ok := n.Declaration.(*FunctionDeclaration); ok {
			n.Declaration = rs(fd)
		} else if ex, ok := n.Declaration.(Expression); ok {
			n.Declaration = re(ex)
		}
	case *BreakStatement, *ContinueStatement, *EmptyStatement, *DebuggerStatement, *ImportDeclaration:
		// leaves, nothing to recurse into
	}

	if postStmt == nil {
		return s
	}
	return postStmt(s)
}

// RewriteProgram applies RewriteStmt to every top-level statement.
func RewriteProgram(p *Program, postStmt func(Statement) Statement, postExpr func(Expression) Expression) {
	for i, s := range p.Body {
		p.Body[i] = RewriteStmt(s, postStmt, postExpr)
	}
}
