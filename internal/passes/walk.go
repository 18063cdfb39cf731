// Package passes implements the deobfuscation pipeline's individual tree
// transformations. Each file holds one pass (or one closely related pair,
// e.g. pass 16's ternary and short-circuit variants); the driver in
// internal/deobfuscate sequences them.
//
// Passes that only need to rewrite one expression or statement node at a
// time build on ast.RewriteExpr/ast.RewriteStmt directly. Passes that
// restructure a block — replacing a run of statements with a different
// number of statements, such as control-flow unflattening or splitting a
// multi-declarator var statement — use WalkBlocks below, since
// ast.RewriteStmt only ever substitutes one statement for one statement.
package passes

import "github.com/aledsdavies/deobfjs/internal/ast"

// ListRewriter rewrites one statement list (a block body, a program body,
// a switch case's consequent) and returns its replacement.
type ListRewriter func([]ast.Statement) []ast.Statement

// WalkBlocks applies f to every statement list reachable through plain
// statement nesting (blocks, if/while/for/switch/try/labeled bodies,
// function declarations), innermost first. It does not descend into
// function/arrow expressions nested inside other expressions (a var
// initializer's callback body, say) — passes that restructure statement
// lists operate on top-level and block-level code, not on every closure
// literal buried in an expression tree, matching the patterns named in
// the component design these passes implement.
func WalkBlocks(prog *ast.Program, f ListRewriter) {
	prog.Body = walkList(prog.Body, f)
}

func walkList(stmts []ast.Statement, f ListRewriter) []ast.Statement {
	for _, s := range stmts {
		walkStmtChildren(s, f)
	}
	return f(stmts)
}

func walkStmtChildren(s ast.Statement, f ListRewriter) {
	switch n := s.(type) {
	case *ast.BlockStatement:
		n.Body = walkList(n.Body, f)
	case *ast.FunctionDeclaration:
		n.Body.Body = walkList(n.Body.Body, f)
	case *ast.IfStatement:
		walkStmtChildren(n.Consequent, f)
		if b, ok := n.Consequent.(*ast.BlockStatement); ok {
			b.Body = walkList(b.Body, f)
		}
		if n.Alternate != nil {
			walkStmtChildren(n.Alternate, f)
			if b, ok := n.Alternate.(*ast.BlockStatement); ok {
				b.Body = walkList(b.Body, f)
			}
		}
	case *ast.WhileStatement:
		descendBody(&n.Body, f)
	case *ast.DoWhileStatement:
		descendBody(&n.Body, f)
	case *ast.ForStatement:
		descendBody(&n.Body, f)
	case *ast.ForInStatement:
		descendBody(&n.Body, f)
	case *ast.ForOfStatement:
		descendBody(&n.Body, f)
	case *ast.SwitchStatement:
		for _, c := range n.Cases {
			c.Consequent = walkList(c.Consequent, f)
		}
	case *ast.TryStatement:
		n.Block.Body = walkList(n.Block.Body, f)
		if n.Handler != nil {
			n.Handler.Body.Body = walkList(n.Handler.Body.Body, f)
		}
		if n.Finalizer != nil {
			n.Finalizer.Body = walkList(n.Finalizer.Body, f)
		}
	case *ast.LabeledStatement:
		descendBody(&n.Body, f)
	}
}

// descendBody handles a loop/labeled body that might be a block (and so
// owns a real statement list) or a single bare statement (nothing to
// list-rewrite, but still worth descending into for nested blocks).
func descendBody(body *ast.Statement, f ListRewriter) {
	if b, ok := (*body).(*ast.BlockStatement); ok {
		b.Body = walkList(b.Body, f)
		return
	}
	walkStmtChildren(*body, f)
}
